package domain

import "github.com/google/uuid"

// The typed IDs wrap uuid.UUID for compile-time safety, which drops the
// uuid method set. The text codecs below restore string (de)serialization
// so the types round-trip through JSON as canonical UUID strings.

func (id UserID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id UserID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *UserID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = UserID(parsed)

	return nil
}

func (id RequestID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id RequestID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *RequestID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = RequestID(parsed)

	return nil
}

func (id PhotoID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id PhotoID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *PhotoID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = PhotoID(parsed)

	return nil
}

func (id QuoteID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id QuoteID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *QuoteID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = QuoteID(parsed)

	return nil
}

func (id ReviewID) String() string { return uuid.UUID(id).String() }

// MarshalText implements encoding.TextMarshaler.
func (id ReviewID) MarshalText() ([]byte, error) { return uuid.UUID(id).MarshalText() }

// UnmarshalText implements encoding.TextUnmarshaler.
func (id *ReviewID) UnmarshalText(data []byte) error {
	parsed, err := uuid.ParseBytes(data)
	if err != nil {
		return err
	}
	*id = ReviewID(parsed)

	return nil
}
