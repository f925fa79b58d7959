package postgres

import (
	"carmate/pkg/domain"
	"database/sql"
	"time"

	"github.com/google/uuid"
)

type PgUser struct {
	ID uuid.UUID `db:"id" goqu:"skipinsert"`

	FullName     string `db:"full_name"`
	Email        string `db:"email"`
	Phone        string `db:"phone"`
	PasswordHash string `db:"password_hash"`
	Role         string `db:"role"`
	IsActive     bool   `db:"is_active"`

	ResetTokenHash      sql.NullString `db:"reset_token_hash"       goqu:"skipinsert"`
	ResetTokenExpiresAt sql.NullTime   `db:"reset_token_expires_at" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:                  domain.UserID(p.ID),
		FullName:            p.FullName,
		Email:               p.Email,
		Phone:               p.Phone,
		Role:                domain.Role(p.Role),
		IsActive:            p.IsActive,
		PasswordHash:        p.PasswordHash,
		ResetTokenHash:      p.ResetTokenHash.String,
		ResetTokenExpiresAt: p.ResetTokenExpiresAt.Time,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
		DeletedAt:           p.DeletedAt.Time,
	}
}

func (p *PgUser) FromDomain(user domain.User) {
	*p = PgUser{
		ID:           uuid.UUID(user.ID),
		FullName:     user.FullName,
		Email:        user.Email,
		Phone:        user.Phone,
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		IsActive:     user.IsActive,
		ResetTokenHash: sql.NullString{
			String: user.ResetTokenHash,
			Valid:  user.ResetTokenHash != "",
		},
		ResetTokenExpiresAt: sql.NullTime{
			Time:  user.ResetTokenExpiresAt,
			Valid: !user.ResetTokenExpiresAt.IsZero(),
		},
		CreatedAt: user.CreatedAt,
		UpdatedAt: sql.NullTime{Time: user.UpdatedAt, Valid: !user.UpdatedAt.IsZero()},
		DeletedAt: sql.NullTime{Time: user.DeletedAt, Valid: !user.DeletedAt.IsZero()},
	}
}

func pgUsersToDomain(users []PgUser) []domain.User {
	out := make([]domain.User, 0, len(users))
	for i := range users {
		out = append(out, *users[i].ToDomain())
	}

	return out
}

type PgRequest struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	CustomerID uuid.UUID `db:"customer_id"`

	VehicleMake  string `db:"vehicle_make"`
	VehicleModel string `db:"vehicle_model"`
	VehicleYear  int    `db:"vehicle_year"`
	LicensePlate string `db:"license_plate"`
	VIN          string `db:"vin"`
	Mileage      int    `db:"mileage"`

	ServiceType         string    `db:"service_type"`
	Symptoms            string    `db:"symptoms"`
	PreferredDate       time.Time `db:"preferred_date"`
	PreferredTimeWindow string    `db:"preferred_time_window"`
	Location            string    `db:"location"`
	Urgency             string    `db:"urgency"`

	Status          string        `db:"status"`
	AcceptedQuoteID uuid.NullUUID `db:"accepted_quote_id" goqu:"skipinsert"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
	DeletedAt sql.NullTime `db:"deleted_at" goqu:"skipinsert"`
}

func (p *PgRequest) ToDomain() *domain.ServiceRequest {
	var acceptedQuoteID *domain.QuoteID
	if p.AcceptedQuoteID.Valid {
		id := domain.QuoteID(p.AcceptedQuoteID.UUID)
		acceptedQuoteID = &id
	}

	return &domain.ServiceRequest{
		ID:         domain.RequestID(p.ID),
		CustomerID: domain.UserID(p.CustomerID),
		Vehicle: domain.Vehicle{
			Make:         p.VehicleMake,
			Model:        p.VehicleModel,
			Year:         p.VehicleYear,
			LicensePlate: p.LicensePlate,
			VIN:          p.VIN,
			Mileage:      p.Mileage,
		},
		ServiceType:         p.ServiceType,
		Symptoms:            p.Symptoms,
		PreferredDate:       p.PreferredDate,
		PreferredTimeWindow: domain.TimeWindow(p.PreferredTimeWindow),
		Location:            p.Location,
		Urgency:             domain.Urgency(p.Urgency),
		Status:              domain.RequestStatus(p.Status),
		AcceptedQuoteID:     acceptedQuoteID,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt.Time,
		DeletedAt:           p.DeletedAt.Time,
	}
}

func (p *PgRequest) FromDomain(req domain.ServiceRequest) {
	*p = PgRequest{
		ID:                  uuid.UUID(req.ID),
		CustomerID:          uuid.UUID(req.CustomerID),
		VehicleMake:         req.Vehicle.Make,
		VehicleModel:        req.Vehicle.Model,
		VehicleYear:         req.Vehicle.Year,
		LicensePlate:        req.Vehicle.LicensePlate,
		VIN:                 req.Vehicle.VIN,
		Mileage:             req.Vehicle.Mileage,
		ServiceType:         req.ServiceType,
		Symptoms:            req.Symptoms,
		PreferredDate:       req.PreferredDate,
		PreferredTimeWindow: string(req.PreferredTimeWindow),
		Location:            req.Location,
		Urgency:             string(req.Urgency),
		Status:              string(req.Status),
		CreatedAt:           req.CreatedAt,
		UpdatedAt:           sql.NullTime{Time: req.UpdatedAt, Valid: !req.UpdatedAt.IsZero()},
		DeletedAt:           sql.NullTime{Time: req.DeletedAt, Valid: !req.DeletedAt.IsZero()},
	}
	if req.AcceptedQuoteID != nil {
		p.AcceptedQuoteID = uuid.NullUUID{UUID: uuid.UUID(*req.AcceptedQuoteID), Valid: true}
	}
}

func pgRequestsToDomain(requests []PgRequest) []domain.ServiceRequest {
	out := make([]domain.ServiceRequest, 0, len(requests))
	for i := range requests {
		out = append(out, *requests[i].ToDomain())
	}

	return out
}

type PgPhoto struct {
	ID        uuid.UUID `db:"id"         goqu:"skipinsert"`
	RequestID uuid.UUID `db:"request_id"`

	FileName    string `db:"file_name"`
	ContentType string `db:"content_type"`
	SizeBytes   int64  `db:"size_bytes"`
	StoredPath  string `db:"stored_path"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgPhoto) ToDomain() *domain.RequestPhoto {
	return &domain.RequestPhoto{
		ID:          domain.PhotoID(p.ID),
		RequestID:   domain.RequestID(p.RequestID),
		FileName:    p.FileName,
		ContentType: p.ContentType,
		SizeBytes:   p.SizeBytes,
		StoredPath:  p.StoredPath,
		CreatedAt:   p.CreatedAt,
	}
}

func (p *PgPhoto) FromDomain(photo domain.RequestPhoto) {
	*p = PgPhoto{
		ID:          uuid.UUID(photo.ID),
		RequestID:   uuid.UUID(photo.RequestID),
		FileName:    photo.FileName,
		ContentType: photo.ContentType,
		SizeBytes:   photo.SizeBytes,
		StoredPath:  photo.StoredPath,
		CreatedAt:   photo.CreatedAt,
	}
}

type PgQuote struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	RequestID  uuid.UUID `db:"request_id"`
	ProviderID uuid.UUID `db:"provider_id"`

	AmountCents int64  `db:"amount_cents"`
	Currency    string `db:"currency"`
	Note        string `db:"note"`
	EstDays     int    `db:"est_days"`
	Status      string `db:"status"`

	CreatedAt time.Time    `db:"created_at" goqu:"skipinsert"`
	UpdatedAt sql.NullTime `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgQuote) ToDomain() *domain.Quote {
	return &domain.Quote{
		ID:          domain.QuoteID(p.ID),
		RequestID:   domain.RequestID(p.RequestID),
		ProviderID:  domain.UserID(p.ProviderID),
		AmountCents: p.AmountCents,
		Currency:    p.Currency,
		Note:        p.Note,
		EstDays:     p.EstDays,
		Status:      domain.QuoteStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt.Time,
	}
}

func (p *PgQuote) FromDomain(quote domain.Quote) {
	*p = PgQuote{
		ID:          uuid.UUID(quote.ID),
		RequestID:   uuid.UUID(quote.RequestID),
		ProviderID:  uuid.UUID(quote.ProviderID),
		AmountCents: quote.AmountCents,
		Currency:    quote.Currency,
		Note:        quote.Note,
		EstDays:     quote.EstDays,
		Status:      string(quote.Status),
		CreatedAt:   quote.CreatedAt,
		UpdatedAt:   sql.NullTime{Time: quote.UpdatedAt, Valid: !quote.UpdatedAt.IsZero()},
	}
}

func pgQuotesToDomain(quotes []PgQuote) []domain.Quote {
	out := make([]domain.Quote, 0, len(quotes))
	for i := range quotes {
		out = append(out, *quotes[i].ToDomain())
	}

	return out
}

type PgReview struct {
	ID         uuid.UUID `db:"id"          goqu:"skipinsert"`
	RequestID  uuid.UUID `db:"request_id"`
	ProviderID uuid.UUID `db:"provider_id"`
	CustomerID uuid.UUID `db:"customer_id"`

	Rating  int    `db:"rating"`
	Comment string `db:"comment"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgReview) ToDomain() *domain.Review {
	return &domain.Review{
		ID:         domain.ReviewID(p.ID),
		RequestID:  domain.RequestID(p.RequestID),
		ProviderID: domain.UserID(p.ProviderID),
		CustomerID: domain.UserID(p.CustomerID),
		Rating:     p.Rating,
		Comment:    p.Comment,
		CreatedAt:  p.CreatedAt,
	}
}

func (p *PgReview) FromDomain(review domain.Review) {
	*p = PgReview{
		ID:         uuid.UUID(review.ID),
		RequestID:  uuid.UUID(review.RequestID),
		ProviderID: uuid.UUID(review.ProviderID),
		CustomerID: uuid.UUID(review.CustomerID),
		Rating:     review.Rating,
		Comment:    review.Comment,
		CreatedAt:  review.CreatedAt,
	}
}

func pgReviewsToDomain(reviews []PgReview) []domain.Review {
	out := make([]domain.Review, 0, len(reviews))
	for i := range reviews {
		out = append(out, *reviews[i].ToDomain())
	}

	return out
}
