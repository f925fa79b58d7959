package postgres

import (
	"carmate/pkg/domain"
	"carmate/pkg/storage"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/doug-martin/goqu/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	usersTable = "users"
)

// isUniqueViolation reports whether err is a postgres unique constraint
// violation. Works through the database/sql wrapper because stdlib surfaces
// the original *pgconn.PgError.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError

	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}

func (p *PgSQL) StoreUser(ctx context.Context, user domain.User) (*domain.User, error) {
	var pgUser PgUser
	pgUser.FromDomain(user)

	var row PgUser
	found, err := p.Builder.Insert(usersTable).
		Rows(pgUser).
		Returning(&PgUser{}).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not store user: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not store user into pg: %w", err)
	}
	if !found {
		return nil, fmt.Errorf("could not store user into pg: no row returned")
	}

	return row.ToDomain(), nil
}

// UserByID returns a user by ID, excluding soft-deleted rows.
func (p *PgSQL) UserByID(ctx context.Context, id domain.UserID) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("id").Eq(uuid.UUID(id)),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by id: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByEmail returns a user by normalized email, excluding soft-deleted rows.
func (p *PgSQL) UserByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("email").Eq(email),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by email: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UserByResetToken returns the user holding an unexpired reset token with the
// given hash.
func (p *PgSQL) UserByResetToken(ctx context.Context, tokenHash string) (*domain.User, error) {
	var row PgUser
	found, err := p.Builder.From(usersTable).
		Where(
			goqu.I("reset_token_hash").Eq(tokenHash),
			goqu.I("reset_token_expires_at").Gt(goqu.L("CURRENT_TIMESTAMP")),
			goqu.I("deleted_at").IsNull(),
		).
		Executor().ScanStructContext(ctx, &row)
	if err != nil {
		return nil, fmt.Errorf("could not fetch user by reset token: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// UpdateUserByID updates a single user identified by its ID and returns the
// updated row. The update ignores soft-deleted rows and sets updated_at
// automatically. Only provided fields are changed.
func (p *PgSQL) UpdateUserByID(ctx context.Context,
	id domain.UserID,
	updates storage.UserUpdates) (*domain.User, error) {
	rec := goqu.Record{
		"updated_at": goqu.L("CURRENT_TIMESTAMP"),
	}
	if updates.FullName != nil {
		rec["full_name"] = *updates.FullName
	}
	if updates.Email != nil {
		rec["email"] = *updates.Email
	}
	if updates.Phone != nil {
		rec["phone"] = *updates.Phone
	}
	if updates.PasswordHash != nil {
		rec["password_hash"] = *updates.PasswordHash
	}
	if updates.IsActive != nil {
		rec["is_active"] = *updates.IsActive
	}
	if updates.ResetTokenHash != nil {
		if *updates.ResetTokenHash == "" {
			// set to NULL when empty string provided
			rec["reset_token_hash"] = goqu.L("NULL")
			rec["reset_token_expires_at"] = goqu.L("NULL")
		} else {
			rec["reset_token_hash"] = *updates.ResetTokenHash
		}
	}
	if updates.ResetTokenExpiresAt != nil {
		rec["reset_token_expires_at"] = *updates.ResetTokenExpiresAt
	}

	var row PgUser
	found, err := p.Builder.Update(usersTable).
		Set(rec).Where(
		goqu.I("id").Eq(uuid.UUID(id)),
		goqu.I("deleted_at").IsNull(),
	).Returning(&PgUser{}).Executor().ScanStructContext(ctx, &row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("could not update user: %w", storage.ErrDuplicate)
		}

		return nil, fmt.Errorf("could not update user in pg: %w", err)
	}
	if !found {
		return nil, nil
	}

	return row.ToDomain(), nil
}

// Users returns a page of users created before the optional cursor, newest
// first. Fetches one extra row to determine whether a next page exists.
func (p *PgSQL) Users(ctx context.Context, cursor time.Time, limit uint) (storage.UserPage, error) {
	w := []goqu.Expression{
		goqu.I("deleted_at").IsNull(),
	}
	if !cursor.IsZero() {
		w = append(w, goqu.I("created_at").Lt(cursor))
	}

	fetch := limit + 1
	ds := p.Builder.From(usersTable).
		Where(w...).
		Order(goqu.I("created_at").Desc(), goqu.I("id").Desc()).
		Limit(fetch)

	var rows []PgUser
	if err := ds.Executor().ScanStructsContext(ctx, &rows); err != nil {
		return storage.UserPage{}, fmt.Errorf("could not fetch users from pg: %w", err)
	}

	var nextCursor *time.Time
	if uint(len(rows)) > limit {
		trimmed := rows[:limit]
		nextCursor = &trimmed[len(trimmed)-1].CreatedAt
		rows = trimmed
	}

	return storage.UserPage{
		Users:      pgUsersToDomain(rows),
		NextCursor: nextCursor,
	}, nil
}

// ActiveProviderEmails returns the emails of active, non-deleted providers.
func (p *PgSQL) ActiveProviderEmails(ctx context.Context) ([]string, error) {
	var emails []string
	if err := p.Builder.From(usersTable).
		Select(goqu.I("email")).
		Where(
			goqu.I("role").Eq(string(domain.RoleProvider)),
			goqu.I("is_active").IsTrue(),
			goqu.I("deleted_at").IsNull(),
		).
		Order(goqu.I("email").Asc()).
		Executor().ScanValsContext(ctx, &emails); err != nil {
		return nil, fmt.Errorf("could not fetch provider emails from pg: %w", err)
	}

	return emails, nil
}
