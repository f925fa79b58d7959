package postgres_test

import (
	"context"
	"testing"
	"time"

	"carmate/pkg/domain"
	"carmate/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_StoreUser(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	t.Run("store and fetch back", func(t *testing.T) {
		user, err := pgSQL.StoreUser(ctx, domain.User{
			FullName:     "Sam Carter",
			Email:        "sam@example.com",
			Phone:        "+15550001111",
			PasswordHash: "$2a$04$hash",
			Role:         domain.RoleCustomer,
			IsActive:     true,
		})
		require.NoError(t, err)
		require.NotEqual(t, domain.UserID{}, user.ID)
		require.False(t, user.CreatedAt.IsZero())

		got, err := pgSQL.UserByEmail(ctx, "sam@example.com")
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, user.ID, got.ID)
		require.Equal(t, domain.RoleCustomer, got.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		_, err := pgSQL.StoreUser(ctx, domain.User{
			FullName:     "Sam Imposter",
			Email:        "sam@example.com",
			PasswordHash: "$2a$04$hash",
			Role:         domain.RoleCustomer,
			IsActive:     true,
		})
		require.Error(t, err)
		require.ErrorIs(t, err, storage.ErrDuplicate)
	})
}

func TestPgSQL_UserByID_Missing(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)

	got, err := pgSQL.UserByID(context.Background(), domain.UserID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_UpdateUserByID(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeUser(t, pgSQL, domain.RoleCustomer)

	t.Run("partial update leaves other fields", func(t *testing.T) {
		name := "Renamed User"
		updated, err := pgSQL.UpdateUserByID(ctx, user.ID, storage.UserUpdates{FullName: &name})
		require.NoError(t, err)
		require.NotNil(t, updated)
		require.Equal(t, name, updated.FullName)
		require.Equal(t, user.Email, updated.Email)
		require.False(t, updated.UpdatedAt.IsZero())
	})

	t.Run("missing user returns nil", func(t *testing.T) {
		name := "Nobody"
		updated, err := pgSQL.UpdateUserByID(ctx, domain.UserID(uuid.New()), storage.UserUpdates{FullName: &name})
		require.NoError(t, err)
		require.Nil(t, updated)
	})

	t.Run("set and clear reset token", func(t *testing.T) {
		hash := "tokenhash123"
		expires := time.Now().Add(time.Hour).UTC()
		updated, err := pgSQL.UpdateUserByID(ctx, user.ID, storage.UserUpdates{
			ResetTokenHash:      &hash,
			ResetTokenExpiresAt: &expires,
		})
		require.NoError(t, err)
		require.Equal(t, hash, updated.ResetTokenHash)

		got, err := pgSQL.UserByResetToken(ctx, hash)
		require.NoError(t, err)
		require.NotNil(t, got)
		require.Equal(t, user.ID, got.ID)

		empty := ""
		updated, err = pgSQL.UpdateUserByID(ctx, user.ID, storage.UserUpdates{ResetTokenHash: &empty})
		require.NoError(t, err)
		require.Empty(t, updated.ResetTokenHash)

		got, err = pgSQL.UserByResetToken(ctx, hash)
		require.NoError(t, err)
		require.Nil(t, got)
	})
}

func TestPgSQL_UserByResetToken_Expired(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user := storeUser(t, pgSQL, domain.RoleCustomer)

	hash := "expiredtoken"
	expires := time.Now().Add(-time.Minute).UTC()
	_, err := pgSQL.UpdateUserByID(ctx, user.ID, storage.UserUpdates{
		ResetTokenHash:      &hash,
		ResetTokenExpiresAt: &expires,
	})
	require.NoError(t, err)

	got, err := pgSQL.UserByResetToken(ctx, hash)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestPgSQL_Users_Pagination(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	stored := make([]*domain.User, 0, 5)
	for range 5 {
		stored = append(stored, storeUser(t, pgSQL, domain.RoleCustomer))
	}

	// deterministic created_at spread: oldest first in stored order
	now := time.Now().UTC()
	for i, u := range stored {
		created := now.Add(-time.Duration(4-i) * time.Minute)
		_, err := pgSQL.DB.ExecContext(ctx, "UPDATE users SET created_at = $1 WHERE id = $2",
			created, uuid.UUID(u.ID))
		require.NoError(t, err)
	}

	p1, err := pgSQL.Users(ctx, time.Time{}, 2)
	require.NoError(t, err)
	require.Len(t, p1.Users, 2)
	require.NotNil(t, p1.NextCursor)

	p2, err := pgSQL.Users(ctx, *p1.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p2.Users, 2)
	require.NotNil(t, p2.NextCursor)

	p3, err := pgSQL.Users(ctx, *p2.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, p3.Users, 1)
	require.Nil(t, p3.NextCursor)
}

func TestPgSQL_ActiveProviderEmails(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	p1 := storeUser(t, pgSQL, domain.RoleProvider)
	p2 := storeUser(t, pgSQL, domain.RoleProvider)
	storeUser(t, pgSQL, domain.RoleCustomer)

	// deactivate one provider
	inactive := false
	_, err := pgSQL.UpdateUserByID(ctx, p2.ID, storage.UserUpdates{IsActive: &inactive})
	require.NoError(t, err)

	emails, err := pgSQL.ActiveProviderEmails(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{p1.Email}, emails)
}
