package postgres_test

import (
	"context"
	"testing"
	"time"

	"countervalidator/pkg/domain"
	"countervalidator/pkg/storage"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestPgSQL_Users(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	alice, err := pgSQL.StoreUser(ctx, domain.User{Email: " Alice@Example.com", IsActive: true, FirstName: "Alice"})
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", alice.Email)
	require.NotEqual(t, uuid.Nil, uuid.UUID(alice.ID))
	require.False(t, alice.CreatedAt.IsZero())

	_, err = pgSQL.StoreUser(ctx, domain.User{Email: "alice@example.com"})
	require.ErrorIs(t, err, storage.ErrDuplicate)

	admin, err := pgSQL.StoreUser(ctx, domain.User{
		Email: "admin@example.com", IsActive: true, IsValidatorAdmin: true, ReceiveOperatorEmails: true,
	})
	require.NoError(t, err)
	_, err = pgSQL.StoreUser(ctx, domain.User{Email: "root@example.com", IsActive: false, IsSuperuser: true})
	require.NoError(t, err)

	t.Run("by id", func(t *testing.T) {
		u, err := pgSQL.UserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, "Alice", u.FirstName)

		u, err = pgSQL.UserByID(ctx, domain.UserID(uuid.New()))
		require.NoError(t, err)
		require.Nil(t, u)
	})

	t.Run("by email is case-insensitive", func(t *testing.T) {
		u, err := pgSQL.UserByEmail(ctx, "ALICE@example.COM")
		require.NoError(t, err)
		require.Equal(t, alice.ID, u.ID)
	})

	t.Run("validator admins skip inactive users", func(t *testing.T) {
		admins, err := pgSQL.ValidatorAdmins(ctx)
		require.NoError(t, err)
		require.Len(t, admins, 1)
		require.Equal(t, admin.ID, admins[0].ID)
		require.True(t, admins[0].ReceiveOperatorEmails)
	})
}

func TestPgSQL_APIKeys(t *testing.T) {
	t.Parallel()

	pgSQL, cleanup := setupTestDB(t)
	t.Cleanup(cleanup)
	ctx := context.Background()

	user, err := pgSQL.StoreUser(ctx, domain.User{Email: "keys@example.com", IsActive: true})
	require.NoError(t, err)

	expiry := time.Now().Add(time.Hour).UTC().Truncate(time.Second)
	k1, err := pgSQL.StoreAPIKey(ctx, domain.APIKey{UserID: user.ID, Prefix: "abcd1234", HashedKey: "h1", Name: "first"})
	require.NoError(t, err)
	_, err = pgSQL.StoreAPIKey(ctx, domain.APIKey{
		UserID: user.ID, Prefix: "efgh5678", HashedKey: "h2", Name: "second", ExpiryDate: &expiry,
	})
	require.NoError(t, err)

	_, err = pgSQL.StoreAPIKey(ctx, domain.APIKey{UserID: user.ID, Prefix: "abcd1234", HashedKey: "h3", Name: "dup"})
	require.Error(t, err, "prefix must be unique")

	got, err := pgSQL.APIKeyByPrefix(ctx, "efgh5678")
	require.NoError(t, err)
	require.NotNil(t, got.ExpiryDate)
	require.True(t, expiry.Equal(*got.ExpiryDate))

	missing, err := pgSQL.APIKeyByPrefix(ctx, "zzzzzzzz")
	require.NoError(t, err)
	require.Nil(t, missing)

	keys, err := pgSQL.UserAPIKeys(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, keys, 2)

	revoked, err := pgSQL.RevokeAPIKey(ctx, k1.ID)
	require.NoError(t, err)
	require.True(t, revoked.Revoked)

	none, err := pgSQL.RevokeAPIKey(ctx, domain.APIKeyID(uuid.New()))
	require.NoError(t, err)
	require.Nil(t, none)
}
