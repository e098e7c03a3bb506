package account_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"fmt"
	"strings"
	"testing"
	"time"

	"countervalidator/internal/account"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"
	mockstorage "countervalidator/pkg/storage/mock"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

func genPrivateKey(t *testing.T) (*rsa.PrivateKey, string) {
	t.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	der := x509.MarshalPKCS1PrivateKey(priv)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "RSA PRIVATE KEY", Bytes: der}))
}

func newTestService(t *testing.T, privPEM string) (*mockstorage.MockStorage, account.Service) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s, err := account.New(st, account.Options{PrivateKey: privPEM, TokenTTL: time.Hour, BcryptCost: bcrypt.MinCost})
	require.NoError(t, err)

	return st, s
}

func hash(t *testing.T, s string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(s), bcrypt.MinCost)
	require.NoError(t, err)

	return string(h)
}

func TestNew_invalidKey(t *testing.T) {
	_, err := account.New(nil, account.Options{PrivateKey: "nope"})
	require.Error(t, err)
}

func TestService_Login(t *testing.T) {
	priv, privPEM := genPrivateKey(t)
	st, s := newTestService(t, privPEM)
	ctx := context.Background()

	user := &domain.User{
		ID:           domain.UserID(uuid.New()),
		Email:        "user@example.com",
		PasswordHash: hash(t, "correct horse"),
		IsActive:     true,
	}
	st.EXPECT().UserByEmail(gomock.Any(), "user@example.com").Return(user, nil).Times(2)

	tkn, err := s.Login(ctx, " user@example.com ", "correct horse")
	require.NoError(t, err)

	parsed, err := jwt.ParseWithClaims(tkn, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return &priv.PublicKey, nil
	}, jwt.WithValidMethods([]string{"RS256"}))
	require.NoError(t, err)
	sub, err := parsed.Claims.GetSubject()
	require.NoError(t, err)
	require.Equal(t, user.ID.String(), sub)

	_, err = s.Login(ctx, "user@example.com", "wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestService_Login_inactiveOrUnknown(t *testing.T) {
	_, privPEM := genPrivateKey(t)
	st, s := newTestService(t, privPEM)
	ctx := context.Background()

	st.EXPECT().UserByEmail(gomock.Any(), "gone@example.com").Return(nil, nil)
	_, err := s.Login(ctx, "gone@example.com", "x")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	inactive := &domain.User{Email: "off@example.com", PasswordHash: hash(t, "pw"), IsActive: false}
	st.EXPECT().UserByEmail(gomock.Any(), "off@example.com").Return(inactive, nil)
	_, err = s.Login(ctx, "off@example.com", "pw")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestService_User_inactive(t *testing.T) {
	st, s := newTestService(t, "")
	ctx := context.Background()
	inactive := &domain.User{ID: domain.UserID(uuid.New()), IsActive: false}
	st.EXPECT().UserByID(gomock.Any(), inactive.ID).Return(inactive, nil)

	_, err := s.User(ctx, inactive.ID)
	require.ErrorIs(t, err, account.ErrInactiveUser)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestService_Login_noSigningKey(t *testing.T) {
	st, s := newTestService(t, "")
	user := &domain.User{Email: "u@example.com", PasswordHash: hash(t, "pw"), IsActive: true}
	st.EXPECT().UserByEmail(gomock.Any(), gomock.Any()).Return(user, nil)

	_, err := s.Login(context.Background(), "u@example.com", "pw")
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestService_CreateUser(t *testing.T) {
	st, s := newTestService(t, "")
	ctx := context.Background()

	_, err := s.CreateUser(ctx, account.NewUser{Email: "not an email", Password: "short"})
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	fields := serrors.Fields(err)
	require.Contains(t, fields, "email")
	require.Contains(t, fields, "password")

	st.EXPECT().UserByEmail(gomock.Any(), "taken@example.com").Return(&domain.User{}, nil)
	_, err = s.CreateUser(ctx, account.NewUser{Email: "taken@example.com", Password: "long enough"})
	require.ErrorIs(t, err, serrors.ErrConflict)

	st.EXPECT().UserByEmail(gomock.Any(), "new@example.com").Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, u domain.User) (*domain.User, error) {
			require.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("long enough")))
			require.True(t, u.IsActive)
			require.True(t, u.IsValidatorAdmin)

			return &u, nil
		})
	u, err := s.CreateUser(ctx, account.NewUser{Email: "new@example.com", Password: "long enough", IsValidatorAdmin: true})
	require.NoError(t, err)
	require.Equal(t, "new@example.com", u.Email)

	// lost a race with a concurrent registration
	st.EXPECT().UserByEmail(gomock.Any(), "race@example.com").Return(nil, nil)
	st.EXPECT().StoreUser(gomock.Any(), gomock.Any()).Return(nil, fmt.Errorf("insert: %w", storage.ErrDuplicate))
	_, err = s.CreateUser(ctx, account.NewUser{Email: "race@example.com", Password: "long enough"})
	require.ErrorIs(t, err, serrors.ErrConflict)
}

func TestService_APIKeyLifecycle(t *testing.T) {
	st, s := newTestService(t, "")
	ctx := context.Background()
	owner := &domain.User{ID: domain.UserID(uuid.New()), IsActive: true}

	var stored domain.APIKey
	st.EXPECT().StoreAPIKey(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, k domain.APIKey) (*domain.APIKey, error) {
			stored = k

			return &k, nil
		})
	key, plain, err := s.CreateAPIKey(ctx, owner.ID, "CI key")
	require.NoError(t, err)
	require.Equal(t, "CI key", key.Name)

	prefix, secret, ok := strings.Cut(plain, ".")
	require.True(t, ok)
	require.Len(t, prefix, domain.APIKeyPrefixLength)
	require.Len(t, secret, domain.APIKeySecretLength)
	require.Equal(t, prefix, stored.Prefix)
	require.NotContains(t, stored.HashedKey, secret)

	// authenticate with the plaintext
	st.EXPECT().APIKeyByPrefix(gomock.Any(), prefix).Return(&stored, nil).AnyTimes()
	st.EXPECT().UserByID(gomock.Any(), owner.ID).Return(owner, nil)
	u, k, err := s.AuthenticateAPIKey(ctx, plain)
	require.NoError(t, err)
	require.Equal(t, owner, u)
	require.Equal(t, prefix, k.Prefix)

	_, _, err = s.AuthenticateAPIKey(ctx, prefix+".wrong")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
	_, _, err = s.AuthenticateAPIKey(ctx, "garbage")
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	// another user cannot see or revoke it
	_, err = s.APIKey(ctx, domain.UserID(uuid.New()), prefix)
	require.ErrorIs(t, err, serrors.ErrNotFound)

	revoked := stored
	revoked.Revoked = true
	st.EXPECT().RevokeAPIKey(gomock.Any(), stored.ID).Return(&revoked, nil)
	got, err := s.RevokeAPIKey(ctx, owner.ID, prefix)
	require.NoError(t, err)
	require.True(t, got.Revoked)
}

func TestService_RevokeAPIKey_alreadyRevoked(t *testing.T) {
	st, s := newTestService(t, "")
	owner := domain.UserID(uuid.New())
	st.EXPECT().APIKeyByPrefix(gomock.Any(), "ABCDEFGH").Return(&domain.APIKey{UserID: owner, Revoked: true}, nil)

	_, err := s.RevokeAPIKey(context.Background(), owner, "ABCDEFGH")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.Contains(t, err.Error(), "already been revoked")
}

func TestService_AuthenticateAPIKey_revokedOrExpired(t *testing.T) {
	st, s := newTestService(t, "")
	past := time.Now().Add(-time.Hour)
	plain := "ABCDEFGH." + strings.Repeat("x", domain.APIKeySecretLength)

	st.EXPECT().APIKeyByPrefix(gomock.Any(), "ABCDEFGH").Return(&domain.APIKey{HashedKey: hash(t, plain), Revoked: true}, nil)
	_, _, err := s.AuthenticateAPIKey(context.Background(), plain)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)

	st.EXPECT().APIKeyByPrefix(gomock.Any(), "ABCDEFGH").Return(&domain.APIKey{HashedKey: hash(t, plain), ExpiryDate: &past}, nil)
	_, _, err = s.AuthenticateAPIKey(context.Background(), plain)
	require.ErrorIs(t, err, serrors.ErrUnauthorized)
}

func TestService_CreateAPIKey_invalidName(t *testing.T) {
	_, s := newTestService(t, "")

	_, _, err := s.CreateAPIKey(context.Background(), domain.UserID{}, " ")
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	_, _, err = s.CreateAPIKey(context.Background(), domain.UserID{}, strings.Repeat("n", 51))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}
