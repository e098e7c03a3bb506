package v1handler_test

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"testing"
	"time"

	"countervalidator/internal/api/handler/v1handler"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func genRSAKeys(tb testing.TB) (*rsa.PrivateKey, string) {
	tb.Helper()
	priv, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(tb, err)
	pub, err := x509.MarshalPKIXPublicKey(&priv.PublicKey)
	require.NoError(tb, err)

	return priv, string(pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: pub}))
}

func newSecHandlerForTest(t *testing.T, pubPEM string) *v1handler.SecHandler {
	t.Helper()
	sh, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: pubPEM})
	require.NoError(t, err)

	return sh
}

func signJWTRS256(tb testing.TB, priv *rsa.PrivateKey, sub string, issuedAt time.Time, exp time.Time) string {
	tb.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{
		Subject:   sub,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(exp),
		NotBefore: jwt.NewNumericDate(issuedAt),
	}).SignedString(priv)
	require.NoError(tb, err)

	return signed
}

func TestNewSecHandler_InvalidKey(t *testing.T) {
	_, err := v1handler.NewSecHandler(&v1handler.SecHandlerOptions{PublicKey: "not a pem"})
	require.Error(t, err)
}

func TestHandleBearerAuth(t *testing.T) {
	priv, pubPEM := genRSAKeys(t)
	otherPriv, _ := genRSAKeys(t)
	sh := newSecHandlerForTest(t, pubPEM)

	uid := uuid.New()
	now := time.Now()

	ctx, err := sh.HandleBearerAuth(context.Background(), signJWTRS256(t, priv, uid.String(), now, now.Add(time.Hour)))
	require.NoError(t, err)
	got, ok := ctx.Value(v1handler.UserIDKey).(domain.UserID)
	require.True(t, ok)
	require.Equal(t, domain.UserID(uid), got)

	hs256, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   uid.String(),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	noExpiry, err := jwt.NewWithClaims(jwt.SigningMethodRS256, jwt.RegisteredClaims{Subject: uid.String()}).
		SignedString(priv)
	require.NoError(t, err)

	rejected := map[string]string{
		"foreign signature":  signJWTRS256(t, otherPriv, uid.String(), now, now.Add(time.Hour)),
		"expired":            signJWTRS256(t, priv, uid.String(), now.Add(-2*time.Hour), now.Add(-time.Hour)),
		"subject not a uuid": signJWTRS256(t, priv, "alice@example.com", now, now.Add(time.Hour)),
		"hmac algorithm":     hs256,
		"no expiry":          noExpiry,
		"garbage":            "a.b.c",
	}
	for name, token := range rejected {
		t.Run(name, func(t *testing.T) {
			_, err := sh.HandleBearerAuth(context.Background(), token)
			require.ErrorIs(t, err, serrors.ErrUnauthorized)
		})
	}
}
