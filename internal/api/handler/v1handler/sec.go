package v1handler

import (
	"context"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"countervalidator/internal/account"
	"countervalidator/internal/config"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type ctxKey string

const (
	// UserIDKey holds the domain.UserID of a verified bearer token.
	UserIDKey ctxKey = "userID"
	// UserKey holds the authenticated *domain.User.
	UserKey ctxKey = "user"
	// APIKeyKey holds the *domain.APIKey of requests authenticated by API key.
	APIKeyKey ctxKey = "apiKey"
)

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM encoded RSA key bearer tokens are verified with.
	PublicKey string
}

// NewSecHandlerOptions constructs SecHandlerOptions from the provided application config.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{PublicKey: cfg.JWT.PublicKey}
}

// SecHandler authenticates requests with either "Bearer <jwt>" or "Api-Key <key>".
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse JWT public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies an RS256 token and stores its subject under UserIDKey.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	var claims jwt.RegisteredClaims
	if _, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.publicKey, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}), jwt.WithExpirationRequired()); err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token subject")
	}

	return context.WithValue(ctx, UserIDKey, domain.UserID(id)), nil
}

// authenticate resolves the Authorization header. A request without one is anonymous.
func (s *SecHandler) authenticate(ctx context.Context, accounts account.Service, header string) (context.Context, error) {
	scheme, credentials, ok := strings.Cut(strings.TrimSpace(header), " ")
	if !ok {
		return ctx, serrors.With(serrors.ErrUnauthorized, "invalid authorization header")
	}
	credentials = strings.TrimSpace(credentials)

	switch strings.ToLower(scheme) {
	case "bearer":
		ctx, err := s.HandleBearerAuth(ctx, credentials)
		if err != nil {
			return ctx, err
		}
		userID, _ := ctx.Value(UserIDKey).(domain.UserID)
		user, err := accounts.User(ctx, userID)
		if err != nil {
			return ctx, fmt.Errorf("could not load user: %w", err)
		}

		return context.WithValue(ctx, UserKey, user), nil
	case "api-key":
		user, key, err := accounts.AuthenticateAPIKey(ctx, credentials)
		if err != nil {
			return ctx, fmt.Errorf("could not authenticate API key: %w", err)
		}
		ctx = context.WithValue(ctx, UserIDKey, user.ID)
		ctx = context.WithValue(ctx, UserKey, user)

		return context.WithValue(ctx, APIKeyKey, key), nil
	default:
		return ctx, serrors.With(serrors.ErrUnauthorized, "unsupported authorization scheme")
	}
}

// Middleware attaches the authenticated user to the request context. Invalid
// credentials are rejected with 401. Missing ones, or ones of an inactive user,
// leave the request anonymous.
func (s *SecHandler) Middleware(h *Handler) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				next.ServeHTTP(w, r)

				return
			}
			ctx, err := s.authenticate(r.Context(), h.deps.Account, header)
			if errors.Is(err, account.ErrInactiveUser) {
				next.ServeHTTP(w, r)

				return
			}
			if err != nil {
				h.writeError(w, r, err)

				return
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user, or nil for anonymous requests.
func CurrentUser(ctx context.Context) *domain.User {
	u, _ := ctx.Value(UserKey).(*domain.User)

	return u
}

// CurrentAPIKey returns the API key the request was authenticated with, if any.
func CurrentAPIKey(ctx context.Context) *domain.APIKey {
	k, _ := ctx.Value(APIKeyKey).(*domain.APIKey)

	return k
}

// APIKeyThrottleKey throttles API key requests per user, not per key.
func APIKeyThrottleKey(r *http.Request) (string, bool) {
	if CurrentAPIKey(r.Context()) == nil {
		return "", false
	}
	u := CurrentUser(r.Context())
	if u == nil {
		return "", false
	}

	return u.ID.String(), true
}

var errNotAuthenticated = serrors.With(serrors.ErrUnauthorized, "Authentication credentials were not provided.")

func requireUser(r *http.Request) (*domain.User, error) {
	u := CurrentUser(r.Context())
	if u == nil {
		return nil, errNotAuthenticated
	}

	return u, nil
}

// requireVerified additionally requires a verified email address.
func requireVerified(r *http.Request) (*domain.User, error) {
	u, err := requireUser(r)
	if err != nil {
		return nil, err
	}
	if !u.EmailVerified {
		return nil, serrors.With(serrors.ErrForbidden, "You need to verify your email address first.")
	}

	return u, nil
}

func requireAdmin(r *http.Request) (*domain.User, error) {
	u, err := requireUser(r)
	if err != nil {
		return nil, err
	}
	if !u.IsAdmin() {
		return nil, serrors.With(serrors.ErrForbidden, "You do not have permission to perform this action.")
	}

	return u, nil
}
