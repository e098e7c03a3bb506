package account

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"countervalidator/internal/config"
	"countervalidator/pkg/domain"
	"countervalidator/pkg/serrors"
	"countervalidator/pkg/storage"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const keyAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

var errNoSigningKey = serrors.With(serrors.ErrUnavailable, "token signing is not configured")

// ErrInactiveUser is returned for credentials that belong to a deleted or
// deactivated user. Such requests are served as anonymous.
var ErrInactiveUser = serrors.With(serrors.ErrUnauthorized, "user not found or inactive")

// Options configure token issuing.
type Options struct {
	// PrivateKey is the PEM encoded RSA key used to sign tokens. Login is
	// disabled when empty.
	PrivateKey string
	TokenTTL   time.Duration
	// BcryptCost is used for passwords and API keys; zero means bcrypt.DefaultCost.
	BcryptCost int
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey: cfg.JWT.PrivateKey,
		TokenTTL:   cfg.JWT.TTL,
	}
}

type service struct {
	options    Options
	storage    storage.Storage
	privateKey *rsa.PrivateKey
	now        func() time.Time
}

// New creates an account Service backed by storage.
func New(storage storage.Storage, options Options) (Service, error) {
	if options.TokenTTL <= 0 {
		options.TokenTTL = 24 * time.Hour
	}
	if options.BcryptCost == 0 {
		options.BcryptCost = bcrypt.DefaultCost
	}
	s := &service{options: options, storage: storage, now: time.Now}
	if options.PrivateKey != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(options.PrivateKey))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		s.privateKey = key
	}

	return s, nil
}

func randomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("could not read random bytes: %w", err)
	}
	for i := range b {
		b[i] = keyAlphabet[int(b[i])%len(keyAlphabet)]
	}

	return string(b), nil
}

func (s *service) Login(ctx context.Context, email, password string) (string, error) {
	invalid := serrors.With(serrors.ErrUnauthorized, "invalid email or password")

	user, err := s.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return "", fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive || user.PasswordHash == "" {
		return "", invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", invalid
	}

	return s.issueToken(user.ID.String(), s.now())
}

func (s *service) IssueToken(userID domain.UserID) (string, error) {
	return s.issueToken(userID.String(), s.now())
}

func (s *service) CreateUser(ctx context.Context, in NewUser) (*domain.User, error) {
	fields := serrors.NewFieldError()
	addr, err := mail.ParseAddress(strings.TrimSpace(in.Email))
	if err != nil || addr.Address != strings.TrimSpace(in.Email) {
		fields.Add("email", "Enter a valid email address.")
	}
	if len(in.Password) < 8 {
		fields.Add("password", "Password must be at least 8 characters long.")
	}
	if len(in.Password) > 72 {
		fields.Add("password", "Password must be at most 72 bytes long.")
	}
	if err := fields.Err(); err != nil {
		return nil, err
	}

	existing, err := s.storage.UserByEmail(ctx, addr.Address)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if existing != nil {
		return nil, serrors.With(serrors.ErrConflict, "a user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.options.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("could not hash password: %w", err)
	}
	user, err := s.storage.StoreUser(ctx, domain.User{
		ID:               domain.UserID(uuid.New()),
		Email:            addr.Address,
		PasswordHash:     string(hash),
		FirstName:        in.FirstName,
		LastName:         in.LastName,
		IsValidatorAdmin: in.IsValidatorAdmin,
		IsSuperuser:      in.IsSuperuser,
		IsActive:         true,
		EmailVerified:    in.EmailVerified,

		ReceiveOperatorEmails: in.ReceiveOperatorEmails,
	})
	if errors.Is(err, storage.ErrDuplicate) {
		return nil, serrors.Wrap(serrors.ErrConflict, err, "a user with this email already exists")
	}
	if err != nil {
		return nil, fmt.Errorf("could not store user: %w", err)
	}

	return user, nil
}

func (s *service) User(ctx context.Context, id domain.UserID) (*domain.User, error) {
	user, err := s.storage.UserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}

func (s *service) AuthenticateAPIKey(ctx context.Context, key string) (*domain.User, *domain.APIKey, error) {
	invalid := serrors.With(serrors.ErrUnauthorized, "invalid API key")

	prefix, _, ok := strings.Cut(key, ".")
	if !ok || len(prefix) != domain.APIKeyPrefixLength {
		return nil, nil, invalid
	}
	apiKey, err := s.storage.APIKeyByPrefix(ctx, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("could not get API key: %w", err)
	}
	if apiKey == nil || !apiKey.Usable(s.now()) {
		return nil, nil, invalid
	}
	if err := bcrypt.CompareHashAndPassword([]byte(apiKey.HashedKey), []byte(key)); err != nil {
		return nil, nil, invalid
	}

	user, err := s.User(ctx, apiKey.UserID)
	if err != nil {
		return nil, nil, err
	}

	return user, apiKey, nil
}

func (s *service) APIKeys(ctx context.Context, userID domain.UserID) ([]domain.APIKey, error) {
	keys, err := s.storage.UserAPIKeys(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("could not get API keys: %w", err)
	}

	return keys, nil
}

func (s *service) APIKey(ctx context.Context, userID domain.UserID, prefix string) (*domain.APIKey, error) {
	key, err := s.storage.APIKeyByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("could not get API key: %w", err)
	}
	// other users' keys are reported as missing
	if key == nil || key.UserID != userID {
		return nil, serrors.With(serrors.ErrNotFound, "API key not found")
	}

	return key, nil
}

func (s *service) CreateAPIKey(ctx context.Context, userID domain.UserID, name string) (*domain.APIKey, string, error) {
	name = strings.TrimSpace(name)
	fields := serrors.NewFieldError()
	switch {
	case name == "":
		fields.Add("name", "This field may not be blank.")
	case len([]rune(name)) > domain.APIKeyNameMaxLength:
		fields.Add("name", fmt.Sprintf("Ensure this field has no more than %d characters.", domain.APIKeyNameMaxLength))
	}
	if err := fields.Err(); err != nil {
		return nil, "", err
	}

	prefix, err := randomString(domain.APIKeyPrefixLength)
	if err != nil {
		return nil, "", err
	}
	secret, err := randomString(domain.APIKeySecretLength)
	if err != nil {
		return nil, "", err
	}
	plain := prefix + "." + secret
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), s.options.BcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("could not hash API key: %w", err)
	}

	key, err := s.storage.StoreAPIKey(ctx, domain.APIKey{
		ID:        domain.APIKeyID(uuid.New()),
		UserID:    userID,
		Prefix:    prefix,
		HashedKey: string(hash),
		Name:      name,
	})
	if err != nil {
		return nil, "", fmt.Errorf("could not store API key: %w", err)
	}

	return key, plain, nil
}

func (s *service) RevokeAPIKey(ctx context.Context, userID domain.UserID, prefix string) (*domain.APIKey, error) {
	key, err := s.APIKey(ctx, userID, prefix)
	if err != nil {
		return nil, err
	}
	if key.Revoked {
		return nil, serrors.With(serrors.ErrBadRequest, "This API key has already been revoked")
	}

	revoked, err := s.storage.RevokeAPIKey(ctx, key.ID)
	if err != nil {
		return nil, fmt.Errorf("could not revoke API key: %w", err)
	}
	if revoked == nil {
		return nil, errors.New("API key disappeared while revoking")
	}

	return revoked, nil
}
