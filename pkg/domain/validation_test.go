package domain_test

import (
	"strings"
	"testing"
	"time"

	"countervalidator/pkg/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestValidationCore_SourceAndMethod(t *testing.T) {
	c := domain.ValidationCore{}
	require.Equal(t, domain.SourceFile, c.Source())
	require.Equal(t, domain.MethodManual, c.Method())

	c.SushiCredentialsChecksum = "abc"
	c.APIKeyPrefix = "abcd1234"
	require.Equal(t, domain.SourceCounterAPI, c.Source())
	require.Equal(t, domain.MethodAPI, c.Method())
}

func TestValidationCore_SetErrorMessage(t *testing.T) {
	c := domain.ValidationCore{}
	c.SetErrorMessage(strings.Repeat("é", domain.MaxErrorMessageLength+10))
	require.Equal(t, domain.MaxErrorMessageLength, len([]rune(c.ErrorMessage)))

	c.SetErrorMessage("short")
	require.Equal(t, "short", c.ErrorMessage)
}

func TestExpirationAfter(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	require.Nil(t, domain.ExpirationAfter(now, 0))
	require.Equal(t, now.AddDate(0, 0, 30), *domain.ExpirationAfter(now, 30))
}

func TestValidation_Access(t *testing.T) {
	owner := &domain.User{ID: domain.UserID(uuid.New())}
	other := &domain.User{ID: domain.UserID(uuid.New())}
	admin := &domain.User{ID: domain.UserID(uuid.New()), IsValidatorAdmin: true}

	v := domain.Validation{Core: domain.ValidationCore{UserID: &owner.ID}}
	require.True(t, v.VisibleTo(owner))
	require.False(t, v.VisibleTo(other))
	require.False(t, v.VisibleTo(nil))
	require.True(t, v.VisibleTo(admin))
	require.True(t, v.ManageableBy(admin))
	require.False(t, v.ManageableBy(other))

	publicID := uuid.New()
	v.PublicID = &publicID
	require.True(t, v.VisibleTo(nil))
	require.True(t, v.VisibleTo(other))
	require.False(t, v.ManageableBy(other))
}

func TestValidation_IsCurrent(t *testing.T) {
	now := time.Now()
	v := domain.Validation{}
	require.True(t, v.IsCurrent(now))

	past := now.Add(-time.Second)
	v.Core.ExpirationDate = &past
	require.False(t, v.IsCurrent(now))
}

func TestValidation_ExtractValidationResult(t *testing.T) {
	v := domain.Validation{}
	require.Equal(t, domain.SeverityUnknown, v.ExtractValidationResult())

	v.ResultData = map[string]any{"result": "Fatal error"}
	require.Equal(t, domain.SeverityFatalError, v.ExtractValidationResult())
}

func TestNewValidationMessage(t *testing.T) {
	m, s := "Invalid value", "Invalid"
	msg := domain.NewValidationMessage(domain.ValidationID(uuid.New()), 3, domain.ModuleMessage{
		Level: "Error", Message: &m, Summary: &s,
	})
	require.Equal(t, 3, msg.Number)
	require.Equal(t, domain.SeverityError, msg.Severity)
	require.Equal(t, "Invalid value", msg.Message)
	require.Empty(t, msg.Hint)
	require.Empty(t, msg.Location)
}

func TestAPIKey_Usable(t *testing.T) {
	now := time.Now()
	k := domain.APIKey{}
	require.True(t, k.Usable(now))

	past := now.Add(-time.Hour)
	k.ExpiryDate = &past
	require.True(t, k.HasExpired(now))
	require.False(t, k.Usable(now))

	k.ExpiryDate = nil
	k.Revoked = true
	require.False(t, k.Usable(now))
}

func TestValidation_AddResult(t *testing.T) {
	str := func(s string) *string { return &s }
	v := domain.Validation{ID: domain.ValidationID(uuid.New())}

	msgs := v.AddResult(map[string]any{"result": "Error", "datetime": "now"}, []domain.ModuleMessage{
		{Level: "Error", Message: str("bad"), Summary: str("Bad value")},
		{Level: "Notice", Message: str("fyi"), Summary: str("Note"), Hint: str("look")},
		{Level: "Error", Message: str("worse"), Summary: str("Bad value")},
	})

	require.Len(t, msgs, 3)
	require.Equal(t, 1, msgs[0].Number)
	require.Equal(t, 3, msgs[2].Number)
	require.Equal(t, v.ID, msgs[1].ValidationID)
	require.Equal(t, "look", msgs[1].Hint)
	require.Equal(t, map[string]int{"Error": 2, "Notice": 1}, v.Core.Stats)
	require.Equal(t, domain.SeverityError, v.Core.ValidationResult)
	require.Equal(t, "now", v.ResultData["datetime"])
}
