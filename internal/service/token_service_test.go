package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/abitur-api/internal/models"
	appErrors "github.com/noah-isme/abitur-api/pkg/errors"
)

func newTestTokenService() *TokenService {
	return NewTokenService(TokenConfig{Secret: "secret", Expiry: time.Hour, Issuer: "abitur-api"})
}

func TestTokenIssueAndValidate(t *testing.T) {
	svc := newTestTokenService()

	token, expiresAt, err := svc.Issue("ws-1")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := svc.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "ws-1", claims.WorksheetID)
	assert.Equal(t, "ws-1", claims.Subject)
}

func TestTokenValidateRejectsForeignSecret(t *testing.T) {
	other := NewTokenService(TokenConfig{Secret: "other", Expiry: time.Hour, Issuer: "abitur-api"})
	token, _, err := other.Issue("ws-1")
	require.NoError(t, err)

	_, err = newTestTokenService().Validate(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenValidateRejectsExpired(t *testing.T) {
	svc := newTestTokenService()
	svc.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, _, err := svc.Issue("ws-1")
	require.NoError(t, err)

	svc.now = time.Now
	_, err = svc.Validate(token)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenValidateRejectsMissingWorksheet(t *testing.T) {
	claims := &models.WorksheetClaims{RegisteredClaims: jwt.RegisteredClaims{
		Issuer:    "abitur-api",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = newTestTokenService().Validate(signed)
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}

func TestTokenValidateRejectsGarbage(t *testing.T) {
	_, err := newTestTokenService().Validate("not-a-token")
	assert.ErrorIs(t, err, appErrors.ErrUnauthorized)
}
