package token

import (
	"testing"
	"time"

	"internship_backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIssueVerifyRoundtrip(t *testing.T) {
	svc, err := NewService("test-secret", time.Hour)
	require.NoError(t, err)

	tokenStr, err := svc.Issue("user-123", models.UserRoleCompany)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)

	claims, err := svc.Verify(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, models.UserRoleCompany, claims.Role)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc, err := NewService("test-secret", time.Hour)
	require.NoError(t, err)

	// Build a token whose expiry is already in the past.
	expired := &Service{secret: []byte("test-secret"), ttl: -2 * time.Hour}
	tokenStr, err := expired.Issue("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	_, err = svc.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	svc, err := NewService("test-secret", time.Hour)
	require.NoError(t, err)

	for _, bad := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(bad)
		assert.ErrorIs(t, err, ErrTokenInvalid, "input %q", bad)
	}
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issuer, err := NewService("secret-one", time.Hour)
	require.NoError(t, err)
	verifier, err := NewService("secret-two", time.Hour)
	require.NoError(t, err)

	tokenStr, err := issuer.Issue("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	_, err = verifier.Verify(tokenStr)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyRejectsTamperedToken(t *testing.T) {
	svc, err := NewService("test-secret", time.Hour)
	require.NoError(t, err)

	tokenStr, err := svc.Issue("user-123", models.UserRoleStudent)
	require.NoError(t, err)

	tampered := []byte(tokenStr)
	if tampered[len(tampered)-1] == 'A' {
		tampered[len(tampered)-1] = 'B'
	} else {
		tampered[len(tampered)-1] = 'A'
	}
	_, err = svc.Verify(string(tampered))
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestNewServiceRequiresSecret(t *testing.T) {
	_, err := NewService("", time.Hour)
	assert.Error(t, err)
}
