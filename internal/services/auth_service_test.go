package services

import (
	"context"
	"testing"

	"internship_backend/internal/apperrors"
	"internship_backend/internal/models"
	"internship_backend/internal/services/dto"
	"internship_backend/internal/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo, *recordingNotifier) {
	t.Helper()
	users := newFakeUserRepo()
	tokens, err := token.NewService("test-secret", 0)
	require.NoError(t, err)
	notifier := &recordingNotifier{}
	return NewAuthService(users, tokens, notifier), users, notifier
}

func TestRegisterStoresLowercasedEmail(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "  Asha@Example.COM ",
		Password: "secret1",
		Role:     models.UserRoleStudent,
	})
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", resp.Email)
	assert.True(t, resp.IsNewUser)
	assert.NotEmpty(t, resp.Token)

	stored, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", stored.Email)
}

func TestRegisterDefaultsRoleToStudent(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	resp, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleStudent, resp.Role)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Role:     models.UserRole("admin"),
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidUserRole)
}

func TestRegisterDuplicateEmailAnyCase(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha Again",
		Email:    "ASHA@example.com",
		Password: "secret2",
	})
	assert.ErrorIs(t, err, apperrors.ErrEmailExists)
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "abc",
	})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 400, appErr.HTTPCode)
}

func TestRegisterStoresHashNotPlaintext(t *testing.T) {
	svc, users, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	stored, err := users.FindByEmail(context.Background(), "asha@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret1")))
}

func TestRegisterSendsWelcome(t *testing.T) {
	svc, _, notifier := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"asha@example.com"}, notifier.welcomes)
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "secret1",
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _ := newAuthFixture(t)

	_, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "asha@example.com",
		Password: "wrong-pass",
	})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginHappyPath(t *testing.T) {
	svc, _, notifier := newAuthFixture(t)

	reg, err := svc.Register(context.Background(), &dto.RegisterRequest{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Role:     models.UserRoleCompany,
	})
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &dto.LoginRequest{
		Email:    "Asha@Example.com",
		Password: "secret1",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, resp.UserID)
	assert.Equal(t, models.UserRoleCompany, resp.Role)
	assert.False(t, resp.IsNewUser)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, []string{"asha@example.com"}, notifier.loginAlerts)
}
