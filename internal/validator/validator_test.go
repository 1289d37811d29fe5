package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=student company"`
}

func TestValidatePasses(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{
		Name:     "Asha",
		Email:    "asha@example.com",
		Password: "secret1",
		Role:     "student",
	})
	assert.NoError(t, err)
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Email: "not-an-email", Password: "abc", Role: "admin"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	assert.Equal(t, "This field is required", valErr.Errors["name"])
	assert.Equal(t, "Must be a valid email address", valErr.Errors["email"])
	assert.Equal(t, "Must be at least 6 items/characters long", valErr.Errors["password"])
	assert.Equal(t, "Must be one of: student, company", valErr.Errors["role"])
}

func TestValidateOmitemptySkipsEmptyRole(t *testing.T) {
	v := New()

	err := v.Validate(&registerPayload{Name: "Asha", Email: "asha@example.com", Password: "secret1"})
	assert.NoError(t, err)
}
