// internal/utils/jwt_test.go
package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateJWT(t *testing.T) {
	userID := uuid.New()

	token, err := GenerateJWT(userID, "student@campus.edu", "student", 1)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "student@campus.edu", claims.Email)
	assert.Equal(t, "student", claims.Role)
	assert.Equal(t, "placement-portal", claims.Issuer)
}

func TestValidateJWTRejectsGarbage(t *testing.T) {
	_, err := ValidateJWT("not.a.token")
	assert.Error(t, err)
}

func TestValidateJWTRejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT(uuid.New(), "x@campus.edu", "admin", 1)
	require.NoError(t, err)

	SetJWTSecret("a-different-secret")
	defer SetJWTSecret("campus-placement-secret")

	_, err = ValidateJWT(token)
	assert.Error(t, err)
}
