package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/craftwise/proposal-api/internal/config"
)

func testAuthConfig(secret string) *config.AuthConfig {
	return &config.AuthConfig{
		JWTSecret: secret,
		TokenTTL:  60,
		Issuer:    "craftwise-proposal-api",
	}
}

func TestJWTValidator_RoundTrip(t *testing.T) {
	validator := NewJWTValidator(testAuthConfig("test-secret"))

	user := &UserContext{
		UserID:      uuid.New(),
		AccountID:   uuid.New(),
		DisplayName: "Jane Doe",
		Email:       "jane@example.com",
		Roles:       []string{RoleAdmin},
	}

	token, err := validator.IssueToken(user)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	parsed, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.UserID, parsed.UserID)
	assert.Equal(t, user.AccountID, parsed.AccountID)
	assert.Equal(t, user.DisplayName, parsed.DisplayName)
	assert.Equal(t, user.Email, parsed.Email)
	assert.Equal(t, user.Roles, parsed.Roles)
	assert.True(t, parsed.IsAdmin())
}

func TestJWTValidator_WrongSecret(t *testing.T) {
	issuer := NewJWTValidator(testAuthConfig("secret-a"))
	validator := NewJWTValidator(testAuthConfig("secret-b"))

	token, err := issuer.IssueToken(&UserContext{
		UserID:    uuid.New(),
		AccountID: uuid.New(),
	})
	require.NoError(t, err)

	_, err = validator.ValidateToken(token)
	assert.Error(t, err)
}

func TestJWTValidator_DefaultsToMemberRole(t *testing.T) {
	validator := NewJWTValidator(testAuthConfig("test-secret"))

	token, err := validator.IssueToken(&UserContext{
		UserID:    uuid.New(),
		AccountID: uuid.New(),
	})
	require.NoError(t, err)

	parsed, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{RoleMember}, parsed.Roles)
	assert.False(t, parsed.IsAdmin())
}

func TestJWTValidator_GarbageToken(t *testing.T) {
	validator := NewJWTValidator(testAuthConfig("test-secret"))

	_, err := validator.ValidateToken("not-a-token")
	assert.Error(t, err)
}

func TestUserContext_GetDisplayNameInitials(t *testing.T) {
	u := &UserContext{DisplayName: "Jane van Doe"}
	assert.Equal(t, "JVD", u.GetDisplayNameInitials())

	empty := &UserContext{}
	assert.Equal(t, "", empty.GetDisplayNameInitials())
}
