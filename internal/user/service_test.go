package user

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_EnsureAdmin(t *testing.T) {
	repo := NewInMemoryRepository(nil)
	svc := NewService(repo, testSecret)

	require.NoError(t, svc.EnsureAdmin("", ""))
	assert.ErrorIs(t, svc.EnsureAdmin("admin@printvogue.com", "123"), ErrWeakPassword)

	require.NoError(t, svc.EnsureAdmin("Admin@PrintVogue.com", "adminpass"))
	require.NoError(t, svc.EnsureAdmin("admin@printvogue.com", "adminpass"))

	users, err := svc.List()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, RoleAdmin, users[0].Role)
	assert.NotEqual(t, "adminpass", users[0].Password)

	u, err := svc.Authenticate("admin@printvogue.com", "adminpass")
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, u.Role)
}

func TestService_IssueToken(t *testing.T) {
	svc := NewService(NewInMemoryRepository(nil), testSecret)
	issued := time.Now().Truncate(time.Second)
	svc.now = func() time.Time { return issued }

	signed, err := svc.IssueToken(User{ID: 3, Email: "a@example.com", Role: RoleCustomer})
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	_, err = jwt.ParseWithClaims(signed, claims, func(*jwt.Token) (any, error) { return []byte(testSecret), nil })
	require.NoError(t, err)
	assert.EqualValues(t, 3, claims["user_id"])
	assert.Equal(t, "a@example.com", claims["email"])
	assert.Equal(t, RoleCustomer, claims["role"])
	assert.EqualValues(t, issued.Add(72*time.Hour).Unix(), claims["exp"])
}
