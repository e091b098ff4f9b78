package services

import (
	"strings"
	"testing"

	"github.com/smiggiddy/100daysofcode-blog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterFirstUserBecomesAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	first, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, first.Role)
	assert.True(t, first.IsAdmin())

	second, err := svc.Register("Bob", "bob@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, models.RoleMember, second.Role)
	assert.False(t, second.IsAdmin())
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	user, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)
	assert.NotEqual(t, "secret", user.Password)
	assert.True(t, strings.HasPrefix(user.Password, "pbkdf2:sha256:"))
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "alice@example.com", "other")
	assert.ErrorIs(t, err, ErrDuplicateEmail)

	// Первый аккаунт не пострадал
	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
	user, err := svc.Login("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Alice", user.Name)
}

func TestLoginSuccess(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	user, err := svc.Login("alice@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)

	// Email нечувствителен к регистру
	user, err = svc.Login("ALICE@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	_, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	_, wrongPassword := svc.Login("alice@example.com", "not-the-password")
	_, unknownEmail := svc.Login("nobody@example.com", "secret")

	assert.ErrorIs(t, wrongPassword, ErrInvalidCredentials)
	assert.ErrorIs(t, unknownEmail, ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)
}

func TestUserByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register("Alice", "alice@example.com", "secret")
	require.NoError(t, err)

	user, err := svc.UserByID(registered.ID)
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)

	_, err = svc.UserByID(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}
