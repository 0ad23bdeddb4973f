package services_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rocketfood/pkg/apperr"
	"rocketfood/repository"
	"rocketfood/services"
)

func TestAuthService_RegisterAndLogin(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	user, err := svc.Register("Alice", "Alice@Example.com ", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEqual(t, "hunter22", user.Password) // stored hashed

	token, logged, err := svc.Login("alice@example.com", "hunter22")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, user.ID, logged.ID)
}

func TestAuthService_LoginWrongPassword(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	_, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, _, err = svc.Login("alice@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrBadCredentials)
}

func TestAuthService_LoginUnknownUser(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	_, _, err := svc.Login("nobody@example.com", "whatever")
	assert.ErrorIs(t, err, services.ErrBadCredentials)
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	db := setupDB(t)
	svc := services.NewAuthService(repository.NewUserRepository(db), "test-secret", time.Hour)

	_, err := svc.Register("Alice", "alice@example.com", "hunter22")
	require.NoError(t, err)

	_, err = svc.Register("Imposter", "alice@example.com", "hunter23")
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}
