package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

func TestRegisterAndLogin(t *testing.T) {
	db := newTestDB(t)
	createRoles(t, db)
	svc := NewAccountService(repositories.NewUserRepository(db))

	reg, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "New User",
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.NotZero(t, reg.UserID)
	assert.NotEmpty(t, reg.Token)

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "new@example.com",
		Password: "secret123",
	})
	require.NoError(t, err)
	assert.Equal(t, reg.UserID, login.UserID)
	assert.Equal(t, "User", login.Role, "registration without a role defaults to User")
	assert.False(t, login.IsBanned)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	createUser(t, db, "Existing", "taken@example.com", userRole.ID, false)
	svc := NewAccountService(repositories.NewUserRepository(db))

	_, err := svc.Register(context.Background(), request_models.RegisterRequest{
		Name:     "Impostor",
		Email:    "taken@example.com",
		Password: "secret123",
	})
	require.ErrorIs(t, err, utils.ErrEmailAlreadyExists)
}

func TestLoginWrongPassword(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	createUser(t, db, "User", "user@example.com", userRole.ID, false)
	svc := NewAccountService(repositories.NewUserRepository(db))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})
	require.ErrorIs(t, err, utils.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	db := newTestDB(t)
	createRoles(t, db)
	svc := NewAccountService(repositories.NewUserRepository(db))

	_, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "missing@example.com",
		Password: "whatever",
	})
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}

func TestLoginReportsBanState(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	createUser(t, db, "Banned", "banned@example.com", userRole.ID, true)
	svc := NewAccountService(repositories.NewUserRepository(db))

	login, err := svc.Login(context.Background(), request_models.LoginRequest{
		Email:    "banned@example.com",
		Password: "secret123",
	})
	require.NoError(t, err, "banned users can still log in; ordering is what is blocked")
	assert.True(t, login.IsBanned)
}

func TestUpdateUserBanFlag(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	user := createUser(t, db, "User", "user@example.com", userRole.ID, false)
	svc := NewAccountService(repositories.NewUserRepository(db))

	banned := true
	updated, err := svc.UpdateUser(context.Background(), user.ID, request_models.UpdateUserRequest{
		IsBanned: &banned,
	})
	require.NoError(t, err)
	assert.True(t, updated.IsBanned)
	assert.Equal(t, "User", updated.Name, "unset fields keep their values")
}

func TestDeleteUser(t *testing.T) {
	db := newTestDB(t)
	_, userRole := createRoles(t, db)
	user := createUser(t, db, "User", "user@example.com", userRole.ID, false)
	svc := NewAccountService(repositories.NewUserRepository(db))

	require.NoError(t, svc.DeleteUser(context.Background(), user.ID))

	_, err := svc.GetUser(context.Background(), user.ID)
	require.ErrorIs(t, err, utils.ErrUserNotFound)

	err = svc.DeleteUser(context.Background(), user.ID)
	require.ErrorIs(t, err, utils.ErrUserNotFound)
}
