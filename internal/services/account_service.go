package services

import (
	"context"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/internal/models/request_models"
	"github.com/Abidstic/Manush-Tech/internal/models/response_models"
	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

type AccountServiceInterface interface {
	Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error)
	GetUser(ctx context.Context, userID uint) (*response_models.UserResponse, error)
	ListUsers(ctx context.Context) ([]response_models.UserResponse, error)
	UpdateUser(ctx context.Context, userID uint, request request_models.UpdateUserRequest) (*response_models.UserResponse, error)
	DeleteUser(ctx context.Context, userID uint) error
}

type AccountService struct {
	userRepo repositories.UserRepository
}

func NewAccountService(userRepo repositories.UserRepository) AccountServiceInterface {
	return &AccountService{userRepo: userRepo}
}

func (a *AccountService) Register(ctx context.Context, request request_models.RegisterRequest) (*response_models.RegisterResponse, error) {
	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	roleID := request.RoleID
	if roleID == 0 {
		role, err := a.userRepo.FindRoleByName(ctx, string(utils.RoleUser))
		if err != nil || role == nil {
			return nil, utils.ErrDatabaseError
		}
		roleID = role.ID
	}

	hashed, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashed,
		RoleID:   roleID,
	}
	if err := a.userRepo.Insert(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}

	// reload for the role name carried in the token
	created, err := a.userRepo.FindByID(ctx, user.ID)
	if err != nil || created == nil {
		return nil, utils.ErrDatabaseError
	}

	token, err := utils.CreateToken(created.ID, created.Role.RoleName)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.RegisterResponse{UserID: created.ID, Token: token}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.LoginResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if err := utils.ComparePasswords(user.Password, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := utils.CreateToken(user.ID, user.Role.RoleName)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.LoginResponse{
		UserID:   user.ID,
		Token:    token,
		Role:     user.Role.RoleName,
		IsBanned: user.IsBanned,
	}, nil
}

func (a *AccountService) GetUser(ctx context.Context, userID uint) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (a *AccountService) ListUsers(ctx context.Context) ([]response_models.UserResponse, error) {
	users, err := a.userRepo.ListAll(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	responses := make([]response_models.UserResponse, 0, len(users))
	for i := range users {
		responses = append(responses, toUserResponse(&users[i]))
	}
	return responses, nil
}

func (a *AccountService) UpdateUser(ctx context.Context, userID uint, request request_models.UpdateUserRequest) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrUserNotFound
	}

	if request.Name != "" {
		user.Name = request.Name
	}
	if request.Email != "" {
		user.Email = request.Email
	}
	if request.RoleID != 0 {
		user.RoleID = request.RoleID
	}
	if request.IsBanned != nil {
		user.IsBanned = *request.IsBanned
	}

	if err := a.userRepo.Update(ctx, user); err != nil {
		return nil, utils.ErrDatabaseError
	}
	resp := toUserResponse(user)
	return &resp, nil
}

func (a *AccountService) DeleteUser(ctx context.Context, userID uint) error {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if user == nil {
		return utils.ErrUserNotFound
	}
	if err := a.userRepo.Delete(ctx, userID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func toUserResponse(user *db_models.User) response_models.UserResponse {
	return response_models.UserResponse{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		RoleID:   user.RoleID,
		IsBanned: user.IsBanned,
	}
}
