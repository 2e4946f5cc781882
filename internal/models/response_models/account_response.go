package response_models

type RegisterResponse struct {
	UserID uint   `json:"userId"`
	Token  string `json:"token"`
}

type LoginResponse struct {
	UserID   uint   `json:"userId"`
	Token    string `json:"token"`
	Role     string `json:"role"`
	IsBanned bool   `json:"isBanned"`
}

type UserResponse struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	RoleID   uint   `json:"roleId"`
	IsBanned bool   `json:"isBanned"`
}
