package db_models

type Role struct {
	BaseModel
	RoleName string `gorm:"unique" json:"roleName"`
}

type User struct {
	BaseModel
	Name     string `json:"name"`
	Email    string `gorm:"unique" json:"email"`
	Password string `json:"-"`
	RoleID   uint   `json:"roleId"`
	Role     Role   `json:"-"`
	IsBanned bool   `gorm:"default:false" json:"isBanned"`

	Orders []Order `json:"-"`
}
