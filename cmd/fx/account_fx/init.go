package account_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/internal/services"
)

var Module = fx.Provide(
	provideAccountService, provideUserRepo)

func provideUserRepo(db *gorm.DB) repositories.UserRepository {
	return repositories.NewUserRepository(db)
}

func provideAccountService(userRepo repositories.UserRepository) services.AccountServiceInterface {
	return services.NewAccountService(userRepo)
}
