package item_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/internal/services"
)

var Module = fx.Provide(
	provideItemService, provideItemRepo)

func provideItemRepo(db *gorm.DB) repositories.ItemRepository {
	return repositories.NewItemRepository(db)
}

func provideItemService(itemRepo repositories.ItemRepository) services.ItemServiceInterface {
	return services.NewItemService(itemRepo)
}
