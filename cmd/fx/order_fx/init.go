package order_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/internal/services"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

var Module = fx.Provide(
	provideOrderService, provideOrderRepo, provideClock)

func provideOrderRepo(db *gorm.DB) repositories.OrderRepository {
	return repositories.NewOrderRepository(db)
}

func provideClock() utils.Clock {
	return utils.NewSystemClock()
}

func provideOrderService(
	orderRepo repositories.OrderRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	clock utils.Clock,
) services.OrderServiceInterface {
	return services.NewOrderService(orderRepo, scheduleRepo, userRepo, clock)
}
