package schedule_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/repositories"
	"github.com/Abidstic/Manush-Tech/internal/services"
)

var Module = fx.Provide(
	provideScheduleService, provideScheduleRepo)

func provideScheduleRepo(db *gorm.DB) repositories.ScheduleRepository {
	return repositories.NewScheduleRepository(db)
}

func provideScheduleService(
	scheduleRepo repositories.ScheduleRepository,
	orderRepo repositories.OrderRepository,
) services.ScheduleServiceInterface {
	return services.NewScheduleService(scheduleRepo, orderRepo)
}
