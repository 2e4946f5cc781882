package controllers_fx

import (
	"go.uber.org/fx"

	"github.com/Abidstic/Manush-Tech/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewAccountController),
	fx.Provide(controllers.NewItemController),
	fx.Provide(controllers.NewOrderController),
	fx.Provide(controllers.NewScheduleController))
