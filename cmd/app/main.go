package main

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/cmd/fx/account_fx"
	"github.com/Abidstic/Manush-Tech/cmd/fx/controllers_fx"
	"github.com/Abidstic/Manush-Tech/cmd/fx/db_fx"
	"github.com/Abidstic/Manush-Tech/cmd/fx/item_fx"
	"github.com/Abidstic/Manush-Tech/cmd/fx/order_fx"
	"github.com/Abidstic/Manush-Tech/cmd/fx/schedule_fx"
	"github.com/Abidstic/Manush-Tech/internal/api/controllers"
	"github.com/Abidstic/Manush-Tech/internal/infra"
	"github.com/Abidstic/Manush-Tech/pkg/config"
	"github.com/Abidstic/Manush-Tech/pkg/logger"
	"github.com/Abidstic/Manush-Tech/pkg/middleware"
	"github.com/Abidstic/Manush-Tech/pkg/utils"
)

var log = logger.New("server")

func main() {
	app := fx.New(
		fx.Provide(config.Load),
		db_fx.Module,
		account_fx.Module,
		item_fx.Module,
		schedule_fx.Module,
		order_fx.Module,
		controllers_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(SeedIfConfigured),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func SeedIfConfigured(cfg *config.Config, db *gorm.DB) error {
	if !cfg.SeedOnStart {
		return nil
	}
	log.Infow("seeding reference data")
	return infra.Seed(db)
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine, cfg *config.Config) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "port", cfg.Port)
				if err := engine.Run(":" + cfg.Port); err != nil {
					log.Fatalw("failed to start server", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	accountController *controllers.AccountController,
	itemController *controllers.ItemController,
	orderController *controllers.OrderController,
	scheduleController *controllers.ScheduleController) *gin.Engine {

	r := gin.Default()
	r.Use(middleware.TraceIDMiddleware())
	r.Use(middleware.CORSMiddleware())

	RegisterRoutes(r, accountController, itemController, orderController, scheduleController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	accountController *controllers.AccountController,
	itemController *controllers.ItemController,
	orderController *controllers.OrderController,
	scheduleController *controllers.ScheduleController) {

	auth := middleware.JWTAuthMiddleware()
	adminOnly := middleware.RoleMiddleware(utils.RoleAdmin)

	userGroup := r.Group("/api/user")
	userGroup.POST("/register", accountController.Register)
	userGroup.POST("/login", accountController.Login)
	userGroup.GET("/", accountController.ListUsers)
	userGroup.GET("/:id", auth, accountController.GetUser)
	userGroup.PUT("/update/:id", auth, adminOnly, accountController.UpdateUser)
	userGroup.DELETE("/user/:id", auth, adminOnly, accountController.DeleteUser)

	itemGroup := r.Group("/api/items")
	itemGroup.GET("/", itemController.ListItems)
	itemGroup.GET("/category/:category", itemController.ListItemsByCategory)
	itemGroup.POST("/addItems", auth, adminOnly, itemController.CreateItem)
	itemGroup.PUT("/:id", auth, adminOnly, itemController.UpdateItem)
	itemGroup.DELETE("/delete/:id", auth, adminOnly, itemController.DeleteItem)

	orderGroup := r.Group("/api/order")
	orderGroup.GET("/weekly-schedule", scheduleController.GetWeeklySchedule)
	orderGroup.POST("/update-choice", auth, orderController.UpdateChoice)
	orderGroup.POST("/schedule-month", auth, orderController.ScheduleMonth)
	orderGroup.GET("/user-orders/:userId", auth, orderController.GetUserOrders)

	scheduleGroup := r.Group("/api/schedule")
	scheduleGroup.GET("/all", auth, scheduleController.GetAllUserChoices)
	scheduleGroup.GET("/user/:userId", auth, scheduleController.GetUserChoices)
}
