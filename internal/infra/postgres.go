package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/models/db_models"
	"github.com/Abidstic/Manush-Tech/pkg/config"
	"github.com/Abidstic/Manush-Tech/pkg/logger"
)

var log = logger.New("infra")

func InitPostgresql(cfg *config.Config) *gorm.DB {
	// TranslateError lets repositories detect duplicate-key violations as
	// gorm.ErrDuplicatedKey instead of driver-specific errors.
	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalw("error connecting to database", "error", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Fatalw("error migrating database", "error", err)
	}

	return db
}

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&db_models.Role{},
		&db_models.User{},
		&db_models.Item{},
		&db_models.Meal{},
		&db_models.MealSchedule{},
		&db_models.Order{},
	)
}

func ClosePostgresql(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Errorw("error getting database instance", "error", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Errorw("error closing database connection", "error", err)
	} else {
		log.Infow("database connection closed")
	}
}
