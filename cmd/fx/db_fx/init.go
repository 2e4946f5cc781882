package db_fx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Abidstic/Manush-Tech/internal/infra"
	"github.com/Abidstic/Manush-Tech/pkg/config"
)

var Module = fx.Provide(
	provideDB)

func provideDB(cfg *config.Config) *gorm.DB {
	return infra.InitPostgresql(cfg)
}
