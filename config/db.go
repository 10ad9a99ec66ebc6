package config

import (
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/eternity-labs/catalog-admin/models"
)

// InitDB opens the database selected by cfg.DBDriver and migrates the
// schema. Error translation is on so unique-index collisions surface as
// gorm.ErrDuplicatedKey; foreign key creation is disabled because product
// references are weak (no cascade, no block).
func InitDB(cfg *Config) *gorm.DB {
	gormCfg := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Warn),
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var (
		db  *gorm.DB
		err error
	)
	switch cfg.DBDriver {
	case "postgres":
		if cfg.PostgresDSN == "" {
			log.Fatal("[db] postgres selected but postgres_dsn empty")
		}
		db, err = gorm.Open(postgres.Open(cfg.PostgresDSN), gormCfg)
	case "sqlite":
		db, err = gorm.Open(sqlite.Open(cfg.SQLitePath), gormCfg)
	default:
		log.Fatalf("[db] unknown db_driver: %s", cfg.DBDriver)
	}
	if err != nil {
		log.Fatalf("[db] connection error: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Category{},
		&models.Label{},
		&models.Product{},
		&models.User{},
	); err != nil {
		log.Fatalf("[db] automigrate error: %v", err)
	}
	return db
}
