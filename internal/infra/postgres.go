package infra

import (
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"herbverse/internal/config"
	"herbverse/internal/models/db_models"
)

func InitPostgresql(cfg *config.Config, log *zap.Logger) (*gorm.DB, error) {
	gormLogger := logger.New(zap.NewStdLog(log.Named("gorm")), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  logger.Warn,
		IgnoreRecordNotFoundError: true,
	})

	db, err := gorm.Open(postgres.Open(cfg.PostgresURL), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect database")
	}

	if err := autoMigrate(db); err != nil {
		return nil, err
	}

	log.Info("PostgreSQL connected")
	return db, nil
}

func autoMigrate(db *gorm.DB) error {
	models := []struct {
		name  string
		model interface{}
	}{
		{"account", &db_models.Account{}},
		{"plant", &db_models.Plant{}},
		{"virtual tour", &db_models.VirtualTour{}},
		{"tour stop", &db_models.TourStop{}},
		{"bookmark", &db_models.Bookmark{}},
		{"note", &db_models.Note{}},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m.model); err != nil {
			return errors.Wrapf(err, "migrate %s", m.name)
		}
	}
	return nil
}

func ClosePostgresql(db *gorm.DB, log *zap.Logger) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Error("Error getting database instance", zap.Error(err))
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Error("Error closing database connection", zap.Error(err))
	} else {
		log.Info("PostgreSQL database connection closed successfully")
	}
}

func StartTransaction(db *gorm.DB) *gorm.DB {
	tx := db.Begin()
	if tx.Error != nil {
		zap.L().Error("Error starting transaction", zap.Error(tx.Error))
	}
	return tx
}

func ReleaseTransaction(tx *gorm.DB, err error) {
	if err != nil {
		if rollbackErr := tx.Rollback().Error; rollbackErr != nil {
			zap.L().Error("Error rollback transaction", zap.Error(rollbackErr))
		}
		return
	}
	if commitErr := tx.Commit().Error; commitErr != nil {
		zap.L().Error("Error committing transaction", zap.Error(commitErr))
	}
}
