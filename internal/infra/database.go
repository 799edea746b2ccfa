package infra

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and bounds the
// connection pool. Each service passes only the models it owns; the three
// stores never share a schema.
//
// Pool exhaustion queues the request on database/sql's internal wait list
// rather than failing it.
func NewDatabase(dsn string, connLimit int, models ...any) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if connLimit <= 0 {
		connLimit = 10
	}
	sqlDB.SetMaxOpenConns(connLimit)
	sqlDB.SetMaxIdleConns(connLimit / 2)

	if len(models) > 0 {
		if err := db.AutoMigrate(models...); err != nil {
			return nil, err
		}
	}

	return db, nil
}
