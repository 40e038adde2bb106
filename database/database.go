package database

import (
	"fmt"
	"strings"

	"gallery-storefront/internal/domain/inquiries"
	"gallery-storefront/internal/domain/orders"
	"gallery-storefront/internal/logger"
	"gallery-storefront/internal/store/paintingrepo"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

// InitDB opens the database named by dsn and migrates every model. A dsn of
// the form "sqlite://<path>" selects the embedded driver for local runs;
// anything else is handed to postgres.
func InitDB(dsn string, log *logger.Logger) (*gorm.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("DB_URL not set")
	}

	cfg := &gorm.Config{Logger: gormlogger.Default.LogMode(gormlogger.Warn)}

	var (
		db  *gorm.DB
		err error
	)
	if strings.HasPrefix(dsn, sqlitePrefix) {
		db, err = openSQLite(strings.TrimPrefix(dsn, sqlitePrefix), cfg)
	} else {
		db, err = gorm.Open(postgres.Open(dsn), cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Info().Str("driver", db.Dialector.Name()).Msg("connected and migrated")
	return db, nil
}

// Migrate creates or updates every table the storefront owns.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		// catalog
		&paintingrepo.PaintingRow{},

		// sales
		&orders.Order{},

		// contact
		&inquiries.Inquiry{},
	); err != nil {
		return fmt.Errorf("auto-migrate: %w", err)
	}
	return nil
}

// OpenInMemory returns a migrated, private sqlite database. Each call gets
// its own database.
func OpenInMemory() (*gorm.DB, error) {
	db, err := openSQLite(":memory:", &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func openSQLite(path string, cfg *gorm.Config) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), cfg)
	if err != nil {
		return nil, err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	// sqlite allows a single writer; ":memory:" is also per connection.
	sqlDB.SetMaxOpenConns(1)
	return db, nil
}
