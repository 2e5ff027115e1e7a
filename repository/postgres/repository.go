package postgres

import (
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/roamio/travelagency/config"
	"github.com/roamio/travelagency/model"
	"github.com/roamio/travelagency/repository"
)

// PostgresRepository implements repository.Repository backed by GORM.
type PostgresRepository struct {
	db *gorm.DB
}

func NewRepository(cfg *config.Database) (*PostgresRepository, error) {
	db, err := gorm.Open(postgres.Open(cfg.GetDatabaseURL()), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Minute)

	// Auto-migrate the storefront tables
	if err := db.AutoMigrate(
		&model.Tour{},
		&model.VisaPackage{},
		&model.Customer{},
		&model.Booking{},
		&model.Review{},
		&model.User{},
		&model.JobPosting{},
		&model.AuditRecord{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresRepository{db: db}, nil
}

// InTx runs fn against a transaction-scoped repository. The transaction
// commits iff fn returns nil.
func (r *PostgresRepository) InTx(fn func(repository.Repository) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(&PostgresRepository{db: tx})
	})
}

// GetDB returns the database instance for health checks
func (r *PostgresRepository) GetDB() *gorm.DB {
	return r.db
}
