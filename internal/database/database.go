package database

import (
	"fmt"
	"time"

	"xgrowth-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	SkipMigrations  bool
}

// AllModels lists every model in migration order
func AllModels() []interface{} {
	return []interface{}{
		&models.OrganizationType{},
		&models.Organization{},
		&models.CompanyProfile{},
		&models.CompanyRelation{},
		&models.User{},
		&models.Category{},
		&models.LookupValue{},
		&models.Brief{},
		&models.Post{},
		&models.PostRating{},
		&models.PostPin{},
		&models.Notification{},
	}
}

// Initialize opens a Postgres connection and creates the schema from GORM models.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(opts.LogLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// gen_random_uuid() for BaseModel defaults
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if !opts.SkipMigrations {
		if err := db.AutoMigrate(AllModels()...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}
		// Relations are undirected, so (a, b) and (b, a) share one slot.
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_company_relations_unordered_pair
			ON company_relations (LEAST(company_a_id, company_b_id), GREATEST(company_a_id, company_b_id))`).Error; err != nil {
			return nil, fmt.Errorf("create relation pair index: %w", err)
		}
	}

	return db, nil
}
