package database

import (
	"context"
	"fmt"
	"io"
	"time"

	"storefront-backend/internal/config"
	"storefront-backend/internal/models"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Database is the gorm handle shared by the repositories, together with the
// per-query timeout they apply.
type Database struct {
	*gorm.DB
	config config.DatabaseConfig
	log    *logrus.Logger
}

// Connect opens the PostgreSQL database described by cfg.
func Connect(cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	return Open(postgres.Open(cfg.DSN()), cfg, log)
}

// Open connects through dialector, applies the pool settings of cfg, checks
// the connection and migrates the schema. A nil log silences both the
// database logs and gorm's query logging.
func Open(dialector gorm.Dialector, cfg config.DatabaseConfig, log *logrus.Logger) (*Database, error) {
	gormLogger := logger.Default.LogMode(logger.Silent)
	if log == nil {
		log = logrus.New()
		log.SetOutput(io.Discard)
	} else {
		gormLogger = logger.New(log, logger.Config{
			SlowThreshold:             cfg.SlowQueryThreshold,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
		})
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: gormLogger,
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		DisableForeignKeyConstraintWhenMigrating: true,
		PrepareStmt:                              cfg.PrepareStmt,
	})
	if err != nil {
		log.WithError(err).Error("Failed to connect to database")
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	database := &Database{DB: db, config: cfg, log: log}
	if err := database.HealthCheck(); err != nil {
		log.WithError(err).Error("Failed to ping database")
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.WithFields(logrus.Fields{
		"dialect":      dialector.Name(),
		"maxOpenConns": cfg.MaxOpenConns,
	}).Info("Database connection established")

	if err := database.Migrate(); err != nil {
		log.WithError(err).Error("Failed to run auto migration")
		return nil, fmt.Errorf("failed to run auto migration: %w", err)
	}

	return database, nil
}

func (d *Database) WithContext(ctx context.Context) *gorm.DB {
	return d.DB.WithContext(ctx)
}

func (d *Database) GetQueryTimeout() time.Duration {
	return d.config.QueryTimeout
}

// Transaction runs fn inside a database transaction. The *Database handed to
// fn is bound to the transaction; returning an error rolls it back.
func (d *Database) Transaction(ctx context.Context, fn func(tx *Database) error) error {
	return d.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&Database{DB: tx, config: d.config, log: d.log})
	})
}

func (d *Database) HealthCheck() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Migrate creates or updates the schema of every persisted model.
func (d *Database) Migrate() error {
	start := time.Now()

	err := d.DB.AutoMigrate(
		&models.Language{},
		&models.Brand{},
		&models.BrandTranslation{},
		&models.Category{},
		&models.CategoryTranslation{},
		&models.Product{},
		&models.ProductTranslation{},
		&models.ProductImage{},
		&models.UITranslation{},
	)
	if err != nil {
		return err
	}

	d.log.WithField("took", time.Since(start).String()).Info("Schema migrated")
	return nil
}
