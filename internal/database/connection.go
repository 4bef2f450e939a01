package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"unichip/internal/config"
	"unichip/internal/domain"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

var (
	db *gorm.DB
)

const (
	maxOpenConns    = 25
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
	connMaxIdleTime = 10 * time.Minute
	pingTimeout     = 5 * time.Second
)

// Init opens, migrates and seeds the process-wide database
func Init(cfg *config.Config) error {
	conn, err := Open(&cfg.Database)
	if err != nil {
		return err
	}

	log.Println("[DB] Running database migrations...")
	if err := Migrate(conn); err != nil {
		return err
	}

	if err := Seed(conn, cfg.Email.DefaultRecipient, cfg.Catalog.SeedSamples); err != nil {
		// Seeding is best-effort; the API still serves an unseeded store.
		log.Printf("[DB] Warning: seeding failed: %v", err)
	}

	db = conn
	log.Println("[DB] Database connected and migrated successfully")
	return nil
}

// Open connects to PostgreSQL or SQLite depending on the configured URL
func Open(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector

	if cfg.IsPostgres() {
		log.Println("[DB] Connecting to PostgreSQL database...")
		dialector = postgres.Open(cfg.GetPostgresDSN())
	} else {
		log.Println("[DB] Connecting to SQLite database...")
		dbPath := cfg.GetSQLitePath()
		if dir := filepath.Dir(dbPath); dbPath != ":memory:" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create SQLite directory: %w", err)
			}
		}
		sqlDB, err := sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open SQLite database: %w", err)
		}
		// SQLite has a single writer, and every ":memory:" connection is its own database.
		sqlDB.SetMaxOpenConns(1)
		dialector = sqlite.Dialector{
			DriverName: "sqlite",
			DSN:        dbPath,
			Conn:       sqlDB,
		}
	}

	// Never log SQL: queries carry customer contact details.
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
		TranslateError: true,
	}

	conn, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if cfg.IsPostgres() {
		sqlDB, err := conn.DB()
		if err != nil {
			return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
		}

		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxIdleConns)
		sqlDB.SetConnMaxLifetime(connMaxLifetime)
		sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

		log.Printf("[DB] Connection pool configured: maxOpen=%d, maxIdle=%d", maxOpenConns, maxIdleConns)
	}

	if err := Ping(context.Background(), conn); err != nil {
		return nil, fmt.Errorf("database connection test failed: %w", err)
	}

	return conn, nil
}

// Migrate creates or updates every table the catalog owns
func Migrate(conn *gorm.DB) error {
	err := conn.AutoMigrate(
		&domain.User{},
		&domain.Chip{},
		&domain.Inquiry{},
		&domain.Setting{},
		&domain.RecipientCC{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}

// Seed makes sure the primary recipient setting exists and, when asked,
// fills an empty catalog with the sample inventory.
func Seed(conn *gorm.DB, defaultRecipient string, samples bool) error {
	var count int64
	if err := conn.Model(&domain.Setting{}).Where(&domain.Setting{Key: domain.SettingEmailRecipient}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check email setting: %w", err)
	}
	if count == 0 && defaultRecipient != "" {
		setting := domain.Setting{Key: domain.SettingEmailRecipient, Value: defaultRecipient}
		if err := conn.Create(&setting).Error; err != nil {
			return fmt.Errorf("failed to create default email setting: %w", err)
		}
		log.Printf("[DB] Created default email recipient setting")
	}

	if !samples {
		return nil
	}
	if err := conn.Model(&domain.Chip{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count chips: %w", err)
	}
	if count > 0 {
		return nil
	}
	chips := domain.SampleChips()
	if err := conn.Create(&chips).Error; err != nil {
		return fmt.Errorf("failed to insert sample chips: %w", err)
	}
	log.Printf("[DB] Inserted %d sample chips", len(chips))
	return nil
}

// Ping tests the database connection
func Ping(ctx context.Context, conn *gorm.DB) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := conn.DB()
	if err != nil {
		return err
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("ping failed: %w", err)
	}

	return nil
}

// GetDB returns the database instance
func GetDB() *gorm.DB {
	if db == nil {
		log.Fatal("Database not initialized. Call database.Init() first.")
	}
	return db
}

// Close releases the process-wide connection pool
func Close() error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
