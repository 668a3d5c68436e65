package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/peopledesk/users-api/internal/core/domain"
)

const defaultTimeout = 10 * time.Second

// Config captures the settings for establishing a Postgres connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect opens a gorm Postgres handle and validates connectivity with a
// ping. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey in the repository. A default timeout is applied when
// none is provided.
func Connect(ctx context.Context, cfg Config) (*gorm.DB, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("postgres open: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("postgres handle: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return db, nil
}

// Migrate creates the users table and the case-insensitive unique index on
// email. The index is the authoritative duplicate-email guard; the validator
// chain is only the fast-reject path in front of it.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		return fmt.Errorf("migrate users: %w", err)
	}
	err := db.Exec("CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email_lower ON users (LOWER(email))").Error
	if err != nil {
		return fmt.Errorf("migrate email index: %w", err)
	}
	return nil
}
