package services

import (
	"testing"
	"time"

	"unichip/internal/config"
	"unichip/internal/database"
	apperrors "unichip/pkg/errors"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := database.Open(&config.DatabaseConfig{URL: "sqlite:///:memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(conn))
	t.Cleanup(func() {
		if sqlDB, err := conn.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return conn
}

// breakDB closes the pool so every later query fails
func breakDB(t *testing.T, conn *gorm.DB) {
	t.Helper()
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())
}

func admin() *Principal {
	return &Principal{
		Username:  "admin",
		SessionID: "session-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func jsonFields(values map[string]string) Fields {
	return NewFields(SourceJSON, values)
}

func appErr(t *testing.T, err error) *apperrors.AppError {
	t.Helper()
	require.Error(t, err)
	e, ok := apperrors.As(err)
	require.True(t, ok, "expected an AppError, got %v", err)
	return e
}
