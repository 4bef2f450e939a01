package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHealthCheck(t *testing.T) {
	db := openTestDB(t)
	svc := NewHealthService(db, "Unichip Catalog")

	result := svc.Check(context.Background())
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "Unichip Catalog", result.Service)
	assert.Equal(t, "ok", result.Database)

	breakDB(t, db)
	result = svc.Check(context.Background())
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, "unavailable", result.Database)
}
