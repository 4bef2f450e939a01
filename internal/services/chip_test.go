package services

import (
	"context"
	"testing"
	"time"

	"unichip/internal/domain"
	apperrors "unichip/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func chipFields(model string) Fields {
	return jsonFields(map[string]string{"model": model, "description": "desc", "stock": "3", "price": "0.75"})
}

func TestAdminOperationsRequireSession(t *testing.T) {
	db := openTestDB(t)
	chips := NewChipService(db)
	settings := NewSettingsService(db, "sales@unichip.hk")
	ctx := context.Background()
	expired := &Principal{Username: "admin", SessionID: "s", ExpiresAt: time.Now().Add(-time.Minute)}

	// Invalid input and a missing row must not be reported ahead of the session check.
	invalid := jsonFields(map[string]string{})
	for _, p := range []*Principal{nil, {}, expired} {
		_, err := chips.List(ctx, p)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = chips.Get(ctx, p, 999)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = chips.Add(ctx, p, invalid)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = chips.Update(ctx, p, 999, invalid)
		assert.True(t, apperrors.IsUnauthorized(err))
		assert.True(t, apperrors.IsUnauthorized(chips.Delete(ctx, p, 999)))

		_, err = settings.EmailSettings(ctx, p)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = settings.UpdateEmailSettings(ctx, p, invalid)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = settings.ListCC(ctx, p)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = settings.AddCC(ctx, p, invalid)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = settings.UpdateCC(ctx, p, 999, invalid)
		assert.True(t, apperrors.IsUnauthorized(err))
		_, err = settings.DeleteCC(ctx, p, 999)
		assert.True(t, apperrors.IsUnauthorized(err))
	}

	var count int64
	require.NoError(t, db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestAddChip(t *testing.T) {
	svc := NewChipService(openTestDB(t))

	chip, err := svc.Add(context.Background(), admin(), chipFields(" ESP32-C3 "))
	require.NoError(t, err)
	assert.NotZero(t, chip.ID)
	assert.Equal(t, "ESP32-C3", chip.Model)
	assert.Equal(t, 3, chip.Stock)
	assert.Equal(t, 0.75, chip.Price)
}

func TestAddChipRejectsDuplicateModel(t *testing.T) {
	db := openTestDB(t)
	svc := NewChipService(db)
	seedChips(t, svc, "NE555")

	for _, model := range []string{"NE555", "ne555"} {
		_, err := svc.Add(context.Background(), admin(), chipFields(model))
		e := appErr(t, err)
		assert.Equal(t, apperrors.ErrCodeConflict, e.Code, model)
		assert.Equal(t, 400, e.HTTPStatus())
	}

	var count int64
	require.NoError(t, db.Model(&domain.Chip{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAddChipConflictWhenModelTakenAfterCheck(t *testing.T) {
	db := openTestDB(t)
	svc := NewChipService(db)

	// Another writer inserts the same model between the check and the insert.
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:concurrent_add", func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*domain.Chip); !ok {
			return
		}
		_, err := tx.Statement.ConnPool.ExecContext(tx.Statement.Context,
			"INSERT INTO chips (model, description, stock, price) VALUES (?, '', 0, 0)", "NE555")
		require.NoError(t, err)
	}))

	_, err := svc.Add(context.Background(), admin(), chipFields("NE555"))
	e := appErr(t, err)
	assert.Equal(t, apperrors.ErrCodeConflict, e.Code)
	assert.Equal(t, 400, e.HTTPStatus())
	assert.Equal(t, "model already exists", e.Message)
}

func TestAddChipValidation(t *testing.T) {
	svc := NewChipService(openTestDB(t))

	_, err := svc.Add(context.Background(), admin(), jsonFields(map[string]string{
		"model": "X", "description": "d", "stock": "-4", "price": "1",
	}))
	e := appErr(t, err)
	assert.Equal(t, apperrors.ErrCodeValidation, e.Code)
	assert.Equal(t, []string{"stock: must be at least 0"}, e.Details)
}

func TestUpdateChip(t *testing.T) {
	svc := NewChipService(openTestDB(t))
	chips := seedChips(t, svc, "NE555", "LM358")

	updated, err := svc.Update(context.Background(), admin(), chips[0].ID, jsonFields(map[string]string{
		"model": "NE555P", "description": "timer", "stock": "40", "price": "0.2",
	}))
	require.NoError(t, err)
	assert.Equal(t, chips[0].ID, updated.ID)

	got, err := svc.Get(context.Background(), admin(), chips[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "NE555P", got.Model)
	assert.Equal(t, "timer", got.Description)
	assert.Equal(t, 40, got.Stock)
	assert.Equal(t, 0.2, got.Price)
}

func TestUpdateChipKeepsOwnModel(t *testing.T) {
	svc := NewChipService(openTestDB(t))
	chips := seedChips(t, svc, "NE555")

	_, err := svc.Update(context.Background(), admin(), chips[0].ID, chipFields("ne555"))
	assert.NoError(t, err)
}

func TestUpdateChipConflictLeavesRowsUntouched(t *testing.T) {
	svc := NewChipService(openTestDB(t))
	chips := seedChips(t, svc, "NE555", "LM358")

	_, err := svc.Update(context.Background(), admin(), chips[1].ID, chipFields("NE555"))
	assert.True(t, apperrors.IsConflict(err))

	got, err := svc.Get(context.Background(), admin(), chips[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "LM358", got.Model)
	assert.Equal(t, 5, got.Stock)
}

func TestUpdateChipNotFoundBeforeValidation(t *testing.T) {
	svc := NewChipService(openTestDB(t))

	_, err := svc.Update(context.Background(), admin(), 42, jsonFields(map[string]string{}))
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeleteChip(t *testing.T) {
	svc := NewChipService(openTestDB(t))
	chips := seedChips(t, svc, "NE555")

	require.NoError(t, svc.Delete(context.Background(), admin(), chips[0].ID))

	_, err := svc.Get(context.Background(), admin(), chips[0].ID)
	assert.True(t, apperrors.IsNotFound(err))
	assert.True(t, apperrors.IsNotFound(svc.Delete(context.Background(), admin(), chips[0].ID)))
}

func TestListChipsOrderedByID(t *testing.T) {
	svc := NewChipService(openTestDB(t))
	seedChips(t, svc, "Z80", "A1", "M2")

	list, err := svc.List(context.Background(), admin())
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "Z80", list[0].Model)
	assert.Equal(t, "M2", list[2].Model)
}

func TestChipStoreFailure(t *testing.T) {
	db := openTestDB(t)
	svc := NewChipService(db)
	breakDB(t, db)

	_, err := svc.Add(context.Background(), admin(), chipFields("NE555"))
	assert.True(t, apperrors.IsStoreUnavailable(err))
	_, err = svc.Get(context.Background(), admin(), 1)
	assert.True(t, apperrors.IsStoreUnavailable(err))
}
