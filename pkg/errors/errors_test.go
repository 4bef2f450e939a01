package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeValidation:       http.StatusBadRequest,
		ErrCodeBadRequest:       http.StatusBadRequest,
		ErrCodeConflict:         http.StatusBadRequest,
		ErrCodeUnauthorized:     http.StatusUnauthorized,
		ErrCodeNotFound:         http.StatusNotFound,
		ErrCodeRateLimited:      http.StatusTooManyRequests,
		ErrCodeStoreUnavailable: http.StatusInternalServerError,
		ErrCodeInternalError:    http.StatusInternalServerError,
	}
	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus(), code)
	}
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	err := fmt.Errorf("lookup: %w", New(ErrCodeNotFound, "chip not found"))

	assert.True(t, IsNotFound(err))
	assert.False(t, IsConflict(err))

	appErr, ok := As(err)
	assert.True(t, ok)
	assert.Equal(t, "chip not found", appErr.Message)
}

func TestWrapKeepsCause(t *testing.T) {
	cause := fmt.Errorf("connection refused")
	err := Wrap(ErrCodeStoreUnavailable, "database query failed", cause)

	assert.True(t, IsStoreUnavailable(err))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}

func TestValidationCarriesDetails(t *testing.T) {
	err := Validation("form validation failed", []string{"model: is required"})

	assert.True(t, IsValidation(err))
	assert.Equal(t, []string{"model: is required"}, err.Details)
}
