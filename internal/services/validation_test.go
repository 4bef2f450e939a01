package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateChip(t *testing.T) {
	tests := []struct {
		name    string
		fields  map[string]string
		want    ChipInput
		wantErr []string
	}{
		{
			name:   "valid",
			fields: map[string]string{"model": " ESP32 ", "description": "WiFi MCU", "stock": "10", "price": "2.5"},
			want:   ChipInput{Model: "ESP32", Description: "WiFi MCU", Stock: 10, Price: 2.5},
		},
		{
			name:   "zero stock and price",
			fields: map[string]string{"model": "X", "description": "d", "stock": "0", "price": "0"},
			want:   ChipInput{Model: "X", Description: "d"},
		},
		{
			name:    "missing everything",
			fields:  map[string]string{},
			wantErr: []string{"model: is required", "description: is required", "stock: is required", "price: is required"},
		},
		{
			name:    "negative stock",
			fields:  map[string]string{"model": "X", "description": "d", "stock": "-1", "price": "1"},
			wantErr: []string{"stock: must be at least 0"},
		},
		{
			name:    "fractional stock",
			fields:  map[string]string{"model": "X", "description": "d", "stock": "1.5", "price": "1"},
			wantErr: []string{"stock: must be a whole number"},
		},
		{
			name:    "negative price",
			fields:  map[string]string{"model": "X", "description": "d", "stock": "1", "price": "-0.01"},
			wantErr: []string{"price: must be at least 0"},
		},
		{
			name:    "non numeric price",
			fields:  map[string]string{"model": "X", "description": "d", "stock": "1", "price": "cheap"},
			wantErr: []string{"price: must be a number"},
		},
		{
			name:    "NaN price",
			fields:  map[string]string{"model": "X", "description": "d", "stock": "1", "price": "NaN"},
			wantErr: []string{"price: must be a number"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errs := ValidateChip(jsonFields(tt.fields))
			assert.Equal(t, tt.wantErr, errs)
			if tt.wantErr == nil {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestValidateInquiryDoesNotCheckEmailSyntax(t *testing.T) {
	assert.Empty(t, ValidateInquiry(jsonFields(map[string]string{"name": "Li", "email": "not-an-address"})))
	assert.Equal(t, []string{"name: is required"}, ValidateInquiry(jsonFields(map[string]string{"name": "  ", "email": "li@example.com"})))
	assert.Equal(t, []string{"email: is required"}, ValidateInquiry(jsonFields(map[string]string{"name": "Li"})))
}

func TestValidateSearch(t *testing.T) {
	q, errs := ValidateSearch(jsonFields(map[string]string{"model": "  stm32 "}))
	assert.Empty(t, errs)
	assert.Equal(t, "stm32", q)

	_, errs = ValidateSearch(jsonFields(map[string]string{"model": "   "}))
	assert.Equal(t, []string{"model: is required"}, errs)
}

func TestValidateEmailSetting(t *testing.T) {
	email, errs := ValidateEmailSetting(jsonFields(map[string]string{"email": "sales@unichip.hk"}))
	assert.Empty(t, errs)
	assert.Equal(t, "sales@unichip.hk", email)

	for _, bad := range []string{"sales", "Sales <sales@unichip.hk>", "a b@unichip.hk"} {
		_, errs = ValidateEmailSetting(jsonFields(map[string]string{"email": bad}))
		assert.Equal(t, []string{"email: invalid email address"}, errs, bad)
	}
}

func TestValidateCCActive(t *testing.T) {
	active, errs := ValidateCCActive(jsonFields(map[string]string{"is_active": "false"}))
	assert.Empty(t, errs)
	assert.False(t, active)

	active, errs = ValidateCCActive(jsonFields(map[string]string{"is_active": "1"}))
	assert.Empty(t, errs)
	assert.True(t, active)

	_, errs = ValidateCCActive(jsonFields(map[string]string{}))
	assert.Equal(t, []string{"is_active: is required"}, errs)

	_, errs = ValidateCCActive(jsonFields(map[string]string{"is_active": "maybe"}))
	assert.Equal(t, []string{"is_active: must be true or false"}, errs)
}

func TestParseCCList(t *testing.T) {
	got := ParseCCList(" a@x.com, bogus ,b@y.org,,a@x.com, c@localhost ")
	assert.Equal(t, []string{"a@x.com", "b@y.org"}, got)
	assert.Empty(t, ParseCCList(""))
}
