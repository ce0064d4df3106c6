package model

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhoneNumber_Valid(t *testing.T) {
	for _, raw := range []string{"1234567890", "0000000000", "0987654321", "9999999999"} {
		phone, err := NewPhoneNumber(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, raw, phone.String())
	}
}

func TestNewPhoneNumber_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"too short", "123456789"},
		{"too long", "12345678901"},
		{"letter", "12345a7890"},
		{"plus sign", "+123456789"},
		{"minus sign", "-123456789"},
		{"decimal point", "12345.7890"},
		{"spaces", "12345 7890"},
		{"non-ascii digits", "١٢٣٤٥٦٧٨٩٠"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			phone, err := NewPhoneNumber(tt.raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidPhone), "expected ErrInvalidPhone, got %v", err)
			assert.Empty(t, phone.String())
		})
	}
}

func TestNewBirthday_Valid(t *testing.T) {
	tests := []struct {
		raw  string
		want time.Time
	}{
		{"01.01.2024", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)},
		{"29.02.2024", time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)},
		{"31.12.1999", time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC)},
		{"30.04.1985", time.Date(1985, time.April, 30, 0, 0, 0, 0, time.UTC)},
		{"01.01.0001", time.Date(1, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			birthday, err := NewBirthday(tt.raw)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(birthday.Date()))
			assert.Equal(t, tt.raw, birthday.String())
			assert.False(t, birthday.IsZero())
		})
	}
}

func TestNewBirthday_Invalid(t *testing.T) {
	for _, raw := range []string{
		"",
		"30.02.2024",
		"29.02.2023",
		"31.04.2024",
		"1.1.2024",
		"01.1.2024",
		"2024-01-01",
		"01/01/2024",
		"01.01.24",
		"32.01.2024",
		"01.13.2024",
		"aa.bb.cccc",
	} {
		t.Run(raw, func(t *testing.T) {
			birthday, err := NewBirthday(raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDate)
			assert.True(t, birthday.IsZero())
		})
	}
}

func TestBirthday_ZeroValue(t *testing.T) {
	var b Birthday
	assert.True(t, b.IsZero())
	assert.Equal(t, "", b.String())
}
