package entity

import (
	"testing"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
	"github.com/stretchr/testify/assert"
)

func TestParseDollars(t *testing.T) {
	t.Run("Valid amounts", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected int64
		}{
			{"100.00", 10000},
			{"0.01", 1},
			{"1", 100},
			{"1.5", 150},
			{"10.", 1000},
			{".75", 75},
			{" 250.25 ", 25025},
			{"1234567.89", 123456789},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				cents, err := ParseDollars(tc.input)
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, cents)
			})
		}
	})

	t.Run("Invalid amounts", func(t *testing.T) {
		testCases := []struct {
			input       string
			errorType   error
			description string
		}{
			{"", errs.ErrInvalidAmount, "Empty string"},
			{"-1.00", errs.ErrNegativeAmount, "Negative amount"},
			{"1.234", errs.ErrInvalidAmount, "Too many decimal places"},
			{"abc", errs.ErrInvalidAmount, "Non-numeric"},
			{"1,000.00", errs.ErrInvalidAmount, "Thousands separator"},
			{"1.00.00", errs.ErrInvalidAmount, "Multiple decimal points"},
			{"$100", errs.ErrInvalidAmount, "Currency symbol"},
		}

		for _, tc := range testCases {
			t.Run(tc.description, func(t *testing.T) {
				_, err := ParseDollars(tc.input)
				assert.ErrorIs(t, err, tc.errorType)
			})
		}
	})
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "10.15", FormatCents(1015))
	assert.Equal(t, "0.05", FormatCents(5))
	assert.Equal(t, "0.00", FormatCents(0))
	assert.Equal(t, "-25.00", FormatCents(-2500))
}
