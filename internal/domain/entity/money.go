package entity

import (
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/smores-api/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for dollar amounts
const MaxDecimalPlaces = 2

// ParseDollars converts a decimal dollar string such as "25", "25.5" or
// "25.50" into cents. The conversion is string based so no float rounding
// ever reaches a stored amount.
func ParseDollars(amount string) (int64, error) {
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}
	if strings.HasPrefix(amount, "-") {
		return 0, errs.ErrNegativeAmount
	}

	whole, fraction, hasPoint := strings.Cut(amount, ".")
	if hasPoint && strings.Contains(fraction, ".") {
		return 0, fmt.Errorf("%w: invalid number format", errs.ErrInvalidAmount)
	}
	if len(fraction) > MaxDecimalPlaces {
		return 0, fmt.Errorf("%w: maximum %d decimal places allowed", errs.ErrInvalidAmount, MaxDecimalPlaces)
	}
	if whole == "" {
		whole = "0"
	}
	fraction += strings.Repeat("0", MaxDecimalPlaces-len(fraction))

	for _, part := range []string{whole, fraction} {
		for _, r := range part {
			if r < '0' || r > '9' {
				return 0, fmt.Errorf("%w: %q is not a number", errs.ErrInvalidAmount, amount)
			}
		}
	}

	cents, err := strconv.ParseInt(whole+fraction, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", errs.ErrInvalidAmount, err.Error())
	}
	return cents, nil
}

// FormatCents renders cents as a dollar string with two decimals, e.g. 1015 -> "10.15"
func FormatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
