// Package normalize turns the providers' free-form price text into numeric
// amounts and applies the global rent sanity bound.
package normalize

import (
	"math"
	"strconv"
	"strings"
)

// MaxMonthlyRent is the exclusive upper bound for a plausible monthly rent
// in euro. Anything at or above it is treated as bad data.
const MaxMonthlyRent = 100000

// Amount parses a price string such as "€1,500 monthly", "€1,500/month" or
// "1500" into its numeric amount. The boolean is false for empty text,
// "price on application" sentinels, non-positive values and anything that
// does not clean up into a number.
func Amount(text string) (float64, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	lower := strings.ToLower(s)
	if lower == "poa" || strings.Contains(lower, "price on application") {
		return 0, false
	}

	// Frequency suffixes ("/month", "/week") are discarded here; the
	// canonical frequency is fixed by the parsers.
	s = strings.SplitN(s, "/", 2)[0]

	// Keep digits, the decimal point and a sign. Currency symbols,
	// thousands separators and trailing words like "monthly" fall away.
	var b strings.Builder
	for _, c := range s {
		if (c >= '0' && c <= '9') || c == '.' || c == '-' {
			b.WriteRune(c)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0, false
	}

	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil || v <= 0 {
		return 0, false
	}
	return v, true
}

// ValidAmount accepts exactly the open interval (0, MaxMonthlyRent).
func ValidAmount(amount float64) bool {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	return amount > 0 && amount < MaxMonthlyRent
}
