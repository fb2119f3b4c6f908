package common

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	SOLDecimals   = 9 // SOL has 9 decimals (lamports)
	TokenDecimals = 9 // decimals used for mints created by this tool
)

// LamportsToSOL converts lamports to a SOL string without float precision loss
func LamportsToSOL(lamports uint64) string {
	return FormatAmount(lamports, SOLDecimals)
}

// SOLToLamports converts a SOL string to lamports without float precision loss
func SOLToLamports(sol string) (uint64, error) {
	return ParseAmount(sol, SOLDecimals)
}

// FormatAmount converts an integer base-unit value to a decimal string by
// inserting the decimal point.
// Example: FormatAmount(24981836, 9) = "0.024981836"
func FormatAmount(value uint64, decimals int) string {
	s := strconv.FormatUint(value, 10)

	// Pad with leading zeros if needed
	for len(s) <= decimals {
		s = "0" + s
	}

	// Insert decimal point
	pos := len(s) - decimals
	return s[:pos] + "." + s[pos:]
}

// ParseAmount converts a decimal string to integer base units by removing
// the decimal point. Extra fractional digits beyond decimals are truncated.
// Example: ParseAmount("0.024981836", 9) = 24981836
func ParseAmount(s string, decimals int) (uint64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty amount")
	}

	parts := strings.Split(s, ".")

	if len(parts) == 1 {
		// No decimal point - multiply by 10^decimals
		n, err := strconv.ParseUint(parts[0], 10, 64)
		if err != nil {
			return 0, err
		}
		for i := 0; i < decimals; i++ {
			if n > math.MaxUint64/10 {
				return 0, fmt.Errorf("amount %q overflows", s)
			}
			n *= 10
		}
		return n, nil
	}

	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid decimal format")
	}

	whole := parts[0]
	frac := parts[1]
	if whole == "" {
		whole = "0"
	}

	// Pad or truncate fractional part to exact decimals
	if len(frac) < decimals {
		frac += strings.Repeat("0", decimals-len(frac))
	} else if len(frac) > decimals {
		frac = frac[:decimals]
	}

	// Combine and parse
	return strconv.ParseUint(whole+frac, 10, 64)
}
