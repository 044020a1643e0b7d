package format

import (
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	formatted := formatPositiveCurrency(math.Abs(amount))
	if amount < 0 {
		return "-$" + formatted
	}
	return "$" + formatted
}

func formatPositiveCurrency(value float64) string {
	formatted := Fixed(value, 2)
	parts := strings.SplitN(formatted, ".", 2)
	intPart := parts[0]
	decPart := "00"
	if len(parts) == 2 {
		decPart = parts[1]
	}

	if len(intPart) > 3 {
		var builder strings.Builder
		for i, digit := range intPart {
			if i > 0 && (len(intPart)-i)%3 == 0 {
				builder.WriteByte(',')
			}
			builder.WriteRune(digit)
		}
		intPart = builder.String()
	}

	return intPart + "." + decPart
}

// Percent returns value with the given number of decimals and a percent sign
// (e.g., "3869.2%"). Non-finite values render as "Infinity%", "-Infinity%"
// or "NaN%".
func Percent(value float64, decimals int) string {
	switch {
	case math.IsNaN(value):
		return "NaN%"
	case math.IsInf(value, 1):
		return "Infinity%"
	case math.IsInf(value, -1):
		return "-Infinity%"
	}
	return Fixed(value, decimals) + "%"
}

// Fixed renders value with the given number of decimals. Rounding works on
// the exact binary value and only an exact halfway case rounds away from
// zero, so 0.125 gives "0.13" while 2.675 (stored just below) gives "2.67".
func Fixed(value float64, decimals int) string {
	switch {
	case math.IsNaN(value):
		return "NaN"
	case math.IsInf(value, 1):
		return "Infinity"
	case math.IsInf(value, -1):
		return "-Infinity"
	}
	if decimals < 0 {
		decimals = 0
	}
	abs := math.Abs(value)
	if abs >= 1e21 {
		return strconv.FormatFloat(value, 'g', -1, 64)
	}

	exact := new(big.Rat).SetFloat64(abs)
	scale := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(decimals)), nil)
	scaled := new(big.Int).Mul(exact.Num(), scale)
	quotient, remainder := new(big.Int).QuoRem(scaled, exact.Denom(), new(big.Int))
	if remainder.Lsh(remainder, 1).Cmp(exact.Denom()) >= 0 {
		quotient.Add(quotient, big.NewInt(1))
	}

	digits := quotient.String()
	if decimals > 0 {
		if len(digits) <= decimals {
			digits = strings.Repeat("0", decimals-len(digits)+1) + digits
		}
		digits = digits[:len(digits)-decimals] + "." + digits[len(digits)-decimals:]
	}
	if value < 0 {
		return "-" + digits
	}
	return digits
}

// CompactCurrency abbreviates large amounts for headline figures
// (e.g., "$2.2M", "-$45.0K"). Amounts below one thousand keep full precision.
func CompactCurrency(amount float64) string {
	abs := math.Abs(amount)
	sign := ""
	if amount < 0 {
		sign = "-"
	}
	switch {
	case abs >= 1e9:
		return sign + "$" + Fixed(abs/1e9, 1) + "B"
	case abs >= 1e6:
		return sign + "$" + Fixed(abs/1e6, 1) + "M"
	case abs >= 1e3:
		return sign + "$" + Fixed(abs/1e3, 1) + "K"
	}
	return Currency(amount)
}
