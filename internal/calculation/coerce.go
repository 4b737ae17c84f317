package calculation

import (
	"encoding/json"
	"math"
	"math/big"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// decimalLiteral matches a plain decimal number with optional sign,
// fraction and exponent: "7", "-2.5", "+.5", "3.", "1e3".
var decimalLiteral = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// CoerceNumber converts a loosely typed form value into a number.
// Absent, non-numeric and non-finite values all become zero; it never fails.
func CoerceNumber(v any) decimal.Decimal {
	switch n := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return n
	case *decimal.Decimal:
		if n == nil {
			return decimal.Zero
		}
		return *n
	case string:
		return coerceString(n)
	case json.Number:
		return coerceString(string(n))
	case bool:
		if n {
			return decimal.NewFromInt(1)
		}
		return decimal.Zero
	case int:
		return decimal.NewFromInt(int64(n))
	case int8:
		return decimal.NewFromInt(int64(n))
	case int16:
		return decimal.NewFromInt(int64(n))
	case int32:
		return decimal.NewFromInt(int64(n))
	case int64:
		return decimal.NewFromInt(n)
	case uint:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(n)), 0)
	case uint8:
		return decimal.NewFromInt(int64(n))
	case uint16:
		return decimal.NewFromInt(int64(n))
	case uint32:
		return decimal.NewFromInt(int64(n))
	case uint64:
		return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
	case float32:
		return coerceFloat(float64(n))
	case float64:
		return coerceFloat(n)
	default:
		return decimal.Zero
	}
}

func coerceFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

func coerceString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if d, ok := parseRadixLiteral(s); ok {
		return d
	}
	if !decimalLiteral.MatchString(s) {
		return decimal.Zero
	}
	// literals outside float64 range would have rendered as Infinity
	if f, err := strconv.ParseFloat(s, 64); err != nil || math.IsInf(f, 0) {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(normalizeDecimalLiteral(s))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseRadixLiteral handles unsigned 0x/0o/0b integer literals.
func parseRadixLiteral(s string) (decimal.Decimal, bool) {
	if len(s) < 3 || s[0] != '0' {
		return decimal.Zero, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return decimal.Zero, false
	}
	digits := s[2:]
	if strings.ContainsAny(digits, "+-_") {
		return decimal.Zero, true
	}
	b, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return decimal.Zero, true
	}
	return decimal.NewFromBigInt(b, 0), true
}

// normalizeDecimalLiteral rewrites forms decimal.NewFromString rejects
// ("+5", ".5", "3.", "3.e2") into ones it accepts.
func normalizeDecimalLiteral(s string) string {
	s = strings.TrimPrefix(s, "+")
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	mantissa, exponent := s, ""
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, exponent = s[:i], s[i:]
	}
	mantissa = strings.TrimSuffix(mantissa, ".")
	if strings.HasPrefix(mantissa, ".") {
		mantissa = "0" + mantissa
	}
	return sign + mantissa + exponent
}
