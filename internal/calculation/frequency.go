package calculation

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sparplan/savings-calculator/internal/domain"
)

// monthlyMarkers are matched as substrings of the lower-cased deposit type
// (German "monatlich", English "monthly").
var monthlyMarkers = []string{"monat", "month"}

// ClassifyFrequency maps a free-form deposit type onto a DepositFrequency.
// Anything that does not mention a month counts as annual.
func ClassifyFrequency(depositType any) domain.DepositFrequency {
	s := strings.ToLower(depositTypeString(depositType))
	for _, marker := range monthlyMarkers {
		if strings.Contains(s, marker) {
			return domain.DepositMonthly
		}
	}
	return domain.DepositAnnual
}

// IsMonthlyDeposit reports whether depositType names a monthly deposit.
func IsMonthlyDeposit(depositType any) bool {
	return ClassifyFrequency(depositType).IsMonthly()
}

// depositTypeString renders a raw deposit type as text; falsy values
// (nil, "", false, 0, NaN) become the empty string.
func depositTypeString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if !t {
			return ""
		}
		return "true"
	case float64:
		if t == 0 || math.IsNaN(t) {
			return ""
		}
		return fmt.Sprint(t)
	case json.Number:
		return t.String()
	case decimal.Decimal:
		if t.IsZero() {
			return ""
		}
		return t.String()
	case fmt.Stringer:
		return t.String()
	default:
		s := fmt.Sprint(t)
		if s == "0" {
			return ""
		}
		return s
	}
}
