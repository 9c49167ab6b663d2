package parser

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// percentIndicator detects percent semantics in the original input text.
// Percentage interpretation is triggered by the literal presence of an
// indicator in the source text, not by pattern position: a captured numeric
// is read as a percentage only when the text also signals "percent".
var percentIndicator = regexp.MustCompile(`(?i)%|\bpercent(?:age)?\b`)

// hundred is the divisor/bound used for percentage handling.
var hundred = decimal.NewFromInt(100)

// parseDecimal parses a captured numeric fragment, tolerating a leading
// dollar sign and thousands separators ("$40,000" -> 40000).
// Returns ok=false for empty or malformed fragments.
func parseDecimal(raw string) (decimal.Decimal, bool) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "$")
	cleaned = strings.ReplaceAll(cleaned, ",", "")
	if cleaned == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// extractQuantities derives amount, price and percentage from the raw
// captures. Missing or malformed fragments yield nil values; downstream
// code must tolerate any of the three being absent.
//
// The amount capture is reinterpreted as a percentage when the original
// text carries a percent indicator and the value lies in (0, 100]; a
// "percentage" outside that range is kept as a unit quantity instead.
func extractQuantities(caps Captures, originalText string) (amount, price, percentage *decimal.Decimal) {
	if v, ok := parseDecimal(caps.RawAmount); ok {
		if percentIndicator.MatchString(originalText) && v.IsPositive() && v.LessThanOrEqual(hundred) {
			percentage = &v
		} else {
			amount = &v
		}
	}
	if v, ok := parseDecimal(caps.RawPrice); ok {
		price = &v
	}
	return amount, price, percentage
}
