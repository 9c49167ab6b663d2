package parser

// Confidence scoring constants. The cap is deliberately below 100: pattern
// matching is never fully certain, so the scale reserves headroom.
const (
	baseConfidence = 70
	captureBonus   = 10
	maxConfidence  = 95
)

// scoreConfidence derives a 0-95 confidence score from which grammar fields
// were successfully captured: +10 for a valid numeric amount, +10 for an
// asset token, +10 for a valid numeric price.
func scoreConfidence(caps Captures) int {
	score := baseConfidence
	if _, ok := parseDecimal(caps.RawAmount); ok {
		score += captureBonus
	}
	if caps.RawAsset != "" {
		score += captureBonus
	}
	if _, ok := parseDecimal(caps.RawPrice); ok {
		score += captureBonus
	}
	if score > maxConfidence {
		score = maxConfidence
	}
	return score
}
