// Package parser converts free-text user input into a structured trading
// intent using a bounded grammar of recognized patterns. Anything outside
// the grammar is reported as domain.ErrNoMatch rather than guessed at;
// general-purpose language understanding is explicitly out of scope.
package parser

import (
	"strings"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// Result is the outcome of a successful parse: the structured intent plus
// the raw captures and the derived confidence score.
type Result struct {
	Intent     domain.ParsedIntent
	Captures   Captures
	Confidence int // 0-95
}

// Parser classifies input text against the grammar table.
// It is stateless and safe for concurrent use.
type Parser struct{}

// New creates a new Parser instance
func New() *Parser {
	return &Parser{}
}

// Parse classifies text into an action category and extracts quantities.
// Returns domain.ErrNoMatch when no grammar pattern applies; the caller
// should treat such input as a non-trading utterance, not as a failure.
func (p *Parser) Parse(text string) (*Result, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, domain.ErrNoMatch
	}

	action, caps, conditions, ok := matchGrammar(trimmed)
	if !ok {
		return nil, domain.ErrNoMatch
	}

	amount, price, percentage := extractQuantities(caps, trimmed)

	intent := domain.ParsedIntent{
		Action:     action,
		Amount:     amount,
		Price:      price,
		Percentage: percentage,
		Conditions: conditions,
	}
	if caps.RawAsset != "" {
		intent.Asset = NormalizeAsset(caps.RawAsset)
	}

	return &Result{
		Intent:     intent,
		Captures:   caps,
		Confidence: scoreConfidence(caps),
	}, nil
}
