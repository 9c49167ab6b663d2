package parser

import (
	"regexp"

	"github.com/ruimtorres/tradedesk-backend/internal/domain"
)

// slot identifies the meaning of a capture group within a pattern rule.
type slot int

const (
	slotAmount slot = iota
	slotAsset
	slotPrice
)

// rule is a single typed grammar pattern. slots[i] gives the meaning of
// capture group i+1, so the capture shape is fixed at rule-definition time
// rather than inferred from raw substrings.
type rule struct {
	re         *regexp.Regexp
	slots      []slot
	conditions []domain.Condition
}

// Captures holds the raw text fragments captured by a matched rule.
// Empty string means the slot was not captured (e.g. an optional price).
type Captures struct {
	RawAmount string
	RawAsset  string
	RawPrice  string
}

// grammar is the bounded, ordered pattern table. Categories are tried in
// domain.ActionPriority order and, within a category, rules in declaration
// order. The first rule of the first matching category wins; this is a
// strict priority order, not a best-match search.
var grammar = map[domain.Action][]rule{
	domain.ActionBuy: {
		{
			// "buy 0.1 btc", "buy 50% of my eth at $2,000"
			re:    regexp.MustCompile(`(?i)\bbuy\s+(\d+(?:\.\d+)?)\s*(?:%|percent(?:age)?)?\s*(?:of\s+)?(?:my\s+)?([a-zA-Z]+)(?:\s+(?:at|@)\s+\$?([\d,]+(?:\.\d+)?))?`),
			slots: []slot{slotAmount, slotAsset, slotPrice},
		},
		{
			// "buy bitcoin", "purchase some eth"
			re:    regexp.MustCompile(`(?i)\b(?:buy|purchase)\s+(?:some\s+)?(?:my\s+)?([a-zA-Z]+)\b`),
			slots: []slot{slotAsset},
		},
	},
	domain.ActionSell: {
		{
			// "sell 50% of my eth holdings", "sell 2 btc at $97,000"
			re:    regexp.MustCompile(`(?i)\bsell\s+(\d+(?:\.\d+)?)\s*(?:%|percent(?:age)?)?\s*(?:of\s+)?(?:my\s+)?([a-zA-Z]+)(?:\s+(?:at|@)\s+\$?([\d,]+(?:\.\d+)?))?`),
			slots: []slot{slotAmount, slotAsset, slotPrice},
		},
		{
			// "sell all my doge", "liquidate sol"
			re:    regexp.MustCompile(`(?i)\b(?:sell|dump|liquidate)\s+(?:all\s+)?(?:of\s+)?(?:my\s+)?([a-zA-Z]+)\b`),
			slots: []slot{slotAsset},
		},
	},
	domain.ActionLimit: {
		{
			// "limit order to buy 1 eth at $2,500"
			re:         regexp.MustCompile(`(?i)\blimit\s+(?:order\s+)?(?:to\s+)?(?:buy|sell)\s+(\d+(?:\.\d+)?)\s+([a-zA-Z]+)\s+(?:at|@)\s+\$?([\d,]+(?:\.\d+)?)`),
			slots:      []slot{slotAmount, slotAsset, slotPrice},
			conditions: []domain.Condition{domain.ConditionLimitOrder, domain.ConditionConditional},
		},
		{
			// "place a limit at $2,500 for eth"
			re:         regexp.MustCompile(`(?i)\blimit\s+(?:order\s+)?(?:at\s+)?\$?([\d,]+(?:\.\d+)?)\s+(?:for|on)\s+([a-zA-Z]+)\b`),
			slots:      []slot{slotPrice, slotAsset},
			conditions: []domain.Condition{domain.ConditionLimitOrder, domain.ConditionConditional},
		},
	},
	domain.ActionStop: {
		{
			// "set a stop loss at $40,000 for bitcoin"
			re:         regexp.MustCompile(`(?i)\bstop[\s-]?loss\s+(?:order\s+)?(?:at\s+)?\$?([\d,]+(?:\.\d+)?)\s+(?:for|on)\s+([a-zA-Z]+)\b`),
			slots:      []slot{slotPrice, slotAsset},
			conditions: []domain.Condition{domain.ConditionStopLoss, domain.ConditionTrigger},
		},
		{
			// "stop loss on btc at 40000"
			re:         regexp.MustCompile(`(?i)\bstop[\s-]?loss\s+(?:for|on)\s+([a-zA-Z]+)\s+(?:at\s+)?\$?([\d,]+(?:\.\d+)?)`),
			slots:      []slot{slotAsset, slotPrice},
			conditions: []domain.Condition{domain.ConditionStopLoss, domain.ConditionTrigger},
		},
	},
	domain.ActionStatus: {
		{
			// "show my current trading positions", "what's my portfolio status"
			re: regexp.MustCompile(`(?i)\b(?:show|display|view|list|check|what(?:'s|\s+is|\s+are)?)\b.*\b(?:positions?|portfolio|holdings?|balance|status|trades?)\b`),
		},
		{
			// "portfolio status", "open positions"
			re: regexp.MustCompile(`(?i)\b(?:portfolio|account)\s+(?:status|summary|overview)\b|\bopen\s+positions?\b`),
		},
	},
	domain.ActionCancel: {
		{
			// "cancel my pending order", "cancel that trade"
			re: regexp.MustCompile(`(?i)\bcancel\b.*\b(?:orders?|trades?|commands?)\b`),
		},
		{
			// "cancel the last one", "abort pending"
			re: regexp.MustCompile(`(?i)\b(?:cancel|abort)\s+(?:the\s+)?(?:last|pending|that|it)\b`),
		},
	},
}

// matchGrammar classifies text against the pattern table. It returns the
// matched action, its captures and condition tags, or ok=false when no
// pattern across any category matches.
func matchGrammar(text string) (domain.Action, Captures, []domain.Condition, bool) {
	for _, action := range domain.ActionPriority {
		for _, r := range grammar[action] {
			m := r.re.FindStringSubmatch(text)
			if m == nil {
				continue
			}

			var caps Captures
			for i, s := range r.slots {
				// Group i+1 may be empty when the pattern marks it optional.
				if i+1 >= len(m) {
					break
				}
				switch s {
				case slotAmount:
					caps.RawAmount = m[i+1]
				case slotAsset:
					caps.RawAsset = m[i+1]
				case slotPrice:
					caps.RawPrice = m[i+1]
				}
			}
			return action, caps, r.conditions, true
		}
	}
	return "", Captures{}, nil, false
}
