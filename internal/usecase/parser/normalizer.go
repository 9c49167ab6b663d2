package parser

import "strings"

// assetAliases maps colloquial asset names to canonical uppercase tickers.
// Lookup is case-insensitive.
var assetAliases = map[string]string{
	"bitcoin":   "BTC",
	"btc":       "BTC",
	"xbt":       "BTC",
	"ethereum":  "ETH",
	"ether":     "ETH",
	"eth":       "ETH",
	"solana":    "SOL",
	"sol":       "SOL",
	"cardano":   "ADA",
	"ada":       "ADA",
	"dogecoin":  "DOGE",
	"doge":      "DOGE",
	"ripple":    "XRP",
	"xrp":       "XRP",
	"litecoin":  "LTC",
	"ltc":       "LTC",
	"polkadot":  "DOT",
	"dot":       "DOT",
	"avalanche": "AVAX",
	"avax":      "AVAX",
	"polygon":   "MATIC",
	"matic":     "MATIC",
	"chainlink": "LINK",
	"link":      "LINK",
	"binance":   "BNB",
	"bnb":       "BNB",
	"tether":    "USDT",
	"usdt":      "USDT",
	"usdc":      "USDC",
}

// NormalizeAsset maps a free-text asset token to a canonical uppercase ticker.
// Tokens not found in the alias table are upper-cased verbatim and returned
// as-is, so the function is total: it never fails for any input string, at
// the cost of potentially fabricating tickers for unknown tokens.
func NormalizeAsset(token string) string {
	cleaned := strings.TrimSpace(token)
	if canonical, ok := assetAliases[strings.ToLower(cleaned)]; ok {
		return canonical
	}
	return strings.ToUpper(cleaned)
}
