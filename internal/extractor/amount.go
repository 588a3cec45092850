// Package extractor provides the field extraction strategies of the parsing
// engine. Each extractor is a pure function over the same normalized text;
// none depends on another's result, so the orchestrator can run them in any
// order and tolerate partial success.
package extractor

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// markedAmountPattern matches a numeric token adjacent to an explicit
// currency marker: a symbol or currency word before it, or a currency word
// after it. The token allows thousands separators and up to two decimals.
var markedAmountPattern = regexp.MustCompile(`(?i)(?:[¥￥$€£]|\b(?:CNY|RMB|USD|EUR|GBP|CHF))\s*([0-9][0-9,']*(?:\.[0-9]{1,2})?)|([0-9][0-9,']*(?:\.[0-9]{1,2})?)\s*(?:[¥￥$€£]|元|\b(?:CNY|RMB|USD|EUR|GBP|CHF)\b)`)

// numberPattern matches any numeric token, for the unmarked fallback scan.
var numberPattern = regexp.MustCompile(`[0-9][0-9,']*(?:\.[0-9]{1,2})?`)

// AmountResult is the outcome of amount extraction.
type AmountResult struct {
	// Value is the extracted positive amount.
	Value decimal.Decimal

	// Marked reports whether the amount was adjacent to an explicit
	// currency marker (symbol or currency word). Marked amounts carry a
	// higher confidence contribution.
	Marked bool
}

// ExtractAmount locates the transaction amount in the text.
//
// Candidate policy: among all numeric tokens, the first one adjacent to a
// currency marker wins. When no candidate is marked, the first token with a
// decimal point wins. A bare integer with neither marker nor decimal point
// is never accepted — that shape is far more often a verification code,
// order number or card tail than money.
func ExtractAmount(text string) (AmountResult, bool) {
	for _, m := range markedAmountPattern.FindAllStringSubmatch(text, -1) {
		token := m[1]
		if token == "" {
			token = m[2]
		}
		if value, ok := parseAmountToken(token); ok {
			return AmountResult{Value: value, Marked: true}, true
		}
	}

	for _, token := range numberPattern.FindAllString(text, -1) {
		if !strings.Contains(token, ".") {
			continue
		}
		if value, ok := parseAmountToken(token); ok {
			return AmountResult{Value: value}, true
		}
	}
	return AmountResult{}, false
}

// parseAmountToken normalizes a numeric token (strips thousands separators)
// and parses it as a positive decimal.
func parseAmountToken(token string) (decimal.Decimal, bool) {
	token = strings.ReplaceAll(token, ",", "")
	token = strings.ReplaceAll(token, "'", "")

	value, err := decimal.NewFromString(token)
	if err != nil || !value.IsPositive() {
		return decimal.Zero, false
	}
	return value, true
}
