package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

// payeePatterns match text following a merchant-introduction marker up to the
// next delimiter. Ordered from most to least specific; the first match wins.
// Chinese captures stop at whitespace as well as punctuation since Chinese
// merchant names carry no internal spaces and the amount usually follows
// unpunctuated.
var payeePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)merchant[:：]\s*([^,.;:!?，。；：！？]+)`),
	regexp.MustCompile(`商户[:：]?\s*([^\s，。；：！？,.;:!?]+)`),
	regexp.MustCompile(`收款方[:：]?\s*([^\s，。；：！？,.;:!?]+)`),
	regexp.MustCompile(`付款给\s*([^\s，。；：！？,.;:!?]+)`),
	regexp.MustCompile(`向\s*([^\s，。；：！？,.;:!?]+?)(?:付款|转账|支付|$)`),
	regexp.MustCompile(`(?i)\bto\s+([^,.;:!?，。；：！？]+)`),
	regexp.MustCompile(`(?i)\bat\s+([^,.;:!?，。；：！？]+)`),
	regexp.MustCompile(`(?i)\bfrom\s+([^,.;:!?，。；：！？]+)`),
}

// ExtractPayee finds the merchant or counterparty name in the text. Merchant
// is optional: absence never fails the overall parse, so the second return
// value simply reports whether a marker was found.
func ExtractPayee(text string) (string, bool) {
	for _, pattern := range payeePatterns {
		matches := pattern.FindStringSubmatch(text)
		if len(matches) < 2 {
			continue
		}
		payee := trimNonNameTokens(matches[1])
		if payee == "" {
			continue
		}
		return payee, true
	}
	return "", false
}

// trimNonNameTokens drops trailing whitespace-separated tokens that contain
// no letter, so "Starbucks ¥25.50" becomes "Starbucks". A capture with no
// letters at all (a bare amount or account number caught after "to") is
// rejected entirely.
func trimNonNameTokens(capture string) string {
	tokens := strings.Fields(capture)
	for len(tokens) > 0 && !hasLetter(tokens[len(tokens)-1]) {
		tokens = tokens[:len(tokens)-1]
	}
	return strings.Join(tokens, " ")
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}
