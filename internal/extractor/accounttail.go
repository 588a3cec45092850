package extractor

import "regexp"

// tailPattern matches the trailing card digits banks include in payment
// notifications, in both Chinese and English phrasings.
var tailPattern = regexp.MustCompile(`(?i)(?:尾号|卡号|card ending(?: in)?|account ending(?: in)?|ending in)\s*[:：]?\s*\(?([0-9]{3,4})\)?`)

// ExtractAccountTail finds the trailing card digits mentioned in the text.
// The tail is informational only; it contributes nothing to confidence.
func ExtractAccountTail(text string) (string, bool) {
	matches := tailPattern.FindStringSubmatch(text)
	if len(matches) < 2 {
		return "", false
	}
	return matches[1], true
}
