// Package keywords holds the keyword data the parsing engine matches
// notification text against: the payment gate terms and the direction
// polarity terms. The literal lists are data, not business logic — they are
// tuned against real notification samples and can be overridden from the
// rule store without touching any matching code.
package keywords

import "strings"

// Set is one complete keyword configuration. Matching is case-insensitive
// substring containment; notification text is short, so no tokenization is
// needed. A Set is read-only after construction and safe for concurrent use.
type Set struct {
	// Gate terms decide whether a text is payment related at all.
	Gate []string

	// Income terms indicate incoming money ("received", "收款").
	Income []string

	// Expense terms indicate outgoing money ("paid", "扣款").
	Expense []string
}

// Default returns the built-in keyword set covering the English and Chinese
// phrasings of the supported payment apps.
func Default() *Set {
	return &Set{
		Gate: []string{
			"payment successful",
			"transaction successful",
			"received",
			"deposit",
			"expense",
			"income",
			"transfer",
			"deducted",
			"paid",
			"refund",
			"spent",
			"支付成功",
			"交易成功",
			"付款成功",
			"收款",
			"到账",
			"转账",
			"消费",
			"付款",
			"退款",
			"入账",
			"扣款",
		},
		Income: []string{
			"received",
			"deposit",
			"income",
			"refund",
			"credited",
			"收款",
			"到账",
			"入账",
			"退款",
			"收入",
		},
		Expense: []string{
			"paid",
			"payment successful",
			"spent",
			"deducted",
			"expense",
			"transfer out",
			"debited",
			"purchase",
			"支付成功",
			"付款",
			"消费",
			"扣款",
			"转出",
			"支出",
		},
	}
}

// IsPaymentRelated reports whether the text contains at least one gate term.
// This is the cheap pre-filter that keeps full extraction from running on
// the vast majority of notifications, which aren't payments.
func (s *Set) IsPaymentRelated(text string) bool {
	_, ok := s.GateMatch(text)
	return ok
}

// GateMatch returns the first gate term found in the text, for logging.
func (s *Set) GateMatch(text string) (string, bool) {
	return match(text, s.Gate)
}

// IncomeMatch returns the first income polarity term found in the text.
func (s *Set) IncomeMatch(text string) (string, bool) {
	return match(text, s.Income)
}

// ExpenseMatch returns the first expense polarity term found in the text.
func (s *Set) ExpenseMatch(text string) (string, bool) {
	return match(text, s.Expense)
}

func match(text string, terms []string) (string, bool) {
	upper := strings.ToUpper(text)
	for _, term := range terms {
		if term == "" {
			continue
		}
		if strings.Contains(upper, strings.ToUpper(term)) {
			return term, true
		}
	}
	return "", false
}
