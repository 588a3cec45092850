package models

import (
	"github.com/shopspring/decimal"
)

// PaymentSource identifies the payment application or bank that originated
// a notification. It is a closed enumeration; anything the source table does
// not recognize maps to SourceUnknown.
type PaymentSource string

const (
	SourceWeChat   PaymentSource = "WECHAT"
	SourceAlipay   PaymentSource = "ALIPAY"
	SourceUnionPay PaymentSource = "UNIONPAY"
	SourceCMB      PaymentSource = "CMB"
	SourceICBC     PaymentSource = "ICBC"
	SourceCCB      PaymentSource = "CCB"
	SourceABC      PaymentSource = "ABC"
	SourceBOC      PaymentSource = "BOC"
	SourceUnknown  PaymentSource = "UNKNOWN"
)

// IsKnown reports whether the source was recognized.
func (s PaymentSource) IsKnown() bool {
	return s != SourceUnknown && s != ""
}

// TransactionType is the direction of a payment.
type TransactionType string

const (
	TypeExpense TransactionType = "EXPENSE"
	TypeIncome  TransactionType = "INCOME"
)

// PaymentInfo is the structured record produced by a successful parse.
// It is constructed once per notification and never mutated afterwards;
// ownership passes to the event channel on publish.
type PaymentInfo struct {
	// Amount is the positive transaction amount. Amount is the only
	// mandatory field: a parse with no amount is a failure, not a
	// low-confidence success.
	Amount decimal.Decimal

	// Type is the payment direction. Ambiguous text defaults to TypeExpense.
	Type TransactionType

	// Payee is the best-effort merchant or counterparty name. Empty when no
	// merchant marker was found in the text.
	Payee string

	// PaymentMethod is the originating source, possibly SourceUnknown.
	PaymentMethod PaymentSource

	// AccountTail holds the trailing card digits when the notification
	// mentions them ("尾号1234", "card ending 1234").
	AccountTail string

	// RawText is the full normalized notification text the record was
	// extracted from, retained for audit and debugging.
	RawText string

	// Confidence is a heuristic score in [0,1] reflecting how many
	// independent fields were extracted unambiguously.
	Confidence float64
}

// IsExpense returns true for outgoing money.
func (p PaymentInfo) IsExpense() bool {
	return p.Type == TypeExpense
}

// IsIncome returns true for incoming money.
func (p PaymentInfo) IsIncome() bool {
	return p.Type == TypeIncome
}
