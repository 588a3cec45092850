package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractAmount(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		marked   bool
		found    bool
	}{
		{
			name:     "yen symbol",
			text:     "Payment successful ¥25.50 to Starbucks",
			expected: "25.5",
			marked:   true,
			found:    true,
		},
		{
			name:     "fullwidth yen symbol",
			text:     "微信支付 支付成功 ￥12.00",
			expected: "12",
			marked:   true,
			found:    true,
		},
		{
			name:     "trailing currency word",
			text:     "收款到账 100.00元",
			expected: "100",
			marked:   true,
			found:    true,
		},
		{
			name:     "symbol with space",
			text:     "Deducted $ 1,234.56 from your account",
			expected: "1234.56",
			marked:   true,
			found:    true,
		},
		{
			name:     "apostrophe thousands separator",
			text:     "Paid CHF 2'500.00",
			expected: "2500",
			marked:   true,
			found:    true,
		},
		{
			name:     "unmarked decimal amount is accepted",
			text:     "Transfer of 88.80 completed",
			expected: "88.8",
			found:    true,
		},
		{
			name:  "bare integer without marker is rejected",
			text:  "Verification code: 283910",
			found: false,
		},
		{
			name:  "no numeric token",
			text:  "支付成功",
			found: false,
		},
		{
			name:     "marked candidate preferred over earlier unmarked one",
			text:     "Order 45.00 items, paid ¥30.00",
			expected: "30",
			marked:   true,
			found:    true,
		},
		{
			name:     "first unmarked decimal wins when none marked",
			text:     "Paid 20.50 of 99.99 due",
			expected: "20.5",
			found:    true,
		},
		{
			name:  "card tail digits are not an amount",
			text:  "扣款通知 尾号1234",
			found: false,
		},
		{
			name:  "empty text",
			text:  "",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, found := ExtractAmount(tt.text)
			require.Equal(t, tt.found, found)
			if !found {
				return
			}
			assert.Equal(t, tt.expected, result.Value.String())
			assert.Equal(t, tt.marked, result.Marked)
		})
	}
}
