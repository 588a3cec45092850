package extractor

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPayee(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "english to marker",
			text:     "Payment successful ¥25.50 to Starbucks",
			expected: "Starbucks",
			found:    true,
		},
		{
			name:     "english at marker",
			text:     "Card purchase ¥78.00 at Carrefour Market",
			expected: "Carrefour Market",
			found:    true,
		},
		{
			name:     "english from marker",
			text:     "Received ¥50.00 from Alice Wang",
			expected: "Alice Wang",
			found:    true,
		},
		{
			name:     "merchant colon marker",
			text:     "Transaction successful. Merchant: Luckin Coffee, amount ¥15.00",
			expected: "Luckin Coffee",
			found:    true,
		},
		{
			name:     "chinese merchant marker",
			text:     "支付成功 商户:瑞幸咖啡 ¥15.00",
			expected: "瑞幸咖啡",
			found:    true,
		},
		{
			name:     "chinese xiang marker",
			text:     "你向星巴克付款 ¥25.50",
			expected: "星巴克",
			found:    true,
		},
		{
			name:     "chinese payee marker",
			text:     "收款方：滴滴出行 扣款 ¥18.60",
			expected: "滴滴出行",
			found:    true,
		},
		{
			name:  "no marker returns none",
			text:  "Received ¥100.00",
			found: false,
		},
		{
			name:  "capture without letters is rejected",
			text:  "Transferred to 6222021234",
			found: false,
		},
		{
			name:     "capture stops at punctuation",
			text:     "Paid ¥30.00 to Uniqlo, thank you",
			expected: "Uniqlo",
			found:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payee, found := ExtractPayee(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, payee)
		})
	}
}

func TestExtractAccountTail(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
		found    bool
	}{
		{
			name:     "chinese tail marker",
			text:     "您尾号1234的储蓄卡支出 ¥50.00",
			expected: "1234",
			found:    true,
		},
		{
			name:     "english card ending",
			text:     "Your card ending 5678 was charged $20.00",
			expected: "5678",
			found:    true,
		},
		{
			name:     "card ending in",
			text:     "card ending in 901 debited",
			expected: "901",
			found:    true,
		},
		{
			name:  "no tail",
			text:  "Payment successful ¥25.50",
			found: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tail, found := ExtractAccountTail(tt.text)
			assert.Equal(t, tt.found, found)
			assert.Equal(t, tt.expected, tail)
		})
	}
}
