package parser

import (
	"testing"

	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
	"fjacquet/paynotify/internal/parsererror"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser() *Parser {
	return New(nil, nil, &logging.MockLogger{})
}

func TestParseWeChatPayment(t *testing.T) {
	p := newTestParser()

	info, err := p.ParseFields("com.tencent.mm", "", "Payment successful ¥25.50 to Starbucks", "")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("25.50").Equal(info.Amount))
	assert.Equal(t, models.TypeExpense, info.Type)
	assert.Equal(t, "Starbucks", info.Payee)
	assert.Equal(t, models.SourceWeChat, info.PaymentMethod)
	assert.GreaterOrEqual(t, info.Confidence, 0.9)
	assert.Equal(t, "Payment successful ¥25.50 to Starbucks", info.RawText)
}

func TestParseAlipayIncome(t *testing.T) {
	p := newTestParser()

	info, err := p.ParseFields("com.eg.android.AlipayGphone", "", "Received ¥100.00", "")
	require.NoError(t, err)

	assert.True(t, decimal.RequireFromString("100.00").Equal(info.Amount))
	assert.Equal(t, models.TypeIncome, info.Type)
	assert.Empty(t, info.Payee)
	assert.Equal(t, models.SourceAlipay, info.PaymentMethod)
}

func TestParseEmptyText(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name  string
		input models.NotificationInput
	}{
		{
			name:  "all fields empty",
			input: models.NotificationInput{SourceAppID: "com.tencent.mm"},
		},
		{
			name: "whitespace only",
			input: models.NotificationInput{
				SourceAppID: "com.tencent.mm",
				Title:       "   ",
				Body:        "\t\n",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.Parse(tt.input)
			require.Error(t, err)
			assert.True(t, parsererror.IsEmptyText(err))
		})
	}
}

func TestParseNotPaymentRelated(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseFields("com.tencent.mm", "", "Verification code: 283910", "")
	require.Error(t, err)
	assert.True(t, parsererror.IsNotPaymentRelated(err))
}

func TestParseAmountNotFound(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseFields("com.tencent.mm", "", "支付成功", "")
	require.Error(t, err)
	assert.True(t, parsererror.IsAmountNotFound(err))
}

func TestParseMalformedInput(t *testing.T) {
	p := newTestParser()

	_, err := p.ParseFields("com.tencent.mm", "", string([]byte{0xff, 0xfe, 0xfd}), "")
	require.Error(t, err)
	assert.True(t, parsererror.IsMalformedInput(err))
}

func TestParseUnknownSourceStillParses(t *testing.T) {
	p := newTestParser()

	info, err := p.ParseFields("com.example.launcher", "", "Deducted ¥18.00", "")
	require.NoError(t, err)
	assert.Equal(t, models.SourceUnknown, info.PaymentMethod)
	assert.True(t, decimal.RequireFromString("18").Equal(info.Amount))
}

func TestParseBrandMentionOverridesUnknownSource(t *testing.T) {
	p := newTestParser()

	// Generic banking app id, but the text names the brand.
	info, err := p.ParseFields("com.example.bankhub", "", "招商银行：您的账户消费 ¥66.00", "")
	require.NoError(t, err)
	assert.Equal(t, models.SourceCMB, info.PaymentMethod)
}

func TestParseBothPolaritiesIsExpense(t *testing.T) {
	p := newTestParser()

	info, err := p.ParseFields("com.tencent.mm", "", "Received transfer, deducted ¥10.00 fee", "")
	require.NoError(t, err)
	assert.Equal(t, models.TypeExpense, info.Type)
}

func TestParseIdempotent(t *testing.T) {
	p := newTestParser()
	input := models.NotificationInput{
		SourceAppID: "com.tencent.mm",
		Body:        "Payment successful ¥25.50 to Starbucks",
	}

	first, err := p.Parse(input)
	require.NoError(t, err)
	second, err := p.Parse(input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestParseConfidenceMonotonicWithPayee(t *testing.T) {
	p := newTestParser()

	without, err := p.ParseFields("com.example.app", "", "Transfer ¥10.00 completed", "")
	require.NoError(t, err)

	with, err := p.ParseFields("com.example.app", "", "Transfer ¥10.00 completed to AcmeStore", "")
	require.NoError(t, err)

	assert.GreaterOrEqual(t, with.Confidence, without.Confidence)
	assert.Equal(t, "AcmeStore", with.Payee)
}

func TestParseAccountTail(t *testing.T) {
	p := newTestParser()

	info, err := p.ParseFields("cmb.pb", "", "您尾号1234的储蓄卡消费 ¥50.00", "")
	require.NoError(t, err)
	assert.Equal(t, "1234", info.AccountTail)
	assert.Equal(t, models.SourceCMB, info.PaymentMethod)
}

func TestParseConfidenceWeights(t *testing.T) {
	p := newTestParser()

	tests := []struct {
		name     string
		appID    string
		text     string
		expected float64
	}{
		{
			// marked amount 0.4 + explicit direction 0.3 + payee 0.2 + known source 0.1
			name:     "all fields extracted",
			appID:    "com.tencent.mm",
			text:     "Payment successful ¥25.50 to Starbucks",
			expected: 1.0,
		},
		{
			// marked amount 0.4 + explicit direction 0.3 + known source 0.1
			name:     "no payee",
			appID:    "com.eg.android.AlipayGphone",
			text:     "Received ¥100.00",
			expected: 0.8,
		},
		{
			// marked amount 0.4 + defaulted direction 0.1
			name:     "defaulted direction, unknown source",
			appID:    "com.example.app",
			text:     "Transfer ¥10.00 completed",
			expected: 0.5,
		},
		{
			// unmarked amount 0.25 + explicit direction 0.3
			name:     "unmarked amount",
			appID:    "com.example.app",
			text:     "Paid 20.50 for order",
			expected: 0.55,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := p.ParseFields(tt.appID, "", tt.text, "")
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, info.Confidence, 1e-9)
		})
	}
}
