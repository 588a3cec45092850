package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePayments() []models.PaymentInfo {
	return []models.PaymentInfo{
		{
			Amount:        decimal.RequireFromString("25.50"),
			Type:          models.TypeExpense,
			Payee:         "Starbucks",
			PaymentMethod: models.SourceWeChat,
			RawText:       "Payment successful ¥25.50 to Starbucks",
			Confidence:    1.0,
		},
		{
			Amount:        decimal.RequireFromString("100"),
			Type:          models.TypeIncome,
			PaymentMethod: models.SourceAlipay,
			RawText:       "Received ¥100.00",
			Confidence:    0.8,
		},
	}
}

func TestWriteLedger(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLedger(&buf, samplePayments(), ',', &logging.MockLogger{})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Amount,Type,Payee,PaymentMethod,AccountTail,Confidence,RawText", lines[0])
	assert.Contains(t, lines[1], "25.50")
	assert.Contains(t, lines[1], "EXPENSE")
	assert.Contains(t, lines[1], "Starbucks")
	assert.Contains(t, lines[2], "100.00")
	assert.Contains(t, lines[2], "INCOME")
}

func TestWriteLedgerCustomDelimiter(t *testing.T) {
	var buf bytes.Buffer
	err := WriteLedger(&buf, samplePayments(), ';', &logging.MockLogger{})
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Amount;Type;Payee")
}

func TestWriteLedgerFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "ledger.csv")
	err := WriteLedgerFile(path, samplePayments(), ',', &logging.MockLogger{})
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Starbucks")
}

func TestReadNotifications(t *testing.T) {
	dump := strings.Join([]string{
		"SourceAppID,Title,Body,ExpandedBody",
		`com.tencent.mm,WeChat Pay,Payment successful ¥25.50 to Starbucks,`,
		`com.eg.android.AlipayGphone,,Received ¥100.00,Received ¥100.00`,
	}, "\n")

	inputs, err := ReadNotifications(strings.NewReader(dump), &logging.MockLogger{})
	require.NoError(t, err)
	require.Len(t, inputs, 2)

	assert.Equal(t, "com.tencent.mm", inputs[0].SourceAppID)
	assert.Equal(t, "WeChat Pay", inputs[0].Title)
	assert.Equal(t, "Payment successful ¥25.50 to Starbucks", inputs[0].Body)
	assert.Equal(t, "Received ¥100.00", inputs[1].ExpandedBody)
}

func TestReadNotificationsMalformed(t *testing.T) {
	_, err := ReadNotifications(strings.NewReader(`SourceAppID,"unterminated`), &logging.MockLogger{})
	assert.Error(t, err)
}
