package batch

import (
	"testing"

	"fjacquet/paynotify/internal/events"
	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
	"fjacquet/paynotify/internal/parser"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAllPreservesOrder(t *testing.T) {
	p := parser.New(nil, nil, &logging.MockLogger{})
	broadcaster := events.NewBroadcaster(100, &logging.MockLogger{})
	defer broadcaster.Close()

	inputs := []models.NotificationInput{
		{SourceAppID: "com.tencent.mm", Body: "Payment successful ¥25.50 to Starbucks"},
		{Body: "Your verification code is 283910"},
		{SourceAppID: "com.eg.android.AlipayGphone", Body: "Received ¥100.00"},
		{Body: ""},
		{SourceAppID: "com.tencent.mm", Body: "Payment successful ¥3.00"},
	}

	payments, skipped := parseAll(p, broadcaster, inputs, 4, &logging.MockLogger{})

	require.Len(t, payments, 3)
	assert.Equal(t, 2, skipped)

	// Output order follows input order even with concurrent workers.
	assert.True(t, decimal.RequireFromString("25.50").Equal(payments[0].Amount))
	assert.True(t, decimal.RequireFromString("100").Equal(payments[1].Amount))
	assert.True(t, decimal.RequireFromString("3").Equal(payments[2].Amount))
	assert.Equal(t, models.TypeIncome, payments[1].Type)
}

func TestParseAllPublishesEvents(t *testing.T) {
	p := parser.New(nil, nil, &logging.MockLogger{})
	broadcaster := events.NewBroadcaster(100, &logging.MockLogger{})
	defer broadcaster.Close()

	ch, cancel := broadcaster.Subscribe()
	defer cancel()

	inputs := []models.NotificationInput{
		{SourceAppID: "com.tencent.mm", Body: "Payment successful ¥25.50 to Starbucks"},
		{SourceAppID: "com.eg.android.AlipayGphone", Body: "Received ¥100.00"},
	}

	payments, skipped := parseAll(p, broadcaster, inputs, 2, &logging.MockLogger{})
	require.Len(t, payments, 2)
	assert.Zero(t, skipped)

	received := []models.PaymentInfo{<-ch, <-ch}
	assert.Len(t, received, 2)
}

func TestParseAllEmptyInput(t *testing.T) {
	p := parser.New(nil, nil, &logging.MockLogger{})
	broadcaster := events.NewBroadcaster(10, &logging.MockLogger{})
	defer broadcaster.Close()

	payments, skipped := parseAll(p, broadcaster, nil, 4, &logging.MockLogger{})
	assert.Empty(t, payments)
	assert.Zero(t, skipped)
}

func TestParseAllClampsWorkerCount(t *testing.T) {
	p := parser.New(nil, nil, &logging.MockLogger{})
	broadcaster := events.NewBroadcaster(10, &logging.MockLogger{})
	defer broadcaster.Close()

	inputs := []models.NotificationInput{
		{SourceAppID: "com.tencent.mm", Body: "Payment successful ¥25.50"},
	}

	payments, _ := parseAll(p, broadcaster, inputs, 0, &logging.MockLogger{})
	require.Len(t, payments, 1)
}

func TestBatchCommandMetadata(t *testing.T) {
	assert.Equal(t, "batch", Cmd.Use)
	assert.Contains(t, Cmd.Short, "notification dump")
	assert.NotNil(t, Cmd.Run)
}
