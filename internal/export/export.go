// Package export moves parsed payment records and notification dumps across
// the CSV boundary: the ledger file consumed by downstream bookkeeping, and
// the notification dump files fed into batch parsing.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"

	"github.com/gocarina/gocsv"
)

// LedgerRow is the CSV shape of one parsed payment.
type LedgerRow struct {
	Amount        string `csv:"Amount"`
	Type          string `csv:"Type"`
	Payee         string `csv:"Payee"`
	PaymentMethod string `csv:"PaymentMethod"`
	AccountTail   string `csv:"AccountTail"`
	Confidence    string `csv:"Confidence"`
	RawText       string `csv:"RawText"`
}

// NewLedgerRow converts a payment record to its CSV row representation.
// Amounts are written with exactly two decimal places.
func NewLedgerRow(info models.PaymentInfo) LedgerRow {
	return LedgerRow{
		Amount:        info.Amount.StringFixed(2),
		Type:          string(info.Type),
		Payee:         info.Payee,
		PaymentMethod: string(info.PaymentMethod),
		AccountTail:   info.AccountTail,
		Confidence:    fmt.Sprintf("%.2f", info.Confidence),
		RawText:       info.RawText,
	}
}

// NotificationRow is the CSV shape of one raw notification in a dump file.
type NotificationRow struct {
	SourceAppID  string `csv:"SourceAppID"`
	Title        string `csv:"Title"`
	Body         string `csv:"Body"`
	ExpandedBody string `csv:"ExpandedBody"`
}

// Input converts a dump row to the parser's input type.
func (r NotificationRow) Input() models.NotificationInput {
	return models.NotificationInput{
		SourceAppID:  r.SourceAppID,
		Title:        r.Title,
		Body:         r.Body,
		ExpandedBody: r.ExpandedBody,
	}
}

// WriteLedger writes parsed payments as CSV to the given writer.
func WriteLedger(w io.Writer, payments []models.PaymentInfo, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	rows := make([]LedgerRow, 0, len(payments))
	for _, p := range payments {
		rows = append(rows, NewLedgerRow(p))
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter
	if err := gocsv.MarshalCSV(&rows, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		logger.WithError(err).Error("Failed to marshal ledger rows to CSV")
		return fmt.Errorf("error writing ledger CSV: %w", err)
	}

	logger.WithField(logging.FieldCount, len(rows)).Info("Wrote ledger rows")
	return nil
}

// WriteLedgerFile writes parsed payments to a CSV file, creating parent
// directories as needed.
func WriteLedgerFile(path string, payments []models.PaymentInfo, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating ledger file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close ledger file")
		}
	}()

	logger.WithField(logging.FieldOutputFile, path).Info("Writing ledger file")
	return WriteLedger(file, payments, delimiter, logger)
}

// ReadNotifications reads a notification dump from the given reader.
func ReadNotifications(r io.Reader, logger logging.Logger) ([]models.NotificationInput, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	var rows []NotificationRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		logger.WithError(err).Error("Failed to parse notification dump CSV")
		return nil, fmt.Errorf("error parsing notification dump: %w", err)
	}

	inputs := make([]models.NotificationInput, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, row.Input())
	}

	logger.WithField(logging.FieldCount, len(inputs)).Info("Read notification dump")
	return inputs, nil
}

// ReadNotificationsFile reads a notification dump CSV file.
func ReadNotificationsFile(path string, logger logging.Logger) ([]models.NotificationInput, error) {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening notification dump: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close dump file")
		}
	}()

	logger.WithField(logging.FieldInputFile, path).Info("Reading notification dump")
	return ReadNotifications(file, logger)
}
