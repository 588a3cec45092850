// Package batch handles batch parsing of notification dump files
package batch

import (
	"sync"
	"sync/atomic"

	"fjacquet/paynotify/cmd/root"
	"fjacquet/paynotify/internal/events"
	"fjacquet/paynotify/internal/export"
	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
	"fjacquet/paynotify/internal/parser"
	"fjacquet/paynotify/internal/parsererror"

	"github.com/spf13/cobra"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Parse a notification dump file into a ledger CSV",
	Long: `Parse a notification dump file into a ledger CSV.

The input is a CSV dump of raw notifications (SourceAppID, Title, Body,
ExpandedBody). Each row is parsed independently on a worker pool; rows that
are not payment notifications are skipped. Parsed payments are written to
the output ledger in input order.

Example:
  paynotify batch -i notifications.csv -o ledger.csv`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output
	if inputFile == "" || outputFile == "" {
		root.Log.Fatal("Input and output files must be specified")
	}

	cfg := root.GetConfig()
	if !cfg.Parser.Enabled {
		root.Log.Warn("Notification parsing is disabled (parser.enabled=false)")
		return
	}

	appContainer := root.GetContainer()
	logger := root.GetLogrusAdapter()

	inputs, err := export.ReadNotificationsFile(inputFile, logger)
	if err != nil {
		root.Log.Fatalf("Error reading notification dump: %v", err)
	}

	payments, skipped := parseAll(appContainer.GetParser(), appContainer.GetBroadcaster(), inputs, cfg.Parser.Workers, logger)

	delimiter := []rune(cfg.Ledger.Delimiter)[0]
	if err := export.WriteLedgerFile(outputFile, payments, delimiter, logger); err != nil {
		root.Log.Fatalf("Error writing ledger: %v", err)
	}

	root.Log.Infof("Batch parsing completed. %d payments written, %d notifications skipped.", len(payments), skipped)
}

// parseAll parses every notification on a pool of workers and publishes each
// parsed payment on the event channel. The returned payments preserve input
// order regardless of which worker finished first. Notifications rejected as
// non-payments count toward skipped; malformed rows are logged and skipped
// as well.
func parseAll(p *parser.Parser, broadcaster *events.Broadcaster, inputs []models.NotificationInput, workers int, logger logging.Logger) ([]models.PaymentInfo, int) {
	if workers < 1 {
		workers = 1
	}

	results := make([]*models.PaymentInfo, len(inputs))
	jobs := make(chan int)
	var skipped atomic.Int64

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				info, err := p.Parse(inputs[i])
				if err != nil {
					skipped.Add(1)
					if !parsererror.IsSilent(err) {
						logger.WithError(err).Warn("Skipping notification",
							logging.Field{Key: "row", Value: i})
					}
					continue
				}
				results[i] = &info
				broadcaster.Publish(info)
			}
		}()
	}

	for i := range inputs {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	payments := make([]models.PaymentInfo, 0, len(inputs))
	for _, r := range results {
		if r != nil {
			payments = append(payments, *r)
		}
	}

	logger.Info("Parsed notification dump",
		logging.Field{Key: logging.FieldCount, Value: len(payments)},
		logging.Field{Key: "skipped", Value: skipped.Load()})

	return payments, int(skipped.Load())
}
