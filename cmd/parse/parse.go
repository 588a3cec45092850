// Package parse handles parsing a single notification from the command line
package parse

import (
	"fjacquet/paynotify/cmd/root"
	"fjacquet/paynotify/internal/parsererror"

	"github.com/spf13/cobra"
)

var (
	sourceApp string
	title     string
	body      string
	bigText   string
)

// Cmd represents the parse command
var Cmd = &cobra.Command{
	Use:   "parse",
	Short: "Parse a single notification into a transaction record",
	Long: `Parse a single notification into a transaction record.

The notification text is given via flags; the command prints the extracted
amount, direction, payee and payment method together with the confidence
score.

Example:
  paynotify parse -a com.tencent.mm -b "Payment successful ¥25.50 to Starbucks"`,
	Run: parseFunc,
}

func init() {
	Cmd.Flags().StringVarP(&sourceApp, "app", "a", "", "Source application identifier (package name)")
	Cmd.Flags().StringVarP(&title, "title", "t", "", "Notification title")
	Cmd.Flags().StringVarP(&body, "body", "b", "", "Notification body")
	Cmd.Flags().StringVarP(&bigText, "big-text", "x", "", "Expanded notification text, if any")
	_ = Cmd.MarkFlagRequired("body")
}

func parseFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Parse command called")

	cfg := root.GetConfig()
	if !cfg.Parser.Enabled {
		root.Log.Warn("Notification parsing is disabled (parser.enabled=false)")
		return
	}

	p := root.GetContainer().GetParser()
	info, err := p.ParseFields(sourceApp, title, body, bigText)
	if err != nil {
		// Not every rejection is a failure: most notifications simply are
		// not payments.
		if parsererror.IsSilent(err) {
			root.Log.Infof("Not a payment notification: %v", err)
			return
		}
		root.Log.Fatalf("Error parsing notification: %v", err)
	}

	root.Log.Infof("Amount: %s", info.Amount.StringFixed(2))
	root.Log.Infof("Type: %s", info.Type)
	if info.Payee != "" {
		root.Log.Infof("Payee: %s", info.Payee)
	}
	root.Log.Infof("Payment method: %s", info.PaymentMethod)
	if info.AccountTail != "" {
		root.Log.Infof("Account tail: %s", info.AccountTail)
	}
	root.Log.Infof("Confidence: %.2f", info.Confidence)
}
