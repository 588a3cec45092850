// Package rules prints the active parsing rule set
package rules

import (
	"fmt"

	"fjacquet/paynotify/cmd/root"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// Cmd represents the rules command
var Cmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active keyword lists and source table",
	Long: `Show the active keyword lists and source table as YAML.

The output reflects any overrides loaded from the configured rules file and
can be saved and edited as the starting point for a custom rules file.`,
	Run: rulesFunc,
}

// ruleDump mirrors the on-disk rules file layout so the printed output can
// be fed straight back in via parser.rules_file.
type ruleDump struct {
	Keywords struct {
		Gate    []string `yaml:"gate"`
		Income  []string `yaml:"income"`
		Expense []string `yaml:"expense"`
	} `yaml:"keywords"`
	Sources map[string]string `yaml:"sources"`
}

func rulesFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Rules command called")

	store := root.GetContainer().GetRuleStore()

	keywords, err := store.LoadKeywords()
	if err != nil {
		root.Log.Fatalf("Error loading keyword rules: %v", err)
	}
	sources, err := store.LoadSources()
	if err != nil {
		root.Log.Fatalf("Error loading source rules: %v", err)
	}

	var dump ruleDump
	dump.Keywords.Gate = keywords.Gate
	dump.Keywords.Income = keywords.Income
	dump.Keywords.Expense = keywords.Expense
	dump.Sources = make(map[string]string)
	for app, source := range sources.KnownApps() {
		dump.Sources[app] = string(source)
	}

	out, err := yaml.Marshal(dump)
	if err != nil {
		root.Log.Fatalf("Error rendering rules: %v", err)
	}
	fmt.Print(string(out))
}
