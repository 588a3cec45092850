// Package store loads the parsing rule data — keyword lists and the app-id
// source table — from YAML. The literal lists are tuned empirically against
// real notification samples, so they live in data files rather than code;
// a missing file simply means the built-in defaults apply.
package store

import (
	"fmt"
	"os"

	"fjacquet/paynotify/internal/keywords"
	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/models"
	"fjacquet/paynotify/internal/sources"

	"gopkg.in/yaml.v3"
)

// RuleLoader is the interface the container consumes, allowing tests to
// substitute a mock store.
type RuleLoader interface {
	LoadKeywords() (*keywords.Set, error)
	LoadSources() (*sources.Table, error)
}

// RuleStore loads rule overrides from a YAML file.
type RuleStore struct {
	RulesFile string
	logger    logging.Logger
}

// ruleFile is the on-disk YAML shape. Every section is optional; omitted
// sections keep their built-in defaults.
type ruleFile struct {
	Keywords struct {
		Gate    []string `yaml:"gate"`
		Income  []string `yaml:"income"`
		Expense []string `yaml:"expense"`
	} `yaml:"keywords"`
	Sources map[string]string `yaml:"sources"`
}

// NewRuleStore creates a store reading from the given file path. An empty
// path means "defaults only".
func NewRuleStore(rulesFile string, logger logging.Logger) *RuleStore {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &RuleStore{
		RulesFile: rulesFile,
		logger:    logger,
	}
}

// LoadKeywords returns the keyword set, with any lists present in the rule
// file replacing their defaults wholesale.
func (s *RuleStore) LoadKeywords() (*keywords.Set, error) {
	rules, err := s.read()
	if err != nil {
		return nil, err
	}

	set := keywords.Default()
	if rules == nil {
		return set, nil
	}
	if len(rules.Keywords.Gate) > 0 {
		set.Gate = rules.Keywords.Gate
	}
	if len(rules.Keywords.Income) > 0 {
		set.Income = rules.Keywords.Income
	}
	if len(rules.Keywords.Expense) > 0 {
		set.Expense = rules.Keywords.Expense
	}
	return set, nil
}

// LoadSources returns the source table, with the app-id mapping from the
// rule file replacing the default table when present. Mappings naming an
// unrecognized source value are skipped with a warning.
func (s *RuleStore) LoadSources() (*sources.Table, error) {
	rules, err := s.read()
	if err != nil {
		return nil, err
	}

	if rules == nil || len(rules.Sources) == 0 {
		return sources.Default(), nil
	}

	apps := make(map[string]models.PaymentSource, len(rules.Sources))
	for appID, name := range rules.Sources {
		source, ok := parseSource(name)
		if !ok {
			s.logger.WithFields(
				logging.Field{Key: logging.FieldSourceApp, Value: appID},
				logging.Field{Key: logging.FieldSource, Value: name},
			).Warn("Skipping source mapping with unrecognized source value")
			continue
		}
		apps[appID] = source
	}
	return sources.NewTable(apps), nil
}

// read parses the rule file, returning nil when no file is configured or
// the configured file does not exist.
func (s *RuleStore) read() (*ruleFile, error) {
	if s.RulesFile == "" {
		return nil, nil
	}

	data, err := os.ReadFile(s.RulesFile)
	if os.IsNotExist(err) {
		s.logger.WithField(logging.FieldInputFile, s.RulesFile).
			Debug("Rule file not found, using built-in defaults")
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading rule file %s: %w", s.RulesFile, err)
	}

	var rules ruleFile
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rule file %s: %w", s.RulesFile, err)
	}
	return &rules, nil
}

var sourceNames = map[string]models.PaymentSource{
	string(models.SourceWeChat):   models.SourceWeChat,
	string(models.SourceAlipay):   models.SourceAlipay,
	string(models.SourceUnionPay): models.SourceUnionPay,
	string(models.SourceCMB):      models.SourceCMB,
	string(models.SourceICBC):     models.SourceICBC,
	string(models.SourceCCB):      models.SourceCCB,
	string(models.SourceABC):      models.SourceABC,
	string(models.SourceBOC):      models.SourceBOC,
	string(models.SourceUnknown):  models.SourceUnknown,
}

func parseSource(name string) (models.PaymentSource, bool) {
	source, ok := sourceNames[name]
	return source, ok
}
