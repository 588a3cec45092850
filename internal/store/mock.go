package store

import (
	"fjacquet/paynotify/internal/keywords"
	"fjacquet/paynotify/internal/sources"
)

// MockRuleStore is a mock implementation of RuleLoader for testing.
type MockRuleStore struct {
	Keywords *keywords.Set
	Sources  *sources.Table

	// Error flags for testing error conditions
	LoadKeywordsError error
	LoadSourcesError  error
}

// LoadKeywords returns the mock keyword set, or the defaults when none set.
func (m *MockRuleStore) LoadKeywords() (*keywords.Set, error) {
	if m.LoadKeywordsError != nil {
		return nil, m.LoadKeywordsError
	}
	if m.Keywords == nil {
		return keywords.Default(), nil
	}
	return m.Keywords, nil
}

// LoadSources returns the mock source table, or the defaults when none set.
func (m *MockRuleStore) LoadSources() (*sources.Table, error) {
	if m.LoadSourcesError != nil {
		return nil, m.LoadSourcesError
	}
	if m.Sources == nil {
		return sources.Default(), nil
	}
	return m.Sources, nil
}
