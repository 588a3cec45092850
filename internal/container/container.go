// Package container provides dependency injection for the application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/paynotify/internal/config"
	"fjacquet/paynotify/internal/events"
	"fjacquet/paynotify/internal/logging"
	"fjacquet/paynotify/internal/parser"
	"fjacquet/paynotify/internal/store"
)

// Container holds all application dependencies and provides methods to
// access them. It is immutable after creation: all fields are private and
// reachable only through getters, so nothing can swap a dependency out from
// under a running component.
type Container struct {
	logger      logging.Logger
	config      *config.Config
	ruleStore   store.RuleLoader
	parser      *parser.Parser
	broadcaster *events.Broadcaster
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first; everything else needs it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	ruleStore := store.NewRuleStore(cfg.Parser.RulesFile, logger)

	keywordSet, err := ruleStore.LoadKeywords()
	if err != nil {
		return nil, fmt.Errorf("loading keyword rules: %w", err)
	}
	sourceTable, err := ruleStore.LoadSources()
	if err != nil {
		return nil, fmt.Errorf("loading source rules: %w", err)
	}

	p := parser.New(keywordSet, sourceTable, logger)
	broadcaster := events.NewBroadcaster(cfg.Channel.Capacity, logger)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "parser_enabled", Value: cfg.Parser.Enabled},
		logging.Field{Key: "channel_capacity", Value: cfg.Channel.Capacity})

	return &Container{
		logger:      logger,
		config:      cfg,
		ruleStore:   ruleStore,
		parser:      p,
		broadcaster: broadcaster,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetRuleStore returns the container's rule store instance.
func (c *Container) GetRuleStore() store.RuleLoader {
	return c.ruleStore
}

// GetParser returns the container's notification parser instance.
func (c *Container) GetParser() *parser.Parser {
	return c.parser
}

// GetBroadcaster returns the container's payment event channel.
func (c *Container) GetBroadcaster() *events.Broadcaster {
	return c.broadcaster
}

// Close performs cleanup of container resources: the event channel is shut
// down and all subscriber channels are closed.
func (c *Container) Close() error {
	c.broadcaster.Close()
	c.logger.Info("Container closed")
	return nil
}
