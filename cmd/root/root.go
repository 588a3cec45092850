// Package root contains the root command for the application
package root

import (
	"sync"

	"fjacquet/paynotify/internal/config"
	"fjacquet/paynotify/internal/container"
	"fjacquet/paynotify/internal/logging"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags that are common to multiple commands
type CommonFlags struct {
	Input  string
	Output string
}

var (
	// Log is the shared logger instance for commands
	Log = logrus.New()

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "paynotify",
		Short: "A CLI tool to parse payment notifications into transaction records.",
		Long: `paynotify parses the text of payment app and bank notifications
(WeChat Pay, Alipay, UnionPay, bank apps) into structured transaction
records: amount, direction, payee and payment method, with a confidence
score for each extraction.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to paynotify!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv(Log)
			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}
			appConfig = cfg
			Log = config.ConfigureLoggingFromConfig(cfg)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			containerMu.Lock()
			defer containerMu.Unlock()
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.Warnf("Failed to close container: %v", err)
				}
				appContainer = nil
			}
		},
	}

	// SharedFlags holds common flags accessible to all commands
	SharedFlags = CommonFlags{}

	appConfig    *config.Config
	appContainer *container.Container
	containerMu  sync.Mutex
)

// Init initializes the root command and all flags
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file")
}

// GetConfig returns the loaded application configuration. It falls back to
// defaults when PersistentPreRun has not run, so commands stay testable in
// isolation.
func GetConfig() *config.Config {
	if appConfig == nil {
		cfg, err := config.InitializeConfig()
		if err != nil {
			Log.Fatalf("Failed to load configuration: %v", err)
		}
		appConfig = cfg
	}
	return appConfig
}

// GetContainer returns the application dependency container, building it on
// first use.
func GetContainer() *container.Container {
	containerMu.Lock()
	defer containerMu.Unlock()

	if appContainer == nil {
		c, err := container.NewContainer(GetConfig())
		if err != nil {
			Log.Fatalf("Failed to initialize container: %v", err)
		}
		appContainer = c
	}
	return appContainer
}

// GetLogrusAdapter returns the shared logger wrapped in the logging
// abstraction used throughout internal packages.
func GetLogrusAdapter() logging.Logger {
	return logging.NewLogrusAdapterFromLogger(Log)
}
