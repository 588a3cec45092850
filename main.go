package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"fjacquet/paynotify/cmd/batch"
	"fjacquet/paynotify/cmd/parse"
	"fjacquet/paynotify/cmd/root"
	"fjacquet/paynotify/cmd/rules"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func init() {
	// Load environment variables silently first (no logging yet)
	loadEnvSilently()

	// Configure the global log level before any logging happens
	configureLogLevelDirectly()

	// Initialize the root command and flags
	root.Init()

	// Add all subcommands
	root.Cmd.AddCommand(parse.Cmd)
	root.Cmd.AddCommand(batch.Cmd)
	root.Cmd.AddCommand(rules.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		// Try the parent directory (project root)
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}

	_ = godotenv.Load(envFile)
}

// configureLogLevelDirectly sets the global log level for all logrus
// instances from PAYNOTIFY_LOG_LEVEL, defaulting to info
func configureLogLevelDirectly() {
	logLevelStr := os.Getenv("PAYNOTIFY_LOG_LEVEL")
	if logLevelStr == "" {
		logLevelStr = "info"
	}

	logLevel, err := logrus.ParseLevel(strings.ToLower(logLevelStr))
	if err != nil {
		logLevel = logrus.InfoLevel
	}

	logrus.SetLevel(logLevel)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
