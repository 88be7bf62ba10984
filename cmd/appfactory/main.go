// Package main provides the entry point for the App Factory idea selection CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/0xAxiom/AppFactory/internal/pipeline"
	"github.com/0xAxiom/AppFactory/internal/selection"
)

var rootCmd = &cobra.Command{
	Use:           "appfactory",
	Short:         "App Factory Stage 02 idea selection",
	Long:          "Scores the market research ideas of the active run, ranks them and commits exactly one to the development pipeline.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var (
	rootProjectDir string
	rootConfigPath string
	rootVerbose    bool
)

func init() {
	rootCmd.PersistentFlags().StringVar(&rootProjectDir, "root", "", "Project root (defaults to APPFACTORY_ROOT or the working directory)")
	rootCmd.PersistentFlags().StringVar(&rootConfigPath, "config", "", "Path to config YAML (defaults to <root>/.appfactory/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print debug logs")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// A blocked prompt cannot observe ctx, so an interrupt exits directly
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigs
		cancel()
		fmt.Fprintln(os.Stderr, "\nSelection cancelled")
		os.Exit(1)
	}()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, formatError(err))
		os.Exit(1)
	}
}

// formatError renders a command error for the console, adding the hint of
// input errors.
func formatError(err error) string {
	if errors.Is(err, selection.ErrSelectionCancelled) || errors.Is(err, context.Canceled) {
		return "Selection cancelled"
	}

	var inputErr *pipeline.InputError
	if errors.As(err, &inputErr) && inputErr.Hint != "" {
		return fmt.Sprintf("Error: %v\n%s", err, inputErr.Hint)
	}
	return fmt.Sprintf("Error: %v", err)
}
