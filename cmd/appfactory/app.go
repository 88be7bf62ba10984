package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/config"
	"github.com/0xAxiom/AppFactory/internal/observability"
	"github.com/0xAxiom/AppFactory/internal/ranking"
	"github.com/0xAxiom/AppFactory/internal/runs"
)

// app holds the components shared by every subcommand
type app struct {
	cfg     config.Config
	logger  *zap.Logger
	locator *runs.Locator
	scorer  *ranking.Scorer
	printer *observability.Printer
}

// loadApp resolves configuration in order defaults, config file, environment,
// flags, then builds the shared components from it.
func loadApp(cmd *cobra.Command) (*app, error) {
	root := rootProjectDir
	if root == "" {
		var err error
		root, err = config.ProjectRootFromEnv()
		if err != nil {
			return nil, err
		}
	}

	var cfg config.Config
	if rootConfigPath != "" {
		loaded, err := config.LoadConfig(rootConfigPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded.MergeWithDefaults(config.Defaults(root))
	} else {
		loaded, err := config.LoadProjectConfig(root)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = *loaded
	}
	if rootProjectDir != "" {
		cfg.ProjectRoot = rootProjectDir
	}

	cfg.ApplyEnv(os.Getenv)
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rootVerbose
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := observability.NewLogger(cfg.Verbose)
	logger.Debug("loaded configuration",
		zap.String("project_root", cfg.ProjectRoot),
		zap.String("runs_dir", cfg.RunsPath()),
		zap.Bool("auto_select", cfg.AutoSelect))

	locator := runs.NewLocator(cfg.ProjectRoot, logger)
	locator.StateDir = cfg.StatePath()
	locator.RunsDir = cfg.RunsPath()

	rubric := ranking.DefaultRubric()
	if cfg.ExcludedCategoryCap > 0 {
		rubric.ExcludedCategoryCap = cfg.ExcludedCategoryCap
	}

	return &app{
		cfg:     cfg,
		logger:  logger,
		locator: locator,
		scorer:  ranking.NewScorer(rubric),
		printer: observability.NewPrinter(cmd.OutOrStdout()),
	}, nil
}
