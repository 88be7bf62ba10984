package main

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/pipeline"
	"github.com/0xAxiom/AppFactory/internal/selection"
)

var selectCmd = &cobra.Command{
	Use:   "select",
	Short: "Score, rank and select one idea from the active run",
	Long: `Parses spec/02_ideas.md of the active run, scores every idea with the deterministic rubric and selects one.

The top-ranked idea is selected automatically with --auto-select, when APPFACTORY_AUTO_SELECT=1, or when stdin is not a terminal. Otherwise the ranked list is shown and a rank is prompted for.`,
	RunE: runSelect,
}

var (
	selectAutoSelect bool
	selectRunPath    string
)

func init() {
	selectCmd.Flags().BoolVar(&selectAutoSelect, "auto-select", false, "Select the top-ranked idea without prompting")
	selectCmd.Flags().StringVar(&selectRunPath, "run", "", "Run directory to use instead of the active run (becomes the active run)")

	rootCmd.AddCommand(selectCmd)
}

func runSelect(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	strategy := selection.Resolve(selection.ResolveOptions{
		AutoSelect: selectAutoSelect || a.cfg.AutoSelect,
		In:         os.Stdin,
		Out:        cmd.OutOrStdout(),
		Logger:     a.logger,
	})

	decision, err := pipeline.RunSelection(cmd.Context(), pipeline.RunOptions{
		Locator:  a.locator,
		RunPath:  selectRunPath,
		Strategy: strategy,
		// Only the --auto-select flag silences the list on a terminal
		ShowRanking: !selectAutoSelect && selection.IsTerminal(os.Stdin),
		Scorer:      a.scorer,
		Printer:     a.printer,
		Logger:      a.logger,
		OnProgress: func(event pipeline.ProgressEvent) {
			a.logger.Debug(event.Message, zap.String("step", event.Step))
		},
	})
	if err != nil {
		return err
	}
	if decision == nil {
		return nil
	}

	a.logger.Info("idea selection complete",
		zap.String("selected", decision.Idea.Name),
		zap.String("id", decision.ID.String()))
	return nil
}
