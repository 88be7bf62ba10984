package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/0xAxiom/AppFactory/internal/pipeline"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score and rank the active run's ideas without selecting one",
	Long:  "Writes the ranked ideas with their score breakdowns to spec/02_idea_scores.json of the active run and prints the ranking.",
	RunE:  runScore,
}

var scoreRunPath string

func init() {
	scoreCmd.Flags().StringVar(&scoreRunPath, "run", "", "Run directory to use instead of the active run (becomes the active run)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	ranked, path, err := pipeline.ScoreIdeas(cmd.Context(), pipeline.RunOptions{
		Locator: a.locator,
		RunPath: scoreRunPath,
		Scorer:  a.scorer,
		Logger:  a.logger,
	})
	if err != nil {
		return err
	}

	a.printer.PrintRankedIdeas(ranked)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "\nSuccessfully scored %d ideas to %s\n", len(ranked.Ranked), path)
	return nil
}
