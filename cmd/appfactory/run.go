package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/0xAxiom/AppFactory/internal/runs"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Inspect or change the active run",
}

var runShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the active run, resolving the most recent run when none is recorded",
	Args:  cobra.NoArgs,
	RunE:  runShow,
}

var runSetCmd = &cobra.Command{
	Use:   "set <run-dir>",
	Short: "Record a run directory as the active run",
	Args:  cobra.ExactArgs(1),
	RunE:  runSet,
}

func init() {
	runCmd.AddCommand(runShowCmd)
	runCmd.AddCommand(runSetCmd)
	rootCmd.AddCommand(runCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	run, err := a.locator.FindActiveRun()
	if err != nil {
		if errors.Is(err, runs.ErrNoRuns) {
			return fmt.Errorf("no runs found in %s: run Stage 01 first", a.locator.RunsDir)
		}
		return err
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Run:       %s\n", run.ID)
	_, _ = fmt.Fprintf(out, "Path:      %s\n", run.Path)
	_, _ = fmt.Fprintf(out, "Ideas:     %s\n", presence(run.IdeasPath()))
	_, _ = fmt.Fprintf(out, "Selection: %s\n", presence(run.SelectionPath()))
	return nil
}

func runSet(cmd *cobra.Command, args []string) error {
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}

	runPath := args[0]
	if info, err := os.Stat(runPath); err != nil || !info.IsDir() {
		return fmt.Errorf("run directory not found: %s", runPath)
	}
	if err := a.locator.SetActiveRun(runPath); err != nil {
		return err
	}

	abs, _ := filepath.Abs(runPath)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Active run set to %s\n", abs)
	return nil
}

func presence(path string) string {
	if _, err := os.Stat(path); err != nil {
		return "missing"
	}
	return path
}
