package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/0xAxiom/AppFactory/internal/pipeline"
	"github.com/0xAxiom/AppFactory/internal/runs"
	"github.com/0xAxiom/AppFactory/internal/selection"
)

const sampleIdeas = `# Stage 01: Market Research

## App A1: Workout Streaks
**Name**: Workout Streaks
**Category**: Health & Fitness
**Description**: I'm frustrated trying to track my daily workouts
**Competition**: Medium
**Pain Level**: High
**Pricing Research**: Competitors charge $9.99/month

## App B2: Invoice Snap
**Name**: Invoice Snap
**Category**: Business
**Description**: Simple invoicing for freelancers
**Competition**: Low
**Pain Level**: Medium
**Pricing Research**: $4.99/month
`

// newProject creates a project with one run holding the sample ideas
func newProject(t *testing.T) (root string, run *runs.Run) {
	t.Helper()
	root = t.TempDir()
	run = &runs.Run{ID: "run-1", Path: filepath.Join(root, "runs", "run-1")}
	require.NoError(t, os.MkdirAll(run.SpecDir(), 0755))
	require.NoError(t, os.WriteFile(run.IdeasPath(), []byte(sampleIdeas), 0644))
	return root, run
}

// executeCommand runs the root command in-process, resetting flag state first.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootProjectDir, rootConfigPath, rootVerbose = "", "", false
	selectAutoSelect, selectRunPath = false, ""
	scoreRunPath = ""
	t.Setenv("APPFACTORY_AUTO_SELECT", "")
	t.Setenv("APPFACTORY_VERBOSE", "")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestSelectCommand_AutoSelect(t *testing.T) {
	root, run := newProject(t)

	out, err := executeCommand(t, "select", "--root", root, "--auto-select")
	require.NoError(t, err)
	assert.Contains(t, out, "SELECTED IDEA")

	content, err := os.ReadFile(run.SelectionPath())
	require.NoError(t, err)
	assert.Contains(t, string(content), "**Selection Method**: Automated scoring and ranking")

	entries, err := os.ReadDir(run.ArchiveDir())
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	assert.FileExists(t, filepath.Join(root, ".appfactory", "active_run.json"))
}

func TestSelectCommand_ExplicitRun(t *testing.T) {
	root, run := newProject(t)

	_, err := executeCommand(t, "select", "--root", root, "--auto-select", "--run", run.Path)
	require.NoError(t, err)
	assert.FileExists(t, run.SelectionPath())
}

func TestSelectCommand_NoRuns(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "select", "--root", root, "--auto-select")
	require.Error(t, err)
	assert.Equal(t, "Error: no active run: no runs found\nRun Stage 01 first.", formatError(err))
}

func TestSelectCommand_ConfigFileEnablesAutoSelect(t *testing.T) {
	root, run := newProject(t)
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".appfactory"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".appfactory", "config.yaml"), []byte("auto_select: true\n"), 0644))

	_, err := executeCommand(t, "select", "--root", root)
	require.NoError(t, err)
	assert.FileExists(t, run.SelectionPath())
}

func TestScoreCommand_WritesScores(t *testing.T) {
	root, run := newProject(t)

	out, err := executeCommand(t, "score", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Successfully scored 2 ideas")
	assert.Contains(t, out, "Workout Streaks")
	assert.FileExists(t, run.ScoresPath())
	assert.NoFileExists(t, run.SelectionPath())
}

func TestRunCommands_SetAndShow(t *testing.T) {
	root, run := newProject(t)

	out, err := executeCommand(t, "run", "set", run.Path, "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Active run set to")

	out, err = executeCommand(t, "run", "show", "--root", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Run:       run-1")
	assert.Contains(t, out, "Selection: missing")
}

func TestRunSetCommand_MissingDirectory(t *testing.T) {
	root := t.TempDir()

	_, err := executeCommand(t, "run", "set", filepath.Join(root, "nope"), "--root", root)
	assert.ErrorContains(t, err, "run directory not found")
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "Selection cancelled", formatError(selection.ErrSelectionCancelled))
	assert.Equal(t, "Selection cancelled", formatError(context.Canceled))
	assert.Equal(t, "Error: boom", formatError(errors.New("boom")))

	inputErr := &pipeline.InputError{Message: "ideas file not found: x", Hint: "Please complete Stage 01 (Market Research) first."}
	assert.Equal(t, "Error: ideas file not found: x\nPlease complete Stage 01 (Market Research) first.", formatError(inputErr))
}
