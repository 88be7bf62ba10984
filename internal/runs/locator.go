package runs

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/schemas"
	"github.com/0xAxiom/AppFactory/internal/types"
)

// Directory and file names of the run layout
const (
	DefaultStateDir = ".appfactory"
	DefaultRunsDir  = "runs"

	activeRunFile = "active_run.json"
	specDir       = "spec"
	ideasFile     = "02_ideas.md"
	selectionFile = "02_idea_selection.md"
	scoresFile    = "02_idea_scores.json"
	archiveDir    = "unused_ideas"
)

// Run is one pipeline execution directory
type Run struct {
	ID   string
	Path string
}

// SpecDir returns the directory holding stage artifacts
func (r *Run) SpecDir() string {
	return filepath.Join(r.Path, specDir)
}

// IdeasPath returns the path to the market research ideas document
func (r *Run) IdeasPath() string {
	return filepath.Join(r.SpecDir(), ideasFile)
}

// SelectionPath returns the path to the selection document that gates the pipeline
func (r *Run) SelectionPath() string {
	return filepath.Join(r.SpecDir(), selectionFile)
}

// ScoresPath returns the path to the exported idea scores
func (r *Run) ScoresPath() string {
	return filepath.Join(r.SpecDir(), scoresFile)
}

// ArchiveDir returns the directory holding archived unselected ideas
func (r *Run) ArchiveDir() string {
	return filepath.Join(r.SpecDir(), archiveDir)
}

// Locator finds and records the active run of a project
type Locator struct {
	// StateDir holds active_run.json
	StateDir string
	// RunsDir holds one directory per run
	RunsDir string
	Logger  *zap.Logger
	// Now defaults to time.Now
	Now func() time.Time
}

// NewLocator creates a locator for the project at root using the default layout.
func NewLocator(root string, logger *zap.Logger) *Locator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Locator{
		StateDir: filepath.Join(root, DefaultStateDir),
		RunsDir:  filepath.Join(root, DefaultRunsDir),
		Logger:   logger,
		Now:      time.Now,
	}
}

// PointerPath returns the path to the active run pointer file
func (l *Locator) PointerPath() string {
	return filepath.Join(l.StateDir, activeRunFile)
}

// FindActiveRun returns the run named by the pointer file when it is still
// usable, otherwise the most recently modified run, which then becomes the
// active run.
func (l *Locator) FindActiveRun() (*Run, error) {
	run, err := l.readPointer()
	switch {
	case err == nil:
		l.log().Info("using active run", zap.String("run", run.ID))
		return run, nil
	case errors.Is(err, os.ErrNotExist):
		// No pointer yet
	default:
		l.log().Warn("invalid active run pointer, searching for recent runs", zap.Error(err))
	}

	run, err = l.mostRecentRun()
	if err != nil {
		return nil, err
	}
	l.log().Info("using most recent run", zap.String("run", run.ID))

	if err := l.SetActiveRun(run.Path); err != nil {
		return nil, err
	}
	return run, nil
}

// SetActiveRun records runPath as the active run.
func (l *Locator) SetActiveRun(runPath string) error {
	absPath, err := filepath.Abs(runPath)
	if err != nil {
		return fmt.Errorf("failed to resolve run path %s: %w", runPath, err)
	}

	pointer := types.ActiveRun{
		RunID:     filepath.Base(absPath),
		RunPath:   absPath,
		UpdatedAt: l.now().Format(time.RFC3339),
	}

	data, err := json.MarshalIndent(pointer, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal active run pointer: %w", err)
	}

	if err := os.MkdirAll(l.StateDir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory %s: %w", l.StateDir, err)
	}
	if err := os.WriteFile(l.PointerPath(), data, 0644); err != nil {
		return fmt.Errorf("failed to write active run pointer %s: %w", l.PointerPath(), err)
	}
	return nil
}

// ReadActiveRun returns the recorded active run pointer without falling back.
func (l *Locator) ReadActiveRun() (*types.ActiveRun, error) {
	path := l.PointerPath()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := schemas.Validate(schemas.ActiveRun, data); err != nil {
		return nil, &PointerError{Path: path, Message: "invalid pointer", Cause: err}
	}

	var pointer types.ActiveRun
	if err := json.Unmarshal(data, &pointer); err != nil {
		return nil, &PointerError{Path: path, Message: "invalid JSON", Cause: err}
	}
	return &pointer, nil
}

func (l *Locator) readPointer() (*Run, error) {
	pointer, err := l.ReadActiveRun()
	if err != nil {
		return nil, err
	}

	run := &Run{ID: filepath.Base(pointer.RunPath), Path: pointer.RunPath}
	if !isDir(run.SpecDir()) {
		return nil, &PointerError{Path: l.PointerPath(), Message: fmt.Sprintf("run %s has no spec directory", run.Path)}
	}
	return run, nil
}

func (l *Locator) mostRecentRun() (*Run, error) {
	entries, err := os.ReadDir(l.RunsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoRuns
		}
		return nil, fmt.Errorf("failed to list runs in %s: %w", l.RunsDir, err)
	}

	type candidate struct {
		run     *Run
		modTime time.Time
	}
	candidates := make([]candidate, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		path := filepath.Join(l.RunsDir, entry.Name())
		run := &Run{ID: entry.Name(), Path: path}
		if !isDir(run.SpecDir()) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		candidates = append(candidates, candidate{run: run, modTime: info.ModTime()})
	}

	if len(candidates) == 0 {
		return nil, ErrNoRuns
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].modTime.After(candidates[j].modTime)
	})
	return candidates[0].run, nil
}

func (l *Locator) now() time.Time {
	if l.Now == nil {
		return time.Now()
	}
	return l.Now()
}

func isDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

func (l *Locator) log() *zap.Logger {
	if l.Logger == nil {
		return zap.NewNop()
	}
	return l.Logger
}
