package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/observability"
	"github.com/0xAxiom/AppFactory/internal/parsing"
	"github.com/0xAxiom/AppFactory/internal/ranking"
	"github.com/0xAxiom/AppFactory/internal/runs"
	"github.com/0xAxiom/AppFactory/internal/selection"
	"github.com/0xAxiom/AppFactory/internal/types"
)

// Progress steps reported to the callback
const (
	StepLocate  = "locate_run"
	StepParse   = "parse_ideas"
	StepRank    = "rank_ideas"
	StepSelect  = "select_idea"
	StepPersist = "persist_selection"
	StepArchive = "archive_ideas"
	StepExport  = "export_scores"
)

// ProgressEvent represents a progress update during stage execution
type ProgressEvent struct {
	Step    string `json:"step"`
	Message string `json:"message"`
	RunID   string `json:"run_id,omitempty"`
	Content any    `json:"content,omitempty"`
}

// ProgressCallback is called when stage progress occurs
type ProgressCallback func(event ProgressEvent)

// RunOptions holds configuration for running the selection stage
type RunOptions struct {
	// Locator finds the active run; RunPath, when set, is used instead and
	// recorded as the active run
	Locator *runs.Locator
	RunPath string

	Strategy selection.Strategy
	// ShowRanking prints the ranked list even when the strategy does not
	// prompt, e.g. auto-selection enabled from the environment on a terminal
	ShowRanking bool

	Scorer  *ranking.Scorer
	Printer *observability.Printer
	Logger  *zap.Logger
	// Now defaults to time.Now
	Now        func() time.Time
	OnProgress ProgressCallback
}

func (o *RunOptions) logger() *zap.Logger {
	if o.Logger == nil {
		return zap.NewNop()
	}
	return o.Logger
}

func (o *RunOptions) now() time.Time {
	if o.Now == nil {
		return time.Now()
	}
	return o.Now()
}

func (o *RunOptions) scorer() *ranking.Scorer {
	if o.Scorer == nil {
		return ranking.NewScorer(ranking.DefaultRubric())
	}
	return o.Scorer
}

// emitProgress calls the progress callback if configured
func emitProgress(opts *RunOptions, run *runs.Run, step, message string, content any) {
	if opts.OnProgress == nil {
		return
	}
	event := ProgressEvent{Step: step, Message: message, Content: content}
	if run != nil {
		event.RunID = run.ID
	}
	opts.OnProgress(event)
}

// RunSelection parses, scores and ranks the active run's ideas, resolves a
// choice with the configured strategy, then writes the selection document
// followed by one archive document per unselected idea.
//
// It returns nil, nil when the user declines to overwrite an existing selection.
func RunSelection(ctx context.Context, opts RunOptions) (*types.SelectionDecision, error) {
	if opts.Strategy == nil {
		return nil, fmt.Errorf("selection strategy is required")
	}
	logger := opts.logger()

	run, err := resolveRun(&opts)
	if err != nil {
		return nil, err
	}
	emitProgress(&opts, run, StepLocate, fmt.Sprintf("Using run %s", run.ID), nil)

	if err := requireIdeasFile(run); err != nil {
		return nil, err
	}

	if _, err := os.Stat(run.SelectionPath()); err == nil {
		ok, err := opts.Strategy.ConfirmOverwrite(run.SelectionPath())
		if err != nil {
			return nil, err
		}
		if !ok {
			logger.Info("selection cancelled, existing selection kept", zap.String("path", run.SelectionPath()))
			return nil, nil
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ranked, err := parseAndRank(&opts, run)
	if err != nil {
		return nil, err
	}

	if (opts.ShowRanking || opts.Strategy.Interactive()) && opts.Printer != nil {
		opts.Printer.PrintRankedIdeas(ranked)
	}

	rank, err := opts.Strategy.Choose(ranked)
	if err != nil {
		return nil, err
	}
	if rank < 1 || rank > len(ranked.Ranked) {
		return nil, &selection.Error{Message: fmt.Sprintf("rank %d out of range 1-%d", rank, len(ranked.Ranked))}
	}

	decision := &types.SelectionDecision{
		ID:         uuid.New(),
		Idea:       ranked.Ranked[rank-1],
		Rank:       rank,
		Method:     opts.Strategy.Method(),
		SelectedAt: opts.now(),
	}
	logger.Info("selected idea",
		zap.String("id", decision.Idea.ID),
		zap.String("name", decision.Idea.Name),
		zap.Int("score", decision.Idea.TotalScore))
	emitProgress(&opts, run, StepSelect, fmt.Sprintf("Selected %s (score %d/100)", decision.Idea.Name, decision.Idea.TotalScore), decision)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := WriteSelection(run, decision); err != nil {
		return nil, err
	}
	logger.Info("created selection file", zap.String("path", run.SelectionPath()))
	emitProgress(&opts, run, StepPersist, "Wrote selection document", nil)

	archived, err := ArchiveUnused(run, ranked, rank, decision.SelectedAt)
	if err != nil {
		return nil, err
	}
	logger.Info("archived unused ideas", zap.Int("count", archived), zap.String("dir", run.ArchiveDir()))
	emitProgress(&opts, run, StepArchive, fmt.Sprintf("Archived %d unused ideas", archived), nil)

	if opts.Printer != nil {
		opts.Printer.PrintSelection(decision)
	}
	return decision, nil
}

// ScoreIdeas ranks the active run's ideas and exports them as JSON without
// selecting one. It returns the ranking and the path written.
func ScoreIdeas(ctx context.Context, opts RunOptions) (*types.RankedIdeas, string, error) {
	run, err := resolveRun(&opts)
	if err != nil {
		return nil, "", err
	}
	if err := requireIdeasFile(run); err != nil {
		return nil, "", err
	}
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	ranked, err := parseAndRank(&opts, run)
	if err != nil {
		return nil, "", err
	}

	if err := ExportScores(run.ScoresPath(), ranked, opts.logger()); err != nil {
		return nil, "", err
	}
	emitProgress(&opts, run, StepExport, fmt.Sprintf("Exported %d scored ideas", len(ranked.Ranked)), nil)
	return ranked, run.ScoresPath(), nil
}

func resolveRun(opts *RunOptions) (*runs.Run, error) {
	if opts.Locator == nil {
		return nil, fmt.Errorf("run locator is required")
	}

	if opts.RunPath != "" {
		if _, err := os.Stat(opts.RunPath); err != nil {
			return nil, &InputError{Message: fmt.Sprintf("run directory not found: %s", opts.RunPath), Cause: err}
		}
		if err := opts.Locator.SetActiveRun(opts.RunPath); err != nil {
			return nil, err
		}
		pointer, err := opts.Locator.ReadActiveRun()
		if err != nil {
			return nil, err
		}
		return &runs.Run{ID: pointer.RunID, Path: pointer.RunPath}, nil
	}

	run, err := opts.Locator.FindActiveRun()
	if err != nil {
		if errors.Is(err, runs.ErrNoRuns) {
			return nil, &InputError{Message: "no active run", Hint: "Run Stage 01 first.", Cause: err}
		}
		return nil, err
	}
	return run, nil
}

func requireIdeasFile(run *runs.Run) error {
	if _, err := os.Stat(run.IdeasPath()); err != nil {
		return &InputError{
			Message: fmt.Sprintf("ideas file not found: %s", run.IdeasPath()),
			Hint:    "Please complete Stage 01 (Market Research) first.",
			Cause:   err,
		}
	}
	return nil
}

func parseAndRank(opts *RunOptions, run *runs.Run) (*types.RankedIdeas, error) {
	logger := opts.logger()

	ideas, err := parsing.ParseIdeasFile(run.IdeasPath(), logger)
	if err != nil {
		return nil, &InputError{Message: "failed to parse ideas", Cause: err}
	}
	emitProgress(opts, run, StepParse, fmt.Sprintf("Parsed %d ideas", len(ideas)), nil)

	logger.Info("scoring ideas using deterministic rubric")
	ranked := ranking.RankIdeas(ideas, opts.scorer())
	emitProgress(opts, run, StepRank, fmt.Sprintf("Ranked %d ideas", len(ranked.Ranked)), ranked)
	return ranked, nil
}
