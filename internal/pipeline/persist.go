package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/rendering"
	"github.com/0xAxiom/AppFactory/internal/runs"
	"github.com/0xAxiom/AppFactory/internal/schemas"
	"github.com/0xAxiom/AppFactory/internal/types"
)

// WriteSelection writes the selection document, replacing any previous one.
func WriteSelection(run *runs.Run, decision *types.SelectionDecision) error {
	content, err := rendering.RenderSelection(decision)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(run.SpecDir(), 0755); err != nil {
		return &PersistError{Path: run.SpecDir(), Cause: err}
	}
	if err := os.WriteFile(run.SelectionPath(), []byte(content), 0644); err != nil {
		return &PersistError{Path: run.SelectionPath(), Cause: err}
	}
	return nil
}

// ArchiveUnused writes an archive document for every ranked idea except the
// one at selectedRank and returns how many were written.
func ArchiveUnused(run *runs.Run, ranked *types.RankedIdeas, selectedRank int, archivedAt time.Time) (int, error) {
	dir := run.ArchiveDir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return 0, &PersistError{Path: dir, Cause: err}
	}

	total := len(ranked.Ranked)
	archived := 0
	for i := range ranked.Ranked {
		rank := i + 1
		if rank == selectedRank {
			continue
		}
		idea := &ranked.Ranked[i]

		content, err := rendering.RenderArchive(idea, rank, total, archivedAt)
		if err != nil {
			return archived, err
		}

		path := filepath.Join(dir, rendering.ArchiveFileName(rank, &idea.IdeaRecord))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			return archived, &PersistError{Path: path, Cause: err}
		}
		archived++
	}
	return archived, nil
}

// ExportScores writes the ranking as JSON and checks it against the idea
// scores schema. A schema mismatch is logged, not returned.
func ExportScores(path string, ranked *types.RankedIdeas, logger *zap.Logger) error {
	data, err := json.MarshalIndent(ranked, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal ranked ideas to JSON: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return &PersistError{Path: filepath.Dir(path), Cause: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &PersistError{Path: path, Cause: err}
	}

	// Output validation is a safety check, not a requirement
	if err := schemas.Validate(schemas.IdeaScores, data); err != nil {
		logger.Warn("output validation failed", zap.String("path", path), zap.Error(err))
	}
	return nil
}
