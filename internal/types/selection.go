package types

import (
	"time"

	"github.com/google/uuid"
)

// Selection methods recorded in the selection document
const (
	SelectionMethodAuto        = "Automated scoring and ranking"
	SelectionMethodInteractive = "Interactive selection from ranked list"
)

// SelectionDecision records the chosen idea and its 1-based rank
type SelectionDecision struct {
	ID         uuid.UUID  `json:"id"`
	Idea       ScoredIdea `json:"idea"`
	Rank       int        `json:"rank"`
	Method     string     `json:"method"`
	SelectedAt time.Time  `json:"selected_at"`
}

// ActiveRun is the pointer file recording which run directory later invocations use
type ActiveRun struct {
	RunID   string `json:"run_id"`
	RunPath string `json:"run_path"`
	// UpdatedAt is kept as text so pointer files written by older tooling still load
	UpdatedAt string `json:"updated_at,omitempty"`
}
