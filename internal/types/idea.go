// Package types provides type definitions for structured data used throughout the app factory selector.
//
//nolint:revive // types is a standard Go package name pattern
package types

// IdeaRecord represents one candidate app idea parsed from the ideas document
type IdeaRecord struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category"`
	Description string `json:"description"`
	Competition string `json:"competition"` // free text level: low, medium, high
	PainLevel   string `json:"pain_level"`  // free text level
	Pricing     string `json:"pricing"`
	// Bulleted-format extras, empty for structured ideas
	TargetUser      string `json:"target_user,omitempty"`
	Differentiation string `json:"differentiation,omitempty"`
	MVPComplexity   string `json:"mvp_complexity,omitempty"`
	// RawContent is the original text block, retained for archival
	RawContent string `json:"raw_content"`
}
