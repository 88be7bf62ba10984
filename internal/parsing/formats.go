package parsing

import (
	"fmt"
	"strings"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// Defaults applied to bulleted ideas, which carry less research detail
const (
	defaultCategory    = "Productivity"
	defaultCompetition = "Medium"
	defaultPricing     = "Subscription model suitable for productivity/lifestyle app"
)

// categoryRules infer a store category from target user text, first match wins
var categoryRules = []struct {
	category string
	keywords []string
}{
	{"Health & Fitness", []string{"fitness", "health", "wellness", "exercise"}},
	{"Lifestyle", []string{"lifestyle", "personal", "home"}},
	{"Business", []string{"business", "professional", "work"}},
}

// highPainKeywords mark a bulleted description as describing a high-pain problem
var highPainKeywords = []string{"struggle", "difficult", "problem", "frustrating"}

// ParsedIdea is the result of extracting one idea block. It is either a
// StructuredIdea or a BulletedIdea and is normalized into a types.IdeaRecord
// right after parsing.
type ParsedIdea interface {
	Normalize() types.IdeaRecord
	format() string
}

// StructuredIdea holds fields from the research agent's bold-label format:
//
//	**Name**: Focus Timer
//	**Description**: ...
type StructuredIdea struct {
	ID          string
	Name        string
	Category    string
	Description string
	Competition string
	PainLevel   string
	Pricing     string
	Raw         string
}

func (s StructuredIdea) format() string { return "structured" }

// Normalize converts the structured fields into an idea record unchanged.
func (s StructuredIdea) Normalize() types.IdeaRecord {
	return types.IdeaRecord{
		ID:          s.ID,
		Name:        s.Name,
		Category:    s.Category,
		Description: s.Description,
		Competition: s.Competition,
		PainLevel:   s.PainLevel,
		Pricing:     s.Pricing,
		RawContent:  s.Raw,
	}
}

// BulletedIdea holds fields from the demo format, where each field is a
// bullet (`- **Target User**: ...`). Any field may be empty.
type BulletedIdea struct {
	ID               string
	HeadingTitle     string
	Name             string
	Description      string
	TargetUser       string
	Differentiation  string
	CompetitionLevel string
	MVPComplexity    string
	Raw              string
}

func (b BulletedIdea) format() string { return "bulleted" }

// Normalize fills the fields the demo format does not carry by inference:
// category from the target user, pain level from the description.
func (b BulletedIdea) Normalize() types.IdeaRecord {
	name := b.Name
	if name == "" {
		name = b.HeadingTitle
	}
	if name == "" {
		name = fmt.Sprintf("App %s", b.ID)
	}

	competition := b.CompetitionLevel
	if competition == "" {
		competition = defaultCompetition
	}

	description := b.Description
	if description == "" {
		target := b.TargetUser
		if target == "" {
			target = "users"
		}
		description = fmt.Sprintf("App for %s", target)
	}

	return types.IdeaRecord{
		ID:              b.ID,
		Name:            name,
		Category:        inferCategory(b.TargetUser),
		Description:     description,
		Competition:     competition,
		PainLevel:       inferPainLevel(b.Description),
		Pricing:         defaultPricing,
		TargetUser:      b.TargetUser,
		Differentiation: b.Differentiation,
		MVPComplexity:   b.MVPComplexity,
		RawContent:      b.Raw,
	}
}

func inferCategory(targetUser string) string {
	target := strings.ToLower(targetUser)
	if target == "" {
		return defaultCategory
	}
	for _, rule := range categoryRules {
		if containsAny(target, rule.keywords) {
			return rule.category
		}
	}
	return defaultCategory
}

func inferPainLevel(description string) string {
	if containsAny(strings.ToLower(description), highPainKeywords) {
		return "High"
	}
	return "Medium"
}

func containsAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}
