package rendering

import (
	"embed"
	"fmt"
	"regexp"
	"strings"
	"text/template"
	"time"

	"github.com/0xAxiom/AppFactory/internal/types"
)

//go:embed templates/*.md.tmpl
var templateFS embed.FS

var templates = template.Must(template.New("documents").Funcs(template.FuncMap{
	"truncate": truncate,
	"join":     strings.Join,
}).ParseFS(templateFS, "templates/*.md.tmpl"))

// Template names of the two documents
const (
	selectionTemplate = "selection.md.tmpl"
	archiveTemplate   = "archive.md.tmpl"
)

var slugPattern = regexp.MustCompile(`[^a-z0-9]+`)

// archiveData is passed to the archive template
type archiveData struct {
	Idea       *types.ScoredIdea
	Rank       int
	Total      int
	ArchivedAt time.Time
}

// RenderSelection renders the selection document that gates the pipeline.
func RenderSelection(decision *types.SelectionDecision) (string, error) {
	if decision == nil {
		return "", &DocumentError{Document: selectionTemplate, Message: "selection decision is nil"}
	}
	return execute(selectionTemplate, decision)
}

// RenderArchive renders the archive document for an idea that was not selected.
func RenderArchive(idea *types.ScoredIdea, rank, total int, archivedAt time.Time) (string, error) {
	if idea == nil {
		return "", &DocumentError{Document: archiveTemplate, Message: "archived idea is nil"}
	}
	return execute(archiveTemplate, archiveData{
		Idea:       idea,
		Rank:       rank,
		Total:      total,
		ArchivedAt: archivedAt,
	})
}

// ArchiveFileName returns "<rank>_<id>_<slug>.md" with a two-digit rank.
func ArchiveFileName(rank int, idea *types.IdeaRecord) string {
	return fmt.Sprintf("%02d_%s_%s.md", rank, idea.ID, Slugify(idea.Name))
}

// Slugify lowercases s, collapses runs of non-alphanumerics to single
// hyphens and trims hyphens from both ends.
func Slugify(s string) string {
	slug := slugPattern.ReplaceAllString(strings.ToLower(s), "-")
	return strings.Trim(slug, "-")
}

func execute(name string, data any) (string, error) {
	var sb strings.Builder
	if err := templates.ExecuteTemplate(&sb, name, data); err != nil {
		return "", &DocumentError{Document: name, Message: "failed to execute template", Cause: err}
	}
	return sb.String(), nil
}

// truncate shortens s to n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
