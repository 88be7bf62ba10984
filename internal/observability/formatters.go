package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/0xAxiom/AppFactory/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
)

// Score bands used to color totals
const (
	scoreExcellent = 80
	scoreGood      = 65
	scoreFair      = 50
)

// Printer handles formatted console output
type Printer struct {
	out      io.Writer
	renderer *lipgloss.Renderer
}

// NewPrinter creates a new Printer that writes to the given writer. Colors are
// only emitted when the writer is a terminal.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, renderer: lipgloss.NewRenderer(out)}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	for _, line := range strings.Split(content, "\n") {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// scoreStyle picks the color band for a total score
func (p *Printer) scoreStyle(score int) lipgloss.Style {
	style := p.renderer.NewStyle().Bold(true)
	switch {
	case score >= scoreExcellent:
		return style.Foreground(lipgloss.Color("2"))
	case score >= scoreGood:
		return style.Foreground(lipgloss.Color("4"))
	case score >= scoreFair:
		return style.Foreground(lipgloss.Color("3"))
	default:
		return style.Foreground(lipgloss.Color("1"))
	}
}

// PrintRankedIdeas outputs the ranked list the user chooses from.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintRankedIdeas(ranked *types.RankedIdeas) {
	if ranked == nil || len(ranked.Ranked) == 0 {
		return
	}

	header := p.renderer.NewStyle().Bold(true)
	fmt.Fprintf(p.out, "\n%s\n\n", header.Render("Ranked ideas (0–100). Press Enter to select #1, or type a number."))

	for i, idea := range ranked.Ranked {
		score := p.scoreStyle(idea.TotalScore).Render(fmt.Sprintf("%2d", idea.TotalScore))
		note := fmt.Sprintf("(%s)", idea.Justification)
		if i == 0 {
			note = header.Render(fmt.Sprintf("(Top Pick: %s)", idea.Justification))
		}
		fmt.Fprintf(p.out, "%2d) %s  %s — %s  %s\n", i+1, score, idea.ID, idea.Name, note)
	}
}

// PrintSelection outputs a summary box for the selected idea.
func (p *Printer) PrintSelection(decision *types.SelectionDecision) {
	if decision == nil {
		return
	}

	var sb strings.Builder
	idea := decision.Idea
	sb.WriteString(fmt.Sprintf("%s — %s\n", idea.ID, idea.Name))
	sb.WriteString(fmt.Sprintf("Rank #%d, Score %d/100\n", decision.Rank, idea.TotalScore))
	sb.WriteString(idea.Justification + "\n")
	sb.WriteString("\n")
	for _, f := range idea.Breakdown.Factors() {
		sb.WriteString(fmt.Sprintf("%-24s %2d/%d\n", f.Label, f.Score, f.Max))
	}
	if len(idea.Penalties) > 0 {
		sb.WriteString("\nPenalties:\n")
		for _, penalty := range idea.Penalties {
			sb.WriteString(fmt.Sprintf("  • %s\n", penalty))
		}
	}

	p.printBox("SELECTED IDEA", strings.TrimRight(sb.String(), "\n"))
}
