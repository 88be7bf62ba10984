package parsing

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/0xAxiom/AppFactory/internal/types"
)

// headingPattern matches an idea heading such as "## App A1:" or "## App ID B12:"
var headingPattern = regexp.MustCompile(`(?m)^## App (?:ID )?([A-Z]\d+):`)

// Single-line fields of the structured format
var (
	structuredName        = regexp.MustCompile(`\*\*Name\*\*:\s*(.+)`)
	structuredCategory    = regexp.MustCompile(`\*\*Category\*\*:\s*(.+)`)
	structuredCompetition = regexp.MustCompile(`\*\*Competition\*\*:\s*(.+)`)
	structuredPainLevel   = regexp.MustCompile(`\*\*Pain Level\*\*:\s*(.+)`)
)

// Labels of the multi-line fields of the structured format
var (
	structuredDescription = regexp.MustCompile(`\*\*Description\*\*:`)
	structuredPricing     = regexp.MustCompile(`\*\*Pricing Research\*\*:`)
)

// Bulleted format fields
var (
	bulletName            = regexp.MustCompile(`-\s*\*\*Name\*\*:\s*(.+)`)
	bulletCompetition     = regexp.MustCompile(`-\s*\*\*Competition Level\*\*:\s*(.+)`)
	bulletMVPComplexity   = regexp.MustCompile(`-\s*\*\*MVP Complexity\*\*:\s*(.+)`)
	bulletDescription     = regexp.MustCompile(`-\s*\*\*Description\*\*:`)
	bulletTargetUser      = regexp.MustCompile(`-\s*\*\*Target User\*\*:`)
	bulletDifferentiation = regexp.MustCompile(`-\s*\*\*Differentiation\*\*:`)
)

// A multi-line field ends at the next label, a blank line, or the end of the block
var (
	structuredTerminators = []string{"\n**", "\n\n"}
	bulletTerminators     = []string{"\n-", "\n\n"}
)

var validate = validator.New()

// ideaBlock is one heading-delimited section of the document
type ideaBlock struct {
	id           string
	headingTitle string
	body         string
}

// ParseIdeasFile reads and parses the ideas document at path.
func ParseIdeasFile(path string, logger *zap.Logger) ([]types.IdeaRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Cause: err}
	}

	ideas, err := ParseIdeas(string(content), logger)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logger.Info("parsed ideas", zap.Int("count", len(ideas)), zap.String("file", filepath.Base(path)))
	return ideas, nil
}

// ParseIdeas extracts idea records from document text in document order.
// Blocks that cannot be parsed are logged and skipped; a document without
// any valid idea is an error.
func ParseIdeas(content string, logger *zap.Logger) ([]types.IdeaRecord, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	content = strings.ReplaceAll(content, "\r\n", "\n")

	ideas := make([]types.IdeaRecord, 0)
	seen := make(map[string]bool)
	for _, block := range splitBlocks(content) {
		parsed, err := parseBlock(block)
		if err != nil {
			logger.Warn("failed to parse idea", zap.String("id", block.id), zap.Error(err))
			continue
		}

		record := parsed.Normalize()
		if err := validate.Struct(record); err != nil {
			logger.Warn("dropping invalid idea", zap.String("id", block.id), zap.Error(err))
			continue
		}
		if seen[record.ID] {
			logger.Warn("dropping duplicate idea id", zap.String("id", record.ID))
			continue
		}
		seen[record.ID] = true

		logger.Debug("parsed idea",
			zap.String("id", record.ID),
			zap.String("name", record.Name),
			zap.String("format", parsed.format()))
		ideas = append(ideas, record)
	}

	if len(ideas) == 0 {
		return nil, &ParseError{Message: "no valid ideas found"}
	}
	return ideas, nil
}

// splitBlocks splits the document on idea headings, discarding the preamble.
func splitBlocks(content string) []ideaBlock {
	matches := headingPattern.FindAllStringSubmatchIndex(content, -1)
	blocks := make([]ideaBlock, 0, len(matches))
	for i, m := range matches {
		end := len(content)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		body := content[m[1]:end]

		title := body
		if nl := strings.IndexByte(title, '\n'); nl >= 0 {
			title = title[:nl]
		}

		blocks = append(blocks, ideaBlock{
			id:           content[m[2]:m[3]],
			headingTitle: strings.TrimSpace(title),
			body:         body,
		})
	}
	return blocks
}

// parseBlock tries the structured format first, then the bulleted format.
func parseBlock(block ideaBlock) (parsed ParsedIdea, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &ParseError{Message: fmt.Sprintf("idea %s", block.id), Cause: fmt.Errorf("%v", r)}
		}
	}()

	if structured, ok := parseStructured(block); ok {
		return structured, nil
	}
	return parseBulleted(block), nil
}

func parseStructured(block ideaBlock) (StructuredIdea, bool) {
	name, hasName := matchLine(structuredName, block.body)
	description, hasDescription := matchMultiline(structuredDescription, block.body, structuredTerminators)
	if !hasName || !hasDescription {
		return StructuredIdea{}, false
	}

	category, _ := matchLine(structuredCategory, block.body)
	competition, _ := matchLine(structuredCompetition, block.body)
	painLevel, _ := matchLine(structuredPainLevel, block.body)
	pricing, _ := matchMultiline(structuredPricing, block.body, structuredTerminators)

	return StructuredIdea{
		ID:          block.id,
		Name:        name,
		Category:    category,
		Description: description,
		Competition: competition,
		PainLevel:   painLevel,
		Pricing:     pricing,
		Raw:         strings.TrimSpace(block.body),
	}, true
}

func parseBulleted(block ideaBlock) BulletedIdea {
	name, _ := matchLine(bulletName, block.body)
	description, _ := matchMultiline(bulletDescription, block.body, bulletTerminators)
	targetUser, _ := matchMultiline(bulletTargetUser, block.body, bulletTerminators)
	differentiation, _ := matchMultiline(bulletDifferentiation, block.body, bulletTerminators)
	competition, _ := matchLine(bulletCompetition, block.body)
	complexity, _ := matchLine(bulletMVPComplexity, block.body)

	return BulletedIdea{
		ID:               block.id,
		HeadingTitle:     block.headingTitle,
		Name:             name,
		Description:      description,
		TargetUser:       targetUser,
		Differentiation:  differentiation,
		CompetitionLevel: competition,
		MVPComplexity:    complexity,
		Raw:              strings.TrimSpace(block.body),
	}
}

// matchLine returns the trimmed first capture group of re in text.
func matchLine(re *regexp.Regexp, text string) (string, bool) {
	m := re.FindStringSubmatch(text)
	if m == nil {
		return "", false
	}
	return strings.TrimSpace(m[1]), true
}

// matchMultiline captures the text following label up to the earliest
// terminator, or the end of text. At least one character is captured.
func matchMultiline(label *regexp.Regexp, text string, terminators []string) (string, bool) {
	loc := label.FindStringIndex(text)
	if loc == nil {
		return "", false
	}

	rest := strings.TrimLeftFunc(text[loc[1]:], unicode.IsSpace)
	if rest == "" {
		return "", false
	}

	end := len(rest)
	for _, term := range terminators {
		if idx := strings.Index(rest[1:], term); idx >= 0 && idx+1 < end {
			end = idx + 1
		}
	}
	return strings.TrimSpace(rest[:end]), true
}

// IsNotFound reports whether err was caused by a missing ideas file.
func IsNotFound(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr) && errors.Is(loadErr.Cause, os.ErrNotExist)
}
