// Package ingestion is the text acquisition layer: it turns whatever the
// user supplies (pasted text, PDF, DOCX, HTML) into one plain-text experience
// description. The engine downstream accepts plain text only.
package ingestion

import (
	"regexp"
	"strings"
)

// MinUsableChars is the minimum usable extraction length. Document text
// shorter than this is replaced by the guidance message instead of being
// passed near-empty into the engine.
const MinUsableChars = 100

// ShortTextGuidance replaces a too-short extraction.
const ShortTextGuidance = `Resume uploaded successfully. The document text extraction was limited.

To get the best career recommendations, please consider:
1. Providing additional details about your recent work experience
2. Including specific technologies, frameworks, and tools you've used
3. Describing your key projects and achievements
4. Mentioning any leadership or team collaboration experience

This will help provide more accurate and personalized job recommendations.`

var (
	multiSpace = regexp.MustCompile(`[ \t]+`)
	blankRuns  = regexp.MustCompile(`\n\n\n+`)
)

// CleanText normalizes extracted text: line endings become LF, runs of
// spaces collapse, trailing whitespace goes, and blank-line runs shrink to
// one separator. Bullet markers and line structure survive so the skill
// extractor still sees phrases like "team lead" intact.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimRight(line, " \t")
		line = multiSpace.ReplaceAllString(line, " ")
		cleaned = append(cleaned, line)
	}

	result := strings.Join(cleaned, "\n")
	result = blankRuns.ReplaceAllString(result, "\n\n")
	return strings.TrimSpace(result)
}

// EnsureUsable substitutes the fixed guidance message when the cleaned
// extraction is too short to analyze meaningfully.
func EnsureUsable(text string) string {
	if len(strings.TrimSpace(text)) < MinUsableChars {
		return ShortTextGuidance
	}
	return text
}
