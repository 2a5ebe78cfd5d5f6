package ingestion

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanText_NormalizesLineEndings(t *testing.T) {
	assert.Equal(t, "one\ntwo\nthree", CleanText("one\r\ntwo\rthree"))
}

func TestCleanText_CollapsesSpaceRuns(t *testing.T) {
	assert.Equal(t, "java and spring boot", CleanText("java   and \t spring  boot"))
}

func TestCleanText_TrimsTrailingWhitespacePerLine(t *testing.T) {
	assert.Equal(t, "alpha\nbeta", CleanText("alpha   \nbeta\t\t"))
}

func TestCleanText_ShrinksBlankLineRuns(t *testing.T) {
	assert.Equal(t, "alpha\n\nbeta", CleanText("alpha\n\n\n\n\nbeta"))
}

func TestCleanText_KeepsLineStructure(t *testing.T) {
	// Bullet lines must survive so phrases like "team lead" stay intact.
	in := "- team lead\n- built REST APIs"
	assert.Equal(t, in, CleanText(in))
}

func TestCleanText_Empty(t *testing.T) {
	assert.Equal(t, "", CleanText(""))
	assert.Equal(t, "", CleanText("   \n\t\n  "))
}

func TestEnsureUsable_ShortTextGetsGuidance(t *testing.T) {
	assert.Equal(t, ShortTextGuidance, EnsureUsable("too short"))
	assert.Equal(t, ShortTextGuidance, EnsureUsable(""))
	assert.Equal(t, ShortTextGuidance, EnsureUsable(strings.Repeat(" ", 500)))
}

func TestEnsureUsable_LongTextPassesThrough(t *testing.T) {
	text := strings.Repeat("worked with java and aws daily. ", 10)
	assert.Equal(t, text, EnsureUsable(text))
}

func TestEnsureUsable_BoundaryAtMinUsableChars(t *testing.T) {
	exact := strings.Repeat("x", MinUsableChars)
	assert.Equal(t, exact, EnsureUsable(exact))

	oneBelow := strings.Repeat("x", MinUsableChars-1)
	assert.Equal(t, ShortTextGuidance, EnsureUsable(oneBelow))
}
