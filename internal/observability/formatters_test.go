package observability

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/role-recommender/internal/types"
)

func TestPrintAnalysisResult_IncludesSections(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysisResult(&types.AnalysisResult{
		DirectFitJobs: []types.JobRecommendation{
			{Title: "Backend Developer", MatchPercentage: 70, Salary: "$70,000 - $120,000"},
		},
		TrendingJobs: []types.TrendingJob{
			{Title: "AI Engineer", Growth: "Explosive", Salary: "$90,000 - $160,000", MissingSkills: []string{"Machine Learning"}},
		},
		ExtractedSkills: []string{"Java", "AWS"},
		FocusAreas:      []string{"Backend Development"},
	})

	out := buf.String()
	assert.Contains(t, out, "Career Analysis")
	assert.Contains(t, out, "Java, AWS")
	assert.Contains(t, out, "Backend Developer (70%)")
	assert.Contains(t, out, "AI Engineer (Explosive growth)")
	assert.Contains(t, out, "gap: Machine Learning")
}

func TestPrintAnalysisResult_EmptyResult(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintAnalysisResult(&types.AnalysisResult{})

	out := buf.String()
	assert.Contains(t, out, "(none detected)")
	assert.Contains(t, out, "Direct-fit roles: (none)")
}

func TestPrintAnalysisResult_NilResult(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintAnalysisResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintNotice(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintNotice("The recommendation service timed out; showing locally computed recommendations.")

	assert.Contains(t, buf.String(), "Notice")
	assert.Contains(t, buf.String(), "timed out")
}

func TestPrintNotice_EmptySkipped(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintNotice("")

	assert.Empty(t, buf.String())
}

func TestJoinCapped(t *testing.T) {
	assert.Equal(t, "a, b", joinCapped([]string{"a", "b"}))
	assert.Equal(t, "a, b, c, d, e (+2 more)", joinCapped([]string{"a", "b", "c", "d", "e", "f", "g"}))
}
