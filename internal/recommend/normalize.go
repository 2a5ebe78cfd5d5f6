package recommend

import (
	"github.com/jonathan/role-recommender/internal/extraction"
	"github.com/jonathan/role-recommender/internal/ranking"
	"github.com/jonathan/role-recommender/internal/selection"
	"github.com/jonathan/role-recommender/internal/types"
)

// normalize converts a parsed remote payload into the final result, enriching
// each entry with local salary, growth, and skill lookups. The extracted
// skills and focus areas still come from local extraction of the raw text;
// the remote service only supplies the role lists.
func (e *Engine) normalize(parsed *types.ParsedRecommendations, rawText string) *types.AnalysisResult {
	directFit := make([]types.JobRecommendation, 0, len(parsed.DirectMatches))
	for i, match := range parsed.DirectMatches {
		directFit = append(directFit, types.JobRecommendation{
			Title:           match.Title,
			Reason:          match.Reason,
			MatchPercentage: ranking.RemoteRankPercentage(i),
			Salary:          e.catalog.SalaryForTitle(match.Title),
			Growth:          e.catalog.GrowthForTitle(match.Title),
			Skills:          e.catalog.SkillTagsForTitle(match.Title),
		})
	}

	trending := make([]types.TrendingJob, 0, len(parsed.TrendingRoles))
	for _, role := range parsed.TrendingRoles {
		trending = append(trending, types.TrendingJob{
			Title:          role.Title,
			ExistingSkills: append([]string(nil), role.ExistingSkills...),
			MissingSkills:  append([]string(nil), role.MissingSkills...),
			Salary:         e.catalog.SalaryForTitle(role.Title),
			Growth:         e.catalog.GrowthForTitle(role.Title),
			LearningPath:   selection.GenerateLearningPath(role.MissingSkills, e.catalog),
		})
	}

	profile := extraction.Extract(rawText, e.catalog.Skills)

	return &types.AnalysisResult{
		DirectFitJobs:   directFit,
		TrendingJobs:    trending,
		ExtractedSkills: detectedSkills(profile),
		FocusAreas:      extraction.SpecializationFocusAreas(rawText),
	}
}

// detectedSkills copies the profile's skill list, never nil.
func detectedSkills(profile *extraction.Profile) []string {
	skills := make([]string, 0, len(profile.Skills))
	return append(skills, profile.Skills...)
}
