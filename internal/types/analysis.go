// Package types provides type definitions for structured data used throughout the role-recommender system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// AnalysisResult is the complete output of one experience analysis.
// It is the sole value handed to presentation code; every field is a copy
// and holds no references into the static catalogs.
type AnalysisResult struct {
	DirectFitJobs   []JobRecommendation `json:"direct_fit_jobs"`
	TrendingJobs    []TrendingJob       `json:"trending_jobs"`
	ExtractedSkills []string            `json:"extracted_skills"`
	FocusAreas      []string            `json:"focus_areas"`
}

// JobRecommendation is a direct-fit role recommendation.
// MatchPercentage is a presentation-facing confidence number, not a
// probability: locally scored results fall in [60, 95], remote-rank-derived
// results in [70, 95].
type JobRecommendation struct {
	Title           string   `json:"title"`
	Reason          string   `json:"reason"`
	MatchPercentage int      `json:"match_percentage"`
	Salary          string   `json:"salary"`
	Growth          string   `json:"growth"`
	Skills          []string `json:"skills"`
}

// TrendingJob is a growth-opportunity role that requires skills beyond the
// current profile, with a learning path covering the gap.
type TrendingJob struct {
	Title          string   `json:"title"`
	ExistingSkills []string `json:"existing_skills"`
	MissingSkills  []string `json:"missing_skills"`
	Salary         string   `json:"salary"`
	Growth         string   `json:"growth"`
	LearningPath   []string `json:"learning_path"`
}
