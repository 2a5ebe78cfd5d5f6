package selection

import "github.com/jonathan/role-recommender/internal/catalog"

// GenerateLearningPath builds a learning path for a list of missing skills by
// concatenating each skill's registered step sequence, in the order the
// missing skills are listed. Lookup is keyed by the exact missing-skill
// label. When no missing skill has a registered path, the catalog's generic
// 3-step path is returned so the caller always gets something actionable.
func GenerateLearningPath(missingSkills []string, cat *catalog.Catalog) []string {
	var path []string
	for _, skill := range missingSkills {
		if steps, ok := cat.LearningSteps(skill); ok {
			path = append(path, steps...)
		}
	}
	if len(path) == 0 {
		return append([]string(nil), cat.DefaultLearningPath...)
	}
	return path
}
