// Package selection picks trending roles for a profile and generates the
// learning path covering each role's skill gap.
package selection

import (
	"strings"

	"github.com/jonathan/role-recommender/internal/catalog"
	"github.com/jonathan/role-recommender/internal/extraction"
	"github.com/jonathan/role-recommender/internal/types"
)

// maxTrendingJobs caps the trending recommendation list.
const maxTrendingJobs = 2

// SelectTrending returns up to two trending roles whose prerequisites overlap
// the profile, in catalog order. Prerequisite labels are informal and not
// guaranteed to equal canonical skill names, so the overlap check is
// case-insensitive substring containment of the label within a detected
// canonical skill name.
//
// When nothing overlaps, the two fixed default roles are returned instead so
// the trending list is never empty. Callers must treat a non-empty list as
// "has data", not as a genuine match signal.
func SelectTrending(profile *extraction.Profile, cat *catalog.Catalog) []types.TrendingJob {
	var jobs []types.TrendingJob
	for _, role := range cat.Trending {
		existing := overlappingPrerequisites(role.ExistingSkills, profile)
		if len(existing) == 0 {
			continue
		}
		jobs = append(jobs, buildTrendingJob(role, existing, cat))
		if len(jobs) == maxTrendingJobs {
			break
		}
	}

	if len(jobs) == 0 {
		jobs = defaultTrendingJobs(cat)
	}
	return jobs
}

// overlappingPrerequisites returns the prerequisite labels contained in any
// detected canonical skill name, in prerequisite order.
func overlappingPrerequisites(prerequisites []string, profile *extraction.Profile) []string {
	var existing []string
	for _, prerequisite := range prerequisites {
		lowerPrereq := strings.ToLower(prerequisite)
		for _, skill := range profile.Skills {
			if strings.Contains(strings.ToLower(skill), lowerPrereq) {
				existing = append(existing, prerequisite)
				break
			}
		}
	}
	return existing
}

// defaultTrendingJobs returns the fixed fallback pair. The catalog
// prerequisite lists are carried through as the existing skills even though
// nothing matched; the no-match signal is deliberately not surfaced.
func defaultTrendingJobs(cat *catalog.Catalog) []types.TrendingJob {
	jobs := make([]types.TrendingJob, 0, len(cat.DefaultTrending))
	for _, name := range cat.DefaultTrending {
		role, ok := cat.TrendingByName(name)
		if !ok {
			continue
		}
		jobs = append(jobs, buildTrendingJob(role, role.ExistingSkills, cat))
	}
	return jobs
}

// buildTrendingJob copies a trending role into a presentation value. The
// role's registered learning path wins; roles without one get a path
// generated from their missing skills.
func buildTrendingJob(role catalog.TrendingRole, existing []string, cat *catalog.Catalog) types.TrendingJob {
	path := role.LearningPath
	if len(path) == 0 {
		path = GenerateLearningPath(role.MissingSkills, cat)
	}

	return types.TrendingJob{
		Title:          role.Name,
		ExistingSkills: append([]string(nil), existing...),
		MissingSkills:  append([]string(nil), role.MissingSkills...),
		Salary:         role.Salary,
		Growth:         string(role.Growth),
		LearningPath:   append([]string(nil), path...),
	}
}
