package ranking

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jonathan/role-recommender/internal/catalog"
	"github.com/jonathan/role-recommender/internal/extraction"
	"github.com/jonathan/role-recommender/internal/types"
)

// maxDirectMatches caps the direct-fit recommendation list.
const maxDirectMatches = 3

// RoleMatch is a transient candidate produced during ranking. It exists only
// until the recommendation list is built.
type RoleMatch struct {
	Role          catalog.DirectRole
	Score         int
	MatchedSkills []string
}

// MatchRoles scores every catalog role against the profile and raw text,
// drops zero-score roles, and returns the top candidates sorted by score
// descending. The sort is stable: equal scores keep catalog registration
// order, which is the documented tie-break.
func MatchRoles(profile *extraction.Profile, rawText string, roles []catalog.DirectRole) []RoleMatch {
	lowerText := strings.ToLower(rawText)

	matches := make([]RoleMatch, 0, len(roles))
	for _, role := range roles {
		score, matched := scoreRole(role, profile, lowerText)
		if score == 0 {
			continue
		}
		matches = append(matches, RoleMatch{Role: role, Score: score, MatchedSkills: matched})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	if len(matches) > maxDirectMatches {
		matches = matches[:maxDirectMatches]
	}
	return matches
}

// BuildRecommendations converts ranked candidates into presentation-ready
// recommendations, attaching the locally derived confidence percentage and a
// reason referencing the matched skills and focus areas. All values are
// copied; the result holds no catalog references.
func BuildRecommendations(matches []RoleMatch, focusAreas []string) []types.JobRecommendation {
	recommendations := make([]types.JobRecommendation, 0, len(matches))
	for _, match := range matches {
		skills := make([]string, len(match.MatchedSkills))
		copy(skills, match.MatchedSkills)

		recommendations = append(recommendations, types.JobRecommendation{
			Title:           match.Role.Name,
			Reason:          buildReason(match.MatchedSkills, focusAreas),
			MatchPercentage: LocalMatchPercentage(match.Score),
			Salary:          match.Role.Salary,
			Growth:          string(match.Role.Growth),
			Skills:          skills,
		})
	}
	return recommendations
}

// buildReason explains a recommendation in terms of the matched skills and
// the candidate's focus areas.
func buildReason(matchedSkills, focusAreas []string) string {
	background := strings.Join(focusAreas, " and ")
	if background == "" {
		background = "software development"
	}
	return fmt.Sprintf("Strong match based on your %s experience. Your background in %s aligns well with this role.",
		strings.Join(matchedSkills, ", "), background)
}
