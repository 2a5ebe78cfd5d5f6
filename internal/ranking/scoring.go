// Package ranking scores catalog roles against an extracted skill profile and
// produces the ranked direct-fit recommendations.
package ranking

import (
	"strings"

	"github.com/jonathan/role-recommender/internal/catalog"
	"github.com/jonathan/role-recommender/internal/extraction"
)

// Bonus added per role keyword found in the raw text.
const keywordBonus = 2

// Confidence bounds. Locally scored results live in [localFloor, ceiling],
// remote-rank-derived results in [remoteFloor, ceiling]. The two formulas are
// deliberately distinct: each result origin has its own derivation and
// callers rely on the documented ranges.
const (
	ceiling     = 95
	localFloor  = 60
	remoteFloor = 70
	rankStep    = 5
)

// scoreRole computes the match score for one role: the sum of alias
// occurrence counts over the role's required skills present in the profile,
// plus a fixed bonus per role keyword appearing as a substring of the raw
// text. Also returns the matched required skills in role order.
func scoreRole(role catalog.DirectRole, profile *extraction.Profile, lowerText string) (int, []string) {
	score := 0
	var matched []string

	for _, skill := range role.Skills {
		if profile.Has(skill) {
			score += profile.Count(skill)
			matched = append(matched, skill)
		}
	}

	for _, keyword := range role.Keywords {
		if strings.Contains(lowerText, strings.ToLower(keyword)) {
			score += keywordBonus
		}
	}

	return score, matched
}

// LocalMatchPercentage derives the confidence number for a locally scored
// candidate: min(95, max(60, round(score/10 × 100))).
func LocalMatchPercentage(score int) int {
	pct := score * 10
	if pct < localFloor {
		pct = localFloor
	}
	if pct > ceiling {
		pct = ceiling
	}
	return pct
}

// RemoteRankPercentage derives the confidence number for a remote-origin
// candidate, where no local score exists, from its presentation rank:
// max(70, 95 − 5×rankIndex).
func RemoteRankPercentage(rankIndex int) int {
	pct := ceiling - rankStep*rankIndex
	if pct < remoteFloor {
		pct = remoteFloor
	}
	return pct
}
