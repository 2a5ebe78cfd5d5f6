// Package extraction detects canonical skills and focus areas in raw
// experience text. Matching is case-insensitive and substring-based:
// aliases like "c++" are literal substring checks, not token checks.
package extraction

import (
	"strings"

	"github.com/jonathan/role-recommender/internal/catalog"
)

// Profile is the transient result of extracting one text input: the canonical
// skills detected and how often their aliases occurred. Skill names are
// always drawn from the dictionary's canonical key set, never free text.
type Profile struct {
	Skills []string       // detected canonical skills, in dictionary order
	Counts map[string]int // skill -> total alias occurrences
}

// Has reports whether the profile detected the given canonical skill.
func (p *Profile) Has(skill string) bool {
	_, ok := p.Counts[skill]
	return ok
}

// Count returns the total alias occurrence count for a detected skill, or
// zero when the skill was not detected.
func (p *Profile) Count(skill string) int {
	return p.Counts[skill]
}

// Extract scans text against the skill dictionary and returns the detected
// profile. Each alias occurrence counts: an alias appearing twice counts
// twice, and multiple distinct aliases for the same skill each contribute
// independently. Empty or unmatched input yields an empty profile.
func Extract(text string, dict []catalog.SkillEntry) *Profile {
	lower := strings.ToLower(text)
	profile := &Profile{Counts: make(map[string]int)}

	for _, entry := range dict {
		total := 0
		for _, alias := range entry.Aliases {
			total += strings.Count(lower, alias)
		}
		if total > 0 {
			profile.Skills = append(profile.Skills, entry.Name)
			profile.Counts[entry.Name] = total
		}
	}

	return profile
}
