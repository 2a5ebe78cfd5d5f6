// Package catalog holds the static skill dictionary and job-role tables the
// recommendation engine matches against. All data is immutable after
// construction and safe to share across concurrent analyses; components
// receive a *Catalog explicitly so tests can substitute smaller tables.
package catalog

// Growth labels the expected demand trajectory for a role.
type Growth string

// Growth labels, from slowest to fastest demand trajectory.
const (
	GrowthLow       Growth = "Low"
	GrowthMedium    Growth = "Medium"
	GrowthHigh      Growth = "High"
	GrowthVeryHigh  Growth = "Very High"
	GrowthExplosive Growth = "Explosive"
)

// SkillEntry maps a canonical skill name to the lowercase alias phrases that
// signal it in free text. Aliases are matched as substrings, not tokens, so
// informal resume prose (and literals like "c++") still hit.
type SkillEntry struct {
	Name    string
	Aliases []string
}

// DirectRole is one entry in the direct-fit role table. Registration order is
// significant: it is the tie-break for equal match scores and the fallback
// ordering.
type DirectRole struct {
	Name     string
	Skills   []string // required canonical skills
	Keywords []string // bonus keywords matched against the raw text
	Salary   string
	Growth   Growth
}

// TrendingRole is one entry in the trending-role table: a growth opportunity
// whose ExistingSkills are informal prerequisite labels (not guaranteed to
// equal canonical skill names) and whose MissingSkills are the gap to close.
type TrendingRole struct {
	Name           string
	ExistingSkills []string
	MissingSkills  []string
	Salary         string
	Growth         Growth
	LearningPath   []string
}

// LearningPath registers the fixed step sequence for one missing-skill label.
type LearningPath struct {
	Skill string
	Steps []string
}

// TitleLookup is one ordered keyword→value pair used to enrich remote role
// titles. Lookups scan in registration order and the first containing match
// wins, so more specific keywords must be registered first.
type TitleLookup struct {
	Keyword string
	Value   string
}

// Catalog bundles every static table the engine consults.
type Catalog struct {
	Skills        []SkillEntry
	Roles         []DirectRole
	Trending      []TrendingRole
	LearningPaths []LearningPath

	// Enrichment tables for remote-provided role titles.
	Salaries    []TitleLookup
	GrowthRates []TitleLookup
	TitleSkills []TitleLookup

	// Fixed defaults used when lookups or selections come up empty.
	DefaultSalary       string
	DefaultGrowth       Growth
	DefaultFocusArea    string
	DefaultLearningPath []string
	DefaultTrending     []string // trending-role names returned when nothing matches
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return &Catalog{
		Skills:        defaultSkillEntries,
		Roles:         defaultDirectRoles,
		Trending:      defaultTrendingRoles,
		LearningPaths: defaultLearningPaths,
		Salaries:      defaultSalaries,
		GrowthRates:   defaultGrowthRates,
		TitleSkills:   defaultTitleSkills,

		DefaultSalary:       "$50,000 - $90,000",
		DefaultGrowth:       GrowthHigh,
		DefaultFocusArea:    "Software Development",
		DefaultLearningPath: []string{"Study relevant documentation", "Practice with tutorials", "Build sample projects"},
		DefaultTrending:     []string{"AI Engineer", "Cybersecurity Specialist"},
	}
}

// TrendingByName returns a copy of the named trending role.
func (c *Catalog) TrendingByName(name string) (TrendingRole, bool) {
	for _, role := range c.Trending {
		if role.Name == name {
			return copyTrendingRole(role), true
		}
	}
	return TrendingRole{}, false
}

// LearningSteps returns the registered step sequence for a missing-skill
// label, matched exactly.
func (c *Catalog) LearningSteps(skill string) ([]string, bool) {
	for _, path := range c.LearningPaths {
		if path.Skill == skill {
			steps := make([]string, len(path.Steps))
			copy(steps, path.Steps)
			return steps, true
		}
	}
	return nil, false
}

// copyTrendingRole deep-copies a trending role so results never alias catalog
// slices.
func copyTrendingRole(role TrendingRole) TrendingRole {
	out := role
	out.ExistingSkills = append([]string(nil), role.ExistingSkills...)
	out.MissingSkills = append([]string(nil), role.MissingSkills...)
	out.LearningPath = append([]string(nil), role.LearningPath...)
	return out
}
