package catalog

import "strings"

// defaultSalaries maps role-title keywords to salary bands for remote
// enrichment. First containing match wins, so the multi-word entries come
// before their shorter substrings.
var defaultSalaries = []TitleLookup{
	{Keyword: "Junior Software Developer", Value: "$50,000 - $75,000"},
	{Keyword: "C++ Programmer", Value: "$55,000 - $85,000"},
	{Keyword: "Game Programmer", Value: "$45,000 - $80,000"},
	{Keyword: "Embedded Systems Engineer", Value: "$70,000 - $110,000"},
	{Keyword: "Backend Developer", Value: "$65,000 - $120,000"},
	{Keyword: "Software Developer", Value: "$60,000 - $100,000"},
	{Keyword: "Senior Developer", Value: "$90,000 - $150,000"},
	{Keyword: "Lead Developer", Value: "$100,000 - $180,000"},
}

// defaultGrowthRates maps role-title keywords to growth labels for remote
// enrichment.
var defaultGrowthRates = []TitleLookup{
	{Keyword: "Junior", Value: string(GrowthHigh)},
	{Keyword: "Senior", Value: string(GrowthMedium)},
	{Keyword: "Lead", Value: string(GrowthMedium)},
	{Keyword: "Embedded", Value: string(GrowthVeryHigh)},
	{Keyword: "Backend", Value: string(GrowthHigh)},
	{Keyword: "Game", Value: string(GrowthMedium)},
}

// defaultTitleSkills maps role-title keywords to skill tags. Unlike the
// salary and growth lookups, every matching keyword contributes.
var defaultTitleSkills = []TitleLookup{
	{Keyword: "c++", Value: "C++"},
	{Keyword: "embedded", Value: "Embedded Systems"},
	{Keyword: "backend", Value: "Backend Development"},
	{Keyword: "game", Value: "Game Development"},
	{Keyword: "software", Value: "Software Development"},
}

// SalaryForTitle returns the salary band for a remote-provided role title,
// matched case-insensitively, or the catalog default.
func (c *Catalog) SalaryForTitle(title string) string {
	if value, ok := lookupFirst(c.Salaries, title); ok {
		return value
	}
	return c.DefaultSalary
}

// GrowthForTitle returns the growth label for a remote-provided role title,
// matched case-insensitively, or the catalog default.
func (c *Catalog) GrowthForTitle(title string) string {
	if value, ok := lookupFirst(c.GrowthRates, title); ok {
		return value
	}
	return string(c.DefaultGrowth)
}

// SkillTagsForTitle derives a small skill tag list from keyword presence in a
// remote-provided role title. Every matching keyword contributes a tag.
func (c *Catalog) SkillTagsForTitle(title string) []string {
	lower := strings.ToLower(title)
	var tags []string
	for _, entry := range c.TitleSkills {
		if strings.Contains(lower, entry.Keyword) {
			tags = append(tags, entry.Value)
		}
	}
	return tags
}

// lookupFirst scans an ordered lookup table and returns the value of the
// first keyword contained in the title, case-insensitively.
func lookupFirst(table []TitleLookup, title string) (string, bool) {
	lower := strings.ToLower(title)
	for _, entry := range table {
		if strings.Contains(lower, strings.ToLower(entry.Keyword)) {
			return entry.Value, true
		}
	}
	return "", false
}
