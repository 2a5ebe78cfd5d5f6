package extraction

import "strings"

// defaultFocusArea is returned by both classifiers when no keyword group
// matches.
const defaultFocusArea = "Software Development"

// focusGroup pairs a focus-area label with the keywords that signal it.
type focusGroup struct {
	label    string
	keywords []string
}

// disciplineGroups are the keyword groups consulted by the fully local
// pipeline. They classify by engineering discipline.
var disciplineGroups = []focusGroup{
	{label: "Backend Development", keywords: []string{"backend", "server"}},
	{label: "Frontend Development", keywords: []string{"frontend", "ui"}},
	{label: "Cloud Computing", keywords: []string{"cloud", "aws", "azure"}},
	{label: "DevOps", keywords: []string{"devops", "deployment"}},
	{label: "Leadership", keywords: []string{"lead", "team"}},
	{label: "Data & Analytics", keywords: []string{"data", "analytics"}},
}

// specializationGroups are the keyword groups consulted on the
// remote-assisted path. They classify by technical specialization and are
// deliberately kept distinct from disciplineGroups: the two paths have always
// used different sets and callers depend on each set's labels.
var specializationGroups = []focusGroup{
	{label: "C++ Development", keywords: []string{"c++", "cpp"}},
	{label: "Embedded Systems", keywords: []string{"embedded", "microcontroller"}},
	{label: "Backend Development", keywords: []string{"backend", "server"}},
	{label: "Game Development", keywords: []string{"game", "gaming"}},
	{label: "Software Development", keywords: []string{"software", "programming"}},
}

// DisciplineFocusAreas classifies raw text into engineering-discipline focus
// areas. Labels come back in declaration order; no match yields the single
// default label.
func DisciplineFocusAreas(text string) []string {
	return classify(text, disciplineGroups)
}

// SpecializationFocusAreas classifies raw text into technical-specialization
// focus areas, used when enriching remote recommendations. Labels come back
// in declaration order; no match yields the single default label.
func SpecializationFocusAreas(text string) []string {
	return classify(text, specializationGroups)
}

func classify(text string, groups []focusGroup) []string {
	lower := strings.ToLower(text)
	var areas []string
	for _, group := range groups {
		for _, keyword := range group.keywords {
			if strings.Contains(lower, keyword) {
				areas = append(areas, group.label)
				break
			}
		}
	}
	if len(areas) == 0 {
		return []string{defaultFocusArea}
	}
	return areas
}
