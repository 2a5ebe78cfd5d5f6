package extraction

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisciplineFocusAreas_SingleGroup(t *testing.T) {
	areas := DisciplineFocusAreas("worked on backend APIs in Go")

	assert.Equal(t, []string{"Backend Development"}, areas)
}

func TestDisciplineFocusAreas_MultipleGroupsInDeclarationOrder(t *testing.T) {
	areas := DisciplineFocusAreas("cloud deployments and backend data pipelines")

	assert.Equal(t, []string{
		"Backend Development",
		"Cloud Computing",
		"DevOps",
		"Data & Analytics",
	}, areas)
}

func TestDisciplineFocusAreas_DefaultOnNoMatch(t *testing.T) {
	areas := DisciplineFocusAreas("wrote poetry for a decade")

	assert.Equal(t, []string{"Software Development"}, areas)
}

func TestDisciplineFocusAreas_CaseInsensitive(t *testing.T) {
	areas := DisciplineFocusAreas("AWS and Azure migrations")

	assert.Equal(t, []string{"Cloud Computing"}, areas)
}

func TestSpecializationFocusAreas_SingleGroup(t *testing.T) {
	areas := SpecializationFocusAreas("embedded firmware on microcontrollers")

	assert.Equal(t, []string{"Embedded Systems"}, areas)
}

func TestSpecializationFocusAreas_DistinctFromDisciplineGroups(t *testing.T) {
	// "cloud" is a discipline keyword but not a specialization keyword.
	assert.Equal(t, []string{"Cloud Computing"}, DisciplineFocusAreas("cloud"))
	assert.Equal(t, []string{"Software Development"}, SpecializationFocusAreas("cloud"))

	// "c++" is a specialization keyword but not a discipline keyword.
	assert.Equal(t, []string{"Software Development"}, DisciplineFocusAreas("c++"))
	assert.Equal(t, []string{"C++ Development"}, SpecializationFocusAreas("c++"))
}

func TestSpecializationFocusAreas_DefaultOnNoMatch(t *testing.T) {
	areas := SpecializationFocusAreas("")

	assert.Equal(t, []string{"Software Development"}, areas)
}
