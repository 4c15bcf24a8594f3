package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchLocation(t *testing.T) {
	cases := []struct {
		name      string
		preferred string
		job       string
		want      bool
	}{
		{"exact", "Bangalore", "bangalore", true},
		{"segment in job location", "Bangalore, Pune", "Remote - Pune", true},
		{"job location in preference", "Greater Bangalore Area", "bangalore area", true},
		{"empty preference", "", "Pune", false},
		{"empty job location", "Delhi", "", false},
		{"no overlap", "Delhi", "Mumbai", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MatchLocation(tc.preferred, tc.job))
		})
	}
}

func TestMatchJobType(t *testing.T) {
	assert.True(t, MatchJobType("Full-Time", "full-time"))
	assert.True(t, MatchJobType("Full-Time", "Permanent Full-Time Role"))
	assert.True(t, MatchJobType("Remote Full-Time", "full-time"))
	assert.False(t, MatchJobType("", "full-time"))
	assert.False(t, MatchJobType("Full-Time", ""))
	assert.False(t, MatchJobType("Part-Time", "Internship"))
}

func TestSkillMatchPercentRange(t *testing.T) {
	jobText := "Develop Java-based applications using Springboot and PostgreSQL"

	assert.Equal(t, 100.0, SkillMatchPercent("java, springboot, postgresql", jobText))
	assert.Equal(t, 0.0, SkillMatchPercent("haskell, erlang", jobText))
	assert.Equal(t, 0.0, SkillMatchPercent("", jobText))
	assert.Equal(t, 0.0, SkillMatchPercent("java", ""))
	assert.Equal(t, 0.0, SkillMatchPercent(" , ,", jobText))

	partial := SkillMatchPercent("java, haskell", jobText)
	assert.InDelta(t, 50.0, partial, 1e-9)
	assert.GreaterOrEqual(t, partial, 0.0)
	assert.LessOrEqual(t, partial, 100.0)
}

func TestExperienceScoreAccumulates(t *testing.T) {
	p := Profile{
		Internships: []Internship{{Company: "A"}, {Company: "B"}},
		Projects:    []Project{{Name: "X"}},
		Education: []Education{
			{Degree: "Bachelor of Engineering"},
			{Degree: "Master of Science"},
		},
	}

	// 2*0.5 + 1*0.3 + 1 + 2
	assert.InDelta(t, 4.3, ExperienceScore(p), 1e-9)
}

func TestExperienceScoreAdvancedDegreeWins(t *testing.T) {
	// A degree naming both levels counts once, at the advanced rate.
	p := Profile{Education: []Education{{Degree: "Integrated Bachelor and Master of Technology"}}}
	assert.InDelta(t, 2.0, ExperienceScore(p), 1e-9)
}

func TestMatchExperienceBands(t *testing.T) {
	bands := DefaultRules().Experience
	fresher := Profile{Projects: []Project{{Name: "X"}}}               // 0.3
	junior := Profile{Internships: []Internship{{Company: "A"}, {Company: "B"}}} // 1.0
	veteran := Profile{
		Internships: []Internship{{Company: "A"}, {Company: "B"}, {Company: "C"}, {Company: "D"}},
		Education:   []Education{{Degree: "PhD"}},
	} // 4.0

	assert.False(t, MatchExperience(fresher, "Junior engineer wanted", bands))
	assert.True(t, MatchExperience(junior, "Junior engineer wanted", bands))
	assert.False(t, MatchExperience(junior, "Senior engineer, 5+ years", bands))
	assert.True(t, MatchExperience(veteran, "Senior engineer, 5+ years", bands))

	// Entry band is checked before senior: a description carrying both
	// classifies as entry.
	assert.True(t, MatchExperience(junior, "Junior role reporting to a senior lead", bands))

	// No seniority signal at all is assumed suitable.
	assert.True(t, MatchExperience(fresher, "We build data pipelines", bands))
	assert.True(t, MatchExperience(fresher, "", bands))
}
