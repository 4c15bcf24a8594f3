package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExplainStrongMatch(t *testing.T) {
	rec := Recommendation{Criteria: Criteria{
		SimilarityScore:   0.72,
		LocationMatch:     true,
		JobTypeMatch:      true,
		SkillMatchPercent: 85,
		ExperienceMatch:   true,
	}}

	assert.Equal(t,
		"Strong content match with your profile; Location matches your preference; "+
			"Job type aligns with your preference; Excellent skills match (85%); "+
			"Experience level appropriate",
		Explain(rec))
}

func TestExplainSimilarityBands(t *testing.T) {
	cases := []struct {
		similarity float64
		want       string
	}{
		{0.51, "Strong content match with your profile"},
		{0.5, "Good content alignment"},
		{0.31, "Good content alignment"},
		{0.3, "Basic content relevance"},
		{0, "Basic content relevance"},
	}

	for _, tc := range cases {
		rec := Recommendation{Criteria: Criteria{SimilarityScore: tc.similarity}}
		assert.Equal(t, tc.want, Explain(rec), "similarity %v", tc.similarity)
	}
}

func TestExplainSkillBands(t *testing.T) {
	cases := []struct {
		percent float64
		want    string
	}{
		{90, "Basic content relevance; Excellent skills match (90%)"},
		{70, "Basic content relevance; Good skills match (70%)"},
		{50, "Basic content relevance; Good skills match (50%)"},
		{40, "Basic content relevance; Some skills match (40%)"},
		{10, "Basic content relevance; Some skills match (10%)"},
		{0, "Basic content relevance"},
	}

	for _, tc := range cases {
		rec := Recommendation{Criteria: Criteria{SkillMatchPercent: tc.percent}}
		assert.Equal(t, tc.want, Explain(rec), "percent %v", tc.percent)
	}
}
