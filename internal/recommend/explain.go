package recommend

import (
	"fmt"
	"strings"
)

// Explanation threshold bands.
const (
	strongSimilarity = 0.5
	goodSimilarity   = 0.3

	excellentSkillPercent = 70
	goodSkillPercent      = 40
)

// Explain renders a human-readable justification from a recommendation's
// stored criteria. It never inspects the job itself, only the criteria
// captured at ranking time.
func Explain(rec Recommendation) string {
	c := rec.Criteria
	var parts []string

	switch {
	case c.SimilarityScore > strongSimilarity:
		parts = append(parts, "Strong content match with your profile")
	case c.SimilarityScore > goodSimilarity:
		parts = append(parts, "Good content alignment")
	default:
		parts = append(parts, "Basic content relevance")
	}

	if c.LocationMatch {
		parts = append(parts, "Location matches your preference")
	}
	if c.JobTypeMatch {
		parts = append(parts, "Job type aligns with your preference")
	}

	switch {
	case c.SkillMatchPercent > excellentSkillPercent:
		parts = append(parts, fmt.Sprintf("Excellent skills match (%.0f%%)", c.SkillMatchPercent))
	case c.SkillMatchPercent > goodSkillPercent:
		parts = append(parts, fmt.Sprintf("Good skills match (%.0f%%)", c.SkillMatchPercent))
	case c.SkillMatchPercent > 0:
		parts = append(parts, fmt.Sprintf("Some skills match (%.0f%%)", c.SkillMatchPercent))
	}

	if c.ExperienceMatch {
		parts = append(parts, "Experience level appropriate")
	}

	if len(parts) == 0 {
		return "General match based on profile"
	}
	return strings.Join(parts, "; ")
}
