package recommend

import "strings"

// Experience score contributions. Internships weigh more than projects;
// degrees add a bonus on top.
const (
	internshipWeight = 0.5
	projectWeight    = 0.3
	advancedDegree   = 2.0
	bachelorDegree   = 1.0
)

// MatchLocation reports whether the user's preferred location is compatible
// with the posting location: exact equality, any comma-separated preferred
// segment contained in the posting location, or the posting location
// contained in the full preference string. Either side empty is no match.
func MatchLocation(preferred, jobLocation string) bool {
	if preferred == "" || jobLocation == "" {
		return false
	}

	preferredLower := strings.ToLower(preferred)
	jobLower := strings.ToLower(jobLocation)
	if preferredLower == jobLower {
		return true
	}

	for _, part := range strings.Split(preferredLower, ",") {
		part = strings.TrimSpace(part)
		if part != "" && strings.Contains(jobLower, part) {
			return true
		}
	}

	return strings.Contains(preferredLower, jobLower)
}

// MatchJobType reports whether the preferred and posted job types agree:
// equality or substring containment either way. Either side empty is no
// match.
func MatchJobType(preferred, jobType string) bool {
	if preferred == "" || jobType == "" {
		return false
	}

	preferredLower := strings.ToLower(preferred)
	jobLower := strings.ToLower(jobType)
	return preferredLower == jobLower ||
		strings.Contains(jobLower, preferredLower) ||
		strings.Contains(preferredLower, jobLower)
}

// SkillMatchPercent returns the percentage of the user's comma-separated
// skills found as substrings in the job text. No skills or no job text scores
// 0.
func SkillMatchPercent(keySkills, jobText string) float64 {
	if keySkills == "" || jobText == "" {
		return 0
	}

	skills := splitCSV(keySkills)
	if len(skills) == 0 {
		return 0
	}

	jobLower := strings.ToLower(jobText)
	matched := 0
	for _, skill := range skills {
		if strings.Contains(jobLower, skill) {
			matched++
		}
	}

	return float64(matched) / float64(len(skills)) * 100
}

// ExperienceScore summarizes the user's track record: weighted internship and
// project counts plus a per-degree bonus (advanced degrees beat bachelor's;
// the bonus accumulates across degrees).
func ExperienceScore(p Profile) float64 {
	score := float64(len(p.Internships))*internshipWeight +
		float64(len(p.Projects))*projectWeight

	for _, edu := range p.Education {
		degree := strings.ToLower(edu.Degree)
		switch {
		case strings.Contains(degree, "master"), strings.Contains(degree, "phd"):
			score += advancedDegree
		case strings.Contains(degree, "bachelor"):
			score += bachelorDegree
		}
	}

	return score
}

// MatchExperience classifies the job description by seniority keywords
// (entry, then mid, then senior; first band that fires wins) and checks the
// user's experience score against that band's threshold. A description with
// no seniority signal is assumed suitable.
func MatchExperience(p Profile, jobDescription string, bands ExperienceBands) bool {
	descLower := strings.ToLower(jobDescription)
	score := ExperienceScore(p)

	for _, band := range []Band{bands.Entry, bands.Mid, bands.Senior} {
		for _, keyword := range band.Keywords {
			if strings.Contains(descLower, strings.ToLower(keyword)) {
				return score >= band.MinScore
			}
		}
	}

	return true
}
