package resume

import (
	"regexp"
	"strings"
	"sync"
)

var educationKeywords = []string{
	"bachelor", "b.tech", "b.e", "b.sc", "b.com", "b.a", "bs", "be",
	"master", "m.tech", "m.e", "m.sc", "m.com", "m.a", "ms", "me", "mba",
	"phd", "ph.d", "doctorate", "diploma", "certification", "degree",
	"university", "college", "institute", "school",
}

var experienceKeywords = []string{
	"experience", "work history", "employment", "job history",
	"professional experience", "work experience", "internship",
	"career", "position", "role", "responsibilities",
}

// experienceContextLines is how many non-empty lines after a section heading
// are swept into the experience summary.
const experienceContextLines = 7

var (
	skillPatternsMu sync.Mutex
	skillPatterns   = map[string]*regexp.Regexp{}
)

// skillPattern returns a cached word-boundary matcher for the skill.
func skillPattern(skill string) *regexp.Regexp {
	skillPatternsMu.Lock()
	defer skillPatternsMu.Unlock()

	if re, ok := skillPatterns[skill]; ok {
		return re
	}
	re, err := regexp.Compile(`\b` + regexp.QuoteMeta(strings.ToLower(skill)) + `\b`)
	if err != nil {
		return nil
	}
	skillPatterns[skill] = re
	return re
}

// ExtractSkills returns the catalog entries mentioned in the text, matched on
// word boundaries so "r" does not fire inside "rust".
func ExtractSkills(text string, catalog []string) []string {
	textLower := strings.ToLower(text)
	var found []string
	for _, skill := range catalog {
		if re := skillPattern(skill); re != nil && re.MatchString(textLower) {
			found = append(found, skill)
		}
	}
	return found
}

// ExtractEducation collects the lines of the document mentioning an education
// keyword, joined into one lowercased string.
func ExtractEducation(text string) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.ToLower(text), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		for _, keyword := range educationKeywords {
			if strings.Contains(line, keyword) {
				b.WriteString(line)
				b.WriteString(" ")
				break
			}
		}
	}
	return strings.TrimSpace(b.String())
}

// ExtractExperience collects experience-section headings plus a few following
// lines of context for each.
func ExtractExperience(text string) string {
	lines := strings.Split(text, "\n")
	var b strings.Builder
	for i, line := range lines {
		lineLower := strings.ToLower(strings.TrimSpace(line))
		if lineLower == "" {
			continue
		}
		matched := false
		for _, keyword := range experienceKeywords {
			if strings.Contains(lineLower, keyword) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}

		b.WriteString(strings.TrimSpace(line))
		b.WriteString(" ")
		for j := 1; j <= experienceContextLines && i+j < len(lines); j++ {
			next := strings.TrimSpace(lines[i+j])
			if next != "" {
				b.WriteString(next)
				b.WriteString(" ")
			}
		}
	}
	return strings.TrimSpace(b.String())
}
