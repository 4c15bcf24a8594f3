package recommend

import (
	"sort"
	"strings"
)

// SentinelTag marks a profile that produced no usable search signal. Callers
// searching a catalog are expected to substitute their own fallback tag list
// instead of querying for it literally.
const SentinelTag = "general"

// TagSet is a set of lowercase search tags.
type TagSet map[string]struct{}

func NewTagSet(tags ...string) TagSet {
	s := make(TagSet, len(tags))
	for _, t := range tags {
		s.Add(t)
	}
	return s
}

// Add inserts the trimmed, lowercased tag, ignoring empty strings.
func (s TagSet) Add(tag string) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if tag == "" {
		return
	}
	s[tag] = struct{}{}
}

func (s TagSet) Has(tag string) bool {
	_, ok := s[strings.ToLower(strings.TrimSpace(tag))]
	return ok
}

func (s TagSet) Len() int { return len(s) }

// List returns the tags sorted alphabetically so catalog queries and logs are
// deterministic.
func (s TagSet) List() []string {
	out := make([]string, 0, len(s))
	for t := range s {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SentinelOnly reports whether the set carries no signal beyond the sentinel.
func (s TagSet) SentinelOnly() bool {
	return len(s) == 0 || (len(s) == 1 && s.Has(SentinelTag))
}

// ExtractTags derives search tags from the raw profile's key skills, preferred
// job type and preferred location, expanding skills and locations through the
// alias tables in rules. The result is never empty: a profile with no signal
// yields the sentinel tag.
func ExtractTags(raw RawProfile, rules Rules) TagSet {
	tags := NewTagSet()

	for _, skill := range splitCSV(raw.KeySkills) {
		tags.Add(skill)
		for _, alias := range rules.SkillAliases[skill] {
			tags.Add(alias)
		}
	}

	tags.Add(raw.PreferredJobType)

	for _, loc := range splitCSV(raw.PreferredLocation) {
		tags.Add(loc)
		for _, alias := range rules.LocationAliases[loc] {
			tags.Add(alias)
		}
	}

	if tags.Len() == 0 {
		tags.Add(SentinelTag)
	}

	return tags
}

// splitCSV splits a comma-separated field into trimmed, lowercased, non-empty
// parts.
func splitCSV(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
