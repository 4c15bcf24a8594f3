package recommend

// Rules bundles the data-driven parts of the recommendation engine: the
// synonym tables used during tag extraction, the stopword list shared by the
// normalizer and the vectorizer, the skill catalog used for resume mining, and
// the experience-level keyword bands. All fields are optional in the config
// file; WithDefaults fills the gaps so the engine always runs with a complete
// rule set.
type Rules struct {
	SkillAliases    map[string][]string `mapstructure:"skill_aliases" yaml:"skill_aliases"`
	LocationAliases map[string][]string `mapstructure:"location_aliases" yaml:"location_aliases"`
	FallbackTags    []string            `mapstructure:"fallback_tags" yaml:"fallback_tags"`
	Stopwords       []string            `mapstructure:"stopwords" yaml:"stopwords"`
	SkillCatalog    []string            `mapstructure:"skill_catalog" yaml:"skill_catalog"`
	Experience      ExperienceBands     `mapstructure:"experience" yaml:"experience"`
}

// ExperienceBands holds the keyword sets used to classify a job description
// by seniority and the minimum experience score required for each band.
// Bands are checked in entry, mid, senior order; the first match wins.
type ExperienceBands struct {
	Entry  Band `mapstructure:"entry" yaml:"entry"`
	Mid    Band `mapstructure:"mid" yaml:"mid"`
	Senior Band `mapstructure:"senior" yaml:"senior"`
}

// Band pairs seniority keywords with the score threshold a candidate must
// reach to plausibly fit that level.
type Band struct {
	Keywords []string `mapstructure:"keywords" yaml:"keywords"`
	MinScore float64  `mapstructure:"min_score" yaml:"min_score"`
}

// DefaultRules returns the built-in rule set.
func DefaultRules() Rules {
	return Rules{
		SkillAliases: map[string][]string{
			"springboot":      {"spring boot", "springboot"},
			"spring security": {"spring security"},
			"postgresql":      {"postgres", "postgresql"},
			"java":            {"java", "j2ee"},
		},
		LocationAliases: map[string][]string{
			"bangalore/bengaluru": {"bangalore", "bengaluru"},
			"rajkot":              {"rajkot"},
			"pune":                {"pune"},
			"ahmedabad":           {"ahmedabad"},
		},
		FallbackTags: []string{"java", "software engineer", "full-time"},
		Stopwords:    defaultStopwords,
		SkillCatalog: defaultSkillCatalog,
		Experience: ExperienceBands{
			Entry: Band{
				Keywords: []string{"entry level", "junior", "fresher", "graduate", "trainee"},
				MinScore: 1,
			},
			Mid: Band{
				Keywords: []string{"mid level", "experienced", "2+ years", "3+ years"},
				MinScore: 2,
			},
			Senior: Band{
				Keywords: []string{"senior", "lead", "5+ years", "expert", "principal"},
				MinScore: 4,
			},
		},
	}
}

// WithDefaults returns a copy of r where every unset table is replaced by its
// built-in default. Explicitly configured tables are kept as-is, so a config
// file can override one table without repeating the others.
func (r Rules) WithDefaults() Rules {
	defaults := DefaultRules()
	if r.SkillAliases == nil {
		r.SkillAliases = defaults.SkillAliases
	}
	if r.LocationAliases == nil {
		r.LocationAliases = defaults.LocationAliases
	}
	if len(r.FallbackTags) == 0 {
		r.FallbackTags = defaults.FallbackTags
	}
	if len(r.Stopwords) == 0 {
		r.Stopwords = defaults.Stopwords
	}
	if len(r.SkillCatalog) == 0 {
		r.SkillCatalog = defaults.SkillCatalog
	}
	if len(r.Experience.Entry.Keywords) == 0 {
		r.Experience.Entry = defaults.Experience.Entry
	}
	if len(r.Experience.Mid.Keywords) == 0 {
		r.Experience.Mid = defaults.Experience.Mid
	}
	if len(r.Experience.Senior.Keywords) == 0 {
		r.Experience.Senior = defaults.Experience.Senior
	}
	return r
}
