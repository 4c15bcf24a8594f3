package recommend

import (
	"context"
	"sort"

	"go.uber.org/zap"

	"github.com/skillmatch/job-recommender/internal/catalog"
	"github.com/skillmatch/job-recommender/internal/logger"
	"github.com/skillmatch/job-recommender/internal/resume"
)

// Composite score weights. The theoretical maximum is 1.0 with similarity at
// 1; the final score is deliberately not clamped, so floating-point overshoot
// in the similarity passes through.
const (
	weightSimilarity = 0.40
	weightLocation   = 0.20
	weightJobType    = 0.15
	weightSkills     = 0.20
	weightExperience = 0.05
)

// candidateFactor bounds rule-based matching work: only the top
// candidateFactor × topN similarity-ranked postings are evaluated.
const candidateFactor = 2

// Criteria records the individual signals behind a recommendation.
type Criteria struct {
	SimilarityScore   float64 `json:"similarity_score"`
	LocationMatch     bool    `json:"location_match"`
	JobTypeMatch      bool    `json:"job_type_match"`
	SkillMatchPercent float64 `json:"skill_match_percent"`
	ExperienceMatch   bool    `json:"experience_match"`
}

// Recommendation is one ranked result.
type Recommendation struct {
	Job      catalog.JobPosting `json:"job"`
	Score    float64            `json:"score"`
	Criteria Criteria           `json:"criteria"`
}

// ResumeFetcher retrieves resume data for a profile. A fetcher never fails:
// an unreachable or unreadable resume yields an empty Extraction.
type ResumeFetcher interface {
	Fetch(ctx context.Context, url string) resume.Extraction
}

// Engine runs the recommendation computation. It carries no per-request
// state: the vector space is refitted from scratch on every call, so engines
// are safe to share across requests.
type Engine struct {
	rules  Rules
	norm   *Normalizer
	resume ResumeFetcher
	logger *zap.Logger
}

// New builds an engine. The resume fetcher may be nil, in which case resume
// URLs are ignored.
func New(rules Rules, resumeFetcher ResumeFetcher, zlog *zap.Logger) *Engine {
	if zlog == nil {
		zlog = zap.NewNop()
	}
	rules = rules.WithDefaults()
	return &Engine{
		rules:  rules,
		norm:   NewNormalizer(rules.Stopwords, true),
		resume: resumeFetcher,
		logger: zlog,
	}
}

// Rules exposes the engine's effective rule set.
func (e *Engine) Rules() Rules { return e.rules }

// ExtractTags derives catalog search tags from the raw profile using the
// engine's alias tables.
func (e *Engine) ExtractTags(raw RawProfile) TagSet {
	return ExtractTags(raw, e.rules)
}

// Recommend ranks the supplied postings for the user and returns at most topN
// results. It never returns an error: every phase degrades to a safe default,
// and a request that cannot be scored at all yields an empty slice.
func (e *Engine) Recommend(ctx context.Context, raw RawProfile, jobs []catalog.JobPosting, topN int, resumeURL string) []Recommendation {
	if topN <= 0 || len(jobs) == 0 {
		return []Recommendation{}
	}

	var extraction resume.Extraction
	if resumeURL != "" && e.resume != nil {
		extraction = e.resume.Fetch(ctx, resumeURL)
		if extraction.Empty() {
			logger.WithPhase(e.logger, "resume_extraction", "").
				Warn("resume data unavailable, ranking on structured profile only")
		}
	}

	profile := ComposeProfile(raw, extraction)

	// The vector space is rebuilt per request; no vocabulary survives the
	// call.
	vectorizer := NewVectorizer(e.rules.Stopwords)
	docs := make([]string, len(jobs))
	for i, job := range jobs {
		docs[i] = e.norm.Normalize(job.Document())
	}
	vectorizer.Fit(docs)

	if vectorizer.Empty() {
		logger.WithPhase(e.logger, "vectorize", "").
			Warn("degenerate vector space, all similarities are zero",
				zap.Int("jobs", len(jobs)),
			)
	}

	jobVectors := make([]Vector, len(docs))
	for i, doc := range docs {
		jobVectors[i] = vectorizer.Transform(doc)
	}
	userVector := vectorizer.Transform(e.norm.Normalize(profile.Document()))

	ranked := RankBySimilarity(userVector, jobVectors, jobs)

	limit := candidateFactor * topN
	if limit > len(ranked) {
		limit = len(ranked)
	}

	recommendations := make([]Recommendation, 0, limit)
	for _, candidate := range ranked[:limit] {
		criteria := Criteria{
			SimilarityScore:   candidate.Similarity,
			LocationMatch:     MatchLocation(profile.PreferredLocation, candidate.Job.CandidateRequiredLocation),
			JobTypeMatch:      MatchJobType(profile.PreferredJobType, candidate.Job.JobType),
			SkillMatchPercent: SkillMatchPercent(profile.KeySkills, candidate.Job.MatchText()),
			ExperienceMatch:   MatchExperience(profile, candidate.Job.Description, e.rules.Experience),
		}

		recommendations = append(recommendations, Recommendation{
			Job:      candidate.Job,
			Score:    finalScore(criteria),
			Criteria: criteria,
		})
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > topN {
		recommendations = recommendations[:topN]
	}

	e.logger.Info("recommendation computed",
		zap.Int("pool", len(jobs)),
		zap.Int("candidates", limit),
		zap.Int("returned", len(recommendations)),
	)
	return recommendations
}

func finalScore(c Criteria) float64 {
	score := c.SimilarityScore * weightSimilarity
	if c.LocationMatch {
		score += weightLocation
	}
	if c.JobTypeMatch {
		score += weightJobType
	}
	score += c.SkillMatchPercent / 100 * weightSkills
	if c.ExperienceMatch {
		score += weightExperience
	}
	return score
}
