package recommend

import (
	"math"
	"sort"

	"github.com/skillmatch/job-recommender/internal/catalog"
)

// ScoredJob pairs a posting with its textual similarity to the user.
type ScoredJob struct {
	Job        catalog.JobPosting
	Similarity float64
}

// Cosine returns the cosine similarity of two vectors. Mismatched or
// zero-length vectors score 0.
func Cosine(a, b Vector) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	// Transform already L2-normalizes; the division guards callers passing
	// raw vectors.
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// RankBySimilarity pairs every posting with its cosine similarity to the user
// vector and sorts descending. Ties keep the original posting order. In a
// degenerate space every posting scores exactly 0.
func RankBySimilarity(user Vector, jobVectors []Vector, jobs []catalog.JobPosting) []ScoredJob {
	scored := make([]ScoredJob, 0, len(jobs))
	for i, job := range jobs {
		var sim float64
		if i < len(jobVectors) {
			sim = Cosine(user, jobVectors[i])
		}
		scored = append(scored, ScoredJob{Job: job, Similarity: sim})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	return scored
}
