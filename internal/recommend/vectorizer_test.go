package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillmatch/job-recommender/internal/catalog"
)

func TestVectorizerFitBuildsUnigramsAndBigrams(t *testing.T) {
	v := NewVectorizer(nil)

	v.Fit([]string{"java spring backend", "python django backend"})

	require.False(t, v.Empty())
	_, hasUnigram := v.vocab["java"]
	_, hasBigram := v.vocab["java spring"]
	assert.True(t, hasUnigram)
	assert.True(t, hasBigram)
	// "backend" appears in both of the two documents and is pruned by the
	// document-frequency ceiling.
	_, hasShared := v.vocab["backend"]
	assert.False(t, hasShared)
}

func TestVectorizerEmptyCorpusIsDegenerate(t *testing.T) {
	v := NewVectorizer(nil)

	v.Fit([]string{"", "", ""})

	assert.True(t, v.Empty())
	assert.Len(t, v.Transform("java spring"), 0)
}

func TestVectorizerSingleDocumentIsDegenerate(t *testing.T) {
	// With one document every term sits above the frequency ceiling, so the
	// vocabulary prunes to nothing and scoring falls back to zeroes.
	v := NewVectorizer(nil)

	v.Fit([]string{"java spring backend"})

	assert.True(t, v.Empty())
}

func TestTransformVectorsAreNormalized(t *testing.T) {
	v := NewVectorizer(nil)
	v.Fit([]string{"java spring api", "python django web"})

	vec := v.Transform("java spring api")

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	assert.InDelta(t, 1.0, norm, 1e-9)
}

func TestCosineIdenticalDocuments(t *testing.T) {
	v := NewVectorizer(nil)
	v.Fit([]string{"java spring api", "python django web"})

	a := v.Transform("java spring api")
	b := v.Transform("java spring api")
	c := v.Transform("python django web")

	assert.InDelta(t, 1.0, Cosine(a, b), 1e-9)
	assert.InDelta(t, 0.0, Cosine(a, c), 1e-9)
}

func TestRankBySimilarityDegenerateSpaceScoresZero(t *testing.T) {
	jobs := []catalog.JobPosting{{ID: "1"}, {ID: "2"}}

	ranked := RankBySimilarity(Vector{}, []Vector{{}, {}}, jobs)

	require.Len(t, ranked, 2)
	for i, r := range ranked {
		assert.Equal(t, 0.0, r.Similarity)
		assert.Equal(t, jobs[i].ID, r.Job.ID, "degenerate ranking must keep input order")
	}
}

func TestRankBySimilaritySortsDescendingStable(t *testing.T) {
	v := NewVectorizer(nil)
	v.Fit([]string{"java spring", "haskell lenses", "java spring boot extras"})

	jobs := []catalog.JobPosting{{ID: "weak"}, {ID: "none"}, {ID: "strong"}}
	vectors := []Vector{
		v.Transform("java unrelated"),
		v.Transform("haskell"),
		v.Transform("java spring"),
	}
	user := v.Transform("java spring")

	ranked := RankBySimilarity(user, vectors, jobs)

	require.Len(t, ranked, 3)
	assert.Equal(t, "strong", ranked[0].Job.ID)
	assert.True(t, ranked[0].Similarity >= ranked[1].Similarity)
	assert.True(t, ranked[1].Similarity >= ranked[2].Similarity)
}
