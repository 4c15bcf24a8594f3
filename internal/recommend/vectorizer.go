package recommend

import (
	"math"
	"sort"
	"strings"
)

const (
	// maxFeatures caps the vocabulary size; the most frequent terms win.
	maxFeatures = 5000
	// maxDocShare drops terms present in more than this share of documents.
	maxDocShare = 0.95
)

// Vector is a dense term-weight vector over a fitted vocabulary. Vectors are
// L2-normalized at transform time, so cosine similarity reduces to a dot
// product.
type Vector []float64

// Vectorizer fits an IDF-weighted term-frequency model over a job corpus and
// projects documents into the resulting space. A Vectorizer is a per-request
// value: it is fitted on one request's job pool and discarded, never shared.
type Vectorizer struct {
	stopwords map[string]struct{}
	vocab     map[string]int
	idf       []float64
}

func NewVectorizer(stopwords []string) *Vectorizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Vectorizer{stopwords: set, vocab: map[string]int{}}
}

// Empty reports whether fitting produced no vocabulary, either because every
// document was empty or because pruning removed every term. Downstream
// scoring treats an empty space as uniform zero similarity.
func (v *Vectorizer) Empty() bool { return len(v.vocab) == 0 }

// Dimensions returns the size of the fitted vocabulary.
func (v *Vectorizer) Dimensions() int { return len(v.vocab) }

// Fit builds the vocabulary and IDF weights from the corpus. Terms are
// unigrams and bigrams of the pre-normalized documents; terms above the
// document-frequency ceiling are pruned and the vocabulary is capped at
// maxFeatures by total frequency.
func (v *Vectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	totalFreq := make(map[string]int)

	for _, doc := range docs {
		terms := v.terms(doc)
		seen := make(map[string]struct{}, len(terms))
		for _, t := range terms {
			totalFreq[t]++
			if _, ok := seen[t]; !ok {
				seen[t] = struct{}{}
				docFreq[t]++
			}
		}
	}

	maxDF := maxDocShare * float64(len(docs))
	kept := make([]string, 0, len(docFreq))
	for term, df := range docFreq {
		if float64(df) > maxDF {
			continue
		}
		kept = append(kept, term)
	}

	if len(kept) > maxFeatures {
		sort.Slice(kept, func(i, j int) bool {
			if totalFreq[kept[i]] != totalFreq[kept[j]] {
				return totalFreq[kept[i]] > totalFreq[kept[j]]
			}
			return kept[i] < kept[j]
		})
		kept = kept[:maxFeatures]
	}
	sort.Strings(kept)

	v.vocab = make(map[string]int, len(kept))
	v.idf = make([]float64, len(kept))
	n := float64(len(docs))
	for i, term := range kept {
		v.vocab[term] = i
		// Smoothed IDF, matching the conventional formulation.
		v.idf[i] = math.Log((1+n)/(1+float64(docFreq[term]))) + 1
	}
}

// Transform projects a pre-normalized document into the fitted space. With an
// empty space it returns a zero-length vector.
func (v *Vectorizer) Transform(doc string) Vector {
	vec := make(Vector, len(v.vocab))
	if len(v.vocab) == 0 {
		return vec
	}

	for _, term := range v.terms(doc) {
		if idx, ok := v.vocab[term]; ok {
			vec[idx] += v.idf[idx]
		}
	}

	var norm float64
	for _, w := range vec {
		norm += w * w
	}
	if norm > 0 {
		norm = math.Sqrt(norm)
		for i := range vec {
			vec[i] /= norm
		}
	}

	return vec
}

// terms tokenizes a pre-normalized document into unigrams and bigrams,
// filtering stopwords once more in case the document bypassed normalization.
func (v *Vectorizer) terms(doc string) []string {
	fields := strings.Fields(doc)
	tokens := fields[:0]
	for _, f := range fields {
		if _, stop := v.stopwords[f]; stop {
			continue
		}
		tokens = append(tokens, f)
	}

	terms := make([]string, 0, len(tokens)*2)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
