package recommend

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball"
)

// Normalizer prepares free text for vectorization: lowercase, strip
// punctuation, drop short tokens and stopwords, and reduce the remaining
// tokens to their root form. Stemming can be switched off, in which case the
// normalizer degrades to length and stopword filtering only.
type Normalizer struct {
	stopwords map[string]struct{}
	stem      bool
}

// minTokenLen is exclusive: tokens of this length or shorter are dropped.
const minTokenLen = 2

func NewNormalizer(stopwords []string, stem bool) *Normalizer {
	set := make(map[string]struct{}, len(stopwords))
	for _, w := range stopwords {
		set[strings.ToLower(w)] = struct{}{}
	}
	return &Normalizer{stopwords: set, stem: stem}
}

// Normalize returns the space-joined surviving tokens of text. It never
// fails: a token the stemmer cannot handle is kept verbatim, and input with
// no surviving tokens yields the empty string.
func (n *Normalizer) Normalize(text string) string {
	if text == "" {
		return ""
	}

	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			return unicode.ToLower(r)
		}
		return ' '
	}, text)

	var tokens []string
	for _, tok := range strings.Fields(cleaned) {
		if len(tok) <= minTokenLen {
			continue
		}
		if _, stop := n.stopwords[tok]; stop {
			continue
		}
		if n.stem {
			if stemmed, err := snowball.Stem(tok, "english", false); err == nil && stemmed != "" {
				tok = stemmed
			}
		}
		tokens = append(tokens, tok)
	}

	return strings.Join(tokens, " ")
}

// IsStopword reports whether the lowercased token is in the normalizer's
// stopword list.
func (n *Normalizer) IsStopword(token string) bool {
	_, ok := n.stopwords[strings.ToLower(token)]
	return ok
}
