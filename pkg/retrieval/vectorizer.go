package retrieval

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

// Vectorizer is a TF-IDF vectorizer over unigrams and adjacent-word bigrams.
// Fit builds the vocabulary and IDF weights from a corpus; Transform projects
// any text into the fitted space without refitting.
type Vectorizer struct {
	vocabulary   map[string]int
	idf          []float64
	fitted       bool
	tokenPattern *regexp.Regexp
}

// maxDocFreq is the document-frequency ceiling: terms present in more than
// this share of the corpus are treated as boilerplate and excluded from the
// vocabulary. There is no floor on minimum occurrence.
const maxDocFreq = 0.9

func NewVectorizer() *Vectorizer {
	return &Vectorizer{
		vocabulary:   make(map[string]int),
		tokenPattern: regexp.MustCompile(`[\p{L}\p{N}]+`),
	}
}

// Fitted reports whether Fit has been run on a non-empty corpus.
func (v *Vectorizer) Fitted() bool { return v.fitted }

// Dimension returns the vocabulary size of the fitted space.
func (v *Vectorizer) Dimension() int { return len(v.idf) }

// Fit builds the vocabulary and smoothed IDF values from the corpus. Fitting
// an empty corpus (or one with no tokens) leaves the vectorizer unfitted,
// which downstream code treats as the empty-index sentinel.
func (v *Vectorizer) Fit(corpus []string) {
	if len(corpus) == 0 {
		return
	}
	df := make(map[string]int)
	for _, text := range corpus {
		seen := make(map[string]struct{})
		for _, term := range v.terms(text) {
			if _, ok := seen[term]; ok {
				continue
			}
			seen[term] = struct{}{}
			df[term]++
		}
	}

	n := len(corpus)
	ceiling := n
	if n > 1 {
		ceiling = int(maxDocFreq * float64(n))
	}

	// Insertion order of the vocabulary does not affect scores, but a
	// sorted ordering keeps generations byte-for-byte reproducible.
	terms := make([]string, 0, len(df))
	for term, freq := range df {
		if freq > ceiling {
			continue
		}
		terms = append(terms, term)
	}
	if len(terms) == 0 {
		return
	}
	sort.Strings(terms)

	v.vocabulary = make(map[string]int, len(terms))
	v.idf = make([]float64, len(terms))
	for i, term := range terms {
		v.vocabulary[term] = i
		v.idf[i] = math.Log((1+float64(n))/(1+float64(df[term]))) + 1.0
	}
	v.fitted = true
}

// Transform computes the L2-normalized TF-IDF vector of text in the fitted
// space, as a sparse index→weight map. Unknown terms are ignored. Returns nil
// when the vectorizer is unfitted or the text shares no terms with the
// vocabulary.
func (v *Vectorizer) Transform(text string) map[int]float64 {
	if !v.fitted {
		return nil
	}
	tf := make(map[int]int)
	for _, term := range v.terms(text) {
		if idx, ok := v.vocabulary[term]; ok {
			tf[idx]++
		}
	}
	if len(tf) == 0 {
		return nil
	}
	vec := make(map[int]float64, len(tf))
	norm := 0.0
	for idx, count := range tf {
		w := float64(count) * v.idf[idx]
		vec[idx] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// terms tokenizes text into lowercase unigrams plus adjacent-word bigrams.
func (v *Vectorizer) terms(text string) []string {
	tokens := v.tokenPattern.FindAllString(strings.ToLower(text), -1)
	if len(tokens) == 0 {
		return nil
	}
	terms := make([]string, 0, 2*len(tokens)-1)
	terms = append(terms, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		terms = append(terms, tokens[i]+" "+tokens[i+1])
	}
	return terms
}
