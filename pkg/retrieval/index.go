package retrieval

import (
	"sort"
	"strings"

	"voz-orientador-be/internal/model"
)

// Hit is one ranked search result.
type Hit struct {
	Page  model.DocumentPage
	Score float64
}

// Index is one immutable generation of the similarity index: the ordered
// corpus pages, the fitted vectorizer and one normalized weight vector per
// page. It is never mutated after Build; rebuilds produce a whole new Index
// that replaces this one behind an atomic pointer, so concurrent searches
// need no locking.
type Index struct {
	pages []model.DocumentPage
	vecs  []map[int]float64
	vec   *Vectorizer
}

// Build fits a vector space over the given pages. Building from zero pages
// (or pages with no usable tokens) yields the empty-index sentinel: a valid
// Index whose every search returns no hits.
func Build(pages []model.DocumentPage) *Index {
	idx := &Index{
		pages: pages,
		vec:   NewVectorizer(),
	}
	if len(pages) == 0 {
		return idx
	}
	texts := make([]string, len(pages))
	for i, p := range pages {
		texts[i] = p.Text
	}
	idx.vec.Fit(texts)
	if !idx.vec.Fitted() {
		return idx
	}
	idx.vecs = make([]map[int]float64, len(pages))
	for i, text := range texts {
		idx.vecs[i] = idx.vec.Transform(text)
	}
	return idx
}

// Len returns the number of indexed pages.
func (idx *Index) Len() int { return len(idx.pages) }

// VocabSize returns the number of terms in the fitted vocabulary.
func (idx *Index) VocabSize() int { return idx.vec.Dimension() }

// Empty reports whether this generation is the empty sentinel.
func (idx *Index) Empty() bool { return !idx.vec.Fitted() }

// Search ranks pages by cosine similarity against query and returns at most
// topK hits with strictly positive scores, descending. Ties keep corpus
// insertion order. A blank query or an empty index yields no hits, never an
// error.
func (idx *Index) Search(query string, topK int) []Hit {
	if idx.Empty() || topK <= 0 || strings.TrimSpace(query) == "" {
		return nil
	}
	qv := idx.vec.Transform(query)
	if qv == nil {
		return nil
	}

	hits := make([]Hit, 0, len(idx.pages))
	for i, dv := range idx.vecs {
		score := dot(qv, dv)
		if score <= 0 {
			continue
		}
		hits = append(hits, Hit{Page: idx.pages[i], Score: score})
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].Score > hits[j].Score })
	if len(hits) > topK {
		hits = hits[:topK]
	}
	return hits
}

// dot is the linear kernel between two sparse vectors; both sides are already
// L2-normalized, so this is cosine similarity.
func dot(a, b map[int]float64) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	sum := 0.0
	for idx, w := range a {
		if bw, ok := b[idx]; ok {
			sum += w * bw
		}
	}
	return sum
}
