// Package interview scores spoken yes/no answers against the fixed question
// bank and turns the resulting tallies into career recommendations.
package interview

import (
	"sort"
	"strings"

	"voz-orientador-be/internal/constant"
	"voz-orientador-be/internal/model"
)

// Score classifies a transcript as an affirmative (true) or negative (false)
// answer. Affirmative tokens are checked before negative ones; a transcript
// matching neither set counts as a "no". That default is deliberate policy:
// an unrecognized mumble should not inflate any category tally.
func Score(transcript string) bool {
	t := strings.ToLower(transcript)
	for _, tok := range constant.YesTokens {
		if strings.Contains(t, tok) {
			return true
		}
	}
	for _, tok := range constant.NoTokens {
		if strings.Contains(t, tok) {
			return false
		}
	}
	return false
}

// Recommend returns every category tied at the maximum tally, truncated to
// max(limit, tieCount): top ties are never dropped even when they exceed the
// nominal limit. Output follows the fixed category-bank order, so permuting
// the map yields identical results. An empty score map yields nil.
func Recommend(scores map[model.Category]int, limit int) []model.Category {
	if len(scores) == 0 {
		return nil
	}
	best := 0
	first := true
	for _, v := range scores {
		if first || v > best {
			best = v
			first = false
		}
	}

	var top []model.Category
	for _, c := range orderedKeys(scores) {
		if scores[c] == best {
			top = append(top, c)
		}
	}

	// Truncate to max(limit, tieCount). The tie set itself is never cut,
	// so in practice the whole tie set is returned.
	if n := maxInt(limit, len(top)); len(top) > n {
		top = top[:n]
	}
	return top
}

// orderedKeys lists the score-map keys in category-bank order, with any
// categories outside the known bank sorted after it.
func orderedKeys(scores map[model.Category]int) []model.Category {
	keys := make([]model.Category, 0, len(scores))
	known := make(map[model.Category]struct{}, len(model.Categories))
	for _, c := range model.Categories {
		known[c] = struct{}{}
		if _, ok := scores[c]; ok {
			keys = append(keys, c)
		}
	}
	var extra []model.Category
	for c := range scores {
		if _, ok := known[c]; !ok {
			extra = append(extra, c)
		}
	}
	sort.Slice(extra, func(i, j int) bool { return extra[i] < extra[j] })
	return append(keys, extra...)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
