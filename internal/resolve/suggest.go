package resolve

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Suggest ranks candidates by Levenshtein distance from the query and
// returns the closest few. It backs the "did you mean" hint on failed
// resolutions; an empty slice means nothing was close enough to offer.
func Suggest(query string, candidates []string, limit int) []string {
	if limit <= 0 || len(candidates) == 0 {
		return nil
	}

	needle := Normalize(query)

	type ranked struct {
		name     string
		distance int
	}
	scored := make([]ranked, 0, len(candidates))
	for _, candidate := range candidates {
		distance := fuzzy.LevenshteinDistance(needle, Normalize(candidate))
		scored = append(scored, ranked{name: candidate, distance: distance})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].distance != scored[j].distance {
			return scored[i].distance < scored[j].distance
		}
		return scored[i].name < scored[j].name
	})

	// A distance beyond half the query length is noise, not a suggestion.
	maxDistance := len(needle)/2 + 1

	var out []string
	for _, s := range scored {
		if s.distance > maxDistance {
			break
		}
		out = append(out, s.name)
		if len(out) == limit {
			break
		}
	}
	return out
}
