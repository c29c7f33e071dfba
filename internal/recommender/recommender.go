package recommender

import (
	"sort"

	"job-matcher/internal/corpus"
	"job-matcher/internal/extractor"
)

const defaultLimit = 10

// Recommend returns the skills most frequent across the corpus that the user
// does not already have, ordered by frequency descending. Ties break lexical
// ascending so repeated calls are deterministic. A non-positive limit falls
// back to the default of 10.
func Recommend(userSkills string, listings []corpus.JobListing, limit int) []string {
	if limit <= 0 {
		limit = defaultLimit
	}

	have := make(map[string]struct{})
	for _, s := range extractor.Split(userSkills) {
		have[s] = struct{}{}
	}

	counts := make(map[string]int)
	for _, l := range listings {
		for _, s := range extractor.Split(l.Skills) {
			counts[s]++
		}
	}

	missing := make([]string, 0, len(counts))
	for s := range counts {
		if _, ok := have[s]; ok {
			continue
		}
		missing = append(missing, s)
	}

	sort.Slice(missing, func(i, j int) bool {
		if counts[missing[i]] != counts[missing[j]] {
			return counts[missing[i]] > counts[missing[j]]
		}
		return missing[i] < missing[j]
	})

	if len(missing) > limit {
		missing = missing[:limit]
	}
	return missing
}
