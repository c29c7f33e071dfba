package ranker

import (
	"sort"

	"job-matcher/internal/corpus"
)

// Rank scores every listing against the user's comma-joined skill string and
// returns a new slice sorted by similarity descending. The vocabulary is
// rebuilt from scratch on every call, so a changing corpus never sees stale
// terms. Equal scores keep their original corpus order (stable sort), which
// also covers the degenerate empty-skill case: an all-zero user vector
// drives every similarity to 0 and the input order is preserved.
func Rank(userSkills string, listings []corpus.JobListing) []corpus.JobListing {
	if len(listings) == 0 {
		return listings
	}

	docs := make([]string, 0, len(listings)+1)
	docs = append(docs, userSkills)
	for _, l := range listings {
		docs = append(docs, l.Skills)
	}

	rows := fitTransform(docs)

	out := make([]corpus.JobListing, len(listings))
	copy(out, listings)
	for i := range out {
		out[i].SimilarityScore = dot(rows[0], rows[i+1])
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].SimilarityScore > out[j].SimilarityScore
	})
	return out
}
