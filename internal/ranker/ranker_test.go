package ranker

import (
	"reflect"
	"testing"

	"job-matcher/internal/corpus"
)

func listings(skills ...string) []corpus.JobListing {
	out := make([]corpus.JobListing, 0, len(skills))
	for i, s := range skills {
		out = append(out, corpus.JobListing{ID: string(rune('a' + i)), Skills: s})
	}
	return out
}

func TestRank_OrdersByRelevance(t *testing.T) {
	in := listings("python, sql", "java", "python")

	got := Rank("python, sql", in)

	if len(got) != 3 {
		t.Fatalf("expected 3 listings, got %d", len(got))
	}
	if got[0].Skills != "python, sql" {
		t.Fatalf("expected exact match first, got %q", got[0].Skills)
	}
	if got[1].Skills != "python" {
		t.Fatalf("expected partial match second, got %q", got[1].Skills)
	}
	if got[2].Skills != "java" {
		t.Fatalf("expected non-match last, got %q", got[2].Skills)
	}
	if got[0].SimilarityScore <= got[1].SimilarityScore {
		t.Fatalf("scores not descending: %v vs %v", got[0].SimilarityScore, got[1].SimilarityScore)
	}
	if got[2].SimilarityScore > 1e-9 {
		t.Fatalf("expected near-zero score for java, got %v", got[2].SimilarityScore)
	}
}

func TestRank_StableForEqualScores(t *testing.T) {
	in := listings("java", "java", "java")
	got := Rank("python", in)

	ids := []string{got[0].ID, got[1].ID, got[2].ID}
	if !reflect.DeepEqual(ids, []string{"a", "b", "c"}) {
		t.Fatalf("equal scores must keep original order, got %v", ids)
	}
}

func TestRank_EmptyUserSkills(t *testing.T) {
	in := listings("python", "sql", "java")
	got := Rank("", in)

	for i, l := range got {
		if l.SimilarityScore != 0 {
			t.Fatalf("expected zero score, got %v", l.SimilarityScore)
		}
		if l.ID != in[i].ID {
			t.Fatalf("original order not preserved at %d", i)
		}
	}
}

func TestRank_EmptyCorpus(t *testing.T) {
	if got := Rank("python", nil); len(got) != 0 {
		t.Fatalf("expected empty result, got %v", got)
	}
}

func TestRank_Idempotent(t *testing.T) {
	in := listings("python, sql", "java", "python")
	first := Rank("python, sql", in)
	second := Rank("python, sql", first)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ranking is not idempotent")
	}
}

func TestRank_DoesNotMutateInput(t *testing.T) {
	in := listings("java", "python, sql")
	_ = Rank("python, sql", in)
	if in[0].Skills != "java" || in[0].SimilarityScore != 0 {
		t.Fatalf("input slice was mutated: %+v", in[0])
	}
}

func TestTokenize(t *testing.T) {
	got := tokenize("Node.js, CI/CD, R")
	if !reflect.DeepEqual(got, []string{"node", "js", "ci", "cd"}) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}

func TestTokenize_CountsRunesNotBytes(t *testing.T) {
	// A lone multibyte letter is still a one-character token and must be
	// dropped; a two-rune multibyte token survives.
	got := tokenize("é, ça")
	if !reflect.DeepEqual(got, []string{"ça"}) {
		t.Fatalf("unexpected tokens: %v", got)
	}
}
