package extractor

import (
	"context"
	"strings"
)

// Strategy is one way of pulling skill tokens out of free text. Strategies
// are tried in order until one yields a non-empty result.
type Strategy interface {
	Name() string
	Extract(ctx context.Context, text string) ([]string, error)
}

// KeywordStrategy scans the reference vocabulary and reports every entry
// whose exact substring appears in the text, case-insensitively. No word
// boundary checking is done on purpose; the vocabulary avoids entries short
// enough to make that a problem.
type KeywordStrategy struct {
	vocabulary []string
}

func NewKeywordStrategy(vocabulary []string) *KeywordStrategy {
	if len(vocabulary) == 0 {
		vocabulary = ReferenceVocabulary
	}
	return &KeywordStrategy{vocabulary: vocabulary}
}

func (s *KeywordStrategy) Name() string { return "keyword" }

func (s *KeywordStrategy) Extract(_ context.Context, text string) ([]string, error) {
	lower := strings.ToLower(text)
	found := make([]string, 0, 16)
	for _, skill := range s.vocabulary {
		if strings.Contains(lower, skill) {
			found = append(found, skill)
		}
	}
	return found, nil
}

// DefaultStrategy always yields the fixed default set. It terminates the
// chain so extraction can never come back empty.
type DefaultStrategy struct{}

func (DefaultStrategy) Name() string { return "default" }

func (DefaultStrategy) Extract(_ context.Context, _ string) ([]string, error) {
	out := make([]string, len(DefaultSkills))
	copy(out, DefaultSkills)
	return out, nil
}
