package extractor

import (
	"context"
	"log"
	"strings"
	"time"
)

// Extractor turns raw text into a normalized, deduplicated skill set by
// walking its strategy chain in order and taking the first non-empty result.
type Extractor struct {
	strategies []Strategy
	logger     *log.Logger
}

func New(logger *log.Logger, strategies ...Strategy) *Extractor {
	if logger == nil {
		logger = log.Default()
	}
	if len(strategies) == 0 {
		strategies = []Strategy{NewKeywordStrategy(nil), DefaultStrategy{}}
	}
	return &Extractor{strategies: strategies, logger: logger}
}

// NewDefault builds the shipped chain: remote model, keyword scan, fixed
// default set.
func NewDefault(modelBaseURL string, modelTimeout time.Duration, logger *log.Logger) *Extractor {
	return New(logger,
		NewModelStrategy(modelBaseURL, modelTimeout),
		NewKeywordStrategy(nil),
		DefaultStrategy{},
	)
}

// Extract never returns an empty slice: the default strategy terminates the
// chain. Tokens are lowercase, trimmed and deduplicated, kept in first-seen
// order.
func (e *Extractor) Extract(ctx context.Context, text string) []string {
	for _, s := range e.strategies {
		raw, err := s.Extract(ctx, text)
		if err != nil {
			e.logger.Printf("skill extraction strategy=%s failed, falling through: %v", s.Name(), err)
			continue
		}
		skills := Normalize(raw)
		if len(skills) == 0 {
			continue
		}
		return skills
	}
	return Normalize(DefaultSkills)
}

// ExtractJoined returns the comma-and-space-joined wire form.
func (e *Extractor) ExtractJoined(ctx context.Context, text string) string {
	return Join(e.Extract(ctx, text))
}

// Normalize lowercases, trims and deduplicates tokens, dropping empties.
func Normalize(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// Join produces the canonical wire form of a skill set.
func Join(skills []string) string {
	return strings.Join(skills, ", ")
}

// Split is the inverse of Join; it tolerates stray whitespace around commas.
func Split(joined string) []string {
	if strings.TrimSpace(joined) == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	return Normalize(parts)
}
