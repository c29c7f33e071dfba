package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"job-matcher/internal/certcatalog"
)

type CertificationUsecase interface {
	FindCertifications(ctx context.Context, specialization string) ([]certcatalog.Course, error)
}

type CourseFinder interface {
	Find(ctx context.Context, specialization string) []certcatalog.Course
}

type Certification struct {
	finder CourseFinder
	cache  ResultCache
	ttl    time.Duration
	logger *log.Logger
}

func NewCertificationUsecase(finder CourseFinder, cache ResultCache, ttl time.Duration, logger *log.Logger) *Certification {
	return &Certification{finder: finder, cache: cache, ttl: ttl, logger: logger}
}

// FindCertifications runs the catalog search for the given specialization.
// Results are cached briefly because the catalog page is slow to scrape; the
// cache is best-effort and a miss just means a fresh search.
func (u *Certification) FindCertifications(ctx context.Context, specialization string) ([]certcatalog.Course, error) {
	specialization = strings.TrimSpace(specialization)
	if specialization == "" {
		return nil, ErrInvalidInput
	}

	key := certificationsCacheKey(specialization)
	if u.cache != nil {
		var cached []certcatalog.Course
		hit, err := u.cache.GetJSON(ctx, key, &cached)
		if err == nil && hit {
			if u.logger != nil {
				u.logger.Printf("[Certs] Cache HIT: %s", key)
			}
			return cached, nil
		}
	}

	courses := u.finder.Find(ctx, specialization)

	if u.cache != nil && len(courses) > 0 {
		if err := u.cache.SetJSON(ctx, key, courses, u.ttl); err != nil && u.logger != nil {
			u.logger.Printf("[Certs] Cache SET failed: %v", err)
		}
	}

	return courses, nil
}

func certificationsCacheKey(specialization string) string {
	norm := strings.ToLower(specialization)
	norm = strings.Join(strings.Fields(norm), " ")
	return fmt.Sprintf("certs:%s", norm)
}
