package certcatalog

import (
	"context"
	"log"
	"strings"
)

const (
	perSkillLimit = 3
	maxSkills     = 10
)

// Course is one certification entry discovered in the external catalog.
// Skill is set only on multi-skill searches and names the skill the entry
// was found for.
type Course struct {
	Title string
	URL   string
	Skill string
}

// CourseSearcher queries the external catalog for one skill.
type CourseSearcher interface {
	Search(ctx context.Context, skill string) ([]Course, error)
}

// Finder orchestrates per-skill catalog searches: caps per skill, tags
// multi-skill results with their originating skill and deduplicates the
// combined list on exact title, first occurrence winning.
type Finder struct {
	catalog CourseSearcher
	logger  *log.Logger
}

func NewFinder(catalog CourseSearcher, logger *log.Logger) *Finder {
	if logger == nil {
		logger = log.Default()
	}
	return &Finder{catalog: catalog, logger: logger}
}

// Find accepts either a single skill or a comma-separated list. A failing
// skill contributes zero entries and never aborts the rest.
func (f *Finder) Find(ctx context.Context, specialization string) []Course {
	if !strings.Contains(specialization, ",") {
		return f.searchOne(ctx, strings.TrimSpace(specialization), "")
	}

	skills := splitSkills(specialization)
	if len(skills) > maxSkills {
		skills = skills[:maxSkills]
	}

	combined := make([]Course, 0, len(skills)*perSkillLimit)
	for _, skill := range skills {
		combined = append(combined, f.searchOne(ctx, skill, skill)...)
	}
	return dedupeByTitle(combined)
}

func (f *Finder) searchOne(ctx context.Context, skill string, tag string) []Course {
	if skill == "" {
		return nil
	}

	courses, err := f.catalog.Search(ctx, skill)
	if err != nil {
		f.logger.Printf("catalog search failed skill=%q err=%v", skill, err)
		return nil
	}
	if len(courses) > perSkillLimit {
		courses = courses[:perSkillLimit]
	}
	if tag != "" {
		for i := range courses {
			courses[i].Skill = tag
		}
	}
	return courses
}

func splitSkills(specialization string) []string {
	parts := strings.Split(specialization, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Title identity is case-sensitive and untrimmed on purpose: two catalog
// entries rendering the same title are the same course.
func dedupeByTitle(courses []Course) []Course {
	seen := make(map[string]struct{}, len(courses))
	out := make([]Course, 0, len(courses))
	for _, c := range courses {
		if _, ok := seen[c.Title]; ok {
			continue
		}
		seen[c.Title] = struct{}{}
		out = append(out, c)
	}
	return out
}
