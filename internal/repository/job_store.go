package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"job-matcher/internal/corpus"
	"job-matcher/internal/database"

	"github.com/google/uuid"
)

// JobUpsert is one fetched job headed for the jobs table. ExternalID is the
// paging API's identifier and the conflict key.
type JobUpsert struct {
	ExternalID     string
	Title          string
	Company        string
	Location       string
	Description    string
	Skills         string
	EmploymentType string
	ApplyLink      string
	Logo           string
	Providers      string
}

type JobStore interface {
	Upsert(ctx context.Context, job JobUpsert) error
	ListListings(ctx context.Context, limit int) ([]corpus.JobListing, error)
}

type PostgresJobStore struct {
	db database.DB
}

func NewPostgresJobStore(db database.DB) *PostgresJobStore {
	return &PostgresJobStore{db: db}
}

func (s *PostgresJobStore) Upsert(ctx context.Context, job JobUpsert) error {
	if s == nil || s.db == nil {
		return fmt.Errorf("nil store/db")
	}
	externalID := strings.TrimSpace(job.ExternalID)
	if externalID == "" {
		return fmt.Errorf("empty external_id")
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO jobs (
			id, external_id, title, company, location, description,
			skills, employment_type, apply_link, logo, providers, fetched_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (external_id) DO UPDATE SET
			title = COALESCE(EXCLUDED.title, jobs.title),
			company = COALESCE(EXCLUDED.company, jobs.company),
			location = COALESCE(EXCLUDED.location, jobs.location),
			description = COALESCE(EXCLUDED.description, jobs.description),
			skills = COALESCE(EXCLUDED.skills, jobs.skills),
			employment_type = COALESCE(EXCLUDED.employment_type, jobs.employment_type),
			apply_link = COALESCE(EXCLUDED.apply_link, jobs.apply_link),
			logo = COALESCE(EXCLUDED.logo, jobs.logo),
			providers = COALESCE(EXCLUDED.providers, jobs.providers),
			fetched_at = EXCLUDED.fetched_at`,
		uuid.New(),
		externalID,
		nullableText(job.Title),
		nullableText(job.Company),
		nullableText(job.Location),
		nullableText(job.Description),
		nullableText(job.Skills),
		nullableText(job.EmploymentType),
		nullableText(job.ApplyLink),
		nullableText(job.Logo),
		nullableText(job.Providers),
		time.Now().UTC(),
	)
	return err
}

func (s *PostgresJobStore) ListListings(ctx context.Context, limit int) ([]corpus.JobListing, error) {
	if s == nil || s.db == nil {
		return nil, fmt.Errorf("nil store/db")
	}
	if limit <= 0 {
		limit = 500
	}

	rows, err := s.db.Query(ctx,
		`SELECT external_id,
			COALESCE(title,''), COALESCE(company,''), COALESCE(location,''),
			COALESCE(description,''), COALESCE(skills,''), COALESCE(employment_type,''),
			COALESCE(apply_link,''), COALESCE(logo,''), COALESCE(providers,'')
		FROM jobs ORDER BY fetched_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]corpus.JobListing, 0, limit)
	for rows.Next() {
		var l corpus.JobListing
		if err := rows.Scan(
			&l.ID, &l.Title, &l.Company, &l.Location, &l.Description,
			&l.Skills, &l.EmploymentType, &l.ApplyLink, &l.Logo, &l.Providers,
		); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func nullableText(s string) any {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return s
}
