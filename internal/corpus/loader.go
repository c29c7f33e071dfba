package corpus

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
)

// SkillExtractor backfills the Skills column from a row's description when
// the corpus file does not carry one.
type SkillExtractor interface {
	ExtractJoined(ctx context.Context, text string) string
}

var ErrEmptyCorpus = errors.New("corpus file is empty")

// FileSource loads the job corpus from a CSV file. A missing file is
// replaced by a small deterministic sample corpus which is also written back
// to the expected path, so later runs see the same rows.
type FileSource struct {
	path      string
	extractor SkillExtractor
	logger    *log.Logger
}

func NewFileSource(path string, extractor SkillExtractor, logger *log.Logger) *FileSource {
	if logger == nil {
		logger = log.Default()
	}
	return &FileSource{path: strings.TrimSpace(path), extractor: extractor, logger: logger}
}

func (s *FileSource) Path() string {
	return s.path
}

func (s *FileSource) Load(ctx context.Context) ([]JobListing, error) {
	if s == nil || s.path == "" {
		return nil, errors.New("corpus path not configured")
	}

	if _, err := os.Stat(s.path); errors.Is(err, os.ErrNotExist) {
		s.logger.Printf("corpus file missing path=%s, synthesizing sample corpus", s.path)
		sample := SampleListings()
		if werr := WriteCSV(s.path, sample); werr != nil {
			s.logger.Printf("corpus sample write failed path=%s err=%v", s.path, werr)
		}
		return sample, nil
	}

	f, err := os.Open(s.path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	listings, err := readListings(f, s.logger)
	if err != nil {
		return nil, err
	}

	// Backfill the skills column row by row when the file has none.
	for i := range listings {
		if strings.TrimSpace(listings[i].Skills) != "" {
			continue
		}
		if s.extractor == nil {
			continue
		}
		listings[i].Skills = s.extractor.ExtractJoined(ctx, listings[i].Description)
	}

	return listings, nil
}

func readListings(r io.Reader, logger *log.Logger) ([]JobListing, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, ErrEmptyCorpus
	}
	if err != nil {
		return nil, err
	}

	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"id", "title", "company", "location", "description"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("corpus header missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		idx, ok := col[name]
		if !ok || idx >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[idx])
	}

	listings := make([]JobListing, 0, 64)
	line := 1
	for {
		rec, err := cr.Read()
		line++
		if err == io.EOF {
			break
		}
		if err != nil {
			// Bad row, keep going with the rest of the file.
			if logger != nil {
				logger.Printf("corpus row skipped line=%d err=%v", line, err)
			}
			continue
		}
		listings = append(listings, JobListing{
			ID:             field(rec, "id"),
			Title:          field(rec, "title"),
			Company:        field(rec, "company"),
			Location:       field(rec, "location"),
			Description:    field(rec, "description"),
			Skills:         field(rec, "skills"),
			EmploymentType: field(rec, "employment_type"),
			ApplyLink:      field(rec, "apply_link"),
			Logo:           field(rec, "logo"),
			Providers:      field(rec, "providers"),
		})
	}

	return listings, nil
}

// WriteCSV rewrites the corpus file atomically via a temp file in the same
// directory.
func WriteCSV(path string, listings []JobListing) error {
	path = strings.TrimSpace(path)
	if path == "" {
		return errors.New("empty corpus path")
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".corpus-*.csv")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	w := csv.NewWriter(tmp)
	if err := w.Write([]string{"id", "title", "company", "location", "description", "skills", "employment_type", "apply_link", "logo", "providers"}); err != nil {
		_ = tmp.Close()
		return err
	}
	for _, l := range listings {
		rec := []string{l.ID, l.Title, l.Company, l.Location, l.Description, l.Skills, l.EmploymentType, l.ApplyLink, l.Logo, l.Providers}
		if err := w.Write(rec); err != nil {
			_ = tmp.Close()
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}

// SampleListings is the fallback corpus used when no corpus file exists yet.
func SampleListings() []JobListing {
	return []JobListing{
		{
			ID:          "1",
			Title:       "Software Engineer",
			Company:     "Tech Co",
			Location:    "San Francisco",
			Description: "Software engineering role",
			Skills:      "python, javascript",
		},
		{
			ID:          "2",
			Title:       "Data Scientist",
			Company:     "Data Inc",
			Location:    "New York",
			Description: "Data science position",
			Skills:      "python, sql, machine learning",
		},
		{
			ID:          "3",
			Title:       "Web Developer",
			Company:     "Web LLC",
			Location:    "Remote",
			Description: "Web development job",
			Skills:      "html, css, javascript, react",
		},
	}
}
