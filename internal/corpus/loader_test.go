package corpus

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

type fakeExtractor struct {
	joined string
	calls  int
}

func (f *fakeExtractor) ExtractJoined(context.Context, string) string {
	f.calls++
	return f.joined
}

func TestLoad_MissingFileSynthesizesSample(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	src := NewFileSource(path, nil, nil)

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 sample rows, got %d", len(got))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("sample corpus not persisted: %v", err)
	}

	// Second load must read the written file and see the same rows.
	again, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err on reload: %v", err)
	}
	if len(again) != 3 || again[0].Title != got[0].Title {
		t.Fatalf("reload mismatch: %+v", again)
	}
}

func TestLoad_BackfillsMissingSkills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	csv := "id,title,company,location,description\n" +
		"1,Engineer,Acme,Remote,python and sql work\n" +
		"2,Analyst,Beta,NY,reporting\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{joined: "python, sql"}
	src := NewFileSource(path, ext, nil)

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(got))
	}
	for _, l := range got {
		if l.Skills != "python, sql" {
			t.Fatalf("skills not backfilled: %+v", l)
		}
	}
	if ext.calls != 2 {
		t.Fatalf("expected extractor per row, got %d calls", ext.calls)
	}
}

func TestLoad_KeepsExistingSkills(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	csv := "id,title,company,location,description,skills\n" +
		"1,Engineer,Acme,Remote,desc,\"go, docker\"\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	ext := &fakeExtractor{joined: "wrong"}
	src := NewFileSource(path, ext, nil)

	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if got[0].Skills != "go, docker" {
		t.Fatalf("existing skills overwritten: %q", got[0].Skills)
	}
	if ext.calls != 0 {
		t.Fatalf("extractor must not run on populated rows")
	}
}

func TestLoad_SkipsBadRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	csv := "id,title,company,location,description\n" +
		"1,Engineer,Acme,Remote,fine\n" +
		"2,\"broken,row\n" +
		"3,Analyst,Beta,NY,also fine\n"
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path, nil, nil)
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 && len(got) != 2 {
		t.Fatalf("bad row handling broke the load: %+v", got)
	}
	if got[0].ID != "1" {
		t.Fatalf("first good row missing: %+v", got)
	}
}

func TestLoad_MissingRequiredColumn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	if err := os.WriteFile(path, []byte("id,title\n1,Engineer\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	src := NewFileSource(path, nil, nil)
	if _, err := src.Load(context.Background()); err == nil {
		t.Fatalf("expected header validation error")
	}
}

func TestWriteCSV_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "corpus.csv")
	in := []JobListing{{
		ID:          "42",
		Title:       "Engineer, Backend",
		Company:     "Acme",
		Location:    "Remote",
		Description: "desc with \"quotes\"",
		Skills:      "go, sql",
		Providers:   `[{"jobProvider":"LinkedIn","url":"https://l/1"}]`,
	}}
	if err := WriteCSV(path, in); err != nil {
		t.Fatalf("write: %v", err)
	}

	src := NewFileSource(path, nil, nil)
	got, err := src.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected 1 row, got %d", len(got))
	}
	if got[0] != in[0] {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got[0], in[0])
	}
}
