package certcatalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func docFrom(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse html: %v", err)
	}
	return doc
}

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	if err != nil {
		t.Fatalf("parse url: %v", err)
	}
	return u
}

func TestParseCourses_PrimarySelector(t *testing.T) {
	html := `<html><body>
		<a class="cds-CommonCard-titleLink" href="/learn/python"><h3>Python for Everybody</h3></a>
		<a href="/learn/other">Other Course</a>
	</body></html>`

	got := parseCourses(docFrom(t, html), mustParse(t, "https://catalog.example"))
	if len(got) != 1 {
		t.Fatalf("primary selector must win, got %+v", got)
	}
	if got[0].Title != "Python for Everybody" {
		t.Fatalf("unexpected title %q", got[0].Title)
	}
	if got[0].URL != "https://catalog.example/learn/python" {
		t.Fatalf("relative href not resolved: %q", got[0].URL)
	}
}

func TestParseCourses_ClassHeuristicFallback(t *testing.T) {
	html := `<html><body>
		<a class="xyz-CommonCard-titleLink-v2" href="/learn/sql" aria-label="SQL Basics"></a>
	</body></html>`

	got := parseCourses(docFrom(t, html), mustParse(t, "https://catalog.example"))
	if len(got) != 1 || got[0].Title != "SQL Basics" {
		t.Fatalf("class heuristic failed: %+v", got)
	}
}

func TestParseCourses_LearnPathFallback(t *testing.T) {
	html := `<html><body>
		<a href="https://catalog.example/learn/go">Go Fundamentals</a>
		<a href="/pricing">Pricing</a>
	</body></html>`

	got := parseCourses(docFrom(t, html), mustParse(t, "https://catalog.example"))
	if len(got) != 1 || got[0].Title != "Go Fundamentals" {
		t.Fatalf("learn-path fallback failed: %+v", got)
	}
	if got[0].URL != "https://catalog.example/learn/go" {
		t.Fatalf("absolute href must pass through: %q", got[0].URL)
	}
}

func TestParseCourses_NoResults(t *testing.T) {
	if got := parseCourses(docFrom(t, "<html><body><p>nothing</p></body></html>"), mustParse(t, "https://catalog.example")); got != nil {
		t.Fatalf("expected nil, got %+v", got)
	}
}

func TestCatalogClient_SearchAgainstServer(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search" {
			http.NotFound(w, r)
			return
		}
		if q := r.URL.Query().Get("query"); q != "python" {
			t.Errorf("unexpected query %q", q)
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<html><body>
			<a class="cds-CommonCard-titleLink" href="/learn/python"><h3>Python for Everybody</h3></a>
			<a class="cds-CommonCard-titleLink" href="/learn/python-2"><h3>Advanced Python</h3></a>
		</body></html>`))
	}))
	defer srv.Close()

	c := NewCatalogClient(srv.URL, nil, nil)
	got, err := c.Search(context.Background(), "python")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 courses, got %+v", got)
	}
	if !strings.HasPrefix(got[0].URL, srv.URL) {
		t.Fatalf("URL not resolved against catalog base: %q", got[0].URL)
	}
}

type fakeRenderer struct {
	html string
	err  error
}

func (f fakeRenderer) Render(context.Context, string) (string, error) {
	return f.html, f.err
}

func TestCatalogClient_HeadlessFallback(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<html><body><div>hydrated client-side</div></body></html>"))
	}))
	defer srv.Close()

	rendered := `<html><body><a class="cds-CommonCard-titleLink" href="/learn/ml"><h3>Machine Learning</h3></a></body></html>`
	c := NewCatalogClient(srv.URL, fakeRenderer{html: rendered}, nil)

	got, err := c.Search(context.Background(), "machine learning")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Machine Learning" {
		t.Fatalf("headless fallback failed: %+v", got)
	}
}

func TestCatalogClient_EmptySkill(t *testing.T) {
	c := NewCatalogClient("https://catalog.example", nil, nil)
	got, err := c.Search(context.Background(), "  ")
	if err != nil || got != nil {
		t.Fatalf("expected nil/nil for blank skill, got %v/%v", got, err)
	}
}
