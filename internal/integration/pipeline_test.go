package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"job-matcher/internal/corpus"
	"job-matcher/internal/delivery/http/handler"
	"job-matcher/internal/delivery/http/middleware"
	"job-matcher/internal/delivery/http/routes"
	v1 "job-matcher/internal/delivery/http/routes/v1"
	"job-matcher/internal/extractor"
	"job-matcher/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type semanticResponse struct {
	Status  int             `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	csvPath := filepath.Join(t.TempDir(), "corpus.csv")
	raw := "id,title,company,location,description,skills\n" +
		"1,Backend Engineer,Acme,Remote,go services,\"python, sql\"\n" +
		"2,Frontend Dev,Beta,NY,web ui,\"javascript, react\"\n" +
		"3,DBA,Gamma,Remote,databases,\"sql, postgresql\"\n"
	if err := os.WriteFile(csvPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	ext := extractor.NewDefault("", 0, nil)
	source := corpus.NewFileSource(csvPath, ext, nil)

	app := fiber.New()
	app.Use(middleware.NewErrorMiddleware(nil).Middleware())

	registry := routes.NewRegistry(v1.Handlers{
		Skill: handler.NewSkillHandler(
			usecase.NewSkillExtractionUsecase(ext),
			usecase.NewSkillRecommendationUsecase(source, nil),
		),
		Job: handler.NewJobHandler(
			usecase.NewJobRecommendationUsecase(source, nil),
			usecase.NewJobLinksUsecase(source, nil),
			nil,
		),
	})
	registry.Register(app)

	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) semanticResponse {
	t.Helper()

	b, err := json.Marshal(body)
	if err != nil {
		t.Fatal(err)
	}
	req := httptest.NewRequest("POST", path, bytes.NewReader(b))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer resp.Body.Close()

	rb, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatal(err)
	}
	var out semanticResponse
	if err := json.Unmarshal(rb, &out); err != nil {
		t.Fatalf("bad envelope %q: %v", rb, err)
	}
	return out
}

func TestPipeline_ExtractRankRecommend(t *testing.T) {
	app := newTestApp(t)

	// Extract skills from resume text.
	extractRes := postJSON(t, app, "/api/v1/skills/extract", map[string]string{
		"text": "Experienced with Python and SQL in production.",
	})
	if extractRes.Status != fiber.StatusOK {
		t.Fatalf("extract status = %d", extractRes.Status)
	}
	var extracted struct {
		Skills string `json:"skills"`
	}
	if err := json.Unmarshal(extractRes.Data, &extracted); err != nil {
		t.Fatal(err)
	}
	if extracted.Skills == "" {
		t.Fatalf("extraction returned no skills")
	}

	// Rank the corpus against them.
	jobsRes := postJSON(t, app, "/api/v1/jobs/recommendations", map[string]string{
		"skills": extracted.Skills,
	})
	if jobsRes.Status != fiber.StatusOK {
		t.Fatalf("recommendations status = %d", jobsRes.Status)
	}
	var jobs []struct {
		ID              string  `json:"id"`
		SimilarityScore float64 `json:"similarity_score"`
	}
	if err := json.Unmarshal(jobsRes.Data, &jobs); err != nil {
		t.Fatal(err)
	}
	if len(jobs) != 3 {
		t.Fatalf("expected 3 ranked listings, got %d", len(jobs))
	}
	if jobs[0].ID != "1" {
		t.Fatalf("expected python+sql listing first, got %q", jobs[0].ID)
	}
	for i := 1; i < len(jobs); i++ {
		if jobs[i].SimilarityScore > jobs[i-1].SimilarityScore {
			t.Fatalf("scores not descending at %d", i)
		}
	}

	// Derive the skill gap.
	gapRes := postJSON(t, app, "/api/v1/skills/recommendations", map[string]any{
		"skills":      "python, sql",
		"skill_count": 2,
	})
	if gapRes.Status != fiber.StatusOK {
		t.Fatalf("skill recommendations status = %d", gapRes.Status)
	}
	var gap struct {
		RecommendedSkills []string `json:"recommended_skills"`
	}
	if err := json.Unmarshal(gapRes.Data, &gap); err != nil {
		t.Fatal(err)
	}
	if len(gap.RecommendedSkills) == 0 || len(gap.RecommendedSkills) > 2 {
		t.Fatalf("unexpected gap: %v", gap.RecommendedSkills)
	}
	for _, s := range gap.RecommendedSkills {
		if s == "python" || s == "sql" {
			t.Fatalf("owned skill recommended: %v", gap.RecommendedSkills)
		}
	}
}

func TestPipeline_ValidationErrors(t *testing.T) {
	app := newTestApp(t)

	res := postJSON(t, app, "/api/v1/skills/extract", map[string]string{"text": ""})
	if res.Status != fiber.StatusBadRequest {
		t.Fatalf("empty text must 400, got %d", res.Status)
	}

	res = postJSON(t, app, "/api/v1/jobs/recommendations", map[string]string{"skills": ""})
	if res.Status != fiber.StatusBadRequest {
		t.Fatalf("empty skills must 400, got %d", res.Status)
	}

	res = postJSON(t, app, "/api/v1/jobs/links", map[string]any{"jobs": "not-a-list"})
	if res.Status != fiber.StatusBadRequest {
		t.Fatalf("non-list jobs must 400, got %d", res.Status)
	}
}
