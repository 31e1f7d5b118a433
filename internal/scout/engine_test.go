package scout_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/garnizeh/scout/internal/config"
	"github.com/garnizeh/scout/internal/scout"
	"github.com/garnizeh/scout/pkg/models"
)

// stub completer returning a fixed response
type stubCompleter struct {
	out        string
	err        error
	calls      int
	lastPrompt string
}

func (s *stubCompleter) Generate(ctx context.Context, model, prompt string) (string, error) {
	s.calls++
	s.lastPrompt = prompt
	return s.out, s.err
}

const threeModuleJSON = `{
  "title": "Backend Engineer Path",
  "career_goal": "Backend Engineer",
  "estimated_weeks": 10,
  "modules": [
    {"id": "module-1", "title": "Go Basics", "description": "Syntax and tooling", "estimated_hours": 20,
     "skills_taught": ["Go"], "difficulty": "beginner",
     "resources": [{"title": "Tour of Go", "type": "interactive-lab", "url": "https://go.dev/tour", "difficulty": "beginner"}]},
    {"id": "module-2", "title": "HTTP Services", "description": "Servers and routing", "estimated_hours": 25,
     "skills_taught": ["HTTP", "REST"], "difficulty": "intermediate",
     "resources": [{"title": "net/http docs", "type": "documentation", "url": "https://pkg.go.dev/net/http", "difficulty": "intermediate"}]},
    {"id": "module-3", "title": "Databases", "description": "SQL and persistence", "estimated_hours": 30,
     "skills_taught": ["SQL"], "difficulty": "intermediate",
     "resources": [{"title": "SQL course", "type": "video", "url": "https://example.com/sql", "difficulty": "beginner"}]}
  ]
}`

func newTestEngine(t *testing.T, client scout.Completer, strict bool) *scout.Engine {
	t.Helper()
	e, err := scout.NewEngine(client, config.EngineConfig{Model: "test-model", StrictValidation: strict}, nil)
	if err != nil {
		t.Fatalf("new engine: %v", err)
	}
	return e
}

func TestGenerate(t *testing.T) {
	c := &stubCompleter{out: threeModuleJSON}
	e := newTestEngine(t, c, false)

	req := scout.GenerateRequest{
		CareerGoal: "Backend Engineer",
		CurrentSkills: []models.SkillAssessment{
			{Skill: "Python", Score: 6, Level: "intermediate"},
		},
		OwnerID: "alice",
	}

	res, err := e.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rm := res.Roadmap
	if rm.ID == "" {
		t.Fatalf("expected generated id")
	}
	if rm.UserID != "alice" {
		t.Fatalf("owner = %q, want alice", rm.UserID)
	}
	if len(rm.Modules) != 3 {
		t.Fatalf("modules = %d, want 3", len(rm.Modules))
	}
	if rm.Modules[0].Title != "Go Basics" || rm.Modules[2].Title != "Databases" {
		t.Fatalf("module order not preserved: %+v", rm.Modules)
	}
	if rm.CurrentModule != 0 || rm.ProgressPercentage != 0.0 {
		t.Fatalf("expected fresh progress fields, got %d/%f", rm.CurrentModule, rm.ProgressPercentage)
	}
	if rm.EstimatedWeeks != 10 {
		t.Fatalf("estimated_weeks = %d, want 10", rm.EstimatedWeeks)
	}
	if rm.CreatedAt.IsZero() || !rm.CreatedAt.Equal(rm.UpdatedAt) {
		t.Fatalf("expected created_at == updated_at, got %v / %v", rm.CreatedAt, rm.UpdatedAt)
	}
	if res.ProcessingTime < 0 {
		t.Fatalf("negative processing time")
	}
}

func TestGenerate_IDsNeverCollide(t *testing.T) {
	c := &stubCompleter{out: threeModuleJSON}
	e := newTestEngine(t, c, false)
	req := scout.GenerateRequest{CareerGoal: "Backend Engineer"}

	a, err := e.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	b, err := e.Generate(context.Background(), req)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if a.Roadmap.ID == b.Roadmap.ID {
		t.Fatalf("identical inputs produced colliding ids: %s", a.Roadmap.ID)
	}
}

func TestGenerate_FencedOutputParsesLikeUnfenced(t *testing.T) {
	plain := &stubCompleter{out: threeModuleJSON}
	fenced := &stubCompleter{out: "```json\n" + threeModuleJSON + "\n```"}

	a, err := newTestEngine(t, plain, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "Backend Engineer"})
	if err != nil {
		t.Fatalf("plain generate: %v", err)
	}
	b, err := newTestEngine(t, fenced, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "Backend Engineer"})
	if err != nil {
		t.Fatalf("fenced generate: %v", err)
	}

	if a.Roadmap.Title != b.Roadmap.Title || len(a.Roadmap.Modules) != len(b.Roadmap.Modules) {
		t.Fatalf("fenced and unfenced outputs decoded differently")
	}
}

func TestGenerate_BareFence(t *testing.T) {
	c := &stubCompleter{out: "```\n" + threeModuleJSON + "\n```"}
	res, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "Backend Engineer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(res.Roadmap.Modules) != 3 {
		t.Fatalf("modules = %d, want 3", len(res.Roadmap.Modules))
	}
}

func TestGenerate_Defaults(t *testing.T) {
	c := &stubCompleter{out: `{}`}
	res, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "Data Engineer"})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	rm := res.Roadmap
	if rm.Title != "Roadmap to Data Engineer" {
		t.Fatalf("title = %q", rm.Title)
	}
	if rm.EstimatedWeeks != 12 {
		t.Fatalf("estimated_weeks = %d, want 12", rm.EstimatedWeeks)
	}
	if rm.Modules == nil || len(rm.Modules) != 0 {
		t.Fatalf("modules should default to an empty sequence, got %v", rm.Modules)
	}
	if rm.UserID != "anonymous" {
		t.Fatalf("owner = %q, want anonymous", rm.UserID)
	}
}

func TestGenerate_MalformedOutput(t *testing.T) {
	c := &stubCompleter{out: "I'm sorry, I can't produce a roadmap for that."}
	_, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "x"})
	if !errors.Is(err, scout.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestGenerate_WrongTypedFieldRejected(t *testing.T) {
	c := &stubCompleter{out: `{"title": 42, "modules": []}`}
	_, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "x"})
	if !errors.Is(err, scout.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse for wrong-typed field, got %v", err)
	}
}

func TestGenerate_UpstreamFailure(t *testing.T) {
	c := &stubCompleter{err: errors.New("connection refused")}
	_, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "x"})
	if !errors.Is(err, scout.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestGenerate_StrictModeAcceptsCompleteDocument(t *testing.T) {
	c := &stubCompleter{out: threeModuleJSON}
	res, err := newTestEngine(t, c, true).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "Backend Engineer"})
	if err != nil {
		t.Fatalf("strict generate: %v", err)
	}
	if len(res.Roadmap.Modules) != 3 {
		t.Fatalf("modules = %d, want 3", len(res.Roadmap.Modules))
	}
}

func TestGenerate_StrictModeRejectsIncompleteDocument(t *testing.T) {
	// lenient mode lets an empty document through with defaults, strict
	// mode rejects it for the missing modules
	c := &stubCompleter{out: `{}`}

	if _, err := newTestEngine(t, c, false).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "x"}); err != nil {
		t.Fatalf("lenient generate: %v", err)
	}

	_, err := newTestEngine(t, c, true).Generate(context.Background(), scout.GenerateRequest{CareerGoal: "x"})
	if !errors.Is(err, scout.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse in strict mode, got %v", err)
	}
}

func TestUpdate_ForcesRequestedID(t *testing.T) {
	// the model answers with a different id; the caller-supplied one wins
	c := &stubCompleter{out: `{"id": "model-invented-id", "user_id": "alice", "title": "Revised", "career_goal": "Backend Engineer", "estimated_weeks": 14, "modules": []}`}
	e := newTestEngine(t, c, false)

	existing := &models.Roadmap{ID: "rm-1", UserID: "alice", Title: "Original", CareerGoal: "Backend Engineer"}
	res, err := e.Update(context.Background(), "rm-1", "add a kubernetes module", existing)
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if res.Roadmap.ID != "rm-1" {
		t.Fatalf("id = %q, want rm-1", res.Roadmap.ID)
	}
	if res.Roadmap.Title != "Revised" {
		t.Fatalf("title = %q, want Revised", res.Roadmap.Title)
	}
	if res.Roadmap.UpdatedAt.IsZero() {
		t.Fatalf("updated_at not set")
	}
	if !strings.Contains(c.lastPrompt, "add a kubernetes module") {
		t.Fatalf("prompt missing user request")
	}
	if !strings.Contains(c.lastPrompt, `"Original"`) {
		t.Fatalf("prompt missing existing roadmap")
	}
}

func TestUpdate_MalformedOutput(t *testing.T) {
	c := &stubCompleter{out: "no json here"}
	e := newTestEngine(t, c, false)

	_, err := e.Update(context.Background(), "rm-1", "change it", &models.Roadmap{ID: "rm-1"})
	if !errors.Is(err, scout.ErrMalformedResponse) {
		t.Fatalf("expected ErrMalformedResponse, got %v", err)
	}
}

func TestUpdate_UpstreamFailure(t *testing.T) {
	c := &stubCompleter{err: errors.New("quota exceeded")}
	e := newTestEngine(t, c, false)

	_, err := e.Update(context.Background(), "rm-1", "change it", &models.Roadmap{ID: "rm-1"})
	if !errors.Is(err, scout.ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
