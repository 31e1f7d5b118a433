package sqlite_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/garnizeh/scout/internal/db"
	"github.com/garnizeh/scout/internal/repository/sqlite"
	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/repository"
)

func newTestRepo(t *testing.T) *sqlite.SQLiteRepo {
	t.Helper()
	ctx := context.Background()

	conn, err := db.New(ctx, ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.Bootstrap(ctx, conn); err != nil {
		t.Fatalf("bootstrap: %v", err)
	}

	return sqlite.New(conn, nil)
}

func TestUserLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	// absent user reads as nil, nil
	u, err := repo.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("get absent user: %v", err)
	}
	if u != nil {
		t.Fatalf("expected nil for absent user, got %+v", u)
	}

	created, err := repo.CreateUser(ctx, "alice")
	if err != nil {
		t.Fatalf("create user: %v", err)
	}
	if created.Username != "alice" || created.CreatedAt.IsZero() {
		t.Fatalf("created = %+v", created)
	}

	got, err := repo.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if got == nil || got.Username != "alice" {
		t.Fatalf("got = %+v", got)
	}
	if !got.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("created_at round trip: %v vs %v", got.CreatedAt, created.CreatedAt)
	}

	time.Sleep(5 * time.Millisecond)
	if err := repo.UpdateLastLogin(ctx, "alice"); err != nil {
		t.Fatalf("update last login: %v", err)
	}

	bumped, err := repo.GetUser(ctx, "alice")
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if !bumped.LastLogin.After(got.LastLogin) {
		t.Fatalf("last_login not bumped: %v then %v", got.LastLogin, bumped.LastLogin)
	}
	if !bumped.CreatedAt.Equal(got.CreatedAt) {
		t.Fatalf("created_at changed on login bump")
	}
}

func sampleRoadmap(id, user string, created time.Time) *models.Roadmap {
	return &models.Roadmap{
		ID:         id,
		UserID:     user,
		Title:      "Roadmap " + id,
		CareerGoal: "Backend Engineer",
		Modules: []models.Module{
			{ID: "module-1", Title: "Foundations", SkillsTaught: []string{"Go"}},
			{ID: "module-2", Title: "Core Skills", SkillsTaught: []string{"SQL"}},
		},
		EstimatedWeeks: 12,
		CreatedAt:      created.UTC(),
		UpdatedAt:      created.UTC(),
	}
}

func TestRoadmapRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	doc := sampleRoadmap("rm-1", "alice", time.Now())
	if err := repo.SaveRoadmap(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := repo.GetRoadmap(ctx, "rm-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ID != "rm-1" || got.UserID != "alice" || got.Title != "Roadmap rm-1" {
		t.Fatalf("got = %+v", got)
	}
	if len(got.Modules) != 2 || got.Modules[0].Title != "Foundations" || got.Modules[1].Title != "Core Skills" {
		t.Fatalf("module order lost: %+v", got.Modules)
	}
}

func TestRoadmapNotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetRoadmap(context.Background(), "no-such-id")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestRoadmapUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	doc := sampleRoadmap("rm-1", "alice", time.Now())
	if err := repo.SaveRoadmap(ctx, doc); err != nil {
		t.Fatalf("save: %v", err)
	}

	doc.Title = "Revised"
	doc.UpdatedAt = time.Now().UTC()
	if err := repo.UpdateRoadmap(ctx, "rm-1", doc); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, err := repo.GetRoadmap(ctx, "rm-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Revised" {
		t.Fatalf("title = %q", got.Title)
	}
}

func TestRoadmapListNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Now()
	for _, doc := range []*models.Roadmap{
		sampleRoadmap("rm-old", "alice", base.Add(-2*time.Hour)),
		sampleRoadmap("rm-new", "alice", base),
		sampleRoadmap("rm-mid", "alice", base.Add(-time.Hour)),
		sampleRoadmap("rm-bob", "bob", base),
	} {
		if err := repo.SaveRoadmap(ctx, doc); err != nil {
			t.Fatalf("save %s: %v", doc.ID, err)
		}
	}

	got, err := repo.GetUserRoadmaps(ctx, "alice")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("list len = %d, want 3", len(got))
	}
	for i, want := range []string{"rm-new", "rm-mid", "rm-old"} {
		if got[i].ID != want {
			t.Fatalf("list[%d] = %s, want %s", i, got[i].ID, want)
		}
	}

	empty, err := repo.GetUserRoadmaps(ctx, "nobody")
	if err != nil {
		t.Fatalf("empty list: %v", err)
	}
	if len(empty) != 0 {
		t.Fatalf("expected no roadmaps for nobody, got %d", len(empty))
	}
}
