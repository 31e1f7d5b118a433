// Package roadmap composes the generation engine, the durable store and the
// cache layer into create/read/update operations. The store is the source of
// truth; the cache is a best-effort read accelerator keyed by roadmap id.
package roadmap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/garnizeh/scout/internal/cache"
	"github.com/garnizeh/scout/internal/scout"
	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/repository"
)

// Generator is the slice of the generation engine the service depends on.
type Generator interface {
	Generate(ctx context.Context, req scout.GenerateRequest) (*scout.Result, error)
	Update(ctx context.Context, roadmapID, userPrompt string, existing *models.Roadmap) (*scout.Result, error)
}

// Service orchestrates roadmap operations. No locks are held across external
// calls; concurrent updates to the same id race and the last write wins.
type Service struct {
	gen    Generator
	store  repository.RoadmapRepo
	cache  cache.Cache
	ttl    time.Duration
	logger *slog.Logger
}

// NewService wraps the given cache in the best-effort decorator: cache
// failures degrade to misses and never fail a request.
func NewService(gen Generator, store repository.RoadmapRepo, c cache.Cache, ttl time.Duration, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if ttl <= 0 {
		ttl = 1 * time.Hour
	}

	return &Service{
		gen:    gen,
		store:  store,
		cache:  cache.NewBestEffort(c, logger),
		ttl:    ttl,
		logger: logger,
	}
}

func cacheKey(id string) string {
	return "roadmap:" + id
}

// Create generates a roadmap for the effective owner, persists it and warms
// the cache. A store failure after successful generation is logged and
// absorbed: the caller still gets the roadmap, but it is not cached, so the
// cache never holds a document the store does not.
func (s *Service) Create(ctx context.Context, req scout.GenerateRequest) (*scout.Result, error) {
	if req.OwnerID == "" {
		req.OwnerID = "anonymous"
	}

	res, err := s.gen.Generate(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveRoadmap(ctx, res.Roadmap); err != nil {
		s.logger.Error("save roadmap failed, returning unpersisted result",
			slog.String("id", res.Roadmap.ID), slog.Any("err", err))
		return res, nil
	}

	_ = s.cache.Set(ctx, cacheKey(res.Roadmap.ID), res.Roadmap, s.ttl)

	return res, nil
}

// Get reads cache-first. On a hit the store is not consulted at all; on a
// miss the store is read and the cache backfilled before returning. Backfill
// failures are absorbed by the cache wrapper.
func (s *Service) Get(ctx context.Context, id string) (*models.Roadmap, error) {
	var doc models.Roadmap
	if ok, _ := s.cache.Get(ctx, cacheKey(id), &doc); ok {
		return &doc, nil
	}

	rm, err := s.store.GetRoadmap(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load roadmap %s: %w", id, err)
	}

	_ = s.cache.Set(ctx, cacheKey(id), rm, s.ttl)

	return rm, nil
}

// Update loads the current document (or uses the caller-supplied fallback
// when the store has no record), delegates the revision to the engine, then
// overwrites the stored document and refreshes the cache. There is no
// optimistic concurrency control.
func (s *Service) Update(ctx context.Context, id, userPrompt string, fallback *models.Roadmap) (*scout.Result, error) {
	existing, err := s.store.GetRoadmap(ctx, id)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("load roadmap %s: %w", id, err)
		}
		if fallback == nil {
			return nil, err
		}
		existing = fallback
	}

	res, err := s.gen.Update(ctx, id, userPrompt, existing)
	if err != nil {
		return nil, err
	}

	if err := s.store.UpdateRoadmap(ctx, id, res.Roadmap); err != nil {
		// Same availability-over-durability policy as Create: the revised
		// document is returned, and the cache keeps whatever matches the store.
		s.logger.Error("update roadmap failed, returning unpersisted result",
			slog.String("id", id), slog.Any("err", err))
		return res, nil
	}

	_ = s.cache.Set(ctx, cacheKey(id), res.Roadmap, s.ttl)

	return res, nil
}

// ListForUser returns the user's roadmaps, newest first. This path bypasses
// the cache; only single-roadmap lookups are cached.
func (s *Service) ListForUser(ctx context.Context, username string) ([]models.Roadmap, error) {
	out, err := s.store.GetUserRoadmaps(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("list roadmaps for %s: %w", username, err)
	}
	return out, nil
}
