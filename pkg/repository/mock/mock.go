// Package mock provides an in-memory store used by tests and by deployments
// running without a database configured.
package mock

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/repository"
)

// Store implements repository.UserRepo and repository.RoadmapRepo on maps.
// Error fields let tests inject failures; call counters let tests assert on
// cache-aside behavior.
type Store struct {
	mu       sync.RWMutex
	users    map[string]*models.User
	roadmaps map[string][]byte // stored serialized to keep documents opaque

	SaveErr   error
	GetErr    error
	UpdateErr error

	SaveCalls   int
	GetCalls    int
	UpdateCalls int
	ListCalls   int
}

var _ repository.UserRepo = (*Store)(nil)
var _ repository.RoadmapRepo = (*Store)(nil)

func NewStore() *Store {
	return &Store{
		users:    make(map[string]*models.User),
		roadmaps: make(map[string][]byte),
	}
}

func (s *Store) CreateUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	u := &models.User{Username: username, CreatedAt: now, LastLogin: now}
	s.users[username] = u

	cp := *u
	return &cp, nil
}

func (s *Store) GetUser(ctx context.Context, username string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[username]
	if !ok {
		return nil, nil
	}

	cp := *u
	return &cp, nil
}

func (s *Store) UpdateLastLogin(ctx context.Context, username string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if u, ok := s.users[username]; ok {
		u.LastLogin = time.Now().UTC()
	}
	return nil
}

func (s *Store) SaveRoadmap(ctx context.Context, doc *models.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.SaveCalls++
	if s.SaveErr != nil {
		return s.SaveErr
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.roadmaps[doc.ID] = b
	return nil
}

func (s *Store) GetRoadmap(ctx context.Context, id string) (*models.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.GetCalls++
	if s.GetErr != nil {
		return nil, s.GetErr
	}

	b, ok := s.roadmaps[id]
	if !ok {
		return nil, repository.ErrNotFound
	}

	var doc models.Roadmap
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *Store) UpdateRoadmap(ctx context.Context, id string, doc *models.Roadmap) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.UpdateCalls++
	if s.UpdateErr != nil {
		return s.UpdateErr
	}

	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.roadmaps[id] = b
	return nil
}

func (s *Store) GetUserRoadmaps(ctx context.Context, username string) ([]models.Roadmap, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ListCalls++

	var out []models.Roadmap
	for _, b := range s.roadmaps {
		var doc models.Roadmap
		if err := json.Unmarshal(b, &doc); err != nil {
			return nil, err
		}
		if doc.UserID == username {
			out = append(out, doc)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}
