package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/scout/pkg/models"
)

// ErrNotFound is returned by roadmap reads when the id is unknown to the
// store. Callers must check with errors.Is; a store failure is a different
// error and is never folded into ErrNotFound.
var ErrNotFound = errors.New("not found")

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type UserRepo interface {
	// CreateUser inserts a user with created/last_login set to now.
	CreateUser(ctx context.Context, username string) (*models.User, error)
	// GetUser returns (nil, nil) when the user does not exist.
	GetUser(ctx context.Context, username string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, username string) error
}

type RoadmapRepo interface {
	SaveRoadmap(ctx context.Context, doc *models.Roadmap) error
	// GetRoadmap returns ErrNotFound when the id is unknown.
	GetRoadmap(ctx context.Context, id string) (*models.Roadmap, error)
	// UpdateRoadmap replaces the stored document wholesale.
	UpdateRoadmap(ctx context.Context, id string, doc *models.Roadmap) error
	// GetUserRoadmaps lists a user's roadmaps, newest first.
	GetUserRoadmaps(ctx context.Context, username string) ([]models.Roadmap, error)
}
