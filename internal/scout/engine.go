// Package scout turns caller intent into validated Roadmap documents by
// prompting a generative text model and deterministically repairing and
// decoding its output.
package scout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/garnizeh/scout/internal/config"
	"github.com/garnizeh/scout/pkg/models"
)

var (
	// ErrUpstream marks a failure of the model call itself (network, quota).
	ErrUpstream = errors.New("model generation failed")
	// ErrMalformedResponse marks model output that is not a valid roadmap
	// document after fence stripping. The raw output is logged, not returned.
	ErrMalformedResponse = errors.New("malformed model response")
)

// Completer is the single-call contract to the generative text model.
type Completer interface {
	Generate(ctx context.Context, model string, prompt string) (string, error)
}

// Engine is the roadmap generation engine.
type Engine struct {
	client    Completer
	cfg       config.EngineConfig
	logger    *slog.Logger
	validator *Validator // non-nil only in strict mode
}

// GenerateRequest carries the caller intent for a fresh roadmap.
type GenerateRequest struct {
	CareerGoal    string
	CurrentSkills []models.SkillAssessment
	Preferences   *models.LearningPreferences
	OwnerID       string
}

// Result bundles the document with caller-facing metadata.
type Result struct {
	Roadmap        *models.Roadmap
	Message        string
	ProcessingTime time.Duration
}

// NewEngine creates a new generation engine. In strict mode the roadmap
// schema is compiled up front and every model response is validated against
// it before decoding.
func NewEngine(client Completer, cfg config.EngineConfig, logger *slog.Logger) (*Engine, error) {
	if client == nil {
		return nil, fmt.Errorf("completer is required")
	}
	if cfg.Model == "" {
		cfg.Model = "llama3"
	}
	if logger == nil {
		logger = slog.Default()
	}

	e := &Engine{client: client, cfg: cfg, logger: logger}
	if cfg.StrictValidation {
		v, err := NewValidator()
		if err != nil {
			return nil, fmt.Errorf("compile roadmap schema: %w", err)
		}
		e.validator = v
	}

	return e, nil
}

// generatedDoc is the model-supplied half of a new roadmap. Decoding is
// structural: a field of the wrong type fails the decode, but nested module
// content beyond the declared shape passes through unless strict mode is on.
type generatedDoc struct {
	Title          string          `json:"title"`
	CareerGoal     string          `json:"career_goal"`
	EstimatedWeeks *int            `json:"estimated_weeks"`
	Modules        []models.Module `json:"modules"`
}

// Generate produces a fresh roadmap for the goal and skill profile. The
// engine assigns identity and bookkeeping fields; the model never does.
func (e *Engine) Generate(ctx context.Context, req GenerateRequest) (*Result, error) {
	start := time.Now()

	prompt, err := buildGeneratePrompt(req.CareerGoal, req.CurrentSkills, req.Preferences)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	out, err := e.client.Generate(ctx, e.cfg.Model, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := sanitizeResponse(out)

	if e.validator != nil {
		if verr := e.validator.Validate(ctx, []byte(raw)); verr != nil {
			e.logger.Error("model response failed schema validation", slog.Any("err", verr), slog.String("raw", out))
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, verr)
		}
	}

	var doc generatedDoc
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		e.logger.Error("model response is not valid JSON", slog.Any("err", err), slog.String("raw", out))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	owner := req.OwnerID
	if owner == "" {
		owner = "anonymous"
	}

	now := time.Now().UTC()
	rm := &models.Roadmap{
		ID:                 uuid.NewString(),
		UserID:             owner,
		Title:              doc.Title,
		CareerGoal:         req.CareerGoal,
		EstimatedWeeks:     12,
		Modules:            doc.Modules,
		CurrentModule:      0,
		ProgressPercentage: 0.0,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if rm.Title == "" {
		rm.Title = "Roadmap to " + req.CareerGoal
	}
	if doc.EstimatedWeeks != nil {
		rm.EstimatedWeeks = *doc.EstimatedWeeks
	}
	if rm.Modules == nil {
		rm.Modules = []models.Module{}
	}

	return &Result{
		Roadmap:        rm,
		Message:        "Roadmap generated successfully",
		ProcessingTime: time.Since(start),
	}, nil
}

// Update revises an existing roadmap according to the user's free-text
// request. The id is forced to roadmapID afterwards: the model is not
// trusted to preserve identity.
func (e *Engine) Update(ctx context.Context, roadmapID, userPrompt string, existing *models.Roadmap) (*Result, error) {
	start := time.Now()

	existingJSON, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode existing roadmap: %w", err)
	}

	prompt, err := buildUpdatePrompt(string(existingJSON), userPrompt)
	if err != nil {
		return nil, fmt.Errorf("render prompt: %w", err)
	}

	out, err := e.client.Generate(ctx, e.cfg.Model, prompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}

	raw := sanitizeResponse(out)

	if e.validator != nil {
		if verr := e.validator.Validate(ctx, []byte(raw)); verr != nil {
			e.logger.Error("model response failed schema validation", slog.Any("err", verr), slog.String("raw", out))
			return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, verr)
		}
	}

	var doc models.Roadmap
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		e.logger.Error("model response is not valid JSON", slog.Any("err", err), slog.String("raw", out))
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	doc.ID = roadmapID
	doc.UpdatedAt = time.Now().UTC()

	return &Result{
		Roadmap:        &doc,
		Message:        "Roadmap updated successfully",
		ProcessingTime: time.Since(start),
	}, nil
}

// sanitizeResponse strips a leading ```json or ``` fence and a trailing ```
// fence. Models routinely wrap JSON in markdown despite instructions; this is
// a textual pre-pass, not semantic validation.
func sanitizeResponse(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}
