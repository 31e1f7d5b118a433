package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/garnizeh/scout/internal/roadmap"
	"github.com/garnizeh/scout/internal/scout"
	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/repository"
)

type RoadmapsHandler struct {
	svc *roadmap.Service
}

func NewRoadmapsHandler(svc *roadmap.Service) *RoadmapsHandler {
	return &RoadmapsHandler{svc: svc}
}

type generateRequest struct {
	CareerGoal          string                      `json:"career_goal"`
	CurrentSkills       []models.SkillAssessment    `json:"current_skills"`
	LearningPreferences *models.LearningPreferences `json:"learning_preferences,omitempty"`
}

type updateRequest struct {
	UserPrompt      string          `json:"user_prompt"`
	ExistingRoadmap *models.Roadmap `json:"existing_roadmap,omitempty"`
}

type roadmapResponse struct {
	Roadmap           *models.Roadmap `json:"roadmap"`
	Message           string          `json:"message"`
	ProcessingSeconds float64         `json:"processing_time_seconds"`
}

func validateSkills(skills []models.SkillAssessment) string {
	for _, s := range skills {
		if strings.TrimSpace(s.Skill) == "" {
			return "skill name is required"
		}
		if s.Score < 1 || s.Score > 10 {
			return "skill score must be between 1 and 10"
		}
		if !models.ValidDifficulty(s.Level) {
			return "skill level must be beginner, intermediate or advanced"
		}
	}
	return ""
}

// Generate creates a new roadmap for the caller (or "anonymous").
func (h *RoadmapsHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.CareerGoal) == "" {
		http.Error(w, "career_goal is required", http.StatusBadRequest)
		return
	}
	if msg := validateSkills(req.CurrentSkills); msg != "" {
		http.Error(w, msg, http.StatusBadRequest)
		return
	}

	res, err := h.svc.Create(r.Context(), scout.GenerateRequest{
		CareerGoal:    req.CareerGoal,
		CurrentSkills: req.CurrentSkills,
		Preferences:   req.LearningPreferences,
		OwnerID:       UsernameFromContext(r.Context()),
	})
	if err != nil {
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, roadmapResponse{
		Roadmap:           res.Roadmap,
		Message:           res.Message,
		ProcessingSeconds: res.ProcessingTime.Seconds(),
	}, http.StatusOK)
}

// Get serves a single roadmap, cache first.
func (h *RoadmapsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	doc, err := h.svc.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "roadmap not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load roadmap", http.StatusInternalServerError)
		return
	}

	writeJSON(w, map[string]any{"roadmap": doc}, http.StatusOK)
}

// Update revises an existing roadmap from the user's free-text request.
func (h *RoadmapsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request", http.StatusBadRequest)
		return
	}
	if strings.TrimSpace(req.UserPrompt) == "" {
		http.Error(w, "user_prompt is required", http.StatusBadRequest)
		return
	}

	res, err := h.svc.Update(r.Context(), id, req.UserPrompt, req.ExistingRoadmap)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			http.Error(w, "roadmap not found", http.StatusNotFound)
			return
		}
		writeGenerationError(w, err)
		return
	}

	writeJSON(w, roadmapResponse{
		Roadmap:           res.Roadmap,
		Message:           res.Message,
		ProcessingSeconds: res.ProcessingTime.Seconds(),
	}, http.StatusOK)
}

// ListForUser returns all roadmaps owned by a username, newest first.
func (h *RoadmapsHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	docs, err := h.svc.ListForUser(r.Context(), username)
	if err != nil {
		http.Error(w, "failed to list roadmaps", http.StatusInternalServerError)
		return
	}
	if docs == nil {
		docs = []models.Roadmap{}
	}

	writeJSON(w, map[string]any{"roadmaps": docs, "count": len(docs)}, http.StatusOK)
}

// writeGenerationError maps engine failures onto status codes so clients can
// tell upstream outages from unusable model output.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scout.ErrUpstream):
		http.Error(w, "model generation failed", http.StatusBadGateway)
	case errors.Is(err, scout.ErrMalformedResponse):
		http.Error(w, "model returned an unusable response", http.StatusBadGateway)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}
