package api

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/garnizeh/scout/internal/graph"
)

// SkillsHandler serves skill-relationship lookups. This is a side feature;
// the roadmap pipeline does not use it.
type SkillsHandler struct {
	graph graph.SkillGraph
}

func NewSkillsHandler(g graph.SkillGraph) *SkillsHandler {
	return &SkillsHandler{graph: g}
}

func limitParam(r *http.Request, def int) int {
	if l := r.URL.Query().Get("limit"); l != "" {
		if v, err := strconv.Atoi(l); err == nil && v > 0 && v <= 100 {
			return v
		}
	}
	return def
}

func (h *SkillsHandler) Related(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	skills, err := h.graph.RelatedSkills(r.Context(), name, limitParam(r, 10))
	if err != nil {
		http.Error(w, "skill lookup failed", http.StatusInternalServerError)
		return
	}
	if skills == nil {
		skills = []string{}
	}

	writeJSON(w, map[string]any{"skill": name, "related": skills}, http.StatusOK)
}

func (h *SkillsHandler) Prerequisites(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]

	skills, err := h.graph.Prerequisites(r.Context(), name)
	if err != nil {
		http.Error(w, "skill lookup failed", http.StatusInternalServerError)
		return
	}
	if skills == nil {
		skills = []string{}
	}

	writeJSON(w, map[string]any{"skill": name, "prerequisites": skills}, http.StatusOK)
}

func (h *SkillsHandler) Path(w http.ResponseWriter, r *http.Request) {
	from := r.URL.Query().Get("from")
	to := r.URL.Query().Get("to")
	if from == "" || to == "" {
		http.Error(w, "from and to are required", http.StatusBadRequest)
		return
	}

	path, err := h.graph.LearningPath(r.Context(), from, to)
	if err != nil {
		http.Error(w, "skill lookup failed", http.StatusInternalServerError)
		return
	}
	if path == nil {
		path = []string{}
	}

	writeJSON(w, map[string]any{"from": from, "to": to, "path": path}, http.StatusOK)
}

func (h *SkillsHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		http.Error(w, "q is required", http.StatusBadRequest)
		return
	}

	skills, err := h.graph.SearchSkills(r.Context(), q, limitParam(r, 20))
	if err != nil {
		http.Error(w, "skill search failed", http.StatusInternalServerError)
		return
	}
	if skills == nil {
		skills = []graph.Skill{}
	}

	writeJSON(w, map[string]any{"query": q, "skills": skills}, http.StatusOK)
}
