package models

import "time"

// Difficulty levels accepted for modules, resources and projects.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Resource types accepted in generated documents.
const (
	ResourceVideo          = "video"
	ResourceArticle        = "article"
	ResourceDocumentation  = "documentation"
	ResourceInteractiveLab = "interactive-lab"
	ResourceBook           = "book"
)

// ValidDifficulty reports whether s is one of the three accepted levels.
func ValidDifficulty(s string) bool {
	switch s {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

// ValidResourceType reports whether s is an accepted resource type.
func ValidResourceType(s string) bool {
	switch s {
	case ResourceVideo, ResourceArticle, ResourceDocumentation, ResourceInteractiveLab, ResourceBook:
		return true
	}
	return false
}

// User is created lazily on first successful login and keyed by username.
type User struct {
	Username  string    `json:"username" db:"username"`
	CreatedAt time.Time `json:"created_at" db:"created"`
	LastLogin time.Time `json:"last_login" db:"last_login"`
}

// SkillAssessment describes the caller's current level in one skill. It is
// generation input only and is never persisted on its own.
type SkillAssessment struct {
	Skill    string `json:"skill"`
	Score    int    `json:"score"`
	Level    string `json:"level"`
	LastUsed string `json:"last_used,omitempty"`
}

// LearningPreferences tune the generated roadmap. All fields are optional.
type LearningPreferences struct {
	LearningStyle           string   `json:"learning_style,omitempty"`
	TimeCommitmentHoursWeek int      `json:"time_commitment_hours_per_week,omitempty"`
	FocusAreas              []string `json:"focus_areas,omitempty"`
	ExcludeTopics           []string `json:"exclude_topics,omitempty"`
	TargetCompletionDate    string   `json:"target_completion_date,omitempty"`
}

// Resource is one learning material inside a module.
type Resource struct {
	Title           string `json:"title"`
	Type            string `json:"type"`
	URL             string `json:"url"`
	Duration        string `json:"duration,omitempty"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	Difficulty      string `json:"difficulty"`
	Description     string `json:"description,omitempty"`
}

// Project is the hands-on work attached to a module.
type Project struct {
	Title          string   `json:"title"`
	Description    string   `json:"description"`
	EstimatedHours int      `json:"estimated_hours"`
	SkillsApplied  []string `json:"skills_applied"`
	Deliverables   []string `json:"deliverables"`
	Difficulty     string   `json:"difficulty"`
}

// Module is one learning phase. Module order within a roadmap is the
// pedagogical sequence and must survive storage and caching unchanged.
type Module struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description"`
	EstimatedHours     int        `json:"estimated_hours"`
	SkillsTaught       []string   `json:"skills_taught"`
	Resources          []Resource `json:"resources"`
	Project            *Project   `json:"project,omitempty"`
	PrerequisiteSkills []string   `json:"prerequisite_skills,omitempty"`
	LearningOutcomes   []string   `json:"learning_outcomes,omitempty"`
	Difficulty         string     `json:"difficulty,omitempty"`
}

// Roadmap is the root learning-plan document. ID is assigned exactly once by
// the generation engine; CreatedAt is set once and never changed afterwards.
type Roadmap struct {
	ID                 string    `json:"id"`
	UserID             string    `json:"user_id"`
	Title              string    `json:"title"`
	CareerGoal         string    `json:"career_goal"`
	EstimatedWeeks     int       `json:"estimated_weeks"`
	Modules            []Module  `json:"modules"`
	CurrentModule      int       `json:"current_module"`
	ProgressPercentage float64   `json:"progress_percentage"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}
