package scout

import (
	"github.com/garnizeh/scout/pkg/models"
	"github.com/garnizeh/scout/pkg/ollama"
)

// generatePromptTmpl instructs the model to emit a complete roadmap document
// as bare JSON. The output contract (module count, resources, project,
// total length) mirrors what the parser and validator expect downstream.
const generatePromptTmpl = `You are Scout, an AI career advisor. Generate a concise learning roadmap.

GOAL: {{.CareerGoal}}
CURRENT SKILLS:
{{- range .Skills}}
- {{.Skill}}: Level {{.Score}}/10 ({{.Level}})
{{- end}}
{{- if .HasPreferences}}

Learning Preferences:
- Learning Style: {{.LearningStyle}}
- Time Commitment: {{.WeeklyHours}} hours/week
{{- end}}

CREATE a structured roadmap with 3-5 modules. Each module needs:
- Title, description, estimated hours
- Skills taught (2-4 skills)
- 2-3 quality learning resources (real URLs: YouTube, freeCodeCamp, official docs)
- 1 hands-on project
- Prerequisites (if any)
- Learning outcomes (2-3 points)

Keep it practical and achievable. Total: 8-16 weeks

OUTPUT FORMAT (strict JSON):
{
  "title": "Roadmap title",
  "career_goal": "{{.CareerGoal}}",
  "estimated_weeks": <number>,
  "modules": [
    {
      "id": "module-1",
      "title": "Module title",
      "description": "What this module covers",
      "estimated_hours": <number>,
      "difficulty": "beginner|intermediate|advanced",
      "skills_taught": ["skill1", "skill2"],
      "prerequisite_skills": ["skill1"],
      "learning_outcomes": ["outcome1", "outcome2"],
      "resources": [
        {
          "title": "Resource title",
          "type": "video|article|documentation|interactive-lab|book",
          "url": "https://...",
          "duration": "2 hours",
          "duration_minutes": 120,
          "difficulty": "beginner|intermediate|advanced",
          "description": "Brief description"
        }
      ],
      "project": {
        "title": "Project title",
        "description": "What to build",
        "estimated_hours": <number>,
        "skills_applied": ["skill1", "skill2"],
        "deliverables": ["deliverable1", "deliverable2"],
        "difficulty": "beginner|intermediate|advanced"
      }
    }
  ]
}

IMPORTANT: Return ONLY valid JSON, no markdown formatting, no explanation text.
`

const updatePromptTmpl = `You are Scout, an expert career path advisor.

The user has the following existing roadmap:

{{.ExistingJSON}}

The user wants to update it with this request:
"{{.UserPrompt}}"

Please generate an updated roadmap that incorporates the user's feedback while maintaining the same JSON structure.

IMPORTANT: Return ONLY valid JSON in the exact same format as the input roadmap, no markdown, no explanation.
`

type generatePromptData struct {
	CareerGoal     string
	Skills         []models.SkillAssessment
	HasPreferences bool
	LearningStyle  string
	WeeklyHours    int
}

func buildGeneratePrompt(goal string, skills []models.SkillAssessment, prefs *models.LearningPreferences) (string, error) {
	data := generatePromptData{CareerGoal: goal, Skills: skills}
	if prefs != nil {
		data.HasPreferences = true
		data.LearningStyle = prefs.LearningStyle
		if data.LearningStyle == "" {
			data.LearningStyle = "mixed"
		}
		data.WeeklyHours = prefs.TimeCommitmentHoursWeek
		if data.WeeklyHours == 0 {
			data.WeeklyHours = 10
		}
	}

	return ollama.RenderTemplate(generatePromptTmpl, data)
}

func buildUpdatePrompt(existingJSON, userPrompt string) (string, error) {
	return ollama.RenderTemplate(updatePromptTmpl, map[string]string{
		"ExistingJSON": existingJSON,
		"UserPrompt":   userPrompt,
	})
}
