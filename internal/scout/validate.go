package scout

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/qri-io/jsonschema"
)

// roadmapSchemaJSON is the strict-mode contract for model output. It checks
// the nested module/resource/project structure and the three-value enums that
// the lenient path lets through.
const roadmapSchemaJSON = `{
  "type": "object",
  "required": ["modules"],
  "properties": {
    "title": {"type": "string"},
    "career_goal": {"type": "string"},
    "estimated_weeks": {"type": "integer", "minimum": 1},
    "modules": {
      "type": "array",
      "minItems": 1,
      "items": {
        "type": "object",
        "required": ["id", "title", "description", "estimated_hours", "skills_taught", "resources"],
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "description": {"type": "string"},
          "estimated_hours": {"type": "number", "exclusiveMinimum": 0},
          "difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
          "skills_taught": {"type": "array", "minItems": 1, "items": {"type": "string"}},
          "prerequisite_skills": {"type": "array", "items": {"type": "string"}},
          "learning_outcomes": {"type": "array", "items": {"type": "string"}},
          "resources": {
            "type": "array",
            "items": {
              "type": "object",
              "required": ["title", "type", "url", "difficulty"],
              "properties": {
                "title": {"type": "string"},
                "type": {"enum": ["video", "article", "documentation", "interactive-lab", "book"]},
                "url": {"type": "string"},
                "duration": {"type": "string"},
                "duration_minutes": {"type": "integer"},
                "difficulty": {"enum": ["beginner", "intermediate", "advanced"]},
                "description": {"type": "string"}
              }
            }
          },
          "project": {
            "type": "object",
            "required": ["title", "description", "estimated_hours", "skills_applied", "deliverables", "difficulty"],
            "properties": {
              "title": {"type": "string"},
              "description": {"type": "string"},
              "estimated_hours": {"type": "number", "exclusiveMinimum": 0},
              "skills_applied": {"type": "array", "minItems": 1, "items": {"type": "string"}},
              "deliverables": {"type": "array", "minItems": 1, "items": {"type": "string"}},
              "difficulty": {"enum": ["beginner", "intermediate", "advanced"]}
            }
          }
        }
      }
    }
  }
}`

// Validator validates sanitized model output against the roadmap schema.
type Validator struct {
	schema *jsonschema.Schema
}

func NewValidator() (*Validator, error) {
	rs := &jsonschema.Schema{}
	if err := json.Unmarshal([]byte(roadmapSchemaJSON), rs); err != nil {
		return nil, fmt.Errorf("compile schema: %w", err)
	}

	return &Validator{schema: rs}, nil
}

// Validate returns an error describing every schema violation in raw, or nil.
func (v *Validator) Validate(ctx context.Context, raw []byte) error {
	verrs, err := v.schema.ValidateBytes(ctx, raw)
	if err != nil {
		return fmt.Errorf("schema validate: %w", err)
	}
	if len(verrs) > 0 {
		var sb strings.Builder
		for i, ve := range verrs {
			if i > 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(ve.Message)
		}
		return fmt.Errorf("response does not match roadmap schema: %s", sb.String())
	}

	return nil
}
