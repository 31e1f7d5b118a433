// Package graph exposes skill-relationship lookups. It is a side feature:
// the roadmap pipeline never depends on it.
package graph

import "context"

// Skill is a node in the skill graph.
type Skill struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// SkillGraph is the lookup contract. Implementations: Neo4j (Cypher queries)
// and Canned (in-memory demo data), selected once at startup.
type SkillGraph interface {
	RelatedSkills(ctx context.Context, skill string, limit int) ([]string, error)
	Prerequisites(ctx context.Context, skill string) ([]string, error)
	LearningPath(ctx context.Context, from, to string) ([]string, error)
	SearchSkills(ctx context.Context, query string, limit int) ([]Skill, error)
}
