package graph

import (
	"context"
	"fmt"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/garnizeh/scout/internal/config"
)

// Neo4j answers skill lookups with Cypher queries against a graph database.
type Neo4j struct {
	driver   neo4j.DriverWithContext
	database string
}

var _ SkillGraph = (*Neo4j)(nil)

// NewNeo4j connects and verifies connectivity before returning.
func NewNeo4j(ctx context.Context, cfg config.Neo4jConfig) (*Neo4j, error) {
	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.User, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("neo4j driver: %w", err)
	}

	vctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := driver.VerifyConnectivity(vctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("neo4j connectivity: %w", err)
	}

	return &Neo4j{driver: driver, database: cfg.Database}, nil
}

func (n *Neo4j) Close(ctx context.Context) error {
	return n.driver.Close(ctx)
}

func (n *Neo4j) query(ctx context.Context, cypher string, params map[string]any) ([]*neo4j.Record, error) {
	res, err := neo4j.ExecuteQuery(ctx, n.driver, cypher, params,
		neo4j.EagerResultTransformer, neo4j.ExecuteQueryWithDatabase(n.database))
	if err != nil {
		return nil, err
	}
	return res.Records, nil
}

func stringColumn(records []*neo4j.Record, key string) []string {
	out := make([]string, 0, len(records))
	for _, rec := range records {
		if v, ok := rec.Get(key); ok {
			if s, ok := v.(string); ok {
				out = append(out, s)
			}
		}
	}
	return out
}

func (n *Neo4j) RelatedSkills(ctx context.Context, skill string, limit int) ([]string, error) {
	records, err := n.query(ctx, `
		MATCH (s:Skill {name: $skill_name})-[:RELATED_TO|REQUIRES]-(related:Skill)
		RETURN related.name AS skill
		LIMIT $limit`,
		map[string]any{"skill_name": skill, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("related skills: %w", err)
	}
	return stringColumn(records, "skill"), nil
}

func (n *Neo4j) Prerequisites(ctx context.Context, skill string) ([]string, error) {
	records, err := n.query(ctx, `
		MATCH (s:Skill {name: $skill_name})<-[:REQUIRES]-(prereq:Skill)
		RETURN prereq.name AS skill`,
		map[string]any{"skill_name": skill})
	if err != nil {
		return nil, fmt.Errorf("prerequisites: %w", err)
	}
	return stringColumn(records, "skill"), nil
}

func (n *Neo4j) LearningPath(ctx context.Context, from, to string) ([]string, error) {
	records, err := n.query(ctx, `
		MATCH path = shortestPath(
			(start:Skill {name: $from})-[:RELATED_TO|REQUIRES*]-(target:Skill {name: $to})
		)
		RETURN [node IN nodes(path) | node.name] AS skills`,
		map[string]any{"from": from, "to": to})
	if err != nil {
		return nil, fmt.Errorf("learning path: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	v, ok := records[0].Get("skills")
	if !ok {
		return nil, nil
	}
	raw, ok := v.([]any)
	if !ok {
		return nil, nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func (n *Neo4j) SearchSkills(ctx context.Context, query string, limit int) ([]Skill, error) {
	records, err := n.query(ctx, `
		MATCH (s:Skill)
		WHERE s.name CONTAINS $query OR s.category CONTAINS $query
		RETURN s.name AS name, s.category AS category
		LIMIT $limit`,
		map[string]any{"query": query, "limit": limit})
	if err != nil {
		return nil, fmt.Errorf("search skills: %w", err)
	}

	out := make([]Skill, 0, len(records))
	for _, rec := range records {
		var s Skill
		if v, ok := rec.Get("name"); ok {
			s.Name, _ = v.(string)
		}
		if v, ok := rec.Get("category"); ok {
			s.Category, _ = v.(string)
		}
		out = append(out, s)
	}
	return out, nil
}
