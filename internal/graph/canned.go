package graph

import (
	"context"
	"strings"
)

// Canned serves fixed demo data for deployments without a graph database.
type Canned struct{}

var _ SkillGraph = (*Canned)(nil)

func NewCanned() *Canned {
	return &Canned{}
}

var cannedRelated = map[string][]string{
	"Python":           {"Django", "Flask", "FastAPI", "Data Analysis", "Machine Learning"},
	"JavaScript":       {"React", "Node.js", "TypeScript", "Vue.js", "Angular"},
	"React":            {"JavaScript", "TypeScript", "Redux", "Next.js", "HTML/CSS"},
	"Machine Learning": {"Python", "TensorFlow", "PyTorch", "Data Science", "Statistics"},
}

var cannedPrereqs = map[string][]string{
	"React":            {"JavaScript", "HTML/CSS"},
	"Django":           {"Python", "Web Development Basics"},
	"Machine Learning": {"Python", "Statistics", "Linear Algebra"},
	"FastAPI":          {"Python", "REST APIs"},
}

var cannedSkills = []Skill{
	{Name: "Python Programming", Category: "Programming"},
	{Name: "JavaScript Development", Category: "Programming"},
	{Name: "Machine Learning", Category: "Data Science"},
	{Name: "React Development", Category: "Web Development"},
	{Name: "Data Analysis", Category: "Data Science"},
}

func (c *Canned) RelatedSkills(ctx context.Context, skill string, limit int) ([]string, error) {
	out, ok := cannedRelated[skill]
	if !ok {
		out = []string{"Data Analysis", "Problem Solving", "Communication"}
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (c *Canned) Prerequisites(ctx context.Context, skill string) ([]string, error) {
	return cannedPrereqs[skill], nil
}

func (c *Canned) LearningPath(ctx context.Context, from, to string) ([]string, error) {
	return []string{from, "Intermediate Skill", to}, nil
}

func (c *Canned) SearchSkills(ctx context.Context, query string, limit int) ([]Skill, error) {
	q := strings.ToLower(query)
	var out []Skill
	for _, s := range cannedSkills {
		if strings.Contains(strings.ToLower(s.Name), q) {
			out = append(out, s)
			if limit > 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}
