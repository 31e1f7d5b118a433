package ollama

import (
	"strings"
	"testing"
)

func TestRenderTemplate(t *testing.T) {
	out, err := RenderTemplate("Hello {{.Name}}", map[string]string{"Name": "Scout"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if out != "Hello Scout" {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderTemplate_Range(t *testing.T) {
	tmpl := "{{- range .}}\n- {{.}}{{end}}"
	out, err := RenderTemplate(tmpl, []string{"Go", "SQL"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, "- Go") || !strings.Contains(out, "- SQL") {
		t.Fatalf("out = %q", out)
	}
}

func TestRenderTemplate_ParseError(t *testing.T) {
	if _, err := RenderTemplate("{{.Name", nil); err == nil {
		t.Fatalf("expected parse error")
	}
}
