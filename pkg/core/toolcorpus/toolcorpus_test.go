package toolcorpus

import (
	"strings"
	"testing"

	"airiskmodel/pkg/models"
)

func TestCleanText(t *testing.T) {
	in := "**[Report Writer](https://example.com/rw)** - Generates *reports* fast!"
	got := CleanText(in)
	if strings.Contains(got, "http") {
		t.Errorf("CleanText left a URL in output: %q", got)
	}
	if strings.Contains(got, "*") || strings.Contains(got, "[") {
		t.Errorf("CleanText left markdown formatting in output: %q", got)
	}
	if got != strings.ToLower(got) {
		t.Errorf("CleanText did not lowercase: %q", got)
	}
}

func TestToolText(t *testing.T) {
	got := ToolText("Forklift", "Moves pallets", "Industrial lifting tool", []string{"warehouse", "logistics"})
	for _, want := range []string{"forklift", "pallets", "warehouse"} {
		if !strings.Contains(got, want) {
			t.Errorf("ToolText missing %q in %q", want, got)
		}
	}
}

func TestMergeDedup(t *testing.T) {
	a := []models.Tool{{Source: models.SourceDirectory, ToolID: "x", Name: "Foo", Text: "foo text"}}
	b := []models.Tool{{Source: models.SourceDirectory, ToolID: "x", Name: "Foo", Text: "foo text"}}
	c := []models.Tool{{Source: models.SourceReadme, ToolID: "y", Name: "Bar", Text: "bar text"}}

	merged := Merge(a, b, c)
	if len(merged) != 2 {
		t.Fatalf("expected 2 deduplicated tools, got %d", len(merged))
	}
}

func TestParseReadmeBulletGrammar(t *testing.T) {
	src := []byte(`# Servers

- **[Acme Server](https://acme.example/mcp)** - Handles acme workflows
- plain bullet with no bold link, should be skipped
- **[Beta Tool](https://beta.example)** - Does beta things
`)
	tools := ParseReadme(src)
	if len(tools) != 2 {
		t.Fatalf("expected 2 parsed tools, got %d: %+v", len(tools), tools)
	}
	if tools[0].Name != "Acme Server" {
		t.Errorf("expected first tool 'Acme Server', got %q", tools[0].Name)
	}
	if tools[0].Source != models.SourceReadme {
		t.Errorf("expected SourceReadme, got %v", tools[0].Source)
	}
}

func TestExtractBuildID(t *testing.T) {
	bootstrap := []byte(`<script src="/_next/static/abc123XYZ/_buildManifest.js"></script>`)
	id, ok := ExtractBuildID(bootstrap)
	if !ok || id != "abc123XYZ" {
		t.Fatalf("expected build id abc123XYZ, got %q ok=%v", id, ok)
	}
}
