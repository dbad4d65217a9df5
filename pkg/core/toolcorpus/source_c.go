package toolcorpus

import (
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"airiskmodel/pkg/models"
)

// bulletPattern matches "- **[Name](URL)** - description" lines, per §4.1/§6.
var bulletPattern = regexp.MustCompile(`\*\*\[([^\]]+)\]\(([^)]*)\)\*\*\s*[-–—]?\s*(.*)`)

// ParseReadme walks the Markdown AST for list items, extracting the
// bullet-grammar rows named in §4.1; any list item line that doesn't match
// the bullet grammar is skipped. If AST walking finds no list items at all
// (e.g. a malformed document), the grammar is applied directly to the raw
// source as a fallback.
func ParseReadme(source []byte) []models.Tool {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(source))

	var lines []string
	ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if li, ok := n.(*ast.ListItem); ok {
			for c := li.FirstChild(); c != nil; c = c.NextSibling() {
				for i := 0; i < c.Lines().Len(); i++ {
					seg := c.Lines().At(i)
					lines = append(lines, string(seg.Value(source)))
				}
			}
		}
		return ast.WalkContinue, nil
	})

	if len(lines) == 0 {
		for _, raw := range strings.Split(string(source), "\n") {
			lines = append(lines, raw)
		}
	}

	var tools []models.Tool
	for _, line := range lines {
		m := bulletPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		name := strings.TrimSpace(m[1])
		url := strings.TrimSpace(m[2])
		desc := strings.TrimSpace(m[3])
		if name == "" {
			continue
		}
		t := models.Tool{
			Source:      models.SourceReadme,
			ToolID:      slugify(name),
			Name:        name,
			Description: desc,
			URL:         url,
		}
		t.Text = ToolText(t.Name, "", t.Description, nil)
		tools = append(tools, t)
	}
	return tools
}

var nonSlug = regexp.MustCompile(`[^a-z0-9]+`)

func slugify(name string) string {
	s := strings.ToLower(name)
	s = nonSlug.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
