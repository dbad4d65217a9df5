package toolcorpus

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"airiskmodel/pkg/models"
)

var buildIDPattern = regexp.MustCompile(`_next/static/([^/"]+)/_buildManifest\.js`)

// ExtractBuildID finds the Next.js build-id token from the directory's
// bootstrap HTML/JS, per the `_next/static/<id>/_buildManifest.js` pattern
// named in §6.
func ExtractBuildID(bootstrap []byte) (string, bool) {
	m := buildIDPattern.FindSubmatch(bootstrap)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// IndexDataURL builds the per-letter index JSON endpoint URL.
func IndexDataURL(baseURL, buildID, letter string) string {
	return fmt.Sprintf("%s/_next/data/%s/find-apps/%s.json", strings.TrimRight(baseURL, "/"), buildID, letter)
}

// DetailDataURL builds the per-slug detail JSON endpoint URL.
func DetailDataURL(baseURL, buildID, letter, slug string) string {
	return fmt.Sprintf("%s/_next/data/%s/find-apps/%s/%s.json", strings.TrimRight(baseURL, "/"), buildID, letter, slug)
}

// IndexLetters is the 27-element index alphabet named in §4.1: a-z plus "0-9".
func IndexLetters() []string {
	letters := make([]string, 0, 27)
	for c := 'a'; c <= 'z'; c++ {
		letters = append(letters, string(c))
	}
	return append(letters, "0-9")
}

type indexEntry struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// ParseIndexJSON extracts the slug/title list from one letter's index
// payload, repairing mildly malformed JSON before falling back to an error.
func ParseIndexJSON(data []byte) ([]indexEntry, error) {
	var out struct {
		PageProps struct {
			Apps []indexEntry `json:"apps"`
		} `json:"pageProps"`
	}
	if err := json.Unmarshal(data, &out); err == nil && len(out.PageProps.Apps) > 0 {
		return out.PageProps.Apps, nil
	}
	repaired, rerr := jsonrepair.RepairJSON(string(data))
	if rerr != nil {
		return nil, fmt.Errorf("parsing index json: %w", rerr)
	}
	if err := json.Unmarshal([]byte(repaired), &out); err != nil {
		return nil, fmt.Errorf("parsing repaired index json: %w", err)
	}
	return out.PageProps.Apps, nil
}

type detailPayload struct {
	PageProps struct {
		App struct {
			Slug        string   `json:"slug"`
			Title       string   `json:"title"`
			Headline    string   `json:"headline"`
			Description string   `json:"description"` // may contain embedded HTML
			Categories  []string `json:"categories"`
		} `json:"app"`
	} `json:"pageProps"`
}

// ParseDetailJSON builds a Tool from one slug's detail payload. Embedded
// HTML in the description field is stripped to plain text via goquery
// before cleaning.
func ParseDetailJSON(data []byte) (models.Tool, error) {
	var payload detailPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		repaired, rerr := jsonrepair.RepairJSON(string(data))
		if rerr != nil {
			return models.Tool{}, fmt.Errorf("parsing detail json: %w", err)
		}
		if err := json.Unmarshal([]byte(repaired), &payload); err != nil {
			return models.Tool{}, fmt.Errorf("parsing repaired detail json: %w", err)
		}
	}

	app := payload.PageProps.App
	desc := stripHTML(app.Description)

	tool := models.Tool{
		Source:      models.SourceDirectory,
		ToolID:      app.Slug,
		Name:        app.Title,
		Headline:    app.Headline,
		Description: desc,
		Tags:        app.Categories,
		URL:         app.Slug,
	}
	tool.Text = ToolText(tool.Name, tool.Headline, tool.Description, tool.Tags)
	return tool, nil
}

// LabelOnlyTool builds the fallback Tool used when a detail fetch exhausts
// its retries — name/slug only, per §4.1's "label-only fallback".
func LabelOnlyTool(slug, label string) models.Tool {
	t := models.Tool{
		Source: models.SourceDirectory,
		ToolID: slug,
		Name:   label,
		URL:    slug,
	}
	t.Text = ToolText(t.Name, "", "", nil)
	return t
}

// stripHTML renders an HTML fragment down to its text content using
// goquery, for descriptions that arrive as rendered HTML inside JSON.
func stripHTML(fragment string) string {
	if !strings.Contains(fragment, "<") {
		return fragment
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	return doc.Text()
}
