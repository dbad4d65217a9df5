package toolcorpus

import (
	"context"
	"encoding/json"
	"fmt"

	jsonrepair "github.com/RealAlexandreAI/json-repair"

	"airiskmodel/pkg/models"
)

type apiItem struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Headline    string   `json:"headline"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	URL         string   `json:"url"`
}

type apiPage struct {
	Items       []apiItem `json:"items"`
	HasNextPage *bool     `json:"hasNextPage"`
	NextOffset  *int      `json:"nextOffset"`
}

func parseAPIPage(data []byte) (apiPage, error) {
	var page apiPage
	if err := json.Unmarshal(data, &page); err == nil {
		return page, nil
	}
	repaired, err := jsonrepair.RepairJSON(string(data))
	if err != nil {
		return apiPage{}, fmt.Errorf("parsing api page: %w", err)
	}
	if err := json.Unmarshal([]byte(repaired), &page); err != nil {
		return apiPage{}, fmt.Errorf("parsing repaired api page: %w", err)
	}
	return page, nil
}

// PageFetcher retrieves one page of the source-B API at the given offset and
// limit, returning the raw JSON body.
type PageFetcher func(ctx context.Context, offset, limit int) ([]byte, error)

// BuildFromAPI pages through source B until hasNextPage is false or the
// server stops returning a next offset, per §4.1/§6.
func BuildFromAPI(ctx context.Context, fetch PageFetcher, limit int) ([]models.Tool, error) {
	var tools []models.Tool
	offset := 0
	for {
		body, err := fetch(ctx, offset, limit)
		if err != nil {
			return tools, fmt.Errorf("fetching api page at offset %d: %w", offset, err)
		}
		page, err := parseAPIPage(body)
		if err != nil {
			return tools, err
		}
		for _, item := range page.Items {
			t := models.Tool{
				Source:      models.SourceAPI,
				ToolID:      item.ID,
				Name:        item.Name,
				Headline:    item.Headline,
				Description: item.Description,
				Tags:        item.Tags,
				URL:         item.URL,
			}
			t.Text = ToolText(t.Name, t.Headline, t.Description, t.Tags)
			tools = append(tools, t)
		}

		if page.HasNextPage != nil && !*page.HasNextPage {
			break
		}
		if page.NextOffset == nil {
			break
		}
		offset = *page.NextOffset

		select {
		case <-ctx.Done():
			return tools, ctx.Err()
		default:
		}
	}
	return tools, nil
}
