package toolcorpus

import (
	"context"
	"fmt"
	"time"

	"airiskmodel/pkg/core/ingest"
	"airiskmodel/pkg/models"
)

// BuilderConfig names the three source endpoints and crawl tuning knobs.
type BuilderConfig struct {
	DirectoryBaseURL string // source A
	APIBaseURL       string // source B, offset/limit cursor
	ReadmeURL        string // source C

	DetailWorkers int
	DetailLimit   int // 0 = unlimited
	RetryAttempts int
	RetryBackoff  time.Duration
	PageLimit     int // source B page size
}

// BuildSourceA runs the two-phase directory crawl: fetch the bootstrap page
// to extract the build id, enumerate slugs across the a-z/0-9 index, then
// fetch each slug's detail page with bounded concurrency and retries,
// falling back to a label-only row when every retry fails.
func BuildSourceA(ctx context.Context, f *ingest.Fetcher, cfg BuilderConfig) ([]models.Tool, error) {
	bootstrap, err := f.Fetch(ctx, "directory", cfg.DirectoryBaseURL)
	if err != nil {
		return nil, fmt.Errorf("fetching directory bootstrap: %w", err)
	}
	buildID, ok := ExtractBuildID(bootstrap)
	if !ok {
		return nil, fmt.Errorf("directory bootstrap: build id pattern not found")
	}

	var jobs []ingest.CrawlJob
	for _, letter := range IndexLetters() {
		indexURL := IndexDataURL(cfg.DirectoryBaseURL, buildID, letter)
		body, err := f.Fetch(ctx, "directory_index", indexURL)
		if err != nil {
			continue // a missing single-letter index page is not fatal to the whole crawl
		}
		entries, err := ParseIndexJSON(body)
		if err != nil {
			continue
		}
		for _, e := range entries {
			jobs = append(jobs, ingest.CrawlJob{
				Slug:  e.Slug,
				URL:   DetailDataURL(cfg.DirectoryBaseURL, buildID, letter, e.Slug),
				Label: e.Title,
			})
		}
	}

	results := ingest.RunDetailCrawl(ctx, f, "directory_detail", jobs, cfg.DetailWorkers, cfg.RetryAttempts, cfg.RetryBackoff, cfg.DetailLimit)

	tools := make([]models.Tool, 0, len(results))
	for _, r := range results {
		if r.Fallback || r.Err != nil {
			tools = append(tools, LabelOnlyTool(r.Job.Slug, r.Job.Label))
			continue
		}
		tool, err := ParseDetailJSON(r.Body)
		if err != nil {
			tools = append(tools, LabelOnlyTool(r.Job.Slug, r.Job.Label))
			continue
		}
		tools = append(tools, tool)
	}
	return tools, nil
}

// BuildSourceB pages through the source-B API using the shared Fetcher for
// caching; each page is addressed by a synthetic URL so the cache can key on
// (offset, limit) independently.
func BuildSourceB(ctx context.Context, f *ingest.Fetcher, cfg BuilderConfig) ([]models.Tool, error) {
	limit := cfg.PageLimit
	if limit <= 0 {
		limit = 100
	}
	fetchPage := func(ctx context.Context, offset, pageLimit int) ([]byte, error) {
		url := fmt.Sprintf("%s?offset=%d&limit=%d", cfg.APIBaseURL, offset, pageLimit)
		return f.Fetch(ctx, "api_page", url)
	}
	return BuildFromAPI(ctx, fetchPage, limit)
}

// BuildSourceC fetches and parses the Markdown README for source C.
func BuildSourceC(ctx context.Context, f *ingest.Fetcher, cfg BuilderConfig) ([]models.Tool, error) {
	body, err := f.Fetch(ctx, "readme", cfg.ReadmeURL)
	if err != nil {
		return nil, fmt.Errorf("fetching readme: %w", err)
	}
	return ParseReadme(body), nil
}

// Build runs all three sources and merges them into a single deduplicated,
// stably sorted tool corpus.
func Build(ctx context.Context, f *ingest.Fetcher, cfg BuilderConfig) ([]models.Tool, error) {
	a, err := BuildSourceA(ctx, f, cfg)
	if err != nil {
		return nil, fmt.Errorf("source A: %w", err)
	}
	b, err := BuildSourceB(ctx, f, cfg)
	if err != nil {
		return nil, fmt.Errorf("source B: %w", err)
	}
	c, err := BuildSourceC(ctx, f, cfg)
	if err != nil {
		return nil, fmt.Errorf("source C: %w", err)
	}
	return Merge(a, b, c), nil
}
