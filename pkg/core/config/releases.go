package config

import (
	"time"

	"airiskmodel/pkg/models"
)

func d(y int, m time.Month, day int) time.Time {
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// ModelReleases is the enumerated reference table the Temporal Growth Engine
// anchors its capability frontier to. Each row names a model variant, its
// family, and the release date used as the frontier's time axis. This
// replaces the original dictionary-with-free-form-keys design (§9) with an
// explicit, enumerable list of records.
var ModelReleases = []models.ModelBenchmark{
	{ModelID: "gpt-4o", Family: "GPT-4o", ReleaseDate: d(2024, time.May, 13), SourceURL: "https://openai.com/index/hello-gpt-4o/", Assumption: "general availability date"},
	{ModelID: "o3-high", Family: "o3", ReleaseDate: d(2025, time.April, 16), SourceURL: "https://openai.com/index/introducing-o3-and-o4-mini/", Assumption: "high reasoning effort variant, same release date as o3"},
	{ModelID: "o3-medium", Family: "o3", ReleaseDate: d(2025, time.April, 16), SourceURL: "https://openai.com/index/introducing-o3-and-o4-mini/", Assumption: "medium reasoning effort variant, same release date as o3"},
	{ModelID: "o3-low", Family: "o3", ReleaseDate: d(2025, time.April, 16), SourceURL: "https://openai.com/index/introducing-o3-and-o4-mini/", Assumption: "low reasoning effort variant, same release date as o3"},
	{ModelID: "o4-mini-high", Family: "o4-mini", ReleaseDate: d(2025, time.April, 16), SourceURL: "https://openai.com/index/introducing-o3-and-o4-mini/", Assumption: "high reasoning effort variant"},
	{ModelID: "gpt-5-high", Family: "GPT-5", ReleaseDate: d(2025, time.August, 7), SourceURL: "https://openai.com/index/introducing-gpt-5/", Assumption: "high reasoning effort variant"},
	{ModelID: "gpt-5-medium", Family: "GPT-5", ReleaseDate: d(2025, time.August, 7), SourceURL: "https://openai.com/index/introducing-gpt-5/", Assumption: "medium reasoning effort variant"},
	{ModelID: "gpt-5-low", Family: "GPT-5", ReleaseDate: d(2025, time.August, 7), SourceURL: "https://openai.com/index/introducing-gpt-5/", Assumption: "low reasoning effort variant"},
	{ModelID: "gpt-5r-high-engprompt", Family: "GPT-5", ReleaseDate: d(2025, time.August, 7), SourceURL: "https://openai.com/index/introducing-gpt-5/", Assumption: "re-run with engineered prompt, same underlying release"},
	{ModelID: "gpt-5p2-high", Family: "GPT-5.2", ReleaseDate: d(2025, time.December, 11), SourceURL: "https://openai.com/", Assumption: "point release, high reasoning effort"},
	{ModelID: "claude", Family: "Claude Opus 4.1", ReleaseDate: d(2025, time.August, 5), SourceURL: "https://www.anthropic.com/news/claude-opus-4-1", Assumption: "generic 'claude' tag resolves to Opus 4.1 in this snapshot"},
	{ModelID: "claude-sonnet-45", Family: "Claude Sonnet 4.5", ReleaseDate: d(2025, time.September, 29), SourceURL: "https://www.anthropic.com/news/claude-sonnet-4-5", Assumption: "general availability date"},
	{ModelID: "claude-45", Family: "Claude Opus 4.5", ReleaseDate: d(2025, time.November, 24), SourceURL: "https://www.anthropic.com/news/claude-opus-4-5", Assumption: "general availability date"},
	{ModelID: "gemini", Family: "Gemini 2.5 Pro", ReleaseDate: d(2025, time.March, 25), SourceURL: "https://blog.google/technology/google-deepmind/gemini-model-thinking-updates-march-2025/", Assumption: "generic 'gemini' tag resolves to 2.5 Pro in this snapshot"},
	{ModelID: "gemini-3", Family: "Gemini 3", ReleaseDate: d(2025, time.November, 18), SourceURL: "https://blog.google/technology/ai/gemini-3/", Assumption: "general availability date"},
	{ModelID: "grok", Family: "Grok 4", ReleaseDate: d(2025, time.July, 9), SourceURL: "https://x.ai/news/grok-4", Assumption: "generic 'grok' tag resolves to Grok 4 in this snapshot"},
}

// ReleaseDateFor returns the release date for a model id and whether it was
// found. Callers in the Temporal Growth Engine raise ModelReleaseMissing when
// ok is false.
func ReleaseDateFor(modelID string) (time.Time, bool) {
	for _, r := range ModelReleases {
		if r.ModelID == modelID {
			return r.ReleaseDate, true
		}
	}
	return time.Time{}, false
}
