package toolcorpus

import (
	"sort"

	"airiskmodel/pkg/models"
)

// dedupKey is (source, name, tool_text), per §4.1's dedup contract.
type dedupKey struct {
	source models.ToolSource
	name   string
	text   string
}

// Merge concatenates the three sources and removes duplicate rows by
// (source, tool_name, tool_text), then stable-sorts by (source, tool_id) for
// reproducible output per §5's ordering guarantee.
func Merge(a, b, c []models.Tool) []models.Tool {
	seen := make(map[dedupKey]bool)
	var all []models.Tool
	for _, group := range [][]models.Tool{a, b, c} {
		for _, t := range group {
			key := dedupKey{t.Source, t.Name, t.Text}
			if seen[key] {
				continue
			}
			seen[key] = true
			all = append(all, t)
		}
	}
	sort.SliceStable(all, func(i, j int) bool {
		if all[i].Source != all[j].Source {
			return all[i].Source < all[j].Source
		}
		return all[i].ToolID < all[j].ToolID
	})
	return all
}
