// Package transfer implements the Capability Transfer Engine (§4.8):
// name-matching benchmark occupations to taxonomy SOC codes, a TF-IDF k-NN
// transfer matrix over the occupation corpus, and shrinkage-weighted
// propagation of model win-rate probabilities to the full occupation
// universe.
package transfer

import (
	"sort"

	"airiskmodel/pkg/core/fuzzy"
	"airiskmodel/pkg/models"
)

// MapNames resolves each benchmark occupation title to zero or more taxonomy
// SOC codes, per §4.8 step 1: manual override first, then an exact match on
// cleaned titles, then a fuzzy match at the given cutoff, else unmatched.
func MapNames(benchmarkTitles []string, occupations []models.Occupation, manualOverride map[string][]string, cutoff float64) []models.NameMapping {
	cleanedToSOC := make(map[string]string, len(occupations))
	var cleanedTitles []string
	for _, occ := range occupations {
		clean := fuzzy.CleanTitle(occ.Title)
		if _, exists := cleanedToSOC[clean]; !exists {
			cleanedToSOC[clean] = occ.SOCCode
			cleanedTitles = append(cleanedTitles, clean)
		}
	}
	sort.Strings(cleanedTitles)

	out := make([]models.NameMapping, 0, len(benchmarkTitles))
	for _, raw := range benchmarkTitles {
		if socs, ok := manualOverride[raw]; ok {
			out = append(out, models.NameMapping{BenchmarkOccupation: raw, SOCCodes: append([]string{}, socs...), Method: models.MatchManualSplit})
			continue
		}

		clean := fuzzy.CleanTitle(raw)
		if soc, ok := cleanedToSOC[clean]; ok {
			out = append(out, models.NameMapping{BenchmarkOccupation: raw, SOCCodes: []string{soc}, Method: models.MatchExact})
			continue
		}

		matches := fuzzy.GetCloseMatches(clean, cleanedTitles, cutoff)
		if len(matches) > 0 {
			best := matches[0]
			soc := cleanedToSOC[best.Value]
			out = append(out, models.NameMapping{BenchmarkOccupation: raw, SOCCodes: []string{soc}, Method: models.MatchFuzzy, Similarity: best.Ratio})
			continue
		}

		out = append(out, models.NameMapping{BenchmarkOccupation: raw, Method: models.MatchUnmatched})
	}
	return out
}
