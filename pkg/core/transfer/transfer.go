package transfer

import (
	"sort"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// anchorOccupations returns, for every SOC code covered by a non-unmatched
// name mapping, the benchmark occupation title it was resolved from. When
// more than one benchmark title maps to the same SOC (e.g. a manual split
// shared across titles), the first one encountered wins — downstream direct
// win-rate lookups only need one representative title per anchor SOC.
func anchorOccupations(mappings []models.NameMapping) map[string]string {
	out := make(map[string]string)
	for _, m := range mappings {
		if m.Method == models.MatchUnmatched {
			continue
		}
		for _, soc := range m.SOCCodes {
			if _, exists := out[soc]; !exists {
				out[soc] = m.BenchmarkOccupation
			}
		}
	}
	return out
}

// directWinRates averages the per-sector occupation win rate into one
// (model, occupation-title) figure, since the transfer engine anchors at
// occupation grain, not sector grain.
func directWinRates(rows []models.OccupationWinRate) map[string]map[string]float64 {
	type accum struct {
		sum   float64
		count int
	}
	bucket := make(map[string]map[string]*accum)
	for _, r := range rows {
		byOcc, ok := bucket[r.ModelID]
		if !ok {
			byOcc = make(map[string]*accum)
			bucket[r.ModelID] = byOcc
		}
		a := byOcc[r.Occupation]
		if a == nil {
			a = &accum{}
			byOcc[r.Occupation] = a
		}
		a.sum += r.WinRate
		a.count++
	}
	out := make(map[string]map[string]float64, len(bucket))
	for model, byOcc := range bucket {
		out[model] = make(map[string]float64, len(byOcc))
		for occ, a := range byOcc {
			out[model][occ] = a.sum / float64(a.count)
		}
	}
	return out
}

// ComputeWinProbabilities produces the final per-(model, soc) transferred
// win probability for every occupation in allSOCs, combining direct
// anchoring (§4.8 step 1) with k-NN shrinkage transfer (§4.8 steps 3-4).
func ComputeWinProbabilities(
	totals []models.ModelBenchmark,
	occWinRates []models.OccupationWinRate,
	nameMappings []models.NameMapping,
	transferRows []TransferRow,
	alphas map[string]float64,
	allSOCs []string,
) []models.OccupationWinProbability {
	anchorOf := anchorOccupations(nameMappings)
	direct := directWinRates(occWinRates)

	rowBySOC := make(map[string]TransferRow, len(transferRows))
	for _, r := range transferRows {
		rowBySOC[r.SOCCode] = r
	}

	socs := append([]string{}, allSOCs...)
	sort.Strings(socs)

	var out []models.OccupationWinProbability
	for _, model := range totals {
		modelDirect := direct[model.ModelID]
		for _, soc := range socs {
			if occTitle, anchored := anchorOf[soc]; anchored {
				p := model.GlobalWinRate
				if v, ok := modelDirect[occTitle]; ok {
					p = v
				}
				out = append(out, models.OccupationWinProbability{
					ModelID: model.ModelID, SOCCode: soc, POcc: stats.Clip(p, 0, 1), Anchored: true,
				})
				continue
			}

			alpha := alphas[soc]
			row := rowBySOC[soc]
			var weighted float64
			for anchorSOC, weight := range row.Weights {
				pAnchor := model.GlobalWinRate
				if occTitle, ok := anchorOf[anchorSOC]; ok {
					if v, ok := modelDirect[occTitle]; ok {
						pAnchor = v
					}
				}
				weighted += weight * pAnchor
			}
			p := alpha*weighted + (1-alpha)*model.GlobalWinRate
			out = append(out, models.OccupationWinProbability{
				ModelID: model.ModelID, SOCCode: soc, POcc: stats.Clip(p, 0, 1), Alpha: alpha,
			})
		}
	}
	return out
}
