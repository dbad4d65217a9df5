// Package risk implements the Risk Composer (§4.10): per-(model, soc) risk
// from exposure and transferred win probability, employment-weighted
// roll-up to sector and national risk. Two exposure inputs are supported —
// the baseline occupation exposure and the Task Alignment Engine's adjusted
// exposure vector — selectable by the caller per run (§9's "rigorous" vs
// "task-aligned" paths).
package risk

import "airiskmodel/pkg/models"

// ComposeOccupationRisk computes risk_occ(s) = E(s) * p_occ(m,s) for every
// (model, soc) pair in winProbs, using exposureBySOC as the exposure input
// (baseline E_occ or adjusted E_adj, depending on the selected path).
func ComposeOccupationRisk(exposureBySOC map[string]float64, winProbs []models.OccupationWinProbability) []models.RiskRow {
	out := make([]models.RiskRow, 0, len(winProbs))
	for _, wp := range winProbs {
		e := exposureBySOC[wp.SOCCode]
		out = append(out, models.RiskRow{
			ModelID:  wp.ModelID,
			SOCCode:  wp.SOCCode,
			Exposure: e,
			POcc:     wp.POcc,
			Risk:     e * wp.POcc,
		})
	}
	return out
}

// ExposureMap builds a SOCCode -> exposure lookup from a baseline
// occupation-exposure table.
func ExposureMap(exposures []models.OccupationExposure) map[string]float64 {
	out := make(map[string]float64, len(exposures))
	for _, e := range exposures {
		out[e.SOCCode] = e.Value
	}
	return out
}

// AdjustedExposureMap builds a SOCCode -> exposure lookup from the Task
// Alignment Engine's adjusted exposure vector.
func AdjustedExposureMap(adjusted []models.AlignedExposure) map[string]float64 {
	out := make(map[string]float64, len(adjusted))
	for _, a := range adjusted {
		out[a.SOCCode] = a.Value
	}
	return out
}
