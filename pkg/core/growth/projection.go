package growth

import (
	"math"
	"sort"

	"airiskmodel/pkg/models"
)

// IndustryProjections computes the per-sector projection rows of §4.11
// step 6: a log-linear exposure growth gE_s fit on each sector's annual
// series, combined with the capability frontier's monthly growth gCap into
// gR_s, and both the current-month absolute increment and the back-computed
// historical average increment over T elapsed months.
func IndustryProjections(sectorSeries map[string]map[int]float64, sectorCurrentRisk map[string]float64, gCap float64, t float64) []models.IndustryProjection {
	sectors := make([]string, 0, len(sectorSeries))
	for s := range sectorSeries {
		sectors = append(sectors, s)
	}
	sort.Strings(sectors)

	out := make([]models.IndustryProjection, 0, len(sectors))
	for _, s := range sectors {
		_, _, beta, _ := ExposureTrend(sectorSeries[s])
		gE := math.Exp(beta) - 1
		gR := (1+gE)*(1+gCap) - 1
		rNow := sectorCurrentRisk[s]

		proj := models.IndustryProjection{
			Sector:         s,
			CurrentRisk:    rNow,
			ExposureGrowth: gE,
			CombinedGrowth: gR,
		}
		if t > 0 {
			proj.CurrentDeltaPP = rNow * gR * 100
			denom := math.Pow(1+gR, t)
			if denom != 0 {
				r0 := rNow / denom
				proj.HistoricalAvgPP = (rNow - r0) / t * 100
			} else {
				proj.HistoricalAvgPP = math.NaN()
			}
		} else {
			proj.CurrentDeltaPP = math.NaN()
			proj.HistoricalAvgPP = math.NaN()
		}
		out = append(out, proj)
	}
	return out
}
