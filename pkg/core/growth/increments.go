package growth

import (
	"math"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// Increments computes the four absolute-increment estimators of §4.11
// step 4 over the anchored monthly series: mean and median of the
// month-over-month Δ_pp, and OLS/Theil-Sen slopes of the risk level itself
// against the month index, expressed in percentage points per month.
func Increments(points []models.MonthlyRiskPoint) (meanDeltaPP, medianDeltaPP, olsSlopePP, theilSenPP float64) {
	if len(points) < 2 {
		return math.NaN(), math.NaN(), math.NaN(), math.NaN()
	}
	deltas := make([]float64, 0, len(points)-1)
	for i := 1; i < len(points); i++ {
		deltas = append(deltas, points[i].DeltaPP)
	}
	meanDeltaPP = stats.Mean(deltas)
	medianDeltaPP = stats.Median(deltas)

	idx := make([]float64, len(points))
	risk := make([]float64, len(points))
	for i, p := range points {
		idx[i] = float64(i)
		risk[i] = p.Risk
	}
	olsSlopePP = stats.OLSSlope(idx, risk) * 100
	theilSenPP = stats.TheilSenSlope(idx, risk) * 100
	return meanDeltaPP, medianDeltaPP, olsSlopePP, theilSenPP
}
