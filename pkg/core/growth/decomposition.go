package growth

import (
	"math"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// CombinedMonthlyGrowth computes (1+g_exp)(1+g_cap)-1 from the two
// log-linear monthly betas, per §4.11 step 5.
func CombinedMonthlyGrowth(exposureBeta, frontierBeta float64) float64 {
	gExp := math.Exp(exposureBeta) - 1
	gCap := math.Exp(frontierBeta) - 1
	return (1+gExp)*(1+gCap) - 1
}

// RiskSeriesCAGR computes the monthly CAGR of the anchored risk series
// end-to-end, the "combined monthly CAGR of the anchored risk series" that
// the decomposition identity (§8 property 10) is checked against.
func RiskSeriesCAGR(points []models.MonthlyRiskPoint) float64 {
	if len(points) < 2 {
		return math.NaN()
	}
	start := points[0].Risk
	end := points[len(points)-1].Risk
	return stats.CAGR(start, end, float64(len(points)-1))
}
