// Package growth implements the Temporal Growth Engine (§4.11): exposure and
// capability-frontier trend fitting, the anchored monthly risk series, its
// absolute-increment estimators, the exposure/capability decomposition
// identity, and per-sector industry projections.
package growth

import (
	"math"
	"sort"

	"airiskmodel/pkg/core/stats"
)

// ExposureTrend fits the annual national (or sector) exposure series per
// §4.11 step 1: a CAGR between the first and last year, and a log-linear OLS
// fit exposure_hat(m) = exp(alpha + beta*m) where m = 12*(year-year_min).
// yearMin is returned so callers can evaluate exposure_hat at arbitrary
// month offsets from the same base.
func ExposureTrend(series map[int]float64) (cagr, alpha, beta float64, yearMin int) {
	years := make([]int, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	sort.Ints(years)
	if len(years) == 0 {
		return math.NaN(), math.NaN(), math.NaN(), 0
	}
	yearMin = years[0]
	yearMax := years[len(years)-1]
	cagr = stats.CAGR(series[yearMin], series[yearMax], float64(yearMax-yearMin))

	var xs, ys []float64
	for _, y := range years {
		v := series[y]
		if v <= 0 {
			continue
		}
		xs = append(xs, float64(12*(y-yearMin)))
		ys = append(ys, math.Log(v))
	}
	alpha, beta = stats.OLSFit(xs, ys)
	return cagr, alpha, beta, yearMin
}

// ExposureHat evaluates the fit log-linear model at monthsSinceBase.
func ExposureHat(alpha, beta, monthsSinceBase float64) float64 {
	return math.Exp(alpha + beta*monthsSinceBase)
}
