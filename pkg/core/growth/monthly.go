package growth

import (
	"math"
	"time"

	"airiskmodel/pkg/models"
)

// MonthlyGrid returns month-start timestamps from the month containing min
// through the month containing max, inclusive, per §4.11 step 3.
func MonthlyGrid(min, max time.Time) []time.Time {
	cur := time.Date(min.Year(), min.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(max.Year(), max.Month(), 1, 0, 0, 0, 0, time.UTC)
	var out []time.Time
	for !cur.After(end) {
		out = append(out, cur)
		cur = cur.AddDate(0, 1, 0)
	}
	return out
}

// BuildMonthlySeries evaluates the anchored monthly risk series per §4.11
// step 3: the frontier value is carried forward as a step function, exposure
// is interpolated from the log-linear fit, risk_raw = exposure_hat*frontier,
// and the whole series is scaled so its last value equals currentRisk
// exactly (§8 property 9, scenario S6). When the raw series is identically
// zero — no component of growth is observable — the anchor degenerates to a
// flat line at currentRisk rather than dividing by zero.
func BuildMonthlySeries(grid []time.Time, frontier []FrontierPoint, expAlpha, expBeta float64, yearMin int, currentRisk float64) []models.MonthlyRiskPoint {
	points := make([]models.MonthlyRiskPoint, len(grid))
	fi := 0
	var lastFrontier float64
	for i, month := range grid {
		for fi < len(frontier) && !frontier[fi].Date.After(month) {
			lastFrontier = frontier[fi].Value
			fi++
		}
		monthsSinceBase := float64(12*(month.Year()-yearMin) + int(month.Month()) - 1)
		exposureHat := ExposureHat(expAlpha, expBeta, monthsSinceBase)
		points[i] = models.MonthlyRiskPoint{
			Month:       month,
			Frontier:    lastFrontier,
			ExposureHat: exposureHat,
			RiskRaw:     exposureHat * lastFrontier,
		}
	}
	if len(points) == 0 {
		return points
	}

	lastRaw := points[len(points)-1].RiskRaw
	if lastRaw != 0 {
		scale := currentRisk / lastRaw
		for i := range points {
			points[i].Risk = points[i].RiskRaw * scale
		}
	} else {
		for i := range points {
			points[i].Risk = currentRisk
		}
	}

	points[0].DeltaPP = math.NaN()
	for i := 1; i < len(points); i++ {
		points[i].DeltaPP = 100 * (points[i].Risk - points[i-1].Risk)
	}
	return points
}
