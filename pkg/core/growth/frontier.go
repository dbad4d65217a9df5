package growth

import (
	"math"
	"sort"
	"time"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// FrontierPoint is one release-date step of the capability frontier.
type FrontierPoint struct {
	Date  time.Time
	Value float64
}

// BuildFrontier groups models by release date, takes the max win rate per
// date, then takes the cumulative maximum over time, per §4.11 step 2 — the
// frontier is monotonically non-decreasing by construction (§8 property 8,
// scenario S5).
func BuildFrontier(releases []models.ModelBenchmark) []FrontierPoint {
	maxByDate := make(map[time.Time]float64)
	for _, m := range releases {
		if v, ok := maxByDate[m.ReleaseDate]; !ok || m.GlobalWinRate > v {
			maxByDate[m.ReleaseDate] = m.GlobalWinRate
		}
	}
	dates := make([]time.Time, 0, len(maxByDate))
	for d := range maxByDate {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	out := make([]FrontierPoint, 0, len(dates))
	running := math.Inf(-1)
	for _, d := range dates {
		if v := maxByDate[d]; v > running {
			running = v
		}
		out = append(out, FrontierPoint{Date: d, Value: running})
	}
	return out
}

// monthsBetween counts whole calendar months from a to b (day-of-month
// ignored), matching the "month-start stamps" granularity of §4.11 step 3.
func monthsBetween(a, b time.Time) float64 {
	return float64((b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month()))
}

// FrontierTrend fits CAGR and a log-linear OLS slope on the frontier series,
// per §4.11 step 2, using the same month-count basis as ExposureTrend.
func FrontierTrend(frontier []FrontierPoint) (cagr, alpha, beta float64) {
	if len(frontier) < 2 {
		return math.NaN(), math.NaN(), math.NaN()
	}
	base := frontier[0].Date
	last := frontier[len(frontier)-1]

	var xs, ys []float64
	for _, p := range frontier {
		if p.Value <= 0 {
			continue
		}
		xs = append(xs, monthsBetween(base, p.Date))
		ys = append(ys, math.Log(p.Value))
	}
	alpha, beta = stats.OLSFit(xs, ys)

	years := monthsBetween(base, last.Date) / 12
	cagr = stats.CAGR(frontier[0].Value, last.Value, years)
	return cagr, alpha, beta
}
