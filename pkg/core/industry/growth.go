package industry

import (
	"math"
	"sort"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// PivotByCode groups IndustryYear rows into per-code annual value series,
// keyed on IndustryExposure, for growth computation.
func PivotByCode(rows []models.IndustryYear) map[string]map[int]float64 {
	out := make(map[string]map[int]float64)
	for _, r := range rows {
		series, ok := out[r.Code]
		if !ok {
			series = make(map[int]float64)
			out[r.Code] = series
		}
		series[r.Year] = r.IndustryExposure
	}
	return out
}

// ComputeGrowth derives GrowthStats for one code's annual series: absolute
// change, percent change, and CAGR span the earliest-to-latest years;
// YoY compares the latest year to the year immediately before it. Returns
// NaN fields (per §4.6's rule) when the series has fewer than 2 points or a
// denominator is non-positive.
func ComputeGrowth(code string, series map[int]float64) models.GrowthStats {
	g := models.GrowthStats{Code: code, AbsChange: math.NaN(), PctChange: math.NaN(), CAGR: math.NaN(), YoY: math.NaN()}
	if len(series) < 2 {
		return g
	}
	years := make([]int, 0, len(series))
	for y := range series {
		years = append(years, y)
	}
	sort.Ints(years)

	y0, y1 := years[0], years[len(years)-1]
	start, end := series[y0], series[y1]
	g.StartYear, g.EndYear = y0, y1
	g.StartValue, g.EndValue = start, end

	periods := float64(y1 - y0)
	g.AbsChange = end - start
	if start > 0 {
		g.PctChange = end/start - 1
	}
	g.CAGR = stats.CAGR(start, end, periods)

	if len(years) >= 2 {
		prior := years[len(years)-2]
		priorVal := series[prior]
		if priorVal > 0 {
			g.YoY = end/priorVal - 1
		}
	}
	return g
}

// ComputeGrowthAll runs ComputeGrowth for every code in a pivoted series map.
func ComputeGrowthAll(pivoted map[string]map[int]float64) []models.GrowthStats {
	codes := make([]string, 0, len(pivoted))
	for c := range pivoted {
		codes = append(codes, c)
	}
	sort.Strings(codes)

	out := make([]models.GrowthStats, 0, len(codes))
	for _, c := range codes {
		out = append(out, ComputeGrowth(c, pivoted[c]))
	}
	return out
}
