// Package industry implements the Industry/Sector Aggregator (§4.6):
// employment-weighted roll-up of occupation exposure into annual industry
// and sector series, plus growth statistics.
package industry

import (
	"sort"

	"airiskmodel/pkg/core/config"
	"airiskmodel/pkg/models"
)

type yearCode struct {
	year int
	code string
}

// AggregateIndustry computes one IndustryYear row per (year, naics6) from
// industry x occupation employment rows and the occupation exposure table.
func AggregateIndustry(rows []models.EmploymentRow, exposures []models.OccupationExposure) []models.IndustryYear {
	exposureBySOC := make(map[string]float64, len(exposures))
	for _, e := range exposures {
		exposureBySOC[e.SOCCode] = e.Value
	}

	type accum struct {
		totalEmp, exposedEmp, matchedEmp float64
		title                            string
	}
	bucket := make(map[yearCode]*accum)
	var order []yearCode
	for _, r := range rows {
		if r.IsNational {
			continue
		}
		key := yearCode{r.Year, r.NAICS6}
		a := bucket[key]
		if a == nil {
			a = &accum{}
			bucket[key] = a
			order = append(order, key)
		}
		e := exposureBySOC[r.SOCCode]
		a.totalEmp += r.TotalEmp
		a.exposedEmp += r.TotalEmp * e
		if e > 0 {
			a.matchedEmp += r.TotalEmp
		}
	}

	out := make([]models.IndustryYear, 0, len(order))
	for _, key := range order {
		a := bucket[key]
		iy := models.IndustryYear{Year: key.year, Code: key.code, TotalEmp: a.totalEmp, ExposedEmp: a.exposedEmp, MatchedEmp: a.matchedEmp}
		if a.totalEmp > 0 {
			iy.IndustryExposure = a.exposedEmp / a.totalEmp
			iy.MatchRate = a.matchedEmp / a.totalEmp
		}
		out = append(out, iy)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Code < out[j].Code
	})
	return out
}

// AggregateSector rolls the per-NAICS6 industry series up to the 2-digit (or
// merged) sector grain, employment-weighted.
func AggregateSector(industryRows []models.IndustryYear) []models.IndustryYear {
	type accum struct {
		totalEmp, exposedEmp, matchedEmp float64
	}
	bucket := make(map[yearCode]*accum)
	var order []yearCode
	for _, r := range industryRows {
		sector := config.NormalizeSectorCode(r.Code)
		key := yearCode{r.Year, sector}
		a := bucket[key]
		if a == nil {
			a = &accum{}
			bucket[key] = a
			order = append(order, key)
		}
		a.totalEmp += r.TotalEmp
		a.exposedEmp += r.ExposedEmp
		a.matchedEmp += r.MatchedEmp
	}

	out := make([]models.IndustryYear, 0, len(order))
	for _, key := range order {
		a := bucket[key]
		iy := models.IndustryYear{Year: key.year, Code: key.code, Title: config.SectorTitleFor(key.code), TotalEmp: a.totalEmp, ExposedEmp: a.exposedEmp, MatchedEmp: a.matchedEmp}
		if a.totalEmp > 0 {
			iy.IndustryExposure = a.exposedEmp / a.totalEmp
			iy.MatchRate = a.matchedEmp / a.totalEmp
		}
		out = append(out, iy)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Code < out[j].Code
	})
	return out
}
