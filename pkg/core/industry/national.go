package industry

import "airiskmodel/pkg/models"

// NationalExposureSeries computes one national employment-weighted exposure
// figure per year from the national-occupation employment rows (IsNational)
// and the occupation exposure table, for the Temporal Growth Engine's annual
// exposure trend input (§4.11 step 1).
func NationalExposureSeries(rows []models.EmploymentRow, exposures []models.OccupationExposure) map[int]float64 {
	exposureBySOC := make(map[string]float64, len(exposures))
	for _, e := range exposures {
		exposureBySOC[e.SOCCode] = e.Value
	}

	type accum struct{ totalEmp, exposedEmp float64 }
	bucket := make(map[int]*accum)
	for _, r := range rows {
		if !r.IsNational {
			continue
		}
		a := bucket[r.Year]
		if a == nil {
			a = &accum{}
			bucket[r.Year] = a
		}
		a.totalEmp += r.TotalEmp
		a.exposedEmp += r.TotalEmp * exposureBySOC[r.SOCCode]
	}

	out := make(map[int]float64, len(bucket))
	for year, a := range bucket {
		if a.totalEmp > 0 {
			out[year] = a.exposedEmp / a.totalEmp
		}
	}
	return out
}
