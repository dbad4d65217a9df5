package risk

import (
	"sort"

	"airiskmodel/pkg/models"
)

type sectorAccum struct {
	totalEmp, exposureEmp, affectedEmp float64
}

// ComposeSectorRisk rolls per-(model, soc) risk up to (model, sector) via
// the industry x occupation employment table, per §4.10: exposure_emp =
// Σemp*E, affected_emp = Σemp*risk_occ, risk_sector = affected_emp/total_emp,
// effective_win = affected_emp/exposure_emp (zero when exposure_emp is 0).
// WeightedContribution is left unset here; pass the result through
// AttachContribution to fill it in.
func ComposeSectorRisk(riskRows []models.RiskRow, employment []models.EmploymentRow) []models.SectorRisk {
	exposureBySOC := make(map[string]float64, len(riskRows))
	riskByModelSOC := make(map[string]map[string]float64)
	var modelOrder []string
	for _, r := range riskRows {
		exposureBySOC[r.SOCCode] = r.Exposure
		m, ok := riskByModelSOC[r.ModelID]
		if !ok {
			m = make(map[string]float64)
			riskByModelSOC[r.ModelID] = m
			modelOrder = append(modelOrder, r.ModelID)
		}
		m[r.SOCCode] = r.Risk
	}
	sort.Strings(modelOrder)

	var out []models.SectorRisk
	for _, modelID := range modelOrder {
		riskBySOC := riskByModelSOC[modelID]
		bucket := make(map[string]*sectorAccum)
		var sectorOrder []string
		for _, emp := range employment {
			if emp.IsNational {
				continue
			}
			a := bucket[emp.SectorCode]
			if a == nil {
				a = &sectorAccum{}
				bucket[emp.SectorCode] = a
				sectorOrder = append(sectorOrder, emp.SectorCode)
			}
			a.totalEmp += emp.TotalEmp
			a.exposureEmp += emp.TotalEmp * exposureBySOC[emp.SOCCode]
			a.affectedEmp += emp.TotalEmp * riskBySOC[emp.SOCCode]
		}
		sort.Strings(sectorOrder)
		for _, sector := range sectorOrder {
			a := bucket[sector]
			sr := models.SectorRisk{
				ModelID:     modelID,
				Sector:      sector,
				ExposureEmp: a.exposureEmp,
				AffectedEmp: a.affectedEmp,
				TotalEmp:    a.totalEmp,
			}
			if a.totalEmp > 0 {
				sr.RiskSector = a.affectedEmp / a.totalEmp
			}
			if a.exposureEmp > 0 {
				sr.EffectiveWin = a.affectedEmp / a.exposureEmp
			}
			out = append(out, sr)
		}
	}
	return out
}

// ComposeNationalRisk rolls sector risk up to national risk per model:
// risk_nat = Σaffected_emp/Σtotal_emp, exposure_nat = Σexposure_emp/Σtotal_emp.
func ComposeNationalRisk(sectorRisk []models.SectorRisk) []models.NationalRisk {
	type accum struct{ affected, total, exposure float64 }
	bucket := make(map[string]*accum)
	var order []string
	for _, sr := range sectorRisk {
		a := bucket[sr.ModelID]
		if a == nil {
			a = &accum{}
			bucket[sr.ModelID] = a
			order = append(order, sr.ModelID)
		}
		a.affected += sr.AffectedEmp
		a.total += sr.TotalEmp
		a.exposure += sr.ExposureEmp
	}
	sort.Strings(order)

	out := make([]models.NationalRisk, 0, len(order))
	for _, modelID := range order {
		a := bucket[modelID]
		nr := models.NationalRisk{ModelID: modelID}
		if a.total > 0 {
			nr.RiskNat = a.affected / a.total
			nr.ExposureNat = a.exposure / a.total
		}
		out = append(out, nr)
	}
	return out
}

// AttachContribution fills in each sector row's WeightedContribution =
// emp_share * risk_sector, where emp_share is the sector's share of its
// model's national total employment. By construction these sum to
// risk_nat for each model (§8 testable property 6).
func AttachContribution(sectorRisk []models.SectorRisk) []models.SectorRisk {
	totalByModel := make(map[string]float64)
	for _, sr := range sectorRisk {
		totalByModel[sr.ModelID] += sr.TotalEmp
	}
	out := make([]models.SectorRisk, len(sectorRisk))
	for i, sr := range sectorRisk {
		total := totalByModel[sr.ModelID]
		if total > 0 {
			sr.WeightedContribution = (sr.TotalEmp / total) * sr.RiskSector
		}
		out[i] = sr
	}
	return out
}

// BestModel returns the national-risk row with the highest RiskNat.
func BestModel(nationalRisk []models.NationalRisk) (models.NationalRisk, bool) {
	if len(nationalRisk) == 0 {
		return models.NationalRisk{}, false
	}
	best := nationalRisk[0]
	for _, nr := range nationalRisk[1:] {
		if nr.RiskNat > best.RiskNat {
			best = nr
		}
	}
	return best, true
}
