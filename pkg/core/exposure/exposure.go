// Package exposure implements the Occupation Exposure Aggregator (§4.4): the
// task-weight-weighted mean of task automatability over each occupation.
package exposure

import "airiskmodel/pkg/models"

// Aggregate computes E_occ = Σ(task_weight*task_auto_score)/Σtask_weight for
// every occupation appearing in tasks. Occupations with a weight but no
// matching score contribute score=0, per §4.4's "missing scores after join
// default to 0".
func Aggregate(tasks []models.Task, scores []models.TaskScore, occupations []models.Occupation) []models.OccupationExposure {
	scoreByKey := make(map[string]float64, len(scores))
	for _, s := range scores {
		scoreByKey[s.SOCCode+"|"+s.TaskID] = s.Score
	}

	type accum struct {
		weightedSum float64
		weightSum   float64
	}
	bySOC := make(map[string]*accum)
	var order []string
	for _, t := range tasks {
		a := bySOC[t.SOCCode]
		if a == nil {
			a = &accum{}
			bySOC[t.SOCCode] = a
			order = append(order, t.SOCCode)
		}
		score := scoreByKey[t.SOCCode+"|"+t.TaskID] // 0 when absent
		a.weightedSum += t.Weight * score
		a.weightSum += t.Weight
	}

	titles := make(map[string]string, len(occupations))
	for _, o := range occupations {
		titles[o.SOCCode] = o.Title
	}

	out := make([]models.OccupationExposure, 0, len(order))
	for _, soc := range order {
		a := bySOC[soc]
		var e float64
		if a.weightSum > 0 {
			e = a.weightedSum / a.weightSum
		}
		out = append(out, models.OccupationExposure{SOCCode: soc, Title: titles[soc], Value: e})
	}
	return out
}
