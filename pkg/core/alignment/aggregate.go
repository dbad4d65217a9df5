package alignment

import (
	"math"
	"sort"

	"airiskmodel/pkg/core/pipeline"
	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

// OccupationAlignment is one benchmark occupation's aligned exposure, before
// distribution across its covered SOC codes (§4.9 step 4). Value is NaN on
// EmptyPartition (no candidate tasks for the occupation's SOC set).
type OccupationAlignment struct {
	Occupation string
	SOCCodes   []string
	Value      float64
	TopK       int
}

// AlignByOccupation runs §4.9 steps 2-4: for every benchmark occupation with
// a resolved SOC set, aligns each of its gold prompts against the
// candidate taxonomy tasks and averages the per-prompt values. Occupations
// whose name mapping was unmatched are skipped (nothing to align against).
// Returns one EmptyPartitionNote per occupation whose SOC set had no
// candidate tasks at all.
func AlignByOccupation(
	prompts []models.GoldPrompt,
	tasks []models.Task,
	scores []models.TaskScore,
	nameMappings []models.NameMapping,
	topK int,
) ([]OccupationAlignment, []pipeline.EmptyPartitionNote) {
	scoreBySOCTask := scoreIndex(scores)

	socsByOccupation := make(map[string][]string)
	for _, m := range nameMappings {
		if m.Method == models.MatchUnmatched {
			continue
		}
		socsByOccupation[m.BenchmarkOccupation] = m.SOCCodes
	}

	promptsByOcc := make(map[string][]models.GoldPrompt)
	var order []string
	for _, p := range prompts {
		if _, ok := promptsByOcc[p.Occupation]; !ok {
			order = append(order, p.Occupation)
		}
		promptsByOcc[p.Occupation] = append(promptsByOcc[p.Occupation], p)
	}
	sort.Strings(order)

	var results []OccupationAlignment
	var notes []pipeline.EmptyPartitionNote
	for _, occ := range order {
		socs, ok := socsByOccupation[occ]
		if !ok {
			continue
		}
		candidates := CandidateTasks(tasks, socs)
		if len(candidates) == 0 {
			results = append(results, OccupationAlignment{Occupation: occ, SOCCodes: socs, Value: math.NaN(), TopK: 0})
			notes = append(notes, pipeline.EmptyPartitionNote{Occupation: occ, SOCCodes: socs})
			continue
		}

		var values []float64
		var topKUsed int
		for _, p := range promptsByOcc[occ] {
			v, k := AlignPrompt(p.Prompt, candidates, scoreBySOCTask, topK)
			values = append(values, v)
			topKUsed = k
		}
		results = append(results, OccupationAlignment{Occupation: occ, SOCCodes: socs, Value: stats.Mean(values), TopK: topKUsed})
	}
	return results, notes
}

// AdjustedExposure distributes each occupation's aligned value across its
// covered SOC codes (averaging when multiple benchmark occupations map to
// the same SOC, per §4.9 step 4), then produces the adjusted exposure
// vector of §4.9 step 5: SOCs with a usable aligned value get it in place of
// baseline E_occ; every other SOC, including one whose only contributing
// occupation hit EmptyPartition, retains baseline.
func AdjustedExposure(baseline []models.OccupationExposure, occAlignments []OccupationAlignment) []models.AlignedExposure {
	type accum struct {
		sum      float64
		count    int
		topK     int
		anyValid bool
	}
	bucket := make(map[string]*accum)
	for _, oa := range occAlignments {
		for _, soc := range oa.SOCCodes {
			a := bucket[soc]
			if a == nil {
				a = &accum{}
				bucket[soc] = a
			}
			if math.IsNaN(oa.Value) {
				continue
			}
			a.sum += oa.Value
			a.count++
			a.anyValid = true
			if oa.TopK > a.topK {
				a.topK = oa.TopK
			}
		}
	}

	baselineBySOC := make(map[string]float64, len(baseline))
	order := make([]string, 0, len(baseline))
	for _, b := range baseline {
		baselineBySOC[b.SOCCode] = b.Value
		order = append(order, b.SOCCode)
	}
	sort.Strings(order)

	out := make([]models.AlignedExposure, 0, len(order))
	for _, soc := range order {
		a, ok := bucket[soc]
		if !ok || !a.anyValid {
			out = append(out, models.AlignedExposure{SOCCode: soc, Value: baselineBySOC[soc], AlignmentTopK: 0})
			continue
		}
		out = append(out, models.AlignedExposure{SOCCode: soc, Value: a.sum / float64(a.count), AlignmentTopK: a.topK})
	}
	return out
}
