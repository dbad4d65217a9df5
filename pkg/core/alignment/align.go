// Package alignment implements the Task Alignment Engine (§4.9): aligning
// benchmark gold-task prompts to the occupation task taxonomy within each
// mapped occupation's SOC set, then inverting to an adjusted occupation
// exposure vector.
package alignment

import (
	"math"

	"airiskmodel/pkg/core/textsim"
	"airiskmodel/pkg/models"
)

const minWeight = 1e-9

// CandidateTasks returns the taxonomy tasks belonging to any SOC in socs,
// the "candidate taxonomy tasks" of §4.9 step 2.
func CandidateTasks(tasks []models.Task, socs []string) []models.Task {
	wanted := make(map[string]bool, len(socs))
	for _, s := range socs {
		wanted[s] = true
	}
	var out []models.Task
	for _, t := range tasks {
		if wanted[t.SOCCode] {
			out = append(out, t)
		}
	}
	return out
}

// scoreIndex maps (soc, task_id) to its automatability score for lookup
// during alignment.
func scoreIndex(scores []models.TaskScore) map[string]float64 {
	out := make(map[string]float64, len(scores))
	for _, s := range scores {
		out[s.SOCCode+"|"+s.TaskID] = s.Score
	}
	return out
}

// AlignPrompt computes one prompt's aligned exposure against a candidate
// task set, per §4.9 step 3. candidates must be non-empty; callers raise
// EmptyPartition before calling this when the SOC set has no candidates.
// Returns the aligned value and the number of candidate tasks actually used
// in the top-k (min(topK, len(candidates))).
func AlignPrompt(promptText string, candidates []models.Task, scores map[string]float64, topK int) (float64, int) {
	texts := make([]string, len(candidates))
	for i, c := range candidates {
		texts[i] = c.Text
	}
	vec := textsim.NewVectorizer(1, 0)
	vec.Fit(texts)
	candidateVecs := vec.Transform(texts)
	promptVec := vec.Transform([]string{promptText})[0]

	topIdx, topSim := textsim.TopK(promptVec, candidateVecs, topK)
	used := len(topIdx)

	topScores := make([]float64, used)
	topWeights := make([]float64, used)
	for i, idx := range topIdx {
		task := candidates[idx]
		topScores[i] = scores[task.SOCCode+"|"+task.TaskID]
		topWeights[i] = math.Max(task.Weight, minWeight)
	}

	raw := make([]float64, used)
	var rawSum float64
	for i := range raw {
		raw[i] = topSim[i] * topWeights[i]
		rawSum += raw[i]
	}

	// Fallback 1: task_weight alone, still restricted to the same top-k.
	if !(rawSum > 0) {
		raw = topWeights
		rawSum = 0
		for _, w := range raw {
			rawSum += w
		}
	}

	// Fallback 2: uniform over the same top-k (dead in practice since
	// task_weight is floored at >=0.01, so fallback 1 never sums to zero).
	if !(rawSum > 0) {
		raw = make([]float64, used)
		for i := range raw {
			raw[i] = 1
			rawSum++
		}
	}

	var aligned float64
	for i, w := range raw {
		aligned += (w / rawSum) * topScores[i]
	}
	return aligned, used
}
