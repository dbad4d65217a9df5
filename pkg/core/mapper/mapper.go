// Package mapper implements the Task-to-Tool Mapper (§4.3): lenient and
// strict TF-IDF-cosine variants that score each task's automatability
// against the tool corpus.
package mapper

import (
	"math"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/core/textsim"
	"airiskmodel/pkg/models"
)

const batchSize = 400

// LenientScore computes the lenient automatability score for every task
// against the full tool corpus, per §4.3. tasks and tools must carry
// non-empty Text fields (tool_text / task text).
func LenientScore(tasks []models.Task, tools []models.Tool) []models.TaskScore {
	if len(tasks) == 0 || len(tools) == 0 {
		return nil
	}

	toolTexts := make([]string, len(tools))
	for i, t := range tools {
		toolTexts[i] = t.Text
	}
	taskTexts := make([]string, len(tasks))
	for i, t := range tasks {
		taskTexts[i] = t.Text
	}

	vec := textsim.NewVectorizer(2, 200000)
	vec.Fit(append(append([]string{}, toolTexts...), taskTexts...))
	toolVecs := vec.Transform(toolTexts)
	taskVecs := vec.Transform(taskTexts)

	maxSim, topIdx := textsim.BatchMaxSim(taskVecs, toolVecs, batchSize)

	p10 := stats.Percentile(maxSim, 10)
	p90 := stats.Percentile(maxSim, 90)
	denom := p90 - p10
	if denom == 0 {
		denom = 1e-9
	}

	out := make([]models.TaskScore, len(tasks))
	for i, task := range tasks {
		a := stats.Clip((maxSim[i]-p10)/denom, 0, 1)
		a = math.Max(a, 0.02)
		ts := models.TaskScore{SOCCode: task.SOCCode, TaskID: task.TaskID, Score: a}
		if topIdx[i] >= 0 {
			ts.TopToolIndex = topIdx[i]
			ts.TopToolName = tools[topIdx[i]].Name
			ts.TopSource = tools[topIdx[i]].Source
		}
		out[i] = ts
	}
	return out
}

// StrictScore computes the strict automatability score, restricted to Core
// tasks, using top-3 similarity corroboration and source diversity, per
// §4.3. Non-Core tasks are simply absent from the output.
func StrictScore(tasks []models.Task, tools []models.Tool) []models.TaskScore {
	var core []models.Task
	for _, t := range tasks {
		if t.Type == models.TaskCore {
			core = append(core, t)
		}
	}
	if len(core) == 0 || len(tools) == 0 {
		return nil
	}

	toolTexts := make([]string, len(tools))
	for i, t := range tools {
		toolTexts[i] = t.Text
	}
	taskTexts := make([]string, len(core))
	for i, t := range core {
		taskTexts[i] = t.Text
	}

	vec := textsim.NewVectorizer(2, 200000)
	vec.Fit(append(append([]string{}, toolTexts...), taskTexts...))
	toolVecs := vec.Transform(toolTexts)
	taskVecs := vec.Transform(taskTexts)

	s1 := make([]float64, len(core))
	top3Idx := make([][]int, len(core))
	top3Sim := make([][]float64, len(core))
	for i, row := range taskVecs {
		idx, sims := textsim.TopK(row, toolVecs, 3)
		top3Idx[i] = idx
		top3Sim[i] = sims
		if len(sims) > 0 {
			s1[i] = sims[0]
		}
	}

	p80 := stats.Percentile(s1, 80)
	p95 := stats.Percentile(s1, 95)
	denom := p95 - p80
	if denom == 0 {
		denom = 1e-9
	}

	out := make([]models.TaskScore, len(core))
	for i, task := range core {
		simComponent := stats.Clip((s1[i]-p80)/denom, 0, 1)

		var corroboration float64
		if s1[i] > 1e-9 && len(top3Sim[i]) >= 3 {
			r2 := top3Sim[i][1] / s1[i]
			r3 := top3Sim[i][2] / s1[i]
			corroboration = stats.Clip((r2+r3)/2, 0, 1)
		}

		sources := make(map[models.ToolSource]bool)
		for _, idx := range top3Idx[i] {
			sources[tools[idx].Source] = true
		}
		diversity := float64(len(sources)) / 3.0

		strictAuto := simComponent * (0.7*corroboration + 0.3*diversity)

		ts := models.TaskScore{SOCCode: task.SOCCode, TaskID: task.TaskID, Score: strictAuto}
		if len(top3Idx[i]) > 0 {
			ts.TopToolIndex = top3Idx[i][0]
			ts.TopToolName = tools[top3Idx[i][0]].Name
			ts.TopSource = tools[top3Idx[i][0]].Source
		}
		out[i] = ts
	}
	return out
}
