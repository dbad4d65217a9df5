package taxonomy

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/models"
)

var socPattern = regexp.MustCompile(`(\d{2}-\d{4})`)

// ExtractSOC pulls the NN-NNNN SOC code out of a raw onet_soc_code value
// (which may carry a trailing ".NN" variant suffix).
func ExtractSOC(onetSOCCode string) (string, bool) {
	m := socPattern.FindString(onetSOCCode)
	if m == "" {
		return "", false
	}
	return m, true
}

// TaskStatementColumns is the explicit schema for the task-statements file.
var TaskStatementColumns = []string{"O*NET-SOC Code", "Task ID", "Task", "Task Type"}

// TaskRatingColumns is the explicit schema for the task-ratings file.
var TaskRatingColumns = []string{"O*NET-SOC Code", "Task ID", "Scale ID", "Category", "Data Value"}

// OccupationColumns is the explicit schema for the occupation-data file.
var OccupationColumns = []string{"O*NET-SOC Code", "Title"}

// LoadOccupations parses occupation-data rows into models.Occupation,
// resolving the display title by preferring the row whose raw code ends in
// ".00" (the base variant), per §4.2/§4.4.
func LoadOccupations(rows []map[string]string) []models.Occupation {
	bySOC := make(map[string]models.Occupation)
	for _, row := range rows {
		raw := row["O*NET-SOC Code"]
		soc, ok := ExtractSOC(raw)
		if !ok {
			continue
		}
		isBase := strings.HasSuffix(raw, ".00")
		existing, seen := bySOC[soc]
		if !seen || (isBase && !existing.BaseVariant) {
			bySOC[soc] = models.Occupation{SOCCode: soc, Title: row["Title"], BaseVariant: isBase}
		}
	}
	out := make([]models.Occupation, 0, len(bySOC))
	for _, occ := range bySOC {
		out = append(out, occ)
	}
	return out
}

type taskKey struct{ soc, taskID string }

type ratingAccum struct {
	imSum, imCount     float64
	rtSum, rtCount     float64
	ftWeighted, ftBase float64 // Σ(category*value), Σ(value) over FT rows
}

// LoadTasks derives per-task weights from the statements and ratings tables,
// following the normalization chain in §4.2.
func LoadTasks(statementRows, ratingRows []map[string]string) []models.Task {
	texts := make(map[taskKey]models.Task)
	var order []taskKey

	for _, row := range statementRows {
		soc, ok := ExtractSOC(row["O*NET-SOC Code"])
		if !ok {
			continue
		}
		taskID := row["Task ID"]
		key := taskKey{soc, taskID}
		taskType := models.TaskSupplemental
		if strings.EqualFold(strings.TrimSpace(row["Task Type"]), "Core") {
			taskType = models.TaskCore
		}
		if row["Task"] == "" {
			continue // text non-empty invariant
		}
		texts[key] = models.Task{SOCCode: soc, TaskID: taskID, Text: row["Task"], Type: taskType}
		order = append(order, key)
	}

	accum := make(map[taskKey]*ratingAccum)
	for _, row := range ratingRows {
		soc, ok := ExtractSOC(row["O*NET-SOC Code"])
		if !ok {
			continue
		}
		key := taskKey{soc, row["Task ID"]}
		if _, ok := texts[key]; !ok {
			continue
		}
		value, err := strconv.ParseFloat(row["Data Value"], 64)
		if err != nil {
			continue // ParseWarning: malformed rating dropped silently
		}
		a := accum[key]
		if a == nil {
			a = &ratingAccum{}
			accum[key] = a
		}
		switch strings.ToUpper(strings.TrimSpace(row["Scale ID"])) {
		case "IM":
			a.imSum += value
			a.imCount++
		case "RT":
			a.rtSum += value
			a.rtCount++
		case "FT":
			cat, err := strconv.ParseFloat(row["Category"], 64)
			if err != nil {
				continue
			}
			a.ftWeighted += cat * value
			a.ftBase += value
		}
	}

	var importanceNorms []float64
	tasks := make([]models.Task, 0, len(order))
	for _, key := range order {
		t := texts[key]
		a := accum[key]

		var importanceNorm float64
		hasImportance := false
		if a != nil && a.imCount > 0 {
			meanIM := a.imSum / a.imCount
			importanceNorm = stats.Clip((meanIM-1)/4, 0, 1)
			hasImportance = true
		}

		var rtNorm, ftNorm float64
		hasRT, hasFT := false, false
		if a != nil && a.rtCount > 0 {
			meanRT := a.rtSum / a.rtCount
			rtNorm = stats.Clip(meanRT/100, 0, 1)
			hasRT = true
		}
		if a != nil && a.ftBase > 0 {
			ftExpected := a.ftWeighted / a.ftBase
			ftNorm = stats.Clip((ftExpected-1)/6, 0, 1)
			hasFT = true
		}

		var prevalence float64
		switch {
		case hasRT && hasFT:
			prevalence = 0.5*rtNorm + 0.5*ftNorm
		case hasRT:
			prevalence = rtNorm
		case hasFT:
			prevalence = ftNorm
		default:
			prevalence = 0.5
		}

		t.ImportanceNorm = importanceNorm
		t.Prevalence = prevalence
		tasks = append(tasks, t)
		if hasImportance {
			importanceNorms = append(importanceNorms, importanceNorm)
		}
	}

	medianImportance := stats.Median(importanceNorms)
	if len(importanceNorms) == 0 {
		medianImportance = 0.5
	}
	for i := range tasks {
		a := accum[taskKey{tasks[i].SOCCode, tasks[i].TaskID}]
		if a == nil || a.imCount == 0 {
			tasks[i].ImportanceNorm = medianImportance
		}
		tasks[i].Weight = math.Max(tasks[i].ImportanceNorm*tasks[i].Prevalence, 0.01)
	}
	return tasks
}


