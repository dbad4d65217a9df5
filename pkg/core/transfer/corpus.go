package transfer

import (
	"strings"

	"airiskmodel/pkg/core/toolcorpus"
	"airiskmodel/pkg/models"
)

// BuildOccupationCorpus concatenates each occupation's title with the joined
// text of its Core tasks, falling back to all tasks when Core is empty, per
// §4.8 step 2. The result is cleaned with the same clean() used by the tool
// corpus builder (§4.1), since both feed the same TF-IDF engine.
func BuildOccupationCorpus(occupations []models.Occupation, tasks []models.Task) map[string]string {
	var core, all map[string][]string = make(map[string][]string), make(map[string][]string)
	for _, t := range tasks {
		all[t.SOCCode] = append(all[t.SOCCode], t.Text)
		if t.Type == models.TaskCore {
			core[t.SOCCode] = append(core[t.SOCCode], t.Text)
		}
	}

	out := make(map[string]string, len(occupations))
	for _, occ := range occupations {
		taskTexts := core[occ.SOCCode]
		if len(taskTexts) == 0 {
			taskTexts = all[occ.SOCCode]
		}
		joined := occ.Title + ". " + strings.Join(taskTexts, ". ")
		out[occ.SOCCode] = toolcorpus.CleanText(joined)
	}
	return out
}
