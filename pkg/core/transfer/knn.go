package transfer

import (
	"sort"

	"airiskmodel/pkg/core/stats"
	"airiskmodel/pkg/core/textsim"
)

// TransferRow is one target occupation's k-NN weight vector over the anchor
// set and its similarity strength, per §4.8 steps 3-4.
type TransferRow struct {
	SOCCode  string
	Weights  map[string]float64 // anchor soc -> row-stochastic weight
	Strength float64            // mean of the top-k raw cosine similarities
}

// FitTransfer fits a TF-IDF vectorizer on the full occupation corpus, then
// for every target occupation computes cosine similarity to every anchor,
// keeps the top-k, and normalizes those similarities (clamped at 0) into a
// row-stochastic weight vector. Uses the same min_df=2/max_features=200k
// thresholds as the occupation-corpus similarity fit in
// compute_gdpval_replacement_risk_rigorous.py (~line 197).
func FitTransfer(corpus map[string]string, anchorSOCs []string, k int) []TransferRow {
	socs := make([]string, 0, len(corpus))
	for soc := range corpus {
		socs = append(socs, soc)
	}
	sort.Strings(socs)

	docs := make([]string, len(socs))
	idxOf := make(map[string]int, len(socs))
	for i, soc := range socs {
		docs[i] = corpus[soc]
		idxOf[soc] = i
	}

	vec := textsim.NewVectorizer(2, 200000)
	vec.Fit(docs)
	vectors := vec.Transform(docs)

	var filteredAnchors []string
	for _, a := range anchorSOCs {
		if _, ok := idxOf[a]; ok {
			filteredAnchors = append(filteredAnchors, a)
		}
	}
	sort.Strings(filteredAnchors)
	anchorVecs := make([]textsim.SparseVector, len(filteredAnchors))
	for i, a := range filteredAnchors {
		anchorVecs[i] = vectors[idxOf[a]]
	}

	rows := make([]TransferRow, 0, len(socs))
	for _, soc := range socs {
		row := TransferRow{SOCCode: soc, Weights: make(map[string]float64)}
		if len(anchorVecs) == 0 {
			rows = append(rows, row)
			continue
		}
		topIdx, topSim := textsim.TopK(vectors[idxOf[soc]], anchorVecs, k)

		var sum float64
		clamped := make([]float64, len(topSim))
		for i, s := range topSim {
			c := s
			if c < 0 {
				c = 0
			}
			clamped[i] = c
			sum += c
		}
		row.Strength = stats.Mean(topSim)
		if sum > 0 {
			for i, ai := range topIdx {
				row.Weights[filteredAnchors[ai]] = clamped[i] / sum
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// ShrinkageAlpha computes α = clip((strength-Q10)/(Q90-Q10), 0, 1) for every
// row's similarity strength, per §4.8 step 4. The Q10/Q90 percentiles are
// taken over the full target population's strengths.
func ShrinkageAlpha(rows []TransferRow) map[string]float64 {
	strengths := make([]float64, len(rows))
	for i, r := range rows {
		strengths[i] = r.Strength
	}
	q10 := stats.Percentile(strengths, 10)
	q90 := stats.Percentile(strengths, 90)
	denom := q90 - q10
	if denom == 0 {
		denom = 1e-9
	}
	out := make(map[string]float64, len(rows))
	for _, r := range rows {
		out[r.SOCCode] = stats.Clip((r.Strength-q10)/denom, 0, 1)
	}
	return out
}
