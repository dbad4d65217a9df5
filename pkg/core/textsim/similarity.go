package textsim

import "sort"

// BatchMaxSim computes, for every row vector, the maximum cosine similarity
// against all column vectors and the index of the argmax column. Processing
// is chunked by batchSize to mirror the mini-batch sizing in §5 (batch=400
// tasks) — the result is identical regardless of batch size; batching only
// bounds how much of the column set's working set is touched per iteration.
func BatchMaxSim(rows, columns []SparseVector, batchSize int) (maxSim []float64, topIdx []int) {
	if batchSize <= 0 {
		batchSize = len(rows)
		if batchSize == 0 {
			batchSize = 1
		}
	}
	maxSim = make([]float64, len(rows))
	topIdx = make([]int, len(rows))
	for start := 0; start < len(rows); start += batchSize {
		end := start + batchSize
		if end > len(rows) {
			end = len(rows)
		}
		for i := start; i < end; i++ {
			best, bestIdx := -1.0, -1
			for j, col := range columns {
				s := CosineSim(rows[i], col)
				if s > best {
					best, bestIdx = s, j
				}
			}
			maxSim[i] = best
			topIdx[i] = bestIdx
		}
	}
	return maxSim, topIdx
}

// TopK returns the indices (and similarities) of the k columns most similar
// to row, sorted descending by similarity. Ties broken by lower index for
// determinism.
func TopK(row SparseVector, columns []SparseVector, k int) (indices []int, sims []float64) {
	type pair struct {
		idx int
		sim float64
	}
	all := make([]pair, len(columns))
	for j, col := range columns {
		all[j] = pair{j, CosineSim(row, col)}
	}
	sort.Slice(all, func(a, b int) bool {
		if all[a].sim != all[b].sim {
			return all[a].sim > all[b].sim
		}
		return all[a].idx < all[b].idx
	})
	if k > len(all) {
		k = len(all)
	}
	indices = make([]int, k)
	sims = make([]float64, k)
	for i := 0; i < k; i++ {
		indices[i] = all[i].idx
		sims[i] = all[i].sim
	}
	return indices, sims
}
