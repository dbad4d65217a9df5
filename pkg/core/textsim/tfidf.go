// Package textsim implements the TF-IDF vectorizer and cosine similarity
// engine shared by the Task-to-Tool Mapper (§4.3), the Capability Transfer
// Engine (§4.8), and the Task Alignment Engine (§4.9). No ecosystem NLP/
// vector-similarity library appears anywhere in the retrieved reference
// corpus (including other_examples/), so this is implemented directly over
// the standard library; see DESIGN.md for the search that preceded this
// decision.
package textsim

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

var tokenPattern = regexp.MustCompile(`[a-z0-9]{2,}`)

// Tokenize lowercases, extracts word tokens of length >= 2 (mirroring
// scikit-learn's default `token_pattern=r"(?u)\b\w\w+\b"`), and drops English
// stopwords before n-grams are built.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	raw := tokenPattern.FindAllString(lower, -1)
	out := make([]string, 0, len(raw))
	for _, tok := range raw {
		if englishStopWords[tok] {
			continue
		}
		out = append(out, tok)
	}
	return out
}

// ngrams builds unigrams and bigrams (ngram_range=(1,2)) from a pre-filtered
// token sequence.
func ngrams(tokens []string) []string {
	out := make([]string, 0, len(tokens)*2)
	out = append(out, tokens...)
	for i := 0; i+1 < len(tokens); i++ {
		out = append(out, tokens[i]+" "+tokens[i+1])
	}
	return out
}

// SparseVector is a term-index -> weight map, L2-normalized after Transform.
type SparseVector map[int]float64

// Vectorizer is a fit TF-IDF model: a fixed vocabulary and per-term IDF
// weights, mirroring sklearn's TfidfVectorizer(stop_words='english',
// ngram_range=(1,2), min_df=..., max_features=...) with smooth IDF and L2
// row normalization (sklearn's defaults).
type Vectorizer struct {
	MinDF       int
	MaxFeatures int

	vocab map[string]int // term -> column index
	idf   []float64       // idf[column index]
}

// NewVectorizer constructs an unfit vectorizer with the given thresholds.
func NewVectorizer(minDF, maxFeatures int) *Vectorizer {
	return &Vectorizer{MinDF: minDF, MaxFeatures: maxFeatures}
}

// Fit builds the vocabulary and IDF table from a corpus of raw documents.
func (v *Vectorizer) Fit(docs []string) {
	docFreq := make(map[string]int)
	for _, doc := range docs {
		seen := make(map[string]bool)
		for _, term := range ngrams(Tokenize(doc)) {
			if !seen[term] {
				seen[term] = true
				docFreq[term]++
			}
		}
	}

	type termCount struct {
		term  string
		count int
	}
	candidates := make([]termCount, 0, len(docFreq))
	for term, df := range docFreq {
		if df >= v.MinDF {
			candidates = append(candidates, termCount{term, df})
		}
	}
	// sklearn orders by term when capping max_features it keeps the highest
	// document-frequency terms; ties broken lexicographically for determinism.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].count != candidates[j].count {
			return candidates[i].count > candidates[j].count
		}
		return candidates[i].term < candidates[j].term
	})
	if v.MaxFeatures > 0 && len(candidates) > v.MaxFeatures {
		candidates = candidates[:v.MaxFeatures]
	}
	// Final vocabulary is alphabetically indexed, matching sklearn's
	// convention of assigning column indices in sorted vocabulary order.
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].term < candidates[j].term })

	n := float64(len(docs))
	v.vocab = make(map[string]int, len(candidates))
	v.idf = make([]float64, len(candidates))
	for i, c := range candidates {
		v.vocab[c.term] = i
		// smooth idf: ln((1+n)/(1+df)) + 1
		v.idf[i] = math.Log((1+n)/(1+float64(c.count))) + 1
	}
}

// NumFeatures returns the fit vocabulary size.
func (v *Vectorizer) NumFeatures() int { return len(v.vocab) }

// Transform projects documents into TF-IDF space using the fit vocabulary,
// L2-normalizing each row.
func (v *Vectorizer) Transform(docs []string) []SparseVector {
	out := make([]SparseVector, len(docs))
	for i, doc := range docs {
		out[i] = v.transformOne(doc)
	}
	return out
}

func (v *Vectorizer) transformOne(doc string) SparseVector {
	counts := make(map[int]float64)
	for _, term := range ngrams(Tokenize(doc)) {
		if idx, ok := v.vocab[term]; ok {
			counts[idx]++
		}
	}
	vec := make(SparseVector, len(counts))
	var normSq float64
	for idx, tf := range counts {
		w := tf * v.idf[idx]
		vec[idx] = w
		normSq += w * w
	}
	if normSq > 0 {
		norm := math.Sqrt(normSq)
		for idx := range vec {
			vec[idx] /= norm
		}
	}
	return vec
}

// FitTransform fits on docs then transforms them (the common TF-IDF entry
// point when tool/task corpora share a vocabulary).
func (v *Vectorizer) FitTransform(docs []string) []SparseVector {
	v.Fit(docs)
	return v.Transform(docs)
}

// CosineSim computes the cosine similarity of two L2-normalized sparse
// vectors (a plain dot product, since both rows already have unit norm).
func CosineSim(a, b SparseVector) float64 {
	// iterate the shorter map for speed
	if len(a) > len(b) {
		a, b = b, a
	}
	var sum float64
	for idx, av := range a {
		if bv, ok := b[idx]; ok {
			sum += av * bv
		}
	}
	return sum
}
