package bayes

import "math"

// BernoulliNB is a Naive Bayes classifier over binary features: each
// vocabulary word either occurs in a document or it does not. Callers must
// pass deduplicated token sequences to Fit and the prediction methods
// (tokenizer.TokenizeSparse produces them).
type BernoulliNB struct {
	// FeatureCounts[label][token] is the number of training documents of
	// that label containing the token.
	FeatureCounts [][]int `json:"feature_counts"`
	// TotalSamples is the number of documents seen by Fit.
	TotalSamples int `json:"total_samples"`
	// TargetCounts[label] is the number of documents seen per label.
	TargetCounts []int `json:"target_counts"`
	// LaplaceFactor is the additive smoothing constant.
	LaplaceFactor float64 `json:"laplace_factor"`
}

// NewBernoulliNB creates an untrained Bernoulli classifier. The feature
// table is sized once and never grows; token ids >= nFeatures are ignored
// when scoring.
func NewBernoulliNB(nFeatures, nLabels int, laplace float64) *BernoulliNB {
	return &BernoulliNB{
		FeatureCounts: newCountTable(nLabels, nFeatures),
		TargetCounts:  make([]int, nLabels),
		LaplaceFactor: laplace,
	}
}

// Fit records one document of deduplicated tokens under the given label.
func (b *BernoulliNB) Fit(tokens []int, label int) {
	checkLabel(label, len(b.TargetCounts))

	for _, tok := range tokens {
		b.FeatureCounts[label][tok]++
	}
	b.TotalSamples++
	b.TargetCounts[label]++
}

// Predict returns the most likely label for the deduplicated token sequence.
func (b *BernoulliNB) Predict(tokens []int) int {
	return argmax(b.PredictProbas(tokens))
}

// PredictProbas returns the per-label log scores for the deduplicated token
// sequence. Only tokens present in the query contribute; absent vocabulary
// terms add nothing. The result is left in log space.
func (b *BernoulliNB) PredictProbas(tokens []int) []float64 {
	nLabels := len(b.TargetCounts)
	scores := make([]float64, nLabels)

	for tgt, count := range b.TargetCounts {
		row := b.FeatureCounts[tgt]
		prob := 0.0
		for _, tok := range tokens {
			if tok >= len(row) {
				continue // out of vocabulary at prediction time
			}
			prob += math.Log((float64(row[tok]) + b.LaplaceFactor) /
				(float64(count) + float64(nLabels)*b.LaplaceFactor))
		}
		prob += math.Log((float64(count) + b.LaplaceFactor) /
			(float64(b.TotalSamples) + 2*b.LaplaceFactor))
		scores[tgt] = prob
	}
	return scores
}
