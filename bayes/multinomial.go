package bayes

import "math"

// MultinomialNB is a Naive Bayes classifier over word frequencies: repeated
// occurrences of a token in a document each count.
type MultinomialNB struct {
	// FeatureCounts[label][token] is the total number of occurrences of the
	// token across training documents of that label.
	FeatureCounts [][]int `json:"feature_counts"`
	// LabelFeatureTotals[label] is the sum of FeatureCounts[label].
	LabelFeatureTotals []int `json:"label_feature_totals"`
	// TargetCounts[label] is the number of documents seen per label.
	TargetCounts []int `json:"target_counts"`
	// LaplaceFactor is the additive smoothing constant.
	LaplaceFactor float64 `json:"laplace_factor"`
	// TotalSamples is the number of documents seen by Fit.
	TotalSamples int `json:"total_samples"`
}

// NewMultinomialNB creates an untrained Multinomial classifier. The feature
// table is sized once and never grows; token ids >= nFeatures are ignored
// when scoring.
func NewMultinomialNB(nFeatures, nLabels int, laplace float64) *MultinomialNB {
	return &MultinomialNB{
		FeatureCounts:      newCountTable(nLabels, nFeatures),
		LabelFeatureTotals: make([]int, nLabels),
		TargetCounts:       make([]int, nLabels),
		LaplaceFactor:      laplace,
	}
}

// Fit records one tokenized document under the given label, counting every
// occurrence of every token.
func (m *MultinomialNB) Fit(tokens []int, label int) {
	checkLabel(label, len(m.TargetCounts))

	for tok, count := range occurrenceCounts(tokens) {
		m.FeatureCounts[label][tok] += count
		m.LabelFeatureTotals[label] += count
	}
	m.TotalSamples++
	m.TargetCounts[label]++
}

// Predict returns the most likely label for the token sequence.
func (m *MultinomialNB) Predict(tokens []int) int {
	return argmax(m.PredictProbas(tokens))
}

// PredictProbas returns the per-label likelihood scores for the token
// sequence. Scores are accumulated in log space and exponentiated before
// returning, so they are raw (non-normalized) likelihoods that can underflow
// to 0 for long documents.
func (m *MultinomialNB) PredictProbas(tokens []int) []float64 {
	tokenCounts := occurrenceCounts(tokens)
	nFeatures := len(m.FeatureCounts[0])
	nLabels := len(m.TargetCounts)
	scores := make([]float64, nLabels)

	for tgt, count := range m.TargetCounts {
		prior := (float64(count) + m.LaplaceFactor) /
			(float64(m.TotalSamples) + float64(nLabels)*m.LaplaceFactor)
		logProb := math.Log(prior)

		for tok, tokenCount := range tokenCounts {
			if tok >= nFeatures {
				continue // out of vocabulary at prediction time
			}
			tokenProb := (float64(m.FeatureCounts[tgt][tok]) + m.LaplaceFactor) /
				(float64(m.LabelFeatureTotals[tgt]) + float64(nFeatures)*m.LaplaceFactor)
			logProb += float64(tokenCount) * math.Log(tokenProb)
		}
		scores[tgt] = math.Exp(logProb)
	}
	return scores
}
