// Package bayes implements Naive Bayes classifiers over integer token ids.
//
// Two variants share one contract: BernoulliNB scores binary word presence,
// MultinomialNB scores word frequencies. Both keep per-label integer count
// tables sized at construction and apply Laplace smoothing when scoring.
package bayes

import "fmt"

// Variant names accepted by New.
const (
	VariantBernoulli   = "bernoulli"
	VariantMultinomial = "multinomial"
)

// Classifier is the contract shared by both Naive Bayes variants.
type Classifier interface {
	// Fit incorporates one labeled, tokenized document. It panics if label
	// is outside [0, nLabels).
	Fit(tokens []int, label int)
	// Predict returns the label with the highest score. On exact ties the
	// lowest label index wins.
	Predict(tokens []int) int
	// PredictProbas returns one score per label. Scores are comparable for
	// argmax within a variant but are not normalized probabilities: the
	// Bernoulli variant returns log scores, the Multinomial variant returns
	// exponentiated raw likelihoods.
	PredictProbas(tokens []int) []float64
}

// New creates a classifier of the named variant with a feature table of
// nFeatures columns and nLabels rows.
func New(variant string, nFeatures, nLabels int, laplace float64) (Classifier, error) {
	switch variant {
	case VariantBernoulli:
		return NewBernoulliNB(nFeatures, nLabels, laplace), nil
	case VariantMultinomial:
		return NewMultinomialNB(nFeatures, nLabels, laplace), nil
	default:
		return nil, fmt.Errorf("unknown classifier variant %q", variant)
	}
}

func newCountTable(nLabels, nFeatures int) [][]int {
	table := make([][]int, nLabels)
	for i := range table {
		table[i] = make([]int, nFeatures)
	}
	return table
}

func checkLabel(label, nLabels int) {
	if label < 0 || label >= nLabels {
		panic(fmt.Sprintf("bayes: label %d out of range [0, %d)", label, nLabels))
	}
}

// occurrenceCounts collapses a token sequence into id -> count pairs.
func occurrenceCounts(tokens []int) map[int]int {
	counts := make(map[int]int, len(tokens))
	for _, tok := range tokens {
		counts[tok]++
	}
	return counts
}

// argmax returns the index of the largest score; the lowest index wins ties.
func argmax(scores []float64) int {
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i] > scores[best] {
			best = i
		}
	}
	return best
}
