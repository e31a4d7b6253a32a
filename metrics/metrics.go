// Package metrics derives evaluation scores from predicted vs actual labels.
package metrics

import "fmt"

// ConfusionMatrix is a square count table indexed [actual][predicted].
// It is a snapshot: built once from a prediction run, then read-only.
type ConfusionMatrix [][]int

// NewConfusionMatrix tallies prediction/actual pairs into a numClasses x
// numClasses matrix. It panics if the slices differ in length. Labels must
// be in [0, numClasses); the caller guards that range.
func NewConfusionMatrix(predicted, actual []int, numClasses int) ConfusionMatrix {
	if len(predicted) != len(actual) {
		panic(fmt.Sprintf("metrics: %d predicted labels vs %d actual", len(predicted), len(actual)))
	}

	m := make(ConfusionMatrix, numClasses)
	for i := range m {
		m[i] = make([]int, numClasses)
	}
	for i, p := range predicted {
		m[actual[i]][p]++
	}
	return m
}

// Total returns the number of pairs tallied into the matrix.
func (m ConfusionMatrix) Total() int {
	total := 0
	for _, row := range m {
		for _, v := range row {
			total += v
		}
	}
	return total
}

// Accuracy returns the fraction of correctly predicted samples, or 0 when
// the matrix is empty.
func (m ConfusionMatrix) Accuracy() float64 {
	correct := 0
	for i, row := range m {
		correct += row[i]
	}
	total := m.Total()
	if total == 0 {
		return 0
	}
	return float64(correct) / float64(total)
}

// Recall returns the fraction of actual-positive samples of the class that
// were predicted correctly, or 0 when the class has no samples.
func (m ConfusionMatrix) Recall(class int) float64 {
	total := 0
	for _, v := range m[class] {
		total += v
	}
	if total == 0 {
		return 0
	}
	return float64(m[class][class]) / float64(total)
}

// Precision returns the fraction of predicted-positive samples of the class
// that were correct, or 0 when the class was never predicted.
func (m ConfusionMatrix) Precision(class int) float64 {
	total := 0
	for _, row := range m {
		total += row[class]
	}
	if total == 0 {
		return 0
	}
	return float64(m[class][class]) / float64(total)
}

// F1 returns the harmonic mean of precision and recall for the class, or 0
// when both are 0.
func (m ConfusionMatrix) F1(class int) float64 {
	p := m.Precision(class)
	r := m.Recall(class)
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// MacroF1 returns the unweighted mean of per-class F1 scores.
func (m ConfusionMatrix) MacroF1() float64 {
	if len(m) == 0 {
		return 0
	}
	sum := 0.0
	for class := range m {
		sum += m.F1(class)
	}
	return sum / float64(len(m))
}
