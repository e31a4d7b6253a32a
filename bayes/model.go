package bayes

import (
	"encoding/json"
	"fmt"
	"os"
)

// SaveModel serializes a classifier's state to a JSON file.
func SaveModel(c Classifier, path string) error {
	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadBernoulli deserializes a Bernoulli classifier from a JSON file.
func LoadBernoulli(path string) (*BernoulliNB, error) {
	var b BernoulliNB
	if err := loadJSON(path, &b); err != nil {
		return nil, err
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// LoadMultinomial deserializes a Multinomial classifier from a JSON file.
func LoadMultinomial(path string) (*MultinomialNB, error) {
	var m MultinomialNB
	if err := loadJSON(path, &m); err != nil {
		return nil, err
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the structural shape of deserialized state. Scoring
// indexes every row by the width of the first, so the table must be
// rectangular and match the declared number of labels.
func (b *BernoulliNB) Validate() error {
	return checkShape(b.FeatureCounts, len(b.TargetCounts))
}

// Validate checks the structural shape of deserialized state, including the
// per-label feature totals.
func (m *MultinomialNB) Validate() error {
	if err := checkShape(m.FeatureCounts, len(m.TargetCounts)); err != nil {
		return err
	}
	if len(m.LabelFeatureTotals) != len(m.TargetCounts) {
		return fmt.Errorf("label feature totals cover %d labels, want %d",
			len(m.LabelFeatureTotals), len(m.TargetCounts))
	}
	return nil
}

func loadJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}

// checkShape verifies that the count table is rectangular and matches the
// declared number of labels. Loaded state is otherwise trusted.
func checkShape(table [][]int, nLabels int) error {
	if len(table) != nLabels {
		return fmt.Errorf("feature table has %d rows, want %d", len(table), nLabels)
	}
	if len(table) == 0 {
		return nil
	}
	width := len(table[0])
	for i, row := range table {
		if len(row) != width {
			return fmt.Errorf("feature table row %d has %d columns, want %d", i, len(row), width)
		}
	}
	return nil
}
