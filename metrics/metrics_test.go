package metrics

import (
	"math"
	"reflect"
	"testing"
)

func TestConfusionMatrix(t *testing.T) {
	predicted := []int{0, 1, 1, 0}
	actual := []int{0, 1, 0, 0}

	m := NewConfusionMatrix(predicted, actual, 2)

	want := ConfusionMatrix{{2, 1}, {0, 1}}
	if !reflect.DeepEqual(m, want) {
		t.Fatalf("matrix = %v, want %v", m, want)
	}

	if got := m.Total(); got != 4 {
		t.Errorf("Total = %d, want 4", got)
	}
	if got := m.Accuracy(); got != 0.75 {
		t.Errorf("Accuracy = %v, want 0.75", got)
	}
	if got := m.Recall(1); got != 1.0 {
		t.Errorf("Recall(1) = %v, want 1.0", got)
	}
	if got, want := m.Recall(0), 2.0/3.0; math.Abs(got-want) > 1e-12 {
		t.Errorf("Recall(0) = %v, want %v", got, want)
	}
	if got := m.Precision(1); got != 0.5 {
		t.Errorf("Precision(1) = %v, want 0.5", got)
	}
	if got := m.Precision(0); got != 1.0 {
		t.Errorf("Precision(0) = %v, want 1.0", got)
	}
}

func TestConfusionMatrixConservation(t *testing.T) {
	predicted := []int{2, 0, 1, 1, 2, 0, 0}
	actual := []int{2, 1, 1, 0, 0, 0, 2}

	m := NewConfusionMatrix(predicted, actual, 3)
	if got := m.Total(); got != len(predicted) {
		t.Errorf("Total = %d, want %d", got, len(predicted))
	}
}

func TestConfusionMatrixLengthMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("mismatched slice lengths did not panic")
		}
	}()
	NewConfusionMatrix([]int{0, 1}, []int{0}, 2)
}

func TestEmptyMatrix(t *testing.T) {
	m := NewConfusionMatrix(nil, nil, 2)

	if got := m.Accuracy(); got != 0 {
		t.Errorf("Accuracy = %v, want 0", got)
	}
	if got := m.Recall(0); got != 0 {
		t.Errorf("Recall(0) = %v, want 0", got)
	}
	if got := m.Precision(1); got != 0 {
		t.Errorf("Precision(1) = %v, want 0", got)
	}
	if got := m.F1(0); got != 0 {
		t.Errorf("F1(0) = %v, want 0", got)
	}
	if got := m.MacroF1(); got != 0 {
		t.Errorf("MacroF1 = %v, want 0", got)
	}
}

func TestPerfectPredictions(t *testing.T) {
	labels := []int{0, 1, 0, 1, 1}
	m := NewConfusionMatrix(labels, labels, 2)

	if got := m.Accuracy(); got != 1.0 {
		t.Errorf("Accuracy = %v, want 1.0", got)
	}
	if got := m.MacroF1(); got != 1.0 {
		t.Errorf("MacroF1 = %v, want 1.0", got)
	}
}

func TestF1(t *testing.T) {
	// Precision(1) = 0.5, Recall(1) = 1.0 gives F1 = 2/3.
	m := NewConfusionMatrix([]int{0, 1, 1, 0}, []int{0, 1, 0, 0}, 2)

	want := 2 * 0.5 * 1.0 / (0.5 + 1.0)
	if got := m.F1(1); math.Abs(got-want) > 1e-12 {
		t.Errorf("F1(1) = %v, want %v", got, want)
	}

	// A class that is never predicted and never occurs scores 0.
	m3 := NewConfusionMatrix([]int{0, 1}, []int{0, 1}, 3)
	if got := m3.F1(2); got != 0 {
		t.Errorf("F1(2) = %v, want 0", got)
	}
}
