package bayes

import (
	"math"
	"path/filepath"
	"reflect"
	"testing"
)

const tolerance = 1e-12

func TestBernoulliScores(t *testing.T) {
	b := NewBernoulliNB(3, 2, 1.0)
	b.Fit([]int{0, 1}, 1)
	b.Fit([]int{2}, 0)

	scores := b.PredictProbas([]int{0})

	// Label 1 saw token 0 once out of one document; the prior covers two
	// documents total.
	want1 := math.Log((1+1.0)/(1+2*1.0)) + math.Log((1+1.0)/(2+2*1.0))
	if math.Abs(scores[1]-want1) > tolerance {
		t.Errorf("score for label 1 = %v, want %v", scores[1], want1)
	}

	want0 := math.Log((0+1.0)/(1+2*1.0)) + math.Log((1+1.0)/(2+2*1.0))
	if math.Abs(scores[0]-want0) > tolerance {
		t.Errorf("score for label 0 = %v, want %v", scores[0], want0)
	}

	if got := b.Predict([]int{0}); got != 1 {
		t.Errorf("Predict = %d, want 1", got)
	}
}

func TestBernoulliCountConservation(t *testing.T) {
	b := NewBernoulliNB(4, 2, 0.5)
	docs := []struct {
		tokens []int
		label  int
	}{
		{[]int{0, 1}, 0},
		{[]int{1, 2, 3}, 1},
		{[]int{0}, 0},
		{[]int{3}, 1},
		{[]int{2}, 1},
	}
	for _, d := range docs {
		b.Fit(d.tokens, d.label)
	}

	if b.TotalSamples != len(docs) {
		t.Errorf("TotalSamples = %d, want %d", b.TotalSamples, len(docs))
	}
	sum := 0
	for _, c := range b.TargetCounts {
		sum += c
	}
	if sum != len(docs) {
		t.Errorf("sum of TargetCounts = %d, want %d", sum, len(docs))
	}
}

func TestBernoulliTieBreak(t *testing.T) {
	// Untrained classifier scores every label identically; the lowest
	// index must win.
	b := NewBernoulliNB(3, 3, 1.0)
	if got := b.Predict([]int{0, 1}); got != 0 {
		t.Errorf("Predict = %d, want 0", got)
	}
}

func TestBernoulliLabelOutOfRange(t *testing.T) {
	b := NewBernoulliNB(3, 2, 1.0)
	defer func() {
		if recover() == nil {
			t.Fatal("Fit with label 2 did not panic")
		}
	}()
	b.Fit([]int{0}, 2)
}

func TestBernoulliIgnoresUnknownTokens(t *testing.T) {
	b := NewBernoulliNB(3, 2, 1.0)
	b.Fit([]int{0, 1}, 1)
	b.Fit([]int{2}, 0)

	// Token 5 is outside the feature table and must not change scores.
	with := b.PredictProbas([]int{0, 5})
	without := b.PredictProbas([]int{0})
	if !reflect.DeepEqual(with, without) {
		t.Errorf("unknown token changed scores: %v vs %v", with, without)
	}
}

func TestBernoulliSaveLoad(t *testing.T) {
	b := NewBernoulliNB(3, 2, 0.1)
	b.Fit([]int{0, 1}, 1)
	b.Fit([]int{2}, 0)

	path := filepath.Join(t.TempDir(), "model.json")
	if err := SaveModel(b, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := LoadBernoulli(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, b) {
		t.Errorf("loaded model differs:\n got %+v\nwant %+v", loaded, b)
	}
	if got, want := loaded.Predict([]int{0}), b.Predict([]int{0}); got != want {
		t.Errorf("loaded Predict = %d, want %d", got, want)
	}
}
