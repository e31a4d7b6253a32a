package textclass

import (
	"fmt"

	"github.com/happyhackingspace/textclass/bayes"
	"github.com/happyhackingspace/textclass/internal/dataset"
	"github.com/happyhackingspace/textclass/metrics"
	"github.com/happyhackingspace/textclass/tokenizer"
)

// TrainConfig holds configuration for training.
type TrainConfig struct {
	// Variant selects the classifier: bayes.VariantBernoulli or
	// bayes.VariantMultinomial.
	Variant string
	// Laplace is the smoothing factor, typically in (0, 1].
	Laplace float64
	// Classes optionally names the integer labels, e.g. {"ham", "spam"}.
	Classes []string
	// StripHTML removes markup from message bodies while loading.
	StripHTML bool
	Verbose   bool
}

// DefaultTrainConfig returns the training defaults used for the reference
// SMS spam corpus.
func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		Variant: bayes.VariantMultinomial,
		Laplace: 0.1,
	}
}

// EvalConfig holds configuration for evaluation.
type EvalConfig struct {
	Variant string
	Laplace float64
	// Holdout is the number of trailing corpus rows reserved for
	// evaluation. Ignored when Folds > 1.
	Holdout int
	// Folds enables k-fold cross-validation when > 1.
	Folds     int
	StripHTML bool
	Verbose   bool
}

// DefaultEvalConfig returns the evaluation defaults.
func DefaultEvalConfig() EvalConfig {
	return EvalConfig{
		Variant: bayes.VariantMultinomial,
		Laplace: 0.1,
		Holdout: 100,
	}
}

// EvalResult holds evaluation results.
type EvalResult struct {
	Accuracy  float64
	Correct   int
	Total     int
	Confusion metrics.ConfusionMatrix
	// Per-class scores, indexed by label.
	Recall    []float64
	Precision []float64
	F1        []float64
	MacroF1   float64
}

// Train fits a tokenizer and a Naive Bayes classifier on the labeled
// dataset at dataPath (parquet or CSV).
func Train(dataPath string, config *TrainConfig) (*Classifier, error) {
	cfg := DefaultTrainConfig()
	if config != nil {
		cfg = *config
	}

	pairs, err := dataset.Load(dataPath, dataset.LoadOptions{StripHTML: cfg.StripHTML})
	if err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("textclass: no samples found in %s", dataPath)
	}

	tok, model, err := fit(pairs, cfg.Variant, cfg.Laplace, dataset.NumLabels(pairs))
	if err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}

	return &Classifier{
		tok:     tok,
		model:   model,
		variant: cfg.Variant,
		classes: cfg.Classes,
	}, nil
}

// Evaluate scores a classifier configuration against the labeled dataset at
// dataPath, either on a trailing holdout split or with k-fold
// cross-validation.
func Evaluate(dataPath string, config *EvalConfig) (*EvalResult, error) {
	cfg := DefaultEvalConfig()
	if config != nil {
		cfg = *config
	}

	pairs, err := dataset.Load(dataPath, dataset.LoadOptions{StripHTML: cfg.StripHTML})
	if err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}
	if len(pairs) == 0 {
		return nil, fmt.Errorf("textclass: no samples found in %s", dataPath)
	}

	numClasses := dataset.NumLabels(pairs)
	var predicted, actual []int

	if cfg.Folds > 1 {
		folds := foldIndices(len(pairs), cfg.Folds)
		for _, testIdx := range folds {
			testSet := make([]bool, len(pairs))
			for _, i := range testIdx {
				testSet[i] = true
			}
			var trainPairs []dataset.Pair
			for i, p := range pairs {
				if !testSet[i] {
					trainPairs = append(trainPairs, p)
				}
			}

			tok, model, err := fit(trainPairs, cfg.Variant, cfg.Laplace, numClasses)
			if err != nil {
				return nil, fmt.Errorf("textclass: %w", err)
			}
			for _, i := range testIdx {
				predicted = append(predicted, predict(tok, model, cfg.Variant, pairs[i].Text))
				actual = append(actual, pairs[i].Label)
			}
		}
	} else {
		trainPairs, evalPairs := dataset.Split(pairs, cfg.Holdout)
		if len(trainPairs) == 0 {
			return nil, fmt.Errorf("textclass: holdout of %d leaves no training data", cfg.Holdout)
		}
		if len(evalPairs) == 0 {
			return nil, fmt.Errorf("textclass: holdout of %d leaves no evaluation data", cfg.Holdout)
		}

		tok, model, err := fit(trainPairs, cfg.Variant, cfg.Laplace, numClasses)
		if err != nil {
			return nil, fmt.Errorf("textclass: %w", err)
		}
		for _, p := range evalPairs {
			predicted = append(predicted, predict(tok, model, cfg.Variant, p.Text))
			actual = append(actual, p.Label)
		}
	}

	confusion := metrics.NewConfusionMatrix(predicted, actual, numClasses)
	result := &EvalResult{
		Accuracy:  confusion.Accuracy(),
		Total:     confusion.Total(),
		Confusion: confusion,
		Recall:    make([]float64, numClasses),
		Precision: make([]float64, numClasses),
		F1:        make([]float64, numClasses),
		MacroF1:   confusion.MacroF1(),
	}
	for class := 0; class < numClasses; class++ {
		result.Correct += confusion[class][class]
		result.Recall[class] = confusion.Recall(class)
		result.Precision[class] = confusion.Precision(class)
		result.F1[class] = confusion.F1(class)
	}
	return result, nil
}

// fit builds a vocabulary over the corpus, then trains a classifier of the
// requested variant on it.
func fit(pairs []dataset.Pair, variant string, laplace float64, numLabels int) (*tokenizer.Tokenizer, bayes.Classifier, error) {
	tok := tokenizer.New(tokenizer.DefaultPunct)
	for _, p := range pairs {
		tok.Fit(p.Text)
	}

	model, err := bayes.New(variant, tok.TokenCount(), numLabels, laplace)
	if err != nil {
		return nil, nil, err
	}
	for _, p := range pairs {
		model.Fit(variantTokens(tok, variant, p.Text), p.Label)
	}
	return tok, model, nil
}

func predict(tok *tokenizer.Tokenizer, model bayes.Classifier, variant, text string) int {
	return model.Predict(variantTokens(tok, variant, text))
}

func variantTokens(tok *tokenizer.Tokenizer, variant, text string) []int {
	if variant == bayes.VariantBernoulli {
		return tok.TokenizeSparse(text)
	}
	return tok.Tokenize(text)
}

// foldIndices assigns sample indices to folds round-robin.
func foldIndices(n, nFolds int) [][]int {
	if nFolds > n {
		nFolds = n
	}
	folds := make([][]int, nFolds)
	for i := 0; i < n; i++ {
		folds[i%nFolds] = append(folds[i%nFolds], i)
	}
	return folds
}
