// Package textclass trains and runs Naive Bayes text classifiers.
//
// It provides a tokenizer/vocabulary pipeline feeding either a Bernoulli
// (word presence) or a Multinomial (word frequency) Naive Bayes model.
//
//	c, _ := textclass.New()
//	pred, _ := c.Classify("WINNER!! Claim your free prize now")
//	fmt.Println(pred.Class) // "spam"
package textclass

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/happyhackingspace/textclass/bayes"
	"github.com/happyhackingspace/textclass/tokenizer"
)

// ErrModelNotFound reports that no model file exists in the search path.
// Callers can match it with errors.Is to fall back to a download.
var ErrModelNotFound = errors.New("model file not found")

// Classifier bundles a fitted tokenizer with a trained Naive Bayes model.
type Classifier struct {
	tok     *tokenizer.Tokenizer
	model   bayes.Classifier
	variant string
	classes []string
}

// Prediction holds the classification result for a single message.
type Prediction struct {
	Label int    `json:"label"`
	Class string `json:"class"`
	// Scores holds one score per class: log scores for the Bernoulli
	// variant, raw likelihoods for the Multinomial variant.
	Scores map[string]float64 `json:"scores,omitempty"`
}

// modelFile is the on-disk model.json layout.
type modelFile struct {
	Variant     string               `json:"variant"`
	Classes     []string             `json:"classes,omitempty"`
	Tokenizer   *tokenizer.Tokenizer `json:"tokenizer"`
	Bernoulli   *bayes.BernoulliNB   `json:"bernoulli,omitempty"`
	Multinomial *bayes.MultinomialNB `json:"multinomial,omitempty"`
}

// New loads the classifier from "model.json", searching the current
// directory and parent directories up to the module root (where go.mod
// lives).
func New() (*Classifier, error) {
	path, err := findModel("model.json")
	if err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}
	return Load(path)
}

func findModel(name string) (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
		// Stop at module root
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrModelNotFound
}

// Load loads a trained classifier from a model file.
func Load(path string) (*Classifier, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}

	var mf modelFile
	if err := json.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("textclass: %w", err)
	}
	if mf.Tokenizer == nil {
		return nil, fmt.Errorf("textclass: model file %s has no tokenizer", path)
	}

	c := &Classifier{
		tok:     mf.Tokenizer,
		variant: mf.Variant,
		classes: mf.Classes,
	}
	switch mf.Variant {
	case bayes.VariantBernoulli:
		if mf.Bernoulli == nil {
			return nil, fmt.Errorf("textclass: model file %s has no bernoulli state", path)
		}
		if err := mf.Bernoulli.Validate(); err != nil {
			return nil, fmt.Errorf("textclass: invalid model file %s: %w", path, err)
		}
		c.model = mf.Bernoulli
	case bayes.VariantMultinomial:
		if mf.Multinomial == nil {
			return nil, fmt.Errorf("textclass: model file %s has no multinomial state", path)
		}
		if err := mf.Multinomial.Validate(); err != nil {
			return nil, fmt.Errorf("textclass: invalid model file %s: %w", path, err)
		}
		c.model = mf.Multinomial
	default:
		return nil, fmt.Errorf("textclass: unknown classifier variant %q", mf.Variant)
	}
	return c, nil
}

// Save writes the classifier to a model file.
func (c *Classifier) Save(path string) error {
	if c.model == nil || c.tok == nil {
		return fmt.Errorf("textclass: classifier not initialized")
	}

	mf := modelFile{
		Variant:   c.variant,
		Classes:   c.classes,
		Tokenizer: c.tok,
	}
	switch m := c.model.(type) {
	case *bayes.BernoulliNB:
		mf.Bernoulli = m
	case *bayes.MultinomialNB:
		mf.Multinomial = m
	}

	data, err := json.MarshalIndent(mf, "", "  ")
	if err != nil {
		return fmt.Errorf("textclass: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("textclass: %w", err)
	}
	return nil
}

// Classify predicts the class of a raw message.
func (c *Classifier) Classify(text string) (Prediction, error) {
	if c.model == nil || c.tok == nil {
		return Prediction{}, fmt.Errorf("textclass: classifier not initialized")
	}
	label := c.model.Predict(c.tokens(text))
	return Prediction{Label: label, Class: c.className(label)}, nil
}

// ClassifyProba predicts the class of a raw message and includes the
// per-class scores.
func (c *Classifier) ClassifyProba(text string) (Prediction, error) {
	if c.model == nil || c.tok == nil {
		return Prediction{}, fmt.Errorf("textclass: classifier not initialized")
	}

	scores := c.model.PredictProbas(c.tokens(text))
	best := 0
	byClass := make(map[string]float64, len(scores))
	for label, s := range scores {
		byClass[c.className(label)] = s
		if s > scores[best] {
			best = label
		}
	}
	return Prediction{Label: best, Class: c.className(best), Scores: byClass}, nil
}

// tokens converts text into the token representation the variant expects:
// deduplicated presence ids for Bernoulli, frequency-preserving ids for
// Multinomial.
func (c *Classifier) tokens(text string) []int {
	if c.variant == bayes.VariantBernoulli {
		return c.tok.TokenizeSparse(text)
	}
	return c.tok.Tokenize(text)
}

// Variant returns the model variant name.
func (c *Classifier) Variant() string {
	return c.variant
}

// Classes returns the class names recorded at training time, if any.
func (c *Classifier) Classes() []string {
	return c.classes
}

func (c *Classifier) className(label int) string {
	if label >= 0 && label < len(c.classes) {
		return c.classes[label]
	}
	return strconv.Itoa(label)
}

// ModelDir returns the per-user cache directory for downloaded models.
func ModelDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "textclass")
}
