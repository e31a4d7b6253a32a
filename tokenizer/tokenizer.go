// Package tokenizer converts raw text into integer token sequences over an
// insertion-ordered vocabulary.
package tokenizer

import (
	"encoding/json"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/happyhackingspace/textclass/internal/textutil"
)

// DefaultPunct is the punctuation pattern used for the reference SMS corpus.
// The capture group is required: Normalize pads each match with spaces.
const DefaultPunct = `([.,!?;:=()"'\[\]1234567890/@#*‘&_])`

// Tokenizer assigns stable integer ids to normalized words. Ids are dense,
// start at 0 and grow only by appending; once assigned they are never reused.
type Tokenizer struct {
	// Dict holds the vocabulary in insertion order; the slice index is the
	// token id.
	Dict []string `json:"dict"`
	// Punct is the regex pattern of punctuation characters to pad.
	Punct string `json:"punct"`

	index   map[string]int
	punctRe *regexp.Regexp
}

// New creates an empty Tokenizer with the given punctuation pattern.
// The pattern must be a valid regex containing one capture group; an
// invalid pattern panics.
func New(punct string) *Tokenizer {
	t := &Tokenizer{
		Dict:  []string{},
		Punct: punct,
	}
	if err := t.initRuntime(); err != nil {
		panic(err)
	}
	return t
}

func (t *Tokenizer) initRuntime() error {
	re, err := regexp.Compile(t.Punct)
	if err != nil {
		return fmt.Errorf("tokenizer: invalid punct pattern: %w", err)
	}
	t.punctRe = re
	t.index = make(map[string]int, len(t.Dict))
	for i, w := range t.Dict {
		t.index[w] = i
	}
	return nil
}

// Normalize pads every punctuation character with spaces, collapses
// whitespace runs and trims the result. It is a pure function of the input
// and the configured punctuation pattern.
func (t *Tokenizer) Normalize(text string) string {
	padded := t.punctRe.ReplaceAllString(text, " $1 ")
	return strings.TrimSpace(textutil.CollapseWhitespace(padded))
}

// Fit normalizes and splits the text, inserting unseen words into the
// vocabulary, and returns the token id of each word in original order.
// Must only be called while training; it may grow the vocabulary.
func (t *Tokenizer) Fit(text string) []int {
	words := strings.Fields(t.Normalize(text))
	ids := make([]int, len(words))
	for i, w := range words {
		id, ok := t.index[w]
		if !ok {
			id = len(t.Dict)
			t.Dict = append(t.Dict, w)
			t.index[w] = id
		}
		ids[i] = id
	}
	return ids
}

// Tokenize converts text into token ids, preserving word order and
// duplicates. Words not in the vocabulary are dropped.
func (t *Tokenizer) Tokenize(text string) []int {
	words := strings.Fields(t.Normalize(text))
	ids := make([]int, 0, len(words))
	for _, w := range words {
		if id, ok := t.index[w]; ok {
			ids = append(ids, id)
		}
	}
	return ids
}

// TokenizeSparse converts text into a sorted, deduplicated id sequence,
// suitable for presence-style (Bernoulli) features.
func (t *Tokenizer) TokenizeSparse(text string) []int {
	ids := t.Tokenize(text)
	sort.Ints(ids)

	out := ids[:0]
	for i, id := range ids {
		if i == 0 || id != ids[i-1] {
			out = append(out, id)
		}
	}
	return out
}

// TokenCount returns the current vocabulary size.
func (t *Tokenizer) TokenCount() int {
	return len(t.Dict)
}

// UnmarshalJSON restores a serialized tokenizer, rebuilding the word index
// and the compiled punctuation pattern. An invalid persisted pattern is a
// data error, not a programmer error, so it is returned rather than panicked.
func (t *Tokenizer) UnmarshalJSON(data []byte) error {
	type alias Tokenizer
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	restored := Tokenizer(a)
	if err := restored.initRuntime(); err != nil {
		return err
	}
	*t = restored
	return nil
}
