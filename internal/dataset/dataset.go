// Package dataset loads labeled text corpora for training and evaluation.
package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/parquet-go/parquet-go"

	"github.com/happyhackingspace/textclass/internal/textutil"
)

// Pair is one labeled training or evaluation message.
type Pair struct {
	Text  string
	Label int
}

// LoadOptions controls corpus loading behavior.
type LoadOptions struct {
	// StripHTML removes markup from message bodies (email-style corpora).
	StripHTML bool
}

// parquetRow matches the reference SMS spam dataset layout.
type parquetRow struct {
	Text  string `parquet:"sms"`
	Label int64  `parquet:"label"`
}

// Load reads labeled pairs from a parquet or CSV file, dispatching on the
// file extension.
func Load(path string, opts LoadOptions) ([]Pair, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".parquet":
		return LoadParquet(path, opts)
	case ".csv", ".tsv":
		return LoadCSV(path, opts)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// LoadParquet reads pairs from a parquet file with "sms" and "label" columns.
func LoadParquet(path string, opts LoadOptions) ([]Pair, error) {
	rows, err := parquet.ReadFile[parquetRow](path)
	if err != nil {
		return nil, fmt.Errorf("read parquet %s: %w", path, err)
	}

	pairs := make([]Pair, 0, len(rows))
	for i, row := range rows {
		if row.Label < 0 {
			return nil, fmt.Errorf("row %d: negative label %d", i, row.Label)
		}
		pairs = append(pairs, Pair{Text: cleanText(row.Text, opts), Label: int(row.Label)})
	}
	return pairs, nil
}

// LoadCSV reads pairs from a two-column text,label CSV file. A header row is
// skipped when its second column is not an integer.
func LoadCSV(path string, opts LoadOptions) ([]Pair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.FieldsPerRecord = 2
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv %s: %w", path, err)
	}

	var pairs []Pair
	for i, rec := range records {
		label, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			if i == 0 {
				continue // header row
			}
			return nil, fmt.Errorf("row %d: invalid label %q", i, rec[1])
		}
		if label < 0 {
			return nil, fmt.Errorf("row %d: negative label %d", i, label)
		}
		pairs = append(pairs, Pair{Text: cleanText(rec[0], opts), Label: label})
	}
	return pairs, nil
}

func cleanText(text string, opts LoadOptions) string {
	if opts.StripHTML {
		text = StripHTML(text)
	}
	return textutil.StripNewlines(text)
}

// StripHTML returns the visible text of an HTML fragment. Plain text passes
// through unchanged.
func StripHTML(s string) string {
	if !strings.Contains(s, "<") {
		return s
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}
	return doc.Text()
}

// Split separates the trailing holdout rows into an evaluation set, the way
// the reference pipeline holds out the end of the corpus.
func Split(pairs []Pair, holdout int) (train, eval []Pair) {
	if holdout < 0 {
		holdout = 0
	}
	if holdout > len(pairs) {
		holdout = len(pairs)
	}
	cut := len(pairs) - holdout
	return pairs[:cut], pairs[cut:]
}

// NumLabels returns the number of classes implied by the corpus, i.e. the
// highest label plus one.
func NumLabels(pairs []Pair) int {
	n := 0
	for _, p := range pairs {
		if p.Label >= n {
			n = p.Label + 1
		}
	}
	return n
}
