package dataset

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/parquet-go/parquet-go"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadCSV(t *testing.T) {
	path := writeCSV(t, "text,label\nhello there,0\nwin cash now,1\n")

	pairs, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}

	want := []Pair{{"hello there", 0}, {"win cash now", 1}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %v, want %v", pairs, want)
	}
}

func TestLoadCSVNoHeader(t *testing.T) {
	path := writeCSV(t, "hello there,0\nwin cash now,1\n")

	pairs, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if len(pairs) != 2 {
		t.Errorf("len(pairs) = %d, want 2", len(pairs))
	}
}

func TestLoadCSVStripsNewlines(t *testing.T) {
	path := writeCSV(t, "\"first\nsecond\",0\n")

	pairs, err := LoadCSV(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if pairs[0].Text != "firstsecond" {
		t.Errorf("Text = %q, want %q", pairs[0].Text, "firstsecond")
	}
}

func TestLoadCSVNegativeLabel(t *testing.T) {
	path := writeCSV(t, "bad row,-1\n")

	if _, err := LoadCSV(path, LoadOptions{}); err == nil {
		t.Fatal("LoadCSV accepted a negative label")
	}
}

func TestLoadUnsupportedFormat(t *testing.T) {
	if _, err := Load("data.xlsx", LoadOptions{}); err == nil {
		t.Fatal("Load accepted an unsupported extension")
	}
}

func TestLoadParquet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.parquet")
	rows := []parquetRow{
		{Text: "hello there", Label: 0},
		{Text: "win cash now", Label: 1},
	}
	if err := parquet.WriteFile(path, rows); err != nil {
		t.Fatal(err)
	}

	pairs, err := Load(path, LoadOptions{})
	if err != nil {
		t.Fatal(err)
	}
	want := []Pair{{"hello there", 0}, {"win cash now", 1}}
	if !reflect.DeepEqual(pairs, want) {
		t.Errorf("pairs = %v, want %v", pairs, want)
	}
}

func TestStripHTML(t *testing.T) {
	got := StripHTML("<html><body>Hello <b>world</b></body></html>")
	if got != "Hello world" {
		t.Errorf("StripHTML = %q, want %q", got, "Hello world")
	}

	// Plain text passes through untouched.
	if got := StripHTML("no markup here"); got != "no markup here" {
		t.Errorf("StripHTML = %q", got)
	}
}

func TestSplit(t *testing.T) {
	pairs := []Pair{{"a", 0}, {"b", 1}, {"c", 0}, {"d", 1}}

	train, eval := Split(pairs, 1)
	if len(train) != 3 || len(eval) != 1 {
		t.Fatalf("Split = %d/%d, want 3/1", len(train), len(eval))
	}
	if eval[0].Text != "d" {
		t.Errorf("holdout starts at %q, want %q", eval[0].Text, "d")
	}

	// Oversized holdout caps at the corpus size.
	train, eval = Split(pairs, 10)
	if len(train) != 0 || len(eval) != 4 {
		t.Errorf("Split = %d/%d, want 0/4", len(train), len(eval))
	}
}

func TestNumLabels(t *testing.T) {
	if got := NumLabels([]Pair{{"a", 0}, {"b", 2}, {"c", 1}}); got != 3 {
		t.Errorf("NumLabels = %d, want 3", got)
	}
	if got := NumLabels(nil); got != 0 {
		t.Errorf("NumLabels = %d, want 0", got)
	}
}
