package dataset

import (
	"reflect"
	"testing"
)

func TestCollect(t *testing.T) {
	pairs := []Pair{
		{"hello hello world", 0},
		{"win at http://spam.example.com/now", 1},
		{"free cash http://spam.example.com/again", 1},
	}

	s := Collect(pairs, 2)

	if s.Samples != 3 {
		t.Errorf("Samples = %d, want 3", s.Samples)
	}
	if !reflect.DeepEqual(s.LabelCounts, []int{1, 2}) {
		t.Errorf("LabelCounts = %v, want [1 2]", s.LabelCounts)
	}
	if s.Words[0]["hello"] != 2 {
		t.Errorf("Words[0][hello] = %d, want 2", s.Words[0]["hello"])
	}
	if s.Domains[1]["example.com"] != 2 {
		t.Errorf("Domains[1][example.com] = %d, want 2", s.Domains[1]["example.com"])
	}
}

func TestTop(t *testing.T) {
	counter := map[string]int{"b": 3, "a": 3, "c": 1, "d": 5}

	got := Top(counter, 3)
	want := []TopEntry{{"d", 5}, {"a", 3}, {"b", 3}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Top = %v, want %v", got, want)
	}

	if got := Top(counter, 10); len(got) != 4 {
		t.Errorf("len(Top) = %d, want 4", len(got))
	}
}

func TestDomain(t *testing.T) {
	cases := []struct{ in, want string }{
		{"http://example.com/prize", "example.com"},
		{"https://sub.example.co.uk/a/b?x=1", "example.co.uk"},
		{"http://example.com:8080/x", "example.com"},
	}
	for _, c := range cases {
		if got := Domain(c.in); got != c.want {
			t.Errorf("Domain(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
