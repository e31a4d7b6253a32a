package dataset

import (
	"sort"
	"strings"

	"golang.org/x/net/publicsuffix"

	"github.com/happyhackingspace/textclass/internal/textutil"
)

// Stats summarizes a labeled corpus per class.
type Stats struct {
	Samples     int
	LabelCounts []int
	// Domains[label] counts eTLD+1 domains of URLs seen in messages.
	Domains []map[string]int
	// Words[label] counts word occurrences in messages.
	Words []map[string]int
}

// Collect computes corpus statistics over numLabels classes.
func Collect(pairs []Pair, numLabels int) *Stats {
	s := &Stats{
		Samples:     len(pairs),
		LabelCounts: make([]int, numLabels),
		Domains:     make([]map[string]int, numLabels),
		Words:       make([]map[string]int, numLabels),
	}
	for i := 0; i < numLabels; i++ {
		s.Domains[i] = make(map[string]int)
		s.Words[i] = make(map[string]int)
	}

	for _, p := range pairs {
		if p.Label >= numLabels {
			continue
		}
		s.LabelCounts[p.Label]++
		for _, u := range textutil.FindURLs(p.Text) {
			s.Domains[p.Label][Domain(u)]++
		}
		for _, w := range textutil.Words(p.Text) {
			s.Words[p.Label][w]++
		}
	}
	return s
}

// TopEntry is a count-ranked map entry.
type TopEntry struct {
	Key   string
	Count int
}

// Top returns the n highest-count entries of a counter, ties broken by key.
func Top(counter map[string]int, n int) []TopEntry {
	entries := make([]TopEntry, 0, len(counter))
	for k, v := range counter {
		entries = append(entries, TopEntry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Key < entries[j].Key
	})
	if n < len(entries) {
		entries = entries[:n]
	}
	return entries
}

// Domain extracts the eTLD+1 domain from a URL, falling back to the bare
// host when the public suffix list cannot resolve it.
func Domain(rawURL string) string {
	host := rawURL
	if idx := strings.Index(host, "://"); idx >= 0 {
		host = host[idx+3:]
	}
	if idx := strings.Index(host, "/"); idx >= 0 {
		host = host[:idx]
	}
	if idx := strings.Index(host, ":"); idx >= 0 {
		host = host[:idx]
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return host
	}
	return domain
}
