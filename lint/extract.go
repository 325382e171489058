package lint

import "strings"

// DefaultMarker opts a file into type checking.
const DefaultMarker = "@flow"

// Extraction is the outcome of running an Extractor over one buffer.
type Extraction struct {
	// Declarations maps each introduced identifier to the offset of its
	// identifier token. A name introduced twice keeps the last offset.
	Declarations map[string]int
	// Excluded holds the spans of all matched constructs, sorted by Start.
	Excluded []Span
}

// Extractor collects type declarations from files carrying a marker.
type Extractor struct {
	marker   string
	matchers []Matcher
}

// NewExtractor creates an extractor active on buffers containing marker.
// Without matchers, DefaultMatchers are used.
func NewExtractor(marker string, matchers ...Matcher) *Extractor {
	if len(matchers) == 0 {
		matchers = DefaultMatchers()
	}
	return &Extractor{
		marker:   marker,
		matchers: matchers,
	}
}

// Extract runs all matchers in order. Each matcher sees the buffer with the
// spans of previous matches blanked, so a construct is never matched twice.
func (e *Extractor) Extract(src string) *Extraction {
	ex := &Extraction{Declarations: make(map[string]int)}
	if !strings.Contains(src, e.marker) {
		return ex
	}

	work := []byte(src)
	var excluded spanSet
	for _, m := range e.matchers {
		for _, match := range m.Match(string(work)) {
			for _, d := range match.Declarations {
				ex.Declarations[d.Identifier] = d.Offset
			}
			excluded = excluded.insert(match.Span)
			blank(work, match.Span)
		}
	}
	ex.Excluded = excluded
	return ex
}
