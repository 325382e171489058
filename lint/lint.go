package lint

// Linter reports unused type declarations of a single buffer.
type Linter struct {
	extractor *Extractor
}

// New creates a Linter using the default matchers.
func New(marker string) *Linter {
	return &Linter{extractor: NewExtractor(marker)}
}

// Lint returns the unused type identifiers of src in declaration order.
// Buffers without the marker yield no findings.
func (l *Linter) Lint(src string) []Finding {
	return Unused(src, l.extractor.Extract(src))
}
