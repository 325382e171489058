package lint

import (
	"cmp"
	"slices"
	"strings"
)

// Finding is an unused type identifier with its declaration site.
type Finding struct {
	Identifier string
	Offset     int    // byte offset of the identifier token
	Line       int    // 1-based
	Column     int    // 1-based, in bytes
	LineText   string // source line holding the identifier
}

// IsReferenced reports whether identifier occurs as a whole word in src
// outside of the excluded spans. Excluded must be sorted by Start and must not
// overlap; bytes inside it are treated as blanks.
func IsReferenced(src, identifier string, excluded []Span) bool {
	return wordIndex(src, identifier, excluded) >= 0
}

// Unused returns a finding for every declaration of ex that is not
// referenced in src, ordered by declaration offset.
func Unused(src string, ex *Extraction) []Finding {
	findings := make([]Finding, 0)
	for id, offset := range ex.Declarations {
		if IsReferenced(src, id, ex.Excluded) {
			continue
		}
		line, col := LineColumn(src, offset)
		findings = append(findings, Finding{
			Identifier: id,
			Offset:     offset,
			Line:       line,
			Column:     col,
			LineText:   LineText(src, offset),
		})
	}
	slices.SortFunc(findings, func(a, b Finding) int {
		return cmp.Or(cmp.Compare(a.Offset, b.Offset), strings.Compare(a.Identifier, b.Identifier))
	})
	return findings
}
