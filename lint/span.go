package lint

import "slices"

// Span is a half-open byte range [Start, End) of a source buffer.
type Span struct {
	Start, End int
}

// Overlaps reports whether s and o share at least one byte.
func (s Span) Overlaps(o Span) bool {
	return s.Start < o.End && o.Start < s.End
}

// Contains reports whether the byte at offset is inside the span.
func (s Span) Contains(offset int) bool {
	return s.Start <= offset && offset < s.End
}

// spanSet is a list of non-overlapping spans sorted by Start.
type spanSet []Span

func (ss spanSet) insert(s Span) spanSet {
	i, _ := slices.BinarySearchFunc(ss, s, func(a, b Span) int {
		return a.Start - b.Start
	})
	return slices.Insert(ss, i, s)
}

// contains reports whether offset falls inside any span of the set.
func (ss spanSet) contains(offset int) bool {
	i, found := slices.BinarySearchFunc(ss, offset, func(s Span, off int) int {
		return s.Start - off
	})
	if found {
		return true
	}
	return i > 0 && ss[i-1].Contains(offset)
}

// overlaps reports whether s overlaps any span of the set.
func (ss spanSet) overlaps(s Span) bool {
	for _, o := range ss {
		if o.Start >= s.End {
			return false
		}
		if o.Overlaps(s) {
			return true
		}
	}
	return false
}

// Mask returns a copy of src where every non-newline byte covered by spans is
// replaced with a space. The result always has the length and newline
// positions of src.
func Mask(src string, spans []Span) string {
	if len(spans) == 0 {
		return src
	}
	buf := []byte(src)
	for _, s := range spans {
		blank(buf, s)
	}
	return string(buf)
}

func blank(buf []byte, s Span) {
	for i := s.Start; i < s.End && i < len(buf); i++ {
		if buf[i] != '\n' {
			buf[i] = ' '
		}
	}
}
