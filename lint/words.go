package lint

import "strings"

func isWordByte(b byte) bool {
	return b == '_' ||
		('a' <= b && b <= 'z') ||
		('A' <= b && b <= 'Z') ||
		('0' <= b && b <= '9')
}

// IsIdentifier reports whether s is a non-empty run of identifier bytes
// (ASCII letters, digits and underscore).
func IsIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isWordByte(s[i]) {
			return false
		}
	}
	return true
}

// WordIndex returns the index of the first occurrence of word in s that is
// delimited on both sides by a non-identifier byte or the edge of s, or -1.
func WordIndex(s, word string) int {
	return wordIndex(s, word, nil)
}

// wordIndex is WordIndex over s as masked by excluded: occurrences touching an
// excluded byte are skipped and excluded bytes act as delimiters.
func wordIndex(s, word string, excluded spanSet) int {
	if word == "" {
		return -1
	}
	delimits := func(i int) bool {
		return i < 0 || i >= len(s) || !isWordByte(s[i]) || excluded.contains(i)
	}
	for from := 0; from <= len(s)-len(word); {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(word)
		if delimits(i-1) && delimits(end) && !excluded.overlaps(Span{Start: i, End: end}) {
			return i
		}
		from = i + 1
	}
	return -1
}
