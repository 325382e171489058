package lint

import "strings"

// LineColumn converts a byte offset of src to a 1-based line and column.
func LineColumn(src string, offset int) (line, column int) {
	prefix := src[:clamp(offset, len(src))]
	line = strings.Count(prefix, "\n") + 1
	column = len(prefix) - strings.LastIndexByte(prefix, '\n')
	return line, column
}

// LineText returns the line of src holding offset, without its line ending.
func LineText(src string, offset int) string {
	offset = clamp(offset, len(src))
	start := strings.LastIndexByte(src[:offset], '\n') + 1
	end := strings.IndexByte(src[offset:], '\n')
	if end < 0 {
		end = len(src)
	} else {
		end += offset
	}
	return strings.TrimSuffix(src[start:end], "\r")
}

func clamp(offset, size int) int {
	return max(0, min(offset, size))
}
