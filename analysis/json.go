package analysis

// File represents a source file with its unused types.
type File struct {
	Path  string        // path as discovered under the scanned root
	Types []*UnusedType // unused types in declaration order
}

// UnusedType represents an unused type alias or type-only import.
type UnusedType struct {
	Name     string   // type identifier
	Position Position // file/line/column of the identifier token
	Line     string   // source line holding the declaration
}

// Position represents a position in a source file.
type Position struct {
	File      string // name of file
	Line, Col int    // line and byte index, both 1-based
}
