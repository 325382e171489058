package lint

import (
	"regexp"
	"strings"
)

var (
	namedImportPattern  = regexp.MustCompile(`import\s+type\s+(\w+)\s+from[^;]+?;`)
	bracedImportPattern = regexp.MustCompile(`import\s+type\s*\{([^}]+)\}\s*from[^;]+?;`)
	aliasPattern        = regexp.MustCompile(`(export\s+)?type\s+(\w+)\s*=`)
)

// Declaration is a type identifier introduced in a source buffer.
type Declaration struct {
	Identifier string // introduced name
	Offset     int    // byte offset of the identifier token
}

// Match is a single type-introducing construct found by a Matcher.
type Match struct {
	Span         Span          // bytes occupied by the whole construct
	Declarations []Declaration // identifiers worth checking, may be empty
}

// Matcher locates one form of type-introducing construct.
type Matcher interface {
	// Match returns every non-overlapping construct in src, in order.
	Match(src string) []Match
}

// DefaultMatchers returns the matchers in the order they must be applied.
func DefaultMatchers() []Matcher {
	return []Matcher{NamedImport{}, BracedImportList{}, AliasDeclaration{}}
}

// NamedImport matches `import type Name from '...';`.
type NamedImport struct{}

func (NamedImport) Match(src string) []Match {
	var matches []Match
	for _, loc := range namedImportPattern.FindAllStringSubmatchIndex(src, -1) {
		matches = append(matches, declare(src, Span{Start: loc[0], End: loc[1]}, src[loc[2]:loc[3]]))
	}
	return matches
}

// BracedImportList matches `import type { A, B as C } from '...';`.
//
// Entries are split on commas. `Name as Local` binds Local, and entries that
// are not plain identifiers are ignored.
type BracedImportList struct{}

func (BracedImportList) Match(src string) []Match {
	var matches []Match
	for _, loc := range bracedImportPattern.FindAllStringSubmatchIndex(src, -1) {
		var identifiers []string
		for _, entry := range strings.Split(src[loc[2]:loc[3]], ",") {
			name := localName(strings.TrimSpace(entry))
			if !IsIdentifier(name) {
				continue
			}
			identifiers = append(identifiers, name)
		}
		matches = append(matches, declare(src, Span{Start: loc[0], End: loc[1]}, identifiers...))
	}
	return matches
}

func localName(entry string) string {
	fields := strings.Fields(entry)
	if len(fields) == 3 && fields[1] == "as" {
		return fields[2]
	}
	return entry
}

// AliasDeclaration matches `type Name =` with an optional `export` qualifier.
// Exported aliases may be used by other files, so only their span is
// reported and no declaration is recorded.
type AliasDeclaration struct{}

func (AliasDeclaration) Match(src string) []Match {
	var matches []Match
	for _, loc := range aliasPattern.FindAllStringSubmatchIndex(src, -1) {
		span := Span{Start: loc[0], End: loc[1]}
		if loc[2] >= 0 {
			matches = append(matches, Match{Span: span})
			continue
		}
		matches = append(matches, declare(src, span, src[loc[4]:loc[5]]))
	}
	return matches
}

// declare builds a Match, locating each identifier at its first word-boundary
// occurrence inside the span.
func declare(src string, span Span, identifiers ...string) Match {
	m := Match{Span: span}
	text := src[span.Start:span.End]
	for _, id := range identifiers {
		i := WordIndex(text, id)
		if i < 0 {
			continue
		}
		m.Declarations = append(m.Declarations, Declaration{Identifier: id, Offset: span.Start + i})
	}
	return m
}
