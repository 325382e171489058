// Package lint finds unused type aliases and type-only imports in a single
// source buffer.
//
// Detection works on plain text. Type-introducing constructs are located with
// a fixed list of matchers, the byte ranges they occupy are excluded from the
// buffer, and every introduced identifier that has no word-boundary
// occurrence left outside the excluded ranges is reported as unused.
package lint
