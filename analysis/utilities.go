package analysis

import (
	"io"
	"log/slog"

	"github.com/arxeiss/deadflow/console"
	"github.com/arxeiss/deadflow/lint"
)

func newFile(path string, findings []lint.Finding) *File {
	f := &File{
		Path:  path,
		Types: make([]*UnusedType, 0, len(findings)),
	}
	for _, finding := range findings {
		f.Types = append(f.Types, &UnusedType{
			Name: finding.Identifier,
			Position: Position{
				File: path,
				Line: finding.Line,
				Col:  finding.Column,
			},
			Line: finding.LineText,
		})
	}
	return f
}

// highlight styles the first whole-word occurrence of name in line.
func highlight(p console.Palette, line, name string) string {
	i := lint.WordIndex(line, name)
	if i < 0 || !p.Enabled() {
		return line
	}
	return line[:i] + p.Identifier(name) + line[i+len(name):]
}

func newLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelWarn
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Drop time so the output is stable.
			if a.Key == slog.TimeKey && len(groups) == 0 {
				return slog.Attr{}
			}
			return a
		},
	}))
}
