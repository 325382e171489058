package analysis

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/arxeiss/deadflow/console"
)

func (r *Runner) printJSON(files []*File) error {
	enc := json.NewEncoder(r.writer)
	enc.SetIndent("", "\t")
	return enc.Encode(files)
}

func (r *Runner) printText(files []*File) {
	palette := console.NewPalette(r.ColorFlag)

	count := 0
	for _, f := range files {
		count += len(f.Types)
	}
	plural := "s"
	if count == 1 {
		plural = ""
	}
	fmt.Fprintf(r.writer, "Found %d unused Flow type%s.\n\n", count, plural)
	if count == 0 {
		return
	}

	sep := palette.Separator(":")
	for _, f := range files {
		fmt.Fprintln(r.writer, palette.Path(f.Path))
		for _, t := range f.Types {
			fmt.Fprintf(r.writer, "  %s\n", strings.Join([]string{
				palette.Identifier(t.Name),
				strconv.Itoa(t.Position.Line),
				strconv.Itoa(t.Position.Col),
				highlight(palette, t.Line, t.Name),
			}, sep))
		}
		fmt.Fprintln(r.writer)
	}
}
