// Package report renders a human-readable dump of a finished parse.
// It knows nothing about the engine; callers hand it plain rows.

package report

import (
	"fmt"
	"io"
	"strings"
)

// Flag is one row of the flag mapping list.
type Flag struct {
	Usage     string // spelling with value notation, e.g. "--depth <value>"
	Behavior  string
	Values    []string
	ValueList bool
}

// Input is everything the report shows.
type Input struct {
	Flattened string
	Flags     []Flag
	Operands  []string
}

// Render writes the report sections in a fixed order: flattened tokens, the flags
// that were handled, then the operands. Empty sections other than the first are skipped.
func Render(w io.Writer, in Input, styles Styles) error {
	var sb strings.Builder

	writeHeader(&sb, styles, "[Flattened]")
	sb.WriteString("   " + in.Flattened + "\n")

	if len(in.Flags) > 0 {
		sb.WriteString("\n")
		writeHeader(&sb, styles, "[Flag mapping list]")

		width := 0
		for _, f := range in.Flags {
			width = max(width, len([]rune(f.Usage)))
		}

		for _, f := range in.Flags {
			sb.WriteString("  " + padRight(styles.Flag.Render(f.Usage), width+2))
			sb.WriteString(padRight(styles.Muted.Render(f.Behavior), len("arg-required")+2))
			sb.WriteString(renderValues(f, styles))
			sb.WriteString("\n")
		}
	}

	if len(in.Operands) > 0 {
		sb.WriteString("\n")
		writeHeader(&sb, styles, "[Stand-alone arguments]")

		for _, op := range in.Operands {
			fmt.Fprintf(&sb, "  Argument:   %s\n", styles.Value.Render(op))
		}
	}

	_, err := io.WriteString(w, sb.String())

	return err
}

func renderValues(f Flag, styles Styles) string {
	if len(f.Values) == 0 {
		return styles.Muted.Render("(set)")
	}

	rendered := make([]string, len(f.Values))
	for i, v := range f.Values {
		rendered[i] = styles.Value.Render(v)
	}

	out := strings.Join(rendered, ", ")
	if f.ValueList {
		out += " " + styles.Muted.Render("(list)")
	}

	return out
}

func writeHeader(sb *strings.Builder, styles Styles, title string) {
	sb.WriteString(styles.Header.Render(title))
	sb.WriteString("\n")
}
