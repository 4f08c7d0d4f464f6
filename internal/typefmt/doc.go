package typefmt

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// doc is a node of the layout algebra: text, concatenation, groups that
// print flat when they fit, indentation, line breaks and break-dependent
// content.
type doc interface{}

type (
	docText   string
	docConcat []doc
	docGroup  struct{ contents doc }
	docIndent struct{ contents doc }
	docLine   struct{ soft bool }
)

type docIfBreak struct {
	broken doc
	flat   doc
}

var (
	line     = docLine{}
	softline = docLine{soft: true}
)

func concat(parts ...doc) doc {
	return docConcat(parts)
}

func group(parts ...doc) doc {
	return docGroup{contents: docConcat(parts)}
}

func indent(parts ...doc) doc {
	return docIndent{contents: docConcat(parts)}
}

func ifBreak(broken, flat doc) doc {
	return docIfBreak{broken: broken, flat: flat}
}

func join(sep doc, parts []doc) doc {
	out := make(docConcat, 0, 2*len(parts))
	for i, part := range parts {
		if i > 0 {
			out = append(out, sep)
		}

		out = append(out, part)
	}

	return out
}

type printMode int

const (
	modeBreak printMode = iota
	modeFlat
)

type command struct {
	indent int
	mode   printMode
	doc    doc
}

type layout struct {
	width  int
	indent string
}

// render lays out d within the configured width.
func (l layout) render(d doc) string {
	var out strings.Builder

	pos := 0
	stack := []command{{mode: modeBreak, doc: d}}

	for len(stack) > 0 {
		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cmd.doc.(type) {
		case nil:
		case docText:
			out.WriteString(string(v))
			pos += runewidth.StringWidth(string(v))
		case docConcat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: v[i]})
			}
		case docIndent:
			stack = append(stack, command{indent: cmd.indent + 1, mode: cmd.mode, doc: v.contents})
		case docGroup:
			mode := cmd.mode
			if mode == modeBreak {
				next := command{indent: cmd.indent, mode: modeFlat, doc: v.contents}
				if l.fits(next, stack, l.width-pos) {
					mode = modeFlat
				}
			}

			stack = append(stack, command{indent: cmd.indent, mode: mode, doc: v.contents})
		case docIfBreak:
			branch := v.flat
			if cmd.mode == modeBreak {
				branch = v.broken
			}

			stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: branch})
		case docLine:
			if cmd.mode == modeFlat {
				if !v.soft {
					out.WriteString(" ")
					pos++
				}

				continue
			}

			prefix := strings.Repeat(l.indent, cmd.indent)
			out.WriteString("\n")
			out.WriteString(prefix)
			pos = runewidth.StringWidth(prefix)
		}
	}

	return trimTrailingSpace(out.String())
}

// fits reports whether next, printed flat, and whatever follows it up to the
// next possible line break, fit in width columns.
func (l layout) fits(next command, rest []command, width int) bool {
	stack := []command{next}
	restIdx := len(rest)

	for width >= 0 {
		if len(stack) == 0 {
			if restIdx == 0 {
				return true
			}

			restIdx--
			stack = append(stack, rest[restIdx])

			continue
		}

		cmd := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch v := cmd.doc.(type) {
		case nil:
		case docText:
			width -= runewidth.StringWidth(string(v))
		case docConcat:
			for i := len(v) - 1; i >= 0; i-- {
				stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: v[i]})
			}
		case docIndent:
			stack = append(stack, command{indent: cmd.indent + 1, mode: cmd.mode, doc: v.contents})
		case docGroup:
			stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: v.contents})
		case docIfBreak:
			branch := v.flat
			if cmd.mode == modeBreak {
				branch = v.broken
			}

			stack = append(stack, command{indent: cmd.indent, mode: cmd.mode, doc: branch})
		case docLine:
			if cmd.mode == modeBreak {
				return true
			}

			if !v.soft {
				width--
			}
		}
	}

	return false
}

func trimTrailingSpace(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \t")
	}

	return strings.Join(lines, "\n")
}
