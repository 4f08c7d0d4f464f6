// Package typefmt pretty-prints TypeScript type declarations the way prettier
// lays them out: flat when a construct fits the print width, broken one
// member per line otherwise.
package typefmt

import (
	"context"
	"fmt"
	"strings"
)

// Options control the layout. They mirror the prettier options of the same
// name.
type Options struct {
	PrintWidth int
	TabWidth   int
	UseTabs    bool
	Semi       bool
}

// DefaultOptions matches prettier's defaults with semicolons turned off.
func DefaultOptions() Options {
	return Options{PrintWidth: 80, TabWidth: 2}
}

// ParseOptions reads the layout options out of a prettier-style option map.
// Unknown keys are ignored.
func ParseOptions(raw map[string]any) Options {
	opts := DefaultOptions()
	opts.PrintWidth = intOption(raw, "printWidth", opts.PrintWidth)
	opts.TabWidth = intOption(raw, "tabWidth", opts.TabWidth)
	opts.UseTabs = boolOption(raw, "useTabs", opts.UseTabs)
	opts.Semi = boolOption(raw, "semi", opts.Semi)

	return opts
}

// Printer formats type declarations such as "type X = { a: string; }".
type Printer struct{}

// NewPrinter constructs a Printer.
func NewPrinter() *Printer {
	return &Printer{}
}

// Format lays out source according to the prettier-style options.
func (p *Printer) Format(_ context.Context, source string, options map[string]any) (string, error) {
	return Format(source, ParseOptions(options))
}

// Format lays out a type declaration or a bare type.
func Format(source string, opts Options) (string, error) {
	tokens, err := lex(source)
	if err != nil {
		return "", err
	}

	nodes, err := parseTree(tokens)
	if err != nil {
		return "", err
	}

	for len(nodes) > 0 && nodes[len(nodes)-1].isPunct(";") {
		nodes = nodes[:len(nodes)-1]
	}

	if len(nodes) == 0 {
		return "", nil
	}

	b := builder{opts: opts}
	d := b.statement(nodes)

	if opts.Semi {
		d = concat(d, docText(";"))
	}

	unit := strings.Repeat(" ", opts.TabWidth)
	if opts.UseTabs {
		unit = "\t"
	}

	return layout{width: opts.PrintWidth, indent: unit}.render(d) + "\n", nil
}

// node is a token, or a bracketed group whose tok is the opening bracket.
type node struct {
	tok      token
	group    bool
	children []node
}

func (n node) isPunct(text string) bool {
	return !n.group && n.tok.kind == tokenPunct && n.tok.text == text
}

func (n node) isWord(text string) bool {
	return !n.group && n.tok.kind == tokenWord && n.tok.text == text
}

var closers = map[string]string{"{": "}", "(": ")", "[": "]", "<": ">"}

func parseTree(tokens []token) ([]node, error) {
	type frame struct {
		open  token
		nodes []node
	}

	stack := []frame{{}}

	for _, tok := range tokens {
		top := &stack[len(stack)-1]

		if tok.kind == tokenPunct {
			if _, opens := closers[tok.text]; opens {
				stack = append(stack, frame{open: tok})
				continue
			}

			if isCloser(tok.text) {
				if len(stack) == 1 || closers[top.open.text] != tok.text {
					return nil, fmt.Errorf("unbalanced %q", tok.text)
				}

				closed := node{tok: top.open, group: true, children: top.nodes}
				stack = stack[:len(stack)-1]
				parent := &stack[len(stack)-1]
				parent.nodes = append(parent.nodes, closed)

				continue
			}
		}

		top.nodes = append(top.nodes, node{tok: tok})
	}

	if len(stack) != 1 {
		return nil, fmt.Errorf("unclosed %q", stack[len(stack)-1].open.text)
	}

	return stack[0].nodes, nil
}

func isCloser(text string) bool {
	for _, closer := range closers {
		if closer == text {
			return true
		}
	}

	return false
}

type builder struct {
	opts Options
}

func (b builder) statement(nodes []node) doc {
	if i := indexTop(nodes, "="); i > 0 {
		return concat(b.inline(nodes[:i]), docText(" ="), b.value(nodes[i+1:], line))
	}

	return b.value(nodes, softline)
}

// member lays out an object member or a parameter: everything up to the
// first colon stays inline, the value after it may break as a union.
func (b builder) member(nodes []node) doc {
	if k := indexTop(nodes, ":"); k >= 0 {
		return concat(b.inline(nodes[:k+1]), b.value(nodes[k+1:], line))
	}

	return b.inline(nodes)
}

// value lays out a type following lead. Top-level unions break with a
// leading "|" per member.
func (b builder) value(nodes []node, lead docLine) doc {
	if len(nodes) == 0 {
		return nil
	}

	parts := splitTop(nodes, "|")
	if len(parts) > 1 && !hasTop(nodes, "=>", "?", "extends") {
		docs := make([]doc, 0, len(parts))
		for _, part := range parts {
			docs = append(docs, b.inline(part))
		}

		return group(indent(lead, ifBreak(docText("| "), nil), join(concat(line, docText("| ")), docs)))
	}

	if lead.soft {
		return b.inline(nodes)
	}

	return concat(docText(" "), b.inline(nodes))
}

func (b builder) inline(nodes []node) doc {
	parts := make(docConcat, 0, 2*len(nodes))

	for i, n := range nodes {
		if i > 0 && n.tok.space {
			parts = append(parts, docText(" "))
		}

		if n.group {
			parts = append(parts, b.bracket(n))
		} else {
			parts = append(parts, docText(n.tok.text))
		}
	}

	return parts
}

func (b builder) bracket(n node) doc {
	switch n.tok.text {
	case "{":
		return b.object(n.children)
	case "(":
		return b.parameters(n.children)
	case "[":
		return b.tuple(n.children)
	default:
		return b.typeArguments(n.children)
	}
}

func (b builder) object(children []node) doc {
	sep := ";"
	if indexTop(children, ";") < 0 && indexTop(children, ",") >= 0 {
		sep = ","
	}

	members := splitTop(children, sep)
	if len(members) == 0 {
		return docText("{}")
	}

	docs := make([]doc, 0, len(members))
	for _, member := range members {
		docs = append(docs, b.member(member))
	}

	brokenSep := docText(sep)
	if sep == ";" && !b.opts.Semi {
		brokenSep = ""
	}

	return group(
		docText("{"),
		indent(line, join(concat(ifBreak(brokenSep, docText(sep)), line), docs), ifBreak(brokenSep, nil)),
		line,
		docText("}"),
	)
}

func (b builder) parameters(children []node) doc {
	params := splitTop(children, ",")
	if len(params) == 0 {
		return docText("()")
	}

	docs := make([]doc, 0, len(params))
	for _, param := range params {
		docs = append(docs, b.member(param))
	}

	var trailing doc

	last := params[len(params)-1]
	if (len(params) > 1 || hasTop(last, ":")) && !last[0].isPunct("...") {
		trailing = ifBreak(docText(","), nil)
	}

	return group(
		docText("("),
		indent(softline, join(concat(docText(","), line), docs), trailing),
		softline,
		docText(")"),
	)
}

func (b builder) tuple(children []node) doc {
	elements := splitTop(children, ",")
	if len(elements) < 2 {
		return concat(docText("["), b.inline(children), docText("]"))
	}

	docs := make([]doc, 0, len(elements))
	for _, element := range elements {
		docs = append(docs, b.member(element))
	}

	var trailing doc
	if last := elements[len(elements)-1]; !last[0].isPunct("...") {
		trailing = ifBreak(docText(","), nil)
	}

	return group(
		docText("["),
		indent(softline, join(concat(docText(","), line), docs), trailing),
		softline,
		docText("]"),
	)
}

func (b builder) typeArguments(children []node) doc {
	args := splitTop(children, ",")

	docs := make([]doc, 0, len(args))
	for _, arg := range args {
		docs = append(docs, b.inline(arg))
	}

	return group(
		docText("<"),
		indent(softline, join(concat(docText(","), line), docs)),
		softline,
		docText(">"),
	)
}

func indexTop(nodes []node, punct string) int {
	for i, n := range nodes {
		if n.isPunct(punct) {
			return i
		}
	}

	return -1
}

func hasTop(nodes []node, texts ...string) bool {
	for _, n := range nodes {
		for _, text := range texts {
			if n.isPunct(text) || n.isWord(text) {
				return true
			}
		}
	}

	return false
}

// splitTop splits nodes at top-level separators, dropping empty parts.
func splitTop(nodes []node, sep string) [][]node {
	var (
		parts   [][]node
		current []node
	)

	for _, n := range nodes {
		if n.isPunct(sep) {
			if len(current) > 0 {
				parts = append(parts, current)
			}

			current = nil

			continue
		}

		current = append(current, n)
	}

	if len(current) > 0 {
		parts = append(parts, current)
	}

	return parts
}

func intOption(raw map[string]any, key string, fallback int) int {
	switch v := raw[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	default:
		return fallback
	}
}

func boolOption(raw map[string]any, key string, fallback bool) bool {
	if v, ok := raw[key].(bool); ok {
		return v
	}

	return fallback
}
