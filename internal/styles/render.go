package styles

import (
	"fmt"
	"strings"
)

// Format selects the output texture of rendered CSS.
type Format string

const (
	// FormatDefault renders "selector{prop:value;}" with one trailing
	// newline per rule.
	FormatDefault Format = "default"
	// FormatMinify is FormatDefault without trailing newlines.
	FormatMinify Format = "minify"
	// FormatPretty renders one declaration per line with two-space
	// indentation per nesting depth.
	FormatPretty Format = "pretty"
)

// ParseFormat maps a configuration string onto a Format. The empty string
// selects FormatDefault; anything else unrecognized is an error.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "":
		return FormatDefault, nil
	case FormatDefault, FormatMinify, FormatPretty:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown output format %q (want default, minify, or pretty)", s)
	}
}

const indentUnit = "  "

func indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

// renderer emits one rule block or at-rule wrapper at a time. It never
// decides whether something should be emitted; the walker only calls it
// with non-empty content.
type renderer struct {
	format Format
}

// Rule renders one selector block at the given nesting depth. Declaration
// order is preserved as given.
func (r renderer) Rule(selector string, decls []Declaration, depth int) string {
	switch r.format {
	case FormatPretty:
		var b strings.Builder
		pad := indent(depth)
		b.WriteString(pad)
		b.WriteString(selector)
		b.WriteString(" {\n")
		for _, d := range decls {
			b.WriteString(pad)
			b.WriteString(indentUnit)
			b.WriteString(d.Name)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";\n")
		}
		b.WriteString(pad)
		b.WriteString("}\n")
		return b.String()
	case FormatMinify:
		return selector + "{" + joinDecls(decls) + "}"
	default:
		return selector + "{" + joinDecls(decls) + "}\n"
	}
}

// Declarations renders a bare declaration list with no selector wrapper,
// used for an at-rule's own declarations.
func (r renderer) Declarations(decls []Declaration, depth int) string {
	switch r.format {
	case FormatPretty:
		var b strings.Builder
		pad := indent(depth)
		for _, d := range decls {
			b.WriteString(pad)
			b.WriteString(d.Name)
			b.WriteString(": ")
			b.WriteString(d.Value)
			b.WriteString(";\n")
		}
		return b.String()
	case FormatMinify:
		return joinDecls(decls)
	default:
		return joinDecls(decls) + "\n"
	}
}

// AtRule wraps a pre-rendered, non-empty body. The body text already carries
// its own indentation one level deeper than the wrapper.
func (r renderer) AtRule(name, body string, depth int) string {
	switch r.format {
	case FormatPretty:
		pad := indent(depth)
		return pad + name + " {\n" + body + pad + "}\n"
	case FormatMinify:
		return name + "{" + body + "}"
	default:
		return name + "{" + body + "}\n"
	}
}

func joinDecls(decls []Declaration) string {
	var b strings.Builder
	for _, d := range decls {
		b.WriteString(d.Name)
		b.WriteByte(':')
		b.WriteString(d.Value)
		b.WriteByte(';')
	}
	return b.String()
}
