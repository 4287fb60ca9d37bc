package styles

import "strings"

// walker drives one compilation pass over a style tree. Traversal is
// depth-first and pre-order: a node's own declarations render before any of
// its children's output.
type walker struct {
	render   renderer
	hyph     *Hyphenator
	excluded Matcher
}

func (w *walker) compile(root *Node) string {
	var b strings.Builder
	w.children(root.Children, "", 0, &b)
	return b.String()
}

// children emits output for the entries nested under a resolved parent
// selector. An excluded node is dropped with its entire subtree; the walker
// never recurses into an excluded node to rescue unexcluded descendants.
func (w *walker) children(nodes []*Node, parent string, depth int, b *strings.Builder) {
	for _, n := range nodes {
		if n.Kind == KindAtRule {
			if body := w.atRuleBody(n, parent, depth+1); body != "" {
				b.WriteString(w.render.AtRule(n.Key, body, depth))
			}
			continue
		}
		selector := Resolve(parent, n.Key)
		if w.excluded(selector) {
			continue
		}
		if decls := w.hyph.Collect(n.Decls); len(decls) > 0 {
			b.WriteString(w.render.Rule(selector, decls, depth))
		}
		w.children(n.Children, selector, depth+1, b)
	}
}

// atRuleBody aggregates an at-rule's own declarations plus every surviving
// nested rule and nested at-rule, in source order, before the wrapper
// closes. At-rules group output without changing selector scope: nested
// rules resolve against the outer selector, not the at-rule name. An empty
// body means the wrapper is never emitted.
func (w *walker) atRuleBody(n *Node, outer string, depth int) string {
	var b strings.Builder
	if decls := w.hyph.Collect(n.Decls); len(decls) > 0 {
		b.WriteString(w.render.Declarations(decls, depth))
	}
	w.children(n.Children, outer, depth, &b)
	return b.String()
}
