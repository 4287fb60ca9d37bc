package styles

// Unit pairs one style tree with its output destination and per-unit
// exclusion patterns.
type Unit struct {
	Tree    *Node
	Output  string
	Exclude []string
}

// Options carries cross-unit compiler settings. The zero value selects the
// default output format.
type Options struct {
	Format Format
}

func (o Options) format() Format {
	if o.Format == "" {
		return FormatDefault
	}
	return o.Format
}

// Compiler compiles style trees to CSS text. The property-name cache is
// shared across calls; beyond that a Compiler holds no mutable state, so
// concurrent compile calls need no coordination.
type Compiler struct {
	hyph *Hyphenator
}

// NewCompiler returns a Compiler with a fresh property-name cache.
func NewCompiler() *Compiler {
	return &Compiler{hyph: NewHyphenator()}
}

// CompileTree compiles a single style tree, suppressing any node whose
// resolved selector matches an exclusion pattern. Identical inputs always
// produce identical output.
func (c *Compiler) CompileTree(root *Node, exclude []string, opts Options) string {
	w := &walker{
		render:   renderer{format: opts.format()},
		hyph:     c.hyph,
		excluded: CompileExclusions(exclude),
	}
	return w.compile(root)
}

// CompileUnit compiles one unit with its own exclusion list.
func (c *Compiler) CompileUnit(u Unit, opts Options) string {
	return c.CompileTree(u.Tree, u.Exclude, opts)
}

// CompileUnits compiles each named unit independently and returns one entry
// per valid input unit. A unit without a tree is skipped, not an error:
// validity is enforced by the caller before units reach the compiler.
func (c *Compiler) CompileUnits(units map[string]Unit, opts Options) map[string]string {
	out := make(map[string]string, len(units))
	for name, u := range units {
		if u.Tree == nil {
			continue
		}
		out[name] = c.CompileUnit(u, opts)
	}
	return out
}
