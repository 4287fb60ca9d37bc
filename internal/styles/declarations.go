package styles

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
)

// Declaration is a render-ready property pair: hyphenated name, stringified
// value.
type Declaration struct {
	Name  string
	Value string
}

// Hyphenator memoizes camelCase to hyphen-case property name conversion.
// The mapping is a pure function of the key, so the cache is append-only and
// never invalidated; concurrent use at worst recomputes a value.
type Hyphenator struct {
	cache sync.Map // string -> string
}

// NewHyphenator returns an empty property-name memoizer.
func NewHyphenator() *Hyphenator {
	return &Hyphenator{}
}

// Hyphenate converts an ASCII camelCase property name to hyphen-case:
// each uppercase letter becomes a hyphen plus its lowercase form.
func (h *Hyphenator) Hyphenate(name string) string {
	if v, ok := h.cache.Load(name); ok {
		return v.(string)
	}
	out := hyphenate(name)
	h.cache.Store(name, out)
	return out
}

func hyphenate(name string) string {
	var b strings.Builder
	b.Grow(len(name) + 4)
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			b.WriteByte('-')
			b.WriteByte(c + 'a' - 'A')
		} else {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// Collect filters a declaration block into render-ready pairs in source
// order. Properties with absent values are skipped. Never errors: an absent
// or empty block collects to nothing.
func (h *Hyphenator) Collect(decls []Decl) []Declaration {
	if len(decls) == 0 {
		return nil
	}
	out := make([]Declaration, 0, len(decls))
	for _, d := range decls {
		if d.Value == nil {
			continue
		}
		out = append(out, Declaration{
			Name:  h.Hyphenate(d.Property),
			Value: formatValue(d.Value),
		})
	}
	return out
}

// formatValue stringifies a property value best-effort: strings verbatim,
// numbers as decimal text.
func formatValue(v any) string {
	switch v := v.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}
