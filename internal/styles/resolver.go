package styles

import "strings"

// ParentRef is the selector-template character replaced by the parent's
// resolved selector.
const ParentRef = "&"

const pseudoMarker = ':'

// Resolve composes the effective selector for a child key under parent.
//
// A key containing ParentRef has every occurrence replaced by parent with no
// extra joining character. A key whose first character is ':' concatenates
// directly onto parent, which also covers ::pseudo-elements. Any other key
// is space-joined as a descendant, or returned unchanged when parent is
// empty. Total over all string inputs.
func Resolve(parent, key string) string {
	if strings.Contains(key, ParentRef) {
		return strings.ReplaceAll(key, ParentRef, parent)
	}
	if len(key) > 0 && key[0] == pseudoMarker {
		return parent + key
	}
	if parent != "" {
		return parent + " " + key
	}
	return key
}
