package entities

import "strings"

const referencePlaceholder = "%s"

// ReferenceTemplate turns a logical reference into the wire-visible one, e.g.
// "ORD-%s" formats "abc" as "ORD-abc". An empty template behaves like "%s".
type ReferenceTemplate string

// NewReferenceTemplate builds a template from a bare prefix ("ORD-" => "ORD-%s").
func NewReferenceTemplate(prefix string) ReferenceTemplate {
	return ReferenceTemplate(prefix + referencePlaceholder)
}

func (t ReferenceTemplate) String() string {
	if t == "" {
		return referencePlaceholder
	}
	return string(t)
}

// Valid reports whether the template holds exactly one placeholder.
func (t ReferenceTemplate) Valid() bool {
	return strings.Count(t.String(), referencePlaceholder) == 1
}

func (t ReferenceTemplate) Format(ref string) string {
	return strings.Replace(t.String(), referencePlaceholder, ref, 1)
}

// Strip removes the template's prefix and suffix from ref when both are present.
func (t ReferenceTemplate) Strip(ref string) string {
	prefix, suffix, ok := strings.Cut(t.String(), referencePlaceholder)
	if !ok || (prefix == "" && suffix == "") {
		return ref
	}
	if len(ref) < len(prefix)+len(suffix) || !strings.HasPrefix(ref, prefix) || !strings.HasSuffix(ref, suffix) {
		return ref
	}
	return ref[len(prefix) : len(ref)-len(suffix)]
}
