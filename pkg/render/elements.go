package render

import (
	"strings"

	"golang.org/x/net/html/atom"
)

// voidElements are elements that cannot have children and have no closing tag.
var voidElements = map[atom.Atom]bool{
	atom.Area:   true,
	atom.Base:   true,
	atom.Br:     true,
	atom.Col:    true,
	atom.Embed:  true,
	atom.Hr:     true,
	atom.Img:    true,
	atom.Input:  true,
	atom.Link:   true,
	atom.Meta:   true,
	atom.Param:  true,
	atom.Source: true,
	atom.Track:  true,
	atom.Wbr:    true,
}

// IsVoid reports whether tag is an HTML void element.
func IsVoid(tag string) bool {
	return voidElements[atom.Lookup([]byte(normalizeTag(tag)))]
}

// IsKnownTag reports whether tag is a standard HTML element name or a custom
// element name (one containing a hyphen).
func IsKnownTag(tag string) bool {
	tag = normalizeTag(tag)
	if tag == "" {
		return false
	}
	if atom.Lookup([]byte(tag)) != 0 {
		return true
	}
	return strings.Contains(tag, "-") && validTagName(tag)
}

func normalizeTag(tag string) string {
	return strings.ToLower(strings.TrimSpace(tag))
}

// validTagName accepts ASCII letters and digits plus '-', '_' and '.',
// starting with a letter.
func validTagName(tag string) bool {
	for i, r := range tag {
		switch {
		case r >= 'a' && r <= 'z':
		case i > 0 && (r >= '0' && r <= '9' || r == '-' || r == '_' || r == '.'):
		default:
			return false
		}
	}
	return tag != ""
}
