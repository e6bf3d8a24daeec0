package render

import (
	"io"
	"strings"

	"github.com/vango-dev/inputkit/pkg/attr"
)

// Attributes renders the bag as a space-prefixed attribute list in
// alphabetical order, e.g. ` id="a" required`.
func Attributes(a *attr.Attributes) string {
	var b strings.Builder
	_ = writeAttributes(&b, a)
	return b.String()
}

// Void renders a void element: `<tag attrs>`.
func Void(tag string, a *attr.Attributes) string {
	var b strings.Builder
	_ = WriteVoid(&b, tag, a)
	return b.String()
}

// WriteVoid streams a void element to w.
func WriteVoid(w io.Writer, tag string, a *attr.Attributes) error {
	if err := writeString(w, "<"+normalizeTag(tag)); err != nil {
		return err
	}
	if err := writeAttributes(w, a); err != nil {
		return err
	}
	return writeString(w, ">")
}

// Tag renders `<tag attrs>content</tag>`. Content is written raw.
// Void tags ignore content and render as Void.
func Tag(tag, content string, a *attr.Attributes) string {
	if IsVoid(tag) {
		return Void(tag, a)
	}
	var b strings.Builder
	b.WriteString(Begin(tag, a))
	b.WriteString(content)
	b.WriteString(End(tag))
	return b.String()
}

// Begin renders the opening tag.
func Begin(tag string, a *attr.Attributes) string {
	return Void(tag, a)
}

// End renders the closing tag. Void tags have none.
func End(tag string) string {
	if IsVoid(tag) {
		return ""
	}
	return "</" + normalizeTag(tag) + ">"
}

// Join joins the non-empty parts with a newline.
func Join(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

// writeAttributes renders all attributes for an element.
func writeAttributes(w io.Writer, a *attr.Attributes) error {
	for _, p := range a.Normalize() {
		if p.Bare {
			if err := writeString(w, " "+p.Name); err != nil {
				return err
			}
			continue
		}
		if err := writeString(w, " "+p.Name+`="`+EscapeAttr(p.Value)+`"`); err != nil {
			return err
		}
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
