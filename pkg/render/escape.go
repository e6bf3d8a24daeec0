package render

import "strings"

var (
	textEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
	)

	// Attribute values also encode line breaks and tabs so that a value
	// survives a round trip through the browser's attribute normalization.
	attrEscaper = strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
		"'", "&#39;",
		"\n", "&#10;",
		"\r", "&#13;",
		"\t", "&#9;",
	)
)

// Text escapes s for safe inclusion as HTML text content.
func Text(s string) string {
	return textEscaper.Replace(s)
}

// EscapeAttr escapes s for safe inclusion in a double quoted attribute value.
func EscapeAttr(s string) string {
	return attrEscaper.Replace(s)
}
