// Package render emits HTML markup from attribute bags.
//
// It handles:
//
//   - Void element tags (input, br, img, ...) with no closing tag
//   - Alphabetical attribute order for byte-stable output
//   - Boolean attributes rendered bare (required, hidden, ...)
//   - Escaping of &, <, >, " and ' in attribute values and text
//
// # Basic Usage
//
//	a := attr.New().Set("type", "text").Set("name", "q").Set("required", true)
//	render.Void("input", a) // <input name="q" required type="text">
//
// Content passed to Tag is emitted raw; escape untrusted text with Text.
package render
