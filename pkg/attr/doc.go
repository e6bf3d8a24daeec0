// Package attr holds the attribute bag shared by every element.
//
// An Attributes value keeps insertion order for iteration and merging, but is
// always serialized alphabetically by Normalize so that rendering the same bag
// twice produces identical markup.
//
// Normalize applies the value coercion table:
//
//	nil                          omitted
//	hidden, required, ... (bool) bare name when true, omitted when false
//	translate (bool)             "yes" / "no"
//	aria-*, data-*, spellcheck   "true" / "false"
//	int, float                   decimal text
//	[]string                     space separated tokens
//	style map[string]string      "k: v;" declarations
//	other maps and slices        JSON
package attr
