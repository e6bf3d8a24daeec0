// Package input models the HTML <input> element, one Go type per input kind.
//
// Every setter returns a modified copy, so elements can be shared and used as
// templates:
//
//	base := input.NewInputText().Class("form-control").Required(true)
//	name := base.Name("name").Placeholder("Your name")
//	fmt.Println(name.Render())
//
// Attribute values are resolved from four layers, lowest first:
//
//   - global defaults from a [defaults.Registry] ("*" then the kind)
//   - default providers added with WithProvider
//   - theme providers bound with WithTheme
//   - attributes set on the element
//
// A value set to nil in a higher layer removes the attribute. The type
// attribute always matches the element kind.
//
// An element rendered without an id gets a generated one, e.g.
// "inputtext-1f0c9a3e5b7d2468", which stays stable for that instance.
// ID(nil) disables generation. aria-describedby set to true becomes
// "<id>-help" when the element has an id and is dropped otherwise.
package input
