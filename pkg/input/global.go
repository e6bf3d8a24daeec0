package input

import "strings"

// This file holds the global attribute setters shared by every element.

// ID sets the id attribute. nil or "" disables automatic id generation.
func (e *Element[T]) ID(id any) *T { return e.Attr("id", id) }

// Class replaces the element's classes, including classes added with
// AddClass. The explicit class overrides every default class. Calling Class
// with no tokens removes the explicit class.
func (e *Element[T]) Class(tokens ...string) *T {
	joined := strings.Join(strings.Fields(strings.Join(tokens, " ")), " ")
	return e.with(func(n *Element[T]) {
		n.classes = nil
		if joined == "" {
			n.attrs.Remove("class")
			return
		}
		n.attrs.Set("class", joined)
	})
}

// AddClass appends classes on top of whichever class wins resolution, so
// default and theme classes are kept.
func (e *Element[T]) AddClass(tokens ...string) *T {
	return e.with(func(n *Element[T]) {
		for _, t := range tokens {
			n.classes = append(n.classes, strings.Fields(t)...)
		}
	})
}

func (e *Element[T]) Lang(lang string) *T     { return e.Attr("lang", lang) }
func (e *Element[T]) Dir(dir string) *T       { return e.Attr("dir", dir) }
func (e *Element[T]) Title(title string) *T   { return e.Attr("title", title) }
func (e *Element[T]) Role(role string) *T     { return e.Attr("role", role) }
func (e *Element[T]) AccessKey(key string) *T { return e.Attr("accesskey", key) }
func (e *Element[T]) TabIndex(index int) *T   { return e.Attr("tabindex", index) }

// Style sets the style attribute from a string or a map[string]string of
// declarations.
func (e *Element[T]) Style(style any) *T { return e.Attr("style", style) }

func (e *Element[T]) Hidden(hidden bool) *T       { return e.Attr("hidden", hidden) }
func (e *Element[T]) Autofocus(focus bool) *T     { return e.Attr("autofocus", focus) }
func (e *Element[T]) Translate(translate bool) *T { return e.Attr("translate", translate) }
func (e *Element[T]) Spellcheck(check bool) *T    { return e.Attr("spellcheck", check) }

// Aria sets aria-<name>. The prefix is added when missing.
func (e *Element[T]) Aria(name string, value any) *T {
	return e.Attr(prefixed("aria-", name), value)
}

// Data sets data-<name>. The prefix is added when missing. Maps and slices
// are serialized as JSON.
func (e *Element[T]) Data(name string, value any) *T {
	return e.Attr(prefixed("data-", name), value)
}

func (e *Element[T]) AriaLabel(label string) *T { return e.Attr("aria-label", label) }

// AriaDescribedBy sets aria-describedby. true (or "true") is rendered as
// "<id>-help" when the element has an id and omitted otherwise.
func (e *Element[T]) AriaDescribedBy(value any) *T { return e.Attr("aria-describedby", value) }

// AriaHidden renders aria-hidden="true" or aria-hidden="false".
func (e *Element[T]) AriaHidden(hidden bool) *T { return e.Attr("aria-hidden", hidden) }

func prefixed(prefix, name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	if strings.HasPrefix(name, prefix) {
		return name
	}
	return prefix + name
}
