package input

import (
	"strings"
	"sync"

	"github.com/vango-dev/inputkit/pkg/attr"
	"github.com/vango-dev/inputkit/pkg/defaults"
	"github.com/vango-dev/inputkit/pkg/ids"
	"github.com/vango-dev/inputkit/pkg/render"
)

// Element is the state shared by every input type. Concrete types embed it
// with themselves as T so that every setter returns the concrete type:
//
//	type InputHidden struct{ Element[InputHidden] }
//
// Setters never modify the receiver. Each returns a new *T.
// Elements must be created through their New* constructors.
type Element[T any] struct {
	self      *T
	kind      Kind
	attrs     *attr.Attributes
	classes   []string
	prefix    affix
	suffix    affix
	providers []defaults.Provider
	themes    []defaults.ThemeBinding
	registry  *defaults.Registry
	id        *lazyID
}

// elementOf is implemented by every *T embedding Element[T].
type elementOf[T any] interface {
	base() *Element[T]
}

// decorator is implemented by types rendering extra markup after the input.
// It may adjust the input attributes and returns the sibling markup.
type decorator interface {
	decorate(a *attr.Attributes) string
}

// lazyID holds the id generated on first render.
type lazyID struct {
	once  sync.Once
	value string
}

// affix is optional content rendered before or after the input.
type affix struct {
	content string
	tag     string
	attrs   *attr.Attributes
}

func (a affix) clone() affix {
	if a.attrs != nil {
		a.attrs = a.attrs.Clone()
	}
	return a
}

func (a affix) render() string {
	if a.tag == "" {
		return a.content
	}
	return render.Tag(a.tag, a.content, a.attrs)
}

func (e *Element[T]) base() *Element[T] { return e }

// newElement allocates a T and initializes its embedded Element.
func newElement[T any](kind Kind) *T {
	t := new(T)
	e := any(t).(elementOf[T]).base()
	e.self = t
	e.kind = kind
	e.attrs = attr.New()
	e.id = &lazyID{}
	return t
}

// with returns a modified copy of the element. fn may be nil.
func (e *Element[T]) with(fn func(*Element[T])) *T {
	n := new(T)
	if e.self != nil {
		*n = *e.self
	}
	ne := any(n).(elementOf[T]).base()
	if e.self == nil {
		*ne = *e
	}
	ne.self = n
	ne.attrs = e.attrs.Clone()
	ne.classes = append([]string(nil), e.classes...)
	ne.prefix = e.prefix.clone()
	ne.suffix = e.suffix.clone()
	ne.providers = append([]defaults.Provider(nil), e.providers...)
	ne.themes = append([]defaults.ThemeBinding(nil), e.themes...)
	ne.id = &lazyID{}
	if fn != nil {
		fn(ne)
	}
	return n
}

// Kind returns the input type.
func (e *Element[T]) Kind() Kind { return e.kind }

// Attr sets an arbitrary attribute. A nil value suppresses any default for
// name. The type attribute is fixed by the element kind and cannot be set.
func (e *Element[T]) Attr(name string, value any) *T {
	return e.with(func(n *Element[T]) { n.attrs.Set(name, value) })
}

// Attrs sets several attributes at once.
func (e *Element[T]) Attrs(attrs map[string]any) *T {
	return e.with(func(n *Element[T]) { n.attrs.SetAll(attrs) })
}

// RemoveAttr removes an explicitly set attribute so defaults apply again.
func (e *Element[T]) RemoveAttr(name string) *T {
	return e.with(func(n *Element[T]) {
		n.attrs.Remove(name)
		if strings.EqualFold(strings.TrimSpace(name), "class") {
			n.classes = nil
		}
	})
}

// Attribute returns the explicitly set value of name, or def when absent.
// Defaults from registries and providers are not consulted.
func (e *Element[T]) Attribute(name string, def any) any {
	if strings.EqualFold(strings.TrimSpace(name), "class") && len(e.classes) > 0 {
		merged := attr.New()
		if v, ok := e.attrs.Lookup("class"); ok {
			merged.Set("class", v)
		}
		merged.AddClass(e.classes...)
		return merged.Get("class", def)
	}
	return e.attrs.Get(name, def)
}

// Attributes returns a copy of the explicitly set attributes.
func (e *Element[T]) Attributes() *attr.Attributes {
	return e.attrs.Clone()
}

// Prefix sets raw markup rendered before the input.
func (e *Element[T]) Prefix(content string) *T {
	return e.with(func(n *Element[T]) { n.prefix.content = content })
}

// PrefixTag wraps the prefix content in tag with the given attributes.
// An empty tag removes the wrapper. Tags that are neither HTML elements nor
// valid custom element names are ignored.
func (e *Element[T]) PrefixTag(tag string, attrs map[string]any) *T {
	return e.with(func(n *Element[T]) { n.prefix.tag, n.prefix.attrs = wrapper(tag, attrs) })
}

// Suffix sets raw markup rendered after the input.
func (e *Element[T]) Suffix(content string) *T {
	return e.with(func(n *Element[T]) { n.suffix.content = content })
}

// SuffixTag wraps the suffix content in tag with the given attributes.
func (e *Element[T]) SuffixTag(tag string, attrs map[string]any) *T {
	return e.with(func(n *Element[T]) { n.suffix.tag, n.suffix.attrs = wrapper(tag, attrs) })
}

func wrapper(tag string, attrs map[string]any) (string, *attr.Attributes) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	if !render.IsKnownTag(tag) {
		return "", nil
	}
	return tag, attr.FromMap(attrs)
}

// WithProvider appends default providers. Later providers win.
func (e *Element[T]) WithProvider(providers ...defaults.Provider) *T {
	return e.with(func(n *Element[T]) { n.providers = append(n.providers, providers...) })
}

// WithTheme binds a theme provider under the given theme name.
func (e *Element[T]) WithTheme(theme string, p defaults.ThemeProvider) *T {
	return e.with(func(n *Element[T]) {
		n.themes = append(n.themes, defaults.ThemeBinding{Theme: theme, Provider: p})
	})
}

// WithRegistry makes the element read global defaults from r instead of
// the process-wide registry.
func (e *Element[T]) WithRegistry(r *defaults.Registry) *T {
	return e.with(func(n *Element[T]) { n.registry = r })
}

// Resolved returns the final attribute set used for rendering: all layers
// merged, type forced, id generated when absent and aria-describedby resolved.
func (e *Element[T]) Resolved() *attr.Attributes {
	out := defaults.Resolve(defaults.Layers{
		Kind:      string(e.kind),
		Registry:  e.registry,
		Providers: e.providers,
		Themes:    e.themes,
		Explicit:  e.attrs,
	})
	if len(e.classes) > 0 {
		out.AddClass(e.classes...)
	}
	out.Set("type", string(e.kind))

	id, hasID := e.resolveID(out)
	out.ResolveDescribedBy(id, hasID)
	return out
}

func (e *Element[T]) resolveID(out *attr.Attributes) (string, bool) {
	v, ok := out.Lookup("id")
	if !ok {
		id := e.generatedID()
		out.Set("id", id)
		return id, true
	}
	// Follow the rendered form so id=false means no id.
	s, ok := attr.ValueString("id", v)
	return s, ok && s != ""
}

func (e *Element[T]) generatedID() string {
	if e.id == nil {
		// Zero-value element without a constructor; nothing to memoize into.
		return ids.Generate(e.kind.idPrefix())
	}
	e.id.once.Do(func() {
		e.id.value = ids.Generate(e.kind.idPrefix())
	})
	return e.id.value
}

// Render returns the element markup: prefix, input, any sibling markup and
// suffix, joined by newlines with empty parts skipped.
func (e *Element[T]) Render() string {
	a := e.Resolved()
	var sibling string
	if e.self != nil {
		if d, ok := any(e.self).(decorator); ok {
			sibling = d.decorate(a)
		}
	}
	return render.Join(
		e.prefix.render(),
		render.Void("input", a),
		sibling,
		e.suffix.render(),
	)
}

// String implements fmt.Stringer.
func (e *Element[T]) String() string {
	return e.Render()
}
