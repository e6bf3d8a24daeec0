package attr

import (
	"sort"
	"strings"
)

// Attributes is an insertion-ordered attribute bag.
//
// Values may be string, bool, any integer or float type, nil, []string,
// map[string]string, fmt.Stringer or any JSON encodable value. Lists and maps
// decoded from YAML or JSON ([]any, map[string]any) are accepted for class and
// style. A nil value is kept in the bag so that an explicit nil can suppress a lower-priority
// default; it is omitted when the bag is rendered.
type Attributes struct {
	names  []string
	values map[string]any
}

// New returns an empty attribute bag.
func New() *Attributes {
	return &Attributes{values: make(map[string]any)}
}

// FromMap builds a bag from m. Keys are applied in sorted order so the
// resulting insertion order is deterministic.
func FromMap(m map[string]any) *Attributes {
	a := New()
	a.SetAll(m)
	return a
}

// normalizeName trims and lowercases an attribute name.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Set stores value under name, replacing any existing value.
// Empty names are ignored.
func (a *Attributes) Set(name string, value any) *Attributes {
	name = normalizeName(name)
	if name == "" {
		return a
	}
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		a.names = append(a.names, name)
	}
	a.values[name] = value
	return a
}

// SetAll stores every entry of m. Keys are applied in sorted order.
func (a *Attributes) SetAll(m map[string]any) *Attributes {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		a.Set(k, m[k])
	}
	return a
}

// Get returns the value stored under name, or def when name is absent.
// A name explicitly set to nil is present and returns nil.
func (a *Attributes) Get(name string, def any) any {
	if a == nil {
		return def
	}
	v, ok := a.values[normalizeName(name)]
	if !ok {
		return def
	}
	return v
}

// Lookup returns the value stored under name and whether it was present.
func (a *Attributes) Lookup(name string) (any, bool) {
	if a == nil {
		return nil, false
	}
	v, ok := a.values[normalizeName(name)]
	return v, ok
}

// Has reports whether name is present, even with a nil value.
func (a *Attributes) Has(name string) bool {
	_, ok := a.Lookup(name)
	return ok
}

// Remove deletes name from the bag.
func (a *Attributes) Remove(name string) *Attributes {
	name = normalizeName(name)
	if _, ok := a.values[name]; !ok {
		return a
	}
	delete(a.values, name)
	for i, n := range a.names {
		if n == name {
			a.names = append(a.names[:i], a.names[i+1:]...)
			break
		}
	}
	return a
}

// Len returns the number of attributes in the bag.
func (a *Attributes) Len() int {
	if a == nil {
		return 0
	}
	return len(a.names)
}

// Names returns attribute names in insertion order.
func (a *Attributes) Names() []string {
	if a == nil {
		return nil
	}
	out := make([]string, len(a.names))
	copy(out, a.names)
	return out
}

// Clone returns an independent copy of the bag. Slice and map values are
// copied one level deep.
func (a *Attributes) Clone() *Attributes {
	out := New()
	if a == nil {
		return out
	}
	out.names = make([]string, len(a.names))
	copy(out.names, a.names)
	for k, v := range a.values {
		out.values[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		c := make([]string, len(t))
		copy(c, t)
		return c
	case map[string]string:
		c := make(map[string]string, len(t))
		for k, s := range t {
			c[k] = s
		}
		return c
	case []any:
		c := make([]any, len(t))
		copy(c, t)
		return c
	case map[string]any:
		c := make(map[string]any, len(t))
		for k, s := range t {
			c[k] = s
		}
		return c
	default:
		return v
	}
}

// Merge copies every attribute of other into a, overwriting existing values.
// Names new to a are appended in other's insertion order.
func (a *Attributes) Merge(other *Attributes) *Attributes {
	if other == nil {
		return a
	}
	for _, name := range other.names {
		a.Set(name, cloneValue(other.values[name]))
	}
	return a
}

// Map returns a shallow copy of the bag as a plain map.
func (a *Attributes) Map() map[string]any {
	out := make(map[string]any, a.Len())
	if a == nil {
		return out
	}
	for k, v := range a.values {
		out[k] = v
	}
	return out
}

// AddClass appends whitespace separated class tokens to the class attribute,
// skipping empty tokens and tokens already present.
func (a *Attributes) AddClass(tokens ...string) *Attributes {
	existing := ClassTokens(a.Get("class", nil))
	seen := make(map[string]bool, len(existing))
	for _, t := range existing {
		seen[t] = true
	}
	for _, group := range tokens {
		for _, t := range strings.Fields(group) {
			if !seen[t] {
				seen[t] = true
				existing = append(existing, t)
			}
		}
	}
	if len(existing) == 0 {
		return a
	}
	return a.Set("class", strings.Join(existing, " "))
}

// ClassTokens splits a class attribute value into its tokens.
func ClassTokens(v any) []string {
	switch t := v.(type) {
	case string:
		return strings.Fields(t)
	case []string:
		var out []string
		for _, s := range t {
			out = append(out, strings.Fields(s)...)
		}
		return out
	case []any:
		list, ok := stringList(t)
		if !ok {
			return nil
		}
		return ClassTokens(list)
	default:
		return nil
	}
}
