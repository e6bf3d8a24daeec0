package defaults

import "sort"

// Provider supplies default attributes for an element kind.
type Provider interface {
	// Name identifies the provider in logs.
	Name() string
	// Defaults returns the attributes for kind, or nil for none.
	Defaults(kind string) map[string]any
}

// ThemeProvider supplies theme attributes, typically classes, for an element
// kind under a named theme.
type ThemeProvider interface {
	Name() string
	Apply(kind, theme string) map[string]any
}

// ThemeBinding attaches a theme provider to an element under a theme name.
type ThemeBinding struct {
	Theme    string
	Provider ThemeProvider
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func(kind string) map[string]any

// Name implements Provider.
func (f ProviderFunc) Name() string { return "func" }

// Defaults implements Provider.
func (f ProviderFunc) Defaults(kind string) map[string]any { return f(kind) }

// MapProvider is a static Provider keyed by kind. Entries under Wildcard
// apply to every kind and are overridden by the kind-specific entry.
type MapProvider struct {
	ProviderName string
	Kinds        map[string]map[string]any
}

// NewMapProvider creates a MapProvider.
func NewMapProvider(name string, kinds map[string]map[string]any) *MapProvider {
	return &MapProvider{ProviderName: name, Kinds: kinds}
}

// Name implements Provider.
func (p *MapProvider) Name() string { return p.ProviderName }

// Defaults implements Provider.
func (p *MapProvider) Defaults(kind string) map[string]any {
	return layered(p.Kinds, kind)
}

// MapTheme is a static ThemeProvider: theme -> kind -> attributes.
type MapTheme struct {
	ProviderName string
	Themes       map[string]map[string]map[string]any
}

// NewMapTheme creates a MapTheme.
func NewMapTheme(name string, themes map[string]map[string]map[string]any) *MapTheme {
	return &MapTheme{ProviderName: name, Themes: themes}
}

// Name implements ThemeProvider.
func (t *MapTheme) Name() string { return t.ProviderName }

// Apply implements ThemeProvider.
func (t *MapTheme) Apply(kind, theme string) map[string]any {
	kinds, ok := t.Themes[theme]
	if !ok {
		return nil
	}
	return layered(kinds, kind)
}

// ThemeNames returns the available theme names, sorted.
func (t *MapTheme) ThemeNames() []string {
	names := make([]string, 0, len(t.Themes))
	for name := range t.Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// HasTheme reports whether theme is defined.
func (t *MapTheme) HasTheme(theme string) bool {
	_, ok := t.Themes[theme]
	return ok
}

// layered merges the wildcard entry with the kind entry, kind winning.
func layered(kinds map[string]map[string]any, kind string) map[string]any {
	wild := kinds[Wildcard]
	specific := kinds[kind]
	if len(wild) == 0 && len(specific) == 0 {
		return nil
	}
	out := make(map[string]any, len(wild)+len(specific))
	for k, v := range wild {
		out[k] = v
	}
	for k, v := range specific {
		out[k] = v
	}
	return out
}
