package defaults

import (
	"github.com/rs/zerolog"

	"github.com/vango-dev/inputkit/pkg/attr"
)

// Layers describes every attribute source of one element.
type Layers struct {
	// Kind selects registry, provider and theme entries.
	Kind string

	// Registry holds global defaults. Nil means Global().
	Registry *Registry

	// Providers are consulted in order; later providers win.
	Providers []Provider

	// Themes are consulted in order after the providers.
	Themes []ThemeBinding

	// Explicit holds attributes set on the element itself.
	Explicit *attr.Attributes
}

// Resolve merges the layers into a new attribute bag. The inputs are not
// modified.
func Resolve(l Layers) *attr.Attributes {
	reg := l.Registry
	if reg == nil {
		reg = Global()
	}
	logger := reg.Logger()

	out := attr.New()
	apply(out, logger, l.Kind, "global:"+Wildcard, reg.Get(Wildcard))
	if l.Kind != Wildcard {
		apply(out, logger, l.Kind, "global:"+l.Kind, reg.Get(l.Kind))
	}

	for _, p := range l.Providers {
		if p == nil {
			continue
		}
		apply(out, logger, l.Kind, "provider:"+p.Name(), p.Defaults(l.Kind))
	}

	for _, b := range l.Themes {
		if b.Provider == nil {
			continue
		}
		apply(out, logger, l.Kind, "theme:"+b.Provider.Name()+"/"+b.Theme, b.Provider.Apply(l.Kind, b.Theme))
	}

	if l.Explicit.Len() > 0 {
		logLayer(logger, l.Kind, "explicit", l.Explicit.Names())
		out.Merge(l.Explicit)
	}

	return out
}

func apply(out *attr.Attributes, logger zerolog.Logger, kind, layer string, m map[string]any) {
	if len(m) == 0 {
		return
	}
	layerAttrs := attr.FromMap(m)
	logLayer(logger, kind, layer, layerAttrs.Names())
	out.Merge(layerAttrs)
}

func logLayer(logger zerolog.Logger, kind, layer string, names []string) {
	logger.Trace().
		Str("kind", kind).
		Str("layer", layer).
		Strs("attributes", names).
		Msg("applying attribute layer")
}
