package input

import "github.com/vango-dev/inputkit/pkg/attr"

// Generic is an input whose kind is chosen at runtime. It has the setters
// common to every input; kind specific attributes go through Attr.
type Generic struct {
	Element[Generic]
	output bool
}

// New returns a Generic element of the given kind.
func New(kind Kind) (*Generic, error) {
	k, err := ParseKind(string(kind))
	if err != nil {
		return nil, err
	}
	return newElement[Generic](k), nil
}

// MustNew is like New but panics on an unknown kind.
func MustNew(kind Kind) *Generic {
	g, err := New(kind)
	if err != nil {
		panic(err)
	}
	return g
}

// ShowOutput renders the <output> sibling of a range input. It is ignored
// for other kinds.
func (g *Generic) ShowOutput(show bool) *Generic {
	n := g.with(nil)
	n.output = show
	return n
}

func (g *Generic) decorate(a *attr.Attributes) string {
	if !g.output || g.kind != KindRange {
		return ""
	}
	r := NewInputRange().ShowOutput(true)
	return r.decorate(a)
}
