package input

import (
	"github.com/vango-dev/inputkit/pkg/attr"
	"github.com/vango-dev/inputkit/pkg/render"
)

// bounded holds the range setters shared by numeric and date inputs.
type bounded[T any] struct {
	Element[T]
}

func (b *bounded[T]) Min(v any) *T      { return b.Attr("min", v) }
func (b *bounded[T]) Max(v any) *T      { return b.Attr("max", v) }
func (b *bounded[T]) Step(v any) *T     { return b.Attr("step", v) }
func (b *bounded[T]) List(id string) *T { return b.Attr("list", id) }

// boundedField adds the editing constraints range inputs do not support.
type boundedField[T any] struct {
	bounded[T]
}

func (b *boundedField[T]) Readonly(readonly bool) *T { return b.Attr("readonly", readonly) }
func (b *boundedField[T]) Required(required bool) *T { return b.Attr("required", required) }

// InputNumber is <input type="number">.
type InputNumber struct {
	boundedField[InputNumber]
}

// NewInputNumber creates a number input.
func NewInputNumber() *InputNumber {
	return newElement[InputNumber](KindNumber)
}

func (i *InputNumber) Placeholder(text string) *InputNumber { return i.Attr("placeholder", text) }

// InputRange is <input type="range">. With ShowOutput it renders an <output>
// sibling displaying the current value.
type InputRange struct {
	bounded[InputRange]
	output      bool
	outputAttrs *attr.Attributes
}

// NewInputRange creates a range input.
func NewInputRange() *InputRange {
	return newElement[InputRange](KindRange)
}

// ShowOutput toggles the <output> sibling.
func (i *InputRange) ShowOutput(show bool) *InputRange {
	n := i.cloneRange()
	n.output = show
	return n
}

// OutputAttrs sets attributes on the <output> sibling. It does not enable it.
func (i *InputRange) OutputAttrs(attrs map[string]any) *InputRange {
	n := i.cloneRange()
	n.outputAttrs = attr.FromMap(attrs)
	return n
}

// HasOutput reports whether the <output> sibling is rendered.
func (i *InputRange) HasOutput() bool { return i.output }

func (i *InputRange) cloneRange() *InputRange {
	n := i.with(nil)
	if i.outputAttrs != nil {
		n.outputAttrs = i.outputAttrs.Clone()
	}
	return n
}

// decorate binds the input and its <output>. The output id defaults to
// "<id>-output" and its content is the input's current value.
func (i *InputRange) decorate(a *attr.Attributes) string {
	if !i.output {
		return ""
	}
	out := i.outputAttrs.Clone()
	id, _ := attr.ValueString("id", a.Get("id", nil))
	if id != "" {
		if !out.Has("id") {
			out.Set("id", id+"-output")
		}
		if !out.Has("for") {
			out.Set("for", id)
		}
	}
	if !a.Has("oninput") {
		a.Set("oninput", "this.nextElementSibling.value=this.value")
	}
	value, _ := attr.ValueString("value", a.Get("value", nil))
	return render.Tag("output", render.Text(value), out)
}
