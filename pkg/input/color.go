package input

// InputColor is <input type="color">.
type InputColor struct {
	Element[InputColor]
}

// NewInputColor creates a color picker.
func NewInputColor() *InputColor {
	return newElement[InputColor](KindColor)
}

// List references a <datalist> of suggested colors.
func (i *InputColor) List(id string) *InputColor { return i.Attr("list", id) }
