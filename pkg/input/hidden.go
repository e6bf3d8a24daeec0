package input

// InputHidden is <input type="hidden">.
type InputHidden struct {
	Element[InputHidden]
}

// NewInputHidden creates a hidden input.
func NewInputHidden() *InputHidden {
	return newElement[InputHidden](KindHidden)
}
