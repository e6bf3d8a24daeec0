package input

// checkable holds the setters shared by checkboxes and radio buttons.
type checkable[T any] struct {
	Element[T]
}

func (c *checkable[T]) Checked(checked bool) *T   { return c.Attr("checked", checked) }
func (c *checkable[T]) Required(required bool) *T { return c.Attr("required", required) }

// InputCheckbox is <input type="checkbox">.
type InputCheckbox struct {
	checkable[InputCheckbox]
}

// NewInputCheckbox creates a checkbox.
func NewInputCheckbox() *InputCheckbox {
	return newElement[InputCheckbox](KindCheckbox)
}

// InputRadio is <input type="radio">.
type InputRadio struct {
	checkable[InputRadio]
}

// NewInputRadio creates a radio button.
func NewInputRadio() *InputRadio {
	return newElement[InputRadio](KindRadio)
}
