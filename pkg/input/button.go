package input

// submitControl holds the form override setters of submit and image inputs.
type submitControl[T any] struct {
	Element[T]
}

func (s *submitControl[T]) FormAction(url string) *T      { return s.Attr("formaction", url) }
func (s *submitControl[T]) FormMethod(method string) *T   { return s.Attr("formmethod", method) }
func (s *submitControl[T]) FormEnctype(enctype string) *T { return s.Attr("formenctype", enctype) }
func (s *submitControl[T]) FormNoValidate(skip bool) *T   { return s.Attr("formnovalidate", skip) }
func (s *submitControl[T]) FormTarget(target string) *T   { return s.Attr("formtarget", target) }
func (s *submitControl[T]) PopoverTarget(id string) *T    { return s.Attr("popovertarget", id) }

// InputSubmit is <input type="submit">. Its value is the button label.
type InputSubmit struct {
	submitControl[InputSubmit]
}

// NewInputSubmit creates a submit button.
func NewInputSubmit() *InputSubmit {
	return newElement[InputSubmit](KindSubmit)
}

// InputImage is <input type="image">, a graphical submit button.
type InputImage struct {
	submitControl[InputImage]
}

// NewInputImage creates an image button.
func NewInputImage() *InputImage {
	return newElement[InputImage](KindImage)
}

func (i *InputImage) Src(url string) *InputImage  { return i.Attr("src", url) }
func (i *InputImage) Alt(text string) *InputImage { return i.Attr("alt", text) }
func (i *InputImage) Width(w any) *InputImage     { return i.Attr("width", w) }
func (i *InputImage) Height(h any) *InputImage    { return i.Attr("height", h) }

// InputReset is <input type="reset">.
type InputReset struct {
	Element[InputReset]
}

// NewInputReset creates a reset button.
func NewInputReset() *InputReset {
	return newElement[InputReset](KindReset)
}

// InputButton is <input type="button">.
type InputButton struct {
	Element[InputButton]
}

// NewInputButton creates a plain button.
func NewInputButton() *InputButton {
	return newElement[InputButton](KindButton)
}

// PopoverTarget toggles the popover with the given id.
func (i *InputButton) PopoverTarget(id string) *InputButton { return i.Attr("popovertarget", id) }
