package input

// textControl holds the setters shared by text-like inputs.
type textControl[T any] struct {
	Element[T]
}

func (c *textControl[T]) MaxLength(n int) *T          { return c.Attr("maxlength", n) }
func (c *textControl[T]) MinLength(n int) *T          { return c.Attr("minlength", n) }
func (c *textControl[T]) Pattern(pattern string) *T   { return c.Attr("pattern", pattern) }
func (c *textControl[T]) Placeholder(text string) *T  { return c.Attr("placeholder", text) }
func (c *textControl[T]) Readonly(readonly bool) *T   { return c.Attr("readonly", readonly) }
func (c *textControl[T]) Required(required bool) *T   { return c.Attr("required", required) }
func (c *textControl[T]) Size(n int) *T               { return c.Attr("size", n) }
func (c *textControl[T]) InputMode(mode string) *T    { return c.Attr("inputmode", mode) }
func (c *textControl[T]) EnterKeyHint(hint string) *T { return c.Attr("enterkeyhint", hint) }

// InputText is <input type="text">.
type InputText struct {
	textControl[InputText]
}

// NewInputText creates a text input.
func NewInputText() *InputText {
	return newElement[InputText](KindText)
}

// List references a <datalist> by id.
func (i *InputText) List(id string) *InputText { return i.Attr("list", id) }

// Dirname names the form field carrying the text direction.
func (i *InputText) Dirname(name string) *InputText { return i.Attr("dirname", name) }

// InputSearch is <input type="search">.
type InputSearch struct {
	textControl[InputSearch]
}

// NewInputSearch creates a search input.
func NewInputSearch() *InputSearch {
	return newElement[InputSearch](KindSearch)
}

func (i *InputSearch) List(id string) *InputSearch      { return i.Attr("list", id) }
func (i *InputSearch) Dirname(name string) *InputSearch { return i.Attr("dirname", name) }

// InputTel is <input type="tel">.
type InputTel struct {
	textControl[InputTel]
}

// NewInputTel creates a telephone input.
func NewInputTel() *InputTel {
	return newElement[InputTel](KindTel)
}

func (i *InputTel) List(id string) *InputTel { return i.Attr("list", id) }

// InputURL is <input type="url">.
type InputURL struct {
	textControl[InputURL]
}

// NewInputURL creates a URL input.
func NewInputURL() *InputURL {
	return newElement[InputURL](KindURL)
}

func (i *InputURL) List(id string) *InputURL { return i.Attr("list", id) }

// InputEmail is <input type="email">.
type InputEmail struct {
	textControl[InputEmail]
}

// NewInputEmail creates an email input.
func NewInputEmail() *InputEmail {
	return newElement[InputEmail](KindEmail)
}

func (i *InputEmail) List(id string) *InputEmail { return i.Attr("list", id) }

// Multiple allows a comma separated list of addresses.
func (i *InputEmail) Multiple(multiple bool) *InputEmail { return i.Attr("multiple", multiple) }

// InputPassword is <input type="password">. It does not support list.
type InputPassword struct {
	textControl[InputPassword]
}

// NewInputPassword creates a password input.
func NewInputPassword() *InputPassword {
	return newElement[InputPassword](KindPassword)
}
