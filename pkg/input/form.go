package input

// Form-associated attributes shared by every input type.

func (e *Element[T]) Name(name string) *T { return e.Attr("name", name) }

// Value sets the value attribute. Numbers are rendered in decimal form.
func (e *Element[T]) Value(value any) *T { return e.Attr("value", value) }

// Form associates the input with a form element by id.
func (e *Element[T]) Form(id string) *T { return e.Attr("form", id) }

func (e *Element[T]) Disabled(disabled bool) *T { return e.Attr("disabled", disabled) }

func (e *Element[T]) Autocomplete(value string) *T { return e.Attr("autocomplete", value) }
