package input

// InputDate is <input type="date">.
type InputDate struct {
	boundedField[InputDate]
}

// NewInputDate creates a date input.
func NewInputDate() *InputDate {
	return newElement[InputDate](KindDate)
}

// InputDateTimeLocal is <input type="datetime-local">.
type InputDateTimeLocal struct {
	boundedField[InputDateTimeLocal]
}

// NewInputDateTimeLocal creates a local date and time input.
func NewInputDateTimeLocal() *InputDateTimeLocal {
	return newElement[InputDateTimeLocal](KindDateTimeLocal)
}

// InputMonth is <input type="month">.
type InputMonth struct {
	boundedField[InputMonth]
}

func NewInputMonth() *InputMonth {
	return newElement[InputMonth](KindMonth)
}

// InputWeek is <input type="week">.
type InputWeek struct {
	boundedField[InputWeek]
}

func NewInputWeek() *InputWeek {
	return newElement[InputWeek](KindWeek)
}

// InputTime is <input type="time">.
type InputTime struct {
	boundedField[InputTime]
}

func NewInputTime() *InputTime {
	return newElement[InputTime](KindTime)
}
