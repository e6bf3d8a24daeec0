package input

import (
	"errors"
	"fmt"
	"strings"
)

// Kind is the input type; it doubles as the rendered type attribute and as
// the registry key for defaults.
type Kind string

const (
	KindHidden        Kind = "hidden"
	KindText          Kind = "text"
	KindSearch        Kind = "search"
	KindTel           Kind = "tel"
	KindURL           Kind = "url"
	KindEmail         Kind = "email"
	KindPassword      Kind = "password"
	KindNumber        Kind = "number"
	KindRange         Kind = "range"
	KindDate          Kind = "date"
	KindDateTimeLocal Kind = "datetime-local"
	KindMonth         Kind = "month"
	KindWeek          Kind = "week"
	KindTime          Kind = "time"
	KindColor         Kind = "color"
	KindCheckbox      Kind = "checkbox"
	KindRadio         Kind = "radio"
	KindFile          Kind = "file"
	KindSubmit        Kind = "submit"
	KindReset         Kind = "reset"
	KindButton        Kind = "button"
	KindImage         Kind = "image"
)

var allKinds = []Kind{
	KindHidden, KindText, KindSearch, KindTel, KindURL, KindEmail, KindPassword,
	KindNumber, KindRange,
	KindDate, KindDateTimeLocal, KindMonth, KindWeek, KindTime,
	KindColor, KindCheckbox, KindRadio, KindFile,
	KindSubmit, KindReset, KindButton, KindImage,
}

// ErrUnknownKind is returned for input types this package does not model.
var ErrUnknownKind = errors.New("unknown input kind")

// Kinds returns every supported kind.
func Kinds() []Kind {
	out := make([]Kind, len(allKinds))
	copy(out, allKinds)
	return out
}

// ParseKind validates s as a kind. Matching is case-insensitive.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range allKinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// String implements fmt.Stringer.
func (k Kind) String() string { return string(k) }

// idPrefix is the prefix of generated ids, e.g. "inputdatetimelocal-".
func (k Kind) idPrefix() string {
	return "input" + strings.ReplaceAll(string(k), "-", "") + "-"
}
