package input

import "strings"

// InputFile is <input type="file">.
type InputFile struct {
	Element[InputFile]
}

// NewInputFile creates a file picker.
func NewInputFile() *InputFile {
	return newElement[InputFile](KindFile)
}

// Accept sets the accepted file types. Multiple values are joined with
// commas, e.g. Accept("image/*", ".pdf").
func (i *InputFile) Accept(types ...string) *InputFile {
	kept := make([]string, 0, len(types))
	for _, t := range types {
		if t = strings.TrimSpace(t); t != "" {
			kept = append(kept, t)
		}
	}
	if len(kept) == 0 {
		return i.Attr("accept", nil)
	}
	return i.Attr("accept", strings.Join(kept, ","))
}

// Capture selects the camera facing mode ("user" or "environment").
func (i *InputFile) Capture(mode string) *InputFile { return i.Attr("capture", mode) }

func (i *InputFile) Multiple(multiple bool) *InputFile { return i.Attr("multiple", multiple) }
func (i *InputFile) Required(required bool) *InputFile { return i.Attr("required", required) }
