package attr

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Pair is a single attribute ready for serialization.
// Bare pairs render as the name alone (e.g. `required`).
type Pair struct {
	Name  string
	Value string
	Bare  bool
}

// booleanAttrs are HTML boolean attributes. true renders the bare name and
// false omits the attribute.
var booleanAttrs = map[string]bool{
	"allowfullscreen": true,
	"async":           true,
	"autofocus":       true,
	"autoplay":        true,
	"checked":         true,
	"controls":        true,
	"default":         true,
	"defer":           true,
	"disabled":        true,
	"formnovalidate":  true,
	"hidden":          true,
	"inert":           true,
	"ismap":           true,
	"loop":            true,
	"multiple":        true,
	"muted":           true,
	"novalidate":      true,
	"open":            true,
	"playsinline":     true,
	"readonly":        true,
	"required":        true,
	"reversed":        true,
	"selected":        true,
}

// enumeratedBools take the literal strings "true" and "false".
var enumeratedBools = map[string]bool{
	"contenteditable": true,
	"draggable":       true,
	"spellcheck":      true,
}

// IsBoolean reports whether name is an HTML boolean attribute.
func IsBoolean(name string) bool {
	return booleanAttrs[normalizeName(name)]
}

// Normalize converts the bag into serializable pairs sorted by name.
// Attributes that should not be emitted (nil values, false booleans, invalid
// names) are dropped.
func (a *Attributes) Normalize() []Pair {
	if a.Len() == 0 {
		return nil
	}
	names := a.Names()
	sort.Strings(names)

	pairs := make([]Pair, 0, len(names))
	for _, name := range names {
		if !ValidName(name) {
			continue
		}
		if p, ok := normalizeValue(name, a.values[name]); ok {
			pairs = append(pairs, p)
		}
	}
	return pairs
}

func normalizeValue(name string, value any) (Pair, bool) {
	switch v := value.(type) {
	case nil:
		return Pair{}, false
	case string:
		return Pair{Name: name, Value: v}, true
	case bool:
		return normalizeBool(name, v)
	case int:
		return Pair{Name: name, Value: strconv.Itoa(v)}, true
	case int8:
		return Pair{Name: name, Value: strconv.FormatInt(int64(v), 10)}, true
	case int16:
		return Pair{Name: name, Value: strconv.FormatInt(int64(v), 10)}, true
	case int32:
		return Pair{Name: name, Value: strconv.FormatInt(int64(v), 10)}, true
	case int64:
		return Pair{Name: name, Value: strconv.FormatInt(v, 10)}, true
	case uint:
		return Pair{Name: name, Value: strconv.FormatUint(uint64(v), 10)}, true
	case uint8:
		return Pair{Name: name, Value: strconv.FormatUint(uint64(v), 10)}, true
	case uint16:
		return Pair{Name: name, Value: strconv.FormatUint(uint64(v), 10)}, true
	case uint32:
		return Pair{Name: name, Value: strconv.FormatUint(uint64(v), 10)}, true
	case uint64:
		return Pair{Name: name, Value: strconv.FormatUint(v, 10)}, true
	case float32:
		return Pair{Name: name, Value: strconv.FormatFloat(float64(v), 'f', -1, 32)}, true
	case float64:
		return Pair{Name: name, Value: strconv.FormatFloat(v, 'f', -1, 64)}, true
	case []string:
		joined := strings.Join(strings.Fields(strings.Join(v, " ")), " ")
		if joined == "" {
			return Pair{}, false
		}
		return Pair{Name: name, Value: joined}, true
	case []any:
		tokens, ok := stringList(v)
		if !ok {
			return jsonPair(name, v)
		}
		return normalizeValue(name, tokens)
	case map[string]string:
		if name == "style" {
			return Pair{Name: name, Value: styleString(v)}, true
		}
		return jsonPair(name, v)
	case map[string]any:
		if name == "style" {
			return Pair{Name: name, Value: styleString(stringMap(v))}, true
		}
		return jsonPair(name, v)
	case fmt.Stringer:
		return Pair{Name: name, Value: v.String()}, true
	default:
		return jsonPair(name, v)
	}
}

func normalizeBool(name string, v bool) (Pair, bool) {
	switch {
	case name == "translate":
		if v {
			return Pair{Name: name, Value: "yes"}, true
		}
		return Pair{Name: name, Value: "no"}, true
	case enumeratedBools[name],
		strings.HasPrefix(name, "aria-"),
		strings.HasPrefix(name, "data-"):
		return Pair{Name: name, Value: strconv.FormatBool(v)}, true
	}
	// HTML boolean attributes and anything unknown.
	if v {
		return Pair{Name: name, Bare: true}, true
	}
	return Pair{}, false
}

// styleString renders a style map as "k: v;" declarations sorted by key.
func styleString(m map[string]string) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		if strings.TrimSpace(k) != "" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, strings.TrimSpace(k)+": "+strings.TrimSpace(m[k])+";")
	}
	return strings.Join(parts, " ")
}

// stringList converts a decoded list of strings, as produced by YAML and JSON
// decoders, to []string. ok is false if any item is not a string.
func stringList(list []any) ([]string, bool) {
	out := make([]string, 0, len(list))
	for _, item := range list {
		s, ok := item.(string)
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// stringMap formats the values of a decoded map. nil values are skipped.
func stringMap(m map[string]any) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		if v == nil {
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}

func jsonPair(name string, v any) (Pair, bool) {
	data, err := json.Marshal(v)
	if err != nil {
		return Pair{Name: name, Value: fmt.Sprintf("%v", v)}, true
	}
	return Pair{Name: name, Value: string(data)}, true
}

// ValidName reports whether name can be serialized as an HTML attribute name.
// Control characters, whitespace, quotes, '>', '/', '=' and '<' are rejected.
func ValidName(name string) bool {
	if name == "" {
		return false
	}
	for _, r := range name {
		switch {
		case r <= 0x20, r == 0x7f:
			return false
		case r == '"', r == '\'', r == '>', r == '/', r == '=', r == '<':
			return false
		}
	}
	return true
}

// ResolveDescribedBy rewrites a boolean aria-describedby request.
//
// When aria-describedby is true or the string "true" it becomes "<id>-help"
// if the element has an id and is removed otherwise. Other values are left
// untouched.
func (a *Attributes) ResolveDescribedBy(id string, hasID bool) *Attributes {
	v, ok := a.Lookup("aria-describedby")
	if !ok {
		return a
	}
	requested := false
	switch t := v.(type) {
	case bool:
		requested = t
		if !t {
			// false means "no description".
			return a.Remove("aria-describedby")
		}
	case string:
		requested = t == "true"
	}
	if !requested {
		return a
	}
	if !hasID || id == "" {
		return a.Remove("aria-describedby")
	}
	return a.Set("aria-describedby", id+"-help")
}

// ValueString converts a single attribute value to its serialized text using
// the same rules as Normalize. ok is false when the value would be omitted;
// bare booleans return the empty string.
func ValueString(name string, value any) (s string, ok bool) {
	p, ok := normalizeValue(normalizeName(name), value)
	if !ok {
		return "", false
	}
	return p.Value, true
}
