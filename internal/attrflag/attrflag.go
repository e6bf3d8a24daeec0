// Package attrflag parses attributes given as text, on the command line
// ("--attr name=value") or in preview URLs ("a.name=value").
package attrflag

import (
	"strconv"
	"strings"

	"github.com/vango-dev/inputkit/internal/errors"
	"github.com/vango-dev/inputkit/pkg/attr"
)

// ParseValue converts text to an attribute value: "true" and "false" become
// booleans, "null" becomes nil, integers become int and everything else is
// kept as a string.
func ParseValue(s string) any {
	switch s {
	case "true":
		return true
	case "false":
		return false
	case "null":
		return nil
	}
	if n, err := strconv.Atoi(s); err == nil && strconv.Itoa(n) == s {
		return n
	}
	return s
}

// Parse splits "name=value". A bare "name" means name=true.
func Parse(kv string) (string, any, error) {
	name, raw, hasValue := strings.Cut(kv, "=")
	name = strings.TrimSpace(name)
	if name == "" || !attr.ValidName(strings.ToLower(name)) {
		return "", nil, errors.New(errors.CodeBadAttribute).
			WithDetail("cannot parse attribute " + strconv.Quote(kv))
	}
	if !hasValue {
		return name, true, nil
	}
	return name, ParseValue(raw), nil
}

// ParseAll parses every entry into a map. Later entries win.
func ParseAll(kvs []string) (map[string]any, error) {
	out := make(map[string]any, len(kvs))
	for _, kv := range kvs {
		name, value, err := Parse(kv)
		if err != nil {
			return nil, err
		}
		out[name] = value
	}
	return out, nil
}
