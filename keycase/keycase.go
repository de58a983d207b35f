package keycase

import (
	"github.com/iancoleman/strcase"
)

// Case identifies a key naming convention.
type Case int

const (
	// Snake is the convention used within parsed records, e.g. "first_name".
	Snake Case = iota

	// Kebab is the wire convention recommended by the format, e.g.
	// "first-name".
	Kebab

	// Camel is lower camel case, e.g. "firstName".
	Camel
)

// Value converts a single member name to the given convention.
func Value(s string, to Case) string {
	switch to {
	case Kebab:
		return strcase.ToKebab(s)
	case Camel:
		return strcase.ToLowerCamel(s)
	default:
		return strcase.ToSnake(s)
	}
}

// Tree returns a copy of a decoded JSON tree with every map key converted to
// the given convention. Containers are freshly allocated, so the result never
// aliases the input.
func Tree(v any, to Case) any {
	switch v := v.(type) {
	case map[string]any:
		ret := make(map[string]any, len(v))
		for k, value := range v {
			ret[Value(k, to)] = Tree(value, to)
		}
		return ret
	case []any:
		ret := make([]any, len(v))
		for i, value := range v {
			ret[i] = Tree(value, to)
		}
		return ret
	default:
		return v
	}
}
