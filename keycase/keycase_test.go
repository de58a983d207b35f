package keycase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue(t *testing.T) {
	for name, tc := range map[string]struct {
		In       string
		To       Case
		Expected string
	}{
		"KebabToSnake": {
			In:       "first-name",
			To:       Snake,
			Expected: "first_name",
		},
		"CamelToSnake": {
			In:       "firstName",
			To:       Snake,
			Expected: "first_name",
		},
		"SnakeToKebab": {
			In:       "first_name",
			To:       Kebab,
			Expected: "first-name",
		},
		"SnakeToCamel": {
			In:       "first_name",
			To:       Camel,
			Expected: "firstName",
		},
		"AlreadySnake": {
			In:       "first_name",
			To:       Snake,
			Expected: "first_name",
		},
	} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.Expected, Value(tc.In, tc.To))
		})
	}
}

func TestTree(t *testing.T) {
	in := map[string]any{
		"display-name": "Bolt",
		"spare-parts": []any{
			map[string]any{"part-number": "7"},
		},
	}

	out := Tree(in, Snake)
	assert.Equal(t, map[string]any{
		"display_name": "Bolt",
		"spare_parts": []any{
			map[string]any{"part_number": "7"},
		},
	}, out)

	// The input must be left untouched.
	assert.Equal(t, map[string]any{
		"display-name": "Bolt",
		"spare-parts": []any{
			map[string]any{"part-number": "7"},
		},
	}, in)
}

func TestTree_RoundTrip(t *testing.T) {
	in := map[string]any{
		"first-name": "Sam",
		"last-name":  "Coltrane",
	}
	assert.Equal(t, in, Tree(Tree(in, Snake), Kebab))
}
