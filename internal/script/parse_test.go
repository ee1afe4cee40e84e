package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# build a record
setName "widget one"
setCount 2
	mergeTags [a, b]

setMeta {colour: red, size: 3}
setNothing ~
isActive yes
getName
`
	invs, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, invs, 7)

	assert.Equal(t, Invocation{Name: "setName", Args: []any{"widget one"}, Line: 2}, invs[0])
	assert.Equal(t, Invocation{Name: "setCount", Args: []any{2}, Line: 3}, invs[1])
	assert.Equal(t, Invocation{Name: "mergeTags", Args: []any{[]any{"a", "b"}}, Line: 4}, invs[2])
	assert.Equal(t, Invocation{Name: "setMeta", Args: []any{map[string]any{"colour": "red", "size": 3}}, Line: 6}, invs[3])
	assert.Equal(t, Invocation{Name: "setNothing", Args: []any{nil}, Line: 7}, invs[4])
	assert.Equal(t, Invocation{Name: "isActive", Args: []any{"yes"}, Line: 8}, invs[5])
	assert.Equal(t, Invocation{Name: "getName", Line: 9}, invs[6])
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		line    int
		wantErr error
	}{
		{"bad name", "setFoo 1\nset-foo 2\n", 2, ErrInvalidName},
		{"leading digit", "9lives\n", 1, ErrInvalidName},
		{"bad literal", "\nsetFoo [1, 2\n", 2, ErrInvalidValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			var lerr *LineError
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, tt.line, lerr.Line)
		})
	}
}

func TestParse_Empty(t *testing.T) {
	invs, err := Parse(strings.NewReader("\n# nothing\n\n"))
	require.NoError(t, err)
	assert.Empty(t, invs)
}

func TestParseArg(t *testing.T) {
	tests := []struct {
		arg  string
		want Invocation
	}{
		{"getFoo", Invocation{Name: "getFoo"}},
		{"setFoo=2", Invocation{Name: "setFoo", Args: []any{2}}},
		{"setFoo=", Invocation{Name: "setFoo"}},
		{"setFoo=a=b", Invocation{Name: "setFoo", Args: []any{"a=b"}}},
		{"isFoo=0", Invocation{Name: "isFoo", Args: []any{0}}},
		{"mergeFoo=[1, x]", Invocation{Name: "mergeFoo", Args: []any{[]any{1, "x"}}}},
	}
	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			got, err := ParseArg(tt.arg)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseArg("=2")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestParseArg_NormalizesMappingKeys(t *testing.T) {
	got, err := ParseArg("setFoo={1: a, b: [{2: c}]}")
	require.NoError(t, err)
	assert.Equal(t, []any{map[string]any{
		"1": "a",
		"b": []any{map[string]any{"2": "c"}},
	}}, got.Args)
}

func TestParseArg_RejectsUnencodableValues(t *testing.T) {
	for _, arg := range []string{
		"setFoo=.nan",
		"setFoo=.inf",
		"setFoo=-.inf",
		"setFoo=[1, .nan]",
		"setFoo={a: .inf}",
		`setFoo={1: a, "1": b}`,
	} {
		t.Run(arg, func(t *testing.T) {
			_, err := ParseArg(arg)
			assert.ErrorIs(t, err, ErrInvalidValue)
		})
	}
}

func TestParse_RejectsNaNWithLine(t *testing.T) {
	_, err := Parse(strings.NewReader("setFoo 1\nsetBar .nan\n"))
	require.ErrorIs(t, err, ErrInvalidValue)

	var lerr *LineError
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, 2, lerr.Line)
}
