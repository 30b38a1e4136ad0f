package hydrate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMap_PutKeepsPosition(t *testing.T) {
	m := NewMap().Set("a", 1).Set("b", 2).Set("a", 3)

	assert.Equal(t, []Key{Name("a"), Name("b")}, m.Keys())
	assert.Equal(t, []any{3, 2}, m.Values())
}

func TestMap_AppendFollowsHighestIndex(t *testing.T) {
	m := NewMap().SetIndex(5, "five").Append("six").Set("x", "named").Append("seven")

	assert.Equal(t, []Key{Index(5), Index(6), Name("x"), Index(7)}, m.Keys())
	assert.Equal(t, []any{"five", "six", "seven"}, m.List())
}

func TestMap_Delete(t *testing.T) {
	m := ListOf("a", "b", "c")
	m.Delete(Index(1))
	m.Delete(Name("missing"))

	assert.Equal(t, []any{"a", "c"}, m.Values())
	assert.False(t, m.Has(Index(1)))
	assert.False(t, m.isList())
}

func TestMap_NilIsEmpty(t *testing.T) {
	var m *Map

	assert.Zero(t, m.Len())
	assert.Nil(t, m.Keys())
	assert.Nil(t, m.Values())

	_, ok := m.Lookup("a")
	assert.False(t, ok)

	for range m.All() {
		t.Fatal("nil map yielded an entry")
	}
}

func TestMap_ZeroValueIsUsable(t *testing.T) {
	var m Map
	m.Append("x")

	assert.Equal(t, []any{"x"}, m.List())
}

func TestMap_Clone(t *testing.T) {
	m := ListOf("a").Set("b", 2)
	c := m.Clone()
	c.Append("z")

	assert.Equal(t, 2, m.Len())
	assert.Equal(t, []Key{Index(0), Name("b"), Index(1)}, c.Keys())
}

func TestKey_String(t *testing.T) {
	assert.Equal(t, "0", Index(0).String())
	assert.Equal(t, "0", Name("0").String())
	assert.NotEqual(t, Index(0), Name("0"))

	i, ok := Index(3).Index()
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = Name("x").Index()
	assert.False(t, ok)
}

func TestParseJSON(t *testing.T) {
	m, err := ParseJSON([]byte(`{"zeta":1,"alfa":2.5,"nested":{"b":true,"a":null},"list":["x",1]}`))
	require.NoError(t, err)

	assert.Equal(t, []Key{Name("zeta"), Name("alfa"), Name("nested"), Name("list")}, m.Keys())

	v, _ := m.Lookup("zeta")
	assert.Equal(t, 1, v)

	v, _ = m.Lookup("alfa")
	assert.InDelta(t, 2.5, v, 0)

	v, _ = m.Lookup("nested")
	nested, ok := v.(*Map)
	require.True(t, ok)
	assert.Equal(t, []Key{Name("b"), Name("a")}, nested.Keys())
	assert.Equal(t, []any{true, nil}, nested.Values())

	v, _ = m.Lookup("list")
	assert.Equal(t, []any{"x", 1}, v)
}

func TestParseJSON_Array(t *testing.T) {
	m, err := ParseJSON([]byte(`["X_X", false]`))
	require.NoError(t, err)

	assert.Equal(t, []any{"X_X", false}, m.List())
}

func TestParseJSON_Errors(t *testing.T) {
	_, err := ParseJSON([]byte(`"scalar"`))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseJSON([]byte(`{"a":`))
	require.Error(t, err)

	_, err = ParseJSON([]byte(`{"a":1} junk`))
	require.ErrorIs(t, err, ErrInvalidArgument)

	_, err = ParseJSON([]byte(`[1][2]`))
	require.ErrorIs(t, err, ErrInvalidArgument)
}

func TestParseJSON_TrailingWhitespace(t *testing.T) {
	m, err := ParseJSON([]byte("{\"a\":1}  \n\t"))
	require.NoError(t, err)

	assert.Equal(t, 1, m.Len())
}

func TestMap_JSONRoundTrip(t *testing.T) {
	const doc = `{"b":1,"a":{"y":"z"},"0":[1,2]}`

	var m Map
	require.NoError(t, m.UnmarshalJSON([]byte(doc)))

	out, err := m.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, doc, string(out))
	assert.Equal(t, doc, string(out))

	list, err := ListOf("a", 1).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `["a",1]`, string(list))
}

func TestMap_MarshalJSONKeyCollision(t *testing.T) {
	m := NewMap().SetIndex(0, "index").Set("0", "name")

	_, err := m.MarshalJSON()
	require.ErrorIs(t, err, ErrInvalidArgument)

	nested := NewMap().Set("inner", m)

	_, err = nested.MarshalJSON()
	require.ErrorIs(t, err, ErrInvalidArgument)

	// the pooled stream must not carry the failure over
	out, err := NewMap().Set("0", "name").MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `{"0":"name"}`, string(out))
}

func TestParseYAML(t *testing.T) {
	doc := `
foo: test
bar: "142"
0: X_X
1: false
nested:
  b: 1
  a: [x, y]
`

	m, err := ParseYAML([]byte(doc))
	require.NoError(t, err)

	assert.Equal(t,
		[]Key{Name("foo"), Name("bar"), Index(0), Index(1), Name("nested")},
		m.Keys())
	assert.Equal(t, []any{"X_X", false}, m.List())

	v, _ := m.Lookup("bar")
	assert.Equal(t, "142", v)

	v, _ = m.Lookup("nested")
	nested, ok := v.(*Map)
	require.True(t, ok)

	a, _ := nested.Lookup("a")
	assert.Equal(t, []any{"x", "y"}, a)
}

func TestParseYAML_Sequence(t *testing.T) {
	m, err := ParseYAML([]byte("- a\n- 2\n"))
	require.NoError(t, err)

	assert.Equal(t, []any{"a", 2}, m.List())
}

func TestParseYAML_Empty(t *testing.T) {
	m, err := ParseYAML(nil)
	require.NoError(t, err)
	assert.Zero(t, m.Len())
}

func TestParseYAML_Scalar(t *testing.T) {
	_, err := ParseYAML([]byte("just a string"))
	require.ErrorIs(t, err, ErrInvalidArgument)
}
