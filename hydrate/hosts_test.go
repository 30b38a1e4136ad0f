package hydrate_test

import (
	"errors"

	"github.com/spf13/cast"

	"fillable/hydrate"
)

// mock mirrors the simplest host: foo is assigned directly, bar goes
// through a coercing setter.
type mock struct {
	hydrate.Fillable

	Foo string `fill:"foo"`
	Bar int    `fill:"bar"`
}

func (m *mock) SetBar(v any) {
	m.Bar = cast.ToInt(v)
}

// snakeMock declares keys in both case conventions.
type snakeMock struct {
	hydrate.Fillable

	FooBar int     `fill:"foo_bar"`
	BazBan float64 `fill:"bazBan"`
}

func (m *snakeMock) SetFooBar(v any) error {
	i, err := cast.ToIntE(v)
	if err != nil {
		return err
	}

	m.FooBar = i

	return nil
}

func (m *snakeMock) SetBazBan(v any) *snakeMock {
	m.BazBan = cast.ToFloat64(v)
	return m
}

// strictMock rejects values its setter cannot coerce.
type strictMock struct {
	hydrate.Fillable

	Foo string
	Bar int
	Baz string
}

func (m *strictMock) SetBar(v any) error {
	i, err := cast.ToIntE(v)
	if err != nil {
		return err
	}

	m.Bar = i

	return nil
}

// pair is an object source with the same keys as mock.
type pair struct {
	Foo string
	Bar string
}

var errMissingProperty = errors.New("call to missing property")

// magicSource serves foo and bar as computed properties and fails for
// anything else.
type magicSource struct {
	Data []any
}

func (magicSource) Property(key string) (any, bool, error) {
	switch key {
	case "foo":
		return "dvwv", true, nil
	case "bar":
		return 142.6666666, true, nil
	default:
		return nil, false, errMissingProperty
	}
}

// getterSource hides bar behind a getter.
type getterSource struct {
	Foo string
	bar int
}

func (s getterSource) GetBar() int {
	return s.bar * 2
}

// GetOther is not a getter: it takes an argument.
func (s getterSource) GetOther(string) string {
	return "O_O"
}

func arrSource() *hydrate.Map {
	return hydrate.NewMap().
		Set("foo", "test").
		Set("bar", "142").
		Append("X_X").
		Append(false)
}

func arrSource2() *hydrate.Map {
	return hydrate.NewMap().
		Set("foo", "test2").
		Set("bar", "1422").
		Append("X_X2").
		Append(true)
}
