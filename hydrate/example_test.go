package hydrate_test

import (
	"fmt"

	"github.com/spf13/cast"

	"fillable/hydrate"
)

type user struct {
	hydrate.Fillable

	Name string `json:"name"`
	Age  int    `json:"age"`
}

func (u *user) SetAge(v any) error {
	age, err := cast.ToIntE(v)
	if err != nil {
		return err
	}

	u.Age = age

	return nil
}

func ExampleFillBy() {
	source, _ := hydrate.ParseJSON([]byte(`{"name":"ada","age":"36","team":"core"}`))

	u, err := hydrate.FillBy(&user{}, source)
	fmt.Println(err, u.Name, u.Age)
	fmt.Println(u.Overflow(hydrate.DefaultBucket).Keys())

	// Output:
	// <nil> ada 36
	// [team]
}

func ExampleFillPropsBy() {
	u := &user{Name: "kept"}

	_, err := hydrate.FillPropsBy(u, map[string]any{"name": nil, "age": 41.9, "team": "core"})
	fmt.Println(err, u.Name, u.Age)

	// Output:
	// <nil> kept 41
}

func ExampleHydrator_Only() {
	u := &user{}
	source := hydrate.NewMap().Set("name", "ada").Set("age", 36)

	_, _ = hydrate.For(u).Only("age").FillBy(source)
	fmt.Printf("%q %d\n", u.Name, u.Age)

	_, _ = hydrate.For(u).FillBy(source)
	fmt.Printf("%q %d\n", u.Name, u.Age)

	// Output:
	// "" 36
	// "ada" 36
}
