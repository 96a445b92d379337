package dot_test

import (
	"errors"
	"fmt"

	"dotdict/dot"
)

func ExampleAutoDict() {
	cfg := dot.MustNewAuto(map[string]any{"server": map[string]any{"host": "localhost"}})

	_ = cfg.Update(map[string]any{"server": map[string]any{"port": 8080}})
	cfg.Child("server").Child("tls").Set("enabled", true)

	fmt.Println(cfg)

	// Output:
	// {"server": {"host": "localhost", "port": 8080, "tls": {"enabled": true}}}
}

func ExampleDict_Update() {
	d := dot.MustNew(map[string]any{"h": map[string]any{"k": 1}})

	_ = d.Update(map[string]any{"h": map[string]any{"j": 2}})

	fmt.Println(d)

	// Output:
	// {"h": {"j": 2}}
}

func ExampleDict_Attr() {
	d := dot.MustNew(dot.KV("name", "dot"))

	name, _ := d.Attr("name")
	fmt.Println(name)

	_, err := d.Attr("missing")
	fmt.Println(err)

	err = d.SetAttr("update", 1)
	fmt.Println(errors.Is(err, dot.ErrReadOnlyAttribute))

	// Output:
	// dot
	// Dict object has no attribute "missing"
	// true
}

func ExampleDict_Merge() {
	a := dot.MustNew(dot.KV("x", 1), dot.KV("y", 1))

	c, _ := a.Merge(map[string]any{"y": 2})
	fmt.Println(a, c)

	_, err := a.Merge(3)
	fmt.Println(err)

	// Output:
	// {"x": 1, "y": 1} {"x": 1, "y": 2}
	// unsupported operand: Dict | int
}
