package builder_test

import (
	"fmt"

	"github.com/katalvlaran/matcalc/builder"
)

// ExampleBuildSet builds two default-shaped matrices from sparse input.
func ExampleBuildSet() {
	src := builder.MapSource{
		{ID: "A", Row: 0, Col: 0}: 1,
		{ID: "B", Row: 1, Col: 1}: 5,
	}
	set, _ := builder.BuildSet(make([]builder.Shape, 2), src)
	for _, id := range set.IDs() {
		nm, _ := set.Get(id)
		fmt.Println(id, nm.Values())
	}
	// Output:
	// A [[1 0] [0 0]]
	// B [[0 0] [0 5]]
}
