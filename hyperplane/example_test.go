package hyperplane_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys/hyperplane"
	"github.com/katalvlaran/linsys/vector"
)

// ExampleNew builds the plane x + 2y + 3z = 6 and inspects it.
func ExampleNew() {
	n, _ := vector.FromStrings("1", "2", "3")
	h, _ := hyperplane.New(
		hyperplane.WithNormal(n),
		hyperplane.WithConstant(decimal.NewFromInt(6)),
	)

	bp, _ := h.Basepoint()
	fmt.Println(h)
	fmt.Println(bp)
	// Output:
	// x_1 + 2x_2 + 3x_3 = 6
	// (6, 0, 0)
}

// ExampleHyperplane_Equal distinguishes coincident from merely
// parallel planes.
func ExampleHyperplane_Equal() {
	n1, _ := vector.FromStrings("1", "2", "3")
	n2, _ := vector.FromStrings("2", "4", "6")

	a, _ := hyperplane.New(hyperplane.WithNormal(n1), hyperplane.WithConstant(decimal.NewFromInt(6)))
	b, _ := hyperplane.New(hyperplane.WithNormal(n2), hyperplane.WithConstant(decimal.NewFromInt(12)))
	c, _ := hyperplane.New(hyperplane.WithNormal(n2), hyperplane.WithConstant(decimal.NewFromInt(13)))

	coincident, _ := a.Equal(b)
	shifted, _ := a.Equal(c)
	fmt.Println(coincident, shifted)
	// Output: true false
}
