package linsys_test

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys"
	"github.com/katalvlaran/linsys/hyperplane"
	"github.com/katalvlaran/linsys/vector"
)

// eq is an example-scoped helper building one equation from literals.
func eq(constant string, coefs ...string) *hyperplane.Hyperplane {
	n, err := vector.FromStrings(coefs...)
	if err != nil {
		panic(err)
	}
	h, err := hyperplane.New(
		hyperplane.WithNormal(n),
		hyperplane.WithConstant(decimal.RequireFromString(constant)),
	)
	if err != nil {
		panic(err)
	}

	return h
}

// ExampleLinearSystem_Solve solves a 3x3 system with a single
// intersection point.
func ExampleLinearSystem_Solve() {
	sys, err := linsys.New(
		eq("1", "1", "1", "1"),
		eq("2", "0", "1", "0"),
		eq("3", "0", "0", "1"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol := sys.Solve()
	fmt.Println(sol.Kind)
	fmt.Println(sol.Parametrization.Basepoint())
	// Output:
	// unique solution
	// (-4, 2, 3)
}

// ExampleLinearSystem_Solve_infinite solves a rank-deficient system
// and prints its parametrized solution set.
func ExampleLinearSystem_Solve_infinite() {
	sys, err := linsys.New(
		eq("1", "1", "1", "1", "1"),
		eq("2", "1", "1", "2", "2"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	sol := sys.Solve()
	fmt.Println(sol.Kind)
	fmt.Print(sol.Parametrization)
	// Output:
	// infinitely many solutions
	// x_1 = 0 - t_1
	// x_2 = 0 + t_1
	// x_3 = 1 - t_2
	// x_4 = 0 + t_2
}

// ExampleLinearSystem_Solve_none shows the contradiction
// classification: parallel planes never meet.
func ExampleLinearSystem_Solve_none() {
	sys, err := linsys.New(
		eq("1", "1", "1", "1"),
		eq("2", "1", "1", "1"),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	fmt.Println(sys.Solve())
	// Output: no solutions
}
