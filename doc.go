// Package linsys solves systems of linear equations expressed as
// geometric hyperplanes, using exact-precision decimal arithmetic.
//
// 🚀 What is linsys?
//
//	A pure-Go Gaussian-elimination pipeline over exact decimals
//	(github.com/shopspring/decimal) that classifies any system of
//	hyperplane equations as having:
//	  • no solution          — a contradictory row (0 = c, c ≠ 0),
//	  • exactly one solution — a full set of pivots, or
//	  • infinitely many      — returned as a Parametrization:
//	    basepoint + span of direction vectors, one per free variable.
//
// ✨ Why choose linsys?
//
//   - Exact arithmetic — no binary-float drift between row operations;
//     a single shared tolerance (vector.Epsilon) absorbs division
//     rounding.
//   - Geometric API — equations are Hyperplanes with real predicates
//     (coincident, parallel, orthogonal), not bare coefficient rows.
//   - Non-destructive — TriangularForm, RREF and Solve operate on a
//     deep copy; the caller's system is never mutated.
//   - Deterministic — free variables are enumerated in ascending
//     column order, so Parametrization output is reproducible.
//
// Under the hood, everything is organized under two subpackages and
// this root package:
//
//	vector/     — immutable exact-decimal vectors and predicates
//	hyperplane/ — a single equation as a geometric object
//	linsys      — LinearSystem, elimination, RREF, Solution,
//	              Parametrization
//
// ⚙️ Usage:
//
//	a, _ := hyperplane.New(hyperplane.WithNormal(n1), hyperplane.WithConstant(c1))
//	b, _ := hyperplane.New(hyperplane.WithNormal(n2), hyperplane.WithConstant(c2))
//
//	sys, err := linsys.New(a, b)
//	if err != nil { ... }
//
//	sol := sys.Solve()
//	switch sol.Kind {
//	case linsys.UniqueSolution:
//	    fmt.Println(sol.Parametrization.Basepoint())
//	case linsys.InfiniteSolutions:
//	    fmt.Println(sol.Parametrization)
//	case linsys.NoSolution:
//	    fmt.Println("no solutions")
//	}
//
// Concurrency: Vectors, Hyperplanes, Parametrizations and Solutions
// are immutable. A LinearSystem is mutable only through its explicit
// row operations; the solving pipeline never mutates its receiver, so
// independent systems may be solved from concurrent goroutines. A
// single system must not be mutated while a solve on it is in flight —
// no internal locking is provided.
package linsys
