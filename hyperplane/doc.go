// Package hyperplane models a single linear equation as a geometric
// object: the set of points x satisfying normal · x = constant.
//
// In 2 dimensions a Hyperplane is a line, in 3 a plane, and in n
// dimensions the (n-1)-dimensional generalization. The package is the
// geometric layer of the linsys module: the solver treats each
// equation of a system as one Hyperplane row.
//
// ⚙️ Usage:
//
//	import (
//	  "github.com/katalvlaran/linsys/hyperplane"
//	  "github.com/katalvlaran/linsys/vector"
//	)
//
//	n, _ := vector.FromStrings("1", "2", "3")
//	h, err := hyperplane.New(
//	  hyperplane.WithNormal(n),
//	  hyperplane.WithConstant(decimal.NewFromInt(6)),
//	)
//
// A Hyperplane is immutable after construction. Its basepoint — one
// concrete point on the hyperplane, used by the coincidence test — is
// derived once in New and cached; it does not exist when the normal
// vector is zero (a degenerate "0 = c" row).
//
// Predicates:
//   - IsParallelTo   — normals are collinear.
//   - IsOrthogonalTo — normals are orthogonal.
//   - Equal          — same geometric object (coincidence), which is
//     strictly stronger than parallelism.
package hyperplane
