package linsys_test

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/katalvlaran/linsys"
	"github.com/katalvlaran/linsys/hyperplane"
	"github.com/katalvlaran/linsys/vector"
)

// benchmarkSolve runs the full pipeline on a deterministic n×n system.
// Coefficients (i*j mod 7) + 1 keep every row nonzero and the system
// generically full-rank; constants are the row index.
func benchmarkSolve(b *testing.B, n int) {
	planes := make([]*hyperplane.Hyperplane, n)
	for i := 0; i < n; i++ {
		coefs := make([]decimal.Decimal, n)
		for j := 0; j < n; j++ {
			coefs[j] = decimal.NewFromInt(int64((i*j)%7) + 1)
		}
		normal, err := vector.New(coefs...)
		if err != nil {
			b.Fatalf("building normal: %v", err)
		}
		p, err := hyperplane.New(
			hyperplane.WithNormal(normal),
			hyperplane.WithConstant(decimal.NewFromInt(int64(i))),
		)
		if err != nil {
			b.Fatalf("building plane: %v", err)
		}
		planes[i] = p
	}

	sys, err := linsys.New(planes...)
	if err != nil {
		b.Fatalf("building system: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sys.Solve()
	}
}

// BenchmarkSolve_3x3 benchmarks the common small geometric case.
func BenchmarkSolve_3x3(b *testing.B) { benchmarkSolve(b, 3) }

// BenchmarkSolve_8x8 benchmarks a medium dense system.
func BenchmarkSolve_8x8(b *testing.B) { benchmarkSolve(b, 8) }

// BenchmarkSolve_16x16 benchmarks the largest intended scale; exact
// decimal division dominates here.
func BenchmarkSolve_16x16(b *testing.B) { benchmarkSolve(b, 16) }

// BenchmarkRREF_8x8 isolates elimination from solution extraction.
func BenchmarkRREF_8x8(b *testing.B) {
	planes := make([]*hyperplane.Hyperplane, 8)
	for i := 0; i < 8; i++ {
		coefs := make([]decimal.Decimal, 8)
		for j := 0; j < 8; j++ {
			coefs[j] = decimal.NewFromInt(int64((i+j)%5) + 1)
		}
		normal, err := vector.New(coefs...)
		if err != nil {
			b.Fatalf("building normal: %v", err)
		}
		p, err := hyperplane.New(hyperplane.WithNormal(normal))
		if err != nil {
			b.Fatalf("building plane: %v", err)
		}
		planes[i] = p
	}
	sys, err := linsys.New(planes...)
	if err != nil {
		b.Fatalf("building system: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sys.RREF()
	}
}
