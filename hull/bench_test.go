package hull_test

import (
	"testing"

	"github.com/katalvlaran/lvpart/hull"
)

// benchmarkSweep inserts n lines with increasing slopes and queries an
// increasing x after each insertion, mirroring the DP access pattern.
func benchmarkSweep(b *testing.B, n int, mode hull.QueryMode) {
	lines := &lineTable{}
	for i := 0; i < n; i++ {
		s := int64(i)
		lines.add(s, -s*s)
	}

	b.ResetTimer()
	for iter := 0; iter < b.N; iter++ {
		env, err := hull.New(0, lines, hull.WithQueryMode(mode), hull.WithCapacity(n))
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		for i := 1; i < n; i++ {
			if _, err = env.QueryMax(int64(2 * i)); err != nil {
				b.Fatalf("QueryMax failed: %v", err)
			}
			if err = env.Insert(i); err != nil {
				b.Fatalf("Insert failed: %v", err)
			}
		}
	}
}

// BenchmarkSweep_Binary10k uses binary-search queries.
func BenchmarkSweep_Binary10k(b *testing.B) { benchmarkSweep(b, 10_000, hull.BinarySearch) }

// BenchmarkSweep_Pointer10k uses the monotone pointer.
func BenchmarkSweep_Pointer10k(b *testing.B) { benchmarkSweep(b, 10_000, hull.MonotonePointer) }
