package grid_test

import (
	"testing"

	"github.com/TheDaniel166/tq/grid"
)

// BenchmarkNew measures full 27×27 index construction from canonical
// tables. Complexity: O(side²)
func BenchmarkNew(b *testing.B) {
	values, digits := grid.CanonicalTables(27)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := grid.New(27, values, digits, grid.DefaultOptions()); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkCellByLocator measures the intentionally linear locator
// scan on the full domain; a future domain-size increase showing up
// here is the cue to revisit the no-reverse-index trade-off.
// Complexity: O(side²)
func BenchmarkCellByLocator(b *testing.B) {
	values, digits := grid.CanonicalTables(27)
	ix, err := grid.New(27, values, digits, grid.DefaultOptions())
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = ix.CellByLocator(8, 8, 8)
	}
}
