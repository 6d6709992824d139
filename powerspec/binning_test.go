package powerspec

import (
	"math"
	"testing"
)

func TestNewBinningCube4(t *testing.T) {
	b := NewBinning([3]int{4, 4, 4})

	if b.NumModes != 2 {
		t.Fatalf("NumModes: got %d, want 2", b.NumModes)
	}

	wantEdges := []float64{0.5, 1.25, 2}
	if len(b.Edges) != len(wantEdges) {
		t.Fatalf("edge count: got %d, want %d", len(b.Edges), len(wantEdges))
	}
	for i, want := range wantEdges {
		if !almostEqual(b.Edges[i], want) {
			t.Fatalf("Edges[%d]: got %f, want %f", i, b.Edges[i], want)
		}
	}

	wantCenters := []float64{1, 2}
	for i, want := range wantCenters {
		if b.Centers[i] != want {
			t.Fatalf("Centers[%d]: got %f, want %f", i, b.Centers[i], want)
		}
	}
}

func TestNewBinningCube6(t *testing.T) {
	b := NewBinning([3]int{6, 6, 6})

	if b.NumModes != 3 {
		t.Fatalf("NumModes: got %d, want 3", b.NumModes)
	}

	if b.Edges[0] != 0.5 || b.Edges[3] != 3 {
		t.Fatalf("edge endpoints: got %f..%f, want 0.5..3", b.Edges[0], b.Edges[3])
	}

	// Evenly spaced: spacing (3 - 0.5) / 3.
	spacing := 2.5 / 3
	for i := 1; i < len(b.Edges); i++ {
		if !almostEqual(b.Edges[i]-b.Edges[i-1], spacing) {
			t.Fatalf("edge spacing at %d: got %f, want %f", i, b.Edges[i]-b.Edges[i-1], spacing)
		}
	}

	for i, want := range []float64{1, 2, 3} {
		if b.Centers[i] != want {
			t.Fatalf("Centers[%d]: got %f, want %f", i, b.Centers[i], want)
		}
	}
}

func TestNewBinningAnisotropic(t *testing.T) {
	// The smallest extent fixes the mode count.
	b := NewBinning([3]int{3, 4, 5})

	if b.NumModes != 1 {
		t.Fatalf("NumModes: got %d, want 1", b.NumModes)
	}

	if !almostEqual(b.Edges[0], 0.5) || !almostEqual(b.Edges[1], 1) {
		t.Fatalf("edges: got %v, want [0.5 1]", b.Edges)
	}

	if b.Centers[0] != 1 {
		t.Fatalf("Centers[0]: got %f, want 1", b.Centers[0])
	}
}

func TestNewBinningDegenerate(t *testing.T) {
	for _, shape := range [][3]int{{1, 1, 1}, {1, 8, 8}, {64, 64, 1}} {
		b := NewBinning(shape)

		if b.NumModes != 0 {
			t.Fatalf("shape %v: NumModes got %d, want 0", shape, b.NumModes)
		}

		if len(b.Edges) != 0 || len(b.Centers) != 0 {
			t.Fatalf("shape %v: edges/centers not empty", shape)
		}
	}
}

func TestCentersStrictlyIncreasing(t *testing.T) {
	for _, shape := range [][3]int{{4, 4, 4}, {6, 6, 6}, {16, 16, 16}, {7, 9, 11}, {64, 32, 48}} {
		b := NewBinning(shape)

		for i, c := range b.Centers {
			if c != float64(i+1) {
				t.Fatalf("shape %v: Centers[%d] got %f, want %d", shape, i, c, i+1)
			}
		}
	}
}

func TestAssign(t *testing.T) {
	b := NewBinning([3]int{4, 4, 4}) // edges 0.5, 1.25, 2

	cases := []struct {
		r    float64
		want int
	}{
		{0, 1},     // radius 0 is caught by the first edge
		{0.5, 1},   // exact first edge closes shell 1
		{0.51, 2},  // just past the first edge
		{1.25, 2},  // exact interior edge closes shell 2
		{1.3, 3},   // past position NumModes: dropped by the integrator
		{2, 3},     // the last edge itself maps past NumModes
		{2.1, 4},   // beyond the last edge
		{1e300, 4}, // far beyond
	}

	for _, tc := range cases {
		if got := b.Assign(tc.r); got != tc.want {
			t.Fatalf("Assign(%g): got %d, want %d", tc.r, got, tc.want)
		}
	}

	// NaN distances compare false against every edge and fall past the end.
	if got := b.Assign(math.NaN()); got != len(b.Edges)+1 {
		t.Fatalf("Assign(NaN): got %d, want %d", got, len(b.Edges)+1)
	}
}
