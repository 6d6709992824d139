package powerspec

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// Binning fixes the radial shell layout for a 3D power grid shape.
//
// NumModes is the Nyquist limit of the smallest spatial extent,
// min(shape)/2. Edges holds NumModes+1 values evenly spaced over
// [0.5, NumModes]. Centers holds the NumModes shell wavenumbers; they are
// the integers 1..NumModes by construction.
type Binning struct {
	NumModes int
	Edges    []float64
	Centers  []float64
}

// NewBinning derives the shell layout from a 3D grid shape. A degenerate
// shape (smallest extent < 2) yields NumModes == 0 with empty Edges and
// Centers; this is not an error.
func NewBinning(shape [3]int) Binning {
	minExtent := shape[0]
	if shape[1] < minExtent {
		minExtent = shape[1]
	}
	if shape[2] < minExtent {
		minExtent = shape[2]
	}

	b := Binning{
		NumModes: minExtent / 2,
		Edges:    []float64{},
		Centers:  []float64{},
	}
	if b.NumModes == 0 {
		return b
	}

	b.Edges = make([]float64, b.NumModes+1)
	floats.Span(b.Edges, 0.5, float64(b.NumModes))

	b.Centers = make([]float64, b.NumModes)
	for i := range b.Centers {
		// Midpoints of consecutive edges round up to 1..NumModes. The
		// ceiling is what pins the centers to integers for every NumModes.
		b.Centers[i] = math.Ceil((b.Edges[i] + b.Edges[i+1]) / 2)
	}

	return b
}

// Assign returns the 1-based position of the first edge not less than r,
// counting from 1 up to len(Edges), or len(Edges)+1 when r lies beyond the
// last edge. A distance exactly equal to an edge is assigned to the shell
// that edge closes from above. Only positions in [1, NumModes] correspond
// to shells that are kept; everything else is dropped by the integrator.
//
// A NaN distance compares false against every edge and lands on
// len(Edges)+1, so NaN-contaminated cells are dropped.
func (b Binning) Assign(r float64) int {
	return sort.SearchFloat64s(b.Edges, r) + 1
}
