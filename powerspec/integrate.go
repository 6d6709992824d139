package powerspec

import "github.com/cwbudde/algo-spectra/kspace"

// SphericalIntegrate collapses a row-major 3D power grid into shells of
// constant radial wavenumber. Every cell is assigned to a shell by the
// radial distance of its Fourier-space position from the grid center; kept
// cells accumulate into the shell sum, out-of-range cells are silently
// discarded (see the package documentation for the exact drop rule).
//
// Returns the shell wavenumbers 1..NumModes and the accumulated power per
// shell. Degenerate shapes (smallest extent < 2) return empty slices.
// The power slice must have length shape[0]*shape[1]*shape[2]; this is a
// caller-enforced invariant, not a checked condition.
func SphericalIntegrate(power []float64, shape [3]int) (k, spectrum []float64) {
	b := NewBinning(shape)
	spectrum = make([]float64, b.NumModes)
	if b.NumModes == 0 {
		return b.Centers, spectrum
	}

	for i, r := range kspace.RadialGrid(shape) {
		pos := b.Assign(r)
		if pos <= b.NumModes {
			spectrum[pos-1] += power[i]
		}
	}

	return b.Centers, spectrum
}
