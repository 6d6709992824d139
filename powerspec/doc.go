// Package powerspec computes isotropic (spherically averaged) power spectra
// of real-valued fields sampled on regular 3D grids.
//
// The pipeline has two stages. Spectrum3D applies a forward DFT over the
// trailing three axes of a field, centers the zero-frequency component,
// scales amplitudes by 1/sqrt(V) where V is the spatial volume, and sums
// squared magnitudes over any leading channel axes. SphericalIntegrate then
// collapses the resulting 3D power grid into shells of constant radial
// wavenumber, returning shell wavenumbers 1..M and the accumulated power per
// shell, where M = min(extent)/2 is the Nyquist limit of the smallest
// spatial extent. Compute1D composes both stages:
//
//	f, _ := field.FromValues(samples, 64, 64, 64)
//	k, spectrum, err := powerspec.Compute1D(f)
//
// # Shell assignment
//
// Shell edges are M+1 values evenly spaced over [0.5, M]. A cell whose
// radial distance is r belongs to the shell whose position is that of the
// first edge not less than r, so a distance exactly equal to an edge falls
// into the shell that edge closes from above. Cells assigned past position M
// are silently discarded. This reproduces the reference binning exactly and
// has two deliberate consequences:
//
//   - Grid corners lie beyond the last edge (a cubic grid's corner distance
//     exceeds M) and their power never appears in the output.
//   - When the smallest extents are even, the minimum radial distance is
//     sqrt(3)/2, so shell 1 receives power only for odd extents where a true
//     radius-0 (DC) cell exists.
//
// NaN or Inf input samples are not sanitized: they propagate through the
// transform, and cells whose radial assignment is undefined (NaN) are
// discarded like out-of-range cells.
package powerspec
