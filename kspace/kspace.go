// Package kspace provides Fourier-space grid geometry for 3D spectral
// analysis: radial wavenumber grids and zero-frequency centering.
package kspace

import "math"

// Center returns the centered zero-frequency coordinate of an axis with n
// samples: (n-1)/2. For odd n this is a grid index; for even n it falls
// between two indices and the shifted zero-frequency component sits at
// index n/2.
func Center(n int) float64 {
	return float64(n-1) / 2
}

// RadialGrid returns a row-major grid of shape (sx, sy, sz) where cell
// (x, y, z) holds the Euclidean distance, in index units, from the
// geometric center (Center(sx), Center(sy), Center(sz)).
func RadialGrid(shape [3]int) []float64 {
	sx, sy, sz := shape[0], shape[1], shape[2]
	cx, cy, cz := Center(sx), Center(sy), Center(sz)

	grid := make([]float64, sx*sy*sz)
	i := 0
	for x := 0; x < sx; x++ {
		dx := (float64(x) - cx) * (float64(x) - cx)
		for y := 0; y < sy; y++ {
			dy := (float64(y) - cy) * (float64(y) - cy)
			for z := 0; z < sz; z++ {
				dz := (float64(z) - cz) * (float64(z) - cz)
				grid[i] = math.Sqrt(dx + dy + dz)
				i++
			}
		}
	}

	return grid
}

// Shift circularly shifts a row-major 3D grid along each axis so that the
// zero-frequency component at index 0 moves to the centered index n/2,
// matching the center convention of RadialGrid. dst and src must have
// length sx*sy*sz and must not alias.
func Shift(dst, src []complex128, shape [3]int) {
	sx, sy, sz := shape[0], shape[1], shape[2]
	hx, hy, hz := sx/2, sy/2, sz/2

	i := 0
	for x := 0; x < sx; x++ {
		xs := (x + hx) % sx
		for y := 0; y < sy; y++ {
			row := (xs*sy + (y+hy)%sy) * sz
			for z := 0; z < sz; z++ {
				dst[row+(z+hz)%sz] = src[i]
				i++
			}
		}
	}
}
