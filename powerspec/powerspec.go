package powerspec

import "github.com/cwbudde/algo-spectra/field"

// Compute1D computes the isotropic 1D power spectrum of a field: the 3D
// power grid of Spectrum3D integrated over spherical shells by
// SphericalIntegrate. It returns the shell wavenumbers and the accumulated
// power per shell, both of length min(spatial extent)/2.
//
// The computation is a pure function of f: no state is retained between
// calls and repeated calls yield bit-identical results.
func Compute1D(f *field.Field) (k, spectrum []float64, err error) {
	power, shape, err := Spectrum3D(f)
	if err != nil {
		return nil, nil, err
	}

	k, spectrum = SphericalIntegrate(power, shape)

	return k, spectrum, nil
}
