package powerspec

import (
	"math"

	algofft "github.com/cwbudde/algo-fft"
	dspfft "github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/algo-spectra/field"
	"github.com/cwbudde/algo-spectra/kspace"
)

// Spectrum3D computes the channel-collapsed 3D power spectrum grid of f.
//
// The trailing three axes of f are transformed with an unnormalized forward
// DFT, shifted so the zero-frequency component is centered, and scaled by
// 1/sqrt(V) where V is the spatial volume. Squared magnitudes are then
// summed over all leading channel axes in channel order, leaving one
// non-negative power value per Fourier-space cell.
//
// Returns field.ErrTooFewAxes, before any computation, when f has fewer
// than 3 axes.
func Spectrum3D(f *field.Field) ([]float64, [3]int, error) {
	shape, err := f.SpatialShape()
	if err != nil {
		return nil, [3]int{}, err
	}

	plans, err := newAxisPlans(shape)
	if err != nil {
		return nil, [3]int{}, err
	}

	vol := shape[0] * shape[1] * shape[2]
	invNorm := 1 / math.Sqrt(float64(vol))

	power := make([]float64, vol)
	work := make([]complex128, vol)
	shifted := make([]complex128, vol)

	for c := 0; c < f.Channels(); c++ {
		for i, v := range f.Channel(c) {
			work[i] = complex(v, 0)
		}

		if err := transformAxes(work, shape, plans); err != nil {
			return nil, [3]int{}, err
		}

		kspace.Shift(shifted, work, shape)
		accumulatePower(power, shifted, invNorm)
	}

	return power, shape, nil
}

// axisPlan transforms single Fourier lines of a fixed length. Power-of-two
// lengths go through an algo-fft plan; other lengths fall back to go-dsp's
// mixed-radix/Bluestein FFT.
type axisPlan struct {
	n    int
	plan *algofft.Plan[complex128] // nil when n is not a power of two
	line []complex128              // gather buffer for the fallback path
}

func newAxisPlans(shape [3]int) ([3]*axisPlan, error) {
	var plans [3]*axisPlan
	byLen := make(map[int]*axisPlan, 3)

	for i, n := range shape {
		if ap, ok := byLen[n]; ok {
			plans[i] = ap
			continue
		}

		ap, err := newAxisPlan(n)
		if err != nil {
			return plans, err
		}

		byLen[n] = ap
		plans[i] = ap
	}

	return plans, nil
}

func newAxisPlan(n int) (*axisPlan, error) {
	ap := &axisPlan{n: n}
	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, err
		}
		ap.plan = plan
		return ap, nil
	}

	ap.line = make([]complex128, n)
	return ap, nil
}

// forward transforms the line data[offset], data[offset+stride], ... in place.
func (ap *axisPlan) forward(data []complex128, offset, stride int) error {
	if ap.plan != nil {
		sub := data[offset:]
		if stride == 1 {
			return ap.plan.Forward(sub[:ap.n], sub[:ap.n])
		}
		return ap.plan.ForwardStrided(sub, sub, stride)
	}

	for i := 0; i < ap.n; i++ {
		ap.line[i] = data[offset+i*stride]
	}

	out := dspfft.FFT(ap.line)
	for i := 0; i < ap.n; i++ {
		data[offset+i*stride] = out[i]
	}

	return nil
}

// transformAxes applies the forward DFT along each spatial axis of a
// row-major (sx, sy, sz) grid. Leading axes are untouched by construction:
// callers pass one spatial volume at a time.
func transformAxes(work []complex128, shape [3]int, plans [3]*axisPlan) error {
	sx, sy, sz := shape[0], shape[1], shape[2]

	// z axis: contiguous lines
	for x := 0; x < sx; x++ {
		for y := 0; y < sy; y++ {
			if err := plans[2].forward(work, (x*sy+y)*sz, 1); err != nil {
				return err
			}
		}
	}

	// y axis: lines spaced sz apart
	for x := 0; x < sx; x++ {
		for z := 0; z < sz; z++ {
			if err := plans[1].forward(work, x*sy*sz+z, sz); err != nil {
				return err
			}
		}
	}

	// x axis: lines spaced sy*sz apart
	for y := 0; y < sy; y++ {
		for z := 0; z < sz; z++ {
			if err := plans[0].forward(work, y*sz+z, sy*sz); err != nil {
				return err
			}
		}
	}

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
