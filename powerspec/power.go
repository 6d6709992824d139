package powerspec

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im, pw []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 3 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n : 2*n], buf.data[2*n : need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// accumulatePower adds |scale*src[i]|^2 to dst[i] for every cell. The scale
// is applied to the real and imaginary parts before squaring, so amplitude
// normalization happens ahead of the magnitude-squaring.
//
// Squared magnitudes use SIMD-optimized implementations when available.
// Scratch planes are pooled internally, so in steady state this allocates
// nothing.
func accumulatePower(dst []float64, src []complex128, scale float64) {
	n := len(src)
	if n == 0 {
		return
	}

	re, im, pw, buf := getScratch(n)

	for i, c := range src {
		re[i] = real(c) * scale
		im[i] = imag(c) * scale
	}

	vecmath.Power(pw, re, im)
	floats.Add(dst, pw)
	putScratch(buf)
}
