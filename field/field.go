// Package field provides an N-dimensional real-valued array container for
// gridded scalar and multi-component fields.
//
// A Field stores its samples contiguously in row-major order. The trailing
// three axes are treated as spatial (x, y, z) by the spectral packages; any
// leading axes are channels (field components, time slices) that spectral
// reductions collapse over.
package field

import "errors"

// Errors returned by field constructors and accessors.
var (
	ErrNoShape        = errors.New("field: shape must have at least one axis")
	ErrBadExtent      = errors.New("field: axis extents must be positive")
	ErrLengthMismatch = errors.New("field: value count does not match shape")
	ErrTooFewAxes     = errors.New("field: need at least 3 axes (the trailing three axes are spatial)")
)

// Field is an N-dimensional (N >= 1) real-valued array.
type Field struct {
	data    []float64
	shape   []int
	strides []int
}

// New creates a zero-filled field with the given shape.
func New(shape ...int) (*Field, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	return newField(make([]float64, n), shape), nil
}

// FromValues wraps an existing row-major sample slice as a field with the
// given shape. The slice is not copied; the field aliases it.
func FromValues(values []float64, shape ...int) (*Field, error) {
	n, err := checkShape(shape)
	if err != nil {
		return nil, err
	}

	if len(values) != n {
		return nil, ErrLengthMismatch
	}

	return newField(values, shape), nil
}

func checkShape(shape []int) (int, error) {
	if len(shape) == 0 {
		return 0, ErrNoShape
	}

	n := 1
	for _, extent := range shape {
		if extent < 1 {
			return 0, ErrBadExtent
		}
		n *= extent
	}

	return n, nil
}

func newField(data []float64, shape []int) *Field {
	f := &Field{
		data:    data,
		shape:   append([]int(nil), shape...),
		strides: make([]int, len(shape)),
	}

	stride := 1
	for i := len(shape) - 1; i >= 0; i-- {
		f.strides[i] = stride
		stride *= shape[i]
	}

	return f
}

// Rank returns the number of axes.
func (f *Field) Rank() int { return len(f.shape) }

// Shape returns a copy of the axis extents.
func (f *Field) Shape() []int { return append([]int(nil), f.shape...) }

// Len returns the total number of samples.
func (f *Field) Len() int { return len(f.data) }

// Values returns the backing row-major sample slice.
func (f *Field) Values() []float64 { return f.data }

// At returns the sample at the given multi-index.
// The index must have exactly Rank() coordinates.
func (f *Field) At(index ...int) float64 {
	return f.data[f.offset(index)]
}

// Set stores v at the given multi-index.
func (f *Field) Set(v float64, index ...int) {
	f.data[f.offset(index)] = v
}

// Fill sets every sample to v.
func (f *Field) Fill(v float64) {
	for i := range f.data {
		f.data[i] = v
	}
}

func (f *Field) offset(index []int) int {
	if len(index) != len(f.shape) {
		panic("field: index rank does not match field rank")
	}

	off := 0
	for i, x := range index {
		if x < 0 || x >= f.shape[i] {
			panic("field: index out of range")
		}
		off += x * f.strides[i]
	}

	return off
}

// SpatialShape returns the extents of the trailing three axes.
// Returns ErrTooFewAxes when the field has fewer than 3 axes.
func (f *Field) SpatialShape() ([3]int, error) {
	if len(f.shape) < 3 {
		return [3]int{}, ErrTooFewAxes
	}

	r := len(f.shape)

	return [3]int{f.shape[r-3], f.shape[r-2], f.shape[r-1]}, nil
}

// Channels returns the product of the leading (non-spatial) axis extents.
// It is 1 for a rank-3 field and 0 when the field has fewer than 3 axes.
func (f *Field) Channels() int {
	if len(f.shape) < 3 {
		return 0
	}

	n := 1
	for _, extent := range f.shape[:len(f.shape)-3] {
		n *= extent
	}

	return n
}

// Channel returns the contiguous sample block of channel c. Each channel
// spans one full spatial volume; channel 0 is the whole field for rank 3.
func (f *Field) Channel(c int) []float64 {
	shape, err := f.SpatialShape()
	if err != nil {
		panic("field: Channel requires at least 3 axes")
	}

	vol := shape[0] * shape[1] * shape[2]

	return f.data[c*vol : (c+1)*vol]
}
