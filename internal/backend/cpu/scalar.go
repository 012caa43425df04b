package cpu

import (
	"math"

	"github.com/strided-ml/strided/internal/buffer"
)

// Scalar broadcast operators: combine every element of a with one fixed
// scalar. Same contracts as the element-wise operators (equal sizes,
// aliasing of out with a is fine).

// AddScalar writes a[i] + val into out.
func (cpu *Backend) AddScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] + val
	}
}

// MulScalar writes a[i] * val into out.
func (cpu *Backend) MulScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] * val
	}
}

// DivScalar writes a[i] / val into out, with IEEE-754 semantics for val == 0.
func (cpu *Backend) DivScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] / val
	}
}

// PowScalar writes a[i] ** val into out. Domain violations (negative base
// with non-integer exponent) yield NaN per math.Pow.
func (cpu *Backend) PowScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	exp := float64(val)
	for i := range ov {
		ov[i] = float32(math.Pow(float64(av[i]), exp))
	}
}

// MaximumScalar writes the larger of a[i] and val into out.
func (cpu *Backend) MaximumScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		m := av[i]
		if val > m {
			m = val
		}
		ov[i] = m
	}
}

// EqScalar writes 1.0 where a[i] == val and 0.0 elsewhere.
func (cpu *Backend) EqScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = mask(av[i] == val)
	}
}

// GeScalar writes 1.0 where a[i] >= val and 0.0 elsewhere.
func (cpu *Backend) GeScalar(a *buffer.Buffer, val float32, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = mask(av[i] >= val)
	}
}
