package cpu

import (
	"math"

	"github.com/strided-ml/strided/internal/buffer"
)

// Unary operators, applied element-wise with standard floating-point
// semantics: domain violations propagate NaN or ±Inf into the output rather
// than signaling an error (log(0) is -Inf, log of a negative value is NaN).

// Log writes the natural logarithm of a[i] into out.
func (cpu *Backend) Log(a, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = float32(math.Log(float64(av[i])))
	}
}

// Exp writes e**a[i] into out.
func (cpu *Backend) Exp(a, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = float32(math.Exp(float64(av[i])))
	}
}

// Tanh writes the hyperbolic tangent of a[i] into out.
func (cpu *Backend) Tanh(a, out *buffer.Buffer) {
	av, ov := a.Data(), out.Data()
	for i := range ov {
		ov[i] = float32(math.Tanh(float64(av[i])))
	}
}
