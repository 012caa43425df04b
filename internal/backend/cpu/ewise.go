package cpu

import "github.com/strided-ml/strided/internal/buffer"

// Element-wise binary operators over compact buffers. All of them require
// a.Len() == b.Len() == out.Len() (caller contract, unchecked) and are safe
// when out aliases either input: each element is read before its slot is
// written and no slot is visited twice.

// Add writes a[i] + b[i] into out.
func (cpu *Backend) Add(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] + bv[i]
	}
}

// Mul writes a[i] * b[i] into out.
func (cpu *Backend) Mul(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] * bv[i]
	}
}

// Div writes a[i] / b[i] into out. Division by zero follows IEEE-754:
// the result is ±Inf, or NaN for 0/0.
func (cpu *Backend) Div(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		ov[i] = av[i] / bv[i]
	}
}

// Maximum writes the larger of a[i] and b[i] into out.
func (cpu *Backend) Maximum(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		m := av[i]
		if bv[i] > m {
			m = bv[i]
		}
		ov[i] = m
	}
}

// Eq writes 1.0 where a[i] == b[i] and 0.0 elsewhere. Results are encoded in
// the element type rather than a boolean type so masks compose with
// arithmetic.
func (cpu *Backend) Eq(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		ov[i] = mask(av[i] == bv[i])
	}
}

// Ge writes 1.0 where a[i] >= b[i] and 0.0 elsewhere.
func (cpu *Backend) Ge(a, b, out *buffer.Buffer) {
	av, bv, ov := a.Data(), b.Data(), out.Data()
	for i := range ov {
		ov[i] = mask(av[i] >= bv[i])
	}
}

func mask(cond bool) float32 {
	if cond {
		return 1
	}
	return 0
}
