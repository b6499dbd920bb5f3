package autodiff

import "math"

// Each operation allocates exactly one new node carrying references to its
// operands. The backward rule for Mul, Pow and Tanh reads operand or result
// values; those are the values at graph-construction time, which is safe
// because non-parameter nodes are not mutated after construction.

// Add returns v + other.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		data:     v.data + other.data,
		op:       OpAdd,
		operands: []*Value{v, other},
	}
}

// Mul returns v * other.
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		data:     v.data * other.data,
		op:       OpMul,
		operands: []*Value{v, other},
	}
}

// Pow returns v raised to a constant exponent.
//
// The exponent is a plain scalar, not a graph node, and is not
// differentiated. A negative base with a non-integer exponent yields NaN,
// which propagates downstream per IEEE 754.
func (v *Value) Pow(exponent float64) *Value {
	return &Value{
		data:     math.Pow(v.data, exponent),
		op:       OpPow,
		operands: []*Value{v},
		exponent: exponent,
	}
}

// Tanh returns the hyperbolic tangent of v.
func (v *Value) Tanh() *Value {
	return &Value{
		data:     math.Tanh(v.data),
		op:       OpTanh,
		operands: []*Value{v},
	}
}

// Neg returns -v, derived as v * (-1).
func (v *Value) Neg() *Value {
	return v.MulScalar(-1)
}

// Sub returns v - other, derived as v + (-other).
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Neg())
}

// Div returns v / other, derived as v * other^(-1).
//
// Division by a zero-valued node yields Inf or NaN; the engine does not
// special-case it.
func (v *Value) Div(other *Value) *Value {
	return v.Mul(other.Pow(-1))
}

// AddScalar returns v + c, lifting the raw scalar into a fresh leaf node.
func (v *Value) AddScalar(c float64) *Value {
	return v.Add(NewValue(c))
}

// MulScalar returns v * c, lifting the raw scalar into a fresh leaf node.
func (v *Value) MulScalar(c float64) *Value {
	return v.Mul(NewValue(c))
}

// propagate pushes v's accumulated gradient onto its operands, applying the
// local-gradient rule for v's operator tag.
//
// Rules accumulate with += only: a node may receive contributions along
// multiple paths. Tanh's derivative is expressed in terms of the output
// (1 - tanh²), so it reads v.data rather than the operand.
func (v *Value) propagate() {
	switch v.op {
	case OpAdd:
		a, b := v.operands[0], v.operands[1]
		a.grad += v.grad
		b.grad += v.grad
	case OpMul:
		a, b := v.operands[0], v.operands[1]
		a.grad += b.data * v.grad
		b.grad += a.data * v.grad
	case OpPow:
		a := v.operands[0]
		a.grad += v.exponent * math.Pow(a.data, v.exponent-1) * v.grad
	case OpTanh:
		a := v.operands[0]
		a.grad += (1 - v.data*v.data) * v.grad
	case OpNone:
		// Leaf: nothing upstream.
	}
}
