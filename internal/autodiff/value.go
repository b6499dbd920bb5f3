// Package autodiff implements scalar reverse-mode automatic differentiation.
//
// Every arithmetic operation allocates a new Value node that records its
// operands and an operator tag, so the computation graph is built implicitly
// during the forward pass. Backward walks that graph in reverse topological
// order and accumulates d(root)/d(node) into every reachable node.
//
// Architecture:
//   - Value: one scalar plus its provenance (operator tag + operand edges)
//   - Operator tag dispatch: a single backward rule per tag, no per-node closures
//   - Backward: visited-set post-order DFS, rules applied in reverse finish order
//
// Usage:
//
//	a := autodiff.NewValue(2.0)
//	b := autodiff.NewValue(3.0)
//	y := a.Mul(b).Tanh()
//
//	y.SetGrad(1)
//	autodiff.Backward(y)
//	fmt.Println(a.Grad()) // dy/da
package autodiff

// Op identifies the operation that produced a Value.
//
// The tag drives the backward dispatch; OpNone marks leaf nodes
// (inputs, constants, parameters), which have no backward rule.
type Op int

const (
	OpNone Op = iota
	OpAdd
	OpMul
	OpPow
	OpTanh
)

// String returns the display name of the operator, for diagnostics and
// graph rendering. Computation never depends on it.
func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpMul:
		return "*"
	case OpPow:
		return "^"
	case OpTanh:
		return "tanh"
	default:
		return ""
	}
}

// Value is one scalar node in the computation graph.
//
// A Value produced by an operation holds references to its operands; a leaf
// Value has none. Gradients accumulate across all paths from the root, so
// they must be reset to zero between backward passes (see ZeroGrad).
//
// Operand references are shared: the same Value may feed several downstream
// nodes. The graph is acyclic by construction, since an operation can only
// reference Values that already exist.
type Value struct {
	data     float64
	grad     float64
	op       Op
	operands []*Value
	exponent float64 // Pow only: the constant exponent, not differentiated
	label    string
}

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return &Value{data: data}
}

// WithLabel attaches a diagnostic name to the node and returns it.
// The label has no computational role.
func (v *Value) WithLabel(label string) *Value {
	v.label = label
	return v
}

// Data returns the scalar value of the node.
func (v *Value) Data() float64 {
	return v.data
}

// SetData overwrites the scalar value.
//
// Intended for parameter updates between training iterations. Mutating a
// non-leaf node, or a node that is still referenced by a live graph built
// from its old value, invalidates gradients computed from that graph.
func (v *Value) SetData(data float64) {
	v.data = data
}

// Grad returns the gradient accumulated by the last backward pass.
//
// Valid only after a full backward pass from a root that reaches this node;
// between passes it must be reset to zero.
func (v *Value) Grad() float64 {
	return v.grad
}

// SetGrad sets the gradient directly. Callers use this to seed the root
// with 1 before Backward.
func (v *Value) SetGrad(grad float64) {
	v.grad = grad
}

// ZeroGrad resets the gradient to zero.
func (v *Value) ZeroGrad() {
	v.grad = 0
}

// Op returns the operator tag that produced this node (OpNone for leaves).
func (v *Value) Op() Op {
	return v.op
}

// Label returns the diagnostic name, if any.
func (v *Value) Label() string {
	return v.label
}

// Operands returns the operand nodes of this Value, in operation order.
//
// The returned slice is a copy; external consumers (visualizers, traversal
// code) cannot rewire the graph through it.
func (v *Value) Operands() []*Value {
	if len(v.operands) == 0 {
		return nil
	}
	out := make([]*Value, len(v.operands))
	copy(out, v.operands)
	return out
}
