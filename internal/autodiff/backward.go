package autodiff

// TopoSort returns every node reachable from root via operand edges, exactly
// once, in topological order: operands always precede their consumers.
//
// Iterative DFS with an explicit stack and post-order emission. A node is
// appended only after all of its operands have been emitted, which is what
// makes the reverse walk in Backward correct even when a node has multiple
// consumers at different depths.
func TopoSort(root *Value) []*Value {
	var order []*Value
	visited := make(map[*Value]bool)

	type frame struct {
		node     *Value
		expanded bool
	}
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if f.expanded {
			order = append(order, f.node)
			continue
		}
		if visited[f.node] {
			continue
		}
		visited[f.node] = true

		// Revisit after the operands to emit in post-order.
		stack = append(stack, frame{node: f.node, expanded: true})
		for _, operand := range f.node.operands {
			if !visited[operand] {
				stack = append(stack, frame{node: operand})
			}
		}
	}

	return order
}

// Backward propagates gradients from root to every reachable node.
//
// Precondition: the caller has seeded root.SetGrad(1). Running Backward on
// an unseeded root silently produces all-zero gradients; that is a contract
// violation by the caller, not an error. Running it twice without zeroing
// gradients in between accumulates across calls, mirroring the requirement
// that optimization loops reset gradients explicitly each step.
//
// Postcondition: every node reachable from root holds d(root)/d(node),
// accumulated over all paths.
func Backward(root *Value) {
	order := TopoSort(root)

	// Reverse topological order guarantees a node's gradient is fully
	// accumulated before its own rule runs.
	for i := len(order) - 1; i >= 0; i-- {
		order[i].propagate()
	}
}

// Backward seeds this node's gradient to 1 and runs the backward pass,
// treating the node as the scalar output being differentiated.
//
// It does not reset gradients: callers reusing a graph (or its parameter
// leaves) across passes must zero gradients first.
func (v *Value) Backward() {
	v.grad = 1
	Backward(v)
}
