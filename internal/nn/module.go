// Package nn implements a minimal feed-forward network over scalar graph
// nodes.
//
// This package provides:
//   - Module interface: parameter enumeration shared by all components
//   - Neuron: tanh(bias + Σ inputs·weights) over scalar nodes
//   - Layer: a slice of Neurons applied to the same inputs
//   - MLP: Layers chained output-to-input
//   - MSELoss: mean squared error built as part of the graph
//
// Trainable parameters are leaf autodiff.Value nodes. They persist across
// training iterations and are mutated in place by an optimizer; all other
// nodes are rebuilt on every forward pass.
package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Module is the base interface for all network components.
//
// Parameters returns every trainable weight and bias node, in a stable
// order, for an external optimizer to read gradients from and mutate values
// of. It is a view over owned nodes, not a copy of them.
type Module interface {
	Parameters() []*autodiff.Value
}

// ZeroGrad resets the gradient of every parameter of m.
//
// Call between optimization steps: gradients accumulate across backward
// passes by design.
func ZeroGrad(m Module) {
	for _, p := range m.Parameters() {
		p.ZeroGrad()
	}
}
