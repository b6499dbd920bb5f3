package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// Neuron computes tanh(bias + Σ inputs[i]·weights[i]) over scalar nodes.
//
// Weights and bias are leaf parameter nodes, created once and updated in
// place across training iterations. Forward builds fresh graph nodes on
// every call.
type Neuron struct {
	weights []*autodiff.Value
	bias    *autodiff.Value
}

// NewNeuron creates a neuron with inputSize weights and one bias, all
// initialized uniformly in [-1, 1).
func NewNeuron(inputSize int) *Neuron {
	weights := make([]*autodiff.Value, inputSize)
	for i := range weights {
		weights[i] = autodiff.NewValue(uniformWeight()).WithLabel(fmt.Sprintf("w%d", i))
	}
	return &Neuron{
		weights: weights,
		bias:    autodiff.NewValue(uniformWeight()).WithLabel("b"),
	}
}

// Forward computes the neuron's activation for the given inputs.
//
// Panics if len(inputs) does not match the neuron's input size; shape
// mismatches are caller errors, never silently truncated or padded.
func (n *Neuron) Forward(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn.Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, in := range inputs {
		act = act.Add(in.Mul(n.weights[i]))
	}
	return act.Tanh()
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}

// InputSize returns the number of inputs the neuron accepts.
func (n *Neuron) InputSize() int {
	return len(n.weights)
}
