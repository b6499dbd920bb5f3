package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Layer applies outputSize independent Neurons to the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of outputSize neurons with inputSize inputs each.
func NewLayer(inputSize, outputSize int) *Layer {
	neurons := make([]*Neuron, outputSize)
	for i := range neurons {
		neurons[i] = NewNeuron(inputSize)
	}
	return &Layer{neurons: neurons}
}

// Forward returns one activation node per neuron.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outputs[i] = n.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron, neuron by neuron.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// OutputSize returns the number of neurons in the layer.
func (l *Layer) OutputSize() int {
	return len(l.neurons)
}
