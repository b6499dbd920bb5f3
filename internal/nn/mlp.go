package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// MLP chains Layers so each layer's output size feeds the next layer's
// input size.
//
// An empty hiddenSizes list degenerates to a single input→output layer.
type MLP struct {
	layers []*Layer
}

// NewMLP creates a multi-layer perceptron with the given input size, hidden
// layer sizes, and output size.
func NewMLP(inputSize int, hiddenSizes []int, outputSize int) *MLP {
	sizes := make([]int, 0, len(hiddenSizes)+2)
	sizes = append(sizes, inputSize)
	sizes = append(sizes, hiddenSizes...)
	sizes = append(sizes, outputSize)

	layers := make([]*Layer, len(sizes)-1)
	for i := range layers {
		layers[i] = NewLayer(sizes[i], sizes[i+1])
	}
	return &MLP{layers: layers}
}

// Forward threads the inputs through all layers in order.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outputs := inputs
	for _, l := range m.layers {
		outputs = l.Forward(outputs)
	}
	return outputs
}

// Parameters returns the parameters of every layer, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, l := range m.layers {
		params = append(params, l.Parameters()...)
	}
	return params
}

// NumLayers returns the number of layers, including the output layer.
func (m *MLP) NumLayers() int {
	return len(m.layers)
}
