// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/ember-ml/ember/internal/autodiff"
	"github.com/ember-ml/ember/internal/nn"
)

// Module is the common interface for all network components.
type Module = nn.Module

// Neuron computes tanh(bias + Σ inputs·weights) over scalar nodes.
type Neuron = nn.Neuron

// NewNeuron creates a neuron with inputSize weights and one bias.
func NewNeuron(inputSize int) *Neuron {
	return nn.NewNeuron(inputSize)
}

// Layer applies a row of Neurons to the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of outputSize neurons with inputSize inputs each.
func NewLayer(inputSize, outputSize int) *Layer {
	return nn.NewLayer(inputSize, outputSize)
}

// MLP chains Layers so each layer feeds the next.
type MLP = nn.MLP

// NewMLP creates a multi-layer perceptron.
//
// Example:
//
//	model := nn.NewMLP(2, []int{3, 4}, 1)
func NewMLP(inputSize int, hiddenSizes []int, outputSize int) *MLP {
	return nn.NewMLP(inputSize, hiddenSizes, outputSize)
}

// ZeroGrad resets the gradient of every parameter of m.
func ZeroGrad(m Module) {
	nn.ZeroGrad(m)
}

// MSELoss builds mean((predictions - targets)²) as part of the graph.
func MSELoss(predictions []*autodiff.Value, targets []float64) *autodiff.Value {
	return nn.MSELoss(predictions, targets)
}
