// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feed-forward network over scalar graph
// nodes.
//
// # Overview
//
// This package contains:
//   - Neuron: tanh(bias + Σ inputs·weights)
//   - Layer: a row of Neurons over shared inputs
//   - MLP: Layers chained output-to-input
//   - Module interface and ZeroGrad
//   - MSELoss
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/autodiff"
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/optim"
//	)
//
//	func main() {
//	    model := nn.NewMLP(2, []int{2}, 1)
//	    optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	    for step := 0; step < 20; step++ {
//	        out := model.Forward([]*autodiff.Value{x1, x2})
//	        loss := nn.MSELoss(out, targets)
//
//	        optimizer.ZeroGrad()
//	        loss.SetGrad(1)
//	        autodiff.Backward(loss)
//	        optimizer.Step()
//	    }
//	}
package nn
