// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training over scalar
// parameter nodes.
//
// # Overview
//
// This package contains:
//   - SGD: gradient descent with optional momentum
//   - Optimizer interface for custom optimizers
//
// # Basic Usage
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR: 0.1,
//	})
//
//	optimizer.ZeroGrad()
//	loss.SetGrad(1)
//	autodiff.Backward(loss)
//	optimizer.Step()
package optim
