// Package optim implements optimization algorithms over scalar parameter
// nodes.
//
// This package provides:
//   - Optimizer interface: the contract training loops rely on
//   - SGD: gradient descent with optional momentum
//
// Gradients live on the parameter nodes themselves, so Step takes no
// arguments: it reads each parameter's accumulated gradient and mutates the
// parameter's value in place.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.1})
//
//	for step := 0; step < steps; step++ {
//	    outs := model.Forward(xs)
//	    loss := nn.MSELoss(outs, ys)
//
//	    optimizer.ZeroGrad()
//	    loss.SetGrad(1)
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to every parameter, using the gradients
	// accumulated by the last backward pass.
	Step()

	// ZeroGrad resets every parameter gradient. Call before each backward
	// pass; gradients accumulate across passes by design.
	ZeroGrad()

	// GetLR returns the current learning rate, for monitoring and
	// scheduling.
	GetLR() float64
}
