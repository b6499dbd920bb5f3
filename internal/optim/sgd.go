package optim

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// SGD implements stochastic gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Value
	lr         float64
	momentum   float64
	velocities map[*autodiff.Value]float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given parameter nodes.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Value]float64),
	}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, p := range s.params {
		grad := p.Grad()

		if s.momentum == 0 {
			p.SetData(p.Data() - s.lr*grad)
			continue
		}

		v := s.momentum*s.velocities[p] + grad
		s.velocities[p] = v
		p.SetData(p.Data() - s.lr*v)
	}
}

// ZeroGrad resets the gradient of every parameter.
func (s *SGD) ZeroGrad() {
	for _, p := range s.params {
		p.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
