package nn

import (
	"fmt"

	"github.com/ember-ml/ember/internal/autodiff"
)

// MSELoss computes mean((predictions - targets)²) as part of the graph, so
// Backward on the returned node reaches every prediction and, through them,
// the model parameters.
//
// Targets are lifted to leaf nodes; their gradients are computed but
// normally ignored.
//
// Panics if the two slices differ in length or are empty.
func MSELoss(predictions []*autodiff.Value, targets []float64) *autodiff.Value {
	if len(predictions) != len(targets) {
		panic(fmt.Sprintf("nn.MSELoss: %d predictions vs %d targets", len(predictions), len(targets)))
	}
	if len(predictions) == 0 {
		panic("nn.MSELoss: empty input")
	}

	var sum *autodiff.Value
	for i, pred := range predictions {
		sq := pred.AddScalar(-targets[i]).Pow(2)
		if sum == nil {
			sum = sq
		} else {
			sum = sum.Add(sq)
		}
	}
	return sum.MulScalar(1 / float64(len(predictions)))
}
