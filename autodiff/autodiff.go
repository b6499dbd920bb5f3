// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides scalar reverse-mode automatic differentiation.
//
// This package builds a dynamic DAG of elementary arithmetic operations as a
// program executes, then computes gradients of a scalar output with respect
// to every node by traversing the graph in reverse topological order.
//
// Example:
//
//	import "github.com/ember-ml/ember/autodiff"
//
//	func main() {
//	    x := autodiff.NewValue(3.0).WithLabel("x")
//	    w := autodiff.NewValue(4.0).WithLabel("w")
//	    y := x.Mul(w).Tanh()
//
//	    y.SetGrad(1)
//	    autodiff.Backward(y)
//	    fmt.Println(x.Grad()) // dy/dx
//	}
package autodiff

import (
	"github.com/ember-ml/ember/internal/autodiff"
)

// Value is one scalar node in the computation graph.
type Value = autodiff.Value

// Op identifies the operation that produced a Value.
type Op = autodiff.Op

// Operator tags, used for diagnostics and graph rendering.
const (
	OpNone = autodiff.OpNone
	OpAdd  = autodiff.OpAdd
	OpMul  = autodiff.OpMul
	OpPow  = autodiff.OpPow
	OpTanh = autodiff.OpTanh
)

// NewValue creates a leaf node holding data.
func NewValue(data float64) *Value {
	return autodiff.NewValue(data)
}

// Backward propagates gradients from root to every reachable node.
// The caller seeds root.SetGrad(1) first; see the internal package docs for
// the full contract.
func Backward(root *Value) {
	autodiff.Backward(root)
}

// TopoSort returns every node reachable from root, operands before
// consumers.
func TopoSort(root *Value) []*Value {
	return autodiff.TopoSort(root)
}
