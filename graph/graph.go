// Copyright 2026 Ember ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package graph exposes a read-only view of a computation graph for
// external drivers and visualizers.
//
// The core engine owns the graph; this package only walks operand edges and
// reads node values, gradients, operator tags and labels. It never mutates
// a node.
package graph

import (
	"fmt"
	"io"
	"strings"

	"github.com/ember-ml/ember/internal/autodiff"
)

// recordEscaper escapes the characters that delimit Graphviz record labels,
// so arbitrary node labels cannot break the DOT syntax.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`|`, `\|`,
	`{`, `\{`,
	`}`, `\}`,
	`<`, `\<`,
	`>`, `\>`,
)

// Edge is one operand edge, pointing from an operand to its consumer.
type Edge struct {
	From *autodiff.Value
	To   *autodiff.Value
}

// Trace returns every node reachable from root exactly once, in topological
// order (operands before consumers), together with all operand edges.
func Trace(root *autodiff.Value) ([]*autodiff.Value, []Edge) {
	nodes := autodiff.TopoSort(root)

	var edges []Edge
	for _, node := range nodes {
		for _, operand := range node.Operands() {
			edges = append(edges, Edge{From: operand, To: node})
		}
	}
	return nodes, edges
}

// WriteDOT renders the graph reachable from root in Graphviz DOT format.
//
// Each value node shows its label, data and gradient; each non-leaf value
// gets a companion operator node so the rendering mirrors how the node was
// derived. The output is laid out left to right, inputs to root.
func WriteDOT(w io.Writer, root *autodiff.Value) error {
	nodes, _ := Trace(root)

	ids := make(map[*autodiff.Value]int, len(nodes))
	for i, node := range nodes {
		ids[node] = i
	}

	if _, err := fmt.Fprintln(w, "digraph {\n  rankdir=LR;"); err != nil {
		return err
	}

	for i, node := range nodes {
		label := recordEscaper.Replace(node.Label())
		if label != "" {
			label += " | "
		}
		if _, err := fmt.Fprintf(w,
			"  n%d [shape=record, label=\"{ %sdata %.4f | grad %.4f }\"];\n",
			i, label, node.Data(), node.Grad()); err != nil {
			return err
		}

		if node.Op() == autodiff.OpNone {
			continue
		}
		// Operator node sits between the operands and their result.
		if _, err := fmt.Fprintf(w, "  n%dop [label=%q];\n  n%dop -> n%d;\n",
			i, node.Op().String(), i, i); err != nil {
			return err
		}
		for _, operand := range node.Operands() {
			if _, err := fmt.Fprintf(w, "  n%d -> n%dop;\n", ids[operand], i); err != nil {
				return err
			}
		}
	}

	_, err := fmt.Fprintln(w, "}")
	return err
}
