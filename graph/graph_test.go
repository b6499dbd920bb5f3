package graph

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/autodiff"
)

// TestTrace counts nodes and edges for a small expression and checks
// topological order.
func TestTrace(t *testing.T) {
	a := autodiff.NewValue(2.0).WithLabel("a")
	b := autodiff.NewValue(3.0).WithLabel("b")
	y := a.Mul(b).AddScalar(1) // a, b, a*b, lifted 1, sum

	nodes, edges := Trace(y)
	require.Len(t, nodes, 5)
	require.Len(t, edges, 4)

	pos := make(map[*autodiff.Value]int, len(nodes))
	for i, n := range nodes {
		pos[n] = i
	}
	for _, e := range edges {
		assert.Less(t, pos[e.From], pos[e.To], "operand must precede consumer")
	}
	assert.Same(t, y, nodes[len(nodes)-1])
}

// TestTrace_SharedOperand tests that a node consumed twice appears once.
func TestTrace_SharedOperand(t *testing.T) {
	x := autodiff.NewValue(1.0)
	y := x.Add(x)

	nodes, edges := Trace(y)
	assert.Len(t, nodes, 2)
	// Both operand slots of the Add point at the same x.
	assert.Len(t, edges, 2)
}

// TestWriteDOT checks the rendering contains the structural pieces a
// visualizer needs.
func TestWriteDOT(t *testing.T) {
	a := autodiff.NewValue(2.0).WithLabel("a")
	b := autodiff.NewValue(3.0).WithLabel("b")
	y := a.Mul(b)
	y.Backward()

	var sb strings.Builder
	require.NoError(t, WriteDOT(&sb, y))
	out := sb.String()

	assert.True(t, strings.HasPrefix(out, "digraph {"))
	assert.True(t, strings.HasSuffix(strings.TrimSpace(out), "}"))
	assert.Contains(t, out, "a | ")
	assert.Contains(t, out, "b | ")
	assert.Contains(t, out, `"*"`)
	assert.Contains(t, out, "grad 1.0000") // root seeded with 1
	assert.Contains(t, out, "data 6.0000")
}

// TestWriteDOT_EscapesLabels tests that record-delimiter characters in a
// node label are escaped instead of breaking the DOT record syntax.
func TestWriteDOT_EscapesLabels(t *testing.T) {
	a := autodiff.NewValue(1.0).WithLabel(`x{0}|"raw"<t>`)
	y := a.AddScalar(1)

	var sb strings.Builder
	require.NoError(t, WriteDOT(&sb, y))
	out := sb.String()

	assert.Contains(t, out, `x\{0\}\|\"raw\"\<t\>`)
	assert.NotContains(t, out, `x{0}|"raw"`)
}
