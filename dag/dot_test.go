package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDOT(t *testing.T) {
	g := New()
	a, b := keyNode(1), keyNode(2)
	require.NoError(t, g.Add(a))
	require.NoError(t, g.Add(b))
	require.NoError(t, g.Associate(a, b, DataEdge, 0))

	out, err := EncodeDOT(g, DotOptions{Name: "diamond", Labels: map[NodeKey]string{1: "A", 2: "B"}})
	require.NoError(t, err)
	require.Contains(t, string(out), "diamond")
	require.Contains(t, string(out), "A")
	require.Contains(t, string(out), "B")
}
