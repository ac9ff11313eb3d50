package dag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type keyNode NodeKey

func (n keyNode) Key() NodeKey { return NodeKey(n) }

func TestAddAndHas(t *testing.T) {
	g := New()
	a := keyNode(1)

	require.False(t, g.Has(a))
	require.NoError(t, g.Add(a))
	require.True(t, g.Has(a))

	// re-adding the same node is a no-op
	require.NoError(t, g.Add(a))
}

func TestAddDuplicateKeyDifferentNode(t *testing.T) {
	g := New()
	a := keyNode(1)
	b := keyNode(1) // same Key(), different identity

	require.NoError(t, g.Add(a))
	err := g.Add(b)
	require.Error(t, err)
	require.IsType(t, ErrDuplicateKey{}, err)
}

func TestAssociateRequiresMembership(t *testing.T) {
	g := New()
	a := keyNode(1)
	b := keyNode(2)
	require.NoError(t, g.Add(a))

	err := g.Associate(a, b, DataEdge, 0)
	require.Error(t, err)
	require.IsType(t, ErrNoSuchNode{}, err)
}

func TestHasCycle(t *testing.T) {
	g := New()
	a, b, c, d := keyNode(1), keyNode(2), keyNode(3), keyNode(4)
	for _, n := range []Node{a, b, c, d} {
		require.NoError(t, g.Add(n))
	}

	require.NoError(t, g.Associate(a, b, OrderEdge, 0))
	require.NoError(t, g.Associate(b, c, OrderEdge, 0))
	require.NoError(t, g.Associate(c, d, OrderEdge, 0))
	require.False(t, g.HasCycle())

	require.NoError(t, g.Associate(d, a, OrderEdge, 0))
	require.True(t, g.HasCycle())
	require.Len(t, g.Cycles(), 1)
}

func TestTopoSort(t *testing.T) {
	g := New()
	a, b, c := keyNode(1), keyNode(2), keyNode(3)
	for _, n := range []Node{a, b, c} {
		require.NoError(t, g.Add(n))
	}
	require.NoError(t, g.Associate(a, b, OrderEdge, 0))
	require.NoError(t, g.Associate(b, c, OrderEdge, 0))

	sorted, err := g.TopoSort()
	require.NoError(t, err)
	require.Equal(t, []Node{a, b, c}, sorted)
}
