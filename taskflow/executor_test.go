package taskflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

var errTestBoom = errors.New("boom")

func TestExecuteDetectsCycle(t *testing.T) {
	ex := NewExecutor()
	defer ex.Close()

	a := MakeTask0(ex, "a", func() error { return nil })
	b := MakeTask0(ex, "b", func() error { return nil })
	b.After(a)
	a.After(b)

	err := ex.Execute()
	require.ErrorIs(t, err, ErrCycleDetected)
}

func TestExecuteTwiceWithoutResetFails(t *testing.T) {
	ex := NewExecutor()
	defer ex.Close()

	_ = MakeTask0(ex, "only", func() error { return nil })

	require.NoError(t, ex.Execute())
	require.ErrorIs(t, ex.Execute(), ErrAlreadyExecuted)

	ex.Reset()
	require.NoError(t, ex.Execute())
}

func TestExecuteReturnsFirstPanic(t *testing.T) {
	ex := NewExecutor()
	defer ex.Close()

	_ = MakeTask0(ex, "boom", func() error { panic("kaboom") })

	err := ex.Execute()
	require.Error(t, err)
	var pe *PanicError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, "kaboom", pe.Recovered)
}

func TestExecutePropagatesErrorIntoDownstreamNode(t *testing.T) {
	ex := NewExecutor()
	defer ex.Close()

	sentinel := errTestBoom
	root := MakeNode0(ex, "root", func() (int, error) { return 0, sentinel })
	child := MakeNode1(ex, "child", func(v int) (int, error) { return v + 1, nil })
	require.NoError(t, child.SetParent0(root))

	require.NoError(t, ex.Execute())

	_, err := root.Collect()
	require.ErrorIs(t, err, sentinel)

	_, err = child.Collect()
	require.ErrorIs(t, err, sentinel)
}
