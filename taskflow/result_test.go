package taskflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultOkAndFail(t *testing.T) {
	ok := Ok(42)
	require.False(t, ok.Failed())
	require.Equal(t, 42, ok.Value)

	boom := errors.New("boom")
	failed := Fail[int](boom)
	require.True(t, failed.Failed())
	require.Equal(t, boom, failed.Err)
}

func TestUniqueGetSet(t *testing.T) {
	u := NewUnique(10)
	require.Equal(t, 10, u.Get())

	u = u.Set(6)
	require.Equal(t, 6, u.Get())

	var _ NonCopyable = u
}

func TestIsNonCopyable(t *testing.T) {
	require.True(t, isNonCopyable[Unique[int]]())
	require.False(t, isNonCopyable[int]())
	require.False(t, isNonCopyable[Unit]())
}
