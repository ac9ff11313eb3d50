package taskflow

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestPoolRunsEveryThunk(t *testing.T) {
	p := NewPool(4, 4)
	defer p.Stop(true)

	var n atomic.Int32
	var wg sync.WaitGroup
	wg.Add(20)
	for i := 0; i < 20; i++ {
		p.Push(func() {
			n.Add(1)
			wg.Done()
		})
	}
	wg.Wait()
	require.EqualValues(t, 20, n.Load())
}

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(2, 8)
	defer p.Stop(true)

	var inflight atomic.Int32
	var maxInflight atomic.Int32
	var wg sync.WaitGroup
	wg.Add(8)
	for i := 0; i < 8; i++ {
		p.Push(func() {
			cur := inflight.Add(1)
			for {
				max := maxInflight.Load()
				if cur <= max || maxInflight.CompareAndSwap(max, cur) {
					break
				}
			}
			time.Sleep(5 * time.Millisecond)
			inflight.Add(-1)
			wg.Done()
		})
	}
	wg.Wait()
	require.LessOrEqual(t, maxInflight.Load(), int32(2))
}

func TestPoolStopDrainRunsQueuedWork(t *testing.T) {
	p := NewPool(1, 8)

	var n atomic.Int32
	for i := 0; i < 5; i++ {
		p.Push(func() { n.Add(1) })
	}
	p.Stop(true)
	require.EqualValues(t, 5, n.Load())
}

func TestPoolPushAfterStopPanics(t *testing.T) {
	p := NewPool(1, 1)
	p.Stop(true)
	require.Panics(t, func() { p.Push(func() {}) })
}
