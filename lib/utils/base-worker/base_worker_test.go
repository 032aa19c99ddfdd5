package baseworker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestRun(t *testing.T) {
	t.Run(`runs until cancelled`, func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		var runs int32
		done := make(chan struct{})
		go func() {
			NewInstance("test", 0, time.Millisecond).Run(ctx, func(context.Context) {
				if atomic.AddInt32(&runs, 1) == 3 {
					cancel()
				}
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
		require.GreaterOrEqual(t, atomic.LoadInt32(&runs), int32(3))
	})

	t.Run(`panic stops the worker`, func(t *testing.T) {
		done := make(chan struct{})
		go func() {
			NewInstance("test", 0, time.Millisecond).Run(context.Background(), func(context.Context) {
				panic("boom")
			})
			close(done)
		}()
		select {
		case <-done:
		case <-time.After(5 * time.Second):
			t.Fatal("worker did not stop")
		}
	})
}
