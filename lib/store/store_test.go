package store

import (
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"hours-dashboard/lib/backend"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestListeners(t *testing.T) {
	t.Run(`notify in order`, func(t *testing.T) {
		var l Listeners[int]
		var got []int
		l.Add(func(v int) { got = append(got, v) })
		l.Add(func(v int) { got = append(got, v*10) })
		l.Notify(1, 2)
		require.Equal(t, []int{2, 20}, got)
	})

	t.Run(`remove and clear`, func(t *testing.T) {
		var l Listeners[string]
		calls := 0
		remove := l.Add(func(string) { calls++ })
		l.Add(func(string) { calls++ })
		remove()
		l.Notify(1, "x")
		require.Equal(t, 1, calls)
		require.Equal(t, 1, l.Len())

		l.Clear()
		l.Notify(2, "x")
		require.Equal(t, 1, calls)
		require.Zero(t, l.Len())
	})

	t.Run(`listener may unsubscribe itself`, func(t *testing.T) {
		var l Listeners[int]
		calls := 0
		var remove func()
		remove = l.Add(func(int) {
			calls++
			remove()
		})
		l.Notify(1, 1)
		l.Notify(2, 2)
		require.Equal(t, 1, calls)
	})

	t.Run(`older versions are dropped`, func(t *testing.T) {
		var l Listeners[string]
		var got []string
		l.Add(func(v string) { got = append(got, v) })
		l.Notify(2, "second")
		l.Notify(1, "first")
		l.Notify(2, "second again")
		l.Notify(3, "third")
		require.Equal(t, []string{"second", "third"}, got)
	})

	t.Run(`notify from a listener waits for the current round`, func(t *testing.T) {
		var l Listeners[int]
		var got []string
		l.Add(func(v int) {
			got = append(got, fmt.Sprintf("a%d", v))
			if v == 1 {
				l.Notify(2, 2)
			}
		})
		l.Add(func(v int) { got = append(got, fmt.Sprintf("b%d", v)) })
		l.Notify(1, 1)
		require.Equal(t, []string{"a1", "b1", "a2", "b2"}, got)
	})

	t.Run(`concurrent notifies never go backwards`, func(t *testing.T) {
		var l Listeners[uint64]
		var got []uint64
		l.Add(func(v uint64) { got = append(got, v) })

		var version atomic.Uint64
		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for j := 0; j < 100; j++ {
					v := version.Add(1)
					l.Notify(v, v)
				}
			}()
		}
		wg.Wait()

		require.NotEmpty(t, got)
		for i := 1; i < len(got); i++ {
			require.Greater(t, got[i], got[i-1])
		}
		require.Equal(t, uint64(800), got[len(got)-1])
	})
}

func TestFail(t *testing.T) {
	t.Run(`server message wins`, func(t *testing.T) {
		err := Fail("projects.add_time_entry", "Failed to add time entry", &backend.APIError{Status: 404, Message: "Project not found"})
		require.Equal(t, "Project not found", err.Message)
		require.True(t, errors.Is(err, backend.ErrNotFound))
	})

	t.Run(`fallback for plain failures`, func(t *testing.T) {
		err := Fail("projects.add_time_entry", "Failed to add time entry", errors.New("connection refused"))
		require.Equal(t, "Failed to add time entry", err.Message)
		require.Equal(t, "projects.add_time_entry: Failed to add time entry", err.Error())
	})
}
