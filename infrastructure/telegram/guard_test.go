package telegram

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithSessionLockSerializesSamePath(t *testing.T) {
	var inside int32
	var overlapped int32

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithSessionLock("sessions/same.session", func() error {
				if atomic.AddInt32(&inside, 1) > 1 {
					atomic.StoreInt32(&overlapped, 1)
				}
				time.Sleep(2 * time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Zero(t, atomic.LoadInt32(&overlapped), "two holders overlapped on one store path")
}

func TestWithSessionLockDifferentPathsRunConcurrently(t *testing.T) {
	firstInside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = WithSessionLock("sessions/one.session", func() error {
			close(firstInside)
			<-release
			return nil
		})
	}()

	<-firstInside
	go func() {
		_ = WithSessionLock("sessions/two.session", func() error {
			close(done)
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("independent store paths blocked each other")
	}
	close(release)
}

func TestWithSessionLockNormalizesPaths(t *testing.T) {
	// Both spellings resolve to the same file and must share one lock.
	require.Same(t,
		sessionLockFor("sessions/dir/../a.session"),
		sessionLockFor("sessions/a.session"),
	)
	require.NotSame(t,
		sessionLockFor("sessions/a.session"),
		sessionLockFor("sessions/b.session"),
	)
}

func TestWithSessionLockEmptyPathBypasses(t *testing.T) {
	firstInside := make(chan struct{})
	release := make(chan struct{})
	done := make(chan struct{})

	go func() {
		_ = WithSessionLock("", func() error {
			close(firstInside)
			<-release
			return nil
		})
	}()

	<-firstInside
	go func() {
		_ = WithSessionLock("", func() error {
			close(done)
			return nil
		})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("portable credentials must not be guarded")
	}
	close(release)
}

func TestWithSessionLockReleasedOnError(t *testing.T) {
	err := WithSessionLock("sessions/err.session", func() error {
		return assert.AnError
	})
	require.ErrorIs(t, err, assert.AnError)

	// A second acquisition must not block.
	require.NoError(t, WithSessionLock("sessions/err.session", func() error {
		return nil
	}))
}
