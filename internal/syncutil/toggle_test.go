package syncutil

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestToggle(t *testing.T) {
	ctx := context.Background()
	tog := new(Toggle)

	tog.Set(true)
	t.Run("late Wait()", func(t *testing.T) {
		// Wait()ing when the Toggle is "on" MUST NOT block, even if Wait()
		// was called late.
		if err := tog.Wait(ctx); err != nil {
			t.Errorf("%T.Wait(ctx) error %v", tog, err)
		}
	})

	t.Run("idempotent Set doesn't block", func(t *testing.T) {
		for _, set := range []bool{true, false, true} {
			for i := 0; i < 10; i++ {
				tog.Set(set)
			}
		}
	})

	tog.Set(false)
	// All Wait()ing goroutines MUST only unblock when Set(true) is called,
	// but no sooner.
	var wg sync.WaitGroup
	unblocked := new(uint64)
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := tog.Wait(ctx); err != nil {
				errs <- err
				return
			}
			atomic.AddUint64(unblocked, 1)
		}()
	}

	t.Run("blocks", func(t *testing.T) {
		const timeout = 5 * time.Second
		waitCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if got, want := tog.Wait(waitCtx), context.DeadlineExceeded; got != want {
			t.Errorf("%T.Wait([ctx with deadline]) got %v; want %v", tog, got, want)
		}
		if n := atomic.LoadUint64(unblocked); n > 0 {
			t.Fatalf("%d goroutines unblocked", n)
		}
	})

	t.Run("unblocks", func(t *testing.T) {
		t.Parallel()
		tog.Set(true)
		wg.Wait()
		close(errs)
		for err := range errs {
			t.Errorf("%T.Wait(ctx) error %v", tog, err)
		}
	})
}

func TestToggleClose(t *testing.T) {
	ctx := context.Background()
	tog := new(Toggle)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if got, want := tog.Wait(ctx), ErrToggleClosed; got != want {
			t.Errorf("%T.Wait() got %v; want %v", tog, got, want)
		}
	}()

	tog.Close()
	wg.Wait()
}
