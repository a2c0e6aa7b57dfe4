package dataset

import (
	"context"
	"os"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rr-ventures/website-aiusecases/internal/testutil"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestWatch_PayloadChangeTriggersCallback(t *testing.T) {
	winsPath, timelinePath := testutil.TempDataFiles(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	go func() {
		_ = Watch(ctx, []string{winsPath, timelinePath}, testutil.QuietLogger(), func() {
			fired.Add(1)
		})
	}()

	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(winsPath, []byte(`[]`), 0o644); err != nil {
		t.Fatal(err)
	}

	eventually(t, 5*time.Second, 50*time.Millisecond, func() bool {
		return fired.Load() >= 1
	}, "payload change did not trigger callback")
}

func TestWatch_IgnoresUnrelatedFiles(t *testing.T) {
	winsPath, timelinePath := testutil.TempDataFiles(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var fired atomic.Int32
	go func() {
		_ = Watch(ctx, []string{winsPath, timelinePath}, testutil.QuietLogger(), func() {
			fired.Add(1)
		})
	}()

	time.Sleep(100 * time.Millisecond)

	// A sibling file in the watched directory must not schedule a reload.
	unrelated := winsPath + ".bak"
	if err := os.WriteFile(unrelated, []byte(`x`), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(600 * time.Millisecond)
	if fired.Load() != 0 {
		t.Errorf("callback fired %d times for unrelated file", fired.Load())
	}
}

func TestWatch_StopsOnContextCancel(t *testing.T) {
	winsPath, timelinePath := testutil.TempDataFiles(t)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, []string{winsPath, timelinePath}, testutil.QuietLogger(), func() {})
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Watch returned %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after cancel")
	}
}
