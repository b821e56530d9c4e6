package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignalGetSet(t *testing.T) {
	sig := NewSignal(42)
	assert.Equal(t, 42, sig.Get())

	sig.Set(100)
	assert.Equal(t, 100, sig.Get())
}

func TestSignalUpdate(t *testing.T) {
	sig := NewSignal(0)

	sig.Update(func(v *int) { *v += 10 })
	assert.Equal(t, 10, sig.Get())

	sig.Update(func(v *int) { *v *= 2 })
	assert.Equal(t, 20, sig.Get())
}

func TestSignalVersionStrictlyIncreases(t *testing.T) {
	sig := NewSignal(0)
	v1 := sig.Version()

	sig.Set(1)
	v2 := sig.Version()
	assert.Greater(t, v2, v1)

	sig.Update(func(v *int) { *v++ })
	v3 := sig.Version()
	assert.Greater(t, v3, v2)

	// Setting an identical value still advances the version.
	sig.Set(sig.Get())
	assert.Greater(t, sig.Version(), v3)
}

func TestSignalSubscription(t *testing.T) {
	sig := NewSignal(0)
	var seen []int

	sub := sig.Subscribe(func(v int) { seen = append(seen, v) })
	defer sub.Cancel()

	sig.Set(42)
	sig.Set(7)
	assert.Equal(t, []int{42, 7}, seen)
}

func TestSignalSubscriberSeesNewValue(t *testing.T) {
	sig := NewSignal(0)

	var observed int
	sub := sig.Subscribe(func(int) {
		// Value is written before notification.
		observed = sig.Get()
	})
	defer sub.Cancel()

	sig.Set(42)
	assert.Equal(t, 42, observed)
}

func TestSignalExactlyOnceNotification(t *testing.T) {
	sig := NewSignal(0)
	count1, count2 := 0, 0

	sub1 := sig.Subscribe(func(int) { count1++ })
	defer sub1.Cancel()
	sub2 := sig.Subscribe(func(int) { count2++ })
	defer sub2.Cancel()

	sig.Set(1)
	sig.Set(2)

	assert.Equal(t, 2, count1)
	assert.Equal(t, 2, count2)
}

func TestSignalCancelledSubscriberNotInvoked(t *testing.T) {
	sig := NewSignal(0)
	count := 0

	sub := sig.Subscribe(func(int) { count++ })
	sig.Set(1)
	require.Equal(t, 1, count)

	sub.Cancel()
	sig.Set(2)
	sig.Set(3)
	assert.Equal(t, 1, count)
}

func TestSignalDeadSubscribersReaped(t *testing.T) {
	sig := NewSignal(0)

	sub1 := sig.Subscribe(func(int) {})
	sub2 := sig.Subscribe(func(int) {})
	assert.Equal(t, 2, sig.subscriberCount())

	sub1.Cancel()
	sub2.Cancel()
	// Reaping happens lazily during the next notification walk.
	sig.Set(1)
	assert.Equal(t, 0, sig.subscriberCount())
}

func TestSignalMutationFromCallback(t *testing.T) {
	sig := NewSignal(0)

	// A subscriber clamping the value it was just notified about must not
	// deadlock the notifying goroutine.
	sub := sig.Subscribe(func(v int) {
		if v > 10 {
			sig.Set(10)
		}
	})
	defer sub.Cancel()

	sig.Set(50)
	assert.Equal(t, 10, sig.Get())

	sig.Set(3)
	assert.Equal(t, 3, sig.Get())
}

func TestSignalSubscribeFromCallback(t *testing.T) {
	sig := NewSignal(0)

	var late *Subscription
	lateCalls := 0
	sub := sig.Subscribe(func(int) {
		if late == nil {
			late = sig.Subscribe(func(int) { lateCalls++ })
		}
	})
	defer sub.Cancel()

	sig.Set(1)
	require.NotNil(t, late)
	defer late.Cancel()

	sig.Set(2)
	assert.Equal(t, 1, lateCalls)
}

func TestSubscriptionCancelIdempotent(t *testing.T) {
	sig := NewSignal(0)
	sub := sig.Subscribe(func(int) {})

	sub.Cancel()
	sub.Cancel()
	require.NoError(t, sub.Close())
}

func TestSignalConcurrentWriters(t *testing.T) {
	sig := NewSignal(0)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				sig.Update(func(v *int) { *v++ })
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 800, sig.Get())
	assert.Equal(t, uint64(800), sig.Version())
}

func TestSignalSharedAcrossGoroutines(t *testing.T) {
	sig := NewSignal("start")
	done := make(chan struct{})

	go func() {
		sig.Set("from worker")
		close(done)
	}()
	<-done

	assert.Equal(t, "from worker", sig.Get())
}
