package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSingleFlight_DeduplicatesConcurrentCalls(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32
	release := make(chan struct{})

	const callers = 8
	var wg sync.WaitGroup
	results := make(chan int, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			value, err, _ := flight.Do("key", func() (any, error) {
				executions.Add(1)
				<-release
				return 42, nil
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			results <- value.(int)
		}()
	}

	close(release)
	wg.Wait()
	close(results)

	if got := executions.Load(); got != 1 {
		t.Fatalf("expected exactly one execution, got %d", got)
	}
	for value := range results {
		if value != 42 {
			t.Fatalf("unexpected shared value: %d", value)
		}
	}
}

func TestSingleFlight_KeyReusableAfterCompletion(t *testing.T) {
	t.Parallel()

	var flight SingleFlight
	var executions atomic.Int32

	for i := 0; i < 3; i++ {
		if _, err, shared := flight.Do("key", func() (any, error) {
			executions.Add(1)
			return nil, nil
		}); err != nil || shared {
			t.Fatalf("sequential call %d: err=%v shared=%t", i, err, shared)
		}
	}

	if got := executions.Load(); got != 3 {
		t.Fatalf("sequential calls must each execute, got %d", got)
	}
}
