package resilience

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestGroup_DoRunsOncePerKey(t *testing.T) {
	var g Group[[]byte]
	var downloads int32

	const workers = 20
	start := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			<-start
			raw, err, _ := g.Do("/mcenter/v1/101/scard", func() ([]byte, error) {
				atomic.AddInt32(&downloads, 1)
				time.Sleep(20 * time.Millisecond)
				return []byte(`{"matchId":101}`), nil
			})
			if err != nil {
				t.Errorf("download failed: %v", err)
			}
			if string(raw) != `{"matchId":101}` {
				t.Errorf("unexpected payload %q", raw)
			}
		}()
	}

	close(start)
	wg.Wait()

	if got := atomic.LoadInt32(&downloads); got != 1 {
		t.Fatalf("expected one download, got %d", got)
	}
}

func TestGroup_SequentialCallsAreNotShared(t *testing.T) {
	var g Group[int]
	calls := 0
	for i := 0; i < 2; i++ {
		v, err, shared := g.Do("k", func() (int, error) {
			calls++
			return calls, nil
		})
		if err != nil || shared || v != i+1 {
			t.Fatalf("call %d: v=%d err=%v shared=%v", i, v, err, shared)
		}
	}
}
