package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestForCoversEveryIndexOnce(t *testing.T) {
	configs := []Config{
		{Workers: 1, Grain: 1},
		{Workers: 4, Grain: 1},
		{Workers: 3, Grain: 7},
		{Workers: 16, Grain: 1000},
		{Workers: 0, Grain: 0},
	}
	for _, n := range []int{1, 2, 5, 64, 1000, 4097} {
		for _, cfg := range configs {
			hits := make([]int32, n)
			For(n, cfg, func(low, high int) {
				for i := low; i < high; i++ {
					atomic.AddInt32(&hits[i], 1)
				}
			})
			for i, h := range hits {
				if h != 1 {
					t.Fatalf("n=%d cfg=%+v: index %d visited %d times", n, cfg, i, h)
				}
			}
		}
	}
}

func TestForZeroLength(t *testing.T) {
	called := false
	For(0, Config{Workers: 4, Grain: 1}, func(int, int) { called = true })
	if called {
		t.Fatal("body called for empty range")
	}
}

func TestForIsABarrier(t *testing.T) {
	const n = 10000
	cfg := Config{Workers: 8, Grain: 16}
	a := make([]int, n)
	b := make([]int, n)

	For(n, cfg, func(low, high int) {
		for i := low; i < high; i++ {
			a[i] = i
		}
	})
	// Every read of a neighbour written by another chunk must see the
	// previous region's value.
	For(n, cfg, func(low, high int) {
		for i := low; i < high; i++ {
			b[i] = a[(i+n/2)%n]
		}
	})
	for i := range b {
		if b[i] != (i+n/2)%n {
			t.Fatalf("b[%d] = %d, want %d", i, b[i], (i+n/2)%n)
		}
	}
}

func TestForRespectsWorkerLimit(t *testing.T) {
	const workers = 3
	var (
		mu      sync.Mutex
		active  int
		maxSeen int
	)
	For(300, Config{Workers: workers, Grain: 1}, func(low, high int) {
		mu.Lock()
		active++
		if active > maxSeen {
			maxSeen = active
		}
		mu.Unlock()

		sum := 0
		for i := low; i < high; i++ {
			sum += i
		}
		_ = sum

		mu.Lock()
		active--
		mu.Unlock()
	})
	if maxSeen > workers {
		t.Fatalf("observed %d concurrent chunks, limit %d", maxSeen, workers)
	}
}

func TestForInlineSmallRegion(t *testing.T) {
	var calls int
	For(10, Config{Workers: 8, Grain: 64}, func(low, high int) {
		calls++
		if low != 0 || high != 10 {
			t.Fatalf("inline chunk = [%d,%d), want [0,10)", low, high)
		}
	})
	if calls != 1 {
		t.Fatalf("calls = %d, want 1", calls)
	}
}

func TestChunks(t *testing.T) {
	tests := []struct {
		cfg  Config
		n    int
		want int
	}{
		{Config{Workers: 4, Grain: 1}, 100, 25},
		{Config{Workers: 4, Grain: 1}, 101, 26},
		{Config{Workers: 4, Grain: 64}, 100, 64},
		{Config{}, 10, 10},
	}
	for _, tt := range tests {
		if got := tt.cfg.Chunks(tt.n); got != tt.want {
			t.Fatalf("Chunks(%+v, %d) = %d, want %d", tt.cfg, tt.n, got, tt.want)
		}
	}
}

func TestCopy(t *testing.T) {
	src := make([]int64, 5000)
	for i := range src {
		src[i] = int64(i * 3)
	}
	dst := make([]int64, len(src))
	Copy(dst, src, Config{Workers: 4, Grain: 100})
	for i := range dst {
		if dst[i] != src[i] {
			t.Fatalf("dst[%d] = %d, want %d", i, dst[i], src[i])
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Workers < 1 {
		t.Fatalf("Workers = %d, want >= 1", cfg.Workers)
	}
	if cfg.Grain != DefaultGrain {
		t.Fatalf("Grain = %d, want %d", cfg.Grain, DefaultGrain)
	}
}
