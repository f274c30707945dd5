package response

import (
	"sync"
	"testing"
	"time"

	"github.com/seisqc/algo-seis/seis"
)

type countingProvider struct {
	mu        sync.Mutex
	respCalls int
	sensCalls int
}

func (c *countingProvider) Response(_ seis.Channel, _ time.Time, freqs []float64) ([]complex128, error) {
	c.mu.Lock()
	c.respCalls++
	c.mu.Unlock()

	out := make([]complex128, len(freqs))
	for i := range out {
		out[i] = 1
	}
	return out, nil
}

func (c *countingProvider) Sensitivity(seis.Channel, time.Time) (float64, error) {
	c.mu.Lock()
	c.sensCalls++
	c.mu.Unlock()
	return 42, nil
}

func TestCacheMemoizesResponse(t *testing.T) {
	inner := &countingProvider{}
	cache := NewCache(inner)
	freqs := []float64{1, 2, 4}

	for i := 0; i < 3; i++ {
		if _, err := cache.Response(testChannel, testEpoch, freqs); err != nil {
			t.Fatalf("Response() error = %v", err)
		}
	}

	if inner.respCalls != 1 {
		t.Fatalf("underlying calls = %d, want 1", inner.respCalls)
	}
}

func TestCacheDistinguishesAxes(t *testing.T) {
	inner := &countingProvider{}
	cache := NewCache(inner)

	if _, err := cache.Response(testChannel, testEpoch, []float64{1, 2, 4}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}
	if _, err := cache.Response(testChannel, testEpoch, []float64{1, 2, 4, 8}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}

	if inner.respCalls != 2 {
		t.Fatalf("underlying calls = %d, want 2", inner.respCalls)
	}
}

func TestCacheDistinguishesChannels(t *testing.T) {
	inner := &countingProvider{}
	cache := NewCache(inner)
	other := seis.Channel{Network: "XX", Station: "OTH", Channel: "HHZ"}

	if _, err := cache.Response(testChannel, testEpoch, []float64{1, 2}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}
	if _, err := cache.Response(other, testEpoch, []float64{1, 2}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}

	if inner.respCalls != 2 {
		t.Fatalf("underlying calls = %d, want 2", inner.respCalls)
	}
}

func TestCacheDistinguishesEpochs(t *testing.T) {
	inner := &countingProvider{}
	cache := NewCache(inner)
	later := testEpoch.Add(24 * time.Hour)

	if _, err := cache.Response(testChannel, testEpoch, []float64{1, 2}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}
	if _, err := cache.Response(testChannel, later, []float64{1, 2}); err != nil {
		t.Fatalf("Response() error = %v", err)
	}

	if inner.respCalls != 2 {
		t.Fatalf("underlying calls = %d, want 2", inner.respCalls)
	}
}

func TestCacheMemoizesSensitivity(t *testing.T) {
	inner := &countingProvider{}
	cache := NewCache(inner)

	for i := 0; i < 3; i++ {
		s, err := cache.Sensitivity(testChannel, testEpoch)
		if err != nil {
			t.Fatalf("Sensitivity() error = %v", err)
		}
		if s != 42 {
			t.Fatalf("Sensitivity() = %v, want 42", s)
		}
	}

	if inner.sensCalls != 1 {
		t.Fatalf("underlying calls = %d, want 1", inner.sensCalls)
	}
}

func TestCacheSensitivityUnsupported(t *testing.T) {
	cache := NewCache(respOnly{})
	if _, err := cache.Sensitivity(testChannel, testEpoch); err == nil {
		t.Fatal("expected error for provider without sensitivity")
	}
}

func TestCacheConcurrentAccess(t *testing.T) {
	cache := NewCache(&countingProvider{})
	freqs := []float64{1, 2, 4, 8}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if _, err := cache.Response(testChannel, testEpoch, freqs); err != nil {
					t.Errorf("Response() error = %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
