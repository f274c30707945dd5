package response

import (
	"fmt"
	"sync"
	"time"

	"github.com/seisqc/algo-seis/seis"
)

type respKey struct {
	ch    seis.Channel
	epoch int64
	nbins int
	f0    float64
	f1    float64
}

type sensKey struct {
	ch    seis.Channel
	epoch int64
}

// Cache memoizes response and sensitivity lookups of an underlying Provider.
// Resolving a response can be expensive (remote metadata, pole-zero
// evaluation per bin), and batch extraction asks for the same channel,
// epoch, and frequency axis once per segment. Safe for concurrent use.
type Cache struct {
	p Provider

	mu   sync.Mutex
	resp map[respKey][]complex128
	sens map[sensKey]float64
}

// NewCache wraps p with memoization. Only successful lookups are cached.
func NewCache(p Provider) *Cache {
	return &Cache{
		p:    p,
		resp: make(map[respKey][]complex128),
		sens: make(map[sensKey]float64),
	}
}

// Response implements Provider. The cache key includes the metadata epoch
// and the frequency axis endpoints and bin count, so distinct FFT sizes and
// epochs get distinct entries.
func (c *Cache) Response(ch seis.Channel, at time.Time, freqs []float64) ([]complex128, error) {
	key := respKey{ch: ch, epoch: at.Unix(), nbins: len(freqs)}
	if len(freqs) > 0 {
		key.f0 = freqs[0]
		key.f1 = freqs[len(freqs)-1]
	}

	c.mu.Lock()
	cached, ok := c.resp[key]
	c.mu.Unlock()

	if ok {
		return cached, nil
	}

	resp, err := c.p.Response(ch, at, freqs)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.resp[key] = resp
	c.mu.Unlock()

	return resp, nil
}

// Sensitivity implements SensitivityProvider, forwarding to the underlying
// provider when it supports sensitivity lookups.
func (c *Cache) Sensitivity(ch seis.Channel, at time.Time) (float64, error) {
	key := sensKey{ch: ch, epoch: at.Unix()}

	c.mu.Lock()
	cached, ok := c.sens[key]
	c.mu.Unlock()

	if ok {
		return cached, nil
	}

	sp, ok := c.p.(SensitivityProvider)
	if !ok {
		return 0, fmt.Errorf("%w: provider cannot resolve sensitivity for %s", ErrResponseLookup, ch)
	}

	sens, err := sp.Sensitivity(ch, at)
	if err != nil {
		return 0, err
	}

	c.mu.Lock()
	c.sens[key] = sens
	c.mu.Unlock()

	return sens, nil
}
