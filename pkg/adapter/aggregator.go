package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/vigilops/vigil/pkg/config"
	"github.com/vigilops/vigil/pkg/models"
)

// truncationMarker is appended to string values cut by the byte cap.
const truncationMarker = "\n...[truncated]"

// ContextMasker redacts sensitive values from gathered context before it is
// persisted or sent to the model.
type ContextMasker interface {
	MaskContextData(adapterName string, data map[string]any) map[string]any
}

// Aggregator fans a context fetch out to every registered adapter
// concurrently and assembles the results into bundles. One slow or broken
// adapter never blocks the others: each fetch runs under its own timeout
// and failures are recorded in the bundle instead of propagated.
type Aggregator struct {
	registry *Registry
	configs  map[string]*config.AdapterConfig
	masker   ContextMasker
}

// NewAggregator creates an aggregator. configs supplies the per-adapter
// fetch timeout and byte cap; masker may be nil to disable redaction.
func NewAggregator(registry *Registry, configs map[string]*config.AdapterConfig, masker ContextMasker) *Aggregator {
	if registry == nil {
		panic("registry is required")
	}
	return &Aggregator{
		registry: registry,
		configs:  configs,
		masker:   masker,
	}
}

// Gather collects context from all registered adapters. The result always
// holds one bundle per adapter, ordered by adapter name; adapters that
// failed or timed out contribute a bundle with OK false and the error
// message, keeping whatever partial data they managed to return.
func (g *Aggregator) Gather(ctx context.Context, params ContextParams) []models.ContextBundle {
	adapters := g.registry.All()
	bundles := make([]models.ContextBundle, len(adapters))

	var wg sync.WaitGroup
	for i, a := range adapters {
		wg.Add(1)
		go func(i int, a Adapter) {
			defer wg.Done()
			bundles[i] = g.fetchOne(ctx, a, params)
		}(i, a)
	}
	wg.Wait()

	sort.Slice(bundles, func(i, j int) bool {
		return bundles[i].AdapterName < bundles[j].AdapterName
	})
	return bundles
}

// fetchOne runs a single adapter fetch under its configured timeout and
// post-processes the result: masking first, then the byte cap. A panic in
// an adapter is contained here so the fan-out survives a broken plugin.
func (g *Aggregator) fetchOne(ctx context.Context, a Adapter, params ContextParams) (bundle models.ContextBundle) {
	timeout, maxBytes := g.limitsFor(a.Name())

	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Adapter panicked during context fetch", "adapter", a.Name(), "panic", r)
			bundle = models.ContextBundle{
				AdapterName: a.Name(),
				OK:          false,
				Error:       fmt.Sprintf("adapter panic: %v", r),
				DurationMs:  time.Since(start).Milliseconds(),
			}
		}
	}()

	var data map[string]any
	err := Retry(fetchCtx, DefaultRetryConfig(), "fetch "+a.Name(), func(ctx context.Context) error {
		d, fetchErr := a.FetchContext(ctx, params)
		data = d
		return fetchErr
	})
	elapsed := time.Since(start).Milliseconds()

	if g.masker != nil && len(data) > 0 {
		data = g.masker.MaskContextData(a.Name(), data)
	}

	data, truncated := capContextData(data, maxBytes)

	bundle = models.ContextBundle{
		AdapterName: a.Name(),
		OK:          err == nil,
		Data:        data,
		DurationMs:  elapsed,
		Truncated:   truncated,
	}
	if err != nil {
		bundle.Error = err.Error()
		slog.Warn("Context fetch failed", "adapter", a.Name(), "duration_ms", elapsed, "error", err)
	}
	return bundle
}

func (g *Aggregator) limitsFor(name string) (time.Duration, int) {
	timeout := 10 * time.Second
	maxBytes := 64 * 1024
	if cfg, ok := g.configs[name]; ok && cfg != nil {
		if cfg.FetchTimeout > 0 {
			timeout = cfg.FetchTimeout
		}
		if cfg.MaxContextBytes > 0 {
			maxBytes = cfg.MaxContextBytes
		}
	}
	return timeout, maxBytes
}

// capContextData shrinks data under maxBytes of serialized JSON. The
// largest values are cut first: strings are truncated in place, anything
// else is dropped whole. Returns the (possibly rebuilt) map and whether
// any value was cut.
func capContextData(data map[string]any, maxBytes int) (map[string]any, bool) {
	if len(data) == 0 || maxBytes <= 0 {
		return data, false
	}
	if marshaledSize(data) <= maxBytes {
		return data, false
	}

	// Work on a copy so callers holding the original map are unaffected.
	capped := make(map[string]any, len(data))
	for k, v := range data {
		capped[k] = v
	}

	keys := make([]string, 0, len(capped))
	for k := range capped {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		si, sj := marshaledSize(capped[keys[i]]), marshaledSize(capped[keys[j]])
		if si != sj {
			return si > sj
		}
		return keys[i] < keys[j]
	})

	// Marker cost in serialized form, not raw bytes: the newline escapes
	// to two bytes inside a JSON string.
	markerCost := marshaledSize(truncationMarker) - 2

	truncated := false
	for _, k := range keys {
		if marshaledSize(capped) <= maxBytes {
			break
		}
		overshoot := marshaledSize(capped) - maxBytes
		if s, ok := capped[k].(string); ok {
			keep := len(s) - overshoot - markerCost
			if keep > 0 {
				capped[k] = s[:keep] + truncationMarker
				truncated = true
				continue
			}
		}
		delete(capped, k)
		truncated = true
	}

	// JSON escaping can leave a residue after string cuts; drop values
	// until the cap holds.
	for _, k := range keys {
		if marshaledSize(capped) <= maxBytes {
			break
		}
		if _, ok := capped[k]; ok {
			delete(capped, k)
			truncated = true
		}
	}
	return capped, truncated
}

func marshaledSize(v any) int {
	b, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(b)
}
