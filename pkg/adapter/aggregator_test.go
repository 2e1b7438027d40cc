package adapter

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vigilops/vigil/pkg/config"
)

type upperMasker struct{}

func (upperMasker) MaskContextData(adapterName string, data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if s, ok := v.(string); ok {
			out[k] = strings.ToUpper(s)
			continue
		}
		out[k] = v
	}
	return out
}

func TestAggregatorGathersFromAllAdapters(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "kubernetes",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			return map[string]any{"pods": "3 running"}, nil
		},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		name: "prometheus",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			return map[string]any{"cpu": "87%"}, errors.New("partial scrape")
		},
	}))

	g := NewAggregator(r, nil, nil)
	bundles := g.Gather(context.Background(), ContextParams{Service: "payments"})

	require.Len(t, bundles, 2)

	// Sorted by adapter name regardless of completion order.
	assert.Equal(t, "kubernetes", bundles[0].AdapterName)
	assert.True(t, bundles[0].OK)
	assert.Equal(t, map[string]any{"pods": "3 running"}, bundles[0].Data)
	assert.Empty(t, bundles[0].Error)

	assert.Equal(t, "prometheus", bundles[1].AdapterName)
	assert.False(t, bundles[1].OK)
	assert.Equal(t, "partial scrape", bundles[1].Error)
	// Partial data survives alongside the error.
	assert.Equal(t, map[string]any{"cpu": "87%"}, bundles[1].Data)
}

func TestAggregatorHonorsFetchTimeout(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "runbook",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))

	configs := map[string]*config.AdapterConfig{
		"runbook": {FetchTimeout: 20 * time.Millisecond},
	}

	g := NewAggregator(r, configs, nil)

	start := time.Now()
	bundles := g.Gather(context.Background(), ContextParams{})
	elapsed := time.Since(start)

	require.Len(t, bundles, 1)
	assert.False(t, bundles[0].OK)
	assert.Contains(t, bundles[0].Error, "context deadline exceeded")
	assert.Less(t, elapsed, 5*time.Second)
}

func TestAggregatorSlowAdapterDoesNotBlockOthers(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "slow",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			<-ctx.Done()
			return nil, ctx.Err()
		},
	}))
	require.NoError(t, r.Register(&fakeAdapter{
		name: "fast",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			return map[string]any{"ok": "yes"}, nil
		},
	}))

	configs := map[string]*config.AdapterConfig{
		"slow": {FetchTimeout: 50 * time.Millisecond},
		"fast": {FetchTimeout: 5 * time.Second},
	}

	g := NewAggregator(r, configs, nil)
	bundles := g.Gather(context.Background(), ContextParams{})

	require.Len(t, bundles, 2)
	assert.Equal(t, "fast", bundles[0].AdapterName)
	assert.True(t, bundles[0].OK)
	assert.Equal(t, "slow", bundles[1].AdapterName)
	assert.False(t, bundles[1].OK)
}

func TestAggregatorAppliesMasking(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "kubernetes",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			return map[string]any{"logs": "secret token abc"}, nil
		},
	}))

	g := NewAggregator(r, nil, upperMasker{})
	bundles := g.Gather(context.Background(), ContextParams{})

	require.Len(t, bundles, 1)
	assert.Equal(t, "SECRET TOKEN ABC", bundles[0].Data["logs"])
}

func TestAggregatorTruncatesOversizedContext(t *testing.T) {
	big := strings.Repeat("x", 4096)
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "kubernetes",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			return map[string]any{"logs": big, "pods": "2 running"}, nil
		},
	}))

	configs := map[string]*config.AdapterConfig{
		"kubernetes": {MaxContextBytes: 512},
	}

	g := NewAggregator(r, configs, nil)
	bundles := g.Gather(context.Background(), ContextParams{})

	require.Len(t, bundles, 1)
	assert.True(t, bundles[0].OK)
	assert.True(t, bundles[0].Truncated)
	assert.LessOrEqual(t, marshaledSize(bundles[0].Data), 512)

	logs, _ := bundles[0].Data["logs"].(string)
	assert.Contains(t, logs, truncationMarker)
	// The small value is untouched.
	assert.Equal(t, "2 running", bundles[0].Data["pods"])
}

func TestAggregatorContainsAdapterPanic(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(&fakeAdapter{
		name: "broken",
		fetchFunc: func(ctx context.Context, params ContextParams) (map[string]any, error) {
			panic("nil map write")
		},
	}))
	require.NoError(t, r.Register(&fakeAdapter{name: "healthy"}))

	g := NewAggregator(r, nil, nil)
	bundles := g.Gather(context.Background(), ContextParams{})

	require.Len(t, bundles, 2)
	assert.Equal(t, "broken", bundles[0].AdapterName)
	assert.False(t, bundles[0].OK)
	assert.Contains(t, bundles[0].Error, "adapter panic")
	assert.True(t, bundles[1].OK)
}

func TestCapContextData(t *testing.T) {
	t.Run("under cap unchanged", func(t *testing.T) {
		data := map[string]any{"a": "small"}
		out, truncated := capContextData(data, 1024)
		assert.False(t, truncated)
		assert.Equal(t, data, out)
	})

	t.Run("zero cap disables", func(t *testing.T) {
		data := map[string]any{"a": strings.Repeat("x", 100)}
		_, truncated := capContextData(data, 0)
		assert.False(t, truncated)
	})

	t.Run("largest string cut first", func(t *testing.T) {
		data := map[string]any{
			"big":   strings.Repeat("a", 1000),
			"small": "keep me",
		}
		out, truncated := capContextData(data, 300)
		assert.True(t, truncated)
		assert.LessOrEqual(t, marshaledSize(out), 300)
		assert.Equal(t, "keep me", out["small"])
	})

	t.Run("non-string values dropped when over cap", func(t *testing.T) {
		data := map[string]any{
			"events": []any{strings.Repeat("e", 200), strings.Repeat("f", 200)},
			"note":   "tiny",
		}
		out, truncated := capContextData(data, 60)
		assert.True(t, truncated)
		assert.LessOrEqual(t, marshaledSize(out), 60)
		assert.NotContains(t, out, "events")
	})

	t.Run("original map not mutated", func(t *testing.T) {
		big := strings.Repeat("z", 500)
		data := map[string]any{"logs": big}
		_, truncated := capContextData(data, 100)
		assert.True(t, truncated)
		assert.Equal(t, big, data["logs"])
	})
}
