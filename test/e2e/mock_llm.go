package e2e

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/vigilops/vigil/pkg/llm"
)

// LLMScriptEntry defines a single scripted completion.
type LLMScriptEntry struct {
	// Response content (exactly one of Text or Error should be set)
	Text  string
	Error error

	// Test control
	BlockUntilCancelled bool            // Block Complete() until ctx is cancelled
	WaitCh              <-chan struct{} // Block Complete() until closed, then return normally
	OnBlock             chan<- struct{} // Notified when Complete() enters its blocking path
}

// ScriptedLLMClient implements llm.Client with a pre-scripted response
// queue. Entries are consumed in call order; running past the end of the
// script fails the call loudly so a test never silently reuses a response.
type ScriptedLLMClient struct {
	mu       sync.Mutex
	entries  []LLMScriptEntry
	index    int
	captured []llm.Request
}

// NewScriptedLLMClient creates an empty scripted client.
func NewScriptedLLMClient() *ScriptedLLMClient {
	return &ScriptedLLMClient{}
}

// Add appends one scripted entry.
func (c *ScriptedLLMClient) Add(entry LLMScriptEntry) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(c.entries, entry)
}

// AddText appends a plain-text completion.
func (c *ScriptedLLMClient) AddText(text string) {
	c.Add(LLMScriptEntry{Text: text})
}

// AddError appends a failing completion.
func (c *ScriptedLLMClient) AddError(err error) {
	c.Add(LLMScriptEntry{Error: err})
}

// Complete implements llm.Client.
func (c *ScriptedLLMClient) Complete(ctx context.Context, req llm.Request) (*llm.Response, error) {
	c.mu.Lock()
	c.captured = append(c.captured, req)
	if c.index >= len(c.entries) {
		n := c.index
		c.mu.Unlock()
		return nil, fmt.Errorf("scripted llm client: call %d exceeds script length %d", n+1, len(c.entries))
	}
	entry := c.entries[c.index]
	c.index++
	c.mu.Unlock()

	if entry.BlockUntilCancelled {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if entry.WaitCh != nil {
		if entry.OnBlock != nil {
			entry.OnBlock <- struct{}{}
		}
		select {
		case <-entry.WaitCh:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	if entry.Error != nil {
		return nil, entry.Error
	}
	return &llm.Response{
		Content:    entry.Text,
		Model:      "scripted-test-model",
		TokensUsed: len(entry.Text) / 4,
		Latency:    time.Millisecond,
	}, nil
}

// CapturedRequests returns a snapshot of every request the client has seen.
func (c *ScriptedLLMClient) CapturedRequests() []llm.Request {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]llm.Request, len(c.captured))
	copy(out, c.captured)
	return out
}

// Calls returns how many completions have been requested.
func (c *ScriptedLLMClient) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.captured)
}
