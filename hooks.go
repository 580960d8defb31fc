package boosterconv

import (
	"sync"

	"github.com/fabric8-launcher/boosterconv/pkg/boosters"
	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Hook function types for conversion events
type (
	// FetchedHook is called after the catalog of an environment is read
	FetchedHook func(env boosters.Environment, count int)

	// DocumentWrittenHook is called after a document is written
	DocumentWrittenHook func(path string)

	// OrphanHook is called for every orphan record that is dropped
	OrphanHook func(err *errors.OrphanError)
)

// Hooks groups callbacks for WithHooks. Nil callbacks are skipped.
type Hooks struct {
	OnFetched         FetchedHook
	OnDocumentWritten DocumentWrittenHook
	OnOrphan          OrphanHook
}

// hooks manages event callbacks. Callbacks run synchronously on the
// converting goroutine.
type hooks struct {
	mu                sync.RWMutex
	onFetched         []FetchedHook
	onDocumentWritten []DocumentWrittenHook
	onOrphan          []OrphanHook
}

// newHooks creates a new hooks instance
func newHooks() *hooks {
	return &hooks{}
}

func (h *hooks) add(set Hooks) {
	if set.OnFetched != nil {
		h.OnFetched(set.OnFetched)
	}
	if set.OnDocumentWritten != nil {
		h.OnDocumentWritten(set.OnDocumentWritten)
	}
	if set.OnOrphan != nil {
		h.OnOrphan(set.OnOrphan)
	}
}

// OnFetched registers a callback for fetched catalogs
func (h *hooks) OnFetched(fn FetchedHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onFetched = append(h.onFetched, fn)
}

// OnDocumentWritten registers a callback for written documents
func (h *hooks) OnDocumentWritten(fn DocumentWrittenHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onDocumentWritten = append(h.onDocumentWritten, fn)
}

// OnOrphan registers a callback for dropped orphan records
func (h *hooks) OnOrphan(fn OrphanHook) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.onOrphan = append(h.onOrphan, fn)
}

func (h *hooks) fetched(env boosters.Environment, count int) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onFetched {
		fn(env, count)
	}
}

func (h *hooks) documentWritten(path string) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onDocumentWritten {
		fn(path)
	}
}

func (h *hooks) orphan(err *errors.OrphanError) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for _, fn := range h.onOrphan {
		fn(err)
	}
}
