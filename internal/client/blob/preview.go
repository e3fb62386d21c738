package blob

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/sachink160/multitool-client/internal/client/client"
	"github.com/sachink160/multitool-client/internal/logging"
)

// FetchFunc downloads the blob previewing the entity with the given id.
type FetchFunc func(ctx context.Context, id string) (client.Blob, error)

const fetchConcurrency = 4

// PreviewSet owns the preview URLs of the currently displayed list.
//
// Each Load supersedes the previous one: its URLs are revoked before new
// downloads start, and downloads finishing after they were superseded,
// cancelled or closed are discarded without creating a URL.
type PreviewSet struct {
	reg    *Registry
	fetch  FetchFunc
	logger logging.Logger

	mu     sync.Mutex
	gen    uint64
	urls   map[string]string
	closed bool
}

func NewPreviewSet(reg *Registry, fetch FetchFunc, logger logging.Logger) *PreviewSet {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &PreviewSet{reg: reg, fetch: fetch, logger: logger, urls: make(map[string]string)}
}

// Load replaces the set with previews for ids. Individual download
// failures are logged and leave that entity without a preview.
func (p *PreviewSet) Load(ctx context.Context, ids []string) {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.gen++
	gen := p.gen
	p.revokeLocked()
	p.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(fetchConcurrency)

	for _, id := range ids {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			b, err := p.fetch(gctx, id)
			if err != nil {
				p.logger.Warn(ctx, "preview download failed", "id", id, "error", err)
				return nil
			}
			p.store(gen, id, b)
			return nil
		})
	}
	_ = g.Wait()
}

func (p *PreviewSet) store(gen uint64, id string, b client.Blob) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed || gen != p.gen {
		return
	}
	if old, ok := p.urls[id]; ok {
		p.reg.Revoke(old)
	}
	p.urls[id] = p.reg.Create(b)
}

// URL returns the preview URL for id, if one is loaded.
func (p *PreviewSet) URL(id string) (string, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	u, ok := p.urls[id]
	return u, ok
}

// Len returns the number of previews currently held.
func (p *PreviewSet) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.urls)
}

// Cancel discards the results of any in-flight Load. Previews already
// built are kept.
func (p *PreviewSet) Cancel() {
	p.mu.Lock()
	p.gen++
	p.mu.Unlock()
}

// Clear cancels in-flight loads and revokes every preview. The set stays
// usable.
func (p *PreviewSet) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.revokeLocked()
}

// Close cancels in-flight loads and revokes every preview. The set cannot
// be reused.
func (p *PreviewSet) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.gen++
	p.closed = true
	p.revokeLocked()
}

func (p *PreviewSet) revokeLocked() {
	for id, u := range p.urls {
		p.reg.Revoke(u)
		delete(p.urls, id)
	}
}
