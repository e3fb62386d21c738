// Package blob holds downloaded binary payloads in memory behind opaque
// "blob:" URLs, and manages sets of previews whose lifetime follows the list
// they were built for.
package blob

import (
	"sync"

	"github.com/google/uuid"

	"github.com/sachink160/multitool-client/internal/client/client"
)

const urlPrefix = "blob:"

// Registry maps object URLs to blobs. Every URL stays live until revoked.
type Registry struct {
	mu      sync.Mutex
	objects map[string]client.Blob
}

func NewRegistry() *Registry {
	return &Registry{objects: make(map[string]client.Blob)}
}

// Create stores b and returns a new URL for it.
func (r *Registry) Create(b client.Blob) string {
	u := urlPrefix + uuid.NewString()
	r.mu.Lock()
	r.objects[u] = b
	r.mu.Unlock()
	return u
}

func (r *Registry) Get(u string) (client.Blob, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.objects[u]
	return b, ok
}

// Revoke releases u. Unknown URLs are ignored.
func (r *Registry) Revoke(u string) {
	r.mu.Lock()
	delete(r.objects, u)
	r.mu.Unlock()
}

// Live returns the number of unrevoked URLs.
func (r *Registry) Live() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.objects)
}
