package imaging

import (
	"strings"
	"sync"

	"github.com/google/uuid"
)

// PreviewPathPrefix is where preview references resolve on the HTTP surface.
const PreviewPathPrefix = "/api/previews/"

// Preview is a processed upload held in memory.
type Preview struct {
	Name string
	MIME string
	Data []byte
}

// PreviewCache maps ephemeral reference strings to processed upload bytes.
// Entries never persist: a restart invalidates every reference, just like an
// object URL expiring with its page session.
type PreviewCache struct {
	mu       sync.RWMutex
	previews map[string]Preview
}

// NewPreviewCache creates an empty preview cache.
func NewPreviewCache() *PreviewCache {
	return &PreviewCache{previews: map[string]Preview{}}
}

// Put stores a processed upload and returns its reference string, e.g.
// "/api/previews/5f3c…". The reference is what the product form submits as
// an image field.
func (c *PreviewCache) Put(name string, result *ProcessResult) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.previews[id] = Preview{Name: name, MIME: result.MIME, Data: result.Data}

	return PreviewPathPrefix + id
}

// Get resolves a reference or bare id to its preview.
func (c *PreviewCache) Get(ref string) (Preview, bool) {
	id := strings.TrimPrefix(ref, PreviewPathPrefix)

	c.mu.RLock()
	defer c.mu.RUnlock()
	preview, ok := c.previews[id]
	return preview, ok
}

// Remove drops a preview, e.g. when the admin discards a pending upload.
func (c *PreviewCache) Remove(ref string) {
	id := strings.TrimPrefix(ref, PreviewPathPrefix)

	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.previews, id)
}

// Len reports the number of cached previews.
func (c *PreviewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.previews)
}
