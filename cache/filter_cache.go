package filter_cache

import (
	"sync"
	"time"

	"github.com/Vahan-Bazar-17/Vahan-Bazzar-XL0165/models"
)

const TTL = 5 * time.Minute

// ── Browse filter metadata cache ─────────────────────────────────────────────
// Stores the distinct brand/category/fuel-type lists backing the browse
// sidebar so every page load doesn't hit three distinct() queries.

type metaEntry struct {
	meta      models.FilterMetadata
	fetchedAt time.Time
}

var (
	metaMu    sync.RWMutex
	metaCache *metaEntry
)

func GetMetadata() (models.FilterMetadata, bool) {
	metaMu.RLock()
	defer metaMu.RUnlock()
	if metaCache != nil && time.Since(metaCache.fetchedAt) < TTL {
		return metaCache.meta, true
	}
	return models.FilterMetadata{}, false
}

func SetMetadata(meta models.FilterMetadata) {
	metaMu.Lock()
	defer metaMu.Unlock()
	metaCache = &metaEntry{meta: meta, fetchedAt: time.Now()}
}

// ── Invalidate (call on any vehicle create/update/delete) ────────────────────

func Invalidate() {
	metaMu.Lock()
	metaCache = nil
	metaMu.Unlock()
}
