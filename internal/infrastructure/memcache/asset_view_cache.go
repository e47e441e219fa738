package memcache

import (
	"sync"
	"time"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
)

// AssetViewCache cache en memoria de respuestas de listado, particionado por
// organización. Un import o un alta manual invalidan la partición completa
// del propietario; no hay invalidación por clave fina.
type AssetViewCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]map[string]cacheEntry
}

type cacheEntry struct {
	value   *dto.AssetListResponse
	expires time.Time
}

// NewAssetViewCache construye la cache con el TTL dado.
func NewAssetViewCache(ttl time.Duration) *AssetViewCache {
	return &AssetViewCache{
		ttl:     ttl,
		entries: make(map[string]map[string]cacheEntry),
	}
}

// Get devuelve la respuesta cacheada para (owner, key) si existe y no expiró.
func (c *AssetViewCache) Get(ownerID, key string) (*dto.AssetListResponse, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	owner, ok := c.entries[ownerID]
	if !ok {
		return nil, false
	}
	e, ok := owner[key]
	if !ok || time.Now().After(e.expires) {
		return nil, false
	}
	return e.value, true
}

// Set guarda la respuesta para (owner, key).
func (c *AssetViewCache) Set(ownerID, key string, v *dto.AssetListResponse) {
	c.mu.Lock()
	defer c.mu.Unlock()
	owner, ok := c.entries[ownerID]
	if !ok {
		owner = make(map[string]cacheEntry)
		c.entries[ownerID] = owner
	}
	owner[key] = cacheEntry{value: v, expires: time.Now().Add(c.ttl)}
}

// InvalidateOwner descarta todas las vistas cacheadas de una organización.
func (c *AssetViewCache) InvalidateOwner(ownerID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, ownerID)
}
