package memcache_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acervotec/patrimonio-api/internal/application/dto"
	"github.com/acervotec/patrimonio-api/internal/infrastructure/memcache"
)

func listResp(offset int) *dto.AssetListResponse {
	return &dto.AssetListResponse{Page: dto.PageResponse{Limit: 20, Offset: offset}}
}

// TestCache_GetSetPorOrganizacion las entradas viven particionadas por
// organización: la misma clave en otra organización no colisiona.
func TestCache_GetSetPorOrganizacion(t *testing.T) {
	c := memcache.NewAssetViewCache(time.Minute)

	c.Set("org-1", "k", listResp(3))
	c.Set("org-2", "k", listResp(9))

	got, ok := c.Get("org-1", "k")
	require.True(t, ok)
	assert.Equal(t, 3, got.Page.Offset)

	got, ok = c.Get("org-2", "k")
	require.True(t, ok)
	assert.Equal(t, 9, got.Page.Offset)

	_, ok = c.Get("org-1", "otra")
	assert.False(t, ok)
}

// TestCache_InvalidateOwnerDescartaTodaLaParticion
func TestCache_InvalidateOwnerDescartaTodaLaParticion(t *testing.T) {
	c := memcache.NewAssetViewCache(time.Minute)
	c.Set("org-1", "a", listResp(1))
	c.Set("org-1", "b", listResp(2))
	c.Set("org-2", "a", listResp(3))

	c.InvalidateOwner("org-1")

	_, ok := c.Get("org-1", "a")
	assert.False(t, ok)
	_, ok = c.Get("org-1", "b")
	assert.False(t, ok)
	_, ok = c.Get("org-2", "a")
	assert.True(t, ok, "las demás organizaciones no se ven afectadas")
}

// TestCache_ExpiraPorTTL
func TestCache_ExpiraPorTTL(t *testing.T) {
	c := memcache.NewAssetViewCache(10 * time.Millisecond)
	c.Set("org-1", "k", listResp(1))

	_, ok := c.Get("org-1", "k")
	require.True(t, ok)

	time.Sleep(25 * time.Millisecond)
	_, ok = c.Get("org-1", "k")
	assert.False(t, ok)
}
