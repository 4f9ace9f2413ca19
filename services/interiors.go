package services

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/y345-git/Campus-Navigation/models"
	"github.com/y345-git/Campus-Navigation/routing"
	"github.com/y345-git/Campus-Navigation/store"
)

const interiorCacheSize = 128

// interiorEntry pairs a built interior graph with the document it was built
// from (the document is needed for entrance and room lookups).
type interiorEntry struct {
	graph *routing.Graph
	doc   *models.InteriorDocument
}

// InteriorCache lazily builds interior graphs and caches them per building.
// Loads are serialized per building key so concurrent first requests do not
// rebuild the same graph twice, and eviction never races a build in progress.
type InteriorCache struct {
	store *store.InteriorStore
	log   *zap.Logger

	mu    sync.Mutex
	locks map[string]*sync.Mutex
	cache *lru.Cache[string, *interiorEntry]
}

func NewInteriorCache(st *store.InteriorStore, log *zap.Logger) *InteriorCache {
	cache, _ := lru.New[string, *interiorEntry](interiorCacheSize)
	return &InteriorCache{
		store: st,
		log:   log,
		locks: make(map[string]*sync.Mutex),
		cache: cache,
	}
}

func (c *InteriorCache) lockFor(buildingID string) *sync.Mutex {
	c.mu.Lock()
	defer c.mu.Unlock()
	l, ok := c.locks[buildingID]
	if !ok {
		l = &sync.Mutex{}
		c.locks[buildingID] = l
	}
	return l
}

// Get returns the cached entry for a building, building it from the interior
// document on first use. buildingName seeds the default document when no
// interior has been configured yet.
func (c *InteriorCache) Get(buildingID, buildingName string) (*interiorEntry, error) {
	l := c.lockFor(buildingID)
	l.Lock()
	defer l.Unlock()

	if entry, ok := c.cache.Get(buildingID); ok {
		return entry, nil
	}

	doc, err := c.store.Load(buildingID, buildingName)
	if err != nil {
		return nil, err
	}
	entry := &interiorEntry{
		graph: routing.BuildInteriorGraph(buildingID, doc),
		doc:   doc,
	}
	c.cache.Add(buildingID, entry)
	c.log.Debug("built interior graph",
		zap.String("building", buildingID),
		zap.Int("nodes", entry.graph.NodeCount()),
		zap.Int("edges", entry.graph.EdgeCount()))
	return entry, nil
}

// Invalidate evicts one building's graph; the next query rebuilds it from
// the stored document.
func (c *InteriorCache) Invalidate(buildingID string) {
	l := c.lockFor(buildingID)
	l.Lock()
	defer l.Unlock()
	c.cache.Remove(buildingID)
}

// InvalidateAll drops every cached interior graph.
func (c *InteriorCache) InvalidateAll() {
	c.cache.Purge()
}
