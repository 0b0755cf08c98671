// Package fleet provides short-lived caching for vehicle lookups.
package fleet

import (
	"strings"
	"sync"
	"time"

	"github.com/cavalaria/backend/internal/models"
)

// Cache is a read-through cache for vehicle lookups.
//
// Document generation and order enrichment hit the same few vehicles
// repeatedly within seconds. The cache avoids those redundant reads.
// It is owned by whoever creates it and passed in explicitly, callers
// invalidate it when they change vehicle data.
type Cache struct {
	mu      sync.Mutex
	ttl     time.Duration
	byTag   map[string]entry
	byPlate map[string]entry
}

type entry struct {
	vehicle   models.Vehicle
	fetchedAt time.Time
}

func NewCache(ttl time.Duration) *Cache {
	return &Cache{
		ttl:     ttl,
		byTag:   make(map[string]entry),
		byPlate: make(map[string]entry),
	}
}

// ByTag returns the vehicle with the registration tag.
func (c *Cache) ByTag(tag string) (models.Vehicle, error) {
	tag = strings.TrimSpace(tag)

	c.mu.Lock()
	cached, ok := c.byTag[tag]
	c.mu.Unlock()

	if ok && time.Since(cached.fetchedAt) < c.ttl {
		return cached.vehicle, nil
	}

	var vehicle models.Vehicle
	err := models.DB.Where("registration_tag = ?", tag).First(&vehicle).Error
	if err != nil {
		return models.Vehicle{}, err
	}

	c.mu.Lock()
	c.byTag[tag] = entry{vehicle: vehicle, fetchedAt: time.Now()}
	c.mu.Unlock()

	return vehicle, nil
}

// ByPlate returns the vehicle with the plate.
func (c *Cache) ByPlate(plate string) (models.Vehicle, error) {
	plate = strings.ToUpper(strings.TrimSpace(plate))

	c.mu.Lock()
	cached, ok := c.byPlate[plate]
	c.mu.Unlock()

	if ok && time.Since(cached.fetchedAt) < c.ttl {
		return cached.vehicle, nil
	}

	var vehicle models.Vehicle
	err := models.DB.Where("plate = ?", plate).First(&vehicle).Error
	if err != nil {
		return models.Vehicle{}, err
	}

	c.mu.Lock()
	c.byPlate[plate] = entry{vehicle: vehicle, fetchedAt: time.Now()}
	c.mu.Unlock()

	return vehicle, nil
}

// Invalidate drops all cached entries. Callers that change vehicle data
// call this so later lookups see their change.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.byTag = make(map[string]entry)
	c.byPlate = make(map[string]entry)
}
