package assemble

import (
	"iter"
	"sort"

	"ship-registry/feature/fleet/models"
)

// Collection is the reconciled set of ships of one snapshot, keyed by base name.
// It is never modified after Build returns; the ships it hands out must be
// treated as read-only.
type Collection struct {
	ships map[string]*models.Ship
	names []string
	// byMod maps a display name to the base name of its ship.
	byMod map[string]string
}

func newCollection(ships map[string]*models.Ship) *Collection {
	c := &Collection{
		ships: ships,
		names: make([]string, 0, len(ships)),
		byMod: make(map[string]string),
	}
	for name, ship := range ships {
		c.names = append(c.names, name)
		for _, mod := range ship.Mods {
			c.byMod[mod.Name] = name
		}
	}
	sort.Strings(c.names)
	return c
}

// Get returns the ship with base name name.
func (c *Collection) Get(name string) (*models.Ship, bool) {
	ship, ok := c.ships[name]
	return ship, ok
}

// Lookup resolves any display name to its ship and stage record.
func (c *Collection) Lookup(displayName string) (*models.Ship, *models.ShipMod, bool) {
	name, ok := c.byMod[displayName]
	if !ok {
		return nil, nil, false
	}
	ship := c.ships[name]
	for i := range ship.Mods {
		if ship.Mods[i].Name == displayName {
			return ship, &ship.Mods[i], true
		}
	}
	return nil, nil, false
}

// Names returns the base names in ascending order.
func (c *Collection) Names() []string {
	return append([]string(nil), c.names...)
}

// Len returns the number of ships.
func (c *Collection) Len() int {
	return len(c.ships)
}

// Ships yields every ship in base name order.
func (c *Collection) Ships() iter.Seq[*models.Ship] {
	return func(yield func(*models.Ship) bool) {
		for _, name := range c.names {
			if !yield(c.ships[name]) {
				return
			}
		}
	}
}

// Mods yields every stage record of every ship, ships in base name order and
// stages ascending. Each call starts a fresh traversal.
func (c *Collection) Mods() iter.Seq[*models.ShipMod] {
	return func(yield func(*models.ShipMod) bool) {
		for ship := range c.Ships() {
			for i := range ship.Mods {
				if !yield(&ship.Mods[i]) {
					return
				}
			}
		}
	}
}
