package assemble

import (
	"fmt"
	"sort"

	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/names"
)

// ships groups mods under their base names, attaches blueprints and validates every ship.
func (r *build) ships(blueprints []models.Blueprint, mods []*models.ShipMod) (map[string]*models.Ship, error) {
	ships := make(map[string]*models.Ship)
	get := func(name string) *models.Ship {
		ship, ok := ships[name]
		if !ok {
			ship = &models.Ship{Name: name, Mods: []models.ShipMod{}}
			ships[name] = ship
		}
		return ship
	}

	for _, bp := range blueprints {
		ship := get(bp.ShipName)
		if ship.Blueprint != nil {
			err := &reconcile.DuplicateError{Source: SourceBlueprint, Key: bp.ShipName}
			if err := r.fail(bp.ShipName, err); err != nil {
				return nil, err
			}
			continue
		}
		ship.Blueprint = &bp
	}

	for _, mod := range mods {
		ship := get(names.BaseName(mod.Name))
		ship.Mods = append(ship.Mods, *mod)
	}

	// Validate in name order so a snapshot always fails on the same ship.
	order := make([]string, 0, len(ships))
	for name := range ships {
		order = append(order, name)
	}
	sort.Strings(order)

	for _, name := range order {
		ship := ships[name]
		sort.SliceStable(ship.Mods, func(i, j int) bool {
			return ship.Mods[i].Stage < ship.Mods[j].Stage
		})
		if err := validateShip(ship); err != nil {
			if err := r.fail(name, err); err != nil {
				return nil, err
			}
			delete(ships, name)
		}
	}
	return ships, nil
}

// validateShip checks a ship whose mods are sorted by stage.
func validateShip(ship *models.Ship) error {
	if ship.Blueprint != nil && ship.Blueprint.ShipName != ship.Name {
		return &InvariantError{
			Ship:   ship.Name,
			Reason: fmt.Sprintf("blueprint is for %q", ship.Blueprint.ShipName),
		}
	}

	for i, mod := range ship.Mods {
		if i > 0 && mod.Stage <= ship.Mods[i-1].Stage {
			return &InvariantError{
				Ship:   ship.Name,
				Mod:    mod.Name,
				Reason: fmt.Sprintf("stage %d already taken by %q", mod.Stage, ship.Mods[i-1].Name),
			}
		}
		if base := names.BaseName(mod.Name); base != ship.Name {
			return &InvariantError{Ship: ship.Name, Mod: mod.Name, Reason: fmt.Sprintf("resolves to ship %q", base)}
		}
		if mod.Name == ship.Name && mod.Stage != 0 {
			return &InvariantError{Ship: ship.Name, Mod: mod.Name, Reason: fmt.Sprintf("base name at stage %d", mod.Stage)}
		}
		if mod.Stage == 0 && mod.Name != ship.Name {
			return &InvariantError{Ship: ship.Name, Mod: mod.Name, Reason: "stage 0 under a different name"}
		}
	}
	return nil
}
