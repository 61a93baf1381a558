package store

import (
	"context"
	"fmt"

	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/models"

	"gorm.io/gorm"
)

const batchSize = 200

// Migrate creates or updates the export tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ShipRow{}, &ModRow{}); err != nil {
		return fmt.Errorf("failed to migrate export tables: %w", err)
	}
	return nil
}

// Rows flattens c into export rows tagged with snapshot.
func Rows(c *assemble.Collection, snapshot string) ([]ShipRow, []ModRow) {
	ships := make([]ShipRow, 0, c.Len())
	var mods []ModRow

	for ship := range c.Ships() {
		row := ShipRow{
			Name:              ship.Name,
			ShipType:          ship.ShipType(),
			Stages:            len(ship.Mods),
			HighestOwnedStage: ship.HighestOwnedStage(),
			Snapshot:          snapshot,
		}
		if ship.Blueprint != nil {
			row.Blueprints = ship.Blueprint.BlueprintTotalNum
			row.BlueprintsExpiring = ship.Blueprint.ExpiringThisMonth()
		}
		ships = append(ships, row)

		for _, mod := range ship.Mods {
			mods = append(mods, modRow(ship.Name, mod, snapshot))
		}
	}
	return ships, mods
}

func modRow(shipName string, mod models.ShipMod, snapshot string) ModRow {
	row := ModRow{
		ShipName:   shipName,
		Name:       mod.Name,
		Stage:      mod.Stage,
		InBook:     mod.Book != nil,
		InRoster:   mod.Roster != nil,
		InMarriage: mod.Marriage != nil,
		InWiki:     mod.Wiki != nil,
		Snapshot:   snapshot,
	}
	if mod.Book != nil {
		row.BookNo = mod.Book.BookNo
		row.AcquireNum = mod.Book.AcquireNum
		row.Variations = mod.Book.VariationNum
		row.Level = mod.Book.Lv
	}
	if mod.Roster != nil {
		row.Level = mod.Roster.Lv
		row.Stars = mod.Roster.StarNum
		row.Married = mod.Roster.Married
	}
	if mod.Marriage != nil {
		at := mod.Marriage.RegisteredAt
		row.MarriedAt = &at
		row.Married = true
	}
	return row
}

// Save replaces the exported snapshot with c in one transaction.
// It returns the number of ship and mod rows written.
func Save(ctx context.Context, db *gorm.DB, c *assemble.Collection, snapshot string) (int, int, error) {
	ships, mods := Rows(c, snapshot)

	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&ModRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear ship_mods: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&ShipRow{}).Error; err != nil {
			return fmt.Errorf("failed to clear ships: %w", err)
		}
		if len(ships) > 0 {
			if err := tx.CreateInBatches(ships, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert ships: %w", err)
			}
		}
		if len(mods) > 0 {
			if err := tx.CreateInBatches(mods, batchSize).Error; err != nil {
				return fmt.Errorf("failed to insert ship_mods: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, 0, err
	}
	return len(ships), len(mods), nil
}

// Count returns the number of exported ships and mods.
func Count(ctx context.Context, db *gorm.DB) (ships, mods int64, err error) {
	if err := db.WithContext(ctx).Model(&ShipRow{}).Count(&ships).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count ships: %w", err)
	}
	if err := db.WithContext(ctx).Model(&ModRow{}).Count(&mods).Error; err != nil {
		return 0, 0, fmt.Errorf("failed to count ship_mods: %w", err)
	}
	return ships, mods, nil
}
