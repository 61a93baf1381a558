package decode

import (
	"fmt"
	"io"
	"strings"

	"ship-registry/core/utils"
	"ship-registry/feature/fleet/models"

	"github.com/goccy/go-json"
)

// Source names used in decode errors.
const (
	SourceBook           = "picturebook"
	SourceRoster         = "roster"
	SourceMarriage       = "marriage"
	SourceWikiUnmodified = "wiki_unmodified"
	SourceWikiModified   = "wiki_modified"
	SourceBlueprints     = "blueprints"
)

func decodeArray[T any](r io.Reader, source string) ([]T, error) {
	var out []T
	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", source, err)
	}
	return out, nil
}

// Book decodes a picture-book export. Page 0 of every entry must hold 3 or 6 card slots.
func Book(r io.Reader) ([]models.BookEntry, error) {
	entries, err := decodeArray[models.BookEntry](r, SourceBook)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		e := &entries[i]
		e.ShipName = Name(e.ShipName)
		if e.ShipName == "" {
			return nil, &RecordError{Source: SourceBook, Index: i, Reason: "empty ship name"}
		}
		if len(e.CardList) == 0 {
			return nil, &RecordError{Source: SourceBook, Index: i, Reason: fmt.Sprintf("%q has no pages", e.ShipName)}
		}
		if slots := e.Slots(); slots != 3 && slots != 6 {
			return nil, &RecordError{
				Source: SourceBook,
				Index:  i,
				Reason: fmt.Sprintf("%q has %d card slots on page 0, want 3 or 6", e.ShipName, slots),
			}
		}
	}
	return entries, nil
}

// Roster decodes a character roster export.
func Roster(r io.Reader) ([]models.RosterEntry, error) {
	entries, err := decodeArray[models.RosterEntry](r, SourceRoster)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ShipName = Name(entries[i].ShipName)
		if entries[i].ShipName == "" {
			return nil, &RecordError{Source: SourceRoster, Index: i, Reason: "empty ship name"}
		}
	}
	return entries, nil
}

// Blueprints decodes a blueprint export.
func Blueprints(r io.Reader) ([]models.Blueprint, error) {
	entries, err := decodeArray[models.Blueprint](r, SourceBlueprints)
	if err != nil {
		return nil, err
	}
	for i := range entries {
		entries[i].ShipName = Name(entries[i].ShipName)
		if entries[i].ShipName == "" {
			return nil, &RecordError{Source: SourceBlueprints, Index: i, Reason: "empty ship name"}
		}
	}
	return entries, nil
}

// Wiki decodes one wiki ship table. Numeric columns may be numbers or
// numeric strings; modified marks rows of the modified-hull table.
func Wiki(r io.Reader, modified bool) ([]models.WikiEntry, error) {
	source := SourceWikiUnmodified
	if modified {
		source = SourceWikiModified
	}

	rows, err := decodeArray[map[string]any](r, source)
	if err != nil {
		return nil, err
	}

	entries := make([]models.WikiEntry, 0, len(rows))
	for i, row := range rows {
		name := Name(utils.ToString(row["name"]))
		if row["name"] == nil || name == "" {
			return nil, &RecordError{Source: source, Index: i, Reason: "empty ship name"}
		}
		entries = append(entries, models.WikiEntry{
			Name:     name,
			ShipType: text(row["type"]),
			Modified: modified,
			Remarks:  text(row["remarks"]),
			Stats: models.WikiStats{
				HP:           utils.ToInt(row["hp"]),
				Armor:        utils.ToInt(row["armor"]),
				Firepower:    utils.ToInt(row["firepower"]),
				Torpedo:      utils.ToInt(row["torpedo"]),
				AntiAir:      utils.ToInt(row["anti_air"]),
				AntiSub:      utils.ToInt(row["anti_sub"]),
				Evasion:      utils.ToInt(row["evasion"]),
				LineOfSight:  utils.ToInt(row["line_of_sight"]),
				Luck:         utils.ToInt(row["luck"]),
				Speed:        text(row["speed"]),
				Range:        text(row["range"]),
				AircraftSlot: utils.ToInt(row["aircraft"]),
			},
		})
	}
	return entries, nil
}

// text converts an optional wiki cell to a trimmed string.
func text(v any) string {
	return strings.TrimSpace(utils.ToString(v))
}
