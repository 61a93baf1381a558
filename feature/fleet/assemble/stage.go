package assemble

import (
	"fmt"

	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/models"
	"ship-registry/feature/fleet/names"
	"ship-registry/feature/fleet/splitter"
)

const pageZeroVariations = 3

// stages merges every per-name source into validated stage records, sorted by display name.
func (r *build) stages(src Sources) ([]*models.ShipMod, error) {
	ix := reconcile.NewIndex(func(name string) *models.ShipMod {
		return &models.ShipMod{Name: name}
	})

	put := func(name string, source reconcile.Source, fill func(*models.ShipMod)) error {
		if err := ix.Put(name, source, fill); err != nil {
			return r.fail(name, err)
		}
		return nil
	}

	for _, raw := range src.Book {
		first, second := splitter.Split(r.classifier, raw)
		for _, entry := range []*models.BookEntry{&first, second} {
			if entry == nil {
				continue
			}
			if err := put(entry.ShipName, SourceBook, func(m *models.ShipMod) { m.Book = entry }); err != nil {
				return nil, err
			}
		}
	}

	for _, entry := range src.Roster {
		if err := put(entry.ShipName, SourceRoster, func(m *models.ShipMod) { m.Roster = &entry }); err != nil {
			return nil, err
		}
	}

	for _, entry := range src.Marriage {
		if err := put(entry.Name, SourceMarriage, func(m *models.ShipMod) { m.Marriage = &entry }); err != nil {
			return nil, err
		}
	}

	for _, table := range [][]models.WikiEntry{src.WikiUnmodified, src.WikiModified} {
		for _, entry := range table {
			if err := put(entry.Name, SourceWiki, func(m *models.ShipMod) { m.Wiki = &entry }); err != nil {
				return nil, err
			}
		}
	}

	r.report.Coverage = ix.Results(StageSources...)
	r.report.Summary = reconcile.Summarize(r.report.Coverage, StageSources...)

	mods := make([]*models.ShipMod, 0, ix.Len())
	for _, name := range ix.Keys() {
		mod, _ := ix.Get(name)
		if err := validateMod(mod); err != nil {
			if err := r.fail(name, err); err != nil {
				return nil, err
			}
			continue
		}
		mods = append(mods, mod)
	}
	return mods, nil
}

// validateMod resolves the stage of mod and checks its picture-book page 0.
func validateMod(mod *models.ShipMod) error {
	stage, err := names.Stage(mod.Name)
	if err != nil {
		return err
	}
	mod.Stage = stage

	if mod.Book == nil {
		return nil
	}
	if len(mod.Book.CardList) == 0 {
		return &InvariantError{Ship: names.BaseName(mod.Name), Mod: mod.Name, Reason: "picture book entry has no pages"}
	}
	if n := mod.Book.CardList[0].VariationNum; n != pageZeroVariations {
		return &InvariantError{
			Ship:   names.BaseName(mod.Name),
			Mod:    mod.Name,
			Reason: fmt.Sprintf("page 0 has %d variations, want %d", n, pageZeroVariations),
		}
	}
	return nil
}
