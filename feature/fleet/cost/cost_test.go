package cost_test

import (
	"testing"

	"ship-registry/feature/fleet/cost"
	"ship-registry/feature/fleet/models"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ship(name, shipType string, blueprints int, mods ...models.ShipMod) models.Ship {
	s := models.Ship{Name: name, Mods: mods}
	if blueprints >= 0 {
		s.Blueprint = &models.Blueprint{ShipName: name, ShipType: shipType, BlueprintTotalNum: blueprints}
	}
	return s
}

func owned(name string, stage int) models.ShipMod {
	return models.ShipMod{Name: name, Stage: stage, Roster: &models.RosterEntry{ShipName: name}}
}

func missing(name string, stage int) models.ShipMod {
	return models.ShipMod{Name: name, Stage: stage}
}

func TestStageCost(t *testing.T) {
	destroyer := ship("吹雪", "駆逐艦", 0)
	yamato := ship("大和", "戦艦", 0)
	unknownType := ship("謎", "謎艦", 0)

	tests := []struct {
		name   string
		ship   models.Ship
		target int
		cost   int
		ok     bool
	}{
		{"TypeFirst", destroyer, 1, 2, true},
		{"TypeSecond", destroyer, 2, 6, true},
		{"TypePastTable", destroyer, 3, 0, false},
		{"NamedFirst", yamato, 1, 8, true},
		{"NamedPastTable", yamato, 2, 0, false},
		{"UnknownType", unknownType, 1, 0, false},
		{"Negative", destroyer, -1, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := cost.StageCost(tt.ship, tt.target)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.cost, c)
		})
	}
}

func TestStageCostZeroNeverDefined(t *testing.T) {
	for _, s := range []models.Ship{
		ship("吹雪", "駆逐艦", 0),
		ship("大和", "戦艦", 0),
		ship("千歳", "水上機母艦", 0),
		ship("謎", "", -1),
	} {
		_, ok := cost.StageCost(s, 0)
		assert.False(t, ok, s.Name)
	}
}

func TestStageCostTypeFromMods(t *testing.T) {
	s := models.Ship{
		Name: "球磨",
		Mods: []models.ShipMod{{Name: "球磨", Book: &models.BookEntry{ShipType: "軽巡洋艦"}}},
	}
	c, ok := cost.StageCost(s, 2)
	require.True(t, ok)
	assert.Equal(t, 8, c)
}

func TestNextStageCost(t *testing.T) {
	s := ship("吹雪", "駆逐艦", 3, owned("吹雪", 0), missing("吹雪改", 1))
	stage, c, ok := cost.NextStageCost(s)
	assert.True(t, ok)
	assert.Equal(t, 1, stage)
	assert.Equal(t, 2, c)

	none := ship("吹雪", "駆逐艦", 0, missing("吹雪", 0))
	stage, _, ok = cost.NextStageCost(none)
	assert.Equal(t, 0, stage)
	assert.False(t, ok)
}

func TestPlanUpgrades(t *testing.T) {
	t.Run("BuysLowestFirst", func(t *testing.T) {
		s := ship("吹雪", "駆逐艦", 9, owned("吹雪", 0), missing("吹雪改", 1), missing("吹雪改二", 2))
		plan := cost.PlanUpgrades(s, cost.PreferAffordable)

		assert.Equal(t, 9, plan.Available)
		assert.Equal(t, []cost.Step{{Stage: 1, Name: "吹雪改", Cost: 2}, {Stage: 2, Name: "吹雪改二", Cost: 6}}, plan.Steps)
		assert.Equal(t, 1, plan.Remaining)
		assert.Empty(t, plan.Unpriced)
		assert.False(t, plan.Held)
	})

	t.Run("StopsWhenUnaffordable", func(t *testing.T) {
		s := ship("吹雪", "駆逐艦", 5, owned("吹雪", 0), missing("吹雪改", 1), missing("吹雪改二", 2))
		plan := cost.PlanUpgrades(s, cost.PreferAffordable)

		assert.Equal(t, []cost.Step{{Stage: 1, Name: "吹雪改", Cost: 2}}, plan.Steps)
		assert.Equal(t, 3, plan.Remaining)
	})

	t.Run("SkipsOwned", func(t *testing.T) {
		s := ship("吹雪", "駆逐艦", 6, owned("吹雪", 0), owned("吹雪改", 1), missing("吹雪改二", 2))
		plan := cost.PlanUpgrades(s, cost.SaveForUnknown)

		assert.Equal(t, []cost.Step{{Stage: 2, Name: "吹雪改二", Cost: 6}}, plan.Steps)
		assert.Zero(t, plan.Remaining)
	})

	t.Run("NoBlueprints", func(t *testing.T) {
		s := ship("吹雪", "駆逐艦", -1, missing("吹雪改", 1))
		s.Mods[0].Book = &models.BookEntry{ShipType: "駆逐艦"}
		plan := cost.PlanUpgrades(s, cost.PreferAffordable)

		assert.Zero(t, plan.Available)
		assert.Empty(t, plan.Steps)
	})
}

func TestPlanUnpricedStage(t *testing.T) {
	// Stage 3 of a light cruiser has no defined cost.
	s := ship("夕張", "軽巡洋艦", 20,
		owned("夕張", 0), missing("夕張改", 1), missing("夕張改二", 2), missing("夕張改二甲", 3))

	plans := cost.PlanBoth(s)
	require.Len(t, plans, 2)

	affordable := plans[0]
	assert.Equal(t, cost.PreferAffordable, affordable.Policy)
	assert.Equal(t, []int{3}, affordable.Unpriced)
	assert.Len(t, affordable.Steps, 2)
	assert.Equal(t, 9, affordable.Remaining)
	assert.False(t, affordable.Held)

	saving := plans[1]
	assert.Equal(t, cost.SaveForUnknown, saving.Policy)
	assert.Equal(t, []int{3}, saving.Unpriced)
	assert.Empty(t, saving.Steps)
	assert.Equal(t, 20, saving.Remaining)
	assert.True(t, saving.Held)
}

func TestPolicyText(t *testing.T) {
	for _, p := range cost.Policies {
		parsed, err := cost.ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, parsed)
	}

	_, err := cost.ParsePolicy("yolo")
	assert.Error(t, err)
	assert.Equal(t, "policy(9)", cost.Policy(9).String())

	data, err := json.Marshal(cost.Plan{Policy: cost.SaveForUnknown})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"policy":"save_for_unknown"`)

	var plan cost.Plan
	require.NoError(t, json.Unmarshal([]byte(`{"policy":"prefer_affordable"}`), &plan))
	assert.Equal(t, cost.PreferAffordable, plan.Policy)
	assert.Error(t, json.Unmarshal([]byte(`{"policy":"nope"}`), &plan))
}
