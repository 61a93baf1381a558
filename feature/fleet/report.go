package fleet

import (
	"time"

	"ship-registry/core/reconcile"
	"ship-registry/feature/fleet/assemble"
	"ship-registry/feature/fleet/cost"
	"ship-registry/feature/fleet/models"
)

// ShipSummary is one row of the ship listing.
type ShipSummary struct {
	Name              string   `json:"name"`
	ShipType          string   `json:"ship_type"`
	Stages            []string `json:"stages"`
	HighestOwnedStage int      `json:"highest_owned_stage"`
	Blueprints        int      `json:"blueprints"`
}

// NextStage is the stage after the highest owned one.
type NextStage struct {
	Stage int `json:"stage"`
	// Cost is nil when the stage has no defined blueprint cost.
	Cost *int `json:"cost"`
}

// ShipDetail is the full view of one ship.
type ShipDetail struct {
	Ship *models.Ship `json:"ship"`
	// Matched is the display name the ship was found by, when it was not its base name.
	Matched            string      `json:"matched,omitempty"`
	ShipType           string      `json:"ship_type"`
	HighestOwnedStage  int         `json:"highest_owned_stage"`
	Next               NextStage   `json:"next"`
	Policy             cost.Policy `json:"policy"`
	Plans              []cost.Plan `json:"plans"`
	ExpiringBlueprints int         `json:"expiring_blueprints"`
}

// CoverageReport tells which sources contributed to every stage record.
type CoverageReport struct {
	Snapshot string             `json:"snapshot"`
	BuiltAt  time.Time          `json:"built_at"`
	Results  []reconcile.Result `json:"results"`
	Summary  reconcile.Summary  `json:"summary"`
	Issues   []assemble.Issue   `json:"issues"`
}

func summarize(ship *models.Ship) ShipSummary {
	s := ShipSummary{
		Name:              ship.Name,
		ShipType:          ship.ShipType(),
		Stages:            make([]string, 0, len(ship.Mods)),
		HighestOwnedStage: ship.HighestOwnedStage(),
	}
	for _, m := range ship.Mods {
		s.Stages = append(s.Stages, m.Name)
	}
	if ship.Blueprint != nil {
		s.Blueprints = ship.Blueprint.BlueprintTotalNum
	}
	return s
}

func detail(ship *models.Ship, policy cost.Policy) *ShipDetail {
	d := &ShipDetail{
		Ship:              ship,
		ShipType:          ship.ShipType(),
		HighestOwnedStage: ship.HighestOwnedStage(),
		Policy:            policy,
		Plans:             cost.PlanBoth(*ship),
	}

	stage, c, ok := cost.NextStageCost(*ship)
	d.Next.Stage = stage
	if ok {
		d.Next.Cost = &c
	}

	if ship.Blueprint != nil {
		d.ExpiringBlueprints = ship.Blueprint.ExpiringThisMonth()
	}
	return d
}
