package cost

import "ship-registry/feature/fleet/models"

// byName holds ships whose remodel costs differ from their hull category.
// Index i is the cost of stage i+1.
var byName = map[string][]int{
	"大和":    {8},
	"武蔵":    {8},
	"千歳":    {4, 6, 8, 12, 14},
	"千代田":   {4, 6, 8, 12, 14},
	"春日丸":   {5, 5, 12},
	"大鯨":    {4, 10, 12},
	"U-511": {3, 8},
}

// byType holds the remodel costs per hull category.
var byType = map[string][]int{
	"駆逐艦":    {2, 6},
	"海防艦":    {2},
	"軽巡洋艦":   {3, 8},
	"重雷装巡洋艦": {3, 8},
	"練習巡洋艦":  {3},
	"重巡洋艦":   {4, 10},
	"航空巡洋艦":  {4, 10},
	"水上機母艦":  {4, 10},
	"軽空母":    {5, 12},
	"正規空母":   {6, 14},
	"装甲空母":   {6, 14},
	"戦艦":     {6, 15},
	"航空戦艦":   {6, 15},
	"潜水艦":    {3, 8},
	"潜水空母":   {3, 8},
	"潜水母艦":   {4},
	"工作艦":    {4},
	"揚陸艦":    {4},
}

// StageCost returns the blueprints needed to remodel ship into target.
// Stage 0 is never bought, and stages past the known table have no cost.
func StageCost(ship models.Ship, target int) (int, bool) {
	if target <= 0 {
		return 0, false
	}
	costs, ok := byName[ship.Name]
	if !ok {
		costs, ok = byType[ship.ShipType()]
	}
	if !ok || target > len(costs) {
		return 0, false
	}
	return costs[target-1], true
}

// NextStageCost returns the stage after the highest owned one and its cost.
func NextStageCost(ship models.Ship) (stage, cost int, ok bool) {
	stage = ship.HighestOwnedStage() + 1
	cost, ok = StageCost(ship, stage)
	return stage, cost, ok
}
