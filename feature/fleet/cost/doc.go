// Package cost prices ship remodels in blueprints.
//
// StageCost looks the price of a stage up in a fixed table, first by ship
// name and then by hull category. It never extrapolates: stage 0 and stages
// past the table have no defined cost.
//
// PlanUpgrades spends a ship's blueprints on its unowned stages. When a stage
// has no defined cost the outcome depends on the Policy, so PlanBoth reports
// the plan of each policy side by side.
package cost
