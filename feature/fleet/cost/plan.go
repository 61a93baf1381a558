package cost

import (
	"fmt"

	"ship-registry/feature/fleet/models"
)

// Policy decides how blueprints are spent when some stage has no defined cost.
type Policy int

const (
	// PreferAffordable buys the lowest affordable unowned stages even when a
	// higher stage's cost is unknown.
	PreferAffordable Policy = iota
	// SaveForUnknown holds every blueprint while any unowned stage has no defined cost.
	SaveForUnknown
)

// Policies lists every policy.
var Policies = []Policy{PreferAffordable, SaveForUnknown}

func (p Policy) String() string {
	switch p {
	case PreferAffordable:
		return "prefer_affordable"
	case SaveForUnknown:
		return "save_for_unknown"
	}
	return fmt.Sprintf("policy(%d)", int(p))
}

// ParsePolicy parses the String form of a policy.
func ParsePolicy(s string) (Policy, error) {
	for _, p := range Policies {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown upgrade policy %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Policy) UnmarshalText(text []byte) error {
	parsed, err := ParsePolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Step is one stage bought by a plan.
type Step struct {
	Stage int    `json:"stage"`
	Name  string `json:"name"`
	Cost  int    `json:"cost"`
}

// Plan is the outcome of spending a ship's blueprints under a policy.
type Plan struct {
	Policy    Policy `json:"policy"`
	Available int    `json:"available"`
	Steps     []Step `json:"steps"`
	Remaining int    `json:"remaining"`
	// Unpriced lists the unowned stages without a defined cost.
	Unpriced []int `json:"unpriced"`
	// Held is set when the policy kept blueprints back for an unpriced stage.
	Held bool `json:"held"`
}

// PlanUpgrades spends the ship's blueprints on its unowned stages, lowest first.
// Buying stops at the first stage the remaining blueprints cannot cover.
func PlanUpgrades(ship models.Ship, policy Policy) Plan {
	plan := Plan{
		Policy:   policy,
		Steps:    []Step{},
		Unpriced: []int{},
	}
	if ship.Blueprint != nil {
		plan.Available = ship.Blueprint.BlueprintTotalNum
	}
	plan.Remaining = plan.Available

	var wanted []Step
	for _, mod := range ship.Mods {
		if mod.Stage == 0 || mod.Owned() {
			continue
		}
		c, ok := StageCost(ship, mod.Stage)
		if !ok {
			plan.Unpriced = append(plan.Unpriced, mod.Stage)
			continue
		}
		wanted = append(wanted, Step{Stage: mod.Stage, Name: mod.Name, Cost: c})
	}

	if policy == SaveForUnknown && len(plan.Unpriced) > 0 {
		plan.Held = plan.Available > 0
		return plan
	}

	for _, step := range wanted {
		if step.Cost > plan.Remaining {
			break
		}
		plan.Steps = append(plan.Steps, step)
		plan.Remaining -= step.Cost
	}
	return plan
}

// PlanBoth returns the plans of every policy, in Policies order.
func PlanBoth(ship models.Ship) []Plan {
	plans := make([]Plan, 0, len(Policies))
	for _, p := range Policies {
		plans = append(plans, PlanUpgrades(ship, p))
	}
	return plans
}
