// Package catalog owns the property's static reference data: the unit list,
// seasonal pricing rules and maintenance blocks. It is loaded once at startup
// and read-only afterwards.
package catalog

import (
	"fmt"

	"montecampo/pkg/model"
)

type Catalog struct {
	units   []model.Unit
	rules   []model.SeasonalRule
	blocked []model.BlockedRange

	unitIndex map[string]int
}

// New builds a catalog and validates it. Seasonal rules with overlapping
// windows for the same unit are rejected: lookup is first-match and an
// overlap would make the effective price depend on declaration order.
func New(units []model.Unit, rules []model.SeasonalRule, blocked []model.BlockedRange) (*Catalog, error) {
	c := &Catalog{
		units:     units,
		rules:     rules,
		blocked:   blocked,
		unitIndex: make(map[string]int, len(units)),
	}

	for i, u := range units {
		if u.ID == "" {
			return nil, fmt.Errorf("unit %d has an empty id", i)
		}
		if _, dup := c.unitIndex[u.ID]; dup {
			return nil, fmt.Errorf("duplicate unit id %q", u.ID)
		}
		if u.PricePerNight <= 0 {
			return nil, fmt.Errorf("unit %q has non-positive nightly price", u.ID)
		}
		if u.MaxUnits < 1 {
			return nil, fmt.Errorf("unit %q has no physical instances", u.ID)
		}
		c.unitIndex[u.ID] = i
	}

	for i, r := range rules {
		if _, ok := c.unitIndex[r.UnitID]; !ok {
			return nil, fmt.Errorf("seasonal rule %d references unknown unit %q", i, r.UnitID)
		}
		if r.PriceMultiplier <= 0 {
			return nil, fmt.Errorf("seasonal rule %q for unit %q has non-positive multiplier", r.SeasonName, r.UnitID)
		}
		if r.EndDate.Before(r.StartDate) {
			return nil, fmt.Errorf("seasonal rule %q for unit %q ends before it starts", r.SeasonName, r.UnitID)
		}
	}

	if err := validateRuleWindows(rules); err != nil {
		return nil, err
	}

	for i, b := range blocked {
		if _, ok := c.unitIndex[b.UnitID]; !ok {
			return nil, fmt.Errorf("blocked range %d references unknown unit %q", i, b.UnitID)
		}
		if b.EndDate.Before(b.StartDate) {
			return nil, fmt.Errorf("blocked range %d for unit %q ends before it starts", i, b.UnitID)
		}
	}

	return c, nil
}

// validateRuleWindows rejects overlapping seasonal windows per unit. Windows
// are inclusive on both ends, so two windows overlap when neither ends
// strictly before the other starts.
func validateRuleWindows(rules []model.SeasonalRule) error {
	for i := 0; i < len(rules); i++ {
		for j := i + 1; j < len(rules); j++ {
			a, b := rules[i], rules[j]
			if a.UnitID != b.UnitID {
				continue
			}
			if !a.EndDate.Before(b.StartDate) && !b.EndDate.Before(a.StartDate) {
				return fmt.Errorf("seasonal rules %q and %q overlap for unit %q",
					a.SeasonName, b.SeasonName, a.UnitID)
			}
		}
	}
	return nil
}

// Units returns the catalog in declaration order.
func (c *Catalog) Units() []model.Unit {
	out := make([]model.Unit, len(c.units))
	copy(out, c.units)
	return out
}

func (c *Catalog) UnitByID(id string) (model.Unit, bool) {
	i, ok := c.unitIndex[id]
	if !ok {
		return model.Unit{}, false
	}
	return c.units[i], true
}

// SeasonalRulesForUnit preserves rule declaration order; the availability
// engine applies the first rule whose window contains a date.
func (c *Catalog) SeasonalRulesForUnit(unitID string) []model.SeasonalRule {
	var out []model.SeasonalRule
	for _, r := range c.rules {
		if r.UnitID == unitID {
			out = append(out, r)
		}
	}
	return out
}

func (c *Catalog) BlockedRangesForUnit(unitID string) []model.BlockedRange {
	var out []model.BlockedRange
	for _, b := range c.blocked {
		if b.UnitID == unitID {
			out = append(out, b)
		}
	}
	return out
}
