/*
Package payroll computes compensation from persisted shifts and pay terms.

PURPOSE:
  Two responsibilities:
  - bonus.go:      resolve the single applicable bonus tier for a sales figure
  - calculator.go: base pay + bonus + totals per staff member and period

  Everything here is a pure function over its inputs. CompensationRecords
  are derived, recomputed on demand, and never the source of truth for
  hours or sales.
*/
package payroll

import (
	"sort"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

// TierResolver selects the applicable bonus tier for a sales figure.
// The zero value is ready to use.
type TierResolver struct{}

// Resolve filters to active tiers, sorts by target descending (stable, so
// equal targets keep list order), and returns the first tier whose target
// the sales figure meets or exceeds. Nil means no bonus.
func (TierResolver) Resolve(sales engine.Money, tiers []engine.BonusTier) *engine.BonusTier {
	active := make([]engine.BonusTier, 0, len(tiers))
	for _, t := range tiers {
		if t.IsActive {
			active = append(active, t)
		}
	}

	sort.SliceStable(active, func(i, j int) bool {
		return active[i].TargetSalesAmount.Decimal().GreaterThan(active[j].TargetSalesAmount.Decimal())
	})

	for i := range active {
		if sales.GreaterThanOrEqual(active[i].TargetSalesAmount) {
			return &active[i]
		}
	}
	return nil
}

// ResolveBonus returns the bonus amount for a sales figure, zero when no
// tier qualifies.
func (r TierResolver) ResolveBonus(sales engine.Money, tiers []engine.BonusTier) engine.Money {
	tier := r.Resolve(sales, tiers)
	if tier == nil {
		return engine.NewMoneyFromInt(0)
	}
	return tier.BonusAmount
}

// TiersForStaff picks the tier set that applies to one staff member:
// staff-scoped tiers when any exist for them, otherwise the store-wide set.
func TiersForStaff(staffID engine.StaffID, tiers []engine.BonusTier) []engine.BonusTier {
	var staffTiers, storeTiers []engine.BonusTier
	for _, t := range tiers {
		switch {
		case t.Scope == engine.ScopeStaff && t.ScopeID == string(staffID):
			staffTiers = append(staffTiers, t)
		case t.Scope != engine.ScopeStaff:
			storeTiers = append(storeTiers, t)
		}
	}
	if len(staffTiers) > 0 {
		return staffTiers
	}
	return storeTiers
}
