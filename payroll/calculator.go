/*
calculator.go - Base pay, bonus, and totals per staff member and period

PURPOSE:
  Combines worked hours, pay type, and the resolved bonus tier into a
  compensation breakdown. All figures are decimal; two runs over identical
  inputs produce identical records.

BASE PAY BY PAY TYPE:
  hourly:        hours x hourlyRate
  salary(+bonus): yearly salary prorated by CALENDAR DAYS in the period:
                 dailyRate = salary / 365; base = dailyRate x daysInclusive.
                 Proration is independent of hours actually worked.

BONUS:
  The tier resolver runs against the staff member's period sales figure
  (their own figure when tracked, otherwise the store's). salary+bonus
  staff additionally earn a commission term of hours x commissionRate/100
  when a commission rate is configured (0 otherwise).

ERROR CONDITIONS:
  None raised. A missing rate or salary yields a pay of zero rather than
  failing the run.
*/
package payroll

import (
	"github.com/shopspring/decimal"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

var daysPerYear = decimal.NewFromInt(365)
var hundred = decimal.NewFromInt(100)

// CompensationRecord is one staff member's breakdown for a period.
// Derived data: recomputed on demand, never persisted as authoritative.
type CompensationRecord struct {
	StaffID    engine.StaffID
	StaffName  string
	TotalHours engine.Hours
	BasePay    engine.Money
	Bonus      engine.Money
	TotalPay   engine.Money
}

// Report is the calculator's output for a period: per-staff records in
// roster order plus a totals record.
type Report struct {
	PerStaff []CompensationRecord
	Totals   CompensationRecord
}

// SalesFigures carries the period's sales for bonus resolution. StoreSales
// applies to staff without an entry in PerStaff.
type SalesFigures struct {
	StoreSales engine.Money
	PerStaff   map[engine.StaffID]engine.Money
}

func (s SalesFigures) forStaff(id engine.StaffID) engine.Money {
	if v, ok := s.PerStaff[id]; ok {
		return v
	}
	return s.StoreSales
}

// Calculator computes compensation. The zero value is ready to use.
type Calculator struct {
	Resolver TierResolver
}

// ForStaff computes one staff member's compensation over a period from
// their shifts in range and the applicable bonus tiers.
func (c Calculator) ForStaff(
	staff engine.StaffMember,
	shifts []engine.ShiftAssignment,
	period engine.Period,
	tiers []engine.BonusTier,
	sales engine.Money,
) CompensationRecord {
	hours := engine.NewHoursFromInt(0)
	for _, s := range shifts {
		if s.StaffID != staff.ID || !period.Contains(s.Date) {
			continue
		}
		hours = hours.Add(s.Duration())
	}

	base := c.basePay(staff, hours, period)
	bonus := c.Resolver.ResolveBonus(sales, TiersForStaff(staff.ID, tiers))

	if staff.PayType == engine.PaySalaryBonus && staff.CommissionRate.IsPositive() {
		commission := engine.Money(hours.Decimal().Mul(staff.CommissionRate.Decimal()).Div(hundred))
		bonus = bonus.Add(commission)
	}

	return CompensationRecord{
		StaffID:    staff.ID,
		StaffName:  staff.Name,
		TotalHours: hours,
		BasePay:    base,
		Bonus:      bonus,
		TotalPay:   base.Add(bonus),
	}
}

func (c Calculator) basePay(staff engine.StaffMember, hours engine.Hours, period engine.Period) engine.Money {
	switch staff.PayType {
	case engine.PayHourly:
		return engine.Money(hours.Decimal().Mul(staff.HourlyRate.Decimal()))
	case engine.PaySalary, engine.PaySalaryBonus:
		days := decimal.NewFromInt(int64(period.DaysInclusive()))
		dailyRate := staff.SalaryAmount.Div(daysPerYear)
		return dailyRate.Mul(days)
	default:
		return engine.NewMoneyFromInt(0)
	}
}

// ForPeriod computes the full report for a roster. Records come back in
// roster order; the totals row sums hours and pay across staff.
func (c Calculator) ForPeriod(
	roster []engine.StaffMember,
	shifts []engine.ShiftAssignment,
	period engine.Period,
	tiers []engine.BonusTier,
	sales SalesFigures,
) Report {
	report := Report{
		PerStaff: make([]CompensationRecord, 0, len(roster)),
		Totals: CompensationRecord{
			TotalHours: engine.NewHoursFromInt(0),
			BasePay:    engine.NewMoneyFromInt(0),
			Bonus:      engine.NewMoneyFromInt(0),
			TotalPay:   engine.NewMoneyFromInt(0),
		},
	}

	for _, staff := range roster {
		rec := c.ForStaff(staff, shifts, period, tiers, sales.forStaff(staff.ID))
		report.PerStaff = append(report.PerStaff, rec)

		report.Totals.TotalHours = report.Totals.TotalHours.Add(rec.TotalHours)
		report.Totals.BasePay = report.Totals.BasePay.Add(rec.BasePay)
		report.Totals.Bonus = report.Totals.Bonus.Add(rec.Bonus)
		report.Totals.TotalPay = report.Totals.TotalPay.Add(rec.TotalPay)
	}
	return report
}
