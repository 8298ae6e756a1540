package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

const storeID = engine.StoreID("store-1")

func TestStoreHours_RoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	hours := []engine.DayHours{
		{Weekday: "monday", IsOpen: true, Open: engine.NewTimeOfDay(10, 0), Close: engine.NewTimeOfDay(19, 0)},
		{Weekday: "tuesday", IsOpen: false},
		{Weekday: "wednesday", IsOpen: true, Open: engine.NewTimeOfDay(9, 30), Close: engine.NewTimeOfDay(17, 30)},
	}
	require.NoError(t, st.SaveStoreHours(ctx, storeID, hours))

	got, err := st.GetStoreHours(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "monday", got[0].Weekday)
	assert.True(t, got[0].IsOpen)
	assert.Equal(t, "10:00", got[0].Open.String())
	assert.Equal(t, "19:00", got[0].Close.String())
	assert.False(t, got[1].IsOpen)
	assert.Equal(t, "09:30", got[2].Open.String())
}

func TestStoreHours_SaveReplacesPreviousWeek(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	first := []engine.DayHours{
		{Weekday: "monday", IsOpen: true, Open: engine.NewTimeOfDay(10, 0), Close: engine.NewTimeOfDay(19, 0)},
	}
	second := []engine.DayHours{
		{Weekday: "monday", IsOpen: true, Open: engine.NewTimeOfDay(8, 0), Close: engine.NewTimeOfDay(20, 0)},
		{Weekday: "tuesday", IsOpen: true, Open: engine.NewTimeOfDay(8, 0), Close: engine.NewTimeOfDay(20, 0)},
	}
	require.NoError(t, st.SaveStoreHours(ctx, storeID, first))
	require.NoError(t, st.SaveStoreHours(ctx, storeID, second))

	got, err := st.GetStoreHours(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "08:00", got[0].Open.String())
}

func TestStaff_RoundTripPreservesPayTerms(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	member := engine.StaffMember{
		Name:                  "Alice",
		Role:                  "keyholder",
		PayType:               engine.PaySalaryBonus,
		SalaryAmount:          engine.NewMoneyFromInt(36500),
		CommissionRate:        engine.NewMoneyFromFloat(2.5),
		PreferredHoursPerWeek: engine.NewHoursFromInt(32),
		MaxHoursPerWeek:       engine.NewHoursFromInt(40),
	}
	require.NoError(t, st.SaveStaff(ctx, storeID, member))

	roster, err := st.GetStaffForStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, roster, 1)

	got := roster[0]
	assert.NotEmpty(t, got.ID, "an ID is assigned at save time")
	assert.Equal(t, "Alice", got.Name)
	assert.Equal(t, engine.PaySalaryBonus, got.PayType)
	assert.True(t, got.SalaryAmount.Equal(engine.NewMoneyFromInt(36500)))
	assert.True(t, got.CommissionRate.Equal(engine.NewMoneyFromFloat(2.5)))
	assert.True(t, got.MaxHoursPerWeek.Equal(engine.NewHoursFromInt(40)))
}

func TestStaff_RosterKeepsInsertionOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"Zoe", "Alice", "Mike"} {
		require.NoError(t, st.SaveStaff(ctx, storeID,
			engine.StaffMember{Name: name, PayType: engine.PayHourly}))
	}

	roster, err := st.GetStaffForStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, roster, 3)
	assert.Equal(t, "Zoe", roster[0].Name)
	assert.Equal(t, "Alice", roster[1].Name)
	assert.Equal(t, "Mike", roster[2].Name)
}

func TestStaff_UpdateKeepsRosterPosition(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveStaff(ctx, storeID, engine.StaffMember{ID: "a", Name: "First", PayType: engine.PayHourly}))
	require.NoError(t, st.SaveStaff(ctx, storeID, engine.StaffMember{ID: "b", Name: "Second", PayType: engine.PayHourly}))

	// update the first member's rate; they must not move to the back
	require.NoError(t, st.SaveStaff(ctx, storeID, engine.StaffMember{
		ID: "a", Name: "First", PayType: engine.PayHourly, HourlyRate: engine.NewMoneyFromInt(15),
	}))

	roster, err := st.GetStaffForStore(ctx, storeID)
	require.NoError(t, err)
	require.Len(t, roster, 2)
	assert.Equal(t, engine.StaffID("a"), roster[0].ID)
	assert.True(t, roster[0].HourlyRate.Equal(engine.NewMoneyFromInt(15)))
}

func TestStaff_DeleteMissingReturnsNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.DeleteStaff(context.Background(), "nope")
	assert.ErrorIs(t, err, engine.ErrStaffNotFound)
}

func TestShifts_SaveAssignsIDAndRangeQueryOrders(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mon := engine.NewDate(2026, time.January, 5)
	tue := mon.AddDays(1)

	// saved out of order on purpose
	for _, sh := range []engine.ShiftAssignment{
		{StoreID: storeID, StaffID: "b", Date: tue, Start: engine.NewTimeOfDay(9, 0), End: engine.NewTimeOfDay(17, 0)},
		{StoreID: storeID, StaffID: "a", Date: mon, Start: engine.NewTimeOfDay(14, 30), End: engine.NewTimeOfDay(18, 30)},
		{StoreID: storeID, StaffID: "a", Date: mon, Start: engine.NewTimeOfDay(10, 0), End: engine.NewTimeOfDay(14, 0)},
	} {
		saved, err := st.SaveShift(ctx, sh)
		require.NoError(t, err)
		assert.NotEmpty(t, saved.ID)
	}

	got, err := st.GetShiftsInRange(ctx, storeID, mon, tue)
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "10:00", got[0].Start.String())
	assert.Equal(t, "14:30", got[1].Start.String())
	assert.True(t, got[2].Date.Equal(tue))
}

func TestShifts_RangeQueryExcludesOutsideDates(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	mon := engine.NewDate(2026, time.January, 5)
	nextMon := mon.AddDays(7)
	for _, d := range []engine.Date{mon, nextMon} {
		_, err := st.SaveShift(ctx, engine.ShiftAssignment{
			StoreID: storeID, StaffID: "a", Date: d,
			Start: engine.NewTimeOfDay(9, 0), End: engine.NewTimeOfDay(17, 0),
		})
		require.NoError(t, err)
	}

	got, err := st.GetShiftsInRange(ctx, storeID, mon, mon.AddDays(5))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.True(t, got[0].Date.Equal(mon))
}

func TestShifts_RejectsInvertedWindow(t *testing.T) {
	st := newTestStore(t)

	_, err := st.SaveShift(context.Background(), engine.ShiftAssignment{
		StoreID: storeID, StaffID: "a",
		Date:  engine.NewDate(2026, time.January, 5),
		Start: engine.NewTimeOfDay(17, 0), End: engine.NewTimeOfDay(9, 0),
	})
	require.Error(t, err)
	var invalid *engine.InvalidShiftError
	assert.True(t, errors.As(err, &invalid))
}

func TestShifts_PastMidnightEndTimeRoundTrips(t *testing.T) {
	// A generated shift can end past 24:00 when the day cursor overruns
	// closing. The stored "26:30" must come back as-is, not a default.
	st := newTestStore(t)
	ctx := context.Background()

	mon := engine.NewDate(2026, time.January, 5)
	_, err := st.SaveShift(ctx, engine.ShiftAssignment{
		StoreID: storeID, StaffID: "a", Date: mon,
		Start: engine.NewTimeOfDay(18, 30), End: engine.NewTimeOfDay(26, 30),
	})
	require.NoError(t, err)

	got, err := st.GetShiftsInRange(ctx, storeID, mon, mon)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "26:30", got[0].End.String())
	assert.True(t, got[0].Duration().Equal(engine.NewHoursFromInt(8)))
}

func TestShifts_DeleteMissingReturnsNotFound(t *testing.T) {
	st := newTestStore(t)

	err := st.DeleteShift(context.Background(), "nope")
	assert.ErrorIs(t, err, engine.ErrShiftNotFound)
}

func TestTiers_SaveReplacesSetAndKeepsListOrder(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	// two tiers sharing a target: list order is the documented tie-break,
	// so position must survive the round trip
	first := []engine.BonusTier{
		{TargetSalesAmount: engine.NewMoneyFromInt(5000), BonusAmount: engine.NewMoneyFromInt(100), IsActive: true},
		{TargetSalesAmount: engine.NewMoneyFromInt(5000), BonusAmount: engine.NewMoneyFromInt(200), IsActive: true},
		{TargetSalesAmount: engine.NewMoneyFromInt(10000), BonusAmount: engine.NewMoneyFromInt(250), IsActive: false},
	}
	require.NoError(t, st.SaveBonusTiers(ctx, "store-1", first))

	got, err := st.GetBonusTiers(ctx, "store-1")
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.True(t, got[0].BonusAmount.Equal(engine.NewMoneyFromInt(100)))
	assert.True(t, got[1].BonusAmount.Equal(engine.NewMoneyFromInt(200)))
	assert.False(t, got[2].IsActive)
	assert.Equal(t, engine.ScopeStore, got[0].Scope)
	assert.Equal(t, "store-1", got[0].ScopeID)

	// a second save replaces the whole set
	require.NoError(t, st.SaveBonusTiers(ctx, "store-1", first[:1]))
	got, err = st.GetBonusTiers(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestTiers_ScopesAreIsolated(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveBonusTiers(ctx, "store-1", []engine.BonusTier{
		{TargetSalesAmount: engine.NewMoneyFromInt(5000), BonusAmount: engine.NewMoneyFromInt(100), IsActive: true},
	}))
	require.NoError(t, st.SaveBonusTiers(ctx, "staff:alice", []engine.BonusTier{
		{TargetSalesAmount: engine.NewMoneyFromInt(2000), BonusAmount: engine.NewMoneyFromInt(80),
			IsActive: true, Scope: engine.ScopeStaff, ScopeID: "alice"},
	}))

	storeTiers, err := st.GetBonusTiers(ctx, "store-1")
	require.NoError(t, err)
	assert.Len(t, storeTiers, 1)

	staffTiers, err := st.GetBonusTiers(ctx, "staff:alice")
	require.NoError(t, err)
	require.Len(t, staffTiers, 1)
	assert.Equal(t, engine.ScopeStaff, staffTiers[0].Scope)
	assert.Equal(t, "alice", staffTiers[0].ScopeID)
}

func TestSettings_AbsentMeansEmptyString(t *testing.T) {
	st := newTestStore(t)

	got, err := st.GetSettings(context.Background(), storeID)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSettings_UpsertRoundTrip(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveSettings(ctx, storeID, `{"min_staffing": 2}`))
	require.NoError(t, st.SaveSettings(ctx, storeID, `{"min_staffing": 3}`))

	got, err := st.GetSettings(ctx, storeID)
	require.NoError(t, err)
	assert.JSONEq(t, `{"min_staffing": 3}`, got)
}

func TestListStoreIDs_DistinctFromConfiguredHours(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	hours := []engine.DayHours{
		{Weekday: "monday", IsOpen: true, Open: engine.NewTimeOfDay(9, 0), Close: engine.NewTimeOfDay(17, 0)},
	}
	require.NoError(t, st.SaveStoreHours(ctx, "store-b", hours))
	require.NoError(t, st.SaveStoreHours(ctx, "store-a", hours))

	ids, err := st.ListStoreIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []engine.StoreID{"store-a", "store-b"}, ids)
}

func TestReset_ClearsEverything(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, st.SaveStaff(ctx, storeID, engine.StaffMember{Name: "Alice", PayType: engine.PayHourly}))
	require.NoError(t, st.SaveSettings(ctx, storeID, `{}`))
	require.NoError(t, st.Reset(ctx))

	roster, err := st.GetStaffForStore(ctx, storeID)
	require.NoError(t, err)
	assert.Empty(t, roster)

	settings, err := st.GetSettings(ctx, storeID)
	require.NoError(t, err)
	assert.Empty(t, settings)
}
