// Package store provides an in-memory implementation of the engine's
// persistence interfaces, used by tests and demo scenarios.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu       sync.RWMutex
	hours    map[engine.StoreID][]engine.DayHours
	staff    map[engine.StoreID][]engine.StaffMember
	shifts   map[engine.ShiftID]engine.ShiftAssignment
	tiers    map[string][]engine.BonusTier
	settings map[engine.StoreID]string
}

func NewMemory() *Memory {
	return &Memory{
		hours:    make(map[engine.StoreID][]engine.DayHours),
		staff:    make(map[engine.StoreID][]engine.StaffMember),
		shifts:   make(map[engine.ShiftID]engine.ShiftAssignment),
		tiers:    make(map[string][]engine.BonusTier),
		settings: make(map[engine.StoreID]string),
	}
}

// Interface checks
var (
	_ engine.HoursStore    = (*Memory)(nil)
	_ engine.StaffStore    = (*Memory)(nil)
	_ engine.ShiftStore    = (*Memory)(nil)
	_ engine.TierStore     = (*Memory)(nil)
	_ engine.SettingsStore = (*Memory)(nil)
)

func (m *Memory) GetStoreHours(_ context.Context, storeID engine.StoreID) ([]engine.DayHours, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.DayHours, len(m.hours[storeID]))
	copy(out, m.hours[storeID])
	return out, nil
}

func (m *Memory) SaveStoreHours(_ context.Context, storeID engine.StoreID, hours []engine.DayHours) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]engine.DayHours, len(hours))
	copy(stored, hours)
	m.hours[storeID] = stored
	return nil
}

func (m *Memory) GetStaffForStore(_ context.Context, storeID engine.StoreID) ([]engine.StaffMember, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.StaffMember, len(m.staff[storeID]))
	copy(out, m.staff[storeID])
	return out, nil
}

func (m *Memory) SaveStaff(_ context.Context, storeID engine.StoreID, staff engine.StaffMember) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if staff.ID == "" {
		staff.ID = engine.StaffID(uuid.NewString())
	}
	roster := m.staff[storeID]
	for i := range roster {
		if roster[i].ID == staff.ID {
			roster[i] = staff
			return nil
		}
	}
	m.staff[storeID] = append(roster, staff)
	return nil
}

func (m *Memory) DeleteStaff(_ context.Context, staffID engine.StaffID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for storeID, roster := range m.staff {
		for i := range roster {
			if roster[i].ID == staffID {
				m.staff[storeID] = append(roster[:i:i], roster[i+1:]...)
				return nil
			}
		}
	}
	return engine.ErrStaffNotFound
}

func (m *Memory) GetShiftsInRange(_ context.Context, storeID engine.StoreID, from, to engine.Date) ([]engine.ShiftAssignment, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []engine.ShiftAssignment
	for _, s := range m.shifts {
		if s.StoreID != storeID || s.Date.Before(from) || s.Date.After(to) {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		if out[i].Start != out[j].Start {
			return out[i].Start.Before(out[j].Start)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (m *Memory) SaveShift(_ context.Context, shift engine.ShiftAssignment) (engine.ShiftAssignment, error) {
	if !shift.Start.Before(shift.End) {
		return engine.ShiftAssignment{}, &engine.InvalidShiftError{
			StaffID: shift.StaffID, Date: shift.Date, Start: shift.Start, End: shift.End,
		}
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if shift.ID == "" {
		shift.ID = engine.ShiftID(uuid.NewString())
	}
	m.shifts[shift.ID] = shift
	return shift, nil
}

func (m *Memory) DeleteShift(_ context.Context, shiftID engine.ShiftID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.shifts[shiftID]; !ok {
		return engine.ErrShiftNotFound
	}
	delete(m.shifts, shiftID)
	return nil
}

func (m *Memory) GetBonusTiers(_ context.Context, scopeID string) ([]engine.BonusTier, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]engine.BonusTier, len(m.tiers[scopeID]))
	copy(out, m.tiers[scopeID])
	return out, nil
}

func (m *Memory) SaveBonusTiers(_ context.Context, scopeID string, tiers []engine.BonusTier) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	stored := make([]engine.BonusTier, len(tiers))
	copy(stored, tiers)
	for i := range stored {
		if stored[i].ID == "" {
			stored[i].ID = uuid.NewString()
		}
	}
	m.tiers[scopeID] = stored
	return nil
}

func (m *Memory) GetSettings(_ context.Context, storeID engine.StoreID) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.settings[storeID], nil
}

func (m *Memory) SaveSettings(_ context.Context, storeID engine.StoreID, configJSON string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings[storeID] = configJSON
	return nil
}

// Reset clears all data. Used by scenario loaders.
func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hours = make(map[engine.StoreID][]engine.DayHours)
	m.staff = make(map[engine.StoreID][]engine.StaffMember)
	m.shifts = make(map[engine.ShiftID]engine.ShiftAssignment)
	m.tiers = make(map[string][]engine.BonusTier)
	m.settings = make(map[engine.StoreID]string)
	return nil
}

// ListStoreIDs returns every store with hours configured, sorted.
func (m *Memory) ListStoreIDs(_ context.Context) ([]engine.StoreID, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]engine.StoreID, 0, len(m.hours))
	for id := range m.hours {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids, nil
}
