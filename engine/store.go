/*
store.go - Persistence interfaces between the engine and its collaborators

PURPOSE:
  The engine is pure: it reads store hours, a roster, shifts, and tier
  configuration, and returns schedules and compensation reports. These
  interfaces define the read/write contracts the presentation and
  persistence layers implement. Transport details are the collaborator's
  concern; shapes only.

KEY INTERFACES:
  HoursStore:    open/close windows per weekday
  StaffStore:    roster access
  ShiftStore:    the durable shift records (save/delete surface failures
                 to the caller; the engine never retries)
  TierStore:     bonus tier sets, store-wide or staff-scoped
  SettingsStore: per-store scheduling configuration (JSON, see factory)

IMPLEMENTATIONS:
  - store/sqlite/sqlite.go: production SQLite
  - engine/store/memory.go: in-memory for testing and demos

SEE ALSO:
  - schedule/generator.go, payroll/calculator.go: the consumers
*/
package engine

import "context"

// HoursStore supplies the store's operating hours, one entry per weekday
// Monday through Saturday.
type HoursStore interface {
	GetStoreHours(ctx context.Context, storeID StoreID) ([]DayHours, error)
	SaveStoreHours(ctx context.Context, storeID StoreID, hours []DayHours) error
}

// StaffStore supplies the roster for a store.
type StaffStore interface {
	GetStaffForStore(ctx context.Context, storeID StoreID) ([]StaffMember, error)
	SaveStaff(ctx context.Context, storeID StoreID, staff StaffMember) error
	DeleteStaff(ctx context.Context, staffID StaffID) error
}

// ShiftStore persists shift assignments. GetShiftsInRange returns shifts
// with dates in [from, to] inclusive, ordered by date then start time.
type ShiftStore interface {
	GetShiftsInRange(ctx context.Context, storeID StoreID, from, to Date) ([]ShiftAssignment, error)
	SaveShift(ctx context.Context, shift ShiftAssignment) (ShiftAssignment, error)
	DeleteShift(ctx context.Context, shiftID ShiftID) error
}

// TierStore persists bonus tier sets. The scope is either a store ID
// (store-wide tiers) or a staff ID (staff-specific tiers).
type TierStore interface {
	GetBonusTiers(ctx context.Context, scopeID string) ([]BonusTier, error)
	SaveBonusTiers(ctx context.Context, scopeID string, tiers []BonusTier) error
}

// SettingsStore persists per-store scheduling configuration as JSON.
// Parsing and defaulting live in the factory package.
type SettingsStore interface {
	GetSettings(ctx context.Context, storeID StoreID) (string, error)
	SaveSettings(ctx context.Context, storeID StoreID, configJSON string) error
}

// =============================================================================
// BONUS TIER - Shared between TierStore and payroll
// =============================================================================

// TierScope says whether a tier set applies store-wide or to one staff member.
type TierScope string

const (
	ScopeStore TierScope = "store"
	ScopeStaff TierScope = "staff"
)

// BonusTier pairs a sales threshold with a flat bonus amount. At most one
// tier applies to a given sales figure: the highest target the figure
// meets or exceeds.
type BonusTier struct {
	ID                string
	TargetSalesAmount Money
	BonusAmount       Money
	Description       string
	IsActive          bool
	Scope             TierScope
	ScopeID           string // store ID or staff ID depending on Scope
}
