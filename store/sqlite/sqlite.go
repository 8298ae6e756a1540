/*
Package sqlite provides a SQLite-backed implementation of the storage interfaces.

PURPOSE:
  Implements every persistence interface the engine depends on
  (HoursStore, StaffStore, ShiftStore, TierStore, SettingsStore) using
  SQLite. In production the same patterns apply to PostgreSQL - only
  minor SQL dialect differences.

KEY TABLES:
  store_hours:  per-weekday open/close windows, one row per day
  staff:        roster entries with pay terms; rowid preserves roster
                order (the generator's documented tie-break)
  shifts:       the durable shift assignments
  bonus_tiers:  tier sets per scope; position preserves list order so
                equal-target ties resolve stably
  settings:     per-store scheduling config JSON

MONEY AND TIME ENCODING:
  Money and hour figures are stored as decimal strings, never floats.
  Times of day are "HH:MM"; dates are "2006-01-02". Malformed stored
  values decode to the engine's documented defaults.

WAL MODE:
  SQLite is opened with WAL for better concurrency: readers don't block,
  single writer at a time, better crash recovery.

USAGE:
  st, err := sqlite.New("./data/scrubshop.db")
  if err != nil {
      log.Fatal(err)
  }
  defer st.Close()

SEE ALSO:
  - engine/store.go: interface definitions
  - engine/store/memory.go: in-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
)

// Store implements all storage interfaces using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Interface checks
var (
	_ engine.HoursStore    = (*Store)(nil)
	_ engine.StaffStore    = (*Store)(nil)
	_ engine.ShiftStore    = (*Store)(nil)
	_ engine.TierStore     = (*Store)(nil)
	_ engine.SettingsStore = (*Store)(nil)
)

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	schema := `
	-- Store operating hours (one row per weekday, Monday-Saturday)
	CREATE TABLE IF NOT EXISTS store_hours (
		store_id TEXT NOT NULL,
		day_index INTEGER NOT NULL,
		weekday TEXT NOT NULL,
		is_open INTEGER NOT NULL DEFAULT 0,
		open_time TEXT NOT NULL DEFAULT '09:00',
		close_time TEXT NOT NULL DEFAULT '17:00',
		PRIMARY KEY (store_id, day_index)
	);

	-- Roster; rowid order is roster order
	CREATE TABLE IF NOT EXISTS staff (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		name TEXT NOT NULL,
		role TEXT,
		pay_type TEXT NOT NULL,
		hourly_rate TEXT NOT NULL DEFAULT '0',
		salary_amount TEXT NOT NULL DEFAULT '0',
		commission_rate TEXT NOT NULL DEFAULT '0',
		preferred_hours TEXT NOT NULL DEFAULT '0',
		max_hours TEXT NOT NULL DEFAULT '0',
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_staff_store ON staff(store_id);

	-- Shift assignments (the durable unit)
	CREATE TABLE IF NOT EXISTS shifts (
		id TEXT PRIMARY KEY,
		store_id TEXT NOT NULL,
		staff_id TEXT NOT NULL,
		date TEXT NOT NULL,
		start_time TEXT NOT NULL,
		end_time TEXT NOT NULL,
		notes TEXT,
		created_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_shifts_store_date ON shifts(store_id, date);
	CREATE INDEX IF NOT EXISTS idx_shifts_staff ON shifts(staff_id);

	-- Bonus tier sets, keyed by scope; position preserves list order
	CREATE TABLE IF NOT EXISTS bonus_tiers (
		id TEXT PRIMARY KEY,
		set_scope_id TEXT NOT NULL,
		target_sales TEXT NOT NULL DEFAULT '0',
		bonus_amount TEXT NOT NULL DEFAULT '0',
		description TEXT,
		is_active INTEGER NOT NULL DEFAULT 1,
		tier_scope TEXT NOT NULL DEFAULT 'store',
		tier_scope_id TEXT NOT NULL,
		position INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_tiers_scope ON bonus_tiers(set_scope_id, position);

	-- Per-store scheduling settings (JSON, parsed by factory)
	CREATE TABLE IF NOT EXISTS settings (
		store_id TEXT PRIMARY KEY,
		config_json TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

func now() string { return time.Now().UTC().Format(time.RFC3339) }

// =============================================================================
// HOURS STORE
// =============================================================================

func (s *Store) GetStoreHours(ctx context.Context, storeID engine.StoreID) ([]engine.DayHours, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT weekday, is_open, open_time, close_time
		FROM store_hours WHERE store_id = ? ORDER BY day_index`, string(storeID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var hours []engine.DayHours
	for rows.Next() {
		var (
			d                 engine.DayHours
			isOpen            int
			openStr, closeStr string
		)
		if err := rows.Scan(&d.Weekday, &isOpen, &openStr, &closeStr); err != nil {
			return nil, err
		}
		d.IsOpen = isOpen != 0
		d.Open = parseTimeOrDefault(openStr, engine.DefaultOpenTime)
		d.Close = parseTimeOrDefault(closeStr, engine.DefaultCloseTime)
		hours = append(hours, d)
	}
	return hours, rows.Err()
}

func (s *Store) SaveStoreHours(ctx context.Context, storeID engine.StoreID, hours []engine.DayHours) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM store_hours WHERE store_id = ?`, string(storeID)); err != nil {
		return err
	}
	for i, d := range hours {
		isOpen := 0
		if d.IsOpen {
			isOpen = 1
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO store_hours (store_id, day_index, weekday, is_open, open_time, close_time)
			VALUES (?, ?, ?, ?, ?, ?)`,
			string(storeID), i, d.Weekday, isOpen, d.Open.String(), d.Close.String())
		if err != nil {
			return err
		}
	}
	return tx.Commit()
}

// =============================================================================
// STAFF STORE
// =============================================================================

func (s *Store) GetStaffForStore(ctx context.Context, storeID engine.StoreID) ([]engine.StaffMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, role, pay_type, hourly_rate, salary_amount,
		       commission_rate, preferred_hours, max_hours
		FROM staff WHERE store_id = ? ORDER BY rowid`, string(storeID))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roster []engine.StaffMember
	for rows.Next() {
		var (
			m                                            engine.StaffMember
			role                                         sql.NullString
			rate, salary, commission, preferred, maximum string
		)
		if err := rows.Scan(&m.ID, &m.Name, &role, &m.PayType,
			&rate, &salary, &commission, &preferred, &maximum); err != nil {
			return nil, err
		}
		m.Role = role.String
		m.HourlyRate = engine.ParseMoney(rate)
		m.SalaryAmount = engine.ParseMoney(salary)
		m.CommissionRate = engine.ParseMoney(commission)
		m.PreferredHoursPerWeek = engine.Hours(engine.ParseMoney(preferred).Decimal())
		m.MaxHoursPerWeek = engine.Hours(engine.ParseMoney(maximum).Decimal())
		roster = append(roster, m)
	}
	return roster, rows.Err()
}

func (s *Store) SaveStaff(ctx context.Context, storeID engine.StoreID, staff engine.StaffMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if staff.ID == "" {
		staff.ID = engine.StaffID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO staff (id, store_id, name, role, pay_type, hourly_rate,
			salary_amount, commission_rate, preferred_hours, max_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name=excluded.name, role=excluded.role, pay_type=excluded.pay_type,
			hourly_rate=excluded.hourly_rate, salary_amount=excluded.salary_amount,
			commission_rate=excluded.commission_rate,
			preferred_hours=excluded.preferred_hours, max_hours=excluded.max_hours`,
		string(staff.ID), string(storeID), staff.Name, staff.Role, string(staff.PayType),
		staff.HourlyRate.String(), staff.SalaryAmount.String(), staff.CommissionRate.String(),
		staff.PreferredHoursPerWeek.String(), staff.MaxHoursPerWeek.String(), now())
	return err
}

func (s *Store) DeleteStaff(ctx context.Context, staffID engine.StaffID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM staff WHERE id = ?`, string(staffID))
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return engine.ErrStaffNotFound
	}
	return nil
}

// =============================================================================
// SHIFT STORE
// =============================================================================

func (s *Store) GetShiftsInRange(ctx context.Context, storeID engine.StoreID, from, to engine.Date) ([]engine.ShiftAssignment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, store_id, staff_id, date, start_time, end_time, notes
		FROM shifts
		WHERE store_id = ? AND date >= ? AND date <= ?
		ORDER BY date, start_time, id`,
		string(storeID), from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var shifts []engine.ShiftAssignment
	for rows.Next() {
		shift, err := scanShift(rows)
		if err != nil {
			return nil, err
		}
		shifts = append(shifts, shift)
	}
	return shifts, rows.Err()
}

func scanShift(rows *sql.Rows) (engine.ShiftAssignment, error) {
	var (
		shift                     engine.ShiftAssignment
		dateStr, startStr, endStr string
		notes                     sql.NullString
	)
	if err := rows.Scan(&shift.ID, &shift.StoreID, &shift.StaffID,
		&dateStr, &startStr, &endStr, &notes); err != nil {
		return engine.ShiftAssignment{}, err
	}
	date, err := engine.ParseDate(dateStr)
	if err != nil {
		return engine.ShiftAssignment{}, err
	}
	shift.Date = date
	shift.Start = parseTimeOrDefault(startStr, engine.DefaultOpenTime)
	shift.End = parseTimeOrDefault(endStr, engine.DefaultCloseTime)
	shift.Notes = notes.String
	return shift, nil
}

func (s *Store) SaveShift(ctx context.Context, shift engine.ShiftAssignment) (engine.ShiftAssignment, error) {
	if !shift.Start.Before(shift.End) {
		return engine.ShiftAssignment{}, &engine.InvalidShiftError{
			StaffID: shift.StaffID, Date: shift.Date, Start: shift.Start, End: shift.End,
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if shift.ID == "" {
		shift.ID = engine.ShiftID(uuid.NewString())
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO shifts (id, store_id, staff_id, date, start_time, end_time, notes, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			staff_id=excluded.staff_id, date=excluded.date,
			start_time=excluded.start_time, end_time=excluded.end_time,
			notes=excluded.notes`,
		string(shift.ID), string(shift.StoreID), string(shift.StaffID),
		shift.Date.String(), shift.Start.String(), shift.End.String(), shift.Notes, now())
	if err != nil {
		return engine.ShiftAssignment{}, &engine.SaveError{Op: "save_shift", Err: err}
	}
	return shift, nil
}

func (s *Store) DeleteShift(ctx context.Context, shiftID engine.ShiftID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	res, err := s.db.ExecContext(ctx, `DELETE FROM shifts WHERE id = ?`, string(shiftID))
	if err != nil {
		return &engine.SaveError{Op: "delete_shift", Err: err}
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return engine.ErrShiftNotFound
	}
	return nil
}

// =============================================================================
// TIER STORE
// =============================================================================

func (s *Store) GetBonusTiers(ctx context.Context, scopeID string) ([]engine.BonusTier, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, target_sales, bonus_amount, description, is_active, tier_scope, tier_scope_id
		FROM bonus_tiers WHERE set_scope_id = ? ORDER BY position`, scopeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tiers []engine.BonusTier
	for rows.Next() {
		var (
			t              engine.BonusTier
			target, amount string
			description    sql.NullString
			isActive       int
		)
		if err := rows.Scan(&t.ID, &target, &amount, &description, &isActive, &t.Scope, &t.ScopeID); err != nil {
			return nil, err
		}
		t.TargetSalesAmount = engine.ParseMoney(target)
		t.BonusAmount = engine.ParseMoney(amount)
		t.Description = description.String
		t.IsActive = isActive != 0
		tiers = append(tiers, t)
	}
	return tiers, rows.Err()
}

// SaveBonusTiers replaces the tier set for a scope atomically.
func (s *Store) SaveBonusTiers(ctx context.Context, scopeID string, tiers []engine.BonusTier) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return &engine.SaveError{Op: "save_tiers", Err: err}
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM bonus_tiers WHERE set_scope_id = ?`, scopeID); err != nil {
		return &engine.SaveError{Op: "save_tiers", Err: err}
	}
	for i, t := range tiers {
		if t.ID == "" {
			t.ID = uuid.NewString()
		}
		isActive := 0
		if t.IsActive {
			isActive = 1
		}
		scope := t.Scope
		if scope == "" {
			scope = engine.ScopeStore
		}
		tierScopeID := t.ScopeID
		if tierScopeID == "" {
			tierScopeID = scopeID
		}
		_, err := tx.ExecContext(ctx, `
			INSERT INTO bonus_tiers (id, set_scope_id, target_sales, bonus_amount,
				description, is_active, tier_scope, tier_scope_id, position)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			t.ID, scopeID, t.TargetSalesAmount.String(), t.BonusAmount.String(),
			t.Description, isActive, string(scope), tierScopeID, i)
		if err != nil {
			return &engine.SaveError{Op: "save_tiers", Err: err}
		}
	}
	if err := tx.Commit(); err != nil {
		return &engine.SaveError{Op: "save_tiers", Err: err}
	}
	return nil
}

// =============================================================================
// SETTINGS STORE
// =============================================================================

func (s *Store) GetSettings(ctx context.Context, storeID engine.StoreID) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var configJSON string
	err := s.db.QueryRowContext(ctx,
		`SELECT config_json FROM settings WHERE store_id = ?`, string(storeID)).Scan(&configJSON)
	if err == sql.ErrNoRows {
		return "", nil // absent settings mean defaults
	}
	if err != nil {
		return "", err
	}
	return configJSON, nil
}

func (s *Store) SaveSettings(ctx context.Context, storeID engine.StoreID, configJSON string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO settings (store_id, config_json, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(store_id) DO UPDATE SET
			config_json=excluded.config_json, updated_at=excluded.updated_at`,
		string(storeID), configJSON, now())
	return err
}

// =============================================================================
// MAINTENANCE
// =============================================================================

// Reset clears all data. Development and demo use only.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, table := range []string{"store_hours", "staff", "shifts", "bonus_tiers", "settings"} {
		if _, err := s.db.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return err
		}
	}
	return nil
}

// ListStoreIDs returns every store that has hours configured. Used by the
// background draft scheduler to walk all stores.
func (s *Store) ListStoreIDs(ctx context.Context) ([]engine.StoreID, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT DISTINCT store_id FROM store_hours ORDER BY store_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []engine.StoreID
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, engine.StoreID(id))
	}
	return ids, rows.Err()
}

func parseTimeOrDefault(s string, fallback engine.TimeOfDay) engine.TimeOfDay {
	t, err := engine.ParseStoredTimeOfDay(s)
	if err != nil {
		return fallback
	}
	return t
}
