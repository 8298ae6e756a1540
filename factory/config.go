/*
Package factory provides JSON to Go configuration conversion.

PURPOSE:
  Converts stored JSON configuration into schedule.Settings and bonus tier
  sets. Store managers tune scheduling behavior without code changes: the
  admin UI writes JSON, the factory produces the proper Go structs with
  documented defaults filled in.

JSON SCHEMA (settings):
  {
    "min_staffing": 2,
    "max_consecutive_hours": 8,
    "lunch_break_required": true,
    "lunch_break_duration": 30,
    "min_shift_duration": 3,
    "max_hours_per_week": 40
  }

JSON SCHEMA (tiers):
  [
    {"target_sales_amount": "5000", "bonus_amount": "100",
     "description": "Bronze", "is_active": true},
    ...
  ]

  Money fields are decimal strings; malformed figures degrade to zero
  rather than failing the parse.

USAGE:
  f := factory.NewConfigFactory()
  settings, err := f.ParseSettings(jsonFromStore)
  tiers, err := f.ParseTiers(scopeID, jsonFromAdminUI)

SEE ALSO:
  - schedule/settings.go: the recognized options and their defaults
  - engine/store.go: BonusTier and SettingsStore
*/
package factory

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/schedule"
)

// =============================================================================
// JSON SCHEMA TYPES
// =============================================================================

// SettingsJSON is the stored representation of scheduling settings.
// Pointer fields distinguish "absent" (take the default) from zero.
type SettingsJSON struct {
	MinStaffing         *int  `json:"min_staffing,omitempty"`
	MaxConsecutiveHours *int  `json:"max_consecutive_hours,omitempty"`
	LunchBreakRequired  *bool `json:"lunch_break_required,omitempty"`
	LunchBreakDuration  *int  `json:"lunch_break_duration,omitempty"`
	MinShiftDuration    *int  `json:"min_shift_duration,omitempty"`
	MaxHoursPerWeek     *int  `json:"max_hours_per_week,omitempty"`
}

// TierJSON is the stored representation of one bonus tier.
type TierJSON struct {
	ID                string `json:"id,omitempty"`
	TargetSalesAmount string `json:"target_sales_amount"`
	BonusAmount       string `json:"bonus_amount"`
	Description       string `json:"description,omitempty"`
	IsActive          bool   `json:"is_active"`
	Scope             string `json:"scope,omitempty"` // "store" (default) or "staff"
	ScopeID           string `json:"scope_id,omitempty"`
}

// =============================================================================
// CONFIG FACTORY
// =============================================================================

type ConfigFactory struct{}

func NewConfigFactory() *ConfigFactory { return &ConfigFactory{} }

// ParseSettings converts stored JSON into schedule.Settings. An empty
// document yields the defaults; unknown keys are ignored.
func (f *ConfigFactory) ParseSettings(configJSON string) (schedule.Settings, error) {
	settings := schedule.DefaultSettings()
	if strings.TrimSpace(configJSON) == "" {
		return settings, nil
	}

	var raw SettingsJSON
	if err := json.Unmarshal([]byte(configJSON), &raw); err != nil {
		return settings, fmt.Errorf("parse settings: %w", err)
	}

	if raw.MinStaffing != nil {
		settings.MinStaffing = *raw.MinStaffing
	}
	if raw.MaxConsecutiveHours != nil {
		settings.MaxConsecutiveHours = *raw.MaxConsecutiveHours
	}
	if raw.LunchBreakRequired != nil {
		settings.LunchBreakRequired = *raw.LunchBreakRequired
	}
	if raw.LunchBreakDuration != nil {
		settings.LunchBreakDuration = *raw.LunchBreakDuration
	}
	if raw.MinShiftDuration != nil {
		settings.MinShiftDuration = *raw.MinShiftDuration
	}
	if raw.MaxHoursPerWeek != nil {
		settings.MaxHoursPerWeek = *raw.MaxHoursPerWeek
	}
	return settings.Normalize(), nil
}

// FormatSettings renders settings back to their stored JSON form.
func (f *ConfigFactory) FormatSettings(settings schedule.Settings) (string, error) {
	raw := SettingsJSON{
		MinStaffing:         &settings.MinStaffing,
		MaxConsecutiveHours: &settings.MaxConsecutiveHours,
		LunchBreakRequired:  &settings.LunchBreakRequired,
		LunchBreakDuration:  &settings.LunchBreakDuration,
		MinShiftDuration:    &settings.MinShiftDuration,
		MaxHoursPerWeek:     &settings.MaxHoursPerWeek,
	}
	b, err := json.Marshal(raw)
	if err != nil {
		return "", fmt.Errorf("format settings: %w", err)
	}
	return string(b), nil
}

// ParseTiers converts a JSON tier list into engine.BonusTiers for the
// given scope. Malformed money figures degrade to zero.
func (f *ConfigFactory) ParseTiers(scopeID string, tiersJSON string) ([]engine.BonusTier, error) {
	var raw []TierJSON
	if err := json.Unmarshal([]byte(tiersJSON), &raw); err != nil {
		return nil, fmt.Errorf("parse tiers: %w", err)
	}

	tiers := make([]engine.BonusTier, 0, len(raw))
	for _, r := range raw {
		scope := engine.ScopeStore
		if r.Scope == string(engine.ScopeStaff) {
			scope = engine.ScopeStaff
		}
		tierScopeID := r.ScopeID
		if tierScopeID == "" {
			tierScopeID = scopeID
		}
		tiers = append(tiers, engine.BonusTier{
			ID:                r.ID,
			TargetSalesAmount: engine.ParseMoney(r.TargetSalesAmount),
			BonusAmount:       engine.ParseMoney(r.BonusAmount),
			Description:       r.Description,
			IsActive:          r.IsActive,
			Scope:             scope,
			ScopeID:           tierScopeID,
		})
	}
	return tiers, nil
}
