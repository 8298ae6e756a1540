/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the engine's internal model from the external API contract. Money and
  hour figures travel as decimal strings; dates are "2006-01-02"; times
  of day are "HH:MM" local wall-clock with no timezone (callers normalize
  timezones upstream).

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

SEE ALSO:
  - handlers.go: uses these types
  - factory/config.go: SettingsJSON / TierJSON stored forms
*/
package api

import (
	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/payroll"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/schedule"
)

// =============================================================================
// STORE HOURS
// =============================================================================

type DayHoursDTO struct {
	Weekday string `json:"weekday"`
	IsOpen  bool   `json:"is_open"`
	Open    string `json:"open,omitempty"`
	Close   string `json:"close,omitempty"`
}

func toDayHoursDTO(d engine.DayHours) DayHoursDTO {
	dto := DayHoursDTO{Weekday: d.Weekday, IsOpen: d.IsOpen}
	if d.IsOpen {
		openAt, closeAt := d.Window()
		dto.Open = openAt.String()
		dto.Close = closeAt.String()
	}
	return dto
}

func (dto DayHoursDTO) toDomain() engine.DayHours {
	d := engine.DayHours{Weekday: dto.Weekday, IsOpen: dto.IsOpen}
	if t, err := engine.ParseTimeOfDay(dto.Open); err == nil {
		d.Open = t
	}
	if t, err := engine.ParseTimeOfDay(dto.Close); err == nil {
		d.Close = t
	}
	return d
}

// =============================================================================
// STAFF
// =============================================================================

type StaffDTO struct {
	ID                    string `json:"id,omitempty"`
	Name                  string `json:"name"`
	Role                  string `json:"role,omitempty"`
	PayType               string `json:"pay_type"`
	HourlyRate            string `json:"hourly_rate,omitempty"`
	SalaryAmount          string `json:"salary_amount,omitempty"`
	CommissionRate        string `json:"commission_rate,omitempty"`
	PreferredHoursPerWeek string `json:"preferred_hours_per_week,omitempty"`
	MaxHoursPerWeek       string `json:"max_hours_per_week,omitempty"`
}

func toStaffDTO(m engine.StaffMember) StaffDTO {
	return StaffDTO{
		ID:                    string(m.ID),
		Name:                  m.Name,
		Role:                  m.Role,
		PayType:               string(m.PayType),
		HourlyRate:            m.HourlyRate.String(),
		SalaryAmount:          m.SalaryAmount.String(),
		CommissionRate:        m.CommissionRate.String(),
		PreferredHoursPerWeek: m.PreferredHoursPerWeek.String(),
		MaxHoursPerWeek:       m.MaxHoursPerWeek.String(),
	}
}

func (dto StaffDTO) toDomain() engine.StaffMember {
	return engine.StaffMember{
		ID:                    engine.StaffID(dto.ID),
		Name:                  dto.Name,
		Role:                  dto.Role,
		PayType:               engine.PayType(dto.PayType),
		HourlyRate:            engine.ParseMoney(dto.HourlyRate),
		SalaryAmount:          engine.ParseMoney(dto.SalaryAmount),
		CommissionRate:        engine.ParseMoney(dto.CommissionRate),
		PreferredHoursPerWeek: engine.Hours(engine.ParseMoney(dto.PreferredHoursPerWeek).Decimal()),
		MaxHoursPerWeek:       engine.Hours(engine.ParseMoney(dto.MaxHoursPerWeek).Decimal()),
	}
}

// =============================================================================
// SHIFTS
// =============================================================================

type ShiftDTO struct {
	ID      string `json:"id,omitempty"`
	StoreID string `json:"store_id"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Start   string `json:"start"`
	End     string `json:"end"`
	Notes   string `json:"notes,omitempty"`
}

func toShiftDTO(s engine.ShiftAssignment) ShiftDTO {
	return ShiftDTO{
		ID:      string(s.ID),
		StoreID: string(s.StoreID),
		StaffID: string(s.StaffID),
		Date:    s.Date.String(),
		Start:   s.Start.String(),
		End:     s.End.String(),
		Notes:   s.Notes,
	}
}

func toShiftDTOs(shifts []engine.ShiftAssignment) []ShiftDTO {
	out := make([]ShiftDTO, 0, len(shifts))
	for _, s := range shifts {
		out = append(out, toShiftDTO(s))
	}
	return out
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

type GenerateScheduleRequest struct {
	WeekStart string `json:"week_start"` // any date; snapped to its Monday
	Persist   bool   `json:"persist,omitempty"`
}

type ConflictDTO struct {
	Type    string `json:"type"`
	StaffID string `json:"staff_id"`
	Date    string `json:"date"`
	Message string `json:"message"`
}

type GenerateScheduleResponse struct {
	WeekStart string        `json:"week_start"`
	Shifts    []ShiftDTO    `json:"shifts"`
	Conflicts []ConflictDTO `json:"conflicts"`
	Persisted bool          `json:"persisted"`
}

func toConflictDTOs(conflicts []engine.Conflict) []ConflictDTO {
	out := make([]ConflictDTO, 0, len(conflicts))
	for _, c := range conflicts {
		out = append(out, ConflictDTO{
			Type:    string(c.Type),
			StaffID: string(c.StaffID),
			Date:    c.Date.String(),
			Message: c.Message,
		})
	}
	return out
}

// =============================================================================
// SETTINGS
// =============================================================================

type SettingsDTO struct {
	MinStaffing         int  `json:"min_staffing"`
	MaxConsecutiveHours int  `json:"max_consecutive_hours"`
	LunchBreakRequired  bool `json:"lunch_break_required"`
	LunchBreakDuration  int  `json:"lunch_break_duration"`
	MinShiftDuration    int  `json:"min_shift_duration"`
	MaxHoursPerWeek     int  `json:"max_hours_per_week"`
}

func toSettingsDTO(s schedule.Settings) SettingsDTO {
	return SettingsDTO{
		MinStaffing:         s.MinStaffing,
		MaxConsecutiveHours: s.MaxConsecutiveHours,
		LunchBreakRequired:  s.LunchBreakRequired,
		LunchBreakDuration:  s.LunchBreakDuration,
		MinShiftDuration:    s.MinShiftDuration,
		MaxHoursPerWeek:     s.MaxHoursPerWeek,
	}
}

func (dto SettingsDTO) toDomain() schedule.Settings {
	return schedule.Settings{
		MinStaffing:         dto.MinStaffing,
		MaxConsecutiveHours: dto.MaxConsecutiveHours,
		LunchBreakRequired:  dto.LunchBreakRequired,
		LunchBreakDuration:  dto.LunchBreakDuration,
		MinShiftDuration:    dto.MinShiftDuration,
		MaxHoursPerWeek:     dto.MaxHoursPerWeek,
	}.Normalize()
}

// =============================================================================
// BONUS TIERS
// =============================================================================

type TierDTO struct {
	ID                string `json:"id,omitempty"`
	TargetSalesAmount string `json:"target_sales_amount"`
	BonusAmount       string `json:"bonus_amount"`
	Description       string `json:"description,omitempty"`
	IsActive          bool   `json:"is_active"`
	Scope             string `json:"scope,omitempty"`
	ScopeID           string `json:"scope_id,omitempty"`
}

func toTierDTOs(tiers []engine.BonusTier) []TierDTO {
	out := make([]TierDTO, 0, len(tiers))
	for _, t := range tiers {
		out = append(out, TierDTO{
			ID:                t.ID,
			TargetSalesAmount: t.TargetSalesAmount.String(),
			BonusAmount:       t.BonusAmount.String(),
			Description:       t.Description,
			IsActive:          t.IsActive,
			Scope:             string(t.Scope),
			ScopeID:           t.ScopeID,
		})
	}
	return out
}

func toTiers(dtos []TierDTO, scopeID string) []engine.BonusTier {
	out := make([]engine.BonusTier, 0, len(dtos))
	for _, d := range dtos {
		scope := engine.ScopeStore
		if d.Scope == string(engine.ScopeStaff) {
			scope = engine.ScopeStaff
		}
		tierScopeID := d.ScopeID
		if tierScopeID == "" {
			tierScopeID = scopeID
		}
		out = append(out, engine.BonusTier{
			ID:                d.ID,
			TargetSalesAmount: engine.ParseMoney(d.TargetSalesAmount),
			BonusAmount:       engine.ParseMoney(d.BonusAmount),
			Description:       d.Description,
			IsActive:          d.IsActive,
			Scope:             scope,
			ScopeID:           tierScopeID,
		})
	}
	return out
}

// =============================================================================
// PAYROLL
// =============================================================================

type PayrollRequest struct {
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	StoreSales  string            `json:"store_sales,omitempty"`
	StaffSales  map[string]string `json:"staff_sales,omitempty"`
}

type CompensationDTO struct {
	StaffID    string `json:"staff_id,omitempty"`
	StaffName  string `json:"staff_name,omitempty"`
	TotalHours string `json:"total_hours"`
	BasePay    string `json:"base_pay"`
	Bonus      string `json:"bonus"`
	TotalPay   string `json:"total_pay"`
}

type PayrollResponse struct {
	PeriodStart string            `json:"period_start"`
	PeriodEnd   string            `json:"period_end"`
	PerStaff    []CompensationDTO `json:"per_staff"`
	Totals      CompensationDTO   `json:"totals"`
}

func toCompensationDTO(r payroll.CompensationRecord) CompensationDTO {
	return CompensationDTO{
		StaffID:    string(r.StaffID),
		StaffName:  r.StaffName,
		TotalHours: r.TotalHours.String(),
		BasePay:    r.BasePay.String(),
		Bonus:      r.Bonus.String(),
		TotalPay:   r.TotalPay.String(),
	}
}

// =============================================================================
// SCENARIOS
// =============================================================================

type ScenarioDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type LoadScenarioRequest struct {
	ScenarioID string `json:"scenario_id"`
}
