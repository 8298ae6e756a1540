/*
handlers.go - HTTP API handlers for the scheduling and compensation engine

PURPOSE:
  Exposes the engine via REST. Handles HTTP request/response and JSON
  serialization, then delegates to the pure engine packages. The engine
  itself never touches HTTP types.

ENDPOINTS:
  Store hours:
    GET    /api/stores/{id}/hours
    PUT    /api/stores/{id}/hours

  Staff:
    GET    /api/stores/{id}/staff
    POST   /api/stores/{id}/staff       Create or update
    DELETE /api/staff/{id}

  Settings / tiers:
    GET    /api/stores/{id}/settings
    PUT    /api/stores/{id}/settings
    GET    /api/tiers/{scope}
    PUT    /api/tiers/{scope}

  Shifts:
    GET    /api/stores/{id}/shifts?from=YYYY-MM-DD&to=YYYY-MM-DD
    POST   /api/stores/{id}/shifts      Manual add (validates start < end)
    DELETE /api/shifts/{id}

  Engine:
    POST   /api/stores/{id}/schedule/generate   {week_start, persist}
    POST   /api/stores/{id}/payroll             {period_start, period_end, sales...}

  Scenarios:
    GET    /api/scenarios
    POST   /api/scenarios/load

ERROR HANDLING:
  Errors come back as JSON {"error": ...} with status mapped through the
  engine's taxonomy: 400 for client input, 404 for missing records, 500
  otherwise. Generation never fails on unsatisfiable coverage - the
  conflicts list carries that and the caller decides what to do.

SEE ALSO:
  - dto.go: request/response shapes
  - scenarios.go: demo data loaders
  - server.go: router setup and middleware
*/
package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/honesthomesales/scrub-shop-road-app-sub000/engine"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/factory"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/payroll"
	"github.com/honesthomesales/scrub-shop-road-app-sub000/schedule"
)

// Store is the persistence surface the handlers depend on. Both the
// SQLite store and the in-memory store satisfy it.
type Store interface {
	engine.HoursStore
	engine.StaffStore
	engine.ShiftStore
	engine.TierStore
	engine.SettingsStore
}

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Store        Store
	Factory      *factory.ConfigFactory
	Generator    schedule.Generator
	Calculator   payroll.Calculator
	Availability engine.AvailabilityCalculator
	Log          zerolog.Logger

	// Track currently loaded scenario (dev/demo)
	currentScenario string
}

// NewHandler creates a new handler with the given store.
func NewHandler(store Store, log zerolog.Logger) *Handler {
	return &Handler{
		Store:   store,
		Factory: factory.NewConfigFactory(),
		Log:     log,
	}
}

// =============================================================================
// STORE HOURS
// =============================================================================

func (h *Handler) GetStoreHours(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	hours, err := h.Store.GetStoreHours(r.Context(), storeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load store hours", err)
		return
	}
	if len(hours) == 0 {
		hours = defaultWeekHours()
	}

	out := make([]DayHoursDTO, 0, len(hours))
	for _, d := range hours {
		out = append(out, toDayHoursDTO(d))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) SaveStoreHours(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var dtos []DayHoursDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	hours := make([]engine.DayHours, 0, len(dtos))
	for _, dto := range dtos {
		hours = append(hours, dto.toDomain())
	}
	if err := h.Store.SaveStoreHours(r.Context(), storeID, hours); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save store hours", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// defaultWeekHours is the fallback for stores without configured hours:
// open Monday-Saturday, 09:00-17:00.
func defaultWeekHours() []engine.DayHours {
	weekdays := []string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday"}
	hours := make([]engine.DayHours, 0, len(weekdays))
	for _, wd := range weekdays {
		hours = append(hours, engine.DayHours{
			Weekday: wd,
			IsOpen:  true,
			Open:    engine.DefaultOpenTime,
			Close:   engine.DefaultCloseTime,
		})
	}
	return hours
}

// =============================================================================
// STAFF
// =============================================================================

func (h *Handler) ListStaff(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	roster, err := h.Store.GetStaffForStore(r.Context(), storeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load staff", err)
		return
	}
	out := make([]StaffDTO, 0, len(roster))
	for _, m := range roster {
		out = append(out, toStaffDTO(m))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handler) SaveStaff(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var dto StaffDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if dto.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required", nil)
		return
	}
	switch engine.PayType(dto.PayType) {
	case engine.PayHourly, engine.PaySalary, engine.PaySalaryBonus:
	default:
		writeError(w, http.StatusBadRequest, "pay_type must be hourly, salary, or salary+bonus", nil)
		return
	}

	if err := h.Store.SaveStaff(r.Context(), storeID, dto.toDomain()); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save staff", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"status": "saved"})
}

func (h *Handler) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	staffID := engine.StaffID(chi.URLParam(r, "id"))

	if err := h.Store.DeleteStaff(r.Context(), staffID); err != nil {
		writeEngineError(w, "failed to delete staff", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// SETTINGS
// =============================================================================

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	configJSON, err := h.Store.GetSettings(r.Context(), storeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load settings", err)
		return
	}
	settings, err := h.Factory.ParseSettings(configJSON)
	if err != nil {
		// Corrupt stored config degrades to defaults rather than failing.
		h.Log.Warn().Err(err).Str("store_id", string(storeID)).Msg("stored settings unparsable, serving defaults")
		settings = schedule.DefaultSettings()
	}
	writeJSON(w, http.StatusOK, toSettingsDTO(settings))
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var dto SettingsDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	configJSON, err := h.Factory.FormatSettings(dto.toDomain())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode settings", err)
		return
	}
	if err := h.Store.SaveSettings(r.Context(), storeID, configJSON); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// =============================================================================
// BONUS TIERS
// =============================================================================

func (h *Handler) GetTiers(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scope")

	tiers, err := h.Store.GetBonusTiers(r.Context(), scopeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load tiers", err)
		return
	}
	writeJSON(w, http.StatusOK, toTierDTOs(tiers))
}

func (h *Handler) SaveTiers(w http.ResponseWriter, r *http.Request) {
	scopeID := chi.URLParam(r, "scope")

	var dtos []TierDTO
	if err := json.NewDecoder(r.Body).Decode(&dtos); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	if err := h.Store.SaveBonusTiers(r.Context(), scopeID, toTiers(dtos, scopeID)); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save tiers", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "saved"})
}

// =============================================================================
// SHIFTS
// =============================================================================

func (h *Handler) ListShifts(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	from, err := engine.ParseDate(r.URL.Query().Get("from"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid from date", err)
		return
	}
	to, err := engine.ParseDate(r.URL.Query().Get("to"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid to date", err)
		return
	}
	if to.Before(from) {
		writeError(w, http.StatusBadRequest, "to must not precede from", engine.ErrInvalidPeriod)
		return
	}

	shifts, err := h.Store.GetShiftsInRange(r.Context(), storeID, from, to)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load shifts", err)
		return
	}
	writeJSON(w, http.StatusOK, toShiftDTOs(shifts))
}

func (h *Handler) CreateShift(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var dto ShiftDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	date, err := engine.ParseDate(dto.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date", err)
		return
	}
	start, err := engine.ParseTimeOfDay(dto.Start)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid start time", err)
		return
	}
	end, err := engine.ParseTimeOfDay(dto.End)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid end time", err)
		return
	}

	saved, err := h.Store.SaveShift(r.Context(), engine.ShiftAssignment{
		StoreID: storeID,
		StaffID: engine.StaffID(dto.StaffID),
		Date:    date,
		Start:   start,
		End:     end,
		Notes:   dto.Notes,
	})
	if err != nil {
		writeEngineError(w, "failed to save shift", err)
		return
	}
	writeJSON(w, http.StatusCreated, toShiftDTO(saved))
}

func (h *Handler) DeleteShift(w http.ResponseWriter, r *http.Request) {
	shiftID := engine.ShiftID(chi.URLParam(r, "id"))

	if err := h.Store.DeleteShift(r.Context(), shiftID); err != nil {
		writeEngineError(w, "failed to delete shift", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// =============================================================================
// SCHEDULE GENERATION
// =============================================================================

func (h *Handler) GenerateSchedule(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var req GenerateScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	anchor, err := engine.ParseDate(req.WeekStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid week_start", err)
		return
	}
	week := engine.WeekOf(anchor)

	result, err := h.generateWeek(r, storeID, week)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to generate schedule", err)
		return
	}

	resp := GenerateScheduleResponse{
		WeekStart: week.Monday.String(),
		Shifts:    toShiftDTOs(result.Shifts),
		Conflicts: toConflictDTOs(result.Conflicts),
	}

	if req.Persist {
		persisted := make([]engine.ShiftAssignment, 0, len(result.Shifts))
		for _, s := range result.Shifts {
			saved, err := h.Store.SaveShift(r.Context(), s)
			if err != nil {
				// Persistence failures are the caller's to handle; no retry here.
				writeError(w, http.StatusInternalServerError, "failed to persist generated shifts", err)
				return
			}
			persisted = append(persisted, saved)
		}
		resp.Shifts = toShiftDTOs(persisted)
		resp.Persisted = true
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) generateWeek(r *http.Request, storeID engine.StoreID, week engine.Week) (schedule.Result, error) {
	ctx := r.Context()

	hours, err := h.Store.GetStoreHours(ctx, storeID)
	if err != nil {
		return schedule.Result{}, err
	}
	if len(hours) == 0 {
		hours = defaultWeekHours()
	}
	roster, err := h.Store.GetStaffForStore(ctx, storeID)
	if err != nil {
		return schedule.Result{}, err
	}
	configJSON, err := h.Store.GetSettings(ctx, storeID)
	if err != nil {
		return schedule.Result{}, err
	}
	settings, err := h.Factory.ParseSettings(configJSON)
	if err != nil {
		settings = schedule.DefaultSettings()
	}

	weekPeriod := week.Period()
	existing, err := h.Store.GetShiftsInRange(ctx, storeID, weekPeriod.Start, weekPeriod.End)
	if err != nil {
		return schedule.Result{}, err
	}

	availability := h.Availability.ForWeek(roster, existing)
	return h.Generator.GenerateWeek(storeID, week, hours, availability, settings), nil
}

// =============================================================================
// PAYROLL
// =============================================================================

func (h *Handler) PayrollReport(w http.ResponseWriter, r *http.Request) {
	storeID := engine.StoreID(chi.URLParam(r, "id"))

	var req PayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err)
		return
	}
	start, err := engine.ParseDate(req.PeriodStart)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_start", err)
		return
	}
	end, err := engine.ParseDate(req.PeriodEnd)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid period_end", err)
		return
	}
	if end.Before(start) {
		writeError(w, http.StatusBadRequest, "period_end must not precede period_start", engine.ErrInvalidPeriod)
		return
	}
	period := engine.Period{Start: start, End: end}

	ctx := r.Context()
	roster, err := h.Store.GetStaffForStore(ctx, storeID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load staff", err)
		return
	}
	shifts, err := h.Store.GetShiftsInRange(ctx, storeID, period.Start, period.End)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load shifts", err)
		return
	}

	// Store-wide tiers plus any staff-scoped sets for roster members.
	tiers, err := h.Store.GetBonusTiers(ctx, string(storeID))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load tiers", err)
		return
	}
	for _, m := range roster {
		staffTiers, err := h.Store.GetBonusTiers(ctx, string(m.ID))
		if err != nil {
			writeError(w, http.StatusInternalServerError, "failed to load tiers", err)
			return
		}
		tiers = append(tiers, staffTiers...)
	}

	sales := payroll.SalesFigures{
		StoreSales: engine.ParseMoney(req.StoreSales),
		PerStaff:   make(map[engine.StaffID]engine.Money, len(req.StaffSales)),
	}
	for id, amount := range req.StaffSales {
		sales.PerStaff[engine.StaffID(id)] = engine.ParseMoney(amount)
	}

	report := h.Calculator.ForPeriod(roster, shifts, period, tiers, sales)

	resp := PayrollResponse{
		PeriodStart: period.Start.String(),
		PeriodEnd:   period.End.String(),
		PerStaff:    make([]CompensationDTO, 0, len(report.PerStaff)),
		Totals:      toCompensationDTO(report.Totals),
	}
	for _, rec := range report.PerStaff {
		resp.PerStaff = append(resp.PerStaff, toCompensationDTO(rec))
	}
	// Totals row carries no staff identity.
	resp.Totals.StaffID = ""
	resp.Totals.StaffName = ""

	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// RESPONSE HELPERS
// =============================================================================

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string, err error) {
	body := map[string]string{"error": message}
	if err != nil {
		body["detail"] = err.Error()
	}
	writeJSON(w, status, body)
}

// writeEngineError maps engine errors onto HTTP statuses.
func writeEngineError(w http.ResponseWriter, message string, err error) {
	switch {
	case engine.IsNotFound(err):
		writeError(w, http.StatusNotFound, message, err)
	case engine.IsClientError(err):
		writeError(w, http.StatusBadRequest, message, err)
	default:
		writeError(w, http.StatusInternalServerError, message, err)
	}
}
