package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/almanac-dev/almanac/internal/calendar"
	"github.com/almanac-dev/almanac/internal/config"
	"github.com/almanac-dev/almanac/internal/database"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	db     *database.DB
	cfg    *config.Config
	logger *slog.Logger
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(db *database.DB, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		db:     db,
		cfg:    cfg,
		logger: logger,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := h.db.Health(ctx); err != nil {
		h.logger.Warn("health check failed", slog.Any("error", err))
		WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", "HEALTH_CHECK_FAILED")
		return
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// yearParam extracts and validates the {year} path parameter.
func yearParam(r *http.Request) (int, error) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		return 0, fmt.Errorf("invalid year %q", chi.URLParam(r, "year"))
	}
	if year < 1 || year > 9999 {
		return 0, fmt.Errorf("year %d out of range 1-9999", year)
	}
	return year, nil
}

// eventRequest resolves the computation inputs for an events request:
// the saved profile (default unless ?profile= names another) overlaid
// with any per-request query overrides.
func (h *Handlers) eventRequest(r *http.Request) (lat, lng float64, opts calendar.Options, err error) {
	ctx := r.Context()
	q := r.URL.Query()

	name := q.Get("profile")
	if name == "" {
		name = database.DefaultProfileName
	}

	profile, err := h.db.GetProfile(ctx, name)
	if err != nil {
		if database.IsNotFound(err) {
			return 0, 0, opts, fmt.Errorf("profile %q not found", name)
		}
		return 0, 0, opts, fmt.Errorf("load profile: %w", err)
	}

	lat, lng = profile.Lat, profile.Lng
	opts = profile.Options()

	if v := q.Get("lat"); v != "" {
		if lat, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, opts, fmt.Errorf("invalid lat %q", v)
		}
	}
	if v := q.Get("lng"); v != "" {
		if lng, err = strconv.ParseFloat(v, 64); err != nil {
			return 0, 0, opts, fmt.Errorf("invalid lng %q", v)
		}
	}

	for param, flag := range map[string]*bool{
		"federalHolidays":    &opts.FederalHolidays,
		"observances":        &opts.Observances,
		"sunriseSunset":      &opts.SunriseSunset,
		"fullMoons":          &opts.FullMoons,
		"equinoxesSolstices": &opts.EquinoxesSolstices,
	} {
		if v := q.Get(param); v != "" {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return 0, 0, opts, fmt.Errorf("invalid %s %q", param, v)
			}
			*flag = b
		}
	}

	return lat, lng, opts, nil
}

// eventMapJSON converts an EventMap to its transport shape: an object
// keyed by YYYY-MM-DD date strings.
func eventMapJSON(events calendar.EventMap) map[string][]calendar.Event {
	out := make(map[string][]calendar.Event, len(events))
	for key, day := range events {
		d := calendar.CivilDate{Year: key.Year, Month: key.Month, Day: key.Day}
		out[d.String()] = day
	}
	return out
}

// GetYearEvents handles GET /api/v1/events/{year}
func (h *Handlers) GetYearEvents(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	lat, lng, opts, err := h.eventRequest(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	events := calendar.ComputeEvents(year, lat, lng, opts)

	WriteSuccess(w, map[string]interface{}{
		"year":   year,
		"lat":    lat,
		"lng":    lng,
		"events": eventMapJSON(events),
	})
}

// GetYearEventsICS handles GET /api/v1/events/{year}/ics
func (h *Handlers) GetYearEventsICS(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	lat, lng, opts, err := h.eventRequest(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	events := calendar.ComputeEvents(year, lat, lng, opts)

	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=almanac_%d.ics", year))
	if err := WriteICS(w, year, events); err != nil {
		h.logger.Error("failed to write ICS export", slog.Any("error", err))
	}
}

// GetMonthGrid handles GET /api/v1/grid/{year}/{month}
func (h *Handlers) GetMonthGrid(w http.ResponseWriter, r *http.Request) {
	year, err := yearParam(r)
	if err != nil {
		WriteBadRequest(w, err.Error())
		return
	}

	month, err := strconv.Atoi(chi.URLParam(r, "month"))
	if err != nil || month < 0 || month > 11 {
		WriteBadRequest(w, fmt.Sprintf("invalid month %q; months are 0-11", chi.URLParam(r, "month")))
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"month": month,
		"grid":  calendar.ComputeMonthGrid(year, month),
	})
}

// ParseBirthdays handles POST /api/v1/birthdays/parse
func (h *Handlers) ParseBirthdays(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Text string `json:"text"`
	}
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	birthdays := calendar.ParseBirthdays(req.Text)
	if birthdays == nil {
		birthdays = []calendar.Birthday{}
	}

	WriteSuccess(w, map[string]interface{}{
		"birthdays": birthdays,
	})
}

// ListProfiles handles GET /api/v1/profiles
func (h *Handlers) ListProfiles(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.db.ListProfiles(r.Context())
	if err != nil {
		h.logger.Error("failed to list profiles", slog.Any("error", err))
		WriteInternalError(w, "Failed to list profiles")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"profiles": profiles,
	})
}

// GetProfile handles GET /api/v1/profiles/{name}
func (h *Handlers) GetProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	profile, err := h.db.GetProfile(r.Context(), name)
	if err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Profile not found")
			return
		}
		h.logger.Error("failed to get profile", slog.Any("error", err))
		WriteInternalError(w, "Failed to retrieve profile")
		return
	}

	WriteSuccess(w, profile)
}

// SaveProfile handles PUT /api/v1/profiles/{name}
func (h *Handlers) SaveProfile(w http.ResponseWriter, r *http.Request) {
	var req database.Profile
	if err := decodeJSON(r, &req); err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid request body: %v", err))
		return
	}

	req.Name = chi.URLParam(r, "name")
	if req.Lat < -90 || req.Lat > 90 || req.Lng < -180 || req.Lng > 180 {
		WriteBadRequest(w, "lat must be in [-90, 90] and lng in [-180, 180]")
		return
	}

	saved, err := h.db.SaveProfile(r.Context(), &req)
	if err != nil {
		h.logger.Error("failed to save profile", slog.Any("error", err))
		WriteInternalError(w, "Failed to save profile")
		return
	}

	WriteSuccess(w, saved)
}

// DeleteProfile handles DELETE /api/v1/profiles/{name}
func (h *Handlers) DeleteProfile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	if err := h.db.DeleteProfile(r.Context(), name); err != nil {
		if database.IsNotFound(err) {
			WriteNotFound(w, "Profile not found")
			return
		}
		if name == database.DefaultProfileName {
			WriteBadRequest(w, "The default profile cannot be deleted")
			return
		}
		h.logger.Error("failed to delete profile", slog.Any("error", err))
		WriteInternalError(w, "Failed to delete profile")
		return
	}

	WriteSuccess(w, map[string]string{"message": "Profile deleted"})
}

// decodeJSON decodes JSON request body.
func decodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return fmt.Errorf("request body is empty")
	}
	defer r.Body.Close()

	return json.NewDecoder(r.Body).Decode(v)
}
