package api

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/almanac-dev/almanac/internal/calendar"
	"github.com/almanac-dev/almanac/internal/config"
	"github.com/almanac-dev/almanac/internal/database"
)

// testRouter builds a full router backed by a migrated temp database.
// The mutate callback can adjust config before wiring, e.g. to enable
// auth.
func testRouter(t *testing.T, mutate func(*config.Config)) http.Handler {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelError, // Quiet during tests
	}))

	cfg := &config.Config{
		Port:         8080,
		Env:          config.EnvDevelopment,
		DatabasePath: filepath.Join(t.TempDir(), "test.db"),
		DefaultLat:   47.67,
		DefaultLng:   -122.38,
		LogLevel:     "error",
		LogFormat:    "text",
	}
	if mutate != nil {
		mutate(cfg)
	}

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), logger)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return SetupRoutes(NewHandlers(db, cfg, logger), cfg, logger)
}

// doJSON performs a request against the router and decodes the
// response envelope.
func doJSON(t *testing.T, router http.Handler, method, path string, body []byte) (int, Response) {
	t.Helper()

	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var resp Response
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response for %s %s: %v (body %q)", method, path, err, rec.Body.String())
	}
	return rec.Code, resp
}

// eventsData is the JSON shape of the events endpoint payload.
type eventsData struct {
	Year   int                         `json:"year"`
	Lat    float64                     `json:"lat"`
	Lng    float64                     `json:"lng"`
	Events map[string][]calendar.Event `json:"events"`
}

func decodeData(t *testing.T, resp Response, v interface{}) {
	t.Helper()

	raw, err := json.Marshal(resp.Data)
	if err != nil {
		t.Fatalf("re-marshal data: %v", err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}

func TestHealthCheck(t *testing.T) {
	router := testRouter(t, nil)

	code, resp := doJSON(t, router, http.MethodGet, "/health", nil)
	if code != http.StatusOK {
		t.Fatalf("GET /health status = %d, want 200", code)
	}
	if !resp.Success {
		t.Error("health response success = false, want true")
	}
}

func TestGetYearEvents(t *testing.T) {
	router := testRouter(t, nil)

	code, resp := doJSON(t, router, http.MethodGet, "/api/v1/events/2024", nil)
	if code != http.StatusOK {
		t.Fatalf("GET events status = %d, want 200", code)
	}

	var data eventsData
	decodeData(t, resp, &data)

	if data.Year != 2024 {
		t.Errorf("year = %d, want 2024", data.Year)
	}
	if data.Lat != 47.67 || data.Lng != -122.38 {
		t.Errorf("location = (%v, %v), want default profile location", data.Lat, data.Lng)
	}

	day, ok := data.Events["2024-07-04"]
	if !ok {
		t.Fatal("no events on 2024-07-04")
	}
	found := false
	for _, ev := range day {
		if ev.Label == "Independence Day" {
			found = true
		}
	}
	if !found {
		t.Errorf("2024-07-04 events = %v, want Independence Day", day)
	}
}

func TestGetYearEvents_FlagOverride(t *testing.T) {
	router := testRouter(t, nil)

	code, resp := doJSON(t, router, http.MethodGet,
		"/api/v1/events/2024?federalHolidays=false&observances=false&sunriseSunset=false&fullMoons=false", nil)
	if code != http.StatusOK {
		t.Fatalf("GET events status = %d, want 200", code)
	}

	var data eventsData
	decodeData(t, resp, &data)

	// Only equinoxes and solstices remain: four dated entries.
	if len(data.Events) != 4 {
		t.Errorf("event days = %d, want 4 seasonal markers only", len(data.Events))
	}
	if _, ok := data.Events["2024-07-04"]; ok {
		t.Error("federal holiday present despite federalHolidays=false")
	}
}

func TestGetYearEvents_Errors(t *testing.T) {
	router := testRouter(t, nil)

	tests := []struct {
		name string
		path string
	}{
		{"non-numeric year", "/api/v1/events/abcd"},
		{"year out of range", "/api/v1/events/0"},
		{"unknown profile", "/api/v1/events/2024?profile=nope"},
		{"bad lat", "/api/v1/events/2024?lat=north"},
		{"bad flag", "/api/v1/events/2024?fullMoons=maybe"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := doJSON(t, router, http.MethodGet, tt.path, nil)
			if code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", code)
			}
			if resp.Success {
				t.Error("success = true, want false")
			}
		})
	}
}

func TestGetYearEventsICS(t *testing.T) {
	router := testRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events/2024/ics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("GET ics status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/calendar") {
		t.Errorf("Content-Type = %q, want text/calendar", ct)
	}

	body := rec.Body.String()
	if !strings.HasPrefix(body, "BEGIN:VCALENDAR") {
		t.Error("body does not start with BEGIN:VCALENDAR")
	}
	if !strings.Contains(body, "SUMMARY:Independence Day") {
		t.Error("export missing Independence Day VEVENT")
	}
	if !strings.Contains(body, "DTSTART;VALUE=DATE:20240704") {
		t.Error("export missing all-day DTSTART for July 4")
	}
	if !strings.HasSuffix(strings.TrimSpace(body), "END:VCALENDAR") {
		t.Error("body does not end with END:VCALENDAR")
	}
}

func TestGetMonthGrid(t *testing.T) {
	router := testRouter(t, nil)

	code, resp := doJSON(t, router, http.MethodGet, "/api/v1/grid/2024/1", nil)
	if code != http.StatusOK {
		t.Fatalf("GET grid status = %d, want 200", code)
	}

	var data struct {
		Year  int                  `json:"year"`
		Month int                  `json:"month"`
		Grid  [][]calendar.DayCell `json:"grid"`
	}
	decodeData(t, resp, &data)

	// February 2024 lays out in five rows of seven.
	if len(data.Grid) != 5 {
		t.Fatalf("grid rows = %d, want 5", len(data.Grid))
	}
	for i, row := range data.Grid {
		if len(row) != 7 {
			t.Errorf("row %d has %d cells, want 7", i, len(row))
		}
	}
}

func TestGetMonthGrid_InvalidMonth(t *testing.T) {
	router := testRouter(t, nil)

	for _, path := range []string{"/api/v1/grid/2024/12", "/api/v1/grid/2024/jan"} {
		code, _ := doJSON(t, router, http.MethodGet, path, nil)
		if code != http.StatusBadRequest {
			t.Errorf("GET %s status = %d, want 400", path, code)
		}
	}
}

func TestParseBirthdaysEndpoint(t *testing.T) {
	router := testRouter(t, nil)

	body := []byte(`{"text": "Jun 12 1984 Joe\nnot a line\nMar 3 Ann"}`)
	code, resp := doJSON(t, router, http.MethodPost, "/api/v1/birthdays/parse", body)
	if code != http.StatusOK {
		t.Fatalf("POST parse status = %d, want 200", code)
	}

	var data struct {
		Birthdays []calendar.Birthday `json:"birthdays"`
	}
	decodeData(t, resp, &data)

	if len(data.Birthdays) != 2 {
		t.Fatalf("parsed %d birthdays, want 2", len(data.Birthdays))
	}
	if data.Birthdays[0].Name != "Joe" || data.Birthdays[1].Name != "Ann" {
		t.Errorf("names = [%s, %s], want [Joe, Ann]", data.Birthdays[0].Name, data.Birthdays[1].Name)
	}
}

func TestProfileCRUD(t *testing.T) {
	router := testRouter(t, nil)

	// Save a new profile.
	body := []byte(`{"federalHolidays": true, "fullMoons": true, "lat": 61.22, "lng": -149.9, "birthdayText": "Mar 3 Ann"}`)
	code, resp := doJSON(t, router, http.MethodPut, "/api/v1/profiles/office", body)
	if code != http.StatusOK {
		t.Fatalf("PUT profile status = %d, want 200 (error: %+v)", code, resp.Error)
	}

	// Read it back.
	code, resp = doJSON(t, router, http.MethodGet, "/api/v1/profiles/office", nil)
	if code != http.StatusOK {
		t.Fatalf("GET profile status = %d, want 200", code)
	}
	var profile database.Profile
	decodeData(t, resp, &profile)
	if !profile.FederalHolidays || profile.Observances {
		t.Errorf("profile flags = %+v, want federal on, observances off", profile)
	}
	if profile.Lat != 61.22 {
		t.Errorf("profile lat = %v, want 61.22", profile.Lat)
	}

	// List includes default and office.
	code, resp = doJSON(t, router, http.MethodGet, "/api/v1/profiles", nil)
	if code != http.StatusOK {
		t.Fatalf("GET profiles status = %d, want 200", code)
	}
	var list struct {
		Profiles []database.Profile `json:"profiles"`
	}
	decodeData(t, resp, &list)
	if len(list.Profiles) != 2 {
		t.Errorf("listed %d profiles, want 2", len(list.Profiles))
	}

	// Computed events honor the saved profile.
	code, resp = doJSON(t, router, http.MethodGet, "/api/v1/events/2024?profile=office", nil)
	if code != http.StatusOK {
		t.Fatalf("GET events with profile status = %d, want 200", code)
	}
	var data eventsData
	decodeData(t, resp, &data)
	if data.Lat != 61.22 {
		t.Errorf("events lat = %v, want profile location 61.22", data.Lat)
	}
	if _, ok := data.Events["2024-03-31"]; ok {
		t.Error("Easter present despite profile disabling observances")
	}

	// Delete it.
	code, _ = doJSON(t, router, http.MethodDelete, "/api/v1/profiles/office", nil)
	if code != http.StatusOK {
		t.Fatalf("DELETE profile status = %d, want 200", code)
	}
	code, _ = doJSON(t, router, http.MethodGet, "/api/v1/profiles/office", nil)
	if code != http.StatusNotFound {
		t.Errorf("GET deleted profile status = %d, want 404", code)
	}
}

func TestSaveProfile_InvalidLocation(t *testing.T) {
	router := testRouter(t, nil)

	body := []byte(`{"lat": 123.4, "lng": 0}`)
	code, _ := doJSON(t, router, http.MethodPut, "/api/v1/profiles/bad", body)
	if code != http.StatusBadRequest {
		t.Errorf("PUT out-of-range lat status = %d, want 400", code)
	}
}

func TestDeleteProfile_DefaultProtected(t *testing.T) {
	router := testRouter(t, nil)

	code, _ := doJSON(t, router, http.MethodDelete, "/api/v1/profiles/default", nil)
	if code != http.StatusBadRequest {
		t.Errorf("DELETE default profile status = %d, want 400", code)
	}
}

func TestAuthMiddleware_APIKey(t *testing.T) {
	router := testRouter(t, func(cfg *config.Config) {
		cfg.APIKey = "secret-key"
	})

	body := []byte(`{"lat": 47.67, "lng": -122.38}`)

	// Missing key.
	req := httptest.NewRequest(http.MethodPut, "/api/v1/profiles/office", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("missing key status = %d, want 401", rec.Code)
	}

	// Wrong key.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/profiles/office", bytes.NewReader(body))
	req.Header.Set("X-API-Key", "wrong")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("wrong key status = %d, want 401", rec.Code)
	}

	// Correct key.
	req = httptest.NewRequest(http.MethodPut, "/api/v1/profiles/office", bytes.NewReader(body))
	req.Header.Set("X-API-Key", "secret-key")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("correct key status = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}

	// Reads stay public.
	req = httptest.NewRequest(http.MethodGet, "/api/v1/profiles", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("public read status = %d, want 200", rec.Code)
	}
}
