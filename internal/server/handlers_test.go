package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/claude/liftcalc/internal/calc"
	"github.com/claude/liftcalc/internal/config"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(config.Default(), log)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, req)
	return rec
}

// TestSuggestAbsolute verifies the full pipeline over the API: pattern and
// weight text in, suggested sets with warm-ups and plate loadings out.
func TestSuggestAbsolute(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/suggest", `{
		"pattern": "3x6",
		"weights": "60, 62.5, 65",
		"felt": "solid",
		"lift": "squat"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp suggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(resp.Sets))
	}

	want := []float64{62.5, 65, 67.5}
	for i, set := range resp.Sets {
		if set.Weight != want[i] {
			t.Errorf("set %d weight = %v, want %v", i, set.Weight, want[i])
		}
		if set.Reps != "6" {
			t.Errorf("set %d reps = %q, want %q", i, set.Reps, "6")
		}
	}
	if resp.Sets[0].Display != "6 x 62.5 kg" {
		t.Errorf("display = %q, want %q", resp.Sets[0].Display, "6 x 62.5 kg")
	}

	// Default percent-ramp warm-ups from the 67.5 top set.
	wantRungs := []calc.WarmupRung{{Reps: 5, Weight: 27.5}, {Reps: 4, Weight: 35}, {Reps: 3, Weight: 40}, {Reps: 2, Weight: 47.5}}
	if len(resp.Warmups) != len(wantRungs) {
		t.Fatalf("warmups = %+v, want %+v", resp.Warmups, wantRungs)
	}
	for i, r := range resp.Warmups {
		if r != wantRungs[i] {
			t.Errorf("warmup %d = %+v, want %+v", i, r, wantRungs[i])
		}
	}

	// 67.5 on a 20 bar = 23.75 per side.
	wantPlates := []calc.PlateCount{{Count: 1, Denomination: 20}, {Count: 1, Denomination: 2.5}, {Count: 1, Denomination: 1.25}}
	top := resp.Sets[2]
	if len(top.Plates) != len(wantPlates) {
		t.Fatalf("plates = %+v, want %+v", top.Plates, wantPlates)
	}
	for i, p := range top.Plates {
		if p != wantPlates[i] {
			t.Errorf("plate %d = %+v, want %+v", i, p, wantPlates[i])
		}
	}
}

// TestSuggestPressingDefaults verifies a pressing lift picks up the smaller
// default increment table.
func TestSuggestPressingDefaults(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/suggest", `{
		"pattern": "3x5",
		"weights": "60",
		"felt": "easy",
		"lift": "bench press"
	}`)
	var resp suggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Sets) != 3 {
		t.Fatalf("sets = %d, want 3", len(resp.Sets))
	}
	// easy on a press is +2.5, and the single weight carries forward.
	for i, set := range resp.Sets {
		if set.Weight != 62.5 {
			t.Errorf("set %d weight = %v, want 62.5", i, set.Weight)
		}
	}
}

// TestSuggestIncrementOverride verifies a caller-supplied table wins over
// the lift defaults.
func TestSuggestIncrementOverride(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/suggest", `{
		"pattern": "1x5",
		"weights": "100",
		"felt": "solid",
		"lift": "squat",
		"increments": {"solid": 10}
	}`)
	var resp suggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Sets) != 1 || resp.Sets[0].Weight != 110 {
		t.Errorf("sets = %+v, want one set at 110", resp.Sets)
	}
}

// TestSuggestUnparseable verifies garbage text degrades to an empty result
// with a 200, not an error.
func TestSuggestUnparseable(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/suggest", `{
		"pattern": "what",
		"weights": "junk",
		"felt": "solid",
		"lift": "squat"
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp suggestResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Sets) != 0 || len(resp.Warmups) != 0 {
		t.Errorf("resp = %+v, want empty sets and warmups", resp)
	}
}

// TestSuggestBadJSON verifies malformed request bodies get a 400.
func TestSuggestBadJSON(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/suggest", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

// TestWarmupsOffsetPolicy verifies the offset policy over the API, matching
// the documented 65 kg / 20 kg bar / 7.5 offset ramp.
func TestWarmupsOffsetPolicy(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/warmups", `{
		"weight": 65,
		"policy": "offset",
		"offset": 7.5
	}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Warmups []calc.WarmupRung `json:"warmups"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	want := []calc.WarmupRung{{Reps: 5, Weight: 25}, {Reps: 3, Weight: 40}, {Reps: 1, Weight: 57.5}}
	if len(resp.Warmups) != len(want) {
		t.Fatalf("warmups = %+v, want %+v", resp.Warmups, want)
	}
	for i, r := range resp.Warmups {
		if r != want[i] {
			t.Errorf("rung %d = %+v, want %+v", i, r, want[i])
		}
	}
}

// TestScheme verifies manual scheme resolution over the API.
func TestScheme(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/scheme", `{
		"text": "5x30, 4x40%, abc",
		"base": 80,
		"step": 1
	}`)
	var resp struct {
		Rows []calc.ResolvedRow `json:"rows"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Rows) != 2 {
		t.Fatalf("rows = %+v, want 2 (malformed token dropped)", resp.Rows)
	}
	if resp.Rows[0].Weight != 30 || resp.Rows[1].Weight != 32 {
		t.Errorf("weights = %v and %v, want 30 and 32", resp.Rows[0].Weight, resp.Rows[1].Weight)
	}
}

// TestPlates verifies the plate endpoint and its empty-breakdown edge.
func TestPlates(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodPost, "/api/v1/plates", `{"total": 100}`)
	var resp struct {
		PerSide float64           `json:"per_side"`
		Plates  []calc.PlateCount `json:"plates"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.PerSide != 40 {
		t.Errorf("per_side = %v, want 40", resp.PerSide)
	}
	want := []calc.PlateCount{{Count: 1, Denomination: 25}, {Count: 1, Denomination: 10}, {Count: 1, Denomination: 5}}
	for i, p := range resp.Plates {
		if p != want[i] {
			t.Errorf("plate %d = %+v, want %+v", i, p, want[i])
		}
	}

	rec = doJSON(t, s, http.MethodPost, "/api/v1/plates", `{"total": 15}`)
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if len(resp.Plates) != 0 {
		t.Errorf("plates = %+v, want none for a total below the bar", resp.Plates)
	}
}

// TestIncrementsEndpoint verifies the per-lift defaults lookup.
func TestIncrementsEndpoint(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/api/v1/increments/press", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var resp struct {
		Lift       string             `json:"lift"`
		Mode       string             `json:"mode"`
		Increments map[string]float64 `json:"increments"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("decode error: %v", err)
	}
	if resp.Increments["solid"] != 1.25 {
		t.Errorf("solid = %v, want 1.25 (pressing lift)", resp.Increments["solid"])
	}
	if resp.Mode != "absolute" {
		t.Errorf("mode = %q, want absolute", resp.Mode)
	}
}

// TestHealthz verifies the liveness endpoint.
func TestHealthz(t *testing.T) {
	s := testServer(t)
	rec := doJSON(t, s, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
