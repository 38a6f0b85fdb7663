package endpoint

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jonwraymond/healthops/group"
	"github.com/jonwraymond/healthops/health"
)

func testRegistry(t *testing.T) *health.Registry {
	t.Helper()
	reg := health.NewRegistry()
	must := func(err error) {
		if err != nil {
			t.Fatal(err)
		}
	}
	must(reg.Register("ping", health.NewPingIndicator()))
	must(reg.Register("db/primary", health.StatusIndicator(health.StatusUp)))
	must(reg.Register("db/replica", health.IndicatorFunc(func(ctx context.Context) health.Result {
		return health.Down(errors.New("replication lag")).WithDetail("lag_s", 42)
	})))
	return reg
}

func testGroups(t *testing.T) *group.Groups {
	t.Helper()
	primary := group.NewGroup(group.GroupConfig{ShowDetails: group.ShowAlways})
	liveness := group.NewGroup(group.GroupConfig{
		Include: []string{"ping"},
		AdditionalPath: &group.AdditionalPath{
			Namespace: group.NamespaceServer,
			Value:     "/livez",
		},
	})
	readiness := group.NewGroup(group.GroupConfig{
		Include:     []string{"db"},
		ShowDetails: group.ShowWhenAuthorized,
		AdditionalPath: &group.AdditionalPath{
			Namespace: group.NamespaceManagement,
			Value:     "/readyz",
		},
	})

	groups, err := group.NewGroups(primary, map[string]group.Group{
		"liveness":  liveness,
		"readiness": readiness,
	})
	if err != nil {
		t.Fatal(err)
	}
	return groups
}

func serveVia(t *testing.T, h *Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	mux := http.NewServeMux()
	h.RegisterHandlers(mux)
	h.RegisterServerHandlers(mux)
	h.RegisterManagementHandlers(mux)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder) Response {
	t.Helper()
	var response Response
	if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return response
}

func TestNewHandler_NilRegistry(t *testing.T) {
	_, err := NewHandler(nil, testGroups(t))
	if !errors.Is(err, ErrNilRegistry) {
		t.Errorf("NewHandler() error = %v, want ErrNilRegistry", err)
	}
}

func TestNewHandler_NilGroups(t *testing.T) {
	_, err := NewHandler(testRegistry(t), nil)
	if !errors.Is(err, ErrNilGroups) {
		t.Errorf("NewHandler() error = %v, want ErrNilGroups", err)
	}
}

func TestNewHandler_NameCollision(t *testing.T) {
	reg := health.NewRegistry()
	if err := reg.Register("liveness", health.NewPingIndicator()); err != nil {
		t.Fatal(err)
	}

	_, err := NewHandler(reg, testGroups(t))
	if !errors.Is(err, health.ErrNameCollision) {
		t.Errorf("NewHandler() error = %v, want ErrNameCollision", err)
	}
}

func TestHandler_Primary(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/health")

	// db/replica is down, so the primary group aggregates to DOWN.
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	response := decodeResponse(t, rec)
	if response.Status != "DOWN" {
		t.Errorf("body status = %q, want DOWN", response.Status)
	}
	db := response.Components["db"]
	if db.Status != "DOWN" {
		t.Errorf("db composite status = %q, want DOWN", db.Status)
	}
	if db.Components["replica"].Details["lag_s"] == nil {
		t.Error("primary group shows details always; lag_s expected")
	}
}

func TestHandler_NamedGroup(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/health/liveness")

	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusOK)
	}
	response := decodeResponse(t, rec)
	if response.Status != "UP" {
		t.Errorf("body status = %q, want UP", response.Status)
	}
	if response.Components != nil {
		t.Error("liveness defaults to show nothing; components should be absent")
	}
}

func TestHandler_UnknownGroup(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/health/nonexistent")

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusNotFound)
	}

	var body map[string]string
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["error"] == "" {
		t.Error("404 body should carry an error message")
	}
}

func TestHandler_AdditionalPath_Server(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/livez")

	if rec.Code != http.StatusOK {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusOK)
	}
	response := decodeResponse(t, rec)
	if response.Status != "UP" {
		t.Errorf("body status = %q, want UP", response.Status)
	}
}

func TestHandler_AdditionalPath_Management(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	mux := http.NewServeMux()
	h.RegisterManagementHandlers(mux)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	// The readiness group only sees db contributors; db/replica is down.
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want %d", rec.Code, http.StatusServiceUnavailable)
	}
}

func TestHandler_ServerMuxSkipsManagementPaths(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	mux := http.NewServeMux()
	h.RegisterServerHandlers(mux)

	req := httptest.NewRequest(http.MethodGet, "/readyz", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Status = %d, want 404 (management path on server mux)", rec.Code)
	}
}

func TestHandler_WhenAuthorizedDetails(t *testing.T) {
	registry := testRegistry(t)
	groups := testGroups(t)

	denied, err := NewHandler(registry, groups)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	granted, err := NewHandler(registry, groups, HandlerConfig{Authorizer: PermitAll()})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	hidden := decodeResponse(t, serveVia(t, denied, "/health/readiness"))
	if hidden.Components != nil {
		t.Error("unauthorized request should not see readiness components")
	}

	shown := decodeResponse(t, serveVia(t, granted, "/health/readiness"))
	if shown.Components["db"].Components["replica"].Details["lag_s"] == nil {
		t.Error("authorized request should see readiness details")
	}
}

func TestHandler_CustomPathPrefix(t *testing.T) {
	h, err := NewHandler(testRegistry(t), testGroups(t), HandlerConfig{PathPrefix: "/internal/health/"})
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	mux := http.NewServeMux()
	h.RegisterHandlers(mux)

	req := httptest.NewRequest(http.MethodGet, "/internal/health", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("Status = %d, want 503 at trimmed prefix", rec.Code)
	}
}

func TestHandler_GroupHTTPMapping(t *testing.T) {
	reg := health.NewRegistry()
	if err := reg.Register("db", health.StatusIndicator(health.StatusDown)); err != nil {
		t.Fatal(err)
	}

	custom := group.NewGroup(group.GroupConfig{
		HTTPCodeStatusMapper: health.NewSimpleHTTPCodeStatusMapper(map[string]int{
			"DOWN": http.StatusTeapot,
		}),
	})
	groups, err := group.NewGroups(custom, nil)
	if err != nil {
		t.Fatal(err)
	}

	h, err := NewHandler(reg, groups)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/health")
	if rec.Code != http.StatusTeapot {
		t.Errorf("Status = %d, want %d (group mapping)", rec.Code, http.StatusTeapot)
	}
}

func TestHandler_EmptyGroup(t *testing.T) {
	reg := health.NewRegistry()
	groups, err := group.NewGroups(group.NewGroup(group.GroupConfig{}), nil)
	if err != nil {
		t.Fatal(err)
	}

	h, err := NewHandler(reg, groups)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rec := serveVia(t, h, "/health")

	// No contributors aggregates to UNKNOWN, mapped to 500 by default.
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("Status = %d, want 500", rec.Code)
	}
	if response := decodeResponse(t, rec); response.Status != "UNKNOWN" {
		t.Errorf("body status = %q, want UNKNOWN", response.Status)
	}
}
