package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubHealth struct{}

func (stubHealth) Healthz(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }

type stubUsers struct{ hits map[string]int }

func (s *stubUsers) hit(name string, w http.ResponseWriter) {
	s.hits[name]++
	w.WriteHeader(http.StatusOK)
}

func (s *stubUsers) Register(w http.ResponseWriter, r *http.Request) { s.hit("register", w) }
func (s *stubUsers) Login(w http.ResponseWriter, r *http.Request)    { s.hit("login", w) }
func (s *stubUsers) Logout(w http.ResponseWriter, r *http.Request)   { s.hit("logout", w) }
func (s *stubUsers) Me(w http.ResponseWriter, r *http.Request)       { s.hit("me", w) }
func (s *stubUsers) ListAll(w http.ResponseWriter, r *http.Request)  { s.hit("all", w) }
func (s *stubUsers) Update(w http.ResponseWriter, r *http.Request)   { s.hit("update", w) }
func (s *stubUsers) Delete(w http.ResponseWriter, r *http.Request)   { s.hit("delete", w) }

func passthrough(next http.Handler) http.Handler { return next }

func TestNew_RejectsNilDeps(t *testing.T) {
	t.Parallel()

	users := &stubUsers{hits: map[string]int{}}

	if _, err := New(Deps{Users: users, GateMW: passthrough}); err == nil {
		t.Fatalf("expected error for nil health handler")
	}
	if _, err := New(Deps{Health: stubHealth{}, GateMW: passthrough}); err == nil {
		t.Fatalf("expected error for nil users handler")
	}
	if _, err := New(Deps{Health: stubHealth{}, Users: users}); err == nil {
		t.Fatalf("expected error for nil gate")
	}
}

func TestNew_RoutesAndGatePlacement(t *testing.T) {
	t.Parallel()

	users := &stubUsers{hits: map[string]int{}}
	gated := 0
	gate := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gated++
			next.ServeHTTP(w, r)
		})
	}

	h, err := New(Deps{Health: stubHealth{}, Users: users, GateMW: gate})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	do := func(method, path string) int {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
		return rec.Code
	}

	// Ungated endpoints must not pass through the gate.
	if do(http.MethodPost, "/api/v1/register") != http.StatusOK || gated != 0 {
		t.Fatalf("register must be ungated, gate ran %d times", gated)
	}
	if do(http.MethodPost, "/api/v1/login") != http.StatusOK || gated != 0 {
		t.Fatalf("login must be ungated, gate ran %d times", gated)
	}

	// Gated endpoints each pass through exactly once.
	for i, tc := range []struct{ method, path, name string }{
		{http.MethodGet, "/api/v1/logout", "logout"},
		{http.MethodGet, "/api/v1/me", "me"},
		{http.MethodGet, "/api/v1/all", "all"},
		{http.MethodPut, "/api/v1/update/u1", "update"},
		{http.MethodDelete, "/api/v1/delete/u1", "delete"},
	} {
		if code := do(tc.method, tc.path); code != http.StatusOK {
			t.Fatalf("%s %s: got %d", tc.method, tc.path, code)
		}
		if gated != i+1 {
			t.Fatalf("%s must be gated (gate ran %d times after %d routes)", tc.name, gated, i+1)
		}
		if users.hits[tc.name] != 1 {
			t.Fatalf("expected %s handler hit once, got %d", tc.name, users.hits[tc.name])
		}
	}

	if do(http.MethodGet, "/healthz") != http.StatusOK {
		t.Fatalf("healthz missing")
	}
	if do(http.MethodGet, "/metrics") != http.StatusNotFound {
		t.Fatalf("metrics should 404 when no handler is wired")
	}
}
