package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"notes_auth/internal/service"
)

func getStats(t *testing.T, auth *mockAuth, stats *mockStats) *httptest.ResponseRecorder {
	t.Helper()
	r := newTestRouter(&service.Service{Authorization: auth, Stats: stats})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer tok")
	r.ServeHTTP(w, req)
	return w
}

func TestStats_Success(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 1, Username: "admin"}}
	stats := &mockStats{snap: service.StatsSnapshot{UsersCount: 3, NotesCount: 17, UptimeSeconds: 99}}

	w := getStats(t, auth, stats)
	if w.Code != http.StatusOK {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}

	var snap service.StatsSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap != stats.snap {
		t.Fatalf("unexpected snapshot: %+v", snap)
	}
}

func TestStats_RequiresAuth(t *testing.T) {
	r := newTestRouter(&service.Service{Authorization: &mockAuth{}, Stats: &mockStats{}})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/stats", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status: got %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestStats_ServiceError(t *testing.T) {
	auth := &mockAuth{parseClaims: &service.Claims{UserID: 1}}
	stats := &mockStats{err: errors.New("db gone")}

	w := getStats(t, auth, stats)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d, body=%s", w.Code, w.Body.String())
	}
}
