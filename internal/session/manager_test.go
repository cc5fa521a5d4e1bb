package session

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	"github.com/utpal5/Ticketingsystem/internal/apiclient"
	"github.com/utpal5/Ticketingsystem/internal/domain"
)

type fixture struct {
	manager *Manager
	store   *FileStore
	path    string
	meCalls *atomic.Int64
}

// newFixture wires a manager against a fake backend the way the CLI
// does: the client's 401 hook clears the durable token store.
func newFixture(t *testing.T, me func(w http.ResponseWriter, r *http.Request)) *fixture {
	t.Helper()

	var meCalls atomic.Int64
	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/login", func(w http.ResponseWriter, r *http.Request) {
		var req apiclient.LoginRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_ = json.NewEncoder(w).Encode(apiclient.LoginResponse{
			Token: "opaque-token",
			User:  domain.Identity{ID: 1, Username: req.Username, Role: domain.RoleUser},
		})
	})
	mux.HandleFunc("GET /auth/me", func(w http.ResponseWriter, r *http.Request) {
		meCalls.Add(1)
		me(w, r)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	path := filepath.Join(t.TempDir(), "token")
	store := NewFileStore(path)
	api := apiclient.New(srv.URL, apiclient.WithUnauthorizedHook(func() {
		_ = store.Clear()
	}))
	return &fixture{
		manager: NewManager(api, store, zap.NewNop()),
		store:   store,
		path:    path,
		meCalls: &meCalls,
	}
}

func meOK(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("Authorization") != "Bearer opaque-token" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}
	_ = json.NewEncoder(w).Encode(domain.Identity{ID: 1, Username: "alice", Role: domain.RoleUser})
}

func TestLoginPersistsToken(t *testing.T) {
	f := newFixture(t, meOK)

	identity, err := f.manager.Login(context.Background(), "alice", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if identity.ID != 1 || identity.Role != domain.RoleUser {
		t.Fatalf("identity = %+v", identity)
	}
	if current := f.manager.Current(); current == nil || current.ID != 1 {
		t.Fatalf("Current = %+v", current)
	}

	raw, err := os.ReadFile(f.path)
	if err != nil {
		t.Fatalf("token file: %v", err)
	}
	if string(raw) != "opaque-token" {
		t.Fatalf("stored token = %q", raw)
	}
}

func TestLoginBadCredentials(t *testing.T) {
	f := newFixture(t, meOK)

	if _, err := f.manager.Login(context.Background(), "alice", "wrong"); err == nil {
		t.Fatal("expected error for bad credentials")
	}
	if f.manager.Current() != nil {
		t.Fatal("Current must stay nil after failed login")
	}
}

func TestLogoutClearsEverything(t *testing.T) {
	f := newFixture(t, meOK)
	if _, err := f.manager.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	f.manager.Logout()

	if f.manager.Current() != nil {
		t.Fatal("Current must be nil after logout")
	}
	if _, err := os.Stat(f.path); !os.IsNotExist(err) {
		t.Fatal("token file must be removed on logout")
	}

	// Logout on an already unauthenticated manager still succeeds.
	f.manager.Logout()
}

func TestRestoreResolvesStoredToken(t *testing.T) {
	f := newFixture(t, meOK)
	if err := f.store.Save("opaque-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	identity := f.manager.Restore(context.Background())
	if identity == nil || identity.Username != "alice" {
		t.Fatalf("Restore = %+v", identity)
	}
	if current := f.manager.Current(); current == nil || current.ID != 1 {
		t.Fatalf("Current = %+v", current)
	}
}

func TestRestoreWithoutToken(t *testing.T) {
	f := newFixture(t, meOK)
	if f.manager.Restore(context.Background()) != nil {
		t.Fatal("Restore without a token must yield nil")
	}
	if f.meCalls.Load() != 0 {
		t.Fatal("Restore without a token must not call the backend")
	}
}

func TestRestoreRejectedTokenClearsSilently(t *testing.T) {
	f := newFixture(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	if err := f.store.Save("revoked-token"); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if f.manager.Restore(context.Background()) != nil {
		t.Fatal("Restore must yield nil on backend rejection")
	}
	if f.manager.Current() != nil {
		t.Fatal("Current must be nil")
	}
	if _, err := os.Stat(f.path); !os.IsNotExist(err) {
		t.Fatal("rejected token must be cleared from durable storage")
	}
}

func TestRestoreExpiredJWTSkipsBackend(t *testing.T) {
	f := newFixture(t, meOK)

	claims := jwt.RegisteredClaims{
		Subject:   "1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("any"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if err := f.store.Save(token); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if f.manager.Restore(context.Background()) != nil {
		t.Fatal("Restore must yield nil for an expired token")
	}
	if f.meCalls.Load() != 0 {
		t.Fatal("expired token must not reach the backend")
	}
	if _, err := os.Stat(f.path); !os.IsNotExist(err) {
		t.Fatal("expired token must be cleared")
	}
}
