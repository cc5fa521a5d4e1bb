package apiclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/utpal5/Ticketingsystem/internal/domain"
	"github.com/utpal5/Ticketingsystem/pkg/util"
)

func TestRequestHeaders(t *testing.T) {
	var got *http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Clone(context.Background())
		_ = json.NewEncoder(w).Encode([]domain.Ticket{})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok-123")
	if _, err := c.MyTickets(context.Background()); err != nil {
		t.Fatalf("MyTickets: %v", err)
	}

	if got.URL.Path != "/tickets/my" {
		t.Fatalf("path = %s", got.URL.Path)
	}
	if auth := got.Header.Get("Authorization"); auth != "Bearer tok-123" {
		t.Fatalf("Authorization = %q", auth)
	}
	if got.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected X-Request-ID header")
	}
}

func TestNoAuthHeaderWithoutToken(t *testing.T) {
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(LoginResponse{Token: "t", User: domain.Identity{ID: 1}})
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "alice", "secret"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if auth != "" {
		t.Fatalf("unexpected Authorization header %q on login", auth)
	}
}

func TestCreateTicketRoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/tickets" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		var req CreateTicketRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(domain.Ticket{
			ID:          7,
			Subject:     req.Subject,
			Description: req.Description,
			Priority:    req.Priority,
			Status:      domain.TicketStatusOpen,
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ticket, err := c.CreateTicket(context.Background(), CreateTicketRequest{
		Subject:     "VPN down",
		Description: "cannot connect since 9am",
		Priority:    domain.TicketPriorityHigh,
	})
	if err != nil {
		t.Fatalf("CreateTicket: %v", err)
	}
	if ticket.ID != 7 || ticket.Subject != "VPN down" || ticket.Status != domain.TicketStatusOpen {
		t.Fatalf("unexpected ticket %+v", ticket)
	}
	if ticket.Priority != domain.TicketPriorityHigh {
		t.Fatalf("priority = %s", ticket.Priority)
	}
}

func TestPatchEndpoints(t *testing.T) {
	type call struct {
		method, path string
		body         map[string]any
	}
	var calls []call
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		calls = append(calls, call{r.Method, r.URL.Path, body})
		_ = json.NewEncoder(w).Encode(domain.Ticket{ID: 9})
	}))
	defer srv.Close()

	c := New(srv.URL)
	ctx := context.Background()
	if _, err := c.UpdateTicketStatus(ctx, 9, domain.TicketStatusInProgress); err != nil {
		t.Fatalf("UpdateTicketStatus: %v", err)
	}
	if _, err := c.AssignTicket(ctx, 9, 3); err != nil {
		t.Fatalf("AssignTicket: %v", err)
	}

	if len(calls) != 2 {
		t.Fatalf("calls = %d", len(calls))
	}
	if calls[0].method != http.MethodPatch || calls[0].path != "/tickets/9/status" {
		t.Fatalf("first call %s %s", calls[0].method, calls[0].path)
	}
	if calls[0].body["status"] != "IN_PROGRESS" {
		t.Fatalf("status body = %v", calls[0].body)
	}
	if calls[1].path != "/tickets/9/assign" || calls[1].body["assigneeId"] != float64(3) {
		t.Fatalf("assign call %+v", calls[1])
	}
}

func TestDeleteUserNoContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/users/4" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteUser(context.Background(), 4); err != nil {
		t.Fatalf("DeleteUser: %v", err)
	}
}

func TestErrorEnvelopeDecoding(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"code":"NOT_FOUND","message":"ticket not found"}}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL).Ticket(context.Background(), 999)
	if !util.IsNotFound(err) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	de := util.ToDomainError(err)
	if de.Message != "ticket not found" {
		t.Fatalf("message = %q", de.Message)
	}
}

func TestPlainTextErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Error: Invalid username or password!", http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Login(context.Background(), "alice", "wrong")
	if !util.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if de := util.ToDomainError(err); de.Message != "Error: Invalid username or password!" {
		t.Fatalf("message = %q", de.Message)
	}
}

func TestUnauthorizedHookFires(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	fired := 0
	c := New(srv.URL, WithUnauthorizedHook(func() { fired++ }))
	c.SetToken("stale")

	_, err := c.Me(context.Background())
	if !util.IsAuthentication(err) {
		t.Fatalf("expected authentication error, got %v", err)
	}
	if fired != 1 {
		t.Fatalf("hook fired %d times, want 1", fired)
	}
}

func TestTransportFailureIsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	_, err := New(srv.URL).MyTickets(context.Background())
	if !util.IsNetwork(err) {
		t.Fatalf("expected network error, got %v", err)
	}
}
