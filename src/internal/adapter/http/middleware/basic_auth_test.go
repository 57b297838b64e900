package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/whiteshadows42/AccountManager/src/internal/adapter/http/middleware"
	"github.com/whiteshadows42/AccountManager/src/internal/platform"
)

func TestBasicAuthAllowsValidCredentials(t *testing.T) {
	var actor string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		actor = platform.ActorFromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	handler := middleware.BasicAuth("LedgerApp", "secret")(next)

	req := httptest.NewRequest(http.MethodPost, "/transfers", nil)
	req.SetBasicAuth("LedgerApp", "secret")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rr.Code)
	}
	if actor != "LedgerApp" {
		t.Fatalf("expected the channel id to be stamped as actor, got %q", actor)
	}
}

func TestBasicAuthRejectsInvalidCredentials(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	handler := middleware.BasicAuth("LedgerApp", "secret")(next)

	cases := []struct {
		name  string
		id    string
		key   string
		noHdr bool
	}{
		{name: "missing header", noHdr: true},
		{name: "wrong channel id", id: "OtherApp", key: "secret"},
		{name: "wrong channel key", id: "LedgerApp", key: "wrong"},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/transfers", nil)
		if !tc.noHdr {
			req.SetBasicAuth(tc.id, tc.key)
		}
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Fatalf("%s: expected status %d, got %d", tc.name, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestBasicAuthFailsClosedWithoutConfiguration(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("next handler must not run")
	})

	handler := middleware.BasicAuth("", "")(next)

	req := httptest.NewRequest(http.MethodGet, "/accounts/balance", nil)
	req.SetBasicAuth("LedgerApp", "secret")
	rr := httptest.NewRecorder()

	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, rr.Code)
	}
}
