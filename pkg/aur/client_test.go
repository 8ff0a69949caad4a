package aur

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/rpc/v5/info" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetPackage(t *testing.T) {
	srv := newTestServer(t, http.StatusOK,
		`{"type":"multiinfo","resultcount":1,"results":[{"Name":"brave-bin","PackageBase":"brave-bin","Version":"1.70-1"}]}`)

	c := NewClientWithOptions(srv.URL, 0)
	pkg, err := c.GetPackage(context.Background(), "brave-bin")
	if err != nil {
		t.Fatalf("GetPackage() error: %v", err)
	}
	if pkg.Name != "brave-bin" || pkg.Version != "1.70-1" {
		t.Errorf("unexpected package: %+v", pkg)
	}
	if got, want := c.CloneURL(pkg), srv.URL+"/brave-bin.git"; got != want {
		t.Errorf("CloneURL() = %q, want %q", got, want)
	}
}

func TestGetPackageNotFound(t *testing.T) {
	srv := newTestServer(t, http.StatusOK, `{"type":"multiinfo","resultcount":0,"results":[]}`)

	_, err := NewClientWithOptions(srv.URL, 0).GetPackage(context.Background(), "nope")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestGetPackageErrors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
	}{
		{"http status", http.StatusServiceUnavailable, "down"},
		{"rpc error", http.StatusOK, `{"type":"error","error":"Incorrect request type specified."}`},
		{"bad json", http.StatusOK, `{`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(t, tt.status, tt.body)
			if _, err := NewClientWithOptions(srv.URL, 0).GetPackage(context.Background(), "x"); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestCloneURLFallsBackToName(t *testing.T) {
	c := NewClient()
	if got := c.CloneURL(&Package{Name: "google-chrome"}); got != "https://aur.archlinux.org/google-chrome.git" {
		t.Errorf("CloneURL() = %q", got)
	}
	if got := CloneURLFor("brave-bin"); got != "https://aur.archlinux.org/brave-bin.git" {
		t.Errorf("CloneURLFor() = %q", got)
	}
}
