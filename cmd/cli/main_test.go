package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
)

func captureOutput(t *testing.T, fn func()) string {
	t.Helper()

	origStdout := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("failed to create pipe: %v", err)
	}
	os.Stdout = w

	fn()

	_ = w.Close()
	os.Stdout = origStdout

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatalf("failed to read stdout: %v", err)
	}
	return buf.String()
}

func TestPrintJSON(t *testing.T) {
	out := captureOutput(t, func() {
		printJSON(struct {
			A int `json:"a"`
		}{A: 1})
	})

	expected := "{\n  \"a\": 1\n}\n"
	if out != expected {
		t.Fatalf("unexpected json output:\n%s", out)
	}
}

func TestVerifyCmdHitsVerifyEndpoint(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"consistent":true}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := verifyCmd()
	cmd.SetArgs([]string{"acc-1"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if requested != "GET /api/v1/accounts/acc-1/verify" {
		t.Fatalf("unexpected request: %s", requested)
	}

	if !strings.Contains(out, `"consistent": true`) {
		t.Fatalf("expected verify output, got %q", out)
	}
}

func TestRebuildCmdAllHitsAdminEndpoint(t *testing.T) {
	var requested string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requested = r.Method + " " + r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows_rewritten":7}`))
	}))
	defer srv.Close()

	origURL := baseURL
	baseURL = srv.URL
	defer func() { baseURL = origURL }()

	cmd := rebuildCmd()
	cmd.SetArgs([]string{"--all"})

	out := captureOutput(t, func() {
		if err := cmd.Execute(); err != nil {
			t.Fatalf("command failed: %v", err)
		}
	})

	if requested != "POST /api/v1/admin/rebuild" {
		t.Fatalf("unexpected request: %s", requested)
	}

	if !strings.Contains(out, `"rows_rewritten": 7`) {
		t.Fatalf("expected rebuild output, got %q", out)
	}
}
