package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/danmuck/scramblectl/internal/config"
	"github.com/danmuck/scramblectl/internal/testutil/testlog"
	"github.com/gin-gonic/gin"
)

const sampleProgram = `swap position 4 with position 0
swap letter d with letter b
reverse positions 0 through 4
rotate left 1 step
move position 1 to position 4
move position 3 to position 0
rotate based on position of letter b
rotate based on position of letter d
`

func newTestServer(t *testing.T, cfg config.ServerConfig) *Server {
	t.Helper()
	testlog.Start(t)
	gin.SetMode(gin.TestMode)
	s := New(cfg)
	s.newID = func() string { return "run-test" }
	s.RegisterRoutes()
	return s
}

func post(t *testing.T, s *Server, path string, body any) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("encode request: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)

	var out map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v body=%s", err, rr.Body.String())
	}
	return rr, out
}

func TestScrambleAndUnscramble(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())

	rr, body := post(t, s, "/scramble", RunRequest{Program: sampleProgram, Input: "abcde"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if body["output"] != "decab" || body["mode"] != "forward" || body["id"] != "run-test" {
		t.Fatalf("unexpected scramble body: %#v", body)
	}
	if body["steps"] != float64(8) {
		t.Fatalf("unexpected steps: %#v", body["steps"])
	}

	rr, body = post(t, s, "/unscramble", RunRequest{Program: sampleProgram, Input: "decab"})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if body["output"] != "abcde" || body["mode"] != "backward" {
		t.Fatalf("unexpected unscramble body: %#v", body)
	}
}

func TestScrambleTrace(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())
	rr, body := post(t, s, "/scramble", RunRequest{Program: sampleProgram, Input: "abcde", Trace: true})
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	trace, ok := body["trace"].([]any)
	if !ok || len(trace) != 8 {
		t.Fatalf("unexpected trace: %#v", body["trace"])
	}
	first := trace[0].(map[string]any)
	if first["op"] != "swap position 4 with position 0" || first["before"] != "abcde" || first["after"] != "ebcda" {
		t.Fatalf("unexpected first trace step: %#v", first)
	}
}

func TestUnscrambleStrictRejectsAmbiguous(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.StrictInverse = true
	s := newTestServer(t, cfg)

	rr, body := post(t, s, "/unscramble", RunRequest{Program: sampleProgram, Input: "decab"})
	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d body=%s", rr.Code, rr.Body.String())
	}
	if body["kind"] != "ambiguous_inverse" || body["step"] != float64(7) {
		t.Fatalf("unexpected error body: %#v", body)
	}
	if _, ok := body["output"]; ok {
		t.Fatalf("failed run must not return output: %#v", body)
	}
}

func TestScrambleEngineErrors(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())
	cases := []struct {
		program string
		kind    string
	}{
		{"swap position 0 with position 9\n", "index"},
		{"swap letter a with letter z\n", "not_found"},
	}
	rr, body := post(t, s, "/scramble", RunRequest{Program: "rotate left 1 step\n", Input: "abcda"})
	if rr.Code != http.StatusUnprocessableEntity || body["kind"] != "not_found" {
		t.Fatalf("duplicate input: unexpected response %d %#v", rr.Code, body)
	}
	for _, tc := range cases {
		rr, body := post(t, s, "/scramble", RunRequest{Program: tc.program, Input: "abcde"})
		if rr.Code != http.StatusUnprocessableEntity || body["kind"] != tc.kind {
			t.Fatalf("%q: unexpected response %d %#v", tc.program, rr.Code, body)
		}
	}
}

func TestScrambleParseError(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())
	rr, body := post(t, s, "/scramble", RunRequest{Program: "rotate left 1 step\nexplode\n", Input: "abcde"})
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
	if body["line"] != float64(2) {
		t.Fatalf("unexpected parse error body: %#v", body)
	}
}

func TestScrambleProgramTooLong(t *testing.T) {
	cfg := config.DefaultServerConfig()
	cfg.MaxProgramLines = 2
	s := newTestServer(t, cfg)
	program := strings.Repeat("rotate left 1 step\n", 3)
	rr, _ := post(t, s, "/scramble", RunRequest{Program: program, Input: "abcde"})
	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("expected 413, got %d", rr.Code)
	}
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, config.DefaultServerConfig())
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	s.HTTPRouter().ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body["status"] != "ok" || body["service"] != config.DefaultServerName {
		t.Fatalf("unexpected health body: %#v", body)
	}
}
