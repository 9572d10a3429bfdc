package relay

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

type stubSender struct {
	texts []string
	err   error
}

func (s *stubSender) Send(_ context.Context, text string) error {
	s.texts = append(s.texts, text)
	return s.err
}

func TestNotifyDownloadForwardsMessage(t *testing.T) {
	sender := &stubSender{}
	h := NewRouter(Config{}, sender, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, NotifyPath, strings.NewReader(`{"event":"download"}`)))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["ok"] != true || body["id"] == "" {
		t.Fatalf("unexpected body: %v", body)
	}
	if len(sender.texts) != 1 || sender.texts[0] != DownloadMessage {
		t.Fatalf("unexpected sent texts: %v", sender.texts)
	}
}

func TestNotifyDownloadRejectsNonPost(t *testing.T) {
	sender := &stubSender{}
	h := NewRouter(Config{}, sender, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, NotifyPath, nil))
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Only POST allowed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
	if len(sender.texts) != 0 {
		t.Fatal("non-POST must not send")
	}
}

func TestNotifyDownloadSenderFailure(t *testing.T) {
	h := NewRouter(Config{}, &stubSender{err: errors.New("telegram down")}, zap.NewNop())

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, NotifyPath, nil))
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Telegram failed") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}

func TestHealthz(t *testing.T) {
	h := NewRouter(Config{}, nil, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "ok" {
		t.Fatalf("unexpected healthz: %d %q", rec.Code, rec.Body.String())
	}
}

func TestServesAPKWhenConfigured(t *testing.T) {
	dir := t.TempDir()
	apk := filepath.Join(dir, "year_dots.apk")
	if err := os.WriteFile(apk, []byte("PK-apk"), 0o644); err != nil {
		t.Fatalf("write apk: %v", err)
	}
	h := NewRouter(Config{APKPath: apk, DownloadPath: "/year_dots.apk"}, nil, nil)

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/year_dots.apk", nil))
	if rec.Code != http.StatusOK || rec.Body.String() != "PK-apk" {
		t.Fatalf("unexpected apk response: %d %q", rec.Code, rec.Body.String())
	}
	if cd := rec.Header().Get("Content-Disposition"); !strings.Contains(cd, "year_dots.apk") {
		t.Fatalf("unexpected content disposition: %q", cd)
	}
}

func TestTelegramSendMessage(t *testing.T) {
	var gotPath string
	var got sendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&got)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	tg := Telegram{Token: "123:abc", ChatID: "42", BaseURL: srv.URL, Client: srv.Client()}
	if err := tg.Send(context.Background(), DownloadMessage); err != nil {
		t.Fatalf("send: %v", err)
	}
	if gotPath != "/bot123:abc/sendMessage" {
		t.Fatalf("unexpected path: %q", gotPath)
	}
	if got.ChatID != "42" || got.Text != DownloadMessage {
		t.Fatalf("unexpected payload: %+v", got)
	}
}

func TestTelegramRejectedAndUnconfigured(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"ok":false,"description":"Unauthorized"}`))
	}))
	defer srv.Close()

	tg := Telegram{Token: "bad", ChatID: "42", BaseURL: srv.URL, Client: srv.Client()}
	if err := tg.Send(context.Background(), "x"); err == nil || !strings.Contains(err.Error(), "Unauthorized") {
		t.Fatalf("expected unauthorized error, got %v", err)
	}
	if err := (Telegram{}).Send(context.Background(), "x"); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("expected ErrNotConfigured, got %v", err)
	}
}
