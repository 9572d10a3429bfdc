// Package relay is the HTTP side of the download page: it serves the APK and
// forwards download notifications to Telegram.
package relay

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	NotifyPath      = "/api/notify-download"
	DownloadMessage = "📦 APK downloaded from website"
)

type Config struct {
	// APKPath is served at DownloadPath when set.
	APKPath      string
	DownloadPath string
	Timeout      time.Duration
}

type Handler struct {
	Log    *zap.Logger
	Sender Sender
}

func NewRouter(cfg Config, sender Sender, logger *zap.Logger) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	h := &Handler{Log: logger, Sender: sender}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(accessLog(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(cfg.Timeout))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.HandleFunc(NotifyPath, h.ServeNotifyDownload)

	if strings.TrimSpace(cfg.APKPath) != "" {
		path := cfg.DownloadPath
		if path == "" {
			path = "/" + filepath.Base(cfg.APKPath)
		}
		apk := cfg.APKPath
		r.Get(path, func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/vnd.android.package-archive")
			w.Header().Set("Content-Disposition", `attachment; filename="`+filepath.Base(apk)+`"`)
			http.ServeFile(w, r, apk)
		})
	}
	return r
}

// ServeNotifyDownload handles POST /api/notify-download.
func (h *Handler) ServeNotifyDownload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]any{"error": "Only POST allowed"})
		return
	}
	id := uuid.NewString()
	if h.Sender == nil {
		h.Log.Error("relay: no sender configured", zap.String("notification", id))
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Telegram failed"})
		return
	}
	if err := h.Sender.Send(r.Context(), DownloadMessage); err != nil {
		h.Log.Error("relay: telegram send failed",
			zap.String("notification", id),
			zap.String("request_id", middleware.GetReqID(r.Context())),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "Telegram failed"})
		return
	}
	h.Log.Info("relay: download notification forwarded", zap.String("notification", id))
	writeJSON(w, http.StatusOK, map[string]any{"ok": true, "id": id})
}

func accessLog(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.Info("http request",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("elapsed", time.Since(start)),
				zap.String("request_id", middleware.GetReqID(r.Context())),
			)
		})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
