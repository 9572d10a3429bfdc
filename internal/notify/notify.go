// Package notify delivers the "download requested" side effect: opening the
// download target and pinging the relay. Delivery is best effort.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/exec"
	"runtime"
	"strings"
	"time"
)

var ErrEmptyURL = errors.New("notify: download url is empty")

type Notifier interface {
	Notify(ctx context.Context, url string) error
}

type NotifierFunc func(ctx context.Context, url string) error

func (f NotifierFunc) Notify(ctx context.Context, url string) error { return f(ctx, url) }

type NoopNotifier struct{}

func (NoopNotifier) Notify(context.Context, string) error { return nil }

// Opener asks the desktop to open the url in a new browser context.
type Opener struct {
	// Run executes the platform command; nil uses os/exec.
	Run  func(ctx context.Context, name string, args ...string) error
	GOOS string
}

func (o Opener) Notify(ctx context.Context, url string) error {
	if strings.TrimSpace(url) == "" {
		return ErrEmptyURL
	}
	goos := o.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	run := o.Run
	if run == nil {
		run = execRun
	}
	switch goos {
	case "linux", "freebsd", "openbsd", "netbsd":
		return run(ctx, "xdg-open", url)
	case "darwin":
		return run(ctx, "open", url)
	case "windows":
		return run(ctx, "rundll32", "url.dll,FileProtocolHandler", url)
	default:
		return fmt.Errorf("notify: no opener for %s", goos)
	}
}

func execRun(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// DownloadEvent is the payload posted to the relay.
type DownloadEvent struct {
	Event string    `json:"event"`
	URL   string    `json:"url"`
	At    time.Time `json:"at"`
}

// Webhook posts a DownloadEvent to the relay endpoint.
type Webhook struct {
	Endpoint string
	Client   *http.Client
	Now      func() time.Time
}

func (w Webhook) Notify(ctx context.Context, url string) error {
	if strings.TrimSpace(w.Endpoint) == "" {
		return nil
	}
	now := time.Now
	if w.Now != nil {
		now = w.Now
	}
	body, err := json.Marshal(DownloadEvent{Event: "download", URL: url, At: now().UTC()})
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("notify: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	client := w.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("notify: post webhook: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("notify: webhook returned %s", resp.Status)
	}
	return nil
}

// Multi runs every notifier and joins their errors.
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, url string) error {
	var errs []error
	for _, n := range m {
		if n == nil {
			continue
		}
		if err := n.Notify(ctx, url); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
