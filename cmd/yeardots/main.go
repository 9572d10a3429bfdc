package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/yeardots/internal/model"
	"github.com/sandeepkv93/yeardots/internal/notify"
	"github.com/sandeepkv93/yeardots/internal/relay"
	"github.com/sandeepkv93/yeardots/internal/scheduler"
	"github.com/sandeepkv93/yeardots/internal/update"
	"go.uber.org/zap"
)

type cli struct {
	Config string `type:"path" help:"Optional YAML config file applied before YEARDOTS_* environment overrides."`

	Preview previewCmd `cmd:"" default:"withargs" help:"Open the interactive wallpaper preview."`
	Relay   relayCmd   `cmd:"" help:"Serve the APK and forward download notifications to Telegram."`
}

type previewCmd struct {
	Day   int `default:"30" help:"Current day of the year (1-based)."`
	Total int `default:"365" help:"Days in the year."`
}

type relayCmd struct {
	Addr string `help:"Listen address; overrides YEARDOTS_LISTEN_ADDR."`
}

func main() {
	var app cli
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	kctx := kong.Parse(&app,
		kong.Name("yeardots"),
		kong.Description("Year progress wallpaper preview and download relay."),
		kong.UsageOnError(),
		kong.BindTo(ctx, (*context.Context)(nil)),
	)
	cfg, err := app.runtimeConfig()
	kctx.FatalIfErrorf(err)
	kctx.FatalIfErrorf(kctx.Run(cfg))
}

func (c *cli) runtimeConfig() (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()
	if strings.TrimSpace(c.Config) != "" {
		loaded, err := update.LoadFile(c.Config, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	return update.RuntimeConfigFromEnv(cfg), nil
}

func (p *previewCmd) Run(ctx context.Context, cfg update.RuntimeConfig) error {
	ds := model.ProgressDataset{CurrentDay: p.Day, TotalDays: p.Total}
	if err := ds.Validate(); err != nil {
		return err
	}

	logger, err := update.NewFileLogger(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("yeardots: open log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	engine := scheduler.NewEngine(cfg.SchedulerBuffer)
	engine.Start()
	defer engine.Stop()

	notifiers := notify.Multi{notify.Webhook{Endpoint: cfg.NotifyEndpoint}}
	if cfg.OpenInBrowser {
		notifiers = append(notifiers, notify.Opener{})
	}
	dispatcher := notify.NewDispatcher(notifiers, logger, notify.DefaultTimeout)
	defer dispatcher.Wait()

	m := update.NewModelWithOptions(update.Options{
		Config:     cfg,
		Dataset:    ds,
		Engine:     engine,
		Dispatcher: dispatcher,
		Logger:     logger,
	})
	logger.Info("preview started", zap.Int("day", ds.CurrentDay), zap.Int("total", ds.TotalDays))

	program := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("yeardots: preview failed: %w", err)
	}
	return nil
}

func (r *relayCmd) Run(ctx context.Context, cfg update.RuntimeConfig) error {
	logger, err := update.NewStderrLogger()
	if err != nil {
		return fmt.Errorf("yeardots: build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	addr := cfg.ListenAddr
	if strings.TrimSpace(r.Addr) != "" {
		addr = r.Addr
	}
	sender := relay.Telegram{Token: cfg.TelegramToken, ChatID: cfg.TelegramChatID}
	if sender.Token == "" || sender.ChatID == "" {
		logger.Warn("telegram is not configured; notifications will fail")
	}
	handler := relay.NewRouter(relay.Config{
		APKPath:      cfg.APKPath,
		DownloadPath: cfg.DownloadPath,
		Timeout:      30 * time.Second,
	}, sender, logger)
	return relay.ListenAndServe(ctx, addr, handler, logger)
}
