package update

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/sandeepkv93/yeardots/internal/slide"
	"gopkg.in/yaml.v3"
)

type RuntimeConfig struct {
	SiteURL         string  `yaml:"site_url"`
	DownloadPath    string  `yaml:"download_path"`
	NotifyEndpoint  string  `yaml:"notify_endpoint"`
	OpenInBrowser   bool    `yaml:"open_in_browser"`
	TelegramToken   string  `yaml:"telegram_token"`
	TelegramChatID  string  `yaml:"telegram_chat_id"`
	ListenAddr      string  `yaml:"listen_addr"`
	APKPath         string  `yaml:"apk_path"`
	LogFile         string  `yaml:"log_file"`
	SchedulerBuffer int     `yaml:"scheduler_buffer"`
	CommitDelayMS   int     `yaml:"commit_delay_ms"`
	ResetDelayMS    int     `yaml:"reset_delay_ms"`
	SnapBackMS      int     `yaml:"snap_back_ms"`
	CommitThreshold float64 `yaml:"commit_threshold"`
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		SiteURL:         "http://localhost:8787",
		DownloadPath:    "/year_dots.apk",
		OpenInBrowser:   false,
		ListenAddr:      ":8787",
		LogFile:         "yeardots.log",
		SchedulerBuffer: 64,
		CommitDelayMS:   int(slide.DefaultCommitDelay / time.Millisecond),
		ResetDelayMS:    int(slide.DefaultResetDelay / time.Millisecond),
		SnapBackMS:      int(slide.DefaultSnapBack / time.Millisecond),
		CommitThreshold: slide.DefaultCommitThreshold,
	}
}

// LoadFile overlays the YAML file at path onto base. Keys missing from the
// file keep their base value.
func LoadFile(path string, base RuntimeConfig) (RuntimeConfig, error) {
	cfg := base
	raw, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("update: read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return base, fmt.Errorf("update: parse config %q: %w", path, err)
	}
	return cfg, nil
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("YEARDOTS_SITE_URL"); ok {
		cfg.SiteURL = v
	}
	if v, ok := getEnvString("YEARDOTS_DOWNLOAD_PATH"); ok {
		cfg.DownloadPath = v
	}
	if v, ok := getEnvString("YEARDOTS_NOTIFY_ENDPOINT"); ok {
		cfg.NotifyEndpoint = v
	}
	if v, ok := getEnvBool("YEARDOTS_OPEN_IN_BROWSER"); ok {
		cfg.OpenInBrowser = v
	}
	if v, ok := getEnvString("YEARDOTS_TELEGRAM_TOKEN"); ok {
		cfg.TelegramToken = v
	}
	if v, ok := getEnvString("YEARDOTS_TELEGRAM_CHAT_ID"); ok {
		cfg.TelegramChatID = v
	}
	if v, ok := getEnvString("YEARDOTS_LISTEN_ADDR"); ok {
		cfg.ListenAddr = v
	}
	if v, ok := getEnvString("YEARDOTS_APK_PATH"); ok {
		cfg.APKPath = v
	}
	if raw, set := os.LookupEnv("YEARDOTS_LOG_FILE"); set {
		cfg.LogFile = strings.TrimSpace(raw)
	}
	if v, ok := getEnvInt("YEARDOTS_SCHEDULER_BUFFER"); ok && v > 0 {
		cfg.SchedulerBuffer = v
	}
	if v, ok := getEnvInt("YEARDOTS_COMMIT_DELAY_MS"); ok && v > 0 {
		cfg.CommitDelayMS = v
	}
	if v, ok := getEnvInt("YEARDOTS_RESET_DELAY_MS"); ok && v > 0 {
		cfg.ResetDelayMS = v
	}
	if v, ok := getEnvInt("YEARDOTS_SNAP_BACK_MS"); ok && v > 0 {
		cfg.SnapBackMS = v
	}
	if v, ok := getEnvFloat("YEARDOTS_COMMIT_THRESHOLD"); ok && v > 0 && v <= 1 {
		cfg.CommitThreshold = v
	}
	return cfg
}

// DownloadURL joins the site origin and the download path.
func (c RuntimeConfig) DownloadURL() string {
	site := strings.TrimRight(strings.TrimSpace(c.SiteURL), "/")
	path := strings.TrimSpace(c.DownloadPath)
	if path != "" && !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	return site + path
}

func (c RuntimeConfig) Timing() slide.Timing {
	return slide.Timing{
		CommitThreshold: c.CommitThreshold,
		CommitDelay:     time.Duration(c.CommitDelayMS) * time.Millisecond,
		ResetDelay:      time.Duration(c.ResetDelayMS) * time.Millisecond,
		SnapBack:        time.Duration(c.SnapBackMS) * time.Millisecond,
	}
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvFloat(name string) (float64, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func getEnvBool(name string) (bool, bool) {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return false, false
	}
	switch raw {
	case "1", "true", "yes", "y", "on":
		return true, true
	case "0", "false", "no", "n", "off":
		return false, true
	default:
		return false, false
	}
}
