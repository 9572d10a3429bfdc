package views

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/yeardots/internal/grid"
	"github.com/sandeepkv93/yeardots/internal/model"
)

func TestRenderPreviewDefaultLayout(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	out := RenderPreview(grid.Render(cfg, model.DefaultDataset), cfg.Shape)
	lines := strings.Split(out, "\n")

	// clock, date, blank, 22 grid rows, blank, stats
	if len(lines) != 27 {
		t.Fatalf("expected 27 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], grid.PlaceholderClock) {
		t.Fatalf("expected clock first, got %q", lines[0])
	}
	if !strings.Contains(lines[len(lines)-1], "335 days left · 8%") {
		t.Fatalf("expected stats last, got %q", lines[len(lines)-1])
	}
	if got := strings.Count(out, glyphToday); got != 1 {
		t.Fatalf("expected exactly one highlighted dot, got %d", got)
	}
}

func TestRenderPreviewHidesClockAndStats(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	cfg.SetShowClock(false)
	cfg.SetShowStats(false)
	cfg.SetCustomText("carpe diem")
	out := RenderPreview(grid.Render(cfg, model.DefaultDataset), cfg.Shape)
	if strings.Contains(out, grid.PlaceholderClock) || strings.Contains(out, "days left") {
		t.Fatalf("expected clock and stats hidden:\n%s", out)
	}
	if !strings.HasSuffix(out, "carpe diem") {
		t.Fatalf("expected custom text last:\n%s", out)
	}
}

func TestRenderPreviewRowWidthFollowsSize(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	_ = cfg.SetShape(model.ShapeCircle)
	_ = cfg.SetSize(model.SizeSmall)
	f := grid.Render(cfg, model.DefaultDataset)
	out := RenderPreview(f, cfg.Shape)
	lines := strings.Split(out, "\n")
	if w := lipgloss.Width(lines[3]); w != cfg.Layout.Columns {
		t.Fatalf("small dots should pack tightly: width %d", w)
	}

	_ = cfg.SetSize(model.SizeLarge)
	out = RenderPreview(grid.Render(cfg, model.DefaultDataset), cfg.Shape)
	lines = strings.Split(out, "\n")
	if w := lipgloss.Width(lines[3]); w != cfg.Layout.Columns+2*(cfg.Layout.Columns-1) {
		t.Fatalf("large dots should be spaced: width %d", w)
	}
}

func TestGlyphPerShape(t *testing.T) {
	if Glyph(model.ShapeCircle) != glyphDot || Glyph(model.ShapeSquare) != glyphSquare || Glyph(model.ShapeRounded) != glyphRound {
		t.Fatal("unexpected glyph mapping")
	}
	if Glyph(model.ShapeToken("hexagon")) != glyphRound {
		t.Fatal("unknown shape should fall back to rounded")
	}
}

func TestRenderSlideGeometry(t *testing.T) {
	data := SlideData{Indent: 2, Columns: 40, KnobCol: 1, KnobCols: 7, FillView: "fill", Label: "slide to download", LabelOpacity: 1}
	out := RenderSlide(data)
	rows := strings.Split(out, "\n")
	if len(rows) != 2 {
		t.Fatalf("expected two rows, got %d", len(rows))
	}
	if w := lipgloss.Width(rows[0]); w != 42 {
		t.Fatalf("knob row width = %d, want 42", w)
	}
	if !strings.Contains(rows[0], "slide to download") {
		t.Fatalf("expected label, got %q", rows[0])
	}
	if rows[1] != "  fill" {
		t.Fatalf("unexpected fill row %q", rows[1])
	}
}

func TestRenderSlideClampsKnobAndHidesLabel(t *testing.T) {
	data := SlideData{Columns: 20, KnobCol: 50, KnobCols: 7, Label: "slide to download", LabelOpacity: 0}
	rows := strings.Split(RenderSlide(data), "\n")
	if w := lipgloss.Width(rows[0]); w != 20 {
		t.Fatalf("clamped knob row width = %d, want 20", w)
	}
	if strings.Contains(rows[0], "slide") {
		t.Fatalf("label should be hidden, got %q", rows[0])
	}
	if RenderSlide(SlideData{}) != "" {
		t.Fatal("zero-column track should render nothing")
	}
}

func TestRenderSettings(t *testing.T) {
	out := RenderSettings(SettingsData{Accent: "blue", AccentHex: "#3B82F6", Layout: "compact", Columns: 21, Font: "mono", Shape: "circle", Size: "large", ShowClock: true, Downloads: 2})
	for _, want := range []string{"blue", "compact (21 cols)", "mono", "circle", "large", "(none)", "downloads requested: 2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("settings missing %q:\n%s", want, out)
		}
	}
}

func TestRenderMarkdownEmpty(t *testing.T) {
	if RenderMarkdown("  ") != "" {
		t.Fatal("expected empty output for blank markdown")
	}
}

func TestRenderAppNotificationPanel(t *testing.T) {
	if RenderNotification("error", " ") != "" {
		t.Fatal("blank notification should render nothing")
	}
	note := RenderNotification("error", "2 download notification(s) failed")
	if note != "[ERROR] 2 download notification(s) failed" {
		t.Fatalf("unexpected notification %q", note)
	}
	base := AppData{Header: "year dots", LeftPane: "dots", RightPane: "settings", StatusLine: "status: ready"}
	without := RenderApp(base)
	base.Notification = note
	with := RenderApp(base)
	if strings.Contains(without, "[ERROR]") || !strings.Contains(with, note) {
		t.Fatalf("notification panel not rendered:\n%s", with)
	}
	if lipgloss.Height(with) != lipgloss.Height(without)+3 {
		t.Fatalf("expected a bordered one-line panel under the status line")
	}
}
