package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type SettingsData struct {
	Accent        string
	AccentHex     string
	Layout        string
	Columns       int
	Font          string
	Shape         string
	Size          string
	CustomText    string
	ShowClock     bool
	ShowStats     bool
	TextInputView string
	Editing       bool
	Downloads     uint64
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

type SlideData struct {
	Indent       int
	Columns      int
	KnobCol      int
	KnobCols     int
	FillView     string
	Label        string
	LabelOpacity float64
	Glow         bool
	Accent       string
	State        string
	SpinnerView  string
}

var (
	knobStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("0")).Background(lipgloss.Color("15")).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	labelDim     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	settingLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func RenderSettings(data SettingsData) string {
	var b strings.Builder
	swatch := lipgloss.NewStyle().Foreground(lipgloss.Color(data.AccentHex)).Render("●")
	b.WriteString("settings:\n")
	b.WriteString(fmt.Sprintf("%s %s %s\n", settingLabel.Render("[c] color "), swatch, data.Accent))
	b.WriteString(fmt.Sprintf("%s %s (%d cols)\n", settingLabel.Render("[l] layout"), data.Layout, data.Columns))
	b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[f] font  "), data.Font))
	b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[s] shape "), data.Shape))
	b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[z] size  "), data.Size))
	b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[k] clock "), onOff(data.ShowClock)))
	b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[x] stats "), onOff(data.ShowStats)))
	if data.Editing {
		b.WriteString(data.TextInputView + "\n")
	} else {
		text := data.CustomText
		if text == "" {
			text = "(none)"
		}
		b.WriteString(fmt.Sprintf("%s %s\n", settingLabel.Render("[t] text  "), text))
	}
	if data.Downloads > 0 {
		b.WriteString(fmt.Sprintf("downloads requested: %d\n", data.Downloads))
	}
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, inputView string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: %s", inputView)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("[%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

// RenderSlide draws the two-line slide track: the knob row, then the fill
// bar. The knob row is exactly Indent+Columns cells wide.
func RenderSlide(data SlideData) string {
	cols := data.Columns
	if cols <= 0 {
		return ""
	}
	knobCols := data.KnobCols
	if knobCols > cols {
		knobCols = cols
	}
	start := data.KnobCol
	if start < 0 {
		start = 0
	}
	if start+knobCols > cols {
		start = cols - knobCols
	}

	knob := knobStyle
	if data.Glow {
		knob = knob.Background(lipgloss.Color(data.Accent))
	}
	knobText := centerText("»", knobCols)
	if data.SpinnerView != "" {
		knobText = centerText(data.SpinnerView, knobCols)
	}

	tail := cols - start - knobCols
	label := fitText(data.Label, tail-1)
	var labelView string
	switch {
	case tail <= 0:
		labelView = ""
	case data.LabelOpacity <= 0.34:
		labelView = strings.Repeat(" ", tail)
	case data.LabelOpacity < 0.67:
		labelView = " " + labelDim.Render(label) + strings.Repeat(" ", tail-1-lipgloss.Width(label))
	default:
		labelView = " " + labelStyle.Render(label) + strings.Repeat(" ", tail-1-lipgloss.Width(label))
	}

	indent := strings.Repeat(" ", max(data.Indent, 0))
	row := indent + strings.Repeat(" ", start) + knob.Render(knobText) + labelView
	return row + "\n" + indent + data.FillView
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}

func centerText(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	left := (width - w) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-w-left)
}

func fitText(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}
