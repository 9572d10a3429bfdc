package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/yeardots/internal/commands"
	"github.com/sandeepkv93/yeardots/internal/model"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.setStatus("command palette closed", false)
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.setStatus(err.Error(), true)
		m.closePalette()
		return m
	}

	cfg := m.Display
	res, err := commands.Execute(cmd, commands.Handlers{
		Color: func(a commands.TokenArgs) (commands.Result, error) {
			v, err := model.ParseColor(a.Value)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := cfg.SetAccentColor(v); err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: fmt.Sprintf("accent: %s", v)}, nil
		},
		Layout: func(a commands.TokenArgs) (commands.Result, error) {
			v, err := model.ParseLayout(a.Value)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := cfg.SetLayout(v); err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: fmt.Sprintf("layout: %s (%d columns)", v.Name, v.Columns)}, nil
		},
		Font: func(a commands.TokenArgs) (commands.Result, error) {
			v, err := model.ParseFont(a.Value)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := cfg.SetFont(v); err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: fmt.Sprintf("font: %s", v)}, nil
		},
		Shape: func(a commands.TokenArgs) (commands.Result, error) {
			v, err := model.ParseShape(a.Value)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := cfg.SetShape(v); err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: fmt.Sprintf("shape: %s", v)}, nil
		},
		Size: func(a commands.TokenArgs) (commands.Result, error) {
			v, err := model.ParseSize(a.Value)
			if err != nil {
				return commands.Result{}, invalid(err)
			}
			if err := cfg.SetSize(v); err != nil {
				return commands.Result{}, invalid(err)
			}
			return commands.Result{Message: fmt.Sprintf("size: %s", v)}, nil
		},
		Text: func(a commands.TextArgs) (commands.Result, error) {
			cfg.SetCustomText(a.Text)
			if cfg.CustomText == "" {
				return commands.Result{Message: "custom text cleared"}, nil
			}
			return commands.Result{Message: fmt.Sprintf("custom text: %s", cfg.CustomText)}, nil
		},
		Clock: func(a commands.ToggleArgs) (commands.Result, error) {
			cfg.SetShowClock(a.Apply(cfg.ShowClock))
			return commands.Result{Message: fmt.Sprintf("clock: %s", onOff(cfg.ShowClock))}, nil
		},
		Stats: func(a commands.ToggleArgs) (commands.Result, error) {
			cfg.SetShowStats(a.Apply(cfg.ShowStats))
			return commands.Result{Message: fmt.Sprintf("stats: %s", onOff(cfg.ShowStats))}, nil
		},
		Reset: func() (commands.Result, error) {
			cfg = model.DefaultDisplayConfig()
			return commands.Result{Message: "display reset to defaults"}, nil
		},
	})
	if err != nil {
		m.setStatus(err.Error(), true)
	} else {
		m.Display = cfg
		m.syncAccent()
		m.setStatus(res.Message, false)
	}
	m.closePalette()
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
}

func invalid(err error) error {
	return &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: err.Error()}
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
