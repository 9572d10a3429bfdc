package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/yeardots/internal/model"
)

// handlePickerKey cycles one display option per key, mirroring the
// sidebar pickers.
func (m Model) handlePickerKey(msg tea.KeyMsg) Model {
	var err error
	var text string
	switch msg.String() {
	case m.Keys.Color:
		err = m.Display.SetAccentColor(model.Next(model.Colors, m.Display.Accent))
		m.syncAccent()
		text = fmt.Sprintf("accent: %s", m.Display.Accent)
	case m.Keys.Layout:
		err = m.Display.SetLayout(model.Next(model.Layouts, m.Display.Layout))
		text = fmt.Sprintf("layout: %s (%d columns)", m.Display.Layout.Name, m.Display.Layout.Columns)
	case m.Keys.Font:
		err = m.Display.SetFont(model.Next(model.Fonts, m.Display.Font))
		text = fmt.Sprintf("font: %s", m.Display.Font)
	case m.Keys.Shape:
		err = m.Display.SetShape(model.Next(model.Shapes, m.Display.Shape))
		text = fmt.Sprintf("shape: %s", m.Display.Shape)
	case m.Keys.Size:
		err = m.Display.SetSize(model.Next(model.Sizes, m.Display.Size))
		text = fmt.Sprintf("size: %s", m.Display.Size)
	case m.Keys.Clock:
		m.Display.SetShowClock(!m.Display.ShowClock)
		text = fmt.Sprintf("clock: %s", onOff(m.Display.ShowClock))
	case m.Keys.Stats:
		m.Display.SetShowStats(!m.Display.ShowStats)
		text = fmt.Sprintf("stats: %s", onOff(m.Display.ShowStats))
	case m.Keys.Text:
		m.Editing = true
		m.textInput.SetValue(m.Display.CustomText)
		m.textInput.CursorEnd()
		m.textInput.Focus()
		text = "editing custom text"
	default:
		return m
	}
	if err != nil {
		m.setStatus(err.Error(), true)
		return m
	}
	m.setStatus(text, false)
	return m
}

// handleTextKey edits the custom text field. Every change is applied to the
// display right away; enter or esc leaves the field.
func (m Model) handleTextKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "enter", "esc":
		m.Editing = false
		m.textInput.Blur()
		m.setStatus("custom text saved", false)
		return m
	}
	if msg.Type == tea.KeyRunes {
		m.textInput.SetValue(m.textInput.Value() + string(msg.Runes))
	} else {
		var cmd tea.Cmd
		m.textInput, cmd = m.textInput.Update(msg)
		_ = cmd
	}
	m.Display.SetCustomText(m.textInput.Value())
	if m.textInput.Value() != m.Display.CustomText {
		m.textInput.SetValue(m.Display.CustomText)
	}
	return m
}

// syncAccent rebuilds the fill bar in the current accent color.
func (m *Model) syncAccent() {
	width := m.fillBar.Width
	m.fillBar = progress.New(progress.WithSolidFill(m.Display.Accent.Hex()), progress.WithoutPercentage())
	m.fillBar.Width = width
}
