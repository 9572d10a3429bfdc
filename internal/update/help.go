package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/yeardots/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.modeBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Color, Action: "next accent color"},
		{Key: m.Keys.Layout, Action: "next layout"},
		{Key: m.Keys.Font, Action: "next font"},
		{Key: m.Keys.Shape, Action: "next dot shape"},
		{Key: m.Keys.Size, Action: "next dot size"},
		{Key: m.Keys.Text, Action: "edit custom text"},
		{Key: m.Keys.Clock, Action: "toggle clock"},
		{Key: m.Keys.Stats, Action: "toggle stats"},
		{Key: "/", Action: "open command palette"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

// modeBindings lists the keys that apply to the current input mode.
func (m Model) modeBindings() []KeyBinding {
	switch {
	case m.Palette.Active:
		return []KeyBinding{
			{Key: "enter", Action: "run command"},
			{Key: "esc", Action: "close palette"},
			{Key: "cmds", Action: "color layout font shape size text clock stats reset"},
		}
	case m.Editing:
		return []KeyBinding{
			{Key: "enter/esc", Action: "finish editing"},
		}
	default:
		return []KeyBinding{
			{Key: "mouse", Action: "drag the knob right to download"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.modeBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.modeBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
