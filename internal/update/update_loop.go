package update

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sandeepkv93/yeardots/internal/grid"
	"github.com/sandeepkv93/yeardots/internal/notify"
	"github.com/sandeepkv93/yeardots/internal/scheduler"
	"github.com/sandeepkv93/yeardots/internal/slide"
	"github.com/sandeepkv93/yeardots/internal/views"
	"go.uber.org/zap"
)

const (
	slideLabel       = "slide to download"
	statusClearDelay = 3 * time.Second
)

func (m Model) Init() tea.Cmd {
	if m.Scheduler != nil {
		return waitForPhaseCmd(m.Scheduler.C())
	}
	return nil
}

func waitForPhaseCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return PhaseDueMsg{Event: ev}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		m.fillBar.Width = m.trackCols()
		return m, nil
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			return m.quit()
		}
		if m.Palette.Active {
			if keyStr == m.Keys.Help {
				m.HelpVisible = !m.HelpVisible
				return m, nil
			}
			return m.handlePaletteKey(typed), nil
		}
		if m.Editing {
			return m.handleTextKey(typed), nil
		}
		switch keyStr {
		case "/":
			m.Palette.Active = true
			m.Palette.Input = ""
			m.commandInput.Focus()
			m.commandInput.SetValue("")
			m.setStatus("command palette active", false)
			return m, nil
		case m.Keys.Help:
			m.HelpVisible = !m.HelpVisible
			if m.HelpVisible {
				m.setStatus("help shown", false)
			} else {
				m.setStatus("help hidden", false)
			}
			return m, nil
		case m.Keys.Quit:
			return m.quit()
		}
		return m.handlePickerKey(typed), nil
	case tea.MouseMsg:
		return m.handleMouse(typed), nil
	case PhaseDueMsg:
		next, cmd := m.onPhaseDue(typed.Event)
		if m.Scheduler != nil {
			return next, tea.Batch(cmd, waitForPhaseCmd(m.Scheduler.C()))
		}
		return next, cmd
	case spinner.TickMsg:
		if m.Slide.State() == slide.Notifying {
			var cmd tea.Cmd
			m.notifySpin, cmd = m.notifySpin.Update(typed)
			return m, cmd
		}
		return m, nil
	case SetStatusMsg:
		m.setStatus(typed.Text, typed.IsError)
		return m, nil
	case ClearStatusMsg:
		if typed.Text == "" || typed.Text == m.Status.Text {
			m.Status = StatusBar{}
		}
		return m, nil
	}
	return m, nil
}

// onPhaseDue forwards a fired timer to the slide control. Timers owned by
// another control, or stale for the current phase, are dropped.
func (m Model) onPhaseDue(ev scheduler.Event) (Model, tea.Cmd) {
	if ev.Owner != m.Slide.ID() {
		m.log.Debug("phase timer for unknown owner", zap.String("owner", ev.Owner), zap.String("timer", ev.Name))
		return m, nil
	}
	var failed uint64
	if m.dispatcher != nil {
		failed = m.dispatcher.Failures()
	}
	if !m.Slide.Fire(ev.Name) {
		return m, nil
	}
	switch m.Slide.State() {
	case slide.Notifying:
		m.setStatus("download requested", false)
		return m, tea.Batch(m.notifySpin.Tick, deliveryResultCmd(m.dispatcher, failed))
	case slide.Idle:
		m.setStatus("ready", false)
		return m, clearStatusCmd("ready", statusClearDelay)
	}
	return m, nil
}

// deliveryResultCmd waits for in-flight notifications and reports whether
// any failed since the failure count was sampled.
func deliveryResultCmd(d *notify.Dispatcher, failedBefore uint64) tea.Cmd {
	if d == nil {
		return nil
	}
	return func() tea.Msg {
		d.Wait()
		if d.Failures() > failedBefore {
			return SetStatusMsg{Text: "download notification failed", IsError: true}
		}
		return SetStatusMsg{Text: "download notification sent"}
	}
}

func clearStatusCmd(text string, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return ClearStatusMsg{Text: text}
	})
}

func (m Model) handleMouse(msg tea.MouseMsg) Model {
	x := float64((msg.X - trackX) * cellPx)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || !m.onKnob(msg.X, msg.Y) {
			return m
		}
		if m.Slide.DragStart(slide.Mouse, x, m.trackWidthPx()) {
			m.log.Debug("drag started",
				zap.Float64("track_px", m.Slide.TrackWidth()),
				zap.Float64("max_offset", m.Slide.MaxOffset()))
			m.setStatus("sliding", false)
		}
	case tea.MouseActionMotion:
		if m.router.Listening(slide.Mouse) {
			m.Slide.DragMove(slide.Mouse, x)
		}
	case tea.MouseActionRelease:
		if !m.router.Listening(slide.Mouse) {
			return m
		}
		if m.Slide.DragEnd(slide.Mouse) && m.Slide.State() == slide.Committed {
			m.setStatus("confirmed", false)
		}
	}
	return m
}

func (m Model) onKnob(x, y int) bool {
	if y != m.trackRow() {
		return false
	}
	rel := x - trackX
	start := m.knobCol()
	return rel >= start && rel < start+m.knobCols()
}

// trackRow is the screen row of the knob. The track sits at the bottom of
// the window, or right under the body when the window is too short.
func (m Model) trackRow() int {
	bodyH := lipgloss.Height(m.renderBody())
	if m.height-3 > bodyH {
		return m.height - 3
	}
	return bodyH
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.Quitting = true
	m.Slide.Dispose()
	return m, tea.Quit
}

func (m *Model) setStatus(text string, isErr bool) {
	m.Status = StatusBar{Text: text, IsError: isErr}
	if strings.TrimSpace(text) == "" {
		return
	}
	m.History = append(m.History, m.Status)
	if len(m.History) > maxStatusItems {
		m.History = m.History[len(m.History)-maxStatusItems:]
	}
	if isErr {
		m.log.Warn("status", zap.String("text", text))
	}
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	body := m.renderBody()
	pad := m.trackRow() - lipgloss.Height(body)
	return body + strings.Repeat("\n", pad+1) + views.RenderSlide(m.slideData()) + "\n" + views.RenderFooter(m.footer())
}

func (m Model) renderBody() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}
	frame := grid.Render(m.Display, m.Dataset)
	right := []string{m.hero, "", m.renderSettings()}
	if p := views.RenderCommandPalette(m.Palette.Active, m.commandInput.View()); p != "" {
		right = append(right, "", p)
	}
	if m.HelpVisible {
		right = append(right, "", m.renderHelpView())
	}
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("year dots | day %d/%d | slide: %s", m.Dataset.CurrentDay, m.Dataset.TotalDays, m.Slide.State()),
		LeftPane:     views.RenderPreview(frame, m.Display.Shape),
		RightPane:    strings.Join(right, "\n"),
		StatusLine:   status,
		Notification: m.deliveryNotice(),
	})
}

func (m Model) deliveryNotice() string {
	if m.dispatcher == nil || m.dispatcher.Failures() == 0 {
		return ""
	}
	return views.RenderNotification("error", fmt.Sprintf("%d download notification(s) failed", m.dispatcher.Failures()))
}

func (m Model) renderSettings() string {
	var downloads uint64
	if m.dispatcher != nil {
		downloads = m.dispatcher.Sent()
	}
	return views.RenderSettings(views.SettingsData{
		Accent:        string(m.Display.Accent),
		AccentHex:     m.Display.Accent.Hex(),
		Layout:        m.Display.Layout.Name,
		Columns:       m.Display.Layout.Columns,
		Font:          string(m.Display.Font),
		Shape:         string(m.Display.Shape),
		Size:          string(m.Display.Size),
		CustomText:    m.Display.CustomText,
		ShowClock:     m.Display.ShowClock,
		ShowStats:     m.Display.ShowStats,
		TextInputView: m.textInput.View(),
		Editing:       m.Editing,
		Downloads:     downloads,
	})
}

func (m Model) slideData() views.SlideData {
	data := views.SlideData{
		Indent:       trackX,
		Columns:      m.trackCols(),
		KnobCol:      m.knobCol(),
		KnobCols:     m.knobCols(),
		FillView:     m.fillBar.ViewAs(fillRatio(m.Slide.FillWidth(), m.trackWidthPx())),
		Label:        slideLabel,
		LabelOpacity: m.Slide.IndicatorOpacity(),
		Glow:         m.Slide.Glow(),
		Accent:       m.Display.Accent.Hex(),
		State:        m.Slide.State().String(),
	}
	if m.Slide.State() == slide.Notifying {
		data.SpinnerView = m.notifySpin.View()
	}
	return data
}

func (m Model) footer() string {
	return fmt.Sprintf("keys: %s color | %s layout | %s font | %s shape | %s size | %s text | %s clock | %s stats | / cmd | %s help | %s quit | drag the knob to download",
		m.Keys.Color, m.Keys.Layout, m.Keys.Font, m.Keys.Shape, m.Keys.Size, m.Keys.Text, m.Keys.Clock, m.Keys.Stats, m.Keys.Help, m.Keys.Quit)
}
