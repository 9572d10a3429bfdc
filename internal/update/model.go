package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/yeardots/internal/model"
	"github.com/sandeepkv93/yeardots/internal/notify"
	"github.com/sandeepkv93/yeardots/internal/scheduler"
	"github.com/sandeepkv93/yeardots/internal/slide"
	"github.com/sandeepkv93/yeardots/internal/views"
	"go.uber.org/zap"
)

// Terminal cells are mapped onto the control's pixel geometry at a fixed
// ratio, so the default 40-column track measures 320px.
const (
	cellPx         = 8
	trackX         = 2
	maxTrackCols   = 40
	minTrackCols   = 12
	maxStatusItems = 20
)

const heroMarkdown = `# Year Dots
Watch your year fill up, **one dot per day**. Pick a color, a layout and a
font, then slide to download the app.`

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Color  string
	Layout string
	Font   string
	Shape  string
	Size   string
	Text   string
	Clock  string
	Stats  string
	Help   string
	Quit   string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Options struct {
	Config     RuntimeConfig
	Dataset    model.ProgressDataset
	Engine     *scheduler.Engine
	Dispatcher *notify.Dispatcher
	Logger     *zap.Logger
}

type Model struct {
	Display     model.DisplayConfig
	Dataset     model.ProgressDataset
	Slide       *slide.Control
	Scheduler   *scheduler.Engine
	Palette     CommandPaletteState
	HelpVisible bool
	Editing     bool
	Status      StatusBar
	Keys        GlobalKeyMap
	Quitting    bool
	History     []StatusBar

	dispatcher *notify.Dispatcher
	router     *pointerRouter
	log        *zap.Logger
	width      int
	height     int
	hero       string

	textInput    textinput.Model
	commandInput textinput.Model
	fillBar      progress.Model
	notifySpin   spinner.Model
	helpModel    help.Model
}

// SetStatusMsg replaces the status line.
type SetStatusMsg struct {
	Text    string
	IsError bool
}

// ClearStatusMsg clears the status line if it still shows Text. An empty
// Text clears unconditionally.
type ClearStatusMsg struct {
	Text string
}

// PhaseDueMsg carries a phase timer fired by the scheduler engine.
type PhaseDueMsg struct {
	Event scheduler.Event
}

func NewModel() Model {
	return NewModelWithOptions(Options{Config: DefaultRuntimeConfig()})
}

func NewModelWithOptions(opts Options) Model {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	ds := opts.Dataset
	if ds.Validate() != nil {
		ds = model.DefaultDataset
	}
	m := Model{
		Display:    model.DefaultDisplayConfig(),
		Dataset:    ds,
		Scheduler:  opts.Engine,
		dispatcher: opts.Dispatcher,
		router:     newPointerRouter(),
		log:        logger,
		Keys: GlobalKeyMap{
			Color:  "c",
			Layout: "l",
			Font:   "f",
			Shape:  "s",
			Size:   "z",
			Text:   "t",
			Clock:  "k",
			Stats:  "x",
			Help:   "?",
			Quit:   "q",
		},
		hero: views.RenderMarkdown(heroMarkdown),
	}

	slideOpts := slide.Options{
		Timing:      opts.Config.Timing(),
		Input:       m.router,
		DownloadURL: opts.Config.DownloadURL(),
		OnConfirm:   downloadRequester(logger, opts.Dispatcher),
		Logger:      logger,
	}
	if opts.Engine != nil {
		slideOpts.Timers = opts.Engine
	}
	m.Slide = slide.New(slideOpts)
	m.initBubbleComponents()
	return m
}

func (m *Model) initBubbleComponents() {
	m.textInput = textinput.New()
	m.textInput.Prompt = "text> "
	m.textInput.Placeholder = "custom text"
	m.textInput.CharLimit = model.MaxCustomTextLen
	m.textInput.Width = model.MaxCustomTextLen + 1

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.fillBar = progress.New(progress.WithSolidFill(m.Display.Accent.Hex()), progress.WithoutPercentage())
	m.fillBar.Width = maxTrackCols

	m.notifySpin = spinner.New()
	m.notifySpin.Spinner = spinner.Dot

	m.helpModel = help.New()
}

// downloadRequester builds the slide control's confirm callback. It must
// not block the update loop.
func downloadRequester(logger *zap.Logger, d *notify.Dispatcher) func(string) {
	return func(url string) {
		logger.Info("download requested", zap.String("url", url))
		if d != nil {
			d.Dispatch(url)
		}
	}
}

// trackCols is the slide track width in terminal cells for the current
// window.
func (m Model) trackCols() int {
	cols := maxTrackCols
	if m.width > 0 && m.width-2*trackX < cols {
		cols = m.width - 2*trackX
	}
	if cols < minTrackCols {
		cols = minTrackCols
	}
	return cols
}

func (m Model) trackWidthPx() float64 {
	return float64(m.trackCols() * cellPx)
}

// knobCol is the knob's first cell, relative to the track start.
func (m Model) knobCol() int {
	geo := m.Slide.Geometry()
	return int((geo.EdgeInsetPx + m.Slide.Offset()) / cellPx)
}

func (m Model) knobCols() int {
	return int(m.Slide.Geometry().KnobWidthPx / cellPx)
}
