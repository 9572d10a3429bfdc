// Package slide implements the slide-to-download confirmation control: a
// single-pointer drag that commits past a progress threshold and then runs a
// fixed sequence of timed phases before returning to idle.
package slide

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type State int

const (
	Idle State = iota
	Dragging
	Committed
	Notifying
	Resetting
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Dragging:
		return "dragging"
	case Committed:
		return "committed"
	case Notifying:
		return "notifying"
	case Resetting:
		return "resetting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

type Pointer string

const (
	Mouse Pointer = "mouse"
	Touch Pointer = "touch"
)

// Phase timer names scheduled on Timers.
const (
	TimerCommit = "commit"
	TimerReset  = "reset"
	TimerSettle = "settle"
)

// Timers schedules named one-shot timers per owner. Cancel drops every
// pending timer of the owner.
type Timers interface {
	After(owner, name string, d time.Duration) error
	Cancel(owner string) int
}

// Input hands out move/end subscriptions for one pointer source.
type Input interface {
	Subscribe(owner string, p Pointer) Subscription
}

type Subscription interface {
	Release()
}

type Options struct {
	Geometry    Geometry
	Timing      Timing
	Timers      Timers
	Input       Input
	DownloadURL string
	// OnConfirm runs once per commit, after Timing.CommitDelay.
	OnConfirm func(url string)
	Logger    *zap.Logger
}

type Control struct {
	id        string
	geo       Geometry
	timing    Timing
	timers    Timers
	input     Input
	url       string
	onConfirm func(string)
	log       *zap.Logger

	state      State
	offset     float64
	maxOffset  float64
	trackWidth float64
	anchor     float64
	pointer    Pointer
	sub        Subscription
	pending    string
	disposed   bool
	confirms   int
}

func New(opts Options) *Control {
	geo := opts.Geometry
	def := DefaultGeometry()
	if geo == (Geometry{}) {
		geo = def
	}
	if geo.KnobWidthPx <= 0 {
		geo.KnobWidthPx = def.KnobWidthPx
	}
	if geo.EdgeInsetPx < 0 {
		geo.EdgeInsetPx = def.EdgeInsetPx
	}
	if geo.FallbackTrackWidthPx <= 0 {
		geo.FallbackTrackWidthPx = def.FallbackTrackWidthPx
	}
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}
	c := &Control{
		id:        "slide-" + uuid.NewString(),
		geo:       geo,
		timing:    timing.withDefaults(),
		timers:    opts.Timers,
		input:     opts.Input,
		url:       opts.DownloadURL,
		onConfirm: opts.OnConfirm,
		log:       opts.Logger,
	}
	if c.timers == nil {
		c.timers = nopTimers{}
	}
	if c.input == nil {
		c.input = nopInput{}
	}
	if c.log == nil {
		c.log = zap.NewNop()
	}
	c.maxOffset = geo.MaxOffset(0)
	return c
}

func (c *Control) ID() string          { return c.id }
func (c *Control) State() State        { return c.state }
func (c *Control) Offset() float64     { return c.offset }
func (c *Control) MaxOffset() float64  { return c.maxOffset }
func (c *Control) TrackWidth() float64 { return c.trackWidth }
func (c *Control) Geometry() Geometry  { return c.geo }
func (c *Control) Timing() Timing      { return c.timing }
func (c *Control) Disposed() bool      { return c.disposed }
func (c *Control) Listening() bool     { return c.sub != nil }

// ActivePointer is the source that owns the current drag, if any.
func (c *Control) ActivePointer() Pointer { return c.pointer }

// Confirmations counts how many times OnConfirm has been invoked.
func (c *Control) Confirmations() int { return c.confirms }

// Progress is offset/maxOffset, always within [0,1].
func (c *Control) Progress() float64 {
	if c.maxOffset <= 0 {
		return 0
	}
	return clamp(c.offset/c.maxOffset, 0, 1)
}

// FillWidth is the width of the fill bar, which trails the knob's far edge.
func (c *Control) FillWidth() float64 {
	return c.offset + c.geo.KnobWidthPx
}

func (c *Control) IndicatorOpacity() float64 {
	return clamp(1-c.Progress()/IndicatorFadeProgress, 0, 1)
}

// Glow reports whether the completion affordance is shown.
func (c *Control) Glow() bool {
	return c.state == Committed || c.state == Notifying
}

// DragStart begins a drag at x on a track measured now. It is ignored unless
// the control is idle.
func (c *Control) DragStart(p Pointer, x, trackWidthPx float64) bool {
	if c.disposed || c.state != Idle {
		return false
	}
	c.trackWidth = trackWidthPx
	c.maxOffset = c.geo.MaxOffset(trackWidthPx)
	c.anchor = x - c.offset
	c.pointer = p
	c.sub = c.input.Subscribe(c.id, p)
	c.transition(Dragging)
	return true
}

func (c *Control) DragMove(p Pointer, x float64) bool {
	if c.disposed || c.state != Dragging || p != c.pointer {
		return false
	}
	c.offset = clamp(x-c.anchor, 0, c.maxOffset)
	return true
}

// DragEnd commits when progress reached the threshold and snaps back
// otherwise. Both paths release the input subscription.
func (c *Control) DragEnd(p Pointer) bool {
	if c.disposed || c.state != Dragging || p != c.pointer {
		return false
	}
	committed := c.Progress() >= c.timing.CommitThreshold
	c.release()
	if committed {
		c.offset = c.maxOffset
		c.transition(Committed)
		c.schedule(TimerCommit, c.timing.CommitDelay)
		return true
	}
	c.offset = 0
	c.transition(Resetting)
	c.schedule(TimerSettle, c.timing.SnapBack)
	return true
}

// Fire advances the post-release sequence for a due timer. Timers that do
// not match the pending phase are ignored.
func (c *Control) Fire(name string) bool {
	if c.disposed || name == "" || name != c.pending {
		return false
	}
	c.pending = ""
	switch {
	case c.state == Committed && name == TimerCommit:
		c.transition(Notifying)
		c.schedule(TimerReset, c.timing.ResetDelay)
		c.confirm()
	case c.state == Notifying && name == TimerReset:
		c.offset = 0
		c.transition(Resetting)
		c.schedule(TimerSettle, c.timing.SnapBack)
	case c.state == Resetting && name == TimerSettle:
		c.transition(Idle)
	default:
		return false
	}
	return true
}

// Dispose cancels pending phases and input subscriptions. Every later call
// on the control is a no-op.
func (c *Control) Dispose() {
	if c.disposed {
		return
	}
	c.disposed = true
	c.release()
	c.pending = ""
	if n := c.timers.Cancel(c.id); n > 0 {
		c.log.Debug("slide: cancelled pending phases", zap.String("control", c.id), zap.Int("count", n))
	}
}

func (c *Control) confirm() {
	c.confirms++
	if c.onConfirm == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			c.log.Error("slide: confirm callback panicked", zap.String("control", c.id), zap.Any("panic", r))
		}
	}()
	c.onConfirm(c.url)
}

func (c *Control) schedule(name string, d time.Duration) {
	c.pending = name
	if err := c.timers.After(c.id, name, d); err != nil {
		c.log.Warn("slide: schedule phase failed", zap.String("control", c.id), zap.String("timer", name), zap.Error(err))
		c.pending = ""
		c.offset = 0
		c.transition(Idle)
	}
}

func (c *Control) release() {
	if c.sub != nil {
		c.sub.Release()
		c.sub = nil
	}
	c.pointer = ""
}

func (c *Control) transition(next State) {
	if c.state == next {
		return
	}
	c.log.Debug("slide: transition",
		zap.String("control", c.id),
		zap.Stringer("from", c.state),
		zap.Stringer("to", next),
		zap.Float64("offset", c.offset),
	)
	c.state = next
}

type nopTimers struct{}

func (nopTimers) After(string, string, time.Duration) error { return nil }
func (nopTimers) Cancel(string) int                         { return 0 }

type nopInput struct{}

func (nopInput) Subscribe(string, Pointer) Subscription { return nopSubscription{} }

type nopSubscription struct{}

func (nopSubscription) Release() {}
