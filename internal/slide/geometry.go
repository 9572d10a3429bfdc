package slide

import "time"

const (
	DefaultKnobWidthPx          = 56.0
	DefaultEdgeInsetPx          = 8.0
	DefaultFallbackTrackWidthPx = 320.0

	DefaultCommitThreshold = 0.85
	DefaultCommitDelay     = 300 * time.Millisecond
	DefaultResetDelay      = 1000 * time.Millisecond
	DefaultSnapBack        = 400 * time.Millisecond

	// IndicatorFadeProgress is where the motion hint reaches zero opacity.
	IndicatorFadeProgress = 2.0 / 3.0

	minTravelPx = 1.0
)

type Geometry struct {
	KnobWidthPx          float64
	EdgeInsetPx          float64
	FallbackTrackWidthPx float64
}

func DefaultGeometry() Geometry {
	return Geometry{
		KnobWidthPx:          DefaultKnobWidthPx,
		EdgeInsetPx:          DefaultEdgeInsetPx,
		FallbackTrackWidthPx: DefaultFallbackTrackWidthPx,
	}
}

// MaxOffset is the knob travel for a track of the given width. An unmeasured
// (non-positive) width uses the fallback, and the result is never below one
// pixel so progress stays finite.
func (g Geometry) MaxOffset(trackWidthPx float64) float64 {
	if trackWidthPx <= 0 {
		trackWidthPx = g.FallbackTrackWidthPx
	}
	travel := trackWidthPx - g.KnobWidthPx - g.EdgeInsetPx
	if travel < minTravelPx {
		return minTravelPx
	}
	return travel
}

type Timing struct {
	CommitThreshold float64
	// CommitDelay runs from commit until the download is triggered.
	CommitDelay time.Duration
	// ResetDelay runs from the trigger until the knob starts snapping back.
	ResetDelay time.Duration
	// SnapBack is the return animation before the control is idle again.
	SnapBack time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		CommitThreshold: DefaultCommitThreshold,
		CommitDelay:     DefaultCommitDelay,
		ResetDelay:      DefaultResetDelay,
		SnapBack:        DefaultSnapBack,
	}
}

func (t Timing) withDefaults() Timing {
	def := DefaultTiming()
	if t.CommitThreshold <= 0 || t.CommitThreshold > 1 {
		t.CommitThreshold = def.CommitThreshold
	}
	if t.CommitDelay < 0 {
		t.CommitDelay = def.CommitDelay
	}
	if t.ResetDelay < 0 {
		t.ResetDelay = def.ResetDelay
	}
	if t.SnapBack < 0 {
		t.SnapBack = def.SnapBack
	}
	return t
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
