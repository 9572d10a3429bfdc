package update

// fillRatio converts the control's fill width into a bar fraction.
func fillRatio(fillPx, trackPx float64) float64 {
	if trackPx <= 0 {
		return 0
	}
	r := fillPx / trackPx
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
