package model

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidDataset = errors.New("model: invalid progress dataset")

// ProgressDataset is the fixed year-progress sample shown in the preview.
type ProgressDataset struct {
	CurrentDay int
	TotalDays  int
}

var DefaultDataset = ProgressDataset{CurrentDay: 30, TotalDays: 365}

func (d ProgressDataset) Validate() error {
	if d.TotalDays <= 0 {
		return fmt.Errorf("%w: total days %d", ErrInvalidDataset, d.TotalDays)
	}
	if d.CurrentDay <= 0 || d.CurrentDay > d.TotalDays {
		return fmt.Errorf("%w: current day %d outside 1..%d", ErrInvalidDataset, d.CurrentDay, d.TotalDays)
	}
	return nil
}

func (d ProgressDataset) DaysLeft() int {
	return d.TotalDays - d.CurrentDay
}

func (d ProgressDataset) PercentComplete() int {
	if d.TotalDays <= 0 {
		return 0
	}
	return int(math.Round(100 * float64(d.CurrentDay) / float64(d.TotalDays)))
}
