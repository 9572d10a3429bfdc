package grid

import "github.com/sandeepkv93/yeardots/internal/model"

const (
	PlaceholderClock = "9:41"
	PlaceholderDate  = "Thursday, January 30"
)

type StyledCell struct {
	Cell
	Style Style
}

// Frame is one fully materialized preview render.
type Frame struct {
	Columns    int
	Rows       [][]StyledCell
	RowGapPx   int
	Clock      string
	Date       string
	Stats      string
	CustomText string
	Type       Type
	Accent     string
}

func Render(cfg model.DisplayConfig, ds model.ProgressDataset) Frame {
	f := Frame{
		Columns:    cfg.Layout.Columns,
		RowGapPx:   RowGap(DotSize(cfg.Size)),
		Date:       PlaceholderDate,
		CustomText: cfg.CustomText,
		Type:       Typography(cfg.Font),
		Accent:     cfg.Accent.Hex(),
	}
	if cfg.ShowClock {
		f.Clock = PlaceholderClock
	}
	if cfg.ShowStats {
		f.Stats = StatsLine(ds)
	}
	for c := range Cells(cfg, ds) {
		for len(f.Rows) <= c.Row {
			f.Rows = append(f.Rows, nil)
		}
		f.Rows[c.Row] = append(f.Rows[c.Row], StyledCell{Cell: c, Style: CellStyle(cfg, c)})
	}
	return f
}
