// Package grid projects a DisplayConfig and a ProgressDataset onto the dot
// grid shown on the wallpaper preview. Everything here is a pure function of
// its inputs.
package grid

import (
	"fmt"
	"iter"

	"github.com/sandeepkv93/yeardots/internal/model"
)

// MaxRows caps how many rows are ever emitted, regardless of layout.
const MaxRows = 22

const (
	EmptyColor   = "#333"
	glowAlphaHex = "60"
)

type Cell struct {
	Row         int
	Col         int
	Index       int
	Filled      bool
	Highlighted bool
}

// RowCount is min(ceil(total/columns), MaxRows).
func RowCount(layout model.LayoutSpec, ds model.ProgressDataset) int {
	rows := layout.Rows(ds.TotalDays)
	if rows > MaxRows {
		return MaxRows
	}
	return rows
}

// Cells yields one Cell per visible day in row-major order. The sequence can
// be ranged over any number of times and always yields the same cells.
func Cells(cfg model.DisplayConfig, ds model.ProgressDataset) iter.Seq[Cell] {
	cols := cfg.Layout.Columns
	rows := RowCount(cfg.Layout, ds)
	today := ds.CurrentDay - 1
	return func(yield func(Cell) bool) {
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				idx := row*cols + col
				if idx >= ds.TotalDays {
					return
				}
				c := Cell{
					Row:         row,
					Col:         col,
					Index:       idx,
					Filled:      idx < today,
					Highlighted: idx == today,
				}
				if !yield(c) {
					return
				}
			}
		}
	}
}

func DotSize(size model.SizeToken) int {
	switch size {
	case model.SizeSmall:
		return 5
	case model.SizeLarge:
		return 9
	default:
		return 7
	}
}

func CornerRadius(shape model.ShapeToken) string {
	switch shape {
	case model.ShapeCircle:
		return "50%"
	case model.ShapeSquare:
		return "0px"
	default:
		return "2px"
	}
}

func RowGap(dotSize int) int {
	if dotSize > 7 {
		return 4
	}
	return 3
}

type Style struct {
	SizePx int
	Radius string
	Color  string
	// GlowPx is zero for every cell except today's.
	GlowPx    int
	GlowColor string
}

func CellStyle(cfg model.DisplayConfig, c Cell) Style {
	size := DotSize(cfg.Size)
	st := Style{
		SizePx: size,
		Radius: CornerRadius(cfg.Shape),
		Color:  EmptyColor,
	}
	if c.Filled || c.Highlighted {
		st.Color = cfg.Accent.Hex()
	}
	if c.Highlighted {
		st.GlowPx = size * 2
		st.GlowColor = cfg.Accent.Hex() + glowAlphaHex
	}
	return st
}

const (
	DefaultFontWeight = 400
	DisplayFamily     = "var(--font-display)"
	SerifFamily       = `"Times New Roman", serif`
	MonoFamily        = `"JetBrains Mono", monospace`
)

type Type struct {
	Weight int
	Family string
}

func Typography(font model.FontToken) Type {
	t := Type{Weight: DefaultFontWeight, Family: DisplayFamily}
	switch font {
	case model.FontThin:
		t.Weight = 200
	case model.FontLight:
		t.Weight = 300
	case model.FontMedium:
		t.Weight = 500
	case model.FontBold:
		t.Weight = 700
	case model.FontSerif:
		t.Family = SerifFamily
	case model.FontMono:
		t.Family = MonoFamily
	}
	return t
}

// StatsLine renders "<days left> days left · <percent>%".
func StatsLine(ds model.ProgressDataset) string {
	return fmt.Sprintf("%d days left · %d%%", ds.DaysLeft(), ds.PercentComplete())
}
