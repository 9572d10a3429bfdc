package grid

import (
	"reflect"
	"slices"
	"testing"

	"github.com/sandeepkv93/yeardots/internal/model"
)

func TestCellsDeterministicAcrossCalls(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	ds := model.DefaultDataset
	seq := Cells(cfg, ds)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	third := slices.Collect(Cells(cfg, ds))
	if !reflect.DeepEqual(first, second) || !reflect.DeepEqual(first, third) {
		t.Fatal("expected identical cell sequences for identical inputs")
	}
	if !reflect.DeepEqual(Render(cfg, ds), Render(cfg, ds)) {
		t.Fatal("expected identical frames for identical inputs")
	}
}

func TestCellsRowCountPerLayout(t *testing.T) {
	ds := model.ProgressDataset{CurrentDay: 30, TotalDays: 365}
	cases := []struct {
		layout   model.LayoutSpec
		wantRows int
	}{
		{model.LayoutStandard, 22},
		{model.LayoutCompact, 18},
		{model.LayoutLoose, 22},
	}
	for _, tc := range cases {
		cfg := model.DefaultDisplayConfig()
		cfg.Layout = tc.layout
		if got := RowCount(tc.layout, ds); got != tc.wantRows {
			t.Fatalf("%s RowCount = %d, want %d", tc.layout.Name, got, tc.wantRows)
		}
		maxRow := -1
		for c := range Cells(cfg, ds) {
			if c.Row > maxRow {
				maxRow = c.Row
			}
			if c.Col < 0 || c.Col >= tc.layout.Columns {
				t.Fatalf("%s: column out of range: %+v", tc.layout.Name, c)
			}
		}
		if maxRow+1 != tc.wantRows {
			t.Fatalf("%s emitted %d rows, want %d", tc.layout.Name, maxRow+1, tc.wantRows)
		}
	}
}

func TestCellsNeverOverflowDataset(t *testing.T) {
	ds := model.DefaultDataset
	for _, layout := range model.Layouts {
		cfg := model.DefaultDisplayConfig()
		cfg.Layout = layout
		count := 0
		for c := range Cells(cfg, ds) {
			if c.Index != c.Row*layout.Columns+c.Col {
				t.Fatalf("%s: index mismatch %+v", layout.Name, c)
			}
			if c.Index >= ds.TotalDays {
				t.Fatalf("%s: emitted index %d beyond %d days", layout.Name, c.Index, ds.TotalDays)
			}
			count++
		}
		want := min(ds.TotalDays, MaxRows*layout.Columns)
		if count != want {
			t.Fatalf("%s emitted %d cells, want %d", layout.Name, count, want)
		}
	}
}

func TestCellsFilledAndHighlighted(t *testing.T) {
	ds := model.DefaultDataset
	for _, layout := range model.Layouts {
		cfg := model.DefaultDisplayConfig()
		cfg.Layout = layout
		filled, highlighted := 0, 0
		for c := range Cells(cfg, ds) {
			if c.Filled {
				filled++
			}
			if c.Highlighted {
				highlighted++
				if c.Index != ds.CurrentDay-1 {
					t.Fatalf("highlight at %d, want %d", c.Index, ds.CurrentDay-1)
				}
				if c.Filled {
					t.Fatal("today must not also be counted as filled")
				}
			}
		}
		if filled != ds.CurrentDay-1 {
			t.Fatalf("%s filled = %d, want %d", layout.Name, filled, ds.CurrentDay-1)
		}
		if highlighted != 1 {
			t.Fatalf("%s highlighted = %d, want 1", layout.Name, highlighted)
		}
	}
}

func TestCellsStopsEarly(t *testing.T) {
	n := 0
	for range Cells(model.DefaultDisplayConfig(), model.DefaultDataset) {
		n++
		if n == 5 {
			break
		}
	}
	if n != 5 {
		t.Fatalf("expected early break after 5 cells, got %d", n)
	}
}

func TestCellsZeroColumnLayoutEmitsNothing(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	cfg.Layout = model.LayoutSpec{Name: "Broken"}
	if got := slices.Collect(Cells(cfg, model.DefaultDataset)); len(got) != 0 {
		t.Fatalf("expected no cells, got %d", len(got))
	}
}

func TestDotSizeAndRadiusLookups(t *testing.T) {
	sizes := map[model.SizeToken]int{
		model.SizeSmall:            5,
		model.SizeMedium:           7,
		model.SizeLarge:            9,
		model.SizeToken("Massive"): 7,
	}
	for tok, want := range sizes {
		if got := DotSize(tok); got != want {
			t.Fatalf("DotSize(%q) = %d, want %d", tok, got, want)
		}
	}
	radii := map[model.ShapeToken]string{
		model.ShapeCircle:        "50%",
		model.ShapeSquare:        "0px",
		model.ShapeRounded:       "2px",
		model.ShapeToken("Star"): "2px",
	}
	for tok, want := range radii {
		if got := CornerRadius(tok); got != want {
			t.Fatalf("CornerRadius(%q) = %q, want %q", tok, got, want)
		}
	}
}

func TestRowGapThreshold(t *testing.T) {
	if RowGap(5) != 3 || RowGap(7) != 3 || RowGap(9) != 4 {
		t.Fatalf("unexpected row gaps: %d %d %d", RowGap(5), RowGap(7), RowGap(9))
	}
}

func TestCellStyleColorsAndGlow(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	cfg.Accent = model.ColorEmerald
	cfg.Size = model.SizeLarge

	past := CellStyle(cfg, Cell{Filled: true})
	if past.Color != "#10B981" || past.GlowPx != 0 {
		t.Fatalf("unexpected past style: %+v", past)
	}
	today := CellStyle(cfg, Cell{Highlighted: true})
	if today.Color != "#10B981" || today.GlowPx != 18 || today.GlowColor != "#10B98160" {
		t.Fatalf("unexpected today style: %+v", today)
	}
	future := CellStyle(cfg, Cell{})
	if future.Color != EmptyColor || future.GlowPx != 0 {
		t.Fatalf("future days must stay neutral: %+v", future)
	}
}

func TestTypographyLookup(t *testing.T) {
	if got := Typography(model.FontThin); got.Weight != 200 || got.Family != DisplayFamily {
		t.Fatalf("unexpected thin: %+v", got)
	}
	if got := Typography(model.FontBold); got.Weight != 700 {
		t.Fatalf("unexpected bold: %+v", got)
	}
	if got := Typography(model.FontMono); got.Weight != 400 || got.Family != `"JetBrains Mono", monospace` {
		t.Fatalf("unexpected mono: %+v", got)
	}
	if got := Typography(model.FontToken("Wingdings")); got != (Type{Weight: 400, Family: DisplayFamily}) {
		t.Fatalf("expected default typography, got %+v", got)
	}
}

func TestRenderSecondaryOutputs(t *testing.T) {
	cfg := model.DefaultDisplayConfig()
	cfg.SetCustomText("carpe diem")
	f := Render(cfg, model.DefaultDataset)
	if f.Clock != PlaceholderClock || f.Date != PlaceholderDate {
		t.Fatalf("unexpected clock/date: %q %q", f.Clock, f.Date)
	}
	if f.Stats != "335 days left · 8%" {
		t.Fatalf("unexpected stats line: %q", f.Stats)
	}
	if f.CustomText != "carpe diem" {
		t.Fatalf("unexpected custom text: %q", f.CustomText)
	}
	if len(f.Rows) != 22 || f.RowGapPx != 3 {
		t.Fatalf("unexpected frame shape: rows=%d gap=%d", len(f.Rows), f.RowGapPx)
	}

	cfg.SetShowClock(false)
	cfg.SetShowStats(false)
	f = Render(cfg, model.DefaultDataset)
	if f.Clock != "" || f.Stats != "" {
		t.Fatalf("expected gated outputs to be empty: clock=%q stats=%q", f.Clock, f.Stats)
	}
}
