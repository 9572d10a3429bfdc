package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownToken = errors.New("model: unknown display token")

const MaxCustomTextLen = 30

type ColorToken string

const (
	ColorWhite   ColorToken = "White"
	ColorEmerald ColorToken = "Emerald"
	ColorBlue    ColorToken = "Blue"
	ColorPurple  ColorToken = "Purple"
	ColorPink    ColorToken = "Pink"
	ColorOrange  ColorToken = "Orange"
)

var Colors = []ColorToken{ColorWhite, ColorEmerald, ColorBlue, ColorPurple, ColorPink, ColorOrange}

var colorHex = map[ColorToken]string{
	ColorWhite:   "#FFFFFF",
	ColorEmerald: "#10B981",
	ColorBlue:    "#3B82F6",
	ColorPurple:  "#8B5CF6",
	ColorPink:    "#EC4899",
	ColorOrange:  "#F97316",
}

func (c ColorToken) IsValid() bool {
	_, ok := colorHex[c]
	return ok
}

// Hex returns the swatch value; unknown tokens resolve to the first swatch.
func (c ColorToken) Hex() string {
	if v, ok := colorHex[c]; ok {
		return v
	}
	return colorHex[Colors[0]]
}

type LayoutSpec struct {
	Name    string
	Columns int
}

var (
	LayoutStandard = LayoutSpec{Name: "Standard", Columns: 17}
	LayoutCompact  = LayoutSpec{Name: "Compact", Columns: 21}
	LayoutLoose    = LayoutSpec{Name: "Loose", Columns: 13}
)

var Layouts = []LayoutSpec{LayoutStandard, LayoutCompact, LayoutLoose}

func (l LayoutSpec) IsValid() bool {
	for _, known := range Layouts {
		if known == l {
			return true
		}
	}
	return false
}

// Rows is the mathematically required row count, before any display cap.
func (l LayoutSpec) Rows(totalDays int) int {
	if l.Columns <= 0 || totalDays <= 0 {
		return 0
	}
	return (totalDays + l.Columns - 1) / l.Columns
}

type FontToken string

const (
	FontThin    FontToken = "Thin"
	FontLight   FontToken = "Light"
	FontRegular FontToken = "Regular"
	FontMedium  FontToken = "Medium"
	FontBold    FontToken = "Bold"
	FontSerif   FontToken = "Serif"
	FontMono    FontToken = "Mono"
)

var Fonts = []FontToken{FontThin, FontLight, FontRegular, FontMedium, FontBold, FontSerif, FontMono}

func (f FontToken) IsValid() bool { return contains(Fonts, f) }

type ShapeToken string

const (
	ShapeRounded ShapeToken = "Rounded"
	ShapeCircle  ShapeToken = "Circle"
	ShapeSquare  ShapeToken = "Square"
)

var Shapes = []ShapeToken{ShapeRounded, ShapeCircle, ShapeSquare}

func (s ShapeToken) IsValid() bool { return contains(Shapes, s) }

type SizeToken string

const (
	SizeSmall  SizeToken = "Small"
	SizeMedium SizeToken = "Medium"
	SizeLarge  SizeToken = "Large"
)

var Sizes = []SizeToken{SizeSmall, SizeMedium, SizeLarge}

func (s SizeToken) IsValid() bool { return contains(Sizes, s) }

// DisplayConfig is the host-owned wallpaper appearance. It lives for one
// session and is never persisted.
type DisplayConfig struct {
	Accent     ColorToken
	Layout     LayoutSpec
	Font       FontToken
	Shape      ShapeToken
	Size       SizeToken
	CustomText string
	ShowClock  bool
	ShowStats  bool
}

func DefaultDisplayConfig() DisplayConfig {
	return DisplayConfig{
		Accent:    Colors[0],
		Layout:    Layouts[0],
		Font:      FontRegular,
		Shape:     ShapeRounded,
		Size:      SizeMedium,
		ShowClock: true,
		ShowStats: true,
	}
}

func (c *DisplayConfig) SetAccentColor(v ColorToken) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: color %q", ErrUnknownToken, v)
	}
	c.Accent = v
	return nil
}

func (c *DisplayConfig) SetLayout(v LayoutSpec) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: layout %q", ErrUnknownToken, v.Name)
	}
	c.Layout = v
	return nil
}

func (c *DisplayConfig) SetFont(v FontToken) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: font %q", ErrUnknownToken, v)
	}
	c.Font = v
	return nil
}

func (c *DisplayConfig) SetShape(v ShapeToken) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: shape %q", ErrUnknownToken, v)
	}
	c.Shape = v
	return nil
}

func (c *DisplayConfig) SetSize(v SizeToken) error {
	if !v.IsValid() {
		return fmt.Errorf("%w: size %q", ErrUnknownToken, v)
	}
	c.Size = v
	return nil
}

// SetCustomText stores at most MaxCustomTextLen runes; the excess is dropped.
func (c *DisplayConfig) SetCustomText(v string) {
	c.CustomText = TruncateCustomText(v)
}

func (c *DisplayConfig) SetShowClock(v bool) { c.ShowClock = v }

func (c *DisplayConfig) SetShowStats(v bool) { c.ShowStats = v }

func TruncateCustomText(v string) string {
	runes := []rune(v)
	if len(runes) <= MaxCustomTextLen {
		return v
	}
	return string(runes[:MaxCustomTextLen])
}

func ParseColor(raw string) (ColorToken, error) {
	for _, c := range Colors {
		if strings.EqualFold(strings.TrimSpace(raw), string(c)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: color %q", ErrUnknownToken, raw)
}

func ParseLayout(raw string) (LayoutSpec, error) {
	for _, l := range Layouts {
		if strings.EqualFold(strings.TrimSpace(raw), l.Name) {
			return l, nil
		}
	}
	return LayoutSpec{}, fmt.Errorf("%w: layout %q", ErrUnknownToken, raw)
}

func ParseFont(raw string) (FontToken, error) {
	return parseToken(Fonts, "font", raw)
}

func ParseShape(raw string) (ShapeToken, error) {
	return parseToken(Shapes, "shape", raw)
}

func ParseSize(raw string) (SizeToken, error) {
	return parseToken(Sizes, "size", raw)
}

// Next returns the element after cur, wrapping around. Unknown values map to
// the first element.
func Next[T comparable](items []T, cur T) T {
	for i, item := range items {
		if item == cur {
			return items[(i+1)%len(items)]
		}
	}
	return items[0]
}

func parseToken[T ~string](set []T, kind, raw string) (T, error) {
	for _, v := range set {
		if strings.EqualFold(strings.TrimSpace(raw), string(v)) {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s %q", ErrUnknownToken, kind, raw)
}

func contains[T comparable](items []T, target T) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
