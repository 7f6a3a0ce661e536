package highlight

import (
	"bytes"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tanema/gween/ease"
)

// Config controls the Highlighter. Start from DefaultConfig and override
// fields, or load a TOML file with LoadConfig.
type Config struct {
	// SelectName is the name of the click-selection group.
	SelectName string
	// HoverName is the name of the hover group.
	HoverName string
	// SelectionColor paints the select group.
	SelectionColor Color
	// HoverColor paints the hover group.
	HoverColor Color
	// BackupColor, when set, is painted on items leaving a group instead of
	// resetting them to their base color.
	BackupColor *Color
	// AutoHighlightOnClick selects the clicked item on release.
	AutoHighlightOnClick bool
	// Multiple selects the modifier that adds to the selection.
	Multiple MultiSelect
	// ZoomToSelection frames the camera on clicked items.
	ZoomToSelection bool
	// ZoomFactor scales the framing sphere radius.
	ZoomFactor float64
	// ZoomDuration is the framing flight time in seconds. Zero snaps.
	ZoomDuration float32
	// ZoomEase is the framing easing curve.
	ZoomEase ease.TweenFunc
	// DragThreshold is the pointer travel, in pixels, beyond which a press
	// becomes a drag instead of a click.
	DragThreshold float64
	// Logger receives debug traces and handler errors. Nil means slog.Default.
	Logger *slog.Logger
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		SelectName:           "select",
		HoverName:            "hover",
		SelectionColor:       mustParseColor("#BCF124"),
		HoverColor:           mustParseColor("#6528D7"),
		AutoHighlightOnClick: true,
		Multiple:             MultiSelectCtrl,
		ZoomToSelection:      false,
		ZoomFactor:           1.5,
		ZoomDuration:         0.5,
		ZoomEase:             ease.OutCubic,
		DragThreshold:        0,
	}
}

// fileConfig is the TOML form of Config. Pointer fields distinguish "absent"
// from zero so absent keys keep their defaults.
type fileConfig struct {
	SelectName           *string  `toml:"select_name"`
	HoverName            *string  `toml:"hover_name"`
	SelectionColor       *string  `toml:"selection_color"`
	HoverColor           *string  `toml:"hover_color"`
	BackupColor          *string  `toml:"backup_color"`
	AutoHighlightOnClick *bool    `toml:"auto_highlight_on_click"`
	Multiple             *string  `toml:"multiple"`
	ZoomToSelection      *bool    `toml:"zoom_to_selection"`
	ZoomFactor           *float64 `toml:"zoom_factor"`
	ZoomDuration         *float32 `toml:"zoom_duration"`
	ZoomEase             *string  `toml:"zoom_ease"`
	DragThreshold        *float64 `toml:"drag_threshold"`
}

var easeFuncs = map[string]ease.TweenFunc{
	"linear":        ease.Linear,
	"in-quad":       ease.InQuad,
	"out-quad":      ease.OutQuad,
	"in-out-quad":   ease.InOutQuad,
	"in-cubic":      ease.InCubic,
	"out-cubic":     ease.OutCubic,
	"in-out-cubic":  ease.InOutCubic,
	"in-sine":       ease.InSine,
	"out-sine":      ease.OutSine,
	"in-out-sine":   ease.InOutSine,
	"out-expo":      ease.OutExpo,
	"in-out-expo":   ease.InOutExpo,
	"out-back":      ease.OutBack,
	"out-bounce":    ease.OutBounce,
	"in-out-bounce": ease.InOutBounce,
}

// LoadConfig parses a TOML document over DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	var fc fileConfig
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&fc); err != nil {
		return cfg, fmt.Errorf("highlight: failed to parse config: %w", err)
	}

	if fc.SelectName != nil {
		cfg.SelectName = *fc.SelectName
	}
	if fc.HoverName != nil {
		cfg.HoverName = *fc.HoverName
	}
	for _, c := range []struct {
		key string
		src *string
		dst *Color
	}{
		{"selection_color", fc.SelectionColor, &cfg.SelectionColor},
		{"hover_color", fc.HoverColor, &cfg.HoverColor},
	} {
		if c.src == nil {
			continue
		}
		col, err := ParseColor(*c.src)
		if err != nil {
			return cfg, fmt.Errorf("highlight: config %s: %w", c.key, err)
		}
		*c.dst = col
	}
	if fc.BackupColor != nil {
		col, err := ParseColor(*fc.BackupColor)
		if err != nil {
			return cfg, fmt.Errorf("highlight: config backup_color: %w", err)
		}
		cfg.BackupColor = &col
	}
	if fc.AutoHighlightOnClick != nil {
		cfg.AutoHighlightOnClick = *fc.AutoHighlightOnClick
	}
	if fc.Multiple != nil {
		m, err := ParseMultiSelect(*fc.Multiple)
		if err != nil {
			return cfg, fmt.Errorf("highlight: config multiple: %w", err)
		}
		cfg.Multiple = m
	}
	if fc.ZoomToSelection != nil {
		cfg.ZoomToSelection = *fc.ZoomToSelection
	}
	if fc.ZoomFactor != nil {
		if *fc.ZoomFactor <= 0 {
			return cfg, fmt.Errorf("highlight: config zoom_factor must be positive, got %v", *fc.ZoomFactor)
		}
		cfg.ZoomFactor = *fc.ZoomFactor
	}
	if fc.ZoomDuration != nil {
		cfg.ZoomDuration = *fc.ZoomDuration
	}
	if fc.ZoomEase != nil {
		fn, ok := easeFuncs[*fc.ZoomEase]
		if !ok {
			return cfg, fmt.Errorf("highlight: config zoom_ease: unknown curve %q", *fc.ZoomEase)
		}
		cfg.ZoomEase = fn
	}
	if fc.DragThreshold != nil {
		cfg.DragThreshold = *fc.DragThreshold
	}
	return cfg, nil
}

// ParseMultiSelect parses "none", "shift" or "ctrl".
func ParseMultiSelect(s string) (MultiSelect, error) {
	switch strings.ToLower(s) {
	case "none":
		return MultiSelectNone, nil
	case "shift":
		return MultiSelectShift, nil
	case "ctrl":
		return MultiSelectCtrl, nil
	}
	return MultiSelectNone, fmt.Errorf("unknown multi-select mode %q", s)
}

// ParseColor parses "#RRGGBB" or "#RRGGBBAA".
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || (len(hex) != 6 && len(hex) != 8) {
		return Color{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return Color{
		R: float64(v>>24&0xff) / 255,
		G: float64(v>>16&0xff) / 255,
		B: float64(v>>8&0xff) / 255,
		A: float64(v&0xff) / 255,
	}, nil
}

func mustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
