package swipe

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
	"github.com/tanema/gween/ease"
)

// ErrInvalidConfig is wrapped by every Config validation failure.
var ErrInvalidConfig = errors.New("invalid scroll config")

// Config holds the per-panel tuning of a Controller. The zero value is not
// useful; start from DefaultConfig and override what the panel needs.
type Config struct {
	// TapThreshold is the accumulated movement below which a release is a tap.
	TapThreshold float64 `toml:"tap_threshold"`
	// Axis selects the screen coordinate that drives the offset.
	Axis Axis `toml:"axis"`
	// Sign is applied to every finger delta before it reaches the offset.
	Sign Sign `toml:"sign"`
	// ElasticRatio is the fraction of overscroll kept while dragging past a bound.
	ElasticRatio float64 `toml:"elastic_ratio"`
	// VelocitySmoothing is the weight of the newest delta in the velocity filter.
	VelocitySmoothing float64 `toml:"velocity_smoothing"`
	// Friction is the per-tick momentum decay factor.
	Friction float64 `toml:"friction"`
	// TickRate converts elapsed seconds into decay ticks.
	TickRate float64 `toml:"tick_rate"`
	// MomentumGain scales the release velocity once when momentum starts.
	MomentumGain float64 `toml:"momentum_gain"`
	// StopThreshold ends momentum once the per-tick step is this small.
	StopThreshold float64 `toml:"stop_threshold"`
	// SnapBackDuration is the snap-back animation length in seconds.
	SnapBackDuration float64 `toml:"snap_back_duration"`
	// SnapBackEase names the easing curve used for snap-back (see EaseNames).
	SnapBackEase string `toml:"snap_back_ease"`
	// CancelAsTap resolves a cancelled sub-threshold touch as a tap at the
	// last known point. When false a cancel never reports a tap.
	CancelAsTap bool `toml:"cancel_as_tap"`
}

// DefaultConfig returns the tuning shared by the shop, achievement and
// character panels.
func DefaultConfig() Config {
	return Config{
		TapThreshold:      5,
		Axis:              AxisVertical,
		Sign:              SignNatural,
		ElasticRatio:      0.3,
		VelocitySmoothing: 0.8,
		Friction:          0.95,
		TickRate:          60,
		MomentumGain:      0.15,
		StopThreshold:     0.1,
		SnapBackDuration:  0.3,
		SnapBackEase:      "outCubic",
		CancelAsTap:       true,
	}
}

// easeFuncs maps config names to non-overshooting ease-out curves.
var easeFuncs = map[string]ease.TweenFunc{
	"linear":   ease.Linear,
	"outQuad":  ease.OutQuad,
	"outCubic": ease.OutCubic,
	"outQuart": ease.OutQuart,
	"outQuint": ease.OutQuint,
	"outSine":  ease.OutSine,
	"outExpo":  ease.OutExpo,
	"outCirc":  ease.OutCirc,
}

// EaseNames returns the accepted SnapBackEase values in sorted order.
func EaseNames() []string {
	names := make([]string, 0, len(easeFuncs))
	for name := range easeFuncs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// easeFunc resolves SnapBackEase, falling back to OutCubic.
func (c Config) easeFunc() ease.TweenFunc {
	if fn, ok := easeFuncs[c.SnapBackEase]; ok {
		return fn
	}
	return ease.OutCubic
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Validate reports the first out-of-range field, wrapped in ErrInvalidConfig.
func (c Config) Validate() error {
	switch {
	case !finite(c.TapThreshold) || c.TapThreshold <= 0:
		return fmt.Errorf("%w: tap_threshold %v must be > 0", ErrInvalidConfig, c.TapThreshold)
	case c.Axis != AxisVertical && c.Axis != AxisHorizontal:
		return fmt.Errorf("%w: unknown axis %d", ErrInvalidConfig, c.Axis)
	case c.Sign != SignNatural && c.Sign != SignInverted:
		return fmt.Errorf("%w: sign %d must be natural (1) or inverted (-1)", ErrInvalidConfig, c.Sign)
	case !finite(c.ElasticRatio) || c.ElasticRatio < 0 || c.ElasticRatio >= 1:
		return fmt.Errorf("%w: elastic_ratio %v must be in [0, 1)", ErrInvalidConfig, c.ElasticRatio)
	case !finite(c.VelocitySmoothing) || c.VelocitySmoothing <= 0 || c.VelocitySmoothing > 1:
		return fmt.Errorf("%w: velocity_smoothing %v must be in (0, 1]", ErrInvalidConfig, c.VelocitySmoothing)
	case !finite(c.Friction) || c.Friction <= 0 || c.Friction >= 1:
		return fmt.Errorf("%w: friction %v must be in (0, 1)", ErrInvalidConfig, c.Friction)
	case !finite(c.TickRate) || c.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %v must be > 0", ErrInvalidConfig, c.TickRate)
	case !finite(c.MomentumGain) || c.MomentumGain < 0:
		return fmt.Errorf("%w: momentum_gain %v must be >= 0", ErrInvalidConfig, c.MomentumGain)
	case !finite(c.StopThreshold) || c.StopThreshold <= 0:
		return fmt.Errorf("%w: stop_threshold %v must be > 0", ErrInvalidConfig, c.StopThreshold)
	case !finite(c.SnapBackDuration) || c.SnapBackDuration <= 0:
		return fmt.Errorf("%w: snap_back_duration %v must be > 0", ErrInvalidConfig, c.SnapBackDuration)
	}
	if _, ok := easeFuncs[c.SnapBackEase]; !ok {
		return fmt.Errorf("%w: unknown snap_back_ease %q (want one of %v)", ErrInvalidConfig, c.SnapBackEase, EaseNames())
	}
	return nil
}

// sanitize replaces every invalid field with its default so a Controller can
// always be constructed.
func (c Config) sanitize() Config {
	d := DefaultConfig()
	if !finite(c.TapThreshold) || c.TapThreshold <= 0 {
		c.TapThreshold = d.TapThreshold
	}
	if c.Axis != AxisVertical && c.Axis != AxisHorizontal {
		c.Axis = d.Axis
	}
	if c.Sign != SignNatural && c.Sign != SignInverted {
		c.Sign = d.Sign
	}
	if !finite(c.ElasticRatio) || c.ElasticRatio < 0 || c.ElasticRatio >= 1 {
		c.ElasticRatio = d.ElasticRatio
	}
	if !finite(c.VelocitySmoothing) || c.VelocitySmoothing <= 0 || c.VelocitySmoothing > 1 {
		c.VelocitySmoothing = d.VelocitySmoothing
	}
	if !finite(c.Friction) || c.Friction <= 0 || c.Friction >= 1 {
		c.Friction = d.Friction
	}
	if !finite(c.TickRate) || c.TickRate <= 0 {
		c.TickRate = d.TickRate
	}
	if !finite(c.MomentumGain) || c.MomentumGain < 0 {
		c.MomentumGain = d.MomentumGain
	}
	if !finite(c.StopThreshold) || c.StopThreshold <= 0 {
		c.StopThreshold = d.StopThreshold
	}
	if !finite(c.SnapBackDuration) || c.SnapBackDuration <= 0 {
		c.SnapBackDuration = d.SnapBackDuration
	}
	if _, ok := easeFuncs[c.SnapBackEase]; !ok {
		c.SnapBackEase = d.SnapBackEase
	}
	return c
}

// UnmarshalText lets TOML files spell the axis as "vertical" or "horizontal".
func (a *Axis) UnmarshalText(text []byte) error {
	switch string(text) {
	case "vertical", "y":
		*a = AxisVertical
	case "horizontal", "x":
		*a = AxisHorizontal
	default:
		return fmt.Errorf("%w: unknown axis %q", ErrInvalidConfig, text)
	}
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (a Axis) MarshalText() ([]byte, error) {
	if a == AxisHorizontal {
		return []byte("horizontal"), nil
	}
	return []byte("vertical"), nil
}

// UnmarshalText lets TOML files spell the sign as "natural" or "inverted".
func (s *Sign) UnmarshalText(text []byte) error {
	switch string(text) {
	case "natural", "+":
		*s = SignNatural
	case "inverted", "-":
		*s = SignInverted
	default:
		return fmt.Errorf("%w: unknown sign %q", ErrInvalidConfig, text)
	}
	return nil
}

// MarshalText is the inverse of UnmarshalText.
func (s Sign) MarshalText() ([]byte, error) {
	if s == SignInverted {
		return []byte("inverted"), nil
	}
	return []byte("natural"), nil
}

// LoadConfig parses a TOML document on top of DefaultConfig. Unknown keys are
// rejected so a typo cannot silently fall back to a default.
//
//	tap_threshold = 8
//	sign = "inverted"
//	snap_back_ease = "outQuad"
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse scroll config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and parses a TOML config file.
func LoadConfigFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read scroll config: %w", err)
	}
	return LoadConfig(data)
}

// panelConfigFile is the layout of a multi-panel config document.
type panelConfigFile struct {
	Defaults map[string]any            `toml:"defaults"`
	Panels   map[string]map[string]any `toml:"panels"`
}

// LoadPanelConfigs parses a document with a shared [defaults] table and one
// [panels.<name>] table per panel. Each panel gets DefaultConfig, overlaid by
// [defaults], overlaid by its own table.
//
//	[defaults]
//	elastic_ratio = 0.3
//
//	[panels.characters]
//	axis = "horizontal"
//	tap_threshold = 3
func LoadPanelConfigs(data []byte) (map[string]Config, error) {
	var file panelConfigFile
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&file); err != nil {
		return nil, fmt.Errorf("parse panel configs: %w", err)
	}

	out := make(map[string]Config, len(file.Panels))
	for name, overrides := range file.Panels {
		merged := make(map[string]any, len(file.Defaults)+len(overrides))
		for k, v := range file.Defaults {
			merged[k] = v
		}
		for k, v := range overrides {
			merged[k] = v
		}
		doc, err := toml.Marshal(merged)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", name, err)
		}
		cfg, err := LoadConfig(doc)
		if err != nil {
			return nil, fmt.Errorf("panel %q: %w", name, err)
		}
		out[name] = cfg
	}
	return out, nil
}
