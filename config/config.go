// Package config holds the tunables of a timeline session: placement
// constants, animation steps, timing and palette.
//
// Values start from Default and may be overridden by a TOML file.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pelletier/go-toml/v2"

	"github.com/andareed/census-timeline/connector"
	"github.com/andareed/census-timeline/layout"
	"github.com/andareed/census-timeline/rotation"
)

var ErrInvalid = errors.New("invalid config")

// MaxFrameRate keeps the frame interval at a millisecond or more.
const MaxFrameRate = 1000

// Duration decodes TOML strings like "2s" or "1500ms".
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

type Layout struct {
	Span        float32 `toml:"span"`
	YearLayerY  float32 `toml:"year_layer_y"`
	GroupLayerY float32 `toml:"group_layer_y"`
	BinStepZ    float32 `toml:"bin_step_z"`
}

type Animation struct {
	GrowStep    float64  `toml:"grow_step"`
	FadeStep    float64  `toml:"fade_step"`
	FrameRate   int      `toml:"frame_rate"`
	RotateEvery Duration `toml:"rotate_every"`
	Policy      string   `toml:"policy"`
}

// Palette colours are hex strings, #rrggbb.
type Palette struct {
	Background string `toml:"background"`
	Year       string `toml:"year"`
	Bin        string `toml:"bin"`
	Focused    string `toml:"focused"`
	Connector  string `toml:"connector"`
}

type Config struct {
	Layout    Layout    `toml:"layout"`
	Animation Animation `toml:"animation"`
	Palette   Palette   `toml:"palette"`
}

func Default() Config {
	l := layout.Default()
	s := connector.DefaultSteps()
	return Config{
		Layout: Layout{
			Span:        l.Span,
			YearLayerY:  l.YearLayerY,
			GroupLayerY: l.GroupLayerY,
			BinStepZ:    l.BinStepZ,
		},
		Animation: Animation{
			GrowStep:    s.Grow,
			FadeStep:    s.Fade,
			FrameRate:   60,
			RotateEvery: Duration{rotation.DefaultPeriod},
			Policy:      connector.PolicyFade.String(),
		},
		Palette: Palette{
			Background: "#1a1a1a",
			Year:       "#ffa500",
			Bin:        "#ff0000",
			Focused:    "#ff6b6b",
			Connector:  "#0000ff",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := Decode(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %q: %w", path, err)
	}
	return cfg, nil
}

// Decode unmarshals TOML into cfg, keeping fields the document leaves out,
// and validates the result.
func Decode(data []byte, cfg *Config) error {
	if err := toml.Unmarshal(data, cfg); err != nil {
		return err
	}
	return cfg.Validate()
}

func (c Config) Validate() error {
	if c.Layout.Span <= 0 {
		return fmt.Errorf("%w: layout.span must be positive, got %v", ErrInvalid, c.Layout.Span)
	}
	if c.Animation.GrowStep <= 0 || c.Animation.GrowStep > 1 {
		return fmt.Errorf("%w: animation.grow_step must be in (0, 1], got %v", ErrInvalid, c.Animation.GrowStep)
	}
	if c.Animation.FadeStep <= 0 || c.Animation.FadeStep > 1 {
		return fmt.Errorf("%w: animation.fade_step must be in (0, 1], got %v", ErrInvalid, c.Animation.FadeStep)
	}
	if c.Animation.FrameRate <= 0 || c.Animation.FrameRate > MaxFrameRate {
		return fmt.Errorf("%w: animation.frame_rate must be in [1, %d], got %d", ErrInvalid, MaxFrameRate, c.Animation.FrameRate)
	}
	if c.Animation.RotateEvery.Duration <= 0 {
		return fmt.Errorf("%w: animation.rotate_every must be positive, got %s", ErrInvalid, c.Animation.RotateEvery)
	}
	if _, err := connector.ParsePolicy(c.Animation.Policy); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return c.Palette.validate()
}

func (p Palette) validate() error {
	for _, f := range []struct{ name, hex string }{
		{"background", p.Background},
		{"year", p.Year},
		{"bin", p.Bin},
		{"focused", p.Focused},
		{"connector", p.Connector},
	} {
		if _, err := colorful.Hex(f.hex); err != nil {
			return fmt.Errorf("%w: palette.%s: %v", ErrInvalid, f.name, err)
		}
	}
	return nil
}

func (c Config) LayoutOptions() layout.Options {
	return layout.Options{
		Span:        c.Layout.Span,
		YearLayerY:  c.Layout.YearLayerY,
		GroupLayerY: c.Layout.GroupLayerY,
		BinStepZ:    c.Layout.BinStepZ,
	}
}

func (c Config) Steps() connector.Steps {
	return connector.Steps{Grow: c.Animation.GrowStep, Fade: c.Animation.FadeStep}
}

// Policy assumes c has been validated.
func (c Config) Policy() connector.Policy {
	p, _ := connector.ParsePolicy(c.Animation.Policy)
	return p
}

func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.Animation.FrameRate)
}
