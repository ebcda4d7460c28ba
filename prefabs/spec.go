package prefabs

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type GameSpec struct {
	Title       string          `yaml:"title"`
	Width       int             `yaml:"width"`
	Height      int             `yaml:"height"`
	TPS         int             `yaml:"tps"`
	Physics     PhysicsSpec     `yaml:"physics"`
	Diagnostics DiagnosticsSpec `yaml:"diagnostics"`
}

// PhysicsSpec configures the physics space. Gravity is in metres per second
// squared, positive pulls down. MaxSubsteps bounds how many 1/60 s steps one
// frame may take.
type PhysicsSpec struct {
	PixelsPerMeter float64 `yaml:"pixels_per_meter"`
	Gravity        float64 `yaml:"gravity"`
	Iterations     int     `yaml:"iterations"`
	MaxSubsteps    int     `yaml:"max_substeps"`
	Debug          bool    `yaml:"debug"`
}

type DiagnosticsSpec struct {
	HistoryLength int     `yaml:"history_length"`
	LogInterval   float64 `yaml:"log_interval"`
}

func LoadGameSpec() (*GameSpec, error) {
	spec, err := LoadSpec[GameSpec]("game.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PlayerSpec struct {
	Name         string        `yaml:"name"`
	MoveSpeed    float64       `yaml:"move_speed"`
	GravityScale float64       `yaml:"gravity_scale"`
	Transform    TransformSpec `yaml:"transform"`
	Collider     ColliderSpec  `yaml:"collider"`
	Sprite       SpriteSpec    `yaml:"sprite"`
	Animation    AnimationSpec `yaml:"animation"`
}

func LoadPlayerSpec() (*PlayerSpec, error) {
	spec, err := LoadSpec[PlayerSpec]("player.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type CameraSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Zoom      float64       `yaml:"zoom"`
}

func LoadCameraSpec() (*CameraSpec, error) {
	spec, err := LoadSpec[CameraSpec]("camera.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type OverlaySpec struct {
	Name        string    `yaml:"name"`
	Placeholder string    `yaml:"placeholder"`
	OffsetX     float64   `yaml:"offset_x"`
	OffsetY     float64   `yaml:"offset_y"`
	Color       YAMLColor `yaml:"color"`
}

func LoadOverlaySpec() (*OverlaySpec, error) {
	spec, err := LoadSpec[OverlaySpec]("fps_overlay.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type GroundSpec struct {
	Name      string        `yaml:"name"`
	Transform TransformSpec `yaml:"transform"`
	Collider  ColliderSpec  `yaml:"collider"`
}

func LoadGroundSpec() (*GroundSpec, error) {
	spec, err := LoadSpec[GroundSpec]("ground.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type TransformSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type ColliderSpec struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Mass       float64 `yaml:"mass"`
	Friction   float64 `yaml:"friction"`
	Elasticity float64 `yaml:"elasticity"`
}

type SpriteSpec struct {
	Image   string  `yaml:"image"`
	OriginX float64 `yaml:"origin_x"`
	OriginY float64 `yaml:"origin_y"`
}

type AnimationSpec struct {
	CellWidth     int                       `yaml:"cell_width"`
	CellHeight    int                       `yaml:"cell_height"`
	Columns       int                       `yaml:"columns"`
	Rows          int                       `yaml:"rows"`
	FrameInterval float64                   `yaml:"frame_interval"`
	Initial       string                    `yaml:"initial"`
	States        map[string]FrameRangeSpec `yaml:"states"`
}

type FrameRangeSpec struct {
	First int `yaml:"first"`
	Last  int `yaml:"last"`
}

type YAMLColor struct {
	color.Color
}

func (c *YAMLColor) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")

	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	parse := func(start int) (uint8, error) {
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(v), err
	}

	r, err := parse(0)
	if err != nil {
		return err
	}
	g, err := parse(2)
	if err != nil {
		return err
	}
	b, err := parse(4)
	if err != nil {
		return err
	}

	a := uint8(255)
	if len(s) == 8 {
		a, err = parse(6)
		if err != nil {
			return err
		}
	}

	c.Color = color.NRGBA{R: r, G: g, B: b, A: a}
	return nil
}
