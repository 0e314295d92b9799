package prefabs

import (
	"fmt"
	"math"
	"strconv"
	"time"

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

// EntityBuildSpec is a prefab: a named bag of component specs keyed by
// component name.
type EntityBuildSpec struct {
	Name       string         `yaml:"name"`
	Components map[string]any `yaml:"components"`
}

func LoadEntityBuildSpec(filename string) (EntityBuildSpec, error) {
	return LoadSpec[EntityBuildSpec](filename)
}

// DecodeComponentSpec re-decodes a loosely typed component spec into T.
func DecodeComponentSpec[T any](raw any) (T, error) {
	var zero T
	if raw == nil {
		return zero, nil
	}
	b, err := yaml.Marshal(raw)
	if err != nil {
		return zero, err
	}
	var out T
	if err := yaml.Unmarshal(b, &out); err != nil {
		return zero, err
	}
	return out, nil
}

type SceneSpec struct {
	Name     string            `yaml:"name"`
	Window   WindowSpec        `yaml:"window"`
	Entities []SceneEntitySpec `yaml:"entities"`
}

type WindowSpec struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
}

// SceneEntitySpec spawns one prefab, optionally moved to X/Y.
type SceneEntitySpec struct {
	Prefab string   `yaml:"prefab"`
	X      *float64 `yaml:"x"`
	Y      *float64 `yaml:"y"`
}

func LoadSceneSpec(filename string) (SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec](filename)
	if err != nil {
		return spec, err
	}
	if len(spec.Entities) == 0 {
		return spec, fmt.Errorf("prefabs: scene %s has no entities", filename)
	}
	return spec, nil
}

type TransformComponentSpec struct {
	X        float64 `yaml:"x"`
	Y        float64 `yaml:"y"`
	Scale    float64 `yaml:"scale"`
	ScaleX   float64 `yaml:"scale_x"`
	ScaleY   float64 `yaml:"scale_y"`
	Rotation float64 `yaml:"rotation"`
}

type SpriteComponentSpec struct {
	Image              string  `yaml:"image"`
	OriginX            float64 `yaml:"origin_x"`
	OriginY            float64 `yaml:"origin_y"`
	CenterOriginIfZero bool    `yaml:"center_origin_if_zero"`
	FacingLeft         bool    `yaml:"facing_left"`
}

type SpriteSheetComponentSpec struct {
	Image    string `yaml:"image"`
	CellW    int    `yaml:"cell_w"`
	CellH    int    `yaml:"cell_h"`
	Columns  int    `yaml:"columns"`
	Rows     int    `yaml:"rows"`
	PaddingX int    `yaml:"padding_x"`
	PaddingY int    `yaml:"padding_y"`
	OffsetX  int    `yaml:"offset_x"`
	OffsetY  int    `yaml:"offset_y"`
}

type AnimationComponentSpec struct {
	First    int      `yaml:"first"`
	Last     int      `yaml:"last"`
	Interval Duration `yaml:"interval"`
	Playing  *bool    `yaml:"playing"`
}

type TextComponentSpec struct {
	Value  string   `yaml:"value"`
	Font   string   `yaml:"font"`
	Size   float64  `yaml:"size"`
	Color  string   `yaml:"color"`
	Anchor string   `yaml:"anchor"`
	FadeIn Duration `yaml:"fade_in"`
}

type AnimateTranslationComponentSpec struct {
	AmplitudeX float64 `yaml:"amplitude_x"`
	AmplitudeY float64 `yaml:"amplitude_y"`
	OffsetX    float64 `yaml:"offset_x"`
	OffsetY    float64 `yaml:"offset_y"`
	Speed      float64 `yaml:"speed"`
	Script     string  `yaml:"script"`
}

type RenderLayerComponentSpec struct {
	Index int `yaml:"index"`
}

type CameraComponentSpec struct {
	Zoom float64 `yaml:"zoom"`
}

// maxDurationSeconds is the largest whole number of seconds a time.Duration holds.
const maxDurationSeconds = float64(math.MaxInt64 / int64(time.Second))

// Duration accepts Go duration strings ("300ms") or a bare number of seconds.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a scalar")
	}
	if value.Value == "" {
		d.Duration = 0
		return nil
	}
	if secs, err := strconv.ParseFloat(value.Value, 64); err == nil {
		if math.IsNaN(secs) || math.Abs(secs) > maxDurationSeconds {
			return fmt.Errorf("duration %q out of range", value.Value)
		}
		d.Duration = time.Duration(secs * float64(time.Second))
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	d.Duration = parsed
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}
