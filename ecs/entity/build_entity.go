package entity

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/component"
	"github.com/milk9111/trailblazer/ecs/render"
	"github.com/milk9111/trailblazer/prefabs"
)

type buildContext struct {
	PrefabPath string
}

type componentBuildFn func(w *ecs.World, e ecs.Entity, raw any, ctx *buildContext) error

var componentRegistry = map[string]componentBuildFn{
	"transform":           addTransform,
	"sprite_sheet":        addSpriteSheet,
	"sprite":              addSprite,
	"animation":           addAnimation,
	"text":                addText,
	"animate_translation": addAnimateTranslation,
	"render_layer":        addRenderLayer,
	"camera":              addCamera,
}

// Components later in the list may read ones added earlier: sprite picks up
// the sheet image and animation seeds the sprite's source cell.
var componentBuildOrder = []string{
	"transform",
	"sprite_sheet",
	"sprite",
	"animation",
	"text",
	"animate_translation",
	"render_layer",
	"camera",
}

func BuildEntity(w *ecs.World, prefabPath string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}

	spec, err := prefabs.LoadEntityBuildSpec(prefabPath)
	if err != nil {
		return 0, fmt.Errorf("build entity: load %q: %w", prefabPath, err)
	}
	return BuildEntityFromSpec(w, spec, prefabPath)
}

// BuildEntityFromSpec creates an entity from an already decoded prefab. On
// error the partially built entity is destroyed.
func BuildEntityFromSpec(w *ecs.World, spec prefabs.EntityBuildSpec, source string) (ecs.Entity, error) {
	if w == nil {
		return 0, fmt.Errorf("build entity: world is nil")
	}
	if len(spec.Components) == 0 {
		return 0, fmt.Errorf("build entity: prefab %q does not define components", source)
	}

	e := ecs.CreateEntity(w)
	ctx := &buildContext{PrefabPath: source}

	if spec.Name != "" {
		if err := ecs.Add(w, e, component.NameComponent.Kind(), &component.Name{Value: spec.Name}); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add name: %w", source, err)
		}
	}

	remaining := make(map[string]any, len(spec.Components))
	for k, v := range spec.Components {
		remaining[k] = v
	}

	names := make([]string, 0, len(remaining))
	for _, name := range componentBuildOrder {
		if _, ok := remaining[name]; ok {
			names = append(names, name)
			delete(remaining, name)
		}
	}
	extra := make([]string, 0, len(remaining))
	for name := range remaining {
		extra = append(extra, name)
	}
	sort.Strings(extra)
	names = append(names, extra...)

	for _, name := range names {
		builder, ok := componentRegistry[name]
		if !ok {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: no builder for component %q", source, name)
		}
		if err := builder(w, e, spec.Components[name], ctx); err != nil {
			ecs.DestroyEntity(w, e)
			return 0, fmt.Errorf("build entity: %q: add %q: %w", source, name, err)
		}
	}

	return e, nil
}

func SetEntityTransform(w *ecs.World, e ecs.Entity, x, y float64) error {
	t, ok := ecs.Get(w, e, component.TransformComponent.Kind())
	if !ok {
		return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y, ScaleX: 1, ScaleY: 1})
	}
	t.X = x
	t.Y = y
	if tr, ok := ecs.Get(w, e, component.AnimateTranslationComponent.Kind()); ok {
		tr.OffsetX = x
		tr.OffsetY = y
	}
	return nil
}

type transformSpec = prefabs.TransformComponentSpec

func addTransform(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[transformSpec](raw)
	if err != nil {
		return fmt.Errorf("decode transform spec: %w", err)
	}
	if spec.Scale != 0 {
		if spec.ScaleX == 0 {
			spec.ScaleX = spec.Scale
		}
		if spec.ScaleY == 0 {
			spec.ScaleY = spec.Scale
		}
	}
	if spec.ScaleX == 0 {
		spec.ScaleX = 1
	}
	if spec.ScaleY == 0 {
		spec.ScaleY = 1
	}
	return ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spec.X,
		Y:        spec.Y,
		ScaleX:   spec.ScaleX,
		ScaleY:   spec.ScaleY,
		Rotation: spec.Rotation,
	})
}

type spriteSheetSpec = prefabs.SpriteSheetComponentSpec

func addSpriteSheet(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSheetSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite sheet spec: %w", err)
	}
	if spec.CellW <= 0 || spec.CellH <= 0 || spec.Columns <= 0 || spec.Rows <= 0 {
		return fmt.Errorf("sprite sheet %q: cell size and grid must be positive", spec.Image)
	}
	img, err := render.LoadImage(spec.Image)
	if err != nil {
		return err
	}
	return ecs.Add(w, e, component.SpriteSheetComponent.Kind(), &component.SpriteSheet{
		Image:    img,
		CellW:    spec.CellW,
		CellH:    spec.CellH,
		Columns:  spec.Columns,
		Rows:     spec.Rows,
		PaddingX: spec.PaddingX,
		PaddingY: spec.PaddingY,
		OffsetX:  spec.OffsetX,
		OffsetY:  spec.OffsetY,
	})
}

type spriteSpec = prefabs.SpriteComponentSpec

func addSprite(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[spriteSpec](raw)
	if err != nil {
		return fmt.Errorf("decode sprite spec: %w", err)
	}

	var sprite component.Sprite
	frameW, frameH := 0, 0
	if spec.Image != "" {
		img, err := render.LoadImage(spec.Image)
		if err != nil {
			return err
		}
		sprite.Image = img
		frameW, frameH = img.Bounds().Dx(), img.Bounds().Dy()
	} else if sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind()); ok {
		sprite.Image = sheet.Image
		if cell, ok := sheet.Cell(0); ok {
			sprite.Source = cell
			sprite.UseSource = true
		}
		frameW, frameH = sheet.CellW, sheet.CellH
	}

	sprite.OriginX = spec.OriginX
	sprite.OriginY = spec.OriginY
	if sprite.OriginX == 0 && sprite.OriginY == 0 && spec.CenterOriginIfZero {
		sprite.OriginX = float64(frameW) / 2
		sprite.OriginY = float64(frameH) / 2
	}
	sprite.FacingLeft = spec.FacingLeft

	return ecs.Add(w, e, component.SpriteComponent.Kind(), &sprite)
}

type animationSpec = prefabs.AnimationComponentSpec

func addAnimation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animation spec: %w", err)
	}

	anim, err := component.NewAnimation(spec.First, spec.Last, spec.Interval.Duration)
	if err != nil {
		return err
	}
	if spec.Playing != nil {
		anim.Playing = *spec.Playing
	}

	if sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind()); ok {
		if spec.First < 0 || spec.Last >= sheet.Cells() {
			return fmt.Errorf("%w: frames %d..%d outside sheet of %d cells", component.ErrInvalidConfiguration, spec.First, spec.Last, sheet.Cells())
		}
		if sprite, ok := ecs.Get(w, e, component.SpriteComponent.Kind()); ok {
			if cell, ok := sheet.Cell(anim.Current); ok {
				sprite.Source = cell
				sprite.UseSource = true
			}
		}
	}

	return ecs.Add(w, e, component.AnimationComponent.Kind(), anim)
}

type textSpec = prefabs.TextComponentSpec

const defaultTextSize = 24

func addText(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[textSpec](raw)
	if err != nil {
		return fmt.Errorf("decode text spec: %w", err)
	}

	src, err := render.LoadFont(spec.Font)
	if err != nil {
		return err
	}
	size := spec.Size
	if size <= 0 {
		size = defaultTextSize
	}

	c := color.Color(color.White)
	if spec.Color != "" {
		parsed, err := parseHexColor(spec.Color)
		if err != nil {
			return fmt.Errorf("parse text color: %w", err)
		}
		c = parsed
	}

	anchor, err := parseAnchor(spec.Anchor)
	if err != nil {
		return err
	}
	if spec.FadeIn.Duration < 0 {
		return fmt.Errorf("text fade_in %s must not be negative", spec.FadeIn.Duration)
	}

	return ecs.Add(w, e, component.TextComponent.Kind(), &component.Text{
		Value:  spec.Value,
		Face:   &text.GoTextFace{Source: src, Size: size},
		Color:  c,
		Anchor: anchor,
		FadeIn: spec.FadeIn.Duration,
	})
}

type animateTranslationSpec = prefabs.AnimateTranslationComponentSpec

func addAnimateTranslation(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[animateTranslationSpec](raw)
	if err != nil {
		return fmt.Errorf("decode animate translation spec: %w", err)
	}
	if spec.Speed == 0 {
		spec.Speed = 1
	}
	return ecs.Add(w, e, component.AnimateTranslationComponent.Kind(), &component.AnimateTranslation{
		AmplitudeX: spec.AmplitudeX,
		AmplitudeY: spec.AmplitudeY,
		OffsetX:    spec.OffsetX,
		OffsetY:    spec.OffsetY,
		Speed:      spec.Speed,
		Script:     strings.TrimSpace(spec.Script),
	})
}

type renderLayerSpec = prefabs.RenderLayerComponentSpec

func addRenderLayer(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[renderLayerSpec](raw)
	if err != nil {
		return fmt.Errorf("decode render layer spec: %w", err)
	}
	return ecs.Add(w, e, component.RenderLayerComponent.Kind(), &component.RenderLayer{Index: spec.Index})
}

type cameraSpec = prefabs.CameraComponentSpec

func addCamera(w *ecs.World, e ecs.Entity, raw any, _ *buildContext) error {
	spec, err := prefabs.DecodeComponentSpec[cameraSpec](raw)
	if err != nil {
		return fmt.Errorf("decode camera spec: %w", err)
	}
	if spec.Zoom < 0 {
		return fmt.Errorf("camera zoom %v must not be negative", spec.Zoom)
	}
	if spec.Zoom == 0 {
		spec.Zoom = 1
	}
	return ecs.Add(w, e, component.CameraComponent.Kind(), &component.Camera{Zoom: spec.Zoom})
}

var errBadAnchor = errors.New("unknown text anchor")

func parseAnchor(v string) (component.Anchor, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "center":
		return component.AnchorCenter, nil
	case "top_center":
		return component.AnchorTopCenter, nil
	case "top_left":
		return component.AnchorTopLeft, nil
	}
	return 0, fmt.Errorf("%w: %q", errBadAnchor, v)
}

// parseHexColor accepts #rgb, #rrggbb and #rrggbbaa.
func parseHexColor(v string) (color.Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(v), "#")
	alpha := uint8(255)
	if len(s) == 8 {
		a, err := strconv.ParseUint(s[6:], 16, 8)
		if err != nil {
			return nil, fmt.Errorf("parse alpha component of %q: %w", v, err)
		}
		alpha = uint8(a)
		s = s[:6]
	}
	c, err := colorful.Hex("#" + s)
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", v, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
