package system

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/component"
)

// View maps world space (origin at the screen centre, +Y up) to screen pixels.
type View struct {
	X, Y   float64
	Zoom   float64
	Width  float64
	Height float64
}

// ToScreen converts a world position to screen pixels.
func (v View) ToScreen(x, y float64) (float64, float64) {
	zoom := v.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return v.Width/2 + (x-v.X)*zoom, v.Height/2 - (y-v.Y)*zoom
}

// RenderSystem draws sprites and text in render layer order.
type RenderSystem struct {
	camEntity ecs.Entity
}

func NewRenderSystem() *RenderSystem {
	return &RenderSystem{}
}

type drawable struct {
	e     ecs.Entity
	layer int
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	b := screen.Bounds()
	view := r.view(w, float64(b.Dx()), float64(b.Dy()))

	var items []drawable
	collect := func(e ecs.Entity) {
		layer := 0
		if l, ok := ecs.Get(w, e, component.RenderLayerComponent.Kind()); ok {
			layer = l.Index
		}
		items = append(items, drawable{e: e, layer: layer})
	}
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Sprite) {
		collect(e)
	})
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.TextComponent.Kind(), func(e ecs.Entity, _ *component.Transform, _ *component.Text) {
		if !ecs.Has(w, e, component.SpriteComponent.Kind()) {
			collect(e)
		}
	})

	sortDrawables(items)

	for _, it := range items {
		t, _ := ecs.Get(w, it.e, component.TransformComponent.Kind())
		if s, ok := ecs.Get(w, it.e, component.SpriteComponent.Kind()); ok {
			drawSprite(screen, view, t, s)
		}
		if txt, ok := ecs.Get(w, it.e, component.TextComponent.Kind()); ok {
			drawText(screen, view, t, txt)
		}
	}
}

// sortDrawables orders by render layer, then entity id.
func sortDrawables(items []drawable) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].layer != items[j].layer {
			return items[i].layer < items[j].layer
		}
		return items[i].e.ID() < items[j].e.ID()
	})
}

// Reset forgets the cached camera. Call it when the world is replaced.
func (r *RenderSystem) Reset() {
	r.camEntity = 0
}

func (r *RenderSystem) view(w *ecs.World, width, height float64) View {
	v := View{Zoom: 1, Width: width, Height: height}

	if !r.camEntity.Valid() || !ecs.Has(w, r.camEntity, component.CameraComponent.Kind()) {
		r.camEntity = 0
		if camEntity, ok := ecs.First(w, component.CameraComponent.Kind()); ok {
			r.camEntity = camEntity
		}
	}
	if !r.camEntity.Valid() {
		return v
	}
	if camTransform, ok := ecs.Get(w, r.camEntity, component.TransformComponent.Kind()); ok {
		v.X = camTransform.X
		v.Y = camTransform.Y
	}
	if cam, ok := ecs.Get(w, r.camEntity, component.CameraComponent.Kind()); ok && cam.Zoom > 0 {
		v.Zoom = cam.Zoom
	}
	return v
}

func drawSprite(screen *ebiten.Image, view View, t *component.Transform, s *component.Sprite) {
	if s.Image == nil {
		return
	}
	img := s.Image
	if s.UseSource {
		if sub, ok := s.Image.SubImage(s.Source).(*ebiten.Image); ok {
			img = sub
		}
	}

	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(-s.OriginX, -s.OriginY)

	sx, sy := scaleOf(t)
	if s.FacingLeft {
		sx = -sx
	}
	op.GeoM.Scale(sx, sy)
	// Rotation is counter-clockwise in world space, which is clockwise on a
	// screen whose Y axis points down.
	op.GeoM.Rotate(-t.Rotation)
	op.GeoM.Scale(view.Zoom, view.Zoom)
	x, y := view.ToScreen(t.X, t.Y)
	op.GeoM.Translate(x, y)

	screen.DrawImage(img, op)
}

func scaleOf(t *component.Transform) (float64, float64) {
	sx, sy := t.ScaleX, t.ScaleY
	if sx == 0 {
		sx = 1
	}
	if sy == 0 {
		sy = 1
	}
	return sx, sy
}
