package system

import (
	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/component"
)

// AnimationSystem steps every playing animation by the world delta and points
// the sprite at the current sheet cell.
type AnimationSystem struct{}

func NewAnimationSystem() *AnimationSystem {
	return &AnimationSystem{}
}

func (a *AnimationSystem) Update(w *ecs.World) {
	delta := w.Clock().Delta
	ecs.ForEach2(w, component.AnimationComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
		// Sprites added without a source cell show the current frame right away.
		if !sprite.UseSource {
			showCell(w, e, anim, sprite)
		}
		if !anim.Playing {
			return
		}
		if !anim.Advance(delta) {
			return
		}

		showCell(w, e, anim, sprite)
		w.Events().Push(ecs.Event{
			Type: ecs.EventAnimationFrame,
			Data: ecs.AnimationFrameEvent{Entity: e, Frame: anim.Current},
		})
	})
}

func showCell(w *ecs.World, e ecs.Entity, anim *component.Animation, sprite *component.Sprite) {
	sheet, ok := ecs.Get(w, e, component.SpriteSheetComponent.Kind())
	if !ok {
		return
	}
	if cell, ok := sheet.Cell(anim.Current); ok {
		sprite.Source = cell
		sprite.UseSource = true
	}
}
