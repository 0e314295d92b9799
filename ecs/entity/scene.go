package entity

import (
	"fmt"

	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/component"
	"github.com/milk9111/trailblazer/prefabs"
)

// BuildScene loads a scene prefab and spawns every entity it lists. Either
// all entities are created or none are.
func BuildScene(w *ecs.World, scenePath string) (prefabs.SceneSpec, []ecs.Entity, error) {
	if w == nil {
		return prefabs.SceneSpec{}, nil, fmt.Errorf("build scene: world is nil")
	}
	scene, err := prefabs.LoadSceneSpec(scenePath)
	if err != nil {
		return scene, nil, fmt.Errorf("build scene: %w", err)
	}

	spawned := make([]ecs.Entity, 0, len(scene.Entities))
	for i, ent := range scene.Entities {
		e, err := BuildEntity(w, ent.Prefab)
		if err == nil && (ent.X != nil || ent.Y != nil) {
			err = moveEntity(w, e, ent)
		}
		if err != nil {
			for _, s := range spawned {
				ecs.DestroyEntity(w, s)
			}
			ecs.DestroyEntity(w, e)
			return scene, nil, fmt.Errorf("build scene %q: entity %d: %w", scenePath, i, err)
		}
		spawned = append(spawned, e)
	}
	return scene, spawned, nil
}

func moveEntity(w *ecs.World, e ecs.Entity, ent prefabs.SceneEntitySpec) error {
	x, y := 0.0, 0.0
	if t, ok := ecs.Get(w, e, component.TransformComponent.Kind()); ok {
		x, y = t.X, t.Y
	}
	if ent.X != nil {
		x = *ent.X
	}
	if ent.Y != nil {
		y = *ent.Y
	}
	return SetEntityTransform(w, e, x, y)
}
