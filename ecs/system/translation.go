package system

import (
	"fmt"
	"log"
	"math"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/component"
	"github.com/milk9111/trailblazer/prefabs"
)

// TranslationSystem moves entities carrying AnimateTranslation around their
// offset as a function of total world time. It also ages Text components so
// fade-ins progress.
type TranslationSystem struct {
	scripts map[string]*motionScript
	failed  map[string]bool
}

func NewTranslationSystem() *TranslationSystem {
	return &TranslationSystem{
		scripts: map[string]*motionScript{},
		failed:  map[string]bool{},
	}
}

func (s *TranslationSystem) Update(w *ecs.World) {
	clock := w.Clock()
	t := clock.Seconds()

	ecs.ForEach2(w, component.AnimateTranslationComponent.Kind(), component.TransformComponent.Kind(), func(e ecs.Entity, move *component.AnimateTranslation, tr *component.Transform) {
		pos, err := s.position(move, t)
		if err != nil {
			if !s.failed[move.Script] {
				log.Printf("translation: entity=%s script %q: %v; using built-in motion", e, move.Script, err)
				s.failed[move.Script] = true
			}
			pos = Ellipse(move, t)
		}
		tr.X = pos.X
		tr.Y = pos.Y
	})

	ecs.ForEach(w, component.TextComponent.Kind(), func(_ ecs.Entity, txt *component.Text) {
		if txt.FadeIn > 0 && txt.Age < txt.FadeIn {
			txt.Age += clock.Delta
		}
	})
}

// Invalidate drops compiled scripts so edited files are picked up.
func (s *TranslationSystem) Invalidate() {
	s.scripts = map[string]*motionScript{}
	s.failed = map[string]bool{}
}

func (s *TranslationSystem) position(move *component.AnimateTranslation, t float64) (cp.Vector, error) {
	if move.Script == "" {
		return Ellipse(move, t), nil
	}
	if s.failed[move.Script] {
		return Ellipse(move, t), nil
	}
	script, ok := s.scripts[move.Script]
	if !ok {
		compiled, err := compileMotionScript(move.Script)
		if err != nil {
			return cp.Vector{}, err
		}
		script = compiled
		s.scripts[move.Script] = script
	}
	return script.eval(move, t)
}

// Ellipse is the built-in motion: a sine on X and cosine on Y around the
// offset.
func Ellipse(move *component.AnimateTranslation, t float64) cp.Vector {
	phase := move.Speed * t
	swing := cp.Vector{X: move.AmplitudeX * math.Sin(phase), Y: move.AmplitudeY * math.Cos(phase)}
	return cp.Vector{X: move.OffsetX, Y: move.OffsetY}.Add(swing)
}

type motionScript struct {
	compiled *tengo.Compiled
}

var motionInputs = []string{"t", "amplitude_x", "amplitude_y", "offset_x", "offset_y", "speed"}

func compileMotionScript(name string) (*motionScript, error) {
	src, err := prefabs.LoadScript(name)
	if err != nil {
		return nil, err
	}
	script := tengo.NewScript(src)
	for _, in := range motionInputs {
		_ = script.Add(in, 0.0)
	}
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return nil, err
	}
	// Globals only hold values once the script has run.
	if err := compiled.Run(); err != nil {
		return nil, err
	}
	if !compiled.IsDefined("x") || !compiled.IsDefined("y") {
		return nil, fmt.Errorf("script must define x and y")
	}
	return &motionScript{compiled: compiled}, nil
}

func (m *motionScript) eval(move *component.AnimateTranslation, t float64) (cp.Vector, error) {
	values := []float64{t, move.AmplitudeX, move.AmplitudeY, move.OffsetX, move.OffsetY, move.Speed}
	for i, in := range motionInputs {
		if err := m.compiled.Set(in, values[i]); err != nil {
			return cp.Vector{}, err
		}
	}
	if err := m.compiled.Run(); err != nil {
		return cp.Vector{}, err
	}
	return cp.Vector{X: m.compiled.Get("x").Float(), Y: m.compiled.Get("y").Float()}, nil
}
