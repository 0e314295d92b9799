package main

import (
	"fmt"
	"log"
	"time"

	"github.com/ebitenui/ebitenui"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trailblazer/common"
	"github.com/milk9111/trailblazer/ecs"
	"github.com/milk9111/trailblazer/ecs/entity"
	"github.com/milk9111/trailblazer/ecs/render"
	"github.com/milk9111/trailblazer/ecs/system"
	"github.com/milk9111/trailblazer/prefabs"
)

type Game struct {
	scenePath string
	debug     bool

	world     *ecs.World
	scheduler *ecs.Scheduler
	renderer  *system.RenderSystem
	motion    *system.TranslationSystem
	window    prefabs.WindowSpec

	paused  bool
	quit    bool
	pauseUI *ebitenui.UI
	watcher *prefabs.Watcher

	frames    int
	lastFrame int
}

func NewGame(scenePath string, debug bool) (*Game, error) {
	g := &Game{
		scenePath: scenePath,
		debug:     debug,
		renderer:  system.NewRenderSystem(),
		motion:    system.NewTranslationSystem(),
	}
	if err := g.load(); err != nil {
		return nil, err
	}
	g.pauseUI = NewPauseUI(g)
	return g, nil
}

// load builds a fresh world from the scene. The current world is kept when
// the scene fails to build.
func (g *Game) load() error {
	w := ecs.NewWorld()
	scene, _, err := entity.BuildScene(w, g.scenePath)
	if err != nil {
		return fmt.Errorf("load scene %q: %w", g.scenePath, err)
	}

	g.world = w
	g.renderer.Reset()
	g.window = windowWithDefaults(scene.Window)
	g.scheduler = ecs.NewScheduler(
		system.NewAnimationSystem(),
		g.motion,
	)
	return nil
}

func windowWithDefaults(win prefabs.WindowSpec) prefabs.WindowSpec {
	if win.Title == "" {
		win.Title = "trailblazer"
	}
	if win.Width <= 0 {
		win.Width = common.BaseWidth
	}
	if win.Height <= 0 {
		win.Height = common.BaseHeight
	}
	return win
}

// Window returns the window settings of the loaded scene.
func (g *Game) Window() prefabs.WindowSpec {
	return g.window
}

// Watch enables hot reload of prefabs and scripts from disk.
func (g *Game) Watch() error {
	if g.watcher != nil {
		return nil
	}
	watcher, err := prefabs.NewWatcher(prefabs.Dir, prefabs.Dir+"/scripts")
	if err != nil {
		return err
	}
	g.watcher = watcher
	return nil
}

func (g *Game) Close() {
	if g.watcher != nil {
		if err := g.watcher.Close(); err != nil {
			log.Printf("watch prefabs: close: %v", err)
		}
		g.watcher = nil
	}
}

func (g *Game) pollReload() {
	if g.watcher == nil {
		return
	}
	changed := ""
drain:
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				break drain
			}
			changed = name
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				break drain
			}
			log.Printf("watch prefabs: %v", err)
		default:
			break drain
		}
	}
	if changed == "" {
		return
	}

	render.Forget()
	g.motion.Invalidate()
	if err := g.load(); err != nil {
		log.Printf("reload after %s: %v", changed, err)
		return
	}
	log.Printf("reloaded scene %q after %s changed", g.scenePath, changed)
}

func (g *Game) Update() error {
	g.frames++
	g.pollReload()

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if g.paused {
		g.pauseUI.Update()
	}
	if g.quit {
		return ebiten.Termination
	}
	if g.paused {
		return nil
	}

	g.world.Tick(tickDelta(ebiten.TPS()))
	g.scheduler.Update(g.world)

	for _, evt := range g.world.Events().Drain() {
		if frame, ok := evt.Data.(ecs.AnimationFrameEvent); ok {
			g.lastFrame = frame.Frame
		}
	}
	return nil
}

// tickDelta is the fixed duration of one update at tps ticks per second.
func tickDelta(tps int) time.Duration {
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Draw(g.world, screen)

	if g.paused {
		g.pauseUI.Draw(screen)
	}

	if g.debug {
		clock := g.world.Clock()
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f    TPS: %.2f\nTime: %.1fs    Sprite frame: %d",
			g.frames, ebiten.ActualFPS(), ebiten.ActualTPS(), clock.Seconds(), g.lastFrame))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.window.Width, g.window.Height
}
