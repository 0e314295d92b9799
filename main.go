package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "enable debug mode")
	baseMonitor := flag.Bool("m", false, "use base monitor instead of primary (for multi-monitor setups)")
	scene := flag.String("scene", "scene.yaml", "scene prefab in prefabs/")
	watch := flag.Bool("watch", false, "reload the scene when prefabs/ changes")
	flag.Parse()

	if *baseMonitor {
		ebiten.SetMonitor(ebiten.AppendMonitors(nil)[0])
	}

	game, err := NewGame(*scene, *debug)
	if err != nil {
		log.Fatal(err)
	}
	if *watch {
		if err := game.Watch(); err != nil {
			log.Printf("watch prefabs: %v", err)
		}
	}
	defer game.Close()

	win := game.Window()
	if win.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetWindowSize(win.Width, win.Height)
	ebiten.SetWindowTitle(win.Title)

	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}
}
