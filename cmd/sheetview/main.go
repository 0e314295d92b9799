package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/trailblazer/ecs/component"
	"github.com/milk9111/trailblazer/ecs/render"
)

const viewSize = 512

// previewer plays a frame range of a sprite sheet so cell sizes and ranges
// can be checked before they go into a prefab.
type previewer struct {
	sheet *component.SpriteSheet
	anim  *component.Animation
	scale float64
}

func (p *previewer) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		p.anim.Playing = !p.anim.Playing
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyRight) {
		p.anim.Elapsed = p.anim.Interval
		p.anim.Advance(0)
	}
	if p.anim.Playing {
		p.anim.Advance(time.Second / time.Duration(ebiten.TPS()))
	}
	return nil
}

func (p *previewer) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{0x20, 0x20, 0x20, 0xff})

	cell, ok := p.sheet.Cell(p.anim.Current)
	if ok {
		frame := p.sheet.Image.SubImage(cell).(*ebiten.Image)
		w := float64(cell.Dx()) * p.scale
		h := float64(cell.Dy()) * p.scale
		op := &ebiten.DrawImageOptions{}
		op.Filter = ebiten.FilterNearest
		op.GeoM.Scale(p.scale, p.scale)
		op.GeoM.Translate((viewSize-w)/2, (viewSize-h)/2)
		screen.DrawImage(frame, op)
	}

	state := "playing"
	if !p.anim.Playing {
		state = "paused"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("frame %d [%d..%d] %s\nspace: play/pause  right: step",
		p.anim.Current, p.anim.Range.First, p.anim.Range.Last, state))
}

func (p *previewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return viewSize, viewSize
}

// buildPreview lays a width x height image out as a grid of cells and makes an
// animation over first..last. A negative last means the final cell.
func buildPreview(width, height, cellW, cellH, first, last int, interval time.Duration) (*component.SpriteSheet, *component.Animation, error) {
	if cellW <= 0 || cellH <= 0 {
		return nil, nil, fmt.Errorf("%w: cell size %dx%d must be positive", component.ErrInvalidConfiguration, cellW, cellH)
	}
	sheet := &component.SpriteSheet{
		CellW:   cellW,
		CellH:   cellH,
		Columns: width / cellW,
		Rows:    height / cellH,
	}
	if sheet.Cells() == 0 {
		return nil, nil, fmt.Errorf("%w: no %dx%d cells in %dx%d image", component.ErrInvalidConfiguration, cellW, cellH, width, height)
	}
	if last < 0 {
		last = sheet.Cells() - 1
	}
	if first < 0 || last >= sheet.Cells() {
		return nil, nil, fmt.Errorf("%w: frames %d..%d outside sheet of %d cells", component.ErrInvalidConfiguration, first, last, sheet.Cells())
	}
	anim, err := component.NewAnimation(first, last, interval)
	if err != nil {
		return nil, nil, err
	}
	return sheet, anim, nil
}

func main() {
	sheetPath := flag.String("sheet", "sprites.png", "sprite sheet in assets/")
	cellW := flag.Int("cell-w", 32, "cell width in pixels")
	cellH := flag.Int("cell-h", 32, "cell height in pixels")
	first := flag.Int("first", 0, "first frame index")
	last := flag.Int("last", -1, "last frame index (-1 for the final cell)")
	interval := flag.Duration("interval", 300*time.Millisecond, "time per frame")
	scale := flag.Float64("scale", 4, "draw scale")
	flag.Parse()

	img, err := render.LoadImage(*sheetPath)
	if err != nil {
		log.Fatal(err)
	}
	sheet, anim, err := buildPreview(img.Bounds().Dx(), img.Bounds().Dy(), *cellW, *cellH, *first, *last, *interval)
	if err != nil {
		log.Fatalf("sheet %s: %v", *sheetPath, err)
	}
	sheet.Image = img

	ebiten.SetWindowSize(viewSize, viewSize)
	ebiten.SetWindowTitle("Sprite Sheet Preview")
	if err := ebiten.RunGame(&previewer{sheet: sheet, anim: anim, scale: *scale}); err != nil {
		log.Fatal(err)
	}
}
