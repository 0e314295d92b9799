package component

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SpriteSheet addresses an image as a grid of equally sized cells. Cells are
// numbered row-major starting at zero in the top left.
type SpriteSheet struct {
	Image    *ebiten.Image
	CellW    int
	CellH    int
	Columns  int
	Rows     int
	PaddingX int
	PaddingY int
	OffsetX  int
	OffsetY  int
}

var SpriteSheetComponent = NewComponent[SpriteSheet]()

// Cells returns the number of addressable cells.
func (s *SpriteSheet) Cells() int {
	if s == nil || s.Columns <= 0 || s.Rows <= 0 {
		return 0
	}
	return s.Columns * s.Rows
}

// Cell returns the source rectangle for index.
func (s *SpriteSheet) Cell(index int) (image.Rectangle, bool) {
	if s == nil || s.CellW <= 0 || s.CellH <= 0 || index < 0 || index >= s.Cells() {
		return image.Rectangle{}, false
	}
	col := index % s.Columns
	row := index / s.Columns
	x := s.OffsetX + col*(s.CellW+s.PaddingX)
	y := s.OffsetY + row*(s.CellH+s.PaddingY)
	return image.Rect(x, y, x+s.CellW, y+s.CellH), true
}
