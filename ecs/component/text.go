package component

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

type Anchor int

const (
	AnchorCenter Anchor = iota
	AnchorTopCenter
	AnchorTopLeft
)

// Text is a single line of text drawn at the entity's transform.
type Text struct {
	Value  string
	Face   text.Face
	Color  color.Color
	Anchor Anchor
	// FadeIn eases alpha from 0 to 1 over this long. Zero draws fully opaque.
	FadeIn time.Duration
	Age    time.Duration
}

var TextComponent = NewComponent[Text]()
