package render

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/trailblazer/assets"
)

// LoadImage loads an image from assets and caches it by key.
func LoadImage(key string) (*ebiten.Image, error) {
	if key == "" {
		return nil, fmt.Errorf("empty image key")
	}
	if img := GetImage(key); img != nil {
		return img, nil
	}
	img, err := assets.LoadImage(key)
	if err != nil {
		return nil, fmt.Errorf("load image %q: %w", key, err)
	}
	RegisterImage(key, img)
	return img, nil
}

// LoadFont loads a font source and caches it by key. A font that cannot be
// loaded is replaced by the default face so text always renders.
func LoadFont(key string) (*text.GoTextFaceSource, error) {
	if key == "" {
		key = assets.DefaultFont
	}
	if src := GetFont(key); src != nil {
		return src, nil
	}
	src, err := assets.LoadFontSource(key)
	if err != nil {
		if key == assets.DefaultFont {
			return nil, err
		}
		log.Printf("render: font %q unavailable, using %s: %v", key, assets.DefaultFont, err)
		src, err = LoadFont(assets.DefaultFont)
		if err != nil {
			return nil, err
		}
	}
	RegisterFont(key, src)
	return src, nil
}
