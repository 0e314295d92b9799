package render

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

var (
	mu     sync.RWMutex
	images = map[string]*ebiten.Image{}
	fonts  = map[string]*text.GoTextFaceSource{}
)

// RegisterImage stores an image by key.
func RegisterImage(key string, img *ebiten.Image) {
	if key == "" || img == nil {
		return
	}
	mu.Lock()
	images[key] = img
	mu.Unlock()
}

// GetImage returns a cached image by key.
func GetImage(key string) *ebiten.Image {
	if key == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return images[key]
}

// RegisterFont stores a font source by key.
func RegisterFont(key string, src *text.GoTextFaceSource) {
	if key == "" || src == nil {
		return
	}
	mu.Lock()
	fonts[key] = src
	mu.Unlock()
}

// GetFont returns a cached font source by key.
func GetFont(key string) *text.GoTextFaceSource {
	if key == "" {
		return nil
	}
	mu.RLock()
	defer mu.RUnlock()
	return fonts[key]
}

// Forget drops every cached asset so the next load re-reads from disk.
func Forget() {
	mu.Lock()
	images = map[string]*ebiten.Image{}
	fonts = map[string]*text.GoTextFaceSource{}
	mu.Unlock()
}
