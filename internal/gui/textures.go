package gui

import (
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// loadNextTexture resolves one pending record per frame. A missing or
// unreadable image gets a generated placeholder instead of failing the
// scene; Loading stays true until the queue drains.
func (a *App) loadNextTexture() {
	if len(a.pending) == 0 {
		return
	}
	rec := a.pending[0]
	a.pending = a.pending[1:]

	if rec.ImageRef != "" {
		tex := rl.LoadTexture(filepath.Join(a.AssetDir, rec.ImageRef))
		if tex.ID != 0 {
			rl.SetTextureFilter(tex, rl.FilterBilinear)
			a.Textures[rec.ID] = tex
			return
		}
	}
	a.Textures[rec.ID] = placeholderTexture()
}

// Loading reports whether any textures are still resolving.
func (a *App) Loading() bool {
	return len(a.pending) > 0
}

func placeholderTexture() rl.Texture2D {
	img := rl.GenImageChecked(128, 160, 16, 16,
		rl.NewColor(40, 40, 44, 255), rl.NewColor(60, 60, 66, 255))
	tex := rl.LoadTextureFromImage(img)
	rl.UnloadImage(img)
	return tex
}
