package gui

import (
	"fmt"
	"strings"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
)

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}

func (a *App) DrawOverlay() {
	a.drawText("ornawheel", 30, 30, 24, ColSelect)
	a.drawText(":: koleksi ornamen", 160, 34, 16, ColText)

	if a.Loading() {
		a.drawSpinner()
		return
	}

	if rec, ok := a.Show.SelectedRecord(); ok {
		a.drawDetailPanel(rec)
	} else {
		a.drawText("drag to spin, click an ornament for details", 30, a.height-40, 14, ColTextDim)
	}

	status := "AUTO"
	col := ColAccent
	if !a.Show.Controller().AutoPlaying() {
		status = "MANUAL"
		col = ColTextDim
	}
	a.drawText(status, a.width-110, 30, 16, col)
	a.drawText(fmt.Sprintf("%d FPS", int32(rl.GetFPS())), 30, a.height-70, 14, ColTextDim)
}

// drawSpinner is the coarse loading gate: a rotating ring until the texture
// queue drains.
func (a *App) drawSpinner() {
	center := rl.NewVector2(float32(a.width)/2, float32(a.height)/2)
	rl.DrawRing(center, 22, 28, a.spin, a.spin+270, 32, ColAccent)
	a.drawText("memuat...", a.width/2-34, a.height/2+44, 14, ColTextDim)
}

// drawDetailPanel renders the selected ornament: image, description and the
// fixed spec table. Missing spec keys render as blanks, never as errors.
func (a *App) drawDetailPanel(rec catalog.Record) {
	panelW := int32(360)
	panelX := int32(30)
	panelY := int32(90)
	panelH := int32(a.height) - 180

	rl.DrawRectangle(panelX, panelY, panelW, panelH, rl.NewColor(16, 16, 18, 235))
	rl.DrawRectangleLines(panelX, panelY, panelW, panelH, ColTextDim)

	x := int(panelX) + 20
	y := int(panelY) + 16
	a.drawText(rec.DisplayName, x, y, 22, ColSelect)
	y += 36

	if tex, ok := a.Textures[rec.ID]; ok {
		scale := float32(panelW-40) / float32(tex.Width)
		if scale > 1 {
			scale = 1
		}
		rl.DrawTextureEx(tex, rl.NewVector2(float32(x), float32(y)), 0, scale, rl.White)
		y += int(float32(tex.Height)*scale) + 14
	}

	for _, line := range wrapText(rec.Description, 42) {
		a.drawText(line, x, y, 14, ColText)
		y += 20
	}
	y += 10

	for _, key := range catalog.SpecOrder() {
		a.drawText(catalog.Label(key), x, y, 14, ColTextDim)
		a.drawText(rec.Spec(key), x+110, y, 14, ColAccent)
		y += 22
	}

	a.drawText("[ESC] tutup", x, int(panelY+panelH)-30, 13, ColTextDim)
}

// DrawScrollSection renders the 2D puzzle-slot choreography strip driven by
// the mouse wheel.
func (a *App) DrawScrollSection() {
	progress := a.ScrollProg.Value()
	if progress <= 0.01 {
		return
	}

	poses := a.ScrollSeq.At(progress)
	for i, pose := range poses {
		if pose.Opacity <= 0.01 {
			continue
		}
		w := float32(64 * pose.Scale)
		h := float32(84 * pose.Scale)
		x := float32(pose.X*float64(a.width)) - w/2
		y := float32(pose.Y*float64(a.height)) - h/2

		col := rl.Fade(ColAccent, float32(pose.Opacity))
		rl.DrawRectangleRounded(rl.NewRectangle(x, y, w, h), 0.15, 6, col)
		if rec, ok := a.Show.RecordByIndex(i); ok {
			if tex, loaded := a.Textures[rec.ID]; loaded {
				src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
				dst := rl.NewRectangle(x+3, y+3, w-6, h-6)
				rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0,
					rl.Fade(rl.White, float32(pose.Opacity)))
			}
		}
	}
}

// wrapText breaks a description at word boundaries.
func wrapText(s string, width int) []string {
	words := strings.Fields(s)
	var lines []string
	var cur string
	for _, w := range words {
		if cur == "" {
			cur = w
			continue
		}
		if len(cur)+1+len(w) > width {
			lines = append(lines, cur)
			cur = w
		} else {
			cur += " " + w
		}
	}
	if cur != "" {
		lines = append(lines, cur)
	}
	return lines
}
