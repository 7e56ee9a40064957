//go:build !tinygo && cgo

package simwindow

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"uf2status/hal"
	"uf2status/internal/buildinfo"
)

// Run opens a window on the host HAL h and blocks until it closes.
func Run(h hal.HAL, opts Options) error {
	w, ht := 160, 128
	if d := h.Display(); d != nil {
		w, ht = d.Width(), d.Height()
	}
	g := &game{h: h, opts: opts, w: w, h2: ht}

	title := opts.Title
	if title == "" {
		title = "uf2status"
	}
	s := opts.scale()
	ebiten.SetWindowTitle(title + " (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(w*s, (ht+swatchHeight)*s)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	h    hal.HAL
	opts Options
	w    int
	h2   int

	panel  *ebiten.Image
	swatch *ebiten.Image
}

func (g *game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if st, ok := stateForKey(r); ok && g.opts.OnState != nil {
			g.opts.OnState(st)
		}
	}
	if g.opts.Step != nil {
		return g.opts.Step()
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.panel == nil {
		g.panel = ebiten.NewImage(g.w, g.h2)
		g.swatch = ebiten.NewImage(g.w, swatchHeight)
	}

	if img, ok := hal.Snapshot(g.h); ok && img.Bounds().Eq(image.Rect(0, 0, g.w, g.h2)) {
		g.panel.WritePixels(img.Pix)
	}
	screen.DrawImage(g.panel, nil)

	r, gg, b, on := hal.IndicatorColor(g.h)
	if on {
		g.swatch.Fill(color.RGBA{R: r, G: gg, B: b, A: 0xFF})
	} else {
		g.swatch.Fill(color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(g.h2))
	screen.DrawImage(g.swatch, op)
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.w, g.h2 + swatchHeight
}
