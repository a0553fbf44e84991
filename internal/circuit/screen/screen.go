// Package screen renders a circuit.Field in a desktop window with ebiten.
package screen

import (
	"context"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/sirupsen/logrus"

	"github.com/naka-gawa/linkbio/internal/circuit"
)

// Config sizes and titles the window.
type Config struct {
	Title  string
	Width  int
	Height int
}

// Run opens the window and animates field until the window closes or ctx is
// cancelled. It blocks.
func Run(ctx context.Context, cfg Config, field *circuit.Field, logger logrus.FieldLogger) error {
	g := NewGame(ctx, field)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	logger.WithFields(logrus.Fields{"width": cfg.Width, "height": cfg.Height}).Debug("Starting background window")

	err := ebiten.RunGame(g)
	logger.WithField("frames", field.Frames()).Debug("Background window closed")
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// Game drives one Field per tick onto a persistent trail surface.
type Game struct {
	ctx    context.Context
	field  *circuit.Field
	trail  *ebiten.Image
	width  int
	height int
}

// NewGame wraps field. The trail surface is created on the first Layout.
func NewGame(ctx context.Context, field *circuit.Field) *Game {
	return &Game{ctx: ctx, field: field}
}

func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if g.trail == nil {
		return nil
	}
	g.field.Frame(imageCanvas{img: g.trail})
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.trail == nil {
		return
	}
	screen.DrawImage(g.trail, nil)
}

// Layout tracks the window size. A change resizes the field and replaces the
// trail surface, which clears it.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth <= 0 || outsideHeight <= 0 {
		return max(outsideWidth, 1), max(outsideHeight, 1)
	}
	if outsideWidth != g.width || outsideHeight != g.height || g.trail == nil {
		g.width, g.height = outsideWidth, outsideHeight
		g.field.Resize(float64(outsideWidth), float64(outsideHeight))
		if g.trail != nil {
			g.trail.Deallocate()
		}
		g.trail = ebiten.NewImage(outsideWidth, outsideHeight)
		g.trail.Fill(color.Black)
	}
	return outsideWidth, outsideHeight
}

// imageCanvas adapts an ebiten image to circuit.Canvas.
type imageCanvas struct {
	img *ebiten.Image
}

func (c imageCanvas) Fade(alpha float64) {
	b := c.img.Bounds()
	vector.DrawFilledRect(c.img, 0, 0, float32(b.Dx()), float32(b.Dy()), rgba(circuit.RGB{}, alpha), false)
}

func (c imageCanvas) StrokeLine(x0, y0, x1, y1 float64, clr circuit.RGB, alpha, glowAlpha, blur float64) {
	for _, p := range glowPasses(glowAlpha, blur) {
		vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), p.width, rgba(clr, p.alpha), true)
	}
	vector.StrokeLine(c.img, float32(x0), float32(y0), float32(x1), float32(y1), 1, rgba(clr, alpha), true)
}

func (c imageCanvas) FillNode(x, y, size float64, clr circuit.RGB, alpha float64) {
	half := size / 2
	vector.DrawFilledRect(c.img, float32(x-half), float32(y-half), float32(size), float32(size), rgba(clr, alpha), false)
}

type pass struct {
	width float32
	alpha float64
}

// glowPasses approximates a shadow blur with widening translucent strokes,
// outermost first.
func glowPasses(glowAlpha, blur float64) []pass {
	if glowAlpha <= 0 || blur <= 0 {
		return nil
	}
	return []pass{
		{width: float32(1 + blur), alpha: glowAlpha * 0.08},
		{width: float32(1 + blur/2), alpha: glowAlpha * 0.16},
		{width: float32(1 + blur/4), alpha: glowAlpha * 0.32},
	}
}

func rgba(c circuit.RGB, alpha float64) color.NRGBA {
	switch {
	case alpha < 0:
		alpha = 0
	case alpha > 1:
		alpha = 1
	}
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: uint8(alpha*255 + 0.5)}
}
