// Package circuit models the decorative background: a fixed set of glowing
// line segments drifting across a surface like signals on circuit traces.
package circuit

import (
	"fmt"

	"github.com/montanaflynn/stats"
)

const (
	// LineCount is the number of lines in every field.
	LineCount = 40
	// FadeAlpha is the opacity of the black overlay painted each frame.
	FadeAlpha = 0.05
	// GlowBlur is the blur radius of a line's glow at full intensity.
	GlowBlur = 8
	// NodeChance is the per-line, per-frame probability of drawing a node.
	NodeChance = 0.01
	// NodeSize is the side of a node square.
	NodeSize = 4
)

// Color is the trace hue, rgb(0, 180, 216).
var Color = RGB{R: 0, G: 180, B: 216}

// RGB is an opaque color; opacity is passed separately.
type RGB struct {
	R, G, B uint8
}

// Rand is the source of randomness. *math/rand/v2.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Canvas is the drawing surface a Field paints on.
type Canvas interface {
	// Fade paints black at the given opacity over the whole surface.
	Fade(alpha float64)
	// StrokeLine draws a 1px segment with a glow of the given blur radius.
	StrokeLine(x0, y0, x1, y1 float64, c RGB, alpha float64, glowAlpha, blur float64)
	// FillNode fills a square centered at (x, y).
	FillNode(x, y, size float64, c RGB, alpha float64)
}

// Line is one animated segment.
type Line struct {
	X, Y       float64
	Length     float64
	Horizontal bool
	Speed      float64
	Opacity    float64
	Glow       float64
}

// Pos returns the coordinate along the axis of motion.
func (l Line) Pos() float64 {
	if l.Horizontal {
		return l.X
	}
	return l.Y
}

// Field is the animation state of one background instance.
type Field struct {
	width, height float64
	lines         []Line
	rng           Rand
	frames        uint64
}

// NewField sizes a field to width x height and seeds LineCount random lines.
func NewField(width, height float64, rng Rand) *Field {
	f := &Field{width: width, height: height, rng: rng}
	f.lines = make([]Line, LineCount)
	for i := range f.lines {
		f.lines[i] = Line{
			X:          rng.Float64() * width,
			Y:          rng.Float64() * height,
			Length:     rng.Float64()*150 + 50,
			Horizontal: rng.Float64() > 0.5,
			Speed:      rng.Float64()*0.3 + 0.1,
			Opacity:    rng.Float64()*0.5 + 0.1,
			Glow:       rng.Float64()*0.5 + 0.5,
		}
	}
	return f
}

// Resize changes the surface bounds. Lines keep their state; any line now
// outside the bounds wraps on its next step.
func (f *Field) Resize(width, height float64) {
	f.width, f.height = width, height
}

// Size returns the current surface bounds.
func (f *Field) Size() (float64, float64) {
	return f.width, f.height
}

// Lines returns a copy of the current line state.
func (f *Field) Lines() []Line {
	out := make([]Line, len(f.lines))
	copy(out, f.lines)
	return out
}

// Frames is the number of completed steps.
func (f *Field) Frames() uint64 {
	return f.frames
}

// Frame paints one frame onto c and advances every line. A nil canvas only
// advances the state.
func (f *Field) Frame(c Canvas) {
	if c != nil {
		c.Fade(FadeAlpha)
	}
	for i := range f.lines {
		l := &f.lines[i]
		if c != nil {
			x1, y1 := l.X, l.Y
			if l.Horizontal {
				x1 += l.Length
			} else {
				y1 += l.Length
			}
			c.StrokeLine(l.X, l.Y, x1, y1, Color, l.Opacity, l.Glow, GlowBlur)
		}

		f.advance(l)

		// The node roll happens even without a canvas so a seeded field
		// evolves identically whether or not it is drawn.
		if f.rng.Float64() > 1-NodeChance && c != nil {
			c.FillNode(l.X, l.Y, NodeSize, Color, min(l.Opacity*2, 1))
		}
	}
	f.frames++
}

func (f *Field) advance(l *Line) {
	if l.Horizontal {
		l.X += l.Speed
		if l.X >= f.width {
			l.X = -l.Length
			l.Y = f.rng.Float64() * f.height
		}
		return
	}
	l.Y += l.Speed
	if l.Y >= f.height {
		l.Y = -l.Length
		l.X = f.rng.Float64() * f.width
	}
}

// Summary describes where the lines currently sit along their axis of motion.
type Summary struct {
	Frames     uint64  `json:"frames"`
	Horizontal int     `json:"horizontal"`
	Vertical   int     `json:"vertical"`
	MeanPos    float64 `json:"mean_pos"`
	MinPos     float64 `json:"min_pos"`
	MaxPos     float64 `json:"max_pos"`
	MeanSpeed  float64 `json:"mean_speed"`
	MeanLength float64 `json:"mean_length"`
}

// Stats summarises the field.
func (f *Field) Stats() (Summary, error) {
	s := Summary{Frames: f.frames}
	pos := make(stats.Float64Data, 0, len(f.lines))
	speed := make(stats.Float64Data, 0, len(f.lines))
	length := make(stats.Float64Data, 0, len(f.lines))
	for _, l := range f.lines {
		if l.Horizontal {
			s.Horizontal++
		} else {
			s.Vertical++
		}
		pos = append(pos, l.Pos())
		speed = append(speed, l.Speed)
		length = append(length, l.Length)
	}

	var err error
	if s.MeanPos, err = pos.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean position: %w", err)
	}
	if s.MinPos, err = pos.Min(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute min position: %w", err)
	}
	if s.MaxPos, err = pos.Max(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute max position: %w", err)
	}
	if s.MeanSpeed, err = speed.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean speed: %w", err)
	}
	if s.MeanLength, err = length.Mean(); err != nil {
		return Summary{}, fmt.Errorf("failed to compute mean length: %w", err)
	}
	return s, nil
}
