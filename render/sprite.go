package render

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"

	"github.com/OpticalFlyer/anchor/ui"
)

var _ ui.SpriteSource = (*AnimatedSprite)(nil)

// PlayMode controls what happens after the last frame.
type PlayMode int

const (
	Loop PlayMode = iota
	PingPong
	Once
)

var ErrBadFrameSize = errors.New("render: frame size does not fit the sheet")

// AnimatedSprite plays the frames of a sprite sheet laid out in a grid, left
// to right then top to bottom.
type AnimatedSprite struct {
	sheet          ui.Texture
	frameW, frameH int
	cols, frames   int

	FPS  float32
	Mode PlayMode

	frame   int
	dir     int
	elapsed float32
	done    bool
}

// NewAnimatedSprite slices sheet into frames of frameW by frameH pixels.
func NewAnimatedSprite(sheet ui.Texture, frameW, frameH int, fps float32) (*AnimatedSprite, error) {
	w, h := sheet.Dimensions()
	if frameW <= 0 || frameH <= 0 || frameW > w || frameH > h {
		return nil, fmt.Errorf("frame %dx%d, sheet %dx%d: %w", frameW, frameH, w, h, ErrBadFrameSize)
	}
	cols := w / frameW
	return &AnimatedSprite{
		sheet:  sheet,
		frameW: frameW,
		frameH: frameH,
		cols:   cols,
		frames: cols * (h / frameH),
		FPS:    fps,
		dir:    1,
	}, nil
}

// Update advances the animation by deltaSeconds.
func (s *AnimatedSprite) Update(deltaSeconds float32) {
	if s.FPS <= 0 || s.frames <= 1 || s.done {
		return
	}
	s.elapsed += deltaSeconds
	step := 1 / s.FPS
	for s.elapsed >= step && !s.done {
		s.elapsed -= step
		s.advance()
	}
}

func (s *AnimatedSprite) advance() {
	switch s.Mode {
	case Once:
		if s.frame < s.frames-1 {
			s.frame++
		}
		s.done = s.frame == s.frames-1
	case PingPong:
		if next := s.frame + s.dir; next < 0 || next >= s.frames {
			s.dir = -s.dir
		}
		s.frame += s.dir
	default:
		s.frame = (s.frame + 1) % s.frames
	}
}

func (s *AnimatedSprite) FrameDimensions() (int, int) { return s.frameW, s.frameH }

// CurrentTexCoords returns the normalized sheet region of the current frame.
func (s *AnimatedSprite) CurrentTexCoords() math32.Box2 {
	w, h := s.sheet.Dimensions()
	col, row := s.frame%s.cols, s.frame/s.cols
	fw, fh := float32(s.frameW)/float32(w), float32(s.frameH)/float32(h)
	return math32.B2(float32(col)*fw, float32(row)*fh, float32(col+1)*fw, float32(row+1)*fh)
}

func (s *AnimatedSprite) Texture() ui.Texture { return s.sheet }

func (s *AnimatedSprite) Frame() int  { return s.frame }
func (s *AnimatedSprite) Frames() int { return s.frames }

// Done reports whether a Once animation reached its last frame.
func (s *AnimatedSprite) Done() bool { return s.done }

// Reset rewinds to the first frame.
func (s *AnimatedSprite) Reset() {
	s.frame, s.dir, s.elapsed, s.done = 0, 1, 0, false
}
