package ggchart

import (
	"image"
	"io"
	"log/slog"
	"math"

	"github.com/gogpu/gg"
)

// Host is the container a chart is laid out in. Bounds reports the
// logical (CSS pixel) size; a zero size means the host is not laid out yet.
type Host interface {
	Bounds() (width, height float64)
	DevicePixelRatio() float64
}

// ResizeNotifier is implemented by hosts that report layout changes.
// OnResize registers fn and returns a function that unregisters it.
type ResizeNotifier interface {
	OnResize(fn func()) (cancel func())
}

// Surface owns the raster drawing target of one chart. Nothing else
// writes to it. Each frame begins with a resize to the host's
// device-pixel size and a full clear, so no geometry survives between frames.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	host     Host
	dc       *gg.Context
	onResize func()
	cancel   func()

	width  float64
	height float64
	ratio  float64
}

// NewSurface creates a surface for host. host may be nil; frames are then
// skipped until a host is set.
func NewSurface(host Host) *Surface {
	return &Surface{host: host, ratio: 1}
}

// SetHost replaces the host. An attached resize callback moves to the new
// host and runs once.
func (s *Surface) SetHost(host Host) {
	s.release()
	s.host = host
	if s.onResize != nil {
		s.subscribe()
		s.onResize()
	}
}

// Attach subscribes onResize to host layout changes when the host supports
// it. Attaching twice keeps a single subscription.
func (s *Surface) Attach(onResize func()) {
	if s.onResize != nil || onResize == nil {
		return
	}
	s.onResize = onResize
	s.subscribe()
}

// Detach releases the resize subscription, if any.
func (s *Surface) Detach() {
	s.release()
	s.onResize = nil
}

func (s *Surface) subscribe() {
	if rn, ok := s.host.(ResizeNotifier); ok {
		s.cancel = rn.OnResize(s.onResize)
	}
}

func (s *Surface) release() {
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// Attached reports whether a resize subscription is held.
func (s *Surface) Attached() bool { return s.cancel != nil }

// Begin prepares a frame: it sizes the backing store to the host's logical
// size times its device pixel ratio, scales drawing so callers work in
// logical pixels, and clears everything. It returns false, without error,
// when there is nothing to draw on yet.
func (s *Surface) Begin() (*gg.Context, bool) {
	if s.host == nil {
		return nil, false
	}
	w, h := s.host.Bounds()
	ratio := s.host.DevicePixelRatio()
	if ratio <= 0 {
		ratio = 1
	}
	pw, ph := int(math.Round(w*ratio)), int(math.Round(h*ratio))
	if pw <= 0 || ph <= 0 {
		return nil, false
	}

	if s.dc == nil {
		s.dc = gg.NewContext(pw, ph)
	} else if err := s.dc.Resize(pw, ph); err != nil {
		Logger().Warn("ggchart: surface resize failed", slog.Int("width", pw), slog.Int("height", ph), slog.Any("err", err))
		return nil, false
	}

	s.width, s.height, s.ratio = w, h, ratio
	s.dc.Identity()
	s.dc.Scale(ratio, ratio)
	s.dc.ClearPath()
	s.dc.Clear()
	return s.dc, true
}

// Size returns the logical size of the last frame.
func (s *Surface) Size() (width, height float64) { return s.width, s.height }

// Ratio returns the device pixel ratio of the last frame.
func (s *Surface) Ratio() float64 { return s.ratio }

// Context returns the backing drawing context, or nil before the first frame.
func (s *Surface) Context() *gg.Context { return s.dc }

// Image returns the rendered pixels at device resolution, or nil before the first frame.
func (s *Surface) Image() image.Image {
	if s.dc == nil {
		return nil
	}
	return s.dc.Image()
}

// EncodePNG writes the last frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	if s.dc == nil {
		return ErrNoFrame
	}
	return s.dc.EncodePNG(w)
}

// Close releases the subscription and the drawing context.
// Close is idempotent.
func (s *Surface) Close() error {
	s.Detach()
	if s.dc == nil {
		return nil
	}
	err := s.dc.Close()
	s.dc = nil
	return err
}
