package ggchart

// StaticHost is an in-memory Host with a fixed, settable size. It is the
// host for headless rendering and tests.
//
// StaticHost is NOT safe for concurrent use.
type StaticHost struct {
	width, height float64
	ratio         float64

	observers map[int]func()
	nextID    int
}

var (
	_ Host           = (*StaticHost)(nil)
	_ ResizeNotifier = (*StaticHost)(nil)
)

// NewStaticHost creates a host of the given logical size and device pixel ratio.
func NewStaticHost(width, height, ratio float64) *StaticHost {
	if ratio <= 0 {
		ratio = 1
	}
	return &StaticHost{width: width, height: height, ratio: ratio}
}

// Bounds implements Host.
func (h *StaticHost) Bounds() (width, height float64) { return h.width, h.height }

// DevicePixelRatio implements Host.
func (h *StaticHost) DevicePixelRatio() float64 { return h.ratio }

// Resize changes the logical size and notifies observers when it changed.
func (h *StaticHost) Resize(width, height float64) {
	if width == h.width && height == h.height {
		return
	}
	h.width, h.height = width, height
	h.notify()
}

// SetDevicePixelRatio changes the ratio and notifies observers when it changed.
func (h *StaticHost) SetDevicePixelRatio(ratio float64) {
	if ratio <= 0 || ratio == h.ratio {
		return
	}
	h.ratio = ratio
	h.notify()
}

// OnResize implements ResizeNotifier.
func (h *StaticHost) OnResize(fn func()) (cancel func()) {
	if h.observers == nil {
		h.observers = make(map[int]func())
	}
	id := h.nextID
	h.nextID++
	h.observers[id] = fn
	return func() { delete(h.observers, id) }
}

// Observers returns the number of live resize subscriptions.
func (h *StaticHost) Observers() int { return len(h.observers) }

func (h *StaticHost) notify() {
	for _, fn := range h.observers {
		fn()
	}
}
