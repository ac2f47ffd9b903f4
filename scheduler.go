package ggchart

// Reason names the input whose change invalidated the current frame.
type Reason string

// Invalidation reasons.
const (
	ReasonData      Reason = "data"
	ReasonType      Reason = "type"
	ReasonPalette   Reason = "palette"
	ReasonVisible   Reason = "visibility"
	ReasonGrid      Reason = "grid"
	ReasonAnimation Reason = "animation"
	ReasonResize    Reason = "resize"
	ReasonMount     Reason = "mount"
	ReasonRedraw    Reason = "redraw"
)

// Scheduler is the dirty flag deciding when a full redraw is due.
// Every mutator that feeds the draw pass calls Invalidate; the single
// render entry point consumes the flag. Redraws are never partial.
type Scheduler struct {
	dirty   bool
	reasons []Reason
	frames  uint64
}

// Invalidate marks the frame dirty.
func (s *Scheduler) Invalidate(r Reason) {
	s.dirty = true
	s.reasons = append(s.reasons, r)
}

// Dirty reports whether a redraw is pending.
func (s *Scheduler) Dirty() bool { return s.dirty }

// Pending returns the reasons accumulated since the last consumed frame.
func (s *Scheduler) Pending() []Reason {
	return append([]Reason(nil), s.reasons...)
}

// Consume clears the dirty flag and reports whether it was set.
func (s *Scheduler) Consume() bool {
	if !s.dirty {
		return false
	}
	s.dirty = false
	s.reasons = s.reasons[:0]
	s.frames++
	return true
}

// Frames returns how many frames have been consumed.
func (s *Scheduler) Frames() uint64 { return s.frames }
