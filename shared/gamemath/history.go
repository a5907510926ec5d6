package gamemath

import "github.com/automoto/cyberia-client/shared/netconfig"

// DefaultHistoryCapacity is the number of classified directions kept for
// smoothing when no capacity is configured.
const DefaultHistoryCapacity = 5

// DirectionHistory is a fixed-capacity ring of recently classified
// directions. Push evicts the oldest entry once full.
type DirectionHistory struct {
	buf   []netconfig.Direction
	start int
	size  int
}

// NewDirectionHistory creates an empty history. A capacity below one falls
// back to DefaultHistoryCapacity.
func NewDirectionHistory(capacity int) *DirectionHistory {
	if capacity < 1 {
		capacity = DefaultHistoryCapacity
	}
	return &DirectionHistory{buf: make([]netconfig.Direction, capacity)}
}

// Push appends d, evicting the oldest entry when the history is full.
func (h *DirectionHistory) Push(d netconfig.Direction) {
	if h.size == len(h.buf) {
		h.buf[h.start] = d
		h.start = (h.start + 1) % len(h.buf)
		return
	}
	h.buf[(h.start+h.size)%len(h.buf)] = d
	h.size++
}

// PopOldest removes the oldest entry. It is a no-op on an empty history.
func (h *DirectionHistory) PopOldest() {
	if h.size == 0 {
		return
	}
	h.start = (h.start + 1) % len(h.buf)
	h.size--
}

func (h *DirectionHistory) Len() int { return h.size }

func (h *DirectionHistory) Cap() int { return len(h.buf) }

// At returns the i-th entry counting from the oldest.
func (h *DirectionHistory) At(i int) netconfig.Direction {
	return h.buf[(h.start+i)%len(h.buf)]
}

// Clear empties the history without releasing its buffer.
func (h *DirectionHistory) Clear() {
	h.start = 0
	h.size = 0
}

// MostFrequent returns the direction with the highest count. Ties go to the
// value whose first occurrence is oldest. The second result is false when
// the history is empty.
func (h *DirectionHistory) MostFrequent() (netconfig.Direction, bool) {
	if h.size == 0 {
		return netconfig.DirectionNone, false
	}
	var counts [netconfig.UpLeft + 1]int
	for i := 0; i < h.size; i++ {
		counts[h.At(i)]++
	}
	best := h.At(0)
	for i := 1; i < h.size; i++ {
		d := h.At(i)
		if counts[d] > counts[best] {
			best = d
		}
	}
	return best, true
}
