package farm

// WaterCan carries a limited number of water portions between refills at
// the well.
type WaterCan struct {
	portion   float64
	capacity  int
	remaining int
}

// NewWaterCan creates a full can.
func NewWaterCan(portion float64, capacity int) *WaterCan {
	capacity = max(capacity, 1)
	return &WaterCan{portion: portion, capacity: capacity, remaining: capacity}
}

// Portion returns the moisture one pour gives a cell.
func (w *WaterCan) Portion() float64 { return w.portion }

// Capacity returns the number of portions a full can holds.
func (w *WaterCan) Capacity() int { return w.capacity }

// Remaining returns the portions left.
func (w *WaterCan) Remaining() int { return w.remaining }

// Empty reports whether the can needs a refill.
func (w *WaterCan) Empty() bool { return w.remaining == 0 }

// Pour consumes one portion.
func (w *WaterCan) Pour() (float64, bool) {
	if w.remaining == 0 {
		return 0, false
	}
	w.remaining--
	return w.portion, true
}

// Refill fills the can. Returns false when it was already full.
func (w *WaterCan) Refill() bool {
	if w.remaining == w.capacity {
		return false
	}
	w.remaining = w.capacity
	return true
}
