package farm

// Score is the player's point accumulator. Operations that can award points
// take it explicitly.
type Score int

// Add awards n points.
func (s *Score) Add(n int) {
	*s += Score(n)
}

// Value returns the score as an int.
func (s Score) Value() int {
	return int(s)
}
