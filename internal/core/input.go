package core

// Action represents a semantic game action, abstracted from physical key presses.
// Games work with intents; the platform decides which keys produce them.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move up
	ActionDown           // S, Down arrow - move down
	ActionLeft           // A, Left arrow - move left
	ActionRight          // D, Right arrow - move right
	ActionPlant          // Space - plant the selected seed
	ActionWater          // F - water the cell in reach
	ActionHarvest        // E - harvest a mature crop
	ActionPull           // X - pull whatever grows in the cell
	ActionNextSeed       // Tab - cycle seed species
	ActionRefill         // G - refill the water can at the well
	ActionConfirm        // Enter - confirm selection in menu
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionPlant:
		return "Plant"
	case ActionWater:
		return "Water"
	case ActionHarvest:
		return "Harvest"
	case ActionPull:
		return "Pull"
	case ActionNextSeed:
		return "NextSeed"
	case ActionRefill:
		return "Refill"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// IsMovement reports whether the action is one of the four movement axes.
func (a Action) IsMovement() bool {
	return a == ActionUp || a == ActionDown || a == ActionLeft || a == ActionRight
}

// InputFrame is the input state for one simulation tick.
// Movement actions are "held" for the tick; the rest are one-shot intents.
type InputFrame struct {
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}

// AxisState is the digital state of the two movement axes for one tick.
type AxisState struct {
	Left, Right, Up, Down bool
}

// Axes extracts the movement axes from the frame.
func (f InputFrame) Axes() AxisState {
	return AxisState{
		Left:  f.Has(ActionLeft),
		Right: f.Has(ActionRight),
		Up:    f.Has(ActionUp),
		Down:  f.Has(ActionDown),
	}
}

// Direction resolves the axes into a unit-or-zero vector. Opposing keys on
// one axis cancel; diagonals are normalized so diagonal speed equals axial
// speed.
func (a AxisState) Direction() Vec2 {
	var x, y float64
	switch {
	case a.Left && !a.Right:
		x = -1
	case a.Right && !a.Left:
		x = 1
	}
	switch {
	case a.Up && !a.Down:
		y = -1
	case a.Down && !a.Up:
		y = 1
	}
	return Vec2{X: x, Y: y}.Normalize()
}
