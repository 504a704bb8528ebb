package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionAdvance        // Space, N - let the qubits pick one move
	ActionAuto           // A - toggle automatic advancing on every tick
	ActionPause          // P - pause/unpause
	ActionRestart        // R - new maze after the game ended
	ActionUp             // Up, K - menu navigation
	ActionDown           // Down, J - menu navigation
	ActionConfirm        // Enter - confirm selection
	ActionBack           // B, Esc - go back to menu
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionAdvance:
		return "Advance"
	case ActionAuto:
		return "Auto"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame holds the actions triggered during one tick.
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
