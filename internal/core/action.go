package core

// Action represents a semantic game action, abstracted from physical key presses.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, Up arrow
	ActionDown             // S, Down arrow
	ActionLeft             // A, Left arrow
	ActionRight            // D, Right arrow
	ActionBack             // Esc - back to the start menu
	ActionRestart          // R - restart from level 1 after a loss
	ActionNextLevel        // N - continue after a win
	ActionQuit             // Q, Ctrl+C
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
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionNextLevel:
		return "NextLevel"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsSteering reports whether the action changes direction.
func (a Action) IsSteering() bool {
	return a >= ActionUp && a <= ActionRight
}
