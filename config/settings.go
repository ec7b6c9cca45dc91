package config

// WindowModeID represents how the game window is presented
type WindowModeID int

const (
	WindowModeWindowed WindowModeID = iota
	WindowModeBorderlessFullscreen
)

func (m WindowModeID) String() string {
	switch m {
	case WindowModeWindowed:
		return "windowed"
	case WindowModeBorderlessFullscreen:
		return "fullscreen"
	}
	return "unknown"
}

// Toggle flips between windowed and borderless fullscreen. Any other mode
// falls back to windowed.
func (m WindowModeID) Toggle() WindowModeID {
	if m == WindowModeWindowed {
		return WindowModeBorderlessFullscreen
	}
	return WindowModeWindowed
}
