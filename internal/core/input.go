package core

// Action is a semantic input, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // move the cursor one row up
	ActionDown           // move the cursor one row down
	ActionLeft           // move the cursor one column left
	ActionRight          // move the cursor one column right
	ActionSwap           // exchange the two cells under the cursor
	ActionRaise          // hold to push the stack up faster
	ActionPause          // pause or resume the simulation
	ActionRestart        // start a new session after a loss
	ActionConfirm        // confirm a menu selection
	ActionBack           // return to the previous screen
	ActionQuit           // leave the session
)

var actionNames = [...]string{
	ActionNone:    "None",
	ActionUp:      "Up",
	ActionDown:    "Down",
	ActionLeft:    "Left",
	ActionRight:   "Right",
	ActionSwap:    "Swap",
	ActionRaise:   "Raise",
	ActionPause:   "Pause",
	ActionRestart: "Restart",
	ActionConfirm: "Confirm",
	ActionBack:    "Back",
	ActionQuit:    "Quit",
}

// String returns a human-readable name for the action.
func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return "Unknown"
	}
	return actionNames[a]
}

// PlayerID identifies a board in a session.
type PlayerID int

const (
	Player1 PlayerID = iota + 1
	Player2
)

// String returns "P1" or "P2".
func (p PlayerID) String() string {
	switch p {
	case Player1:
		return "P1"
	case Player2:
		return "P2"
	default:
		return "P?"
	}
}

// Opponent returns the other player of a two-board session.
func (p PlayerID) Opponent() PlayerID {
	if p == Player1 {
		return Player2
	}
	return Player1
}

// InputFrame is the set of actions one player triggered during a tick.
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
	return f.Actions[a]
}

// Empty reports whether no action was triggered.
func (f InputFrame) Empty() bool {
	for _, on := range f.Actions {
		if on {
			return false
		}
	}
	return true
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.Actions)
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	cp := NewInputFrame()
	for k, v := range f.Actions {
		cp.Actions[k] = v
	}
	return cp
}

// MultiInputFrame holds every player's input for a single tick. The
// platform fills it from the keyboard; games consume it without knowing
// where the input came from.
type MultiInputFrame struct {
	ByPlayer map[PlayerID]InputFrame
}

// NewMultiInputFrame creates an empty multi-input frame.
func NewMultiInputFrame() MultiInputFrame {
	return MultiInputFrame{
		ByPlayer: make(map[PlayerID]InputFrame),
	}
}

// Player returns the input frame for a specific player, or an empty frame.
func (m MultiInputFrame) Player(id PlayerID) InputFrame {
	if frame, ok := m.ByPlayer[id]; ok {
		return frame
	}
	return NewInputFrame()
}

// SetPlayer sets the input frame for a specific player.
func (m *MultiInputFrame) SetPlayer(id PlayerID, frame InputFrame) {
	if m.ByPlayer == nil {
		m.ByPlayer = make(map[PlayerID]InputFrame)
	}
	m.ByPlayer[id] = frame
}

// Press marks action a for player id.
func (m *MultiInputFrame) Press(id PlayerID, a Action) {
	f := m.Player(id)
	f.Set(a)
	m.SetPlayer(id, f)
}

// Has reports whether any player triggered a.
func (m MultiInputFrame) Has(a Action) bool {
	for _, f := range m.ByPlayer {
		if f.Has(a) {
			return true
		}
	}
	return false
}

// Clear resets all player inputs for the next frame.
func (m *MultiInputFrame) Clear() {
	for id := range m.ByPlayer {
		frame := m.ByPlayer[id]
		frame.Clear()
		m.ByPlayer[id] = frame
	}
}

// Clone creates a deep copy of this multi-input frame.
func (m MultiInputFrame) Clone() MultiInputFrame {
	cp := NewMultiInputFrame()
	for id, frame := range m.ByPlayer {
		cp.ByPlayer[id] = frame.Clone()
	}
	return cp
}
