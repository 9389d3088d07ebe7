package flow

// GameMode is the screen the client is showing.
type GameMode int

const (
	GameModeMenu GameMode = iota
	GameModePlay
	GameModeOver
)

func (m GameMode) String() string {
	switch m {
	case GameModeMenu:
		return "Menu"
	case GameModePlay:
		return "Play"
	case GameModeOver:
		return "Over"
	}
	return "Unknown"
}

// Event moves the client from one mode to another.
type Event int

const (
	// EventStart begins a new session.
	EventStart Event = iota
	// EventCrash ends the running session.
	EventCrash
	// EventQuit abandons the running session.
	EventQuit
)

func (e Event) String() string {
	switch e {
	case EventStart:
		return "Start"
	case EventCrash:
		return "Crash"
	case EventQuit:
		return "Quit"
	}
	return "Unknown"
}

var transitions = map[GameMode]map[Event]GameMode{
	GameModeMenu: {
		EventStart: GameModePlay,
	},
	GameModePlay: {
		EventCrash: GameModeOver,
		EventQuit:  GameModeMenu,
	},
	GameModeOver: {
		EventStart: GameModePlay,
	},
}

// Next returns the mode reached by e from m. It reports false when e has
// no meaning in m, e.g. a crash while on the menu.
func Next(m GameMode, e Event) (GameMode, bool) {
	next, ok := transitions[m][e]
	return next, ok
}
