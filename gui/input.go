package gui

// Port says which part of the board an input is meant for.
type Port int

// List of valid Port values.
const (
	Undefined Port = iota
	Player1
	Player2
	Panel
)

// Action is the type of user input.
type Action int

// List of valid Action values.
//
// StickUp and StickDown refer to the direction as seen by the user. The Data
// field is true for a press and false for a release.
//
// Restart is a panel action. It is acted upon on the press and the Data field
// is ignored.
const (
	Nothing Action = iota
	StickUp
	StickDown
	Restart
)

func (a Action) String() string {
	switch a {
	case StickUp:
		return "stick up"
	case StickDown:
		return "stick down"
	case Restart:
		return "restart"
	}
	return "nothing"
}

// Input is a single user input event.
type Input struct {
	Port   Port
	Action Action
	Data   any
}

// Pressed returns the state of a button encoded in the Data field. Anything
// other than a bool is treated as a press.
func (inp Input) Pressed() bool {
	if b, ok := inp.Data.(bool); ok {
		return b
	}
	return true
}
