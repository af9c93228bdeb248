package emulator

// Command is a user request to the running emulator.
type Command int

// Commands that can be sent to a running emulator.
const (
	CommandExit Command = iota + 1
	CommandTogglePause
	CommandStepFrame
	CommandStepInstruction
)

var commandNames = map[Command]string{
	CommandExit:            "exit",
	CommandTogglePause:     "toggle pause",
	CommandStepFrame:       "step frame",
	CommandStepInstruction: "step instruction",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return "unknown"
}
