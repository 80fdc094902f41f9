package play

import "fmt"

// Action is a player intent, independent of the device that produced it.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionSoftDrop
	ActionHardDrop
	ActionRotate
	ActionRestart
	ActionPause
	ActionQuit
)

// Actions lists every action in declaration order.
var Actions = [...]Action{
	ActionLeft,
	ActionRight,
	ActionSoftDrop,
	ActionHardDrop,
	ActionRotate,
	ActionRestart,
	ActionPause,
	ActionQuit,
}

var actionNames = [...]string{
	ActionLeft:     "left",
	ActionRight:    "right",
	ActionSoftDrop: "soft_drop",
	ActionHardDrop: "hard_drop",
	ActionRotate:   "rotate",
	ActionRestart:  "restart",
	ActionPause:    "pause",
	ActionQuit:     "quit",
}

func (a Action) String() string {
	if a < 0 || int(a) >= len(actionNames) {
		return fmt.Sprintf("Action(%d)", int(a))
	}
	return actionNames[a]
}

// ParseAction returns the action with the given configuration name.
func ParseAction(name string) (Action, error) {
	for _, a := range Actions {
		if actionNames[a] == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", name)
}
