package input

// Command is a discrete ship control edge.
type Command int

const (
	RotateLeftStart Command = iota
	RotateLeftStop
	RotateRightStart
	RotateRightStop
	ThrustStart
	ThrustStop
	Fire
	AllowRefire
)

var commandNames = [...]string{
	RotateLeftStart:  "rotate-left-start",
	RotateLeftStop:   "rotate-left-stop",
	RotateRightStart: "rotate-right-start",
	RotateRightStop:  "rotate-right-stop",
	ThrustStart:      "thrust-start",
	ThrustStop:       "thrust-stop",
	Fire:             "fire",
	AllowRefire:      "allow-refire",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Edges appends to buf the commands for keys whose held state changed
// between two frames. Releasing fire yields AllowRefire.
func Edges(prev, cur Input, buf []Command) []Command {
	buf = edge(buf, prev.Left, cur.Left, RotateLeftStart, RotateLeftStop)
	buf = edge(buf, prev.Right, cur.Right, RotateRightStart, RotateRightStop)
	buf = edge(buf, prev.Up, cur.Up, ThrustStart, ThrustStop)
	buf = edge(buf, prev.Space, cur.Space, Fire, AllowRefire)
	return buf
}

func edge(buf []Command, was, is bool, press, release Command) []Command {
	switch {
	case !was && is:
		return append(buf, press)
	case was && !is:
		return append(buf, release)
	}
	return buf
}
