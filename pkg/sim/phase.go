package sim

// Phase is where a session is in its lifecycle
type Phase int

const (
	// Running is normal play
	Running Phase = iota
	// Won means the lap limit was reached; the next tick stops the session
	Won
	// Lost means the player crashed; the explosion plays out before stopping
	Lost
	// Stopped is terminal, ticks do nothing
	Stopped
)

func (p Phase) String() string {
	switch p {
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// Terminal reports whether the run has been decided
func (p Phase) Terminal() bool {
	return p != Running
}

// Outcome is the result of a decided run
type Outcome int

const (
	Undecided Outcome = iota
	Win
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	}
	return "undecided"
}

// Message is the text shown once the run is decided
func (o Outcome) Message() string {
	switch o {
	case Win:
		return "You Win!"
	case Loss:
		return "You lose!"
	}
	return ""
}
