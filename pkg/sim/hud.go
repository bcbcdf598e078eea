package sim

import "fmt"

// HUD is the status text a backend shows next to the play area
type HUD struct {
	Remaining string // refreshed once per elapsed second
	Result    string // empty until the run is decided
}

// ResultVisible reports whether the result message should be shown
func (h HUD) ResultVisible() bool {
	return h.Result != ""
}

func remainingText(seconds int) string {
	return fmt.Sprintf("REMAINING TIME: %d", seconds)
}
