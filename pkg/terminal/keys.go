package terminal

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/sim"
)

var namedKeys = map[string]tcell.Key{
	"arrowleft":  tcell.KeyLeft,
	"arrowright": tcell.KeyRight,
	"arrowup":    tcell.KeyUp,
	"arrowdown":  tcell.KeyDown,
}

// binding matches either a special key or a rune
type binding struct {
	key tcell.Key
	r   rune
}

func (b binding) matches(ev *tcell.EventKey) bool {
	if b.key == tcell.KeyRune {
		return ev.Key() == tcell.KeyRune && unicode.ToLower(ev.Rune()) == b.r
	}
	return ev.Key() == b.key
}

func parseBinding(name string) (binding, error) {
	lower := strings.ToLower(name)
	if k, ok := namedKeys[lower]; ok {
		return binding{key: k}, nil
	}
	if r, size := utf8.DecodeRuneInString(lower); size > 0 && size == len(lower) && r != utf8.RuneError {
		return binding{key: tcell.KeyRune, r: r}, nil
	}
	return binding{}, fmt.Errorf("%w: unknown key %q", config.ErrInvalid, name)
}

// keymap resolves key events to steering directions
type keymap struct {
	left, right []binding
}

func newKeymap(keys config.Keys) (keymap, error) {
	var km keymap
	for _, name := range keys.Left {
		b, err := parseBinding(name)
		if err != nil {
			return keymap{}, fmt.Errorf("left keys: %w", err)
		}
		km.left = append(km.left, b)
	}
	for _, name := range keys.Right {
		b, err := parseBinding(name)
		if err != nil {
			return keymap{}, fmt.Errorf("right keys: %w", err)
		}
		km.right = append(km.right, b)
	}
	return km, nil
}

func (km keymap) direction(ev *tcell.EventKey) (sim.Direction, bool) {
	for _, b := range km.left {
		if b.matches(ev) {
			return sim.Left, true
		}
	}
	for _, b := range km.right {
		if b.matches(ev) {
			return sim.Right, true
		}
	}
	return 0, false
}
