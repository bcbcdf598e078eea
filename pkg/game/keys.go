package game

import (
	"fmt"
	"strings"

	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/hajimehoshi/ebiten/v2"
)

var namedKeys = map[string]ebiten.Key{
	"arrowleft":  ebiten.KeyArrowLeft,
	"arrowright": ebiten.KeyArrowRight,
	"arrowup":    ebiten.KeyArrowUp,
	"arrowdown":  ebiten.KeyArrowDown,
	"space":      ebiten.KeySpace,
	"shift":      ebiten.KeyShift,
	"control":    ebiten.KeyControl,
	"a":          ebiten.KeyA,
	"b":          ebiten.KeyB,
	"c":          ebiten.KeyC,
	"d":          ebiten.KeyD,
	"e":          ebiten.KeyE,
	"f":          ebiten.KeyF,
	"g":          ebiten.KeyG,
	"h":          ebiten.KeyH,
	"i":          ebiten.KeyI,
	"j":          ebiten.KeyJ,
	"k":          ebiten.KeyK,
	"l":          ebiten.KeyL,
	"m":          ebiten.KeyM,
	"n":          ebiten.KeyN,
	"o":          ebiten.KeyO,
	"p":          ebiten.KeyP,
	"q":          ebiten.KeyQ,
	"r":          ebiten.KeyR,
	"s":          ebiten.KeyS,
	"t":          ebiten.KeyT,
	"u":          ebiten.KeyU,
	"v":          ebiten.KeyV,
	"w":          ebiten.KeyW,
	"x":          ebiten.KeyX,
	"y":          ebiten.KeyY,
	"z":          ebiten.KeyZ,
	"0":          ebiten.KeyDigit0,
	"1":          ebiten.KeyDigit1,
	"2":          ebiten.KeyDigit2,
	"3":          ebiten.KeyDigit3,
	"4":          ebiten.KeyDigit4,
	"5":          ebiten.KeyDigit5,
	"6":          ebiten.KeyDigit6,
	"7":          ebiten.KeyDigit7,
	"8":          ebiten.KeyDigit8,
	"9":          ebiten.KeyDigit9,
}

// parseKey resolves a binding name like "ArrowLeft" or "a", ignoring case
func parseKey(name string) (ebiten.Key, error) {
	if k, ok := namedKeys[strings.ToLower(name)]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: unknown key %q", config.ErrInvalid, name)
}

func parseKeys(names []string) ([]ebiten.Key, error) {
	keys := make([]ebiten.Key, 0, len(names))
	for _, name := range names {
		k, err := parseKey(name)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// Bindings are the resolved steering keys
type Bindings struct {
	Left  []ebiten.Key
	Right []ebiten.Key
}

// NewBindings resolves the key names of cfg
func NewBindings(keys config.Keys) (Bindings, error) {
	left, err := parseKeys(keys.Left)
	if err != nil {
		return Bindings{}, fmt.Errorf("left keys: %w", err)
	}
	right, err := parseKeys(keys.Right)
	if err != nil {
		return Bindings{}, fmt.Errorf("right keys: %w", err)
	}
	return Bindings{Left: left, Right: right}, nil
}
