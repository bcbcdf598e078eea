// Package vehicle implements the sprite-backed cars: the player, steered
// sideways by input, and the patrols that drive down their lane.
package vehicle

import (
	"github.com/golangdaddy/patroldodge/pkg/entity"
	"github.com/golangdaddy/patroldodge/pkg/geom"
	"github.com/golangdaddy/patroldodge/pkg/render"
)

var (
	_ entity.Entity = (*Player)(nil)
	_ entity.Entity = (*Patrol)(nil)
)

// Vehicle is a body with a velocity and an opacity in [0, 1]
type Vehicle struct {
	entity.Body
	VelX, VelY float64
	Alpha      float64
}

// Draw renders the sprite at the current rect and opacity
func (v *Vehicle) Draw(dst render.Surface) {
	if !v.Ready() {
		return
	}
	dst.DrawSprite(v.Sprite, v.Rect(), v.Alpha)
}

// SetAlpha changes the opacity, clamped to [0, 1]
func (v *Vehicle) SetAlpha(a float64) {
	v.Alpha = geom.Clamp(a, 0, 1)
}

func (v *Vehicle) integrate() {
	v.Pos.X += v.VelX
	v.Pos.Y += v.VelY
}
