package background

import (
	"image"
	"image/color"

	"github.com/golangdaddy/patroldodge/pkg/asset"
	"github.com/golangdaddy/patroldodge/pkg/config"
	"github.com/golangdaddy/patroldodge/pkg/sim"
)

// PlayerColor is the body colour of the generated player car
var PlayerColor = color.RGBA{200, 30, 30, 255}

// LoadSprites starts loading the three session sprites from the configured
// asset paths. Each falls back to a generated texture when its file is
// missing or fails to decode.
func LoadSprites(l *asset.Loader, cfg *config.Config) sim.Sprites {
	sprites := sim.Sprites{
		Road:   asset.NewSprite("road"),
		Player: asset.NewSprite("player"),
		Patrol: asset.NewSprite("patrol"),
	}

	l.Load(sprites.Road, cfg.Assets.Road, func() image.Image {
		return NewGenerator(cfg.PlayWidth, cfg.PlayHeight).GenerateRoad(cfg.Seed, cfg.Lanes)
	})
	l.Load(sprites.Player, cfg.Assets.Player, func() image.Image {
		return GenerateCar(PlayerColor)
	})
	l.Load(sprites.Patrol, cfg.Assets.Patrol, func() image.Image {
		return GeneratePatrol()
	})

	return sprites
}
