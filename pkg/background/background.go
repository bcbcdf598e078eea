package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator creates fallback textures for when image assets are missing
type Generator struct {
	Width  int
	Height int
}

// NewGenerator creates a new texture generator for a road tile of the given size
func NewGenerator(width, height int) *Generator {
	return &Generator{
		Width:  width,
		Height: height,
	}
}

// GenerateRoad creates a seamless vertical road tile: grass verges, noisy
// asphalt and dashed markings between lanes
func (g *Generator) GenerateRoad(seed int64, lanes int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	verge := g.Width / 12
	fill(img, image.Rect(0, 0, g.Width, g.Height), color.RGBA{30, 100, 30, 255})
	fill(img, image.Rect(verge, 0, g.Width-verge, g.Height), color.RGBA{60, 60, 64, 255})

	// Grit on the asphalt, grass tufts on the verges
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		if x >= verge && x < g.Width-verge {
			shade := uint8(50 + rng.Intn(30))
			img.SetRGBA(x, y, color.RGBA{shade, shade, shade + 4, 255})
		} else {
			shade := uint8(80 + rng.Intn(60))
			img.SetRGBA(x, y, color.RGBA{30, shade, 30, 255})
		}
	}

	// Solid edge lines
	edge := color.RGBA{230, 230, 230, 255}
	fill(img, image.Rect(verge, 0, verge+3, g.Height), edge)
	fill(img, image.Rect(g.Width-verge-3, 0, g.Width-verge, g.Height), edge)

	if lanes < 2 {
		return img
	}

	// Dashes repeat a whole number of times so stacked tiles line up
	dashes := g.Height / 60
	if dashes < 1 {
		dashes = 1
	}
	period := float64(g.Height) / float64(dashes)
	laneW := float64(g.Width-2*verge) / float64(lanes)
	for l := 1; l < lanes; l++ {
		x := verge + int(math.Round(laneW*float64(l)))
		for d := 0; d < dashes; d++ {
			y := int(period * float64(d))
			fill(img, image.Rect(x-1, y, x+2, y+int(period/2)), edge)
		}
	}

	return img
}

// GenerateCar renders a top-down car facing up
func GenerateCar(body color.Color) *image.RGBA {
	const carWidth, carHeight = 30, 50

	img := image.NewRGBA(image.Rect(0, 0, carWidth, carHeight))
	fill(img, img.Bounds(), body)

	// Outline
	outline := color.RGBA{20, 20, 20, 255}
	fill(img, image.Rect(0, 0, carWidth, 2), outline)
	fill(img, image.Rect(0, carHeight-2, carWidth, carHeight), outline)
	fill(img, image.Rect(0, 0, 2, carHeight), outline)
	fill(img, image.Rect(carWidth-2, 0, carWidth, carHeight), outline)

	// Windshield at the front, rear window at the back
	glass := color.RGBA{150, 200, 255, 255}
	fill(img, image.Rect(6, 8, carWidth-6, 18), glass)
	fill(img, image.Rect(7, carHeight-12, carWidth-7, carHeight-6), glass)

	// Wheels
	wheel := color.RGBA{30, 30, 30, 255}
	for _, y := range []int{5, carHeight - 13} {
		fill(img, image.Rect(0, y, 3, y+8), wheel)
		fill(img, image.Rect(carWidth-3, y, carWidth, y+8), wheel)
	}

	return img
}

// GeneratePatrol renders a patrol car: white body, dark doors, light bar
func GeneratePatrol() *image.RGBA {
	img := GenerateCar(color.RGBA{235, 235, 240, 255})
	b := img.Bounds()

	fill(img, image.Rect(2, 20, b.Dx()-2, 32), color.RGBA{20, 30, 90, 255})
	fill(img, image.Rect(5, 22, b.Dx()/2, 26), color.RGBA{220, 30, 30, 255})
	fill(img, image.Rect(b.Dx()/2, 22, b.Dx()-5, 26), color.RGBA{30, 80, 230, 255})

	return img
}

func fill(img *image.RGBA, r image.Rectangle, c color.Color) {
	r = r.Intersect(img.Bounds())
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}
