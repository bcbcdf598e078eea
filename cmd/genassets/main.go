// Command genassets writes the generated road and car textures to the
// asset paths the game loads by default, as a starting point for artwork.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/golangdaddy/patroldodge/pkg/background"
	"github.com/golangdaddy/patroldodge/pkg/config"
)

func save(img image.Image, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return err
	}

	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	switch strings.ToLower(filepath.Ext(filename)) {
	case ".jpg", ".jpeg":
		return jpeg.Encode(file, img, &jpeg.Options{Quality: 90})
	default:
		return png.Encode(file, img)
	}
}

func main() {
	seed := flag.Int64("seed", 1, "seed for the road texture")
	flag.Parse()

	cfg := config.Default()
	assets := []struct {
		filename string
		img      image.Image
	}{
		{cfg.Assets.Road, background.NewGenerator(cfg.PlayWidth, cfg.PlayHeight).GenerateRoad(*seed, cfg.Lanes)},
		{cfg.Assets.Player, background.GenerateCar(background.PlayerColor)},
		{cfg.Assets.Patrol, background.GeneratePatrol()},
	}

	failed := false
	for _, a := range assets {
		if err := save(a.img, a.filename); err != nil {
			fmt.Printf("Error saving %s: %v\n", a.filename, err)
			failed = true
			continue
		}
		fmt.Printf("Generated texture: %s\n", a.filename)
	}

	if failed {
		os.Exit(1)
	}
	fmt.Println("Texture generation complete!")
}
