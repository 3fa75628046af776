//go:build ignore

// Test image generator for creating sample images with known colour
// proportions. Run with: go run testdata/generate_test_image.go
package main

import (
	"image"
	"image/color"
	"image/png"
	"os"
)

func main() {
	width := 400
	height := 400
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	// Vertical bands; each band's share of the width is the colour's
	// expected palette percentage.
	bands := []struct {
		c     color.NRGBA
		share int // percent of width
	}{
		{c: color.NRGBA{R: 30, G: 30, B: 46, A: 255}, share: 50},   // background
		{c: color.NRGBA{R: 230, G: 126, B: 34, A: 255}, share: 25}, // orange
		{c: color.NRGBA{R: 52, G: 152, B: 219, A: 255}, share: 15}, // blue
		{c: color.NRGBA{R: 46, G: 204, B: 113, A: 255}, share: 10}, // green
	}

	x := 0
	for _, band := range bands {
		end := x + width*band.share/100
		for ; x < end; x++ {
			for y := range height {
				img.SetNRGBA(x, y, band.c)
			}
		}
	}

	file, err := os.Create("testdata/sample.png")
	if err != nil {
		panic(err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		panic(err)
	}

	println("Test image created: testdata/sample.png (expect 50/25/15/10)")
}
