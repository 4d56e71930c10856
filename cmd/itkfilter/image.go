package main

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/tiff"

	"github.com/lucasalg/ITK/internal/grid"
)

// loadGrid decodes a PNG or TIFF file into a grayscale float64 grid,
// row-major with axis 0 = rows.
func loadGrid(path string) (*grid.Grid[float64], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var img image.Image
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		img, err = png.Decode(f)
	case ".tif", ".tiff":
		img, err = tiff.Decode(f)
	default:
		return nil, fmt.Errorf("unsupported image format %q", ext)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}

	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	data := make([]float64, h*w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray)
			data[y*w+x] = float64(c.Y)
		}
	}
	return grid.FromSlice(data, grid.ZeroRegion(grid.Size{h, w}))
}

// saveGrid encodes a 2-D float64 grid as a grayscale PNG or TIFF,
// clamping pixel values to [0, 255].
func saveGrid(g *grid.Grid[float64], path string) error {
	if g.Dim() != 2 {
		return fmt.Errorf("can only save 2-D grids, got %dD", g.Dim())
	}
	extent := g.Extent()
	h, w := extent.Size[0], extent.Size[1]

	img := image.NewGray(image.Rect(0, 0, w, h))
	data := g.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := data[y*w+x]
			if v < 0 {
				v = 0
			} else if v > 255 {
				v = 255
			}
			img.SetGray(x, y, color.Gray{Y: uint8(v + 0.5)})
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		err = png.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("unsupported image format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return nil
}
