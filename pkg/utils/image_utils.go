package utils

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// CropImage creates a sub-image from the source image.
// This is a convenience wrapper around SubImage.
//
// Parameters:
//   - src: The source image to crop
//   - rect: The rectangle region to extract, relative to src.Bounds().Min
//
// Returns:
//   - The cropped sub-image, or nil if src is nil or the clamped region is empty
func CropImage(src *ebiten.Image, rect image.Rectangle) *ebiten.Image {
	if src == nil {
		return nil
	}

	bounds := src.Bounds()
	rect = rect.Add(bounds.Min).Intersect(bounds)
	if rect.Empty() {
		return nil
	}
	return src.SubImage(rect).(*ebiten.Image)
}

// TileImage 用 tile 平铺填满 dst 的 (0,0)-(width,height) 区域
func TileImage(dst, tile *ebiten.Image, width, height int) {
	if dst == nil || tile == nil {
		return
	}
	tw, th := tile.Bounds().Dx(), tile.Bounds().Dy()
	if tw <= 0 || th <= 0 {
		return
	}

	op := &ebiten.DrawImageOptions{}
	for y := 0; y < height; y += th {
		for x := 0; x < width; x += tw {
			op.GeoM.Reset()
			op.GeoM.Translate(float64(x), float64(y))
			dst.DrawImage(tile, op)
		}
	}
}
