// Package raster adapts an arbitrary decoded image into the padded,
// two-tone reference canvas the mesh and contour pipelines both refine
// against, and produces the Canny edge raster the contour pipeline walks.
//
// This is the "external collaborator" layer of the system: image
// decoding, greyscale conversion, thresholding, bounding-box cropping and
// padding. It is deliberately simple — it exists to hand the core
// algorithms a well-defined two-tone signal, not to be a general image
// processing library.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Raster holds the padded, centered color and two-tone canvases both
// pipelines operate against. The two-tone canvas (BW) is read-only for the
// pipelines: it is the fitness reference and is never mutated after
// construction.
type Raster struct {
	Color  *image.RGBA
	BW     *image.Gray // two-tone: every pixel is 0 or 255
	Width  int
	Height int
}

// New decodes src into a padded, centered square canvas: the bounding box of
// pixels at or below bwThreshold (the foreground) is cropped, padded by 10%
// of its width/height on each axis, and centered on a white square canvas of
// side max(h+0.1w*2, w+0.1h*2).
func New(src image.Image, bwThreshold uint8) *Raster {
	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	gray := image.NewGray(image.Rect(0, 0, w, h))
	draw.Draw(gray, gray.Bounds(), src, bounds.Min, draw.Src)

	bw := image.NewGray(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := gray.GrayAt(x, y).Y
			if v > bwThreshold {
				bw.SetGray(x, y, color.Gray{Y: 255})
			} else {
				bw.SetGray(x, y, color.Gray{Y: 0})
			}
		}
	}

	colorCanvas := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(colorCanvas, colorCanvas.Bounds(), src, bounds.Min, draw.Src)

	minX, minY, maxX, maxY, ok := foregroundBounds(bw)
	if !ok {
		// Empty (all-white) input: degenerate to a minimal blank canvas.
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	fw := maxX - minX + 1
	fh := maxY - minY + 1

	padX := round(float64(fw) * 0.1)
	padY := round(float64(fh) * 0.1)

	canvasDim := max(fh+padX*2, fw+padY*2)
	if canvasDim < 1 {
		canvasDim = 1
	}

	outBW := image.NewGray(image.Rect(0, 0, canvasDim, canvasDim))
	draw.Draw(outBW, outBW.Bounds(), image.NewUniform(color2{255}), image.Point{}, draw.Src)

	outColor := image.NewRGBA(image.Rect(0, 0, canvasDim, canvasDim))
	draw.Draw(outColor, outColor.Bounds(), image.NewUniform(rgbaWhite{}), image.Point{}, draw.Src)

	xPos := (canvasDim - fw) / 2
	yPos := (canvasDim - fh) / 2

	for y := 0; y < fh; y++ {
		for x := 0; x < fw; x++ {
			outBW.SetGray(xPos+x, yPos+y, bw.GrayAt(minX+x, minY+y))
			outColor.Set(xPos+x, yPos+y, toRGBA(colorCanvas.At(minX+x, minY+y)))
		}
	}

	return &Raster{Color: outColor, BW: outBW, Width: canvasDim, Height: canvasDim}
}

// color2 and rgbaWhite are tiny color.Color adapters to avoid importing
// extra helper types for two constant fills.
type color2 struct{ Y uint8 }

func (c color2) RGBA() (r, g, b, a uint32) {
	v := uint32(c.Y) * 0x101
	return v, v, v, 0xffff
}

type rgbaWhite struct{}

func (rgbaWhite) RGBA() (r, g, b, a uint32) { return 0xffff, 0xffff, 0xffff, 0xffff }

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8), uint8(a >> 8)}
}

func foregroundBounds(bw *image.Gray) (minX, minY, maxX, maxY int, ok bool) {
	b := bw.Bounds()
	minX, minY = b.Dx(), b.Dy()
	maxX, maxY = -1, -1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if bw.GrayAt(x, y).Y < 255 {
				if x < minX {
					minX = x
				}
				if y < minY {
					minY = y
				}
				if x > maxX {
					maxX = x
				}
				if y > maxY {
					maxY = y
				}
			}
		}
	}
	return minX, minY, maxX, maxY, maxX >= minX
}

func round(v float64) int {
	if v < 0 {
		return int(v - 0.5)
	}
	return int(v + 0.5)
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Gray returns the two-tone reference value (0 or 255) at (x,y).
func (r *Raster) Gray(x, y int) uint8 {
	return r.BW.GrayAt(x, y).Y
}

// Bounds returns the canvas dimensions.
func (r *Raster) Bounds() (w, h int) {
	return r.Width, r.Height
}

// Source selects which canvas a consumer (e.g. the timelapse recorder)
// draws onto.
type Source int

const (
	SourceColor Source = iota
	SourceBW
)

// ToImage returns a drawable copy of the selected canvas.
func (r *Raster) ToImage(which Source) draw.Image {
	switch which {
	case SourceBW:
		out := image.NewRGBA(r.BW.Bounds())
		for y := r.BW.Bounds().Min.Y; y < r.BW.Bounds().Max.Y; y++ {
			for x := r.BW.Bounds().Min.X; x < r.BW.Bounds().Max.X; x++ {
				v := r.BW.GrayAt(x, y).Y
				out.Set(x, y, color.RGBA{v, v, v, 255})
			}
		}
		return out
	default:
		out := image.NewRGBA(r.Color.Bounds())
		draw.Draw(out, out.Bounds(), r.Color, image.Point{}, draw.Src)
		return out
	}
}
