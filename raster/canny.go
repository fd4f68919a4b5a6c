package raster

import "math"

// EdgeRaster is a binary edge map: Lit(x,y) is true for pixels classified
// as edges.
type EdgeRaster struct {
	W, H int
	bits []bool
}

func newEdgeRaster(w, h int) *EdgeRaster {
	return &EdgeRaster{W: w, H: h, bits: make([]bool, w*h)}
}

// Lit reports whether (x,y) is an edge pixel.
func (e *EdgeRaster) Lit(x, y int) bool {
	if x < 0 || y < 0 || x >= e.W || y >= e.H {
		return false
	}
	return e.bits[y*e.W+x]
}

func (e *EdgeRaster) set(x, y int, v bool) {
	e.bits[y*e.W+x] = v
}

// Canny runs a standard Canny edge detector (Sobel gradient, non-maximum
// suppression, double threshold with hysteresis) over the two-tone
// reference canvas, producing the binary edge raster the contour pipeline's
// path assembler walks.
func (r *Raster) Canny(tLower, tUpper int) *EdgeRaster {
	w, h := r.Width, r.Height

	gray := make([]float64, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gray[y*w+x] = float64(r.Gray(x, y))
		}
	}

	mag := make([]float64, w*h)
	dir := make([]float64, w*h)

	at := func(x, y int) float64 {
		if x < 0 {
			x = 0
		}
		if x >= w {
			x = w - 1
		}
		if y < 0 {
			y = 0
		}
		if y >= h {
			y = h - 1
		}
		return gray[y*w+x]
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			gx := -at(x-1, y-1) + at(x+1, y-1) +
				-2*at(x-1, y) + 2*at(x+1, y) +
				-at(x-1, y+1) + at(x+1, y+1)
			gy := -at(x-1, y-1) - 2*at(x, y-1) - at(x+1, y-1) +
				at(x-1, y+1) + 2*at(x, y+1) + at(x+1, y+1)

			mag[y*w+x] = math.Hypot(gx, gy)
			dir[y*w+x] = math.Atan2(gy, gx)
		}
	}

	suppressed := make([]float64, w*h)
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			angle := dir[y*w+x] * 180 / math.Pi
			if angle < 0 {
				angle += 180
			}

			var n1, n2 float64
			switch {
			case angle < 22.5 || angle >= 157.5:
				n1, n2 = mag[y*w+x-1], mag[y*w+x+1]
			case angle < 67.5:
				n1, n2 = mag[(y-1)*w+x+1], mag[(y+1)*w+x-1]
			case angle < 112.5:
				n1, n2 = mag[(y-1)*w+x], mag[(y+1)*w+x]
			default:
				n1, n2 = mag[(y-1)*w+x-1], mag[(y+1)*w+x+1]
			}

			m := mag[y*w+x]
			if m >= n1 && m >= n2 {
				suppressed[y*w+x] = m
			}
		}
	}

	strong := make([]bool, w*h)
	weak := make([]bool, w*h)
	for i, m := range suppressed {
		switch {
		case m >= float64(tUpper):
			strong[i] = true
		case m >= float64(tLower):
			weak[i] = true
		}
	}

	out := newEdgeRaster(w, h)
	var stack []int
	for i, v := range strong {
		if v {
			out.bits[i] = true
			stack = append(stack, i)
		}
	}

	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		x, y := i%w, i/w

		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				nx, ny := x+dx, y+dy
				if nx < 0 || ny < 0 || nx >= w || ny >= h {
					continue
				}
				ni := ny*w + nx
				if weak[ni] && !out.bits[ni] {
					out.bits[ni] = true
					stack = append(stack, ni)
				}
			}
		}
	}

	return out
}
