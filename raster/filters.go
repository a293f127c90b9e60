package raster

// gaussianKernel is the normalized 5x5 integer kernel, summing to 256.
var gaussianKernel = [5][5]int{
	{1, 4, 6, 4, 1},
	{4, 16, 24, 16, 4},
	{6, 24, 36, 24, 6},
	{4, 16, 24, 16, 4},
	{1, 4, 6, 4, 1},
}

// GaussianBlur convolves the 5x5 normalized kernel over in. Pixels closer
// than two from any edge pass through unchanged (a two-pixel ring);
// interior pixels are the truncating integer division of the weighted
// sum by the kernel's own weight sum (256 in the interior).
func GaussianBlur(in *Image) *Image {
	out := NewImage(in.Width, in.Height)
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			if x < 2 || x >= in.Width-2 || y < 2 || y >= in.Height-2 {
				out.Pix[y*in.Width+x] = in.Pix[y*in.Width+x]
				continue
			}
			var numerator, denominator uint32
			for j := -2; j <= 2; j++ {
				for i := -2; i <= 2; i++ {
					weight := uint32(gaussianKernel[j+2][i+2])
					numerator += uint32(in.At(x+i, y+j)) * weight
					denominator += weight
				}
			}
			out.Pix[y*in.Width+x] = byte(numerator / denominator)
		}
	}
	return out
}

var sobelGx = [3][3]int{{-1, 0, 1}, {-2, 0, 2}, {-1, 0, 1}}
var sobelGy = [3][3]int{{-1, -2, -1}, {0, 0, 0}, {1, 2, 1}}

// Sobel computes the approximate gradient magnitude |Gx| + |Gy| over a
// 3x3 neighborhood, clamped to 255. The one-pixel border is zeroed.
func Sobel(in *Image) *Image {
	out := NewImage(in.Width, in.Height)
	for y := 1; y < in.Height-1; y++ {
		for x := 1; x < in.Width-1; x++ {
			var gx, gy int
			for j := -1; j <= 1; j++ {
				for i := -1; i <= 1; i++ {
					v := int(in.At(x+i, y+j))
					gx += v * sobelGx[j+1][i+1]
					gy += v * sobelGy[j+1][i+1]
				}
			}
			mag := absInt(gx) + absInt(gy)
			if mag > 255 {
				mag = 255
			}
			out.Pix[y*in.Width+x] = byte(mag)
		}
	}
	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// NonMaxSuppress keeps a pixel only if it is a local maximum along the
// dominant one of four directional axes, tried in priority order
// NS -> EW -> NW/SE -> NE/SW with "greater-or-equal" axis comparisons.
// Along the chosen axis the center must strictly exceed the earlier
// neighbor and be greater-or-equal to the later one; this strict/loose
// asymmetry avoids ties propagating along a ridge and must be preserved.
// Boundary pixels are zeroed.
func NonMaxSuppress(in *Image) *Image {
	out := NewImage(in.Width, in.Height)
	for y := 0; y < in.Height; y++ {
		for x := 0; x < in.Width; x++ {
			if y == 0 || x == 0 || y == in.Height-1 || x == in.Width-1 {
				continue
			}
			n := int(in.At(x, y-1))
			s := int(in.At(x, y+1))
			w := int(in.At(x-1, y))
			e := int(in.At(x+1, y))
			nw := int(in.At(x-1, y-1))
			se := int(in.At(x+1, y+1))
			ne := int(in.At(x+1, y-1))
			sw := int(in.At(x-1, y+1))

			ns := n + s
			ew := w + e
			nwse := nw + se
			nesw := ne + sw
			center := int(in.At(x, y))

			switch {
			case ns >= ew && ns >= nwse && ns >= nesw:
				if center > n && center >= s {
					out.Set(x, y, byte(center))
				}
			case ew >= nwse && ew >= nesw:
				if center > w && center >= e {
					out.Set(x, y, byte(center))
				}
			case nwse >= nesw:
				if center > nw && center >= se {
					out.Set(x, y, byte(center))
				}
			default:
				if center > ne && center >= sw {
					out.Set(x, y, byte(center))
				}
			}
		}
	}
	return out
}

// Hysteresis keeps strong edges (> high) outright, keeps weak edges
// (low < v <= high) only when an 8-neighbor exceeds high, and zeroes
// everything else, including the border. Comparisons are strict (>) at
// both thresholds; this is a single-pass approximation of Canny's
// recursive connectivity and deliberately does not chain weak pixels
// through other weak pixels.
func Hysteresis(in *Image, low, high byte) *Image {
	out := NewImage(in.Width, in.Height)
	for y := 1; y < in.Height-1; y++ {
		for x := 1; x < in.Width-1; x++ {
			center := in.At(x, y)
			switch {
			case center > high:
				out.Set(x, y, center)
			case center > low:
				if hasStrongNeighbor(in, x, y, high) {
					out.Set(x, y, center)
				}
			}
		}
	}
	return out
}

func hasStrongNeighbor(in *Image, x, y int, high byte) bool {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if in.At(x+dx, y+dy) > high {
				return true
			}
		}
	}
	return false
}

// ROIMode selects which split-row policy the region-of-interest mask
// uses. The source program carries both: the hardware-bound low-res path
// zeroes everything below height/3, the high-res reference path zeroes
// everything below height/2.
type ROIMode int

const (
	// ROISplitThird zeroes rows with y > height/3, keeping the remainder
	// (the low-res, hardware-matching policy).
	ROISplitThird ROIMode = iota
	// ROISplitHalf zeroes rows with y > height/2, keeping the top half
	// as-is (the high-res reference policy).
	ROISplitHalf
)

// ApplyROI zeros every row outside the region of interest selected by
// mode, leaving the rest of the frame untouched. It is idempotent:
// applying it twice in a row yields the same buffer as applying it once.
func ApplyROI(in *Image, mode ROIMode) *Image {
	out := NewImage(in.Width, in.Height)
	switch mode {
	case ROISplitHalf:
		split := in.Height / 2
		for y := 0; y < in.Height; y++ {
			if y > split {
				continue
			}
			copy(out.Pix[y*in.Width:(y+1)*in.Width], in.Pix[y*in.Width:(y+1)*in.Width])
		}
	default: // ROISplitThird
		split := in.Height / 3
		for y := 0; y < in.Height; y++ {
			if y > split {
				continue
			}
			copy(out.Pix[y*in.Width:(y+1)*in.Width], in.Pix[y*in.Width:(y+1)*in.Width])
		}
	}
	return out
}
