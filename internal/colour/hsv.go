package colour

import (
	"math"

	"github.com/wheelibin/kasactl/internal/models"
)

// RGBToHSV converts 8-bit RGB to hue in degrees [0,360) and saturation/value
// as percentages. Greys have hue and saturation 0.
func RGBToHSV(c models.RGB) models.HSV {
	r := float64(c.R) / 255.0
	g := float64(c.G) / 255.0
	b := float64(c.B) / 255.0

	maxc := math.Max(r, math.Max(g, b))
	minc := math.Min(r, math.Min(g, b))
	v := maxc * 100

	if minc == maxc {
		return models.HSV{Hue: 0, Saturation: 0, Value: v}
	}

	delta := maxc - minc
	s := delta / maxc * 100
	rc := (maxc - r) / delta
	gc := (maxc - g) / delta
	bc := (maxc - b) / delta

	var h float64
	switch {
	case r == maxc:
		h = bc - gc
	case g == maxc:
		h = 2.0 + rc - bc
	default:
		h = 4.0 + gc - rc
	}

	// floored modulo so negative hues (magenta side of red) wrap round
	h = h / 6.0
	h = h - math.Floor(h)

	return models.HSV{Hue: h * 360, Saturation: s, Value: v}
}
