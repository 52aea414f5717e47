// Package color converts HSV byte triples to RGB for the animation effects.
package color

// HSVToRGB converts h,s,v in [0,255] to r,g,b in [0,255].
// Hue wraps around the full circle (h is a fraction of it, mod 256).
// Channels are truncated, not rounded; receivers calibrated against the
// reference sender depend on the exact bytes.
func HSVToRGB(h, s, v uint8) (r, g, b uint8) {
	hf := float64(h) / 255.0
	sf := float64(s) / 255.0
	vf := float64(v) / 255.0

	if s == 0 {
		c := uint8(vf * 255.0)
		return c, c, c
	}

	i := int(hf * 6.0)
	f := hf*6.0 - float64(i)
	p := vf * (1.0 - sf)
	q := vf * (1.0 - f*sf)
	t := vf * (1.0 - (1.0-f)*sf)

	var rf, gf, bf float64
	switch i % 6 {
	case 0:
		rf, gf, bf = vf, t, p
	case 1:
		rf, gf, bf = q, vf, p
	case 2:
		rf, gf, bf = p, vf, t
	case 3:
		rf, gf, bf = p, q, vf
	case 4:
		rf, gf, bf = t, p, vf
	case 5:
		rf, gf, bf = vf, p, q
	}
	return uint8(rf * 255.0), uint8(gf * 255.0), uint8(bf * 255.0)
}
