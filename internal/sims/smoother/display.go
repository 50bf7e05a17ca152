package smoother

import "image/color"

// Palette maps cell values to a grayscale ramp spanning [0, MaxValue). Values
// at or above MaxValue use the last entry.
func (s *Sim) Palette() []color.RGBA {
	return grayRamp(s.cfg.MaxValue)
}

func grayRamp(n int) []color.RGBA {
	if n <= 0 || n > 256 {
		n = 256
	}
	palette := make([]color.RGBA, n)
	if n == 1 {
		palette[0] = color.RGBA{A: 255}
		return palette
	}
	for i := range palette {
		v := uint8(i * 255 / (n - 1))
		palette[i] = color.RGBA{R: v, G: v, B: v, A: 255}
	}
	return palette
}
