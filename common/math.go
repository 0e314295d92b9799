package common

// Logical resolution used when a scene does not specify its window.
const (
	BaseWidth  = 640
	BaseHeight = 480
)

func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
