package common

// Logical screen size. The window scales this to fit.
const (
	BaseWidth  = 640
	BaseHeight = 360
)

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}
