package dom

import "math"

// Sigmoid parameters: the score falls through 0.5 at 300px of separation.
const (
	nearCenter = 300.0
	nearScale  = 100.0
	// CloseThreshold is the score above which two elements count as close.
	CloseThreshold = 0.5
)

// Distance is the Euclidean distance between the centres of two boxes.
func Distance(a, b Element) float64 {
	ax, ay := a.Box().Center()
	bx, by := b.Box().Center()
	return math.Hypot(ax-bx, ay-by)
}

// Near scores how close two elements are on screen, in (0,1). It strictly
// decreases as their separation grows.
func Near(a, b Element) float64 {
	return NearScore(Distance(a, b))
}

// NearScore maps a separation in pixels to a nearness score.
// It equals 1 - sigmoid((d-300)/100), written so it stays above zero for
// large separations.
func NearScore(distance float64) float64 {
	return 1 / (1 + math.Exp((distance-nearCenter)/nearScale))
}

// CloseToAny reports whether el is close to at least one of fields.
func CloseToAny(el Element, fields []Element) bool {
	for _, f := range fields {
		if Near(el, f) > CloseThreshold {
			return true
		}
	}
	return false
}

// Nearest returns the candidate closest to el; ok is false for no candidates.
func Nearest(el Element, candidates []Element) (Element, bool) {
	var best Element
	bestDist := math.Inf(1)
	for _, c := range candidates {
		if d := Distance(el, c); d < bestDist {
			best, bestDist = c, d
		}
	}
	return best, len(candidates) > 0
}
