package workout

// RestRemaining returns the seconds left of a rest period given how much of
// it has elapsed as a fraction. Fractions outside [0, 1] clamp; scheduling
// the ticks is the caller's concern.
func RestRemaining(durationSec, elapsedFraction float64) float64 {
	if elapsedFraction < 0 {
		elapsedFraction = 0
	}
	if elapsedFraction > 1 {
		elapsedFraction = 1
	}
	return durationSec * (1 - elapsedFraction)
}
