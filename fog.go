package voxen

// FogPolicy selects how camera distance attenuates a fragment. The two
// fogged policies use opposite factor conventions and are deliberately
// kept apart; see FogAlpha and FogFactor.
type FogPolicy int

const (
	// FogNone disables fog entirely.
	FogNone FogPolicy = iota
	// FogAlphaFade fades distant fragments toward transparent black
	// using FogAlpha (1 = fully faded).
	FogAlphaFade
	// FogHardCutoff attenuates with FogFactor (1 = fully visible) and
	// discards fragments whose factor falls to the threshold or below.
	FogHardCutoff
)

// DefaultDiscardThreshold is the visibility floor below which the
// hard-cutoff policy drops fragments instead of blending them.
const DefaultDiscardThreshold = 0.1

// FogAlpha returns how faded a fragment at distance d is: 0 at or below
// start, 1 at or above end, a linear ramp between. 1 means fully faded.
func FogAlpha(start, end, d float64) float64 {
	if d <= start {
		return 0
	}
	if d >= end {
		return 1
	}
	return 1 - (end-d)/(end-start)
}

// FogFactor returns how visible a fragment at distance d is: 1 at or
// below start, 0 at or above end, a linear ramp between. This is the
// complement convention of FogAlpha (1 means fully visible) and the two
// must not be interchanged.
func FogFactor(start, end, d float64) float64 {
	if d <= start {
		return 1
	}
	if d >= end {
		return 0
	}
	return (end - d) / (end - start)
}
