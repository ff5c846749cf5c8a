package genetics

import "math"

// Color is the RGBA encoding of the active forces. Channels are in
// display range [0,255]; Alpha is a [0.5,1.0] opacity.
type Color struct {
	R, G, B uint8
	Alpha   float64
}

// ColorEncoding maps four of the five forces onto a color: mutation to
// red, selection to green, gene flow to blue, drift to falling opacity.
// Recombination deliberately does not feed the encoding; the
// presentation layer renders it separately as a texture. That asymmetry
// is a fixed property of the model, not an omission.
func ColorEncoding(params ForceParams) Color {
	params = params.Clamped()
	return Color{
		R:     channel(params.MutationRate),
		G:     channel(params.SelectionStrength),
		B:     channel(params.GeneFlowRate),
		Alpha: 1 - params.DriftStrength/(2*ParamMax),
	}
}

func channel(force float64) uint8 {
	return uint8(math.Round(force / ParamMax * 255))
}
