package parameter

import "github.com/lixenwraith/dash-arena/vmath"

// Path Smoothing
const (
	// DedupDistanceSqFloat collapses consecutive points closer than sqrt(0.01) units
	DedupDistanceSqFloat = 0.01

	// SplineTensionFloat is the cardinal spline tangent scale (0.5 = Catmull-Rom)
	SplineTensionFloat = 0.5

	// SplineSubdivisions is the number of sub-segments per spline segment
	SplineSubdivisions = 3
)

// Drawing Feedback
const (
	// DrawParticleDensityFloat is the ribbon particle density while drawing
	DrawParticleDensityFloat = 0.5

	// DrawRibbonWidthFloat is the jitter half-width of the drawing ribbon
	DrawRibbonWidthFloat = 0.2
)

// Fixed-point forms
var (
	DedupDistanceSq     = vmath.FromFloat(DedupDistanceSqFloat)
	SplineTension       = vmath.FromFloat(SplineTensionFloat)
	DrawParticleDensity = vmath.FromFloat(DrawParticleDensityFloat)
	DrawRibbonWidth     = vmath.FromFloat(DrawRibbonWidthFloat)
)
