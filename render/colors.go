package render

import (
	"github.com/gdamore/tcell/v2"
)

// Palette
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38) // Tokyo Night background

	RgbTrailTail    = tcell.NewRGBColor(110, 20, 20)   // Dim red at the oldest point
	RgbTrailHead    = tcell.NewRGBColor(255, 60, 60)   // Bright red near the head
	RgbHeadMarker   = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbFood         = tcell.NewRGBColor(255, 220, 0)   // Yellow disc
	RgbObstacle     = tcell.NewRGBColor(200, 40, 40)   // Red fill
	RgbObstacleEdge = tcell.NewRGBColor(255, 255, 255) // White outline

	RgbHUDText    = tcell.NewRGBColor(0, 0, 0)       // Dark text on the plate
	RgbHUDPlate   = tcell.NewRGBColor(255, 0, 255)   // Magenta plate
	RgbOverlayBg  = tcell.NewRGBColor(128, 0, 128)   // Dark purple
	RgbOverlayFg  = tcell.NewRGBColor(255, 255, 255) // White
	RgbPromptText = tcell.NewRGBColor(255, 165, 0)   // Orange
)

// Trail gradient endpoints as components, matching RgbTrailTail and RgbTrailHead
var (
	trailTail = [3]int32{110, 20, 20}
	trailHead = [3]int32{255, 60, 60}
)

// TrailColor returns the trail color at progress from tail (0.0) to head (1.0)
func TrailColor(progress float64) tcell.Color {
	if progress <= 0.0 {
		return RgbTrailTail
	}
	if progress >= 1.0 {
		return RgbTrailHead
	}
	r := trailTail[0] + int32(float64(trailHead[0]-trailTail[0])*progress)
	g := trailTail[1] + int32(float64(trailHead[1]-trailTail[1])*progress)
	b := trailTail[2] + int32(float64(trailHead[2]-trailTail[2])*progress)
	return tcell.NewRGBColor(r, g, b)
}
