package raster

// Config bundles the per-deployment knobs that vary between the low-res
// hardware target and the high-res floating-point reference path: frame
// dimensions, the Hough ρ resolution, the peak count kept per accumulator,
// and which ROI split policy to apply.
type Config struct {
	Width, Height int
	RhoResolution int
	RhoResLog     uint
	Rhos          int
	TopN          int
	ROIMode       ROIMode
}

// LowRes matches center.c: a 120x160 frame voted at ρ-resolution 4 over
// 50 ρ bins, keeping the top 16 peaks, masked by the height/3 split used
// by the hardware pipeline.
var LowRes = Config{
	Width:         160,
	Height:        120,
	RhoResolution: 4,
	RhoResLog:     2,
	Rhos:          50,
	TopN:          16,
	ROIMode:       ROISplitThird,
}

// HighRes matches lanedetect.c's floating-point reference path: a
// 720x540 frame voted at ρ-resolution 2 over 450 ρ bins, keeping the top
// 32 peaks, masked by the height/2 split.
var HighRes = Config{
	Width:         720,
	Height:        540,
	RhoResolution: 2,
	RhoResLog:     1,
	Rhos:          450,
	TopN:          32,
	ROIMode:       ROISplitHalf,
}
