package common

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// PixelsPerMeter converts physics units to screen pixels.
	PixelsPerMeter = 100.0
	// StandardGravity is Earth gravity in metres per second squared.
	StandardGravity = 9.81
)
