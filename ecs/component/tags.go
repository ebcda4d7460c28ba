package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type FPSOverlayTag struct{}

var FPSOverlayTagComponent = NewComponent[FPSOverlayTag]()

type GroundTag struct{}

var GroundTagComponent = NewComponent[GroundTag]()
