package control

import "github.com/go-gl/mathgl/mgl32"

// ScreenDeltaToWorldDelta maps a 2D screen-space drag delta to a 3D world
// delta through a fixed scale factor. Screen Y grows downward while world Y
// grows upward, so the vertical axis is inverted; Z stays 0 because dragging
// operates in the camera's local XY plane only.
func ScreenDeltaToWorldDelta(screenDelta mgl32.Vec2, scale float32) mgl32.Vec3 {
	return mgl32.Vec3{
		screenDelta.X() * scale,
		-screenDelta.Y() * scale,
		0,
	}
}

// Session ties one character's control mode to its marker registry and drag
// scale for the lifetime of a rig setup.
type Session struct {
	Mode      Mode
	Markers   *MarkerRegistry
	DragScale float32
}

// NewSession returns a session in the given mode with an empty registry.
func NewSession(mode Mode, dragScale float32) *Session {
	return &Session{
		Mode:      mode,
		Markers:   NewMarkerRegistry(),
		DragScale: dragScale,
	}
}

// ResolveDrag routes a drag event to a joint. It returns the joint index and
// world-space delta, or ok=false when the marker is unknown, not draggable,
// or the session is in ragdoll mode (where joints are owned by the physics
// engine and only the kinematic root may be moved).
func (s *Session) ResolveDrag(markerID string, screenDelta mgl32.Vec2) (jointIndex int, worldDelta mgl32.Vec3, ok bool) {
	if s.Mode == ModeRagdoll {
		return 0, mgl32.Vec3{}, false
	}
	jointIndex, ok = s.Markers.DragTarget(markerID)
	if !ok {
		return 0, mgl32.Vec3{}, false
	}
	return jointIndex, ScreenDeltaToWorldDelta(screenDelta, s.DragScale), true
}
