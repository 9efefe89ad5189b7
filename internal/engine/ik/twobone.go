// Package ik implements the analytic two-bone inverse kinematics solver used
// for end-effector dragging (upper arm + forearm toward a wrist target).
package ik

import (
	gomath "math"

	"github.com/go-gl/mathgl/mgl32"
)

// Result holds one solve: the effective effector position after reach
// clamping, the elbow position, and the orientations of both segments.
// Recomputed every call, never stored.
type Result struct {
	Target      mgl32.Vec3
	Elbow       mgl32.Vec3
	ShoulderRot mgl32.Quat
	ElbowRot    mgl32.Quat
}

// Solver configures the bend-plane convention. The solver itself is
// stateless; Solve is a pure function safe to call every frame.
type Solver struct {
	// BendAxis is the fixed world axis that, crossed with the shoulder-to-
	// target direction, picks which side the elbow bends toward. It must be
	// consistent per limb since the solver knows nothing about natural joint
	// preference.
	BendAxis mgl32.Vec3
	// RestDir is the canonical rest direction of a segment; the returned
	// orientations rotate RestDir onto the actual segment directions.
	RestDir mgl32.Vec3
}

// NewSolver returns a solver bending toward the front of the body for
// segments resting along +X.
func NewSolver() Solver {
	return Solver{
		BendAxis: mgl32.Vec3{0, 0, 1},
		RestDir:  mgl32.Vec3{1, 0, 0},
	}
}

// Solve computes the elbow position and segment orientations for a fixed
// shoulder anchor and a target point, by the law of cosines in a single bend
// plane.
//
// Unreachable targets are clamped into the chain's reachable annulus
// [|upper-lower|, upper+lower] along the same direction; this is the only
// defined behavior for them, and it happens continuously during normal
// dragging, so it is not an error.
func (s Solver) Solve(shoulder, target mgl32.Vec3, upperLen, lowerLen float32) Result {
	toTarget := target.Sub(shoulder)
	dist := toTarget.Len()

	dir := s.RestDir
	if dist > 1e-6 {
		dir = toTarget.Mul(1 / dist)
	}

	minReach := upperLen - lowerLen
	if minReach < 0 {
		minReach = -minReach
	}
	dist = mgl32.Clamp(dist, minReach, upperLen+lowerLen)
	// Equal segment lengths make the minimum reach zero; floor the distance
	// so the law-of-cosines denominator below never divides by zero and the
	// chain folds back onto the shoulder instead of going NaN.
	if dist < 1e-5 {
		dist = 1e-5
	}
	clamped := shoulder.Add(dir.Mul(dist))

	// Angle between the upper segment and the shoulder-to-target line.
	cosA := (upperLen*upperLen + dist*dist - lowerLen*lowerLen) / (2 * upperLen * dist)
	angle := float32(gomath.Acos(float64(mgl32.Clamp(cosA, -1, 1))))

	perp := dir.Cross(s.BendAxis)
	if perp.Len() < 1e-6 {
		// Target lies along the bend axis; any perpendicular will do.
		perp = dir.Cross(mgl32.Vec3{0, 1, 0})
		if perp.Len() < 1e-6 {
			perp = dir.Cross(mgl32.Vec3{1, 0, 0})
		}
	}
	perp = perp.Normalize()

	sin := float32(gomath.Sin(float64(angle)))
	cos := float32(gomath.Cos(float64(angle)))
	elbow := shoulder.Add(dir.Mul(upperLen * cos)).Add(perp.Mul(upperLen * sin))

	return Result{
		Target:      clamped,
		Elbow:       elbow,
		ShoulderRot: segmentRotation(s.RestDir, elbow.Sub(shoulder)),
		ElbowRot:    segmentRotation(s.RestDir, clamped.Sub(elbow)),
	}
}

// segmentRotation returns the rotation taking the canonical rest direction
// onto a segment direction.
func segmentRotation(restDir, segment mgl32.Vec3) mgl32.Quat {
	if segment.Len() < 1e-6 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatBetweenVectors(restDir, segment.Normalize()).Normalize()
}
