// Package pose provides direct control over an externally owned skeletal
// pose buffer: a flat, index-addressable array of per-joint transforms.
// The asset system that produced the buffer keeps owning it; this package
// reads and overwrites it in place.
package pose

import "github.com/go-gl/mathgl/mgl32"

// RootJoint is the index of the root joint. Translating it moves the whole
// character because every other joint is expressed relative to it in the
// consuming animation system.
const RootJoint = 0

// JointTransform is one joint's transform inside a skeletal pose.
type JointTransform struct {
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       mgl32.Vec3
}

// SkeletalPose is a fixed-length ordered sequence of joint transforms. The
// index is the stable joint identity used by all control code.
type SkeletalPose []JointTransform
