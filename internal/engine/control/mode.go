// Package control routes interactive 2D drag input to joint-indexed
// operations: screen-to-world delta mapping, the marker registry, and the
// per-character control mode.
package control

// Mode selects which system owns a character's joints. Exactly one mode is
// active per character instance; the rigid-body ragdoll and the pose-buffer
// paths must never drive the same joints at the same time.
type Mode uint8

const (
	// ModeRagdoll: the character is simulated rigid bodies; input moves only
	// the kinematic root.
	ModeRagdoll Mode = iota
	// ModePuppet: drag input rotates pose-buffer joints directly.
	ModePuppet
	// ModeIKDrag: drag input moves a wrist target resolved through two-bone
	// IK into the pose buffer.
	ModeIKDrag
)

func (m Mode) String() string {
	switch m {
	case ModeRagdoll:
		return "ragdoll"
	case ModePuppet:
		return "puppet"
	case ModeIKDrag:
		return "ikdrag"
	}
	return "unknown"
}
