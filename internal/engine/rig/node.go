// Package rig builds articulated rigid-body hierarchies ("ragdolls") and the
// joint constraints connecting them. The resulting ArticulatedRig is plain
// data handed to an external physics engine; nothing in this package steps a
// simulation.
package rig

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

// BodyMode controls how the physics engine treats a rigid body.
type BodyMode uint8

const (
	// ModeKinematic bodies are positioned directly by game code. Forces and
	// constraint solving never move them, but they push dynamic bodies
	// connected to them. The ragdoll root is always kinematic.
	ModeKinematic BodyMode = iota
	// ModeDynamic bodies are fully simulated.
	ModeDynamic
	// ModeStatic bodies never move.
	ModeStatic
)

func (m BodyMode) String() string {
	switch m {
	case ModeKinematic:
		return "kinematic"
	case ModeDynamic:
		return "dynamic"
	case ModeStatic:
		return "static"
	}
	return "unknown"
}

// PartRole tags a body part for stability normalization. The torso gets a
// smaller collider fraction than limbs because it anchors many joints and
// must not overlap any of them at rest.
type PartRole uint8

const (
	RoleTorso PartRole = iota
	RoleHead
	RoleLimb
)

func (r PartRole) String() string {
	switch r {
	case RoleTorso:
		return "torso"
	case RoleHead:
		return "head"
	case RoleLimb:
		return "limb"
	}
	return "unknown"
}

// MarshalYAML encodes the role as its string name.
func (r PartRole) MarshalYAML() (interface{}, error) {
	return r.String(), nil
}

// UnmarshalYAML decodes a role from its string name.
func (r *PartRole) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	switch s {
	case "torso":
		*r = RoleTorso
	case "head":
		*r = RoleHead
	case "limb":
		*r = RoleLimb
	default:
		return fmt.Errorf("unknown part role %q", s)
	}
	return nil
}

// BodyPartSpec describes one body segment of a character preset. Length and
// Radius are the visual capsule dimensions; the builder derives the (smaller)
// collider from them. Specs are plain caller-supplied data and are never
// mutated by the builder.
type BodyPartSpec struct {
	Name      string   `yaml:"name"`
	Parent    string   `yaml:"parent,omitempty"` // empty for the root segment
	Length    float32  `yaml:"length"`
	Radius    float32  `yaml:"radius"`
	Mass      float32  `yaml:"mass"`
	Role      PartRole `yaml:"role"`
	Extremity bool     `yaml:"extremity,omitempty"`
}

// RigidBodyNode is one simulated segment of an assembled rig. After Build
// returns, dynamic nodes are mutated only by the physics engine; the
// kinematic root may be positioned directly by game code.
type RigidBodyNode struct {
	Name   string
	Parent string // empty for the root

	// Local transform relative to the parent node's frame.
	Translation mgl32.Vec3
	Rotation    mgl32.Quat
	Scale       float32

	// Capsule collider, already stability-normalized.
	ColliderRadius     float32
	ColliderHalfHeight float32

	Mass float32
	Mode BodyMode

	AngularDamping float32
	LinearDamping  float32

	StaticFriction  float32
	DynamicFriction float32
	Restitution     float32
}

// ArticulatedRig is an ordered collection of rigid-body nodes plus the joint
// constraints connecting them. Nodes are stored root-first; the node graph is
// a tree rooted at the single kinematic node.
type ArticulatedRig struct {
	Nodes       []*RigidBodyNode
	Constraints []JointConstraint

	byName map[string]*RigidBodyNode
}

// Root returns the kinematic root node.
func (r *ArticulatedRig) Root() *RigidBodyNode {
	if len(r.Nodes) == 0 {
		return nil
	}
	return r.Nodes[0]
}

// Node looks up a node by name, returning nil when the part was omitted from
// the preset.
func (r *ArticulatedRig) Node(name string) *RigidBodyNode {
	return r.byName[name]
}

// Validate checks the structural invariants of the rig: exactly one root,
// every node reachable from it through parent links, and no cycles. A
// violation indicates a malformed body preset and is reported as an error
// rather than discovered later during simulation.
func (r *ArticulatedRig) Validate() error {
	if len(r.Nodes) == 0 {
		return fmt.Errorf("rig has no nodes")
	}

	roots := 0
	for _, n := range r.Nodes {
		if n.Parent == "" {
			roots++
		} else if r.byName[n.Parent] == nil {
			return fmt.Errorf("node %q references missing parent %q", n.Name, n.Parent)
		}
	}
	if roots != 1 {
		return fmt.Errorf("rig must have exactly one root, found %d", roots)
	}

	// Walk parent links from every node; revisiting a node on the same walk
	// means the parent links form a cycle.
	for _, n := range r.Nodes {
		seen := map[string]bool{}
		for cur := n; cur != nil; cur = r.byName[cur.Parent] {
			if seen[cur.Name] {
				return fmt.Errorf("cycle in parent links at node %q", cur.Name)
			}
			seen[cur.Name] = true
			if cur.Parent == "" {
				break
			}
		}
	}
	return nil
}
