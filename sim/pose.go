package sim

import (
	"math"

	"github.com/wippyai/openxr/abi"
)

// Simulated tracking: the head rests at eye height above the stage
// origin, and local space is centered on the head's rest position.
const (
	eyeHeight     = 1.6
	halfIPD       = 0.0315
	halfFovRadian = math.Pi / 4
)

func referenceOrigin(t abi.ReferenceSpaceType) abi.Posef {
	switch t {
	case abi.ReferenceSpaceView, abi.ReferenceSpaceLocal:
		return abi.Posef{Orientation: abi.Quaternionf{W: 1}, Position: abi.Vector3f{Y: eyeHeight}}
	default:
		return abi.IdentityPose
	}
}

func mulQuat(a, b abi.Quaternionf) abi.Quaternionf {
	return abi.Quaternionf{
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
	}
}

func conjugate(q abi.Quaternionf) abi.Quaternionf {
	return abi.Quaternionf{X: -q.X, Y: -q.Y, Z: -q.Z, W: q.W}
}

func rotate(q abi.Quaternionf, v abi.Vector3f) abi.Vector3f {
	p := mulQuat(mulQuat(q, abi.Quaternionf{X: v.X, Y: v.Y, Z: v.Z}), conjugate(q))
	return abi.Vector3f{X: p.X, Y: p.Y, Z: p.Z}
}

// compose returns b expressed in the frame that a is expressed in.
func compose(a, b abi.Posef) abi.Posef {
	r := rotate(a.Orientation, b.Position)
	return abi.Posef{
		Orientation: mulQuat(a.Orientation, b.Orientation),
		Position: abi.Vector3f{
			X: a.Position.X + r.X,
			Y: a.Position.Y + r.Y,
			Z: a.Position.Z + r.Z,
		},
	}
}

func invert(p abi.Posef) abi.Posef {
	q := conjugate(p.Orientation)
	t := rotate(q, p.Position)
	return abi.Posef{Orientation: q, Position: abi.Vector3f{X: -t.X, Y: -t.Y, Z: -t.Z}}
}

// relative returns pose in base's frame, both given in world space.
func relative(base, pose abi.Posef) abi.Posef {
	return compose(invert(base), pose)
}

// validPose requires a unit orientation.
func validPose(p abi.Posef) bool {
	q := p.Orientation
	n := float64(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	return math.Abs(n-1) < 1e-3
}

func eyeFov() abi.Fovf {
	return abi.Fovf{
		AngleLeft:  -halfFovRadian,
		AngleRight: halfFovRadian,
		AngleUp:    halfFovRadian,
		AngleDown:  -halfFovRadian,
	}
}

// eyeOffsets returns the per-view offsets from the head for a view
// configuration, left eye first.
func eyeOffsets(t abi.ViewConfigurationType) []abi.Posef {
	switch t {
	case abi.ViewConfigurationPrimaryMono:
		return []abi.Posef{abi.IdentityPose}
	case abi.ViewConfigurationPrimaryStereo:
		return []abi.Posef{
			{Orientation: abi.Quaternionf{W: 1}, Position: abi.Vector3f{X: -halfIPD}},
			{Orientation: abi.Quaternionf{W: 1}, Position: abi.Vector3f{X: halfIPD}},
		}
	}
	return nil
}
