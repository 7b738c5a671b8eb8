// Package orientation is a small 3D rotation and rigid-transform kernel: Vector3s, unit Quaternions, 3x3 rotation
// matrices and 3x4 rigid transforms (a Matrix33 and a translation), all in float32.
//
// Values are cheap to copy; methods returning a new value can be chained, while the pointer-receiving Set functions
// write in place and accept the destination as one of their own arguments.
package orientation

import (
	"errors"

	"github.com/solarlune/orientation/math32"
)

const epsilon = 1e-5

// Pi is π, for use with the rotation constructors that take radians.
const Pi = math32.Pi

// ErrCycle is returned when a transform hierarchy (a glTF node tree or a rig chain) refers back to itself.
var ErrCycle = errors.New("transform hierarchy contains a cycle")

// ToRadians converts a value from degrees to radians.
func ToRadians(degrees float32) float32 {
	return math32.ToRadians(degrees)
}

// ToDegrees converts a value from radians to degrees.
func ToDegrees(radians float32) float32 {
	return math32.ToDegrees(radians)
}
