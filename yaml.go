package orientation

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAML forms:
//
//	vector:     [x, y, z]
//	quaternion: [x, y, z, w]
//	transform:
//	  rotation: [x, y, z, w]     # or
//	  axis: [x, y, z]            # with
//	  angle: 90                  # degrees, or
//	  matrix: [9 entries, row-major]
//	  translation: [x, y, z]
//
// A transform with none of rotation, axis or matrix has an identity rotation.

func flowSequence(values []float32) (*yaml.Node, error) {
	node := &yaml.Node{}
	if err := node.Encode(values); err != nil {
		return nil, err
	}
	node.Style = yaml.FlowStyle
	return node, nil
}

func decodeFloats(value *yaml.Node, what string, count int) ([]float32, error) {
	values := []float32{}
	if err := value.Decode(&values); err != nil {
		return nil, fmt.Errorf("line %d: decoding %s: %w", value.Line, what, err)
	}
	if len(values) != count {
		return nil, fmt.Errorf("line %d: %s needs %d values, got %d", value.Line, what, count, len(values))
	}
	return values, nil
}

// MarshalYAML encodes the Vector3 as a flow sequence [x, y, z].
func (vec Vector3) MarshalYAML() (interface{}, error) {
	return flowSequence([]float32{vec.X, vec.Y, vec.Z})
}

// UnmarshalYAML decodes a Vector3 from a sequence of three numbers.
func (vec *Vector3) UnmarshalYAML(value *yaml.Node) error {
	values, err := decodeFloats(value, "vector", 3)
	if err != nil {
		return err
	}
	vec.X, vec.Y, vec.Z = values[0], values[1], values[2]
	return nil
}

// MarshalYAML encodes the Quaternion as a flow sequence [x, y, z, w].
func (q Quaternion) MarshalYAML() (interface{}, error) {
	xyzw := q.XYZW()
	return flowSequence(xyzw[:])
}

// UnmarshalYAML decodes a Quaternion from a sequence of four numbers in X, Y, Z, W order. The Quaternion is
// not normalized.
func (q *Quaternion) UnmarshalYAML(value *yaml.Node) error {
	values, err := decodeFloats(value, "quaternion", 4)
	if err != nil {
		return err
	}
	q.SetXYZWSlice(values)
	return nil
}

type matrix34YAML struct {
	Rotation    *Quaternion `yaml:"rotation,omitempty"`
	Axis        *Vector3    `yaml:"axis,omitempty"`
	Angle       *float32    `yaml:"angle,omitempty"`
	Matrix      []float32   `yaml:"matrix,omitempty,flow"`
	Translation Vector3     `yaml:"translation"`
}

// MarshalYAML encodes the Matrix34 as a mapping with a row-major `matrix` and a `translation`, which round-trips exactly.
func (matrix Matrix34) MarshalYAML() (interface{}, error) {
	out := matrix34YAML{
		Matrix:      make([]float32, 9),
		Translation: matrix.T,
	}
	matrix.M.RowMajor(out.Matrix)
	return out, nil
}

// UnmarshalYAML decodes a Matrix34 from a mapping. The rotation is given by exactly one of `rotation` (a quaternion,
// normalized on load), `axis` together with `angle` (in degrees), or `matrix` (9 row-major entries, taken as-is).
func (matrix *Matrix34) UnmarshalYAML(value *yaml.Node) error {

	raw := matrix34YAML{}
	if err := value.Decode(&raw); err != nil {
		return fmt.Errorf("line %d: decoding transform: %w", value.Line, err)
	}

	given := 0
	if raw.Rotation != nil {
		given++
	}
	if raw.Axis != nil || raw.Angle != nil {
		given++
	}
	if raw.Matrix != nil {
		given++
	}
	if given > 1 {
		return fmt.Errorf("line %d: transform may only set one of rotation, axis/angle or matrix", value.Line)
	}

	out := NewMatrix34()

	switch {

	case raw.Rotation != nil:
		q := raw.Rotation.Normalized()
		if q.MagnitudeSquared() == 0 {
			return fmt.Errorf("line %d: rotation quaternion is zero", value.Line)
		}
		out.M.SetFromQuaternion(q)

	case raw.Axis != nil || raw.Angle != nil:
		if raw.Axis == nil || raw.Angle == nil {
			return fmt.Errorf("line %d: axis and angle must be given together", value.Line)
		}
		if raw.Axis.IsZero() {
			return fmt.Errorf("line %d: rotation axis is zero", value.Line)
		}
		out.M.SetFromQuaternion(NewQuaternionAngleAxis(*raw.Angle, *raw.Axis))

	case raw.Matrix != nil:
		if len(raw.Matrix) != 9 {
			return fmt.Errorf("line %d: matrix needs 9 values, got %d", value.Line, len(raw.Matrix))
		}
		out.M.SetRowMajor(raw.Matrix)

	}

	out.T = raw.Translation
	*matrix = out

	return nil

}
