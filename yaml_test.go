package orientation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestYAMLVector(t *testing.T) {

	out, err := yaml.Marshal(Vector3{1, -2.5, 3})
	require.NoError(t, err)
	assert.Equal(t, "[1, -2.5, 3]\n", string(out))

	v := Vector3{}
	require.NoError(t, yaml.Unmarshal([]byte("[4, 5, 6]"), &v))
	assert.Equal(t, Vector3{4, 5, 6}, v)

	assert.Error(t, yaml.Unmarshal([]byte("[4, 5]"), &v))
	assert.Error(t, yaml.Unmarshal([]byte("{x: 1}"), &v))

}

func TestYAMLQuaternion(t *testing.T) {

	out, err := yaml.Marshal(Quaternion{0, 0, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, "[0, 0, 0, 1]\n", string(out))

	q := Quaternion{}
	require.NoError(t, yaml.Unmarshal([]byte("[0.5, 0.5, 0.5, 0.5]"), &q))
	assert.Equal(t, Quaternion{0.5, 0.5, 0.5, 0.5}, q)

	assert.Error(t, yaml.Unmarshal([]byte("[1, 2, 3]"), &q))

}

func TestYAMLTransformForms(t *testing.T) {

	tests := []struct {
		name string
		doc  string
		want Matrix34
	}{
		{
			name: "axis and angle",
			doc:  "axis: [0, 0, 3]\nangle: 90\ntranslation: [1, 2, 3]",
			want: NewMatrix34RT(NewMatrix33RotateZ(Pi/2), Vector3{1, 2, 3}),
		},
		{
			name: "quaternion",
			doc:  "rotation: [0, 0, 2, 0]\ntranslation: [0, 0, 1]",
			want: NewMatrix34RT(NewMatrix33RotateZ(Pi), Vector3{0, 0, 1}),
		},
		{
			name: "matrix",
			doc:  "matrix: [1, 2, 3, 4, 5, 6, 7, 8, 9]",
			want: NewMatrix34RT(Matrix33{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}}, Vector3{}),
		},
		{
			name: "translation only",
			doc:  "translation: [5, 0, 0]",
			want: NewMatrix34RT(NewMatrix33(), Vector3{5, 0, 0}),
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := Matrix34{}
			require.NoError(t, yaml.Unmarshal([]byte(test.doc), &got))
			assertTransformInDelta(t, test.want, got, testDelta)
		})
	}

}

func TestYAMLTransformErrors(t *testing.T) {

	docs := map[string]string{
		"two rotations":   "rotation: [0, 0, 0, 1]\nmatrix: [1, 0, 0, 0, 1, 0, 0, 0, 1]",
		"axis only":       "axis: [0, 1, 0]",
		"angle only":      "angle: 45",
		"zero axis":       "axis: [0, 0, 0]\nangle: 45",
		"zero quaternion": "rotation: [0, 0, 0, 0]",
		"short matrix":    "matrix: [1, 0, 0]",
		"bad translation": "translation: [1, 2]",
		"not a mapping":   "[1, 2, 3]",
	}

	for name, doc := range docs {
		t.Run(name, func(t *testing.T) {
			got := Matrix34{}
			assert.Error(t, yaml.Unmarshal([]byte(doc), &got))
		})
	}

}

func TestYAMLTransformRoundTrip(t *testing.T) {

	for _, tf := range randomTransforms(10, 17) {

		out, err := yaml.Marshal(tf)
		require.NoError(t, err)

		got := Matrix34{}
		require.NoError(t, yaml.Unmarshal(out, &got))
		assertTransformInDelta(t, tf, got, 1e-6)

	}

	// Transforms nested in other documents use the same form.
	doc := map[string]Matrix34{"a": NewMatrix34RT(NewMatrix33(), Vector3{1, 2, 3})}
	out, err := yaml.Marshal(doc)
	require.NoError(t, err)

	got := map[string]Matrix34{}
	require.NoError(t, yaml.Unmarshal(out, &got))
	assert.Equal(t, doc, got)

}
