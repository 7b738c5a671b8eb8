package orientation

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/qmuntal/gltf"
)

// Matrix34FromGLTFNode returns the local transform of a glTF node. If the node carries a matrix other than identity,
// that matrix is used; otherwise the transform is composed from the node's translation, rotation and scale, with the
// scale folded into the Matrix34's M. The TRS values are used as given: decoding fills in the glTF defaults for absent
// properties, so nodes built by hand should start from gltf.DefaultRotation and gltf.DefaultScale.
func Matrix34FromGLTFNode(node *gltf.Node) Matrix34 {

	out := NewMatrix34()

	if node.Matrix != [16]float64{} && node.Matrix != gltf.DefaultMatrix {
		out.SetColumnMajor44_64(node.Matrix[:])
		return out
	}

	rotation := Quaternion{}
	rotation.SetXYZWSlice64(node.Rotation[:])

	scale := Vector3{float32(node.Scale[0]), float32(node.Scale[1]), float32(node.Scale[2])}

	out.M.SetFromQuaternion(rotation)
	out.M.MultiplyDiagonal(scale)
	out.T = Vector3{float32(node.Translation[0]), float32(node.Translation[1]), float32(node.Translation[2])}

	return out

}

// ToGLTFNode writes the Matrix34 into the glTF node as a column-major matrix, resetting the node's translation,
// rotation and scale to their defaults so the two representations do not conflict.
func (matrix Matrix34) ToGLTFNode(node *gltf.Node) {
	matrix.ColumnMajor44_64(node.Matrix[:])
	node.Translation = [3]float64{}
	node.Rotation = gltf.DefaultRotation
	node.Scale = gltf.DefaultScale
}

// GLTFTransforms holds the transforms of every node in a glTF document, keyed by node name. Unnamed nodes are keyed by
// "#" followed by their index; if two nodes share a name, the later one wins.
type GLTFTransforms struct {
	Local map[string]Matrix34 // Transform relative to the node's parent
	World map[string]Matrix34 // Transform relative to the scene root
}

func gltfNodeName(doc *gltf.Document, index int) string {
	if name := doc.Nodes[index].Name; name != "" {
		return name
	}
	return "#" + strconv.Itoa(index)
}

// LoadGLTFTransforms decodes a .gltf or .glb file from the byte data given and returns the local and world transforms
// of each of its nodes. World transforms are composed parent-first (world = parentWorld * local).
func LoadGLTFTransforms(data []byte) (*GLTFTransforms, error) {

	decoder := gltf.NewDecoder(bytes.NewReader(data))

	doc := gltf.NewDocument()

	if err := decoder.Decode(doc); err != nil {
		return nil, fmt.Errorf("decoding gltf data: %w", err)
	}

	return GLTFDocumentTransforms(doc)

}

// GLTFDocumentTransforms returns the local and world transforms of each node in an already-decoded glTF document.
// An error is returned if a node lists a child index out of range, or if the node hierarchy contains a cycle.
func GLTFDocumentTransforms(doc *gltf.Document) (*GLTFTransforms, error) {

	transforms := &GLTFTransforms{
		Local: make(map[string]Matrix34, len(doc.Nodes)),
		World: make(map[string]Matrix34, len(doc.Nodes)),
	}

	hasParent := make([]bool, len(doc.Nodes))

	for i, node := range doc.Nodes {
		for _, child := range node.Children {
			c := int(child)
			if c < 0 || c >= len(doc.Nodes) {
				return nil, fmt.Errorf("gltf node %q: child index %d out of range", gltfNodeName(doc, i), c)
			}
			hasParent[c] = true
		}
	}

	visited := make([]bool, len(doc.Nodes))

	var walk func(index int, parent *Matrix34) error

	walk = func(index int, parent *Matrix34) error {

		if visited[index] {
			return fmt.Errorf("gltf node %q: %w", gltfNodeName(doc, index), ErrCycle)
		}
		visited[index] = true

		node := doc.Nodes[index]
		name := gltfNodeName(doc, index)

		local := Matrix34FromGLTFNode(node)
		world := local
		if parent != nil {
			world.SetMultiply(parent, &local)
		}

		transforms.Local[name] = local
		transforms.World[name] = world

		for _, child := range node.Children {
			if err := walk(int(child), &world); err != nil {
				return err
			}
		}

		return nil

	}

	for i := range doc.Nodes {
		if !hasParent[i] {
			if err := walk(i, nil); err != nil {
				return nil, err
			}
		}
	}

	// Nodes that were never reached sit on a parent cycle with no root.
	for i := range doc.Nodes {
		if !visited[i] {
			return nil, fmt.Errorf("gltf node %q: %w", gltfNodeName(doc, i), ErrCycle)
		}
	}

	return transforms, nil

}
