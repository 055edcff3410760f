package scenegraph

import (
	"github.com/go-gl/mathgl/mgl64"
)

// Euler is a rotation in radians applied in X, Y, Z order (matrix Rx·Ry·Rz).
// Angles accumulate without renormalisation; only the value modulo 2π is visible.
type Euler struct {
	X, Y, Z float64
}

// Node is a transform in the scene hierarchy. Position and Rotation are relative to the parent.
// A node without a Mesh is a pure pivot: it only moves its children.
type Node struct {
	Name     string
	Position mgl64.Vec3
	Rotation Euler
	Scale    mgl64.Vec3
	Mesh     *Mesh

	parent   *Node
	children []*Node
}

// NewNode returns a node at the origin with unit scale and no mesh.
func NewNode(name string) *Node {
	return &Node{Name: name, Scale: mgl64.Vec3{1, 1, 1}}
}

// NewMeshNode returns a node that draws mesh.
func NewMeshNode(name string, mesh *Mesh) *Node {
	n := NewNode(name)
	n.Mesh = mesh
	return n
}

// Add parents child to n. A child that already has a parent is moved.
func (n *Node) Add(child *Node) {
	if child.parent != nil {
		child.parent.remove(child)
	}
	child.parent = n
	n.children = append(n.children, child)
}

func (n *Node) remove(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

// Parent returns the parent node, or nil for the root or a detached node.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children returns the direct children in insertion order. The slice must not be modified.
func (n *Node) Children() []*Node {
	return n.children
}

// Local returns the parent-relative transform: translate · Rx · Ry · Rz · scale.
func (n *Node) Local() mgl64.Mat4 {
	t := mgl64.Translate3D(n.Position[0], n.Position[1], n.Position[2])
	r := mgl64.HomogRotate3DX(n.Rotation.X).
		Mul4(mgl64.HomogRotate3DY(n.Rotation.Y)).
		Mul4(mgl64.HomogRotate3DZ(n.Rotation.Z))
	s := mgl64.Scale3D(n.Scale[0], n.Scale[1], n.Scale[2])
	return t.Mul4(r).Mul4(s)
}

// World returns the transform from this node's space to scene space.
func (n *Node) World() mgl64.Mat4 {
	m := n.Local()
	for p := n.parent; p != nil; p = p.parent {
		m = p.Local().Mul4(m)
	}
	return m
}

// WorldPosition returns the node origin in scene space.
func (n *Node) WorldPosition() mgl64.Vec3 {
	return mgl64.TransformCoordinate(mgl64.Vec3{}, n.World())
}

// Walk calls fn for n and every descendant, depth first, passing the world matrix of each node.
// Parent matrices are reused so each node's local transform is computed once per walk.
func (n *Node) Walk(fn func(node *Node, world mgl64.Mat4)) {
	n.walk(mgl64.Ident4(), fn)
}

func (n *Node) walk(parentWorld mgl64.Mat4, fn func(*Node, mgl64.Mat4)) {
	world := parentWorld.Mul4(n.Local())
	fn(n, world)
	for _, c := range n.children {
		c.walk(world, fn)
	}
}

// Scene is the root of the hierarchy. It is built once at startup and lives for the process.
type Scene struct {
	Root *Node
}

// NewScene returns a scene with an empty root.
func NewScene() *Scene {
	return &Scene{Root: NewNode("root")}
}

// Add parents n to the scene root.
func (s *Scene) Add(n *Node) {
	s.Root.Add(n)
}

// Count returns the number of nodes in the scene, including the root.
func (s *Scene) Count() int {
	count := 0
	s.Root.Walk(func(*Node, mgl64.Mat4) { count++ })
	return count
}
