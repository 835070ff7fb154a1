package sixpack

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// nodeIDCounter is a plain counter (no atomic — sixpack is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// Node is the scene graph element instruments are built from. A single flat
// struct covers groups, solid-color meshes, and text labels, avoiding
// interface dispatch on the per-frame path.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Transform (local). Rotation is in radians; with Y-down screen
	// coordinates a positive rotation turns clockwise, matching the clock
	// angle convention used by dial faces.
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
	PivotX, PivotY float64

	// Computed during traversal
	worldTransform [6]float64
	transformDirty bool

	// Visibility & interaction
	Visible      bool
	Interactable bool
	HitShape     HitShape

	// Mesh fields (NodeTypeMesh). Vertex positions are local coordinates;
	// the renderer applies the world transform at draw time.
	Vertices         []ebiten.Vertex
	Indices          []uint16
	transformedVerts []ebiten.Vertex

	// Label fields (NodeTypeLabel)
	labelImage           *ebiten.Image
	labelOffX, labelOffY float64

	// Metadata
	UserData any

	disposed bool
}

func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.ScaleX = 1
	n.ScaleY = 1
	n.Visible = true
	n.transformDirty = true
}

// NewGroup creates a group node with no visual representation.
func NewGroup(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeGroup}
	nodeDefaults(n)
	return n
}

// NewMeshNode creates a node that renders solid-color triangles.
// Shape constructors in render.go build the vertex data.
func NewMeshNode(name string, vertices []ebiten.Vertex, indices []uint16) *Node {
	n := &Node{Name: name, Type: NodeTypeMesh, Vertices: vertices, Indices: indices}
	nodeDefaults(n)
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children. Later children draw on
// top of earlier ones and win hit testing.
// Panics if child is nil, already parented, disposed, or an ancestor of n.
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("sixpack: cannot add nil child")
	}
	if n.disposed || child.disposed {
		panic("sixpack: AddChild on a disposed node")
	}
	if child.Parent != nil {
		panic("sixpack: child already has a parent")
	}
	if isAncestor(child, n) {
		panic("sixpack: adding child would create a cycle")
	}
	child.Parent = n
	n.children = append(n.children, child)
	markSubtreeDirty(child)
}

// AddChildAt inserts child at the given index in the draw order. Panics on
// the same conditions as AddChild, or when index is out of [0, len].
func (n *Node) AddChildAt(index int, child *Node) {
	if index < 0 || index > len(n.children) {
		panic("sixpack: child index out of range")
	}
	n.AddChild(child)
	copy(n.children[index+1:], n.children[index:])
	n.children[index] = child
}

// RemoveChild detaches child from this node.
// Panics if child.Parent != n.
func (n *Node) RemoveChild(child *Node) {
	if child == nil || child.Parent != n {
		panic("sixpack: child's parent is not this node")
	}
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			break
		}
	}
	child.Parent = nil
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	n.Parent.RemoveChild(n)
}

// Children returns the child list. The returned slice MUST NOT be mutated.
func (n *Node) Children() []*Node {
	return n.children
}

// --- Disposal ---

// Dispose removes this node from its parent, marks it as disposed, and
// recursively disposes all descendants. Disposing twice is a no-op so that
// owners can dispose subtrees without tracking overlap.
func (n *Node) Dispose() {
	if n.disposed {
		return
	}
	n.RemoveFromParent()
	n.dispose()
}

func (n *Node) dispose() {
	n.disposed = true
	n.ID = 0
	for _, child := range n.children {
		child.Parent = nil
		child.dispose()
	}
	n.children = nil
	n.Parent = nil
	n.HitShape = nil
	n.Vertices = nil
	n.Indices = nil
	n.transformedVerts = nil
	if n.labelImage != nil {
		n.labelImage.Deallocate()
		n.labelImage = nil
	}
	n.UserData = nil
}

// IsDisposed returns true if this node has been disposed.
func (n *Node) IsDisposed() bool {
	return n.disposed
}

// --- Containment & hit testing ---

// isAncestor reports whether candidate is node or an ancestor of node.
// This is the containment query behind non-capturing event routing.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// nodeContainsLocal tests whether (lx, ly) falls inside a node's hit region.
// Nodes without a HitShape are not hit-testable.
func nodeContainsLocal(n *Node, lx, ly float64) bool {
	if n.HitShape == nil {
		return false
	}
	return n.HitShape.Contains(lx, ly)
}

// HitTest finds the topmost interactable node under root at the world-space
// point. Returns nil if nothing is hit. Subtrees with Visible or
// Interactable false are skipped entirely.
func HitTest(root *Node, world Vec2) *Node {
	return hitTestNode(root, world)
}

func hitTestNode(n *Node, world Vec2) *Node {
	if !n.Visible || !n.Interactable {
		return nil
	}
	// Later children draw on top, so test them first, in reverse order.
	for i := len(n.children) - 1; i >= 0; i-- {
		if hit := hitTestNode(n.children[i], world); hit != nil {
			return hit
		}
	}
	lx, ly := n.WorldToLocal(world.X, world.Y)
	if nodeContainsLocal(n, lx, ly) {
		return n
	}
	return nil
}
