package sixpack

import (
	"math"
	"testing"
)

func TestAddChildValidation(t *testing.T) {
	parent := NewGroup("parent")
	child := NewGroup("child")
	parent.AddChild(child)

	if child.Parent != parent {
		t.Fatal("child not parented")
	}
	expectPanic(t, "nil child", func() { parent.AddChild(nil) })
	expectPanic(t, "double parenting", func() { NewGroup("other").AddChild(child) })
	expectPanic(t, "cycle", func() { child.AddChild(parent) })
}

func TestAddChildAtInsertsInDrawOrder(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	c := NewGroup("c")
	parent.AddChild(a)
	parent.AddChild(c)

	b := NewGroup("b")
	parent.AddChildAt(1, b)

	kids := parent.Children()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Errorf("children = %v, want [a b c]", kids)
	}
	expectPanic(t, "negative index", func() { parent.AddChildAt(-1, NewGroup("x")) })
	expectPanic(t, "index past end", func() { parent.AddChildAt(4, NewGroup("x")) })
}

func TestRemoveChild(t *testing.T) {
	parent := NewGroup("parent")
	a := NewGroup("a")
	b := NewGroup("b")
	parent.AddChild(a)
	parent.AddChild(b)

	parent.RemoveChild(a)
	if a.Parent != nil {
		t.Error("removed child still has a parent")
	}
	if len(parent.Children()) != 1 || parent.Children()[0] != b {
		t.Errorf("children = %v", parent.Children())
	}
	expectPanic(t, "removing a non-child", func() { parent.RemoveChild(a) })

	b.RemoveFromParent()
	if len(parent.Children()) != 0 {
		t.Error("RemoveFromParent left the child attached")
	}
	b.RemoveFromParent() // no-op without a parent
}

func TestDisposeRecursesAndIsIdempotent(t *testing.T) {
	root := NewGroup("root")
	mid := NewGroup("mid")
	leaf := NewGroup("leaf")
	root.AddChild(mid)
	mid.AddChild(leaf)

	mid.Dispose()
	if !mid.IsDisposed() || !leaf.IsDisposed() {
		t.Error("disposal did not recurse")
	}
	if len(root.Children()) != 0 {
		t.Error("disposed node still attached to parent")
	}
	mid.Dispose() // idempotent
	expectPanic(t, "adding a disposed child", func() { root.AddChild(mid) })
}

func TestHitTestPrefersTopmost(t *testing.T) {
	root := NewGroup("root")
	root.Interactable = true
	under := NewGroup("under")
	under.Interactable = true
	under.HitShape = HitCircle{Radius: 50}
	over := NewGroup("over")
	over.Interactable = true
	over.HitShape = HitCircle{Radius: 50}
	root.AddChild(under)
	root.AddChild(over) // added later, draws on top
	updateWorldTransform(root, identityTransform, false)

	if got := HitTest(root, Vec2{10, 10}); got != over {
		t.Errorf("hit %v, want the later sibling", got)
	}

	over.Visible = false
	if got := HitTest(root, Vec2{10, 10}); got != under {
		t.Errorf("hit %v, want the remaining sibling", got)
	}

	under.Interactable = false
	if got := HitTest(root, Vec2{10, 10}); got != nil {
		t.Errorf("hit %v, want nil", got)
	}
}

func TestHitTestTranslatesIntoLocalSpace(t *testing.T) {
	root := NewGroup("root")
	root.Interactable = true
	target := NewGroup("target")
	target.Interactable = true
	target.HitShape = HitCircle{Radius: 5}
	target.SetPosition(100, 200)
	root.AddChild(target)
	updateWorldTransform(root, identityTransform, false)

	if got := HitTest(root, Vec2{103, 202}); got != target {
		t.Errorf("hit %v, want target", got)
	}
	if got := HitTest(root, Vec2{110, 200}); got != nil {
		t.Errorf("hit %v outside the circle, want nil", got)
	}
}

func TestWorldToLocalWithRotationAndScale(t *testing.T) {
	root := NewGroup("root")
	n := NewGroup("n")
	n.SetPosition(10, 0)
	n.SetRotation(math.Pi / 2)
	n.SetScale(2, 2)
	root.AddChild(n)
	updateWorldTransform(root, identityTransform, false)

	// Local (1, 0): scaled to (2, 0), rotated 90° clockwise to (0, 2),
	// translated to (10, 2).
	wx, wy := n.LocalToWorld(1, 0)
	if !near(wx, 10) || !near(wy, 2) {
		t.Errorf("LocalToWorld(1, 0) = (%v, %v), want (10, 2)", wx, wy)
	}
	lx, ly := n.WorldToLocal(wx, wy)
	if !near(lx, 1) || !near(ly, 0) {
		t.Errorf("round trip = (%v, %v), want (1, 0)", lx, ly)
	}
}

func TestHitRectContains(t *testing.T) {
	r := HitRect{X: -5, Y: -5, Width: 10, Height: 10}
	if !r.Contains(0, 0) || !r.Contains(-5, -5) || !r.Contains(5, 5) {
		t.Error("rect should contain interior and edges")
	}
	if r.Contains(6, 0) || r.Contains(0, -6) {
		t.Error("rect should not contain exterior points")
	}
}
