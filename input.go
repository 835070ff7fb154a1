package sixpack

import "github.com/hajimehoshi/ebiten/v2"

// pointerState tracks the single mouse pointer between frames for edge
// detection. Touch input collapses onto the same pointer.
type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// readPointer polls the cursor and left button once per frame and turns
// state edges into dispatched events. Move events fire only when the cursor
// actually moved, down/up exactly once per press edge. The hit target is
// resolved against the current world transforms, so Update must refresh
// transforms before calling this.
func (p *Panel) readPointer() {
	mx, my := ebiten.CursorPosition()
	world := Vec2{float64(mx), float64(my)}
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	target := HitTest(p.root, world)

	ps := &p.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		p.dispatcher.Dispatch(EventPointerDown, target, world)
	case !pressed && ps.down:
		ps.down = false
		p.dispatcher.Dispatch(EventPointerUp, target, world)
	case world.X != ps.lastX || world.Y != ps.lastY:
		p.dispatcher.Dispatch(EventPointerMove, target, world)
	}
	ps.lastX = world.X
	ps.lastY = world.Y
}
