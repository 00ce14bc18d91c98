package scene

import "github.com/iburimskiy/drift/internal/geom"

// Input turns polled pointer state into loop events. Windowing backends
// report a cursor position before the pointer has ever moved, so the first
// reading only sets the baseline and the raw position stays off screen.
type Input struct {
	loop *Loop
	last geom.Point
	seen bool
}

func NewInput(l *Loop) *Input {
	return &Input{loop: l}
}

// Poll feeds one sample of pointer state. A press counts as a move to the
// press point, so the impulse starts where the button went down.
func (in *Input) Poll(p geom.Point, justPressed, justReleased bool) {
	switch {
	case !in.seen:
		in.last = p
		in.seen = true
	case p != in.last:
		in.last = p
		in.loop.PointerMoved(p)
	}

	if justPressed {
		in.last = p
		in.loop.PointerMoved(p)
		in.loop.PointerPressed()
	}
	if justReleased {
		in.loop.PointerReleased()
	}
}
