package window

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/Faultbox/heightscape/internal/engine/input"
)

// PollEvents drains the SDL event queue into q.
func PollEvents(q *input.Queue) {
	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch e := event.(type) {
		case *sdl.QuitEvent:
			q.Push(input.Event{Type: input.EventQuit})

		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_RESIZED || e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				q.Push(input.Event{
					Type:   input.EventWindowResize,
					Width:  int(e.Data1),
					Height: int(e.Data2),
				})
			}

		case *sdl.KeyboardEvent:
			if e.Repeat != 0 {
				continue
			}
			t := input.EventKeyDown
			if e.Type == sdl.KEYUP {
				t = input.EventKeyUp
			}
			q.Push(input.Event{Type: t, Key: keyFor(e.Keysym.Sym)})

		case *sdl.MouseMotionEvent:
			q.Push(input.Event{
				Type:   input.EventMouseMove,
				MouseX: int(e.X),
				MouseY: int(e.Y),
				RelX:   int(e.XRel),
				RelY:   int(e.YRel),
			})

		case *sdl.MouseButtonEvent:
			t := input.EventMouseDown
			if e.Type == sdl.MOUSEBUTTONUP {
				t = input.EventMouseUp
			}
			q.Push(input.Event{Type: t, MouseX: int(e.X), MouseY: int(e.Y)})

		case *sdl.MouseWheelEvent:
			steps := int(e.Y)
			if e.Direction == sdl.MOUSEWHEEL_FLIPPED {
				steps = -steps
			}
			q.Push(input.Event{Type: input.EventMouseWheel, Wheel: steps})
		}
	}
}

func keyFor(sym sdl.Keycode) input.Key {
	switch sym {
	case sdl.K_ESCAPE:
		return input.KeyEscape
	case sdl.K_LSHIFT, sdl.K_RSHIFT:
		return input.KeyShift
	case sdl.K_F12:
		return input.KeyScreenshot
	case sdl.K_F5:
		return input.KeySaveView
	default:
		return input.KeyUnknown
	}
}
