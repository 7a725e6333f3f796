package termview

import (
	gomath "math"
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/Faultbox/heightscape/internal/engine/camera"
	"github.com/Faultbox/heightscape/internal/engine/heightfield"
	"github.com/Faultbox/heightscape/internal/engine/raster"
)

func newTestView(t *testing.T) (*View, tcell.SimulationScreen) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 12)

	hf, err := heightfield.New(5)
	if err != nil {
		t.Fatalf("heightfield.New: %v", err)
	}
	hf.Fill(heightfield.Pack(100))

	return New(screen, hf, camera.NewController(hf.Size), raster.Background), screen
}

func near(a, b, eps float32) bool {
	d := a - b
	return d < eps && d > -eps
}

func TestColor(t *testing.T) {
	got := Color(0xff102030)
	want := tcell.NewRGBColor(0x10, 0x20, 0x30)
	if got != want {
		t.Errorf("Color(0xff102030) = %v, want %v", got, want)
	}
}

func TestCellStyle(t *testing.T) {
	got := CellStyle(0xff0000ff, 0xffff0000)
	want := tcell.StyleDefault.
		Foreground(tcell.NewRGBColor(0, 0, 0xff)).
		Background(tcell.NewRGBColor(0xff, 0, 0))
	if got != want {
		t.Errorf("CellStyle() = %v, want %v", got, want)
	}
}

func TestDrawFillsScreen(t *testing.T) {
	v, screen := newTestView(t)
	v.Draw()

	s := v.Surface()
	if s == nil {
		t.Fatal("Surface() = nil after Draw")
	}
	if s.Width != 40 || s.Height != 24 {
		t.Fatalf("surface = %dx%d, want 40x24", s.Width, s.Height)
	}

	for _, pos := range [][2]int{{0, 0}, {20, 6}, {39, 11}} {
		x, y := pos[0], pos[1]
		r, _, style, _ := screen.GetContent(x, y)
		if r != halfBlock {
			t.Errorf("cell (%d,%d) rune = %q, want %q", x, y, r, halfBlock)
		}
		want := CellStyle(s.At(x, 2*y), s.At(x, 2*y+1))
		if style != want {
			t.Errorf("cell (%d,%d) style = %v, want %v", x, y, style, want)
		}
	}
}

func TestDrawFollowsResize(t *testing.T) {
	v, screen := newTestView(t)
	v.Draw()

	screen.SetSize(20, 5)
	v.Handle(tcell.NewEventResize(20, 5))
	v.Draw()

	if s := v.Surface(); s.Width != 20 || s.Height != 10 {
		t.Errorf("surface = %dx%d after resize, want 20x10", s.Width, s.Height)
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		quit bool
	}{
		{"escape", tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{"left", tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone), false},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModNone), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, _ := newTestView(t)
			if got := v.Handle(tt.ev); got != tt.quit {
				t.Errorf("Handle() = %v, want %v", got, tt.quit)
			}
		})
	}
}

func TestKeyRotateAndZoom(t *testing.T) {
	v, _ := newTestView(t)
	yaw := v.camera.State.Yaw
	scale := v.camera.State.Scale

	v.Handle(tcell.NewEventKey(tcell.KeyLeft, 0, tcell.ModNone))
	if want := yaw - keyRotate*camera.DefaultRotateSensitivity; !near(v.camera.State.Yaw, want, 1e-6) {
		t.Errorf("yaw after left = %v, want %v", v.camera.State.Yaw, want)
	}

	v.Handle(tcell.NewEventKey(tcell.KeyRune, '+', tcell.ModNone))
	want := scale * float32(gomath.Exp(keyZoom*camera.DefaultZoomSensitivity))
	if !near(v.camera.State.Scale, want, 1e-6) {
		t.Errorf("scale after + = %v, want %v", v.camera.State.Scale, want)
	}
}

func TestKeyPanMovesCenter(t *testing.T) {
	v, _ := newTestView(t)
	center := v.camera.State.Center

	v.Handle(tcell.NewEventKey(tcell.KeyRune, 'd', tcell.ModNone))
	if v.camera.State.Center == center {
		t.Error("center unchanged after pan key")
	}
	if v.camera.State.Center.Z != center.Z {
		t.Errorf("pan changed height: %v, want %v", v.camera.State.Center.Z, center.Z)
	}
}

func TestMouseDragRotates(t *testing.T) {
	v, _ := newTestView(t)
	yaw := v.camera.State.Yaw

	v.Handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if v.camera.State.Yaw != yaw {
		t.Fatalf("press alone rotated yaw to %v", v.camera.State.Yaw)
	}

	v.Handle(tcell.NewEventMouse(12, 5, tcell.Button1, tcell.ModNone))
	unit := float32(ReferenceWidth) / 40
	want := yaw + 2*unit*camera.DefaultRotateSensitivity
	if !near(v.camera.State.Yaw, want, 1e-5) {
		t.Errorf("yaw after drag = %v, want %v", v.camera.State.Yaw, want)
	}

	v.Handle(tcell.NewEventMouse(12, 5, tcell.ButtonNone, tcell.ModNone))
	if v.dragging {
		t.Error("still dragging after release")
	}
}

func TestMouseShiftDragPans(t *testing.T) {
	v, _ := newTestView(t)
	state := v.camera.State

	v.Handle(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModShift))
	v.Handle(tcell.NewEventMouse(14, 6, tcell.Button1, tcell.ModShift))

	if v.camera.State.Center == state.Center {
		t.Error("center unchanged after shift drag")
	}
	if v.camera.State.Yaw != state.Yaw || v.camera.State.Pitch != state.Pitch {
		t.Error("shift drag rotated the camera")
	}
}

func TestMouseWheelZooms(t *testing.T) {
	v, _ := newTestView(t)
	scale := v.camera.State.Scale

	v.Handle(tcell.NewEventMouse(0, 0, tcell.WheelDown, tcell.ModNone))
	if v.camera.State.Scale >= scale {
		t.Errorf("scale after wheel down = %v, want < %v", v.camera.State.Scale, scale)
	}
}
