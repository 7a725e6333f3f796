package raster

import "testing"

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(3, 2)
	s.Set(2, 1, 0x11223344)
	if got := s.At(2, 1); got != 0x11223344 {
		t.Errorf("At(2,1) = %#x, want 0x11223344", got)
	}
	if got := s.At(0, 0); got != 0 {
		t.Errorf("At(0,0) = %#x, want 0", got)
	}
}

func TestSurfaceBoundsChecked(t *testing.T) {
	s := NewSurface(3, 2)
	for _, p := range [][2]int{{-1, 0}, {3, 0}, {0, 2}, {0, -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Set(%d, %d) did not panic", p[0], p[1])
				}
			}()
			s.Set(p[0], p[1], 1)
		}()
	}
}

func TestSurfaceValidate(t *testing.T) {
	tests := []struct {
		name    string
		s       Surface
		wantErr bool
	}{
		{"packed", *NewSurface(4, 4), false},
		{"padded", Surface{Pix: make([]byte, 3*20+16), Width: 4, Height: 4, Pitch: 20}, false},
		{"negative height", Surface{Width: 4, Height: -1, Pitch: 16}, true},
		{"pitch too small", Surface{Pix: make([]byte, 64), Width: 4, Height: 4, Pitch: 12}, true},
		{"buffer too small", Surface{Pix: make([]byte, 63), Width: 4, Height: 4, Pitch: 16}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.s.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSurfaceRGBA(t *testing.T) {
	s := NewSurface(2, 1)
	s.Set(0, 0, 0xff102030)
	s.Set(1, 0, 0x00405060)

	img := s.RGBA()
	want := []byte{0x10, 0x20, 0x30, 0xff, 0x40, 0x50, 0x60, 0x00}
	for i, b := range want {
		if img.Pix[i] != b {
			t.Errorf("Pix[%d] = %#x, want %#x", i, img.Pix[i], b)
		}
	}

	s.Opaque = false
	if a := s.RGBA().Pix[7]; a != 0xff {
		t.Errorf("alpha without Opaque = %#x, want 0xff", a)
	}
}

func TestProjectionProject(t *testing.T) {
	p := Projection{}
	p.Origin.X, p.Origin.Y = 10, 20
	p.Axes[0].X = 2
	p.Axes[1].Y = -1
	p.Axes[2].Y = -0.5

	got := p.Project(3, 4, 8)
	if got.X != 16 || got.Y != 12 {
		t.Errorf("Project = %v, want {16 12}", got)
	}
}
