package input

import "testing"

func TestQueue(t *testing.T) {
	q := NewQueue()
	q.Push(Event{Type: EventMouseMove, RelX: 3})
	q.Push(Event{Type: EventKeyDown, Key: KeyScreenshot})

	if len(q.Events()) != 2 {
		t.Fatalf("expected 2 events, got %d", len(q.Events()))
	}
	if !q.KeyPressed(KeyScreenshot) {
		t.Error("expected screenshot key to be pressed")
	}
	if q.KeyPressed(KeyShift) {
		t.Error("shift was never pressed")
	}
	if q.KeyPressed(KeySaveView) {
		t.Error("save view was never pressed")
	}
	if q.Quit() {
		t.Error("no quit event queued")
	}

	q.Reset()
	if len(q.Events()) != 0 {
		t.Errorf("Reset left %d events", len(q.Events()))
	}
}

func TestQueueQuit(t *testing.T) {
	tests := []struct {
		name  string
		event Event
		want  bool
	}{
		{"quit", Event{Type: EventQuit}, true},
		{"escape down", Event{Type: EventKeyDown, Key: KeyEscape}, true},
		{"escape up", Event{Type: EventKeyUp, Key: KeyEscape}, false},
		{"wheel", Event{Type: EventMouseWheel, Wheel: 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := NewQueue()
			q.Push(tt.event)
			if got := q.Quit(); got != tt.want {
				t.Errorf("Quit() = %v, want %v", got, tt.want)
			}
		})
	}
}
