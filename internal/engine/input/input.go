// Package input defines backend-neutral input events. Window and terminal
// frontends translate their native events into these.
package input

// EventType identifies the kind of event.
type EventType int

const (
	EventNone EventType = iota
	EventQuit
	EventWindowResize
	EventKeyDown
	EventKeyUp
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
)

// Key is a frontend-independent key identifier.
type Key int

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyShift
	KeyScreenshot
	KeySaveView
)

// Event represents a processed input event.
type Event struct {
	Type EventType
	Key  Key

	// Size for EventWindowResize.
	Width  int
	Height int

	// Pointer position and relative motion for mouse events.
	MouseX int
	MouseY int
	RelX   int
	RelY   int

	// Wheel steps for EventMouseWheel. Positive is away from the user.
	Wheel int
}

// Queue collects events between frames.
type Queue struct {
	events []Event
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Event, 0, 16),
	}
}

// Push appends an event.
func (q *Queue) Push(e Event) {
	q.events = append(q.events, e)
}

// Events returns the events collected since the last Reset.
func (q *Queue) Events() []Event {
	return q.events
}

// Reset empties the queue, keeping its storage.
func (q *Queue) Reset() {
	q.events = q.events[:0]
}

// Quit reports whether a quit request or Escape is queued.
func (q *Queue) Quit() bool {
	for _, e := range q.events {
		if e.Type == EventQuit || (e.Type == EventKeyDown && e.Key == KeyEscape) {
			return true
		}
	}
	return false
}

// KeyPressed checks whether key went down since the last Reset.
func (q *Queue) KeyPressed(key Key) bool {
	for _, e := range q.events {
		if e.Type == EventKeyDown && e.Key == key {
			return true
		}
	}
	return false
}
