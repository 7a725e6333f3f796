package debug

import "time"

// DefaultRateWindow is how long FPSCounter accumulates before publishing a rate.
const DefaultRateWindow = 200 * time.Millisecond

// FPSCounter measures a rate of events per second over fixed windows.
type FPSCounter struct {
	window      time.Duration
	now         func() time.Time
	lastMeasure time.Time
	count       float64
	rate        float64
}

// NewFPSCounter creates a counter using the wall clock.
func NewFPSCounter() *FPSCounter {
	return NewFPSCounterWithClock(DefaultRateWindow, time.Now)
}

// NewFPSCounterWithClock creates a counter with an explicit window and clock.
func NewFPSCounterWithClock(window time.Duration, now func() time.Time) *FPSCounter {
	return &FPSCounter{
		window:      window,
		now:         now,
		lastMeasure: now(),
	}
}

// Log adds value events. It returns true when a new rate was published.
func (c *FPSCounter) Log(value float64) bool {
	c.count += value

	now := c.now()
	dt := now.Sub(c.lastMeasure)
	if dt < c.window {
		return false
	}
	c.rate = c.count / dt.Seconds()
	c.count = 0
	c.lastMeasure = now
	return true
}

// Rate returns the last published events per second.
func (c *FPSCounter) Rate() float64 {
	return c.rate
}
