package playback

// DefaultSaveInterval is the forward progress, in seconds, required between
// history saves. Matches the hosted web client's constant; override through
// configuration.
const DefaultSaveInterval = 15.0

// Throttle decides when accumulated playback progress warrants a history
// write. A save fires when the observed position exceeds the last saved
// position by more than the interval. Backward seeks make the delta negative,
// which simply reopens the window until enough forward progress accumulates
// again; there is no smoothing or out-of-order protection.
type Throttle struct {
	interval  float64
	lastSaved float64
}

// NewThrottle creates a throttle with the given save interval in seconds.
// Non-positive intervals fall back to the default.
func NewThrottle(interval float64) *Throttle {
	if interval <= 0 {
		interval = DefaultSaveInterval
	}
	return &Throttle{interval: interval}
}

// Observe records a timeupdate position and reports whether a save should
// fire now. On a save the window resets to the observed position.
func (t *Throttle) Observe(currentTime float64) bool {
	if currentTime-t.lastSaved > t.interval {
		t.lastSaved = currentTime
		return true
	}
	return false
}

// LastSaved returns the position of the most recent threshold save.
func (t *Throttle) LastSaved() float64 { return t.lastSaved }
