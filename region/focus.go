package region

import (
	"sync"
	"time"
)

// BlinkTimer is the injected timing capability behind caret blinking.
// Implementations must tolerate Stop without a preceding Start.
type BlinkTimer interface {
	Start(interval time.Duration, tick func())
	Stop()
}

// SystemTimer is a BlinkTimer backed by the wall clock. The AfterFunc
// callback runs on its own goroutine, so all timer state is guarded by
// a mutex; a fire racing a Stop observes the nil timer and bails out.
type SystemTimer struct {
	mu       sync.Mutex
	timer    *time.Timer
	interval time.Duration
	tick     func()
}

func (st *SystemTimer) Start(interval time.Duration, tick func()) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.timer != nil {
		st.timer.Stop()
	}
	st.interval = interval
	st.tick = tick
	st.timer = time.AfterFunc(interval, st.fire)
}

func (st *SystemTimer) fire() {
	st.mu.Lock()
	if st.timer == nil { // stopped while the callback was pending
		st.mu.Unlock()
		return
	}
	tick := st.tick
	st.timer.Reset(st.interval)
	st.mu.Unlock()
	tick()
}

func (st *SystemTimer) Stop() {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.timer != nil {
		st.timer.Stop()
		st.timer = nil
		st.tick = nil
	}
}

// DefaultBlinkInterval is the caret blink interval used when the host
// does not configure one.
const DefaultBlinkInterval = 530 * time.Millisecond

// FocusController owns which region currently holds the caret, and the
// single blink timer driving caret visibility. Focus transfer always
// blurs the previous owner before focusing the next, so two blink
// timers are never active concurrently.
type FocusController struct {
	timer    BlinkTimer
	interval time.Duration
	mu       sync.Mutex // guards owner and visible against the blink goroutine
	owner    *Region
	visible  bool
}

// NewFocusController creates a focus controller around an injectable
// blink timer. An interval of 0 selects DefaultBlinkInterval.
func NewFocusController(timer BlinkTimer, interval time.Duration) *FocusController {
	if interval == 0 {
		interval = DefaultBlinkInterval
	}
	return &FocusController{timer: timer, interval: interval}
}

// FocusOn transfers the caret to r.
func (fc *FocusController) FocusOn(r *Region) {
	fc.mu.Lock()
	if fc.owner == r {
		fc.mu.Unlock()
		return
	}
	fc.mu.Unlock()
	fc.Blur()
	if r == nil {
		return
	}
	fc.mu.Lock()
	fc.owner = r
	fc.visible = true
	fc.mu.Unlock()
	r.focused = true
	tracer().Debugf("focus -> region %q", r.id)
	fc.timer.Start(fc.interval, fc.blink)
}

// Blur releases the caret and stops the blink timer.
func (fc *FocusController) Blur() {
	fc.timer.Stop()
	fc.mu.Lock()
	prev := fc.owner
	fc.owner = nil
	fc.visible = false
	fc.mu.Unlock()
	if prev != nil {
		prev.focused = false
	}
}

// Owner returns the region currently holding the caret, or nil.
func (fc *FocusController) Owner() *Region {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.owner
}

// CaretVisible reports the current blink phase of the caret.
func (fc *FocusController) CaretVisible() bool {
	fc.mu.Lock()
	defer fc.mu.Unlock()
	return fc.owner != nil && fc.visible
}

func (fc *FocusController) blink() {
	fc.mu.Lock()
	fc.visible = !fc.visible
	fc.mu.Unlock()
}
