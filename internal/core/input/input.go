// Package input provides the host-side mechanisms overlays bind to while they
// are visible: a keyboard listener registry and a scroll lock.
package input

// KeyHandler receives a normalized key string (as produced by
// tea.KeyPressMsg.String) and reports whether it consumed the key.
type KeyHandler func(key string) bool

type listener struct {
	id int
	fn KeyHandler
}

// Dispatcher routes key presses to registered listeners, newest first.
type Dispatcher struct {
	listeners []listener
	nextID    int
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Subscribe registers fn and returns a function that removes it. The returned
// function is safe to call more than once.
func (d *Dispatcher) Subscribe(fn KeyHandler) func() {
	d.nextID++
	id := d.nextID
	d.listeners = append(d.listeners, listener{id: id, fn: fn})

	return func() {
		for i, l := range d.listeners {
			if l.id == id {
				d.listeners = append(d.listeners[:i], d.listeners[i+1:]...)
				return
			}
		}
	}
}

// Dispatch offers key to listeners from the most recently registered to the
// oldest and stops at the first one that consumes it. Listeners may
// unsubscribe themselves while handling a key.
func (d *Dispatcher) Dispatch(key string) bool {
	snapshot := make([]listener, len(d.listeners))
	copy(snapshot, d.listeners)

	for i := len(snapshot) - 1; i >= 0; i-- {
		if snapshot[i].fn(key) {
			return true
		}
	}
	return false
}

// Len returns the number of registered listeners.
func (d *Dispatcher) Len() int {
	return len(d.listeners)
}

// ScrollLock suppresses background scrolling while held. It is a counter so
// nested holders release independently.
type ScrollLock struct {
	holders int
}

// NewScrollLock creates an unlocked scroll lock.
func NewScrollLock() *ScrollLock {
	return &ScrollLock{}
}

// Acquire takes the lock and returns its release function. Releasing twice
// has no further effect.
func (l *ScrollLock) Acquire() func() {
	l.holders++
	released := false
	return func() {
		if released {
			return
		}
		released = true
		l.holders--
	}
}

// Locked reports whether any holder currently suppresses scrolling.
func (l *ScrollLock) Locked() bool {
	return l.holders > 0
}

// Holders returns the number of outstanding acquisitions.
func (l *ScrollLock) Holders() int {
	return l.holders
}

// Host bundles the dispatcher and scroll lock a page offers to overlays.
type Host struct {
	Keys   *Dispatcher
	Scroll *ScrollLock
}

// NewHost creates a host with a fresh dispatcher and scroll lock.
func NewHost() *Host {
	return &Host{
		Keys:   NewDispatcher(),
		Scroll: NewScrollLock(),
	}
}

// SubscribeKeys registers a keyboard listener.
func (h *Host) SubscribeKeys(fn KeyHandler) func() {
	return h.Keys.Subscribe(fn)
}

// LockScroll acquires the page scroll lock.
func (h *Host) LockScroll() func() {
	return h.Scroll.Acquire()
}
