// Package notify broadcasts "cart changed" and "session changed" signals to
// listeners scoped to a device.
package notify

import "sync"

type Signal string

const (
	CartChanged    Signal = "cart-changed"
	SessionChanged Signal = "session-changed"
)

type Event struct {
	Device string
	Signal Signal
}

// Listener is called synchronously from the goroutine that published.
type Listener func(Event)

// Bus is an in-process observer registry. Device listeners see only their
// device's events; global listeners see every event.
type Bus struct {
	mu      sync.RWMutex
	nextID  uint64
	devices map[string]map[uint64]Listener
	global  map[uint64]Listener
}

func NewBus() *Bus {
	return &Bus{
		devices: make(map[string]map[uint64]Listener),
		global:  make(map[uint64]Listener),
	}
}

// Subscribe registers fn for device and returns a function that removes it.
func (b *Bus) Subscribe(device string, fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	ls, ok := b.devices[device]
	if !ok {
		ls = make(map[uint64]Listener)
		b.devices[device] = ls
	}
	ls[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.devices[device], id)
			if len(b.devices[device]) == 0 {
				delete(b.devices, device)
			}
		})
	}
}

// SubscribeAll registers fn for every device.
func (b *Bus) SubscribeAll(fn Listener) (unsubscribe func()) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	id := b.nextID
	b.global[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.global, id)
		})
	}
}

// Publish delivers e to matching listeners. Listeners run outside the lock so
// they may subscribe or unsubscribe.
func (b *Bus) Publish(e Event) {
	b.mu.RLock()
	ls := make([]Listener, 0, len(b.devices[e.Device])+len(b.global))
	for _, fn := range b.devices[e.Device] {
		ls = append(ls, fn)
	}
	for _, fn := range b.global {
		ls = append(ls, fn)
	}
	b.mu.RUnlock()

	for _, fn := range ls {
		fn(e)
	}
}

func (b *Bus) NotifyCartChanged(device string) {
	b.Publish(Event{Device: device, Signal: CartChanged})
}

func (b *Bus) NotifySessionChanged(device string) {
	b.Publish(Event{Device: device, Signal: SessionChanged})
}
