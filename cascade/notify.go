package cascade

import (
	"sync"

	"github.com/inkbound/cssengine/dom"
)

// ChangeEvent is delivered to every registered ChangeListener whenever a
// mutation or an invalidation pass determines that a set of computed
// property values on element may have changed.
type ChangeEvent struct {
	Engine     *Engine
	Element    *dom.Node
	Pseudo     string
	Properties []PropertyIndex
}

// ChangeListener receives ChangeEvents. Implementations must not block;
// dispatch is synchronous under whatever call triggered it.
type ChangeListener interface {
	StyleChanged(evt ChangeEvent)
}

// ChangeListenerFunc adapts a plain function to ChangeListener.
type ChangeListenerFunc func(evt ChangeEvent)

func (f ChangeListenerFunc) StyleChanged(evt ChangeEvent) { f(evt) }

// listenerBus is the change-notification bus. Add/Remove are serialized
// with a mutex; Fire snapshots the listener slice before dispatching so
// that a listener may add or remove other listeners (or itself) during
// notification without racing the in-progress dispatch.
type listenerBus struct {
	mu        sync.Mutex
	listeners []ChangeListener
}

func (b *listenerBus) Add(l ChangeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listeners = append(b.listeners, l)
}

func (b *listenerBus) Remove(l ChangeListener) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i], b.listeners[i+1:]...)
			return
		}
	}
}

func (b *listenerBus) snapshot() []ChangeListener {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.listeners) == 0 {
		return nil
	}
	out := make([]ChangeListener, len(b.listeners))
	copy(out, b.listeners)
	return out
}

func (b *listenerBus) Fire(evt ChangeEvent) {
	if len(evt.Properties) == 0 {
		return
	}
	for _, l := range b.snapshot() {
		l.StyleChanged(evt)
	}
}
