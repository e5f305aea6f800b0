package core

import (
	"math"
	"sync/atomic"
)

// PointerKind identifies a pointer event.
type PointerKind int

const (
	PointerNone PointerKind = iota
	PointerDown             // Tap / click: launch ball or restart
	PointerMove             // Drag / hover: move paddle
)

// String returns a human-readable name for the pointer kind.
func (k PointerKind) String() string {
	switch k {
	case PointerNone:
		return "None"
	case PointerDown:
		return "Down"
	case PointerMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// PointerEvent is a single pointer event in field coordinates.
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Down creates a pointer-down event.
func Down(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerDown, X: x, Y: y}
}

// Move creates a pointer-move event.
func Move(x, y float64) PointerEvent {
	return PointerEvent{Kind: PointerMove, X: x, Y: y}
}

// PointerLatch hands pointer input from a host goroutine to the simulation
// goroutine. Only the latest X survives; a stale value for one tick is fine.
// Pointer-downs are latched until drained so a quick tap is never lost.
type PointerLatch struct {
	x     atomic.Uint64 // math.Float64bits of the latest X
	y     atomic.Uint64
	moved atomic.Bool
	down  atomic.Bool
}

// Publish records an event. Safe to call from any goroutine.
func (l *PointerLatch) Publish(ev PointerEvent) {
	l.x.Store(math.Float64bits(ev.X))
	l.y.Store(math.Float64bits(ev.Y))
	switch ev.Kind {
	case PointerMove:
		l.moved.Store(true)
	case PointerDown:
		l.down.Store(true)
	}
}

// Drain returns the pending events (move first, then down) and clears them.
// Called once per tick by the simulation goroutine.
func (l *PointerLatch) Drain() []PointerEvent {
	moved := l.moved.Swap(false)
	down := l.down.Swap(false)
	if !moved && !down {
		return nil
	}

	x := math.Float64frombits(l.x.Load())
	y := math.Float64frombits(l.y.Load())

	events := make([]PointerEvent, 0, 2)
	if moved {
		events = append(events, Move(x, y))
	}
	if down {
		events = append(events, Down(x, y))
	}
	return events
}
