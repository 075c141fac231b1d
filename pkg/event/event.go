// pkg/event/event.go
package event

import (
	"reflect"
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted      Type = "game_started"
	GameEnded        Type = "game_ended"
	ElementCollision Type = "element_collision"
	DeviceAttached   Type = "device_attached"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Unsubscribe removes a previously subscribed handler for an event type
func (b *Bus) Unsubscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	handlers, ok := b.handlers[eventType]
	if !ok {
		return
	}

	target := reflect.ValueOf(handler).Pointer()
	for i, h := range handlers {
		if reflect.ValueOf(h).Pointer() == target {
			b.handlers[eventType] = append(handlers[:i], handlers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// CollisionEvent is published once per overlapping pair per frame, after
// both sides have been notified and before the frame's draw phase.
type CollisionEvent struct {
	BaseEvent
	ElementA uint64
	ElementB uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, elementA, elementB uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: ElementCollision,
			Source:    source,
		},
		ElementA: elementA,
		ElementB: elementB,
	}
}

// GameEvent marks a lifecycle transition of the simulation driver.
type GameEvent struct {
	BaseEvent
	Tick uint64
}

// NewGameEvent creates a new game lifecycle event
func NewGameEvent(eventType Type, source interface{}, tick uint64) *GameEvent {
	return &GameEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		Tick: tick,
	}
}

// DeviceEvent reports a joystick found during controller construction.
type DeviceEvent struct {
	BaseEvent
	GUID string
	Name string
}

// NewDeviceEvent creates a new device event
func NewDeviceEvent(source interface{}, guid, name string) *DeviceEvent {
	return &DeviceEvent{
		BaseEvent: BaseEvent{
			EventType: DeviceAttached,
			Source:    source,
		},
		GUID: guid,
		Name: name,
	}
}
