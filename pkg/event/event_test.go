// pkg/event/event_test.go
package event

import "testing"

func TestBus_PublishToSubscriber(t *testing.T) {
	bus := NewEventBus()

	var received []Event
	bus.Subscribe(ElementCollision, func(e Event) {
		received = append(received, e)
	})

	ev := NewCollisionEvent(nil, 1, 2)
	bus.Publish(ev)

	if len(received) != 1 {
		t.Fatalf("expected 1 event, got %d", len(received))
	}
	collision, ok := received[0].(*CollisionEvent)
	if !ok {
		t.Fatalf("expected *CollisionEvent, got %T", received[0])
	}
	if collision.ElementA != 1 || collision.ElementB != 2 {
		t.Errorf("collision pair = (%d, %d), expected (1, 2)", collision.ElementA, collision.ElementB)
	}
}

func TestBus_PublishWithoutSubscribers(t *testing.T) {
	bus := NewEventBus()
	// Must not panic
	bus.Publish(NewGameEvent(GameStarted, nil, 0))
}

func TestBus_MultipleHandlers(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	for i := 0; i < 3; i++ {
		bus.Subscribe(GameEnded, func(e Event) { calls++ })
	}

	bus.Publish(NewGameEvent(GameEnded, nil, 42))

	if calls != 3 {
		t.Errorf("expected 3 handler calls, got %d", calls)
	}
}

func TestBus_Unsubscribe(t *testing.T) {
	bus := NewEventBus()

	calls := 0
	handler := func(e Event) { calls++ }
	bus.Subscribe(DeviceAttached, handler)
	bus.Unsubscribe(DeviceAttached, handler)

	bus.Publish(NewDeviceEvent(nil, "guid-1", "Test Pad"))

	if calls != 0 {
		t.Errorf("expected 0 handler calls after unsubscribe, got %d", calls)
	}
}

func TestBus_HandlerOnlyReceivesSubscribedType(t *testing.T) {
	bus := NewEventBus()

	var types []Type
	bus.Subscribe(GameStarted, func(e Event) {
		types = append(types, e.GetType())
	})

	bus.Publish(NewGameEvent(GameStarted, nil, 0))
	bus.Publish(NewGameEvent(GameEnded, nil, 10))
	bus.Publish(NewCollisionEvent(nil, 3, 4))

	if len(types) != 1 || types[0] != GameStarted {
		t.Errorf("handler received %v, expected only [game_started]", types)
	}
}
