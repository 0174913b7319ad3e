package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aaronzipp/impostor/internal/models"
)

func TestBusDeliversInSubscriptionOrder(t *testing.T) {
	bus := NewBus()
	var got []string
	bus.Subscribe(func(e Event) { got = append(got, "a:"+string(e.Type)) })
	bus.Subscribe(func(e Event) { got = append(got, "b:"+string(e.Type)) })

	bus.Publish(Event{Type: TypePhaseChanged, Phase: models.PhaseReveal})

	assert.Equal(t, []string{"a:phase_changed", "b:phase_changed"}, got)
}

func TestBusUnsubscribe(t *testing.T) {
	bus := NewBus()
	count := 0
	unsubscribe := bus.Subscribe(func(Event) { count++ })
	require.Equal(t, 1, bus.Len())

	bus.Publish(Event{Type: TypeReset})
	unsubscribe()
	unsubscribe()
	bus.Publish(Event{Type: TypeReset})

	assert.Equal(t, 1, count)
	assert.Equal(t, 0, bus.Len())
}

func TestBusListenerMayUnsubscribeDuringPublish(t *testing.T) {
	bus := NewBus()
	calls := 0
	var unsubscribe func()
	unsubscribe = bus.Subscribe(func(Event) {
		calls++
		unsubscribe()
	})

	bus.Publish(Event{Type: TypeRoundStarted})
	bus.Publish(Event{Type: TypeRoundStarted})

	assert.Equal(t, 1, calls)
}
