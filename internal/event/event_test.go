package event_test

import (
	"testing"

	"go-hongo-shooter/internal/event"

	"github.com/stretchr/testify/assert"
)

type countingListener struct {
	got []event.Event
}

func (l *countingListener) OnEvent(e event.Event) {
	l.got = append(l.got, e)
}

func TestDispatchReachesOnlySubscribers(t *testing.T) {
	d := event.NewDispatcher()
	kills := &countingListener{}
	lives := &countingListener{}
	d.Subscribe(event.EnemyKilled, kills)
	d.Subscribe(event.LifeLost, lives)

	d.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{Points: 10}})

	assert.Len(t, kills.got, 1)
	assert.Empty(t, lives.got)
	assert.Equal(t, 10, kills.got[0].Data.(event.KillData).Points)
}

func TestUnsubscribe(t *testing.T) {
	d := event.NewDispatcher()
	l := &countingListener{}
	d.SubscribeAll(l, event.GameOver, event.GameRestarted)
	d.Unsubscribe(event.GameOver, l)

	d.Dispatch(event.Event{Type: event.GameOver})
	d.Dispatch(event.Event{Type: event.GameRestarted})

	assert.Len(t, l.got, 1)
	assert.Equal(t, event.GameRestarted, l.got[0].Type)
}

func TestListenerFunc(t *testing.T) {
	d := event.NewDispatcher()
	calls := 0
	d.Subscribe(event.PlayerFired, event.ListenerFunc(func(event.Event) { calls++ }))

	d.Dispatch(event.Event{Type: event.PlayerFired})
	d.Dispatch(event.Event{Type: event.PlayerFired})

	assert.Equal(t, 2, calls)
}
