package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type collector struct {
	got []Event
}

func (c *collector) OnEvent(e Event) {
	c.got = append(c.got, e)
}

func TestDispatch(t *testing.T) {
	d := NewDispatcher()
	a, b := &collector{}, &collector{}
	d.Subscribe(WaveCleared, a)
	d.SubscribeAll(b, WaveCleared, UnitDeath)

	d.Dispatch(Event{Type: WaveCleared, Data: WaveData{Index: 2}})
	d.Dispatch(Event{Type: UnitDeath})
	d.Dispatch(Event{Type: DamageDealt})

	assert.Len(t, a.got, 1)
	assert.Equal(t, 2, a.got[0].Data.(WaveData).Index)
	assert.Len(t, b.got, 2)
}

func TestUnsubscribe(t *testing.T) {
	d := NewDispatcher()
	a := &collector{}
	d.Subscribe(UnitSpawned, a)
	d.Unsubscribe(UnitSpawned, a)

	d.Dispatch(Event{Type: UnitSpawned})
	assert.Empty(t, a.got)
}
