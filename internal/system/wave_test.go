package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortress-defense/internal/defs"
	"fortress-defense/internal/event"
	"fortress-defense/internal/types"
)

func twoBatches() defs.WaveConfig {
	return defs.WaveConfig{Name: "two batches", Spawns: []defs.SpawnEvent{
		{UnitID: "GRUNT", Count: 3, Offset: 0, Lane: "north"},
		{UnitID: "GRUNT", Count: 3, Offset: 2, Lane: "north"},
	}}
}

func TestWave_ClearedExactlyOnce(t *testing.T) {
	h := newHarness(t, 64, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{twoBatches()})

	require.NoError(t, h.waves.StartWave(0, 0))
	assert.Equal(t, WaveActive, h.waves.Phase())
	assert.Equal(t, 2, h.waves.Pending())
	assert.False(t, h.waves.IsWaveComplete())

	h.advance(0)
	assert.Equal(t, 1, h.waves.Pending())
	assert.Equal(t, 3, h.waves.Live())
	assert.False(t, h.waves.IsWaveComplete())

	h.advance(2)
	assert.Equal(t, 0, h.waves.Pending())
	assert.Equal(t, 6, h.waves.Live())
	assert.Equal(t, WaveClearing, h.waves.Phase())
	assert.False(t, h.waves.IsWaveComplete(), "spawned enemies are still alive")

	h.now = 3
	invaders := h.reg.AllByTeam(types.TeamInvaders)
	require.Len(t, invaders, 6)
	for _, u := range invaders {
		assert.True(t, h.deaths.Kill(u, 0))
		assert.False(t, h.deaths.Kill(u, 0), "second kill is ignored")
		h.waves.OnEnemyRemoved(u.ID, h.now)
	}

	assert.True(t, h.waves.IsWaveComplete())
	assert.Equal(t, WaveCleared, h.waves.Phase())
	assert.Equal(t, 1, h.rec.count(event.WaveCleared))
	assert.Equal(t, 6, h.rec.count(event.UnitDeath))
}

func TestWave_RestartCancelsOldSpawns(t *testing.T) {
	late := defs.WaveConfig{Spawns: []defs.SpawnEvent{{UnitID: "GRUNT", Count: 2, Offset: 5, Lane: "north"}}}
	next := defs.WaveConfig{Spawns: []defs.SpawnEvent{{UnitID: "GRUNT", Count: 1, Offset: 10, Lane: "north"}}}
	h := newHarness(t, 64, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{late, next})

	require.NoError(t, h.waves.StartWave(0, 0))
	h.advance(1)
	require.NoError(t, h.waves.StartWave(1, 1))

	h.advance(8)
	assert.Equal(t, 0, h.reg.Len(), "old wave timers must not fire")
	assert.Equal(t, 1, h.waves.Pending())

	h.advance(11)
	assert.Equal(t, 1, h.reg.Len())
	assert.Equal(t, 1, h.waves.Live())
	assert.Equal(t, 0, h.rec.count(event.WaveCleared))
}

func TestWave_RestartForgetsLiveEnemies(t *testing.T) {
	h := newHarness(t, 64, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{twoBatches(), twoBatches()})

	require.NoError(t, h.waves.StartWave(0, 0))
	h.advance(0)
	stale := h.reg.AllByTeam(types.TeamInvaders)
	require.Len(t, stale, 3)

	require.NoError(t, h.waves.StartWave(1, 0.5))
	assert.Equal(t, 0, h.waves.Live())
	for _, u := range stale {
		assert.False(t, h.waves.IsLive(u.ID))
		h.waves.OnEnemyRemoved(u.ID, 0.5)
	}
	assert.Equal(t, 2, h.waves.Pending())
}

func TestWave_RejectedSpawnsAreNotCounted(t *testing.T) {
	wave := defs.WaveConfig{Spawns: []defs.SpawnEvent{{UnitID: "GRUNT", Count: 3, Lane: "north"}}}
	h := newHarness(t, 2, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{wave})

	require.NoError(t, h.waves.StartWave(0, 0))
	h.advance(0)

	assert.Equal(t, 2, h.waves.Live())
	assert.Equal(t, 2, h.waves.Spawned())
	assert.Equal(t, 0, h.waves.Pending())
	assert.Contains(t, h.logs.String(), "spawn rejected")

	for _, u := range h.reg.AllByTeam(types.TeamInvaders) {
		h.deaths.Kill(u, 0)
	}
	assert.True(t, h.waves.IsWaveComplete())
	assert.Equal(t, 1, h.rec.count(event.WaveCleared))
}

func TestWave_UnknownLane(t *testing.T) {
	wave := defs.WaveConfig{Spawns: []defs.SpawnEvent{{UnitID: "GRUNT", Count: 3, Lane: "nowhere"}}}
	h := newHarness(t, 16, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{wave})

	require.NoError(t, h.waves.StartWave(0, 0))
	h.advance(0)

	assert.Equal(t, 0, h.reg.Len())
	assert.True(t, h.waves.IsWaveComplete())
	assert.Equal(t, 1, h.rec.count(event.WaveCleared))
	assert.Contains(t, h.logs.String(), "unknown lane")
}

func TestWave_EmptyWaveClearsImmediately(t *testing.T) {
	h := newHarness(t, 16, nil, nil, []defs.WaveConfig{{Name: "calm"}})

	require.NoError(t, h.waves.StartWave(0, 0))
	assert.Equal(t, WaveCleared, h.waves.Phase())
	assert.Equal(t, 1, h.rec.count(event.WaveCleared))
	assert.False(t, h.waves.HasNext())
}

func TestWave_UnknownIndex(t *testing.T) {
	h := newHarness(t, 16, nil, nil, nil)
	assert.ErrorIs(t, h.waves.StartWave(3, 0), ErrUnknownWave)
	assert.False(t, h.waves.IsWaveComplete(), "no wave started yet")
}

func TestWave_SpawnsFaceTheFortress(t *testing.T) {
	wave := defs.WaveConfig{Spawns: []defs.SpawnEvent{{UnitID: "GRUNT", Count: 1, Lane: "north"}}}
	h := newHarness(t, 16, []defs.UnitTemplate{grunt}, nil, []defs.WaveConfig{wave})

	require.NoError(t, h.waves.StartWave(0, 0))
	h.advance(0)

	u := h.reg.AllByTeam(types.TeamInvaders)[0]
	assert.Equal(t, "north", u.Lane)
	assert.Equal(t, types.Vec{X: -1}, u.Motion.Heading)
	assert.InDelta(t, north.Spawn.X, u.Position.X, 12)
	assert.Equal(t, 1, h.rec.count(event.UnitSpawned))
	assert.Equal(t, 1, h.triggers.Len(), "on_spawn queued")
}
