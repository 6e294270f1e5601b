package entity

import (
	"errors"
	"testing"

	"fortress-defense/internal/component"
	"fortress-defense/internal/config"
	"fortress-defense/internal/defs"
	"fortress-defense/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var grunt = defs.UnitTemplate{ID: "GRUNT", Health: 30, Damage: 4, Range: 20, AttackSpeed: 1, Mass: 2, Skills: []string{"BASH"}}

func TestSpawn_CopiesTemplate(t *testing.T) {
	r := NewRegistry(10)
	u, err := r.Spawn(grunt, types.TeamInvaders, types.Vec{X: 5, Y: 6})
	require.NoError(t, err)

	assert.Equal(t, types.EntityID(1), u.ID)
	assert.Equal(t, "GRUNT", u.TemplateID)
	assert.Equal(t, 30, u.Health)
	assert.Equal(t, 30, u.MaxHealth)
	assert.Equal(t, config.DefaultCritMultiple, u.Stats.CritMultiplier)
	assert.Equal(t, 2.0, u.Stats.Mass)
	assert.True(t, u.Alive)
	assert.NotNil(t, u.Status)
	assert.Equal(t, config.InvaderColor, u.Render.Color)

	u.Skills[0] = "CHANGED"
	assert.Equal(t, "BASH", grunt.Skills[0], "template skills are not aliased")
}

func TestSpawn_Capacity(t *testing.T) {
	r := NewRegistry(2)
	_, err := r.Spawn(grunt, types.TeamInvaders, types.Vec{})
	require.NoError(t, err)
	_, err = r.Spawn(grunt, types.TeamInvaders, types.Vec{})
	require.NoError(t, err)

	_, err = r.Spawn(grunt, types.TeamInvaders, types.Vec{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRegistryFull))

	require.True(t, r.Remove(1))
	_, err = r.Spawn(grunt, types.TeamInvaders, types.Vec{})
	assert.NoError(t, err)
}

func TestSpawn_RejectsTemplateWithoutHealth(t *testing.T) {
	r := NewRegistry(10)
	_, err := r.Spawn(defs.UnitTemplate{ID: "GHOST"}, types.TeamInvaders, types.Vec{})
	assert.ErrorIs(t, err, ErrInvalidTemplate)
	assert.Equal(t, 0, r.Len())
}

func TestAllByTeam_OrderAndLiveness(t *testing.T) {
	r := NewRegistry(10)
	a, _ := r.Spawn(grunt, types.TeamFortress, types.Vec{})
	b, _ := r.Spawn(grunt, types.TeamInvaders, types.Vec{})
	c, _ := r.Spawn(grunt, types.TeamFortress, types.Vec{})
	d, _ := r.Spawn(grunt, types.TeamFortress, types.Vec{})
	c.Alive = false

	got := r.AllByTeam(types.TeamFortress)
	require.Len(t, got, 2)
	assert.Equal(t, a.ID, got[0].ID)
	assert.Equal(t, d.ID, got[1].ID)
	assert.Len(t, r.All(), 4)
	assert.Equal(t, b.ID, r.AllByTeam(types.TeamInvaders)[0].ID)
}

func TestRemove(t *testing.T) {
	r := NewRegistry(10)
	u, _ := r.Spawn(grunt, types.TeamFortress, types.Vec{})
	assert.True(t, r.Remove(u.ID))
	assert.False(t, r.Remove(u.ID))
	_, ok := r.Get(u.ID)
	assert.False(t, ok)
	assert.Zero(t, r.Len())
}

func TestSpatialQueries(t *testing.T) {
	r := NewRegistry(10)
	near, _ := r.Spawn(grunt, types.TeamInvaders, types.Vec{X: 10})
	far, _ := r.Spawn(grunt, types.TeamInvaders, types.Vec{X: 100})
	_, _ = r.Spawn(grunt, types.TeamFortress, types.Vec{X: 5})

	assert.Equal(t, near, r.Nearest(types.Vec{}, 50, types.TeamInvaders))
	assert.Nil(t, r.Nearest(types.Vec{}, 5, types.TeamInvaders))

	assert.Len(t, r.InRadius(types.Vec{}, 50, types.TeamInvaders), 1)
	assert.Len(t, r.InRadius(types.Vec{}, 0, types.TeamInvaders), 2, "radius 0 means unlimited")

	near.Alive = false
	assert.Equal(t, far, r.Nearest(types.Vec{}, 500, types.TeamInvaders))
}

func TestLinked(t *testing.T) {
	r := NewRegistry(10)
	linked := grunt
	linked.ShareGroup, linked.ShareFraction = "pack", 0.5
	a, _ := r.Spawn(linked, types.TeamInvaders, types.Vec{})
	b, _ := r.Spawn(linked, types.TeamInvaders, types.Vec{})
	solo, _ := r.Spawn(grunt, types.TeamInvaders, types.Vec{})

	assert.ElementsMatch(t, []*component.Unit{a, b}, r.Linked(a))
	assert.Nil(t, r.Linked(solo))
}
