package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fortress-defense/internal/defs"
	"fortress-defense/internal/types"
	"fortress-defense/internal/utils"
)

func TestVisualEffects_FollowCombatEvents(t *testing.T) {
	h := newHarness(t, 16, []defs.UnitTemplate{guard, grunt}, nil, nil)
	vfx := NewVisualEffectSystem(h.reg, h.events)
	h.spawn(t, "GUARD", types.TeamFortress, 0)
	e := h.spawn(t, "GRUNT", types.TeamInvaders, 50)

	NewCombatSystem(h.reg, h.resolver, h.triggers, utils.NewPRNGService(1)).Update(0.1)
	require.Contains(t, vfx.Flashes, e.ID)
	require.Len(t, vfx.Texts, 1)
	assert.Equal(t, 7, vfx.Texts[0].Amount)

	vfx.AddRing(types.Vec{X: 10}, 40)
	vfx.AddRing(types.Vec{X: 10}, 0)
	assert.Len(t, vfx.Rings, 1)

	vfx.Update(0.2)
	assert.NotContains(t, vfx.Flashes, e.ID)
	assert.Len(t, vfx.Texts, 1)
	assert.InDelta(t, 20, vfx.Rings[0].Radius(), 1e-9)

	vfx.Update(1)
	assert.Empty(t, vfx.Texts)
	assert.Empty(t, vfx.Rings)
}
