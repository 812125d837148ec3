package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMixState(t *testing.T) {
	state := DefaultMixState()
	assert.Equal(t, QualityLow, state.SoilQuality)
	assert.Equal(t, QualityLow, state.PseudoQuality)
	assert.False(t, state.UsePot)
	assert.Equal(t, 0, state.Additives.Len())
	assert.False(t, state.HasPGR())
}

func TestMixState_Additives(t *testing.T) {
	base := DefaultMixState()

	withPGR := base.WithAdditive(AdditivePGR)
	assert.True(t, withPGR.HasPGR())
	assert.False(t, base.HasPGR(), "helpers return copies")

	// Flags are at-most-once
	assert.Equal(t, withPGR, withPGR.WithAdditive(AdditivePGR))

	toggled := withPGR.ToggleAdditive(AdditiveSpeedGrow).ToggleAdditive(AdditivePGR)
	assert.False(t, toggled.HasPGR())
	assert.Equal(t, []Additive{AdditiveSpeedGrow}, toggled.Additives.Additives())

	assert.Equal(t, base, withPGR.WithoutAdditive(AdditivePGR))
}

func TestMixState_JSON(t *testing.T) {
	state := MixState{
		Additives:     NewAdditiveSet(AdditiveFertilizer, AdditivePGR),
		SoilQuality:   QualityHigh,
		PseudoQuality: QualityMedium,
		UsePot:        true,
	}

	data, err := json.Marshal(state)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"additives": ["PGR", "Fertilizer"],
		"soil_quality": "High",
		"pseudo_quality": "Medium",
		"use_pot": true
	}`, string(data))

	var decoded MixState
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, state, decoded)

	assert.Error(t, json.Unmarshal([]byte(`{"soil_quality":"Ultra"}`), &decoded))
	assert.Error(t, json.Unmarshal([]byte(`{"additives":["Water"]}`), &decoded))
}
