package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModifierHasAndActive(t *testing.T) {
	mods := HardRock | Hidden

	assert.True(t, mods.Has(HardRock))
	assert.True(t, mods.Has(DoubleTime|HardRock))
	assert.False(t, mods.Has(DoubleTime))
	assert.True(t, mods.Active(HardRock|Hidden))
	assert.False(t, mods.Active(HardRock|Hidden|Flashlight))
}

func TestModifierSpeed(t *testing.T) {
	assert.Equal(t, 1.5, DoubleTime.Speed())
	assert.Equal(t, 1.5, Nightcore.Speed())
	assert.Equal(t, 0.75, HalfTime.Speed())
	assert.Equal(t, 1.0, Modifier(0).Speed())
}

func TestDifficultyRangeBoundaries(t *testing.T) {
	// difficulty_range(v, min, avg, max): v=0 -> max, v=5 -> avg, v=10 -> min.
	assert.InDelta(t, 50.0, DifficultyRange(0, 20, 35, 50), 1e-9)
	assert.InDelta(t, 35.0, DifficultyRange(5, 20, 35, 50), 1e-9)
	assert.InDelta(t, 20.0, DifficultyRange(10, 20, 35, 50), 1e-9)
}

func TestDifficultyRangeMonotonic(t *testing.T) {
	prev := DifficultyRange(0, 20, 35, 50)
	for v := 0.5; v <= 10; v += 0.5 {
		cur := DifficultyRange(v, 20, 35, 50)
		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestModifierString(t *testing.T) {
	assert.Equal(t, "NM", Modifier(0).String())
	assert.Equal(t, "HDDT", (Hidden | DoubleTime).String())
}
