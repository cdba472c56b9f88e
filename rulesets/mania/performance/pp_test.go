package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

func testBeatmap(n int) *beatmap.Beatmap {
	objects := make([]beatmap.HitObject, n)
	return &beatmap.Beatmap{HitObjects: objects, OD: 8, Mode: beatmap.ModeMania}
}

func TestCalculateLowScoreHasZeroStrainComponent(t *testing.T) {
	b := testBeatmap(500)
	attrs := Attributes{Stars: 4.0}

	p := NewManiaPP(b).Attributes(attrs).Score(400000)

	strain := p.computeStrain(400000, attrs.Stars)
	assert.Equal(t, 0.0, strain)

	// Below 960,000 the accuracy component is also zeroed out, so the
	// whole combined pp collapses to zero.
	result := p.Calculate()
	assert.Equal(t, 0.0, result.PP)
}

func TestCalculatePPNonNegative(t *testing.T) {
	b := testBeatmap(500)

	result := NewManiaPP(b).Attributes(Attributes{Stars: 4.0}).Score(970000).Calculate()

	assert.GreaterOrEqual(t, result.PP, 0.0)
}

func TestCalculatePPMonotonicInScore(t *testing.T) {
	b := testBeatmap(500)
	attrs := Attributes{Stars: 4.0}

	lower := NewManiaPP(b).Attributes(attrs).Score(800000).Calculate().PP
	higher := NewManiaPP(b).Attributes(attrs).Score(970000).Calculate().PP

	assert.LessOrEqual(t, lower, higher)
}

func TestStarsSetterOverridesAttributes(t *testing.T) {
	b := testBeatmap(500)

	result := NewManiaPP(b).Stars(6.5).Score(970000).Calculate()

	assert.Equal(t, 6.5, result.Stars)
}

func TestModsChangeResult(t *testing.T) {
	b := testBeatmap(500)
	attrs := Attributes{Stars: 4.0}

	plain := NewManiaPP(b).Attributes(attrs).Score(970000).Calculate().PP
	ez := NewManiaPP(b).Attributes(attrs).Score(970000).Mods(difficulty.Easy).Calculate().PP

	assert.NotEqual(t, plain, ez)
}
