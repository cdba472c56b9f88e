package rosu

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	"github.com/wieku/rosu-go/framework/math/vector"
)

func buildOsuMap(n int) *beatmap.Beatmap {
	objects := make([]beatmap.HitObject, 0, n)

	for i := 0; i < n; i++ {
		objects = append(objects, beatmap.HitObject{
			Pos:       vector.NewVec2f(float32(50*(i%5)), float32(50*(i/5%5))),
			StartTime: float64(i) * 200,
			Kind:      beatmap.Circle,
		})
	}

	return &beatmap.Beatmap{
		HitObjects: objects,
		NCircles:   n,
		Mode:       beatmap.ModeOsu,
		AR:         9, CS: 4, OD: 8, HP: 5,
	}
}

func TestStarsDispatchesOnMode(t *testing.T) {
	b := buildOsuMap(48)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	result := Stars(b, d, 0)

	assert.Equal(t, ModeOsu, result.Mode)
	assert.NotNil(t, result.Osu)
	assert.Equal(t, result.Osu.Stars, result.Stars())
}

func TestStarResultProvideMismatchReturnsFalse(t *testing.T) {
	b := buildOsuMap(48)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	result := Stars(b, d, 0)

	_, ok := result.Provide(ModeMania)
	assert.False(t, ok)

	_, ok = result.ManiaAttributes()
	assert.False(t, ok)

	same, ok := result.Provide(ModeOsu)
	assert.True(t, ok)
	assert.Equal(t, result, same)

	attrs, ok := result.OsuAttributes()
	assert.True(t, ok)
	assert.Equal(t, *result.Osu, attrs)
}

func TestPpCalculationReusesProvidedAttributes(t *testing.T) {
	b := buildOsuMap(48)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	stars := Stars(b, d, 0)

	fresh := NewOsuPP(b).Accuracy(99).Calculate()
	cached := NewOsuPP(b).Accuracy(99).Attributes(stars).Calculate()

	assert.InDelta(t, fresh.PP, cached.PP, 1e-9)
}

func TestPpResultActsAsProvider(t *testing.T) {
	b := buildOsuMap(48)

	first := FromOsu(NewOsuPP(b).Accuracy(99).Calculate())
	second := NewOsuPP(b).Accuracy(97).Attributes(first).Calculate()

	assert.Equal(t, first.Attributes.Stars(), second.Stars)
}

func TestEmptyBeatmapYieldsZeroStarsAndZeroCombo(t *testing.T) {
	b := &beatmap.Beatmap{Mode: beatmap.ModeOsu}
	d := difficulty.NewDifficulty(5, 4, 8, 9)

	result := Stars(b, d, 0)

	assert.Equal(t, 0.0, result.Stars())
	assert.Equal(t, 0, result.Osu.MaxCombo)
}

func TestComputeStrainsNonEmptyAndNonNegative(t *testing.T) {
	b := buildOsuMap(64)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	strains := ComputeStrains(b, d)

	assert.Greater(t, strains.SectionLength, 0.0)
	assert.NotEmpty(t, strains.Strains)

	for _, s := range strains.Strains {
		assert.GreaterOrEqual(t, s, 0.0)
	}
}
