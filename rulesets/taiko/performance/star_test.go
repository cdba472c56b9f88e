package performance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

func buildTestMap(n int) *beatmap.Beatmap {
	objects := make([]beatmap.HitObject, 0, n)

	for i := 0; i < n; i++ {
		hitsound := 0
		if i%3 == 0 {
			hitsound = 2 // Whistle -> kat
		}

		objects = append(objects, beatmap.HitObject{
			StartTime: float64(i) * 150,
			Kind:      beatmap.Circle,
			Hitsound:  hitsound,
		})
	}

	return &beatmap.Beatmap{
		HitObjects: objects,
		NCircles:   n,
		AR:         9, CS: 4, OD: 8, HP: 5,
	}
}

func TestCalculateFiniteNonNegative(t *testing.T) {
	b := buildTestMap(64)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	attrs := Calculate(b, d, 0)

	assert.GreaterOrEqual(t, attrs.Stars, 0.0)
	assert.False(t, math.IsInf(attrs.Stars, 0))
}

func TestCalculateIdempotent(t *testing.T) {
	b := buildTestMap(48)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	first := Calculate(b, d, 0)
	second := Calculate(b, d, 0)

	assert.Equal(t, first, second)
}

func TestCalculateTooFewObjectsReturnsDefault(t *testing.T) {
	b := buildTestMap(1)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	attrs := Calculate(b, d, 0)

	assert.Equal(t, 0.0, attrs.Stars)
}

func TestCalculatePassedObjectsEquivalentToFullLength(t *testing.T) {
	b := buildTestMap(40)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	full := Calculate(b, d, 0)
	explicit := Calculate(b, d, len(b.HitObjects))

	assert.InDelta(t, full.Stars, explicit.Stars, 1e-9)
}

func TestDifficultyValueSortInvariant(t *testing.T) {
	s := NewSkill()
	s.strainPeaks = []float64{3, 1, 4, 1, 5, 9, 2, 6}
	a := s.DifficultyValue()

	s2 := NewSkill()
	s2.strainPeaks = []float64{9, 6, 5, 4, 3, 2, 1, 1}
	b := s2.DifficultyValue()

	assert.InDelta(t, a, b, 1e-9)
}
