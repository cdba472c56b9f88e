package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	"github.com/wieku/rosu-go/framework/math/vector"
)

func buildTestMap(n int) *beatmap.Beatmap {
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
		AR:         9, CS: 4, OD: 8, HP: 5,
	}
}

func TestCalculateFiniteNonNegative(t *testing.T) {
	b := buildTestMap(64)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	stars := Calculate(b, d, AllIncluded, 0)

	assert.GreaterOrEqual(t, stars.Aim, 0.0)
	assert.GreaterOrEqual(t, stars.Speed, 0.0)
	assert.GreaterOrEqual(t, stars.Total, 0.0)
}

func TestCombineStarsIdentity(t *testing.T) {
	b := buildTestMap(32)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	stars := Calculate(b, d, AllIncluded, 0)

	expected := stars.Aim + stars.Speed + abs(stars.Aim-stars.Speed)/2
	assert.InDelta(t, expected, stars.Total, 1e-9)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}

	return v
}

func TestCalculateIdempotent(t *testing.T) {
	b := buildTestMap(48)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	first := Calculate(b, d, AllIncluded, 0)
	second := Calculate(b, d, AllIncluded, 0)

	assert.Equal(t, first, second)
}

func TestCalculateTooFewObjectsReturnsDefault(t *testing.T) {
	b := buildTestMap(1)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	stars := Calculate(b, d, AllIncluded, 0)

	assert.Equal(t, 0.0, stars.Total)
}

func TestCalculatePassedObjectsEquivalentToFullLength(t *testing.T) {
	b := buildTestMap(40)
	d := difficulty.NewDifficulty(b.HP, b.CS, b.OD, b.AR)

	full := Calculate(b, d, AllIncluded, 0)
	explicit := Calculate(b, d, AllIncluded, len(b.HitObjects))

	assert.Equal(t, full, explicit)
}

func TestDifficultyValueSortInvariant(t *testing.T) {
	s := NewSkill(Aim)
	s.strainPeaks = []float64{3, 1, 4, 1, 5, 9, 2, 6}

	a := s.DifficultyValue()

	s2 := NewSkill(Aim)
	s2.strainPeaks = []float64{9, 6, 5, 4, 3, 2, 1, 1}

	b := s2.DifficultyValue()

	assert.InDelta(t, a, b, 1e-9)
}
