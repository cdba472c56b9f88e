package performance

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	"github.com/wieku/rosu-go/framework/math/vector"
)

func buildTestMap(n, columns int) *beatmap.Beatmap {
	objects := make([]beatmap.HitObject, 0, n)

	colWidth := 512.0 / float64(columns)

	for i := 0; i < n; i++ {
		col := i % columns
		objects = append(objects, beatmap.HitObject{
			Pos:       vector.NewVec2f(float32(colWidth*(float64(col)+0.5)), 0),
			StartTime: float64(i) * 120,
			Kind:      beatmap.Circle,
		})
	}

	return &beatmap.Beatmap{
		HitObjects: objects,
		NCircles:   n,
		CS:         float64(columns),
		OD:         8,
	}
}

func TestCalculateFiniteNonNegative(t *testing.T) {
	b := buildTestMap(80, 4)
	d := difficulty.NewDifficulty(0, b.CS, b.OD, 0)

	attrs := Calculate(b, d, 0)

	assert.GreaterOrEqual(t, attrs.Stars, 0.0)
	assert.False(t, math.IsInf(attrs.Stars, 0))
}

func TestCalculateIdempotent(t *testing.T) {
	b := buildTestMap(60, 4)
	d := difficulty.NewDifficulty(0, b.CS, b.OD, 0)

	first := Calculate(b, d, 0)
	second := Calculate(b, d, 0)

	assert.Equal(t, first, second)
}

func TestCalculateTooFewObjectsReturnsDefault(t *testing.T) {
	b := buildTestMap(1, 4)
	d := difficulty.NewDifficulty(0, b.CS, b.OD, 0)

	attrs := Calculate(b, d, 0)

	assert.Equal(t, 0.0, attrs.Stars)
}

func TestCalculateSameColumnRepeatsIncreaseStrain(t *testing.T) {
	d := difficulty.NewDifficulty(0, 4, 8, 0)

	sameColumn := buildTestMap(60, 4)
	for i := range sameColumn.HitObjects {
		sameColumn.HitObjects[i].Pos = vector.NewVec2f(64, 0)
	}

	spread := buildTestMap(60, 4)

	sameAttrs := Calculate(sameColumn, d, 0)
	spreadAttrs := Calculate(spread, d, 0)

	assert.Greater(t, sameAttrs.Stars, spreadAttrs.Stars)
}
