package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testAttributes() Attributes {
	return Attributes{
		Stars:       5.2,
		AR:          9.3,
		OD:          8.7,
		AimStrain:   2.6,
		SpeedStrain: 2.2,
		MaxCombo:    1200,
		NCircles:    700,
		NSpinners:   3,
	}
}

func testPP(attrs Attributes) *OsuPP {
	b := buildTestMap(attrs.NCircles + attrs.NSpinners)

	return NewOsuPP(b).Attributes(attrs)
}

func TestCalculatePPNonNegativeFinite(t *testing.T) {
	result := testPP(testAttributes()).Accuracy(99).Calculate()

	assert.GreaterOrEqual(t, result.PP, 0.0)
	assert.Greater(t, result.Raw.Aim, 0.0)
	assert.Greater(t, result.Raw.Speed, 0.0)
	assert.Equal(t, result.Raw.Total, result.PP)
}

func TestCalculatePPMonotonicInMisses(t *testing.T) {
	attrs := testAttributes()

	prev := testPP(attrs).Accuracy(99).Calculate().PP

	for misses := 1; misses <= 16; misses *= 2 {
		cur := testPP(attrs).Accuracy(99).Misses(misses).Calculate().PP

		assert.LessOrEqual(t, cur, prev)
		prev = cur
	}
}

func TestCalculatePPMonotonicInAccuracy(t *testing.T) {
	attrs := testAttributes()

	low := testPP(attrs).Accuracy(92).Calculate().PP
	high := testPP(attrs).Accuracy(99).Calculate().PP

	assert.LessOrEqual(t, low, high)
}

func TestCalculatePPComboScaling(t *testing.T) {
	attrs := testAttributes()

	fullCombo := testPP(attrs).Accuracy(99).Calculate().PP
	halfCombo := testPP(attrs).Accuracy(99).Combo(attrs.MaxCombo / 2).Calculate().PP

	assert.Less(t, halfCombo, fullCombo)
}

func TestCalculateDerivesCountsFromAccuracy(t *testing.T) {
	attrs := testAttributes()

	p := testPP(attrs).Accuracy(97).Misses(2)
	p.Calculate()

	assert.Equal(t, p.totalObjects(), p.n300+p.n100+p.n50+p.nMisses)
	assert.InDelta(t, 0.97, p.accuracy(), 0.01)
}

func TestCalculateHitCountsDirectly(t *testing.T) {
	attrs := testAttributes()

	result := testPP(attrs).N300(690).N100(10).N50(3).Calculate()

	assert.Greater(t, result.PP, 0.0)
}
