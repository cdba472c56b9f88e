package performance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/wieku/rosu-go/beatmap"
)

func testAttributes() Attributes {
	return Attributes{
		NFruits:       1234,
		NDroplets:     567,
		NTinyDroplets: 2345,
		MaxCombo:      1234 + 567,
		Stars:         4.2,
		AR:            9,
	}
}

func newTestPP() *CatchPP {
	return NewCatchPP(&beatmap.Beatmap{Mode: beatmap.ModeFruits}).Attributes(testAttributes())
}

func reconstructedAcc(p *CatchPP) float64 {
	numerator := p.nFruits + p.nDroplets + p.nTinyDroplets
	denominator := numerator + p.nTinyDropletMisses + p.nMisses

	return 100 * float64(numerator) / float64(denominator)
}

func TestAccuracyReconstructionRoundTrips(t *testing.T) {
	p := newTestPP().Accuracy(97.5)
	p.Calculate()

	assert.InDelta(t, 97.5, reconstructedAcc(p), 1.0)
}

func TestAccuracyPreservesExplicitDroplets(t *testing.T) {
	p := newTestPP().Droplets(550).TinyDroplets(2222).Accuracy(97.5)
	p.Calculate()

	assert.Equal(t, 550, p.nDroplets)
	assert.InDelta(t, 97.5, reconstructedAcc(p), 1.0)
}

func TestAccuracyRepeatedCallsStayValid(t *testing.T) {
	// Counts derived by a previous target accuracy are discarded, so a
	// lower target after a higher one reconstructs from scratch.
	p := newTestPP().Accuracy(99)
	p.Calculate()

	p.Accuracy(95)
	p.Calculate()

	assert.InDelta(t, 95, reconstructedAcc(p), 1.0)
}

func TestAssertHitresultsRepairsMissingObjects(t *testing.T) {
	attrs := testAttributes()

	p := newTestPP().
		Fruits(attrs.NFruits - 10).
		Droplets(attrs.NDroplets - 5).
		TinyDroplets(attrs.NTinyDroplets - 50).
		TinyDropletMisses(20).
		Misses(2)

	p.assertHitresults(attrs)

	assert.LessOrEqual(t, abs(attrs.NFruits-p.nFruits), p.nMisses)
	assert.Equal(t, attrs.NTinyDroplets, p.nTinyDroplets+p.nTinyDropletMisses)
	assert.Equal(t, attrs.MaxCombo, p.nFruits+p.nDroplets+p.nMisses)
}

func TestAssertHitresultsIdempotent(t *testing.T) {
	attrs := testAttributes()

	p := newTestPP().Misses(1)
	p.assertHitresults(attrs)

	nFruits, nDroplets, nTiny := p.nFruits, p.nDroplets, p.nTinyDroplets

	p.assertHitresults(attrs)

	assert.Equal(t, nFruits, p.nFruits)
	assert.Equal(t, nDroplets, p.nDroplets)
	assert.Equal(t, nTiny, p.nTinyDroplets)
}

func TestCalculatePPNonNegativeAndMonotonicInMisses(t *testing.T) {
	attrs := testAttributes()

	ppNoMiss := newTestPP().Combo(attrs.MaxCombo).Calculate().PP
	ppOneMiss := newTestPP().Combo(attrs.MaxCombo).Misses(1).Calculate().PP

	assert.GreaterOrEqual(t, ppNoMiss, 0.0)
	assert.LessOrEqual(t, ppOneMiss, ppNoMiss)
}

func TestCalculateReturnsAttributesAndStars(t *testing.T) {
	p := newTestPP()
	result := p.Calculate()

	assert.Equal(t, testAttributes(), result.Attributes)
	assert.Equal(t, result.Attributes.Stars, result.Stars)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
