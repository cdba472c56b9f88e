package difficulty

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetCSHardRockCap(t *testing.T) {
	d := NewDifficulty(5, 9, 5, 5)
	d.SetMods(HardRock)

	assert.InDelta(t, 10.0, d.GetCS(), 1e-9)
}

func TestGetCSEasyHalves(t *testing.T) {
	d := NewDifficulty(5, 8, 5, 5)
	d.SetMods(Easy)

	assert.InDelta(t, 4.0, d.GetCS(), 1e-9)
}

func TestClockRateCombinesModsAndCustomSpeed(t *testing.T) {
	d := NewDifficulty(5, 5, 5, 5)
	d.SetMods(DoubleTime)
	d.SetCustomSpeed(1.2)

	assert.InDelta(t, 1.8, d.ClockRate(), 1e-9)
}

func TestAttributesAppliesClockRateToAROnDT(t *testing.T) {
	d := NewDifficulty(5, 5, 5, 9)
	d.SetMods(DoubleTime)

	attrs := d.Attributes()

	assert.Greater(t, attrs.AR, 9.0)
	assert.InDelta(t, 1.5, attrs.ClockRate, 1e-9)
}

func TestPreemptMSInverse(t *testing.T) {
	for ar := 0.0; ar <= 11; ar += 0.25 {
		ms := PreemptMS(ar)
		assert.InDelta(t, ar, MSToAR(ms), 1e-6)
	}
}
