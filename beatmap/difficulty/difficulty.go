package difficulty

import "github.com/wieku/rosu-go/framework/math/mutils"

// Difficulty wraps a beatmap's base AR/CS/OD/HP together with the active
// Modifier set, and resolves them into the post-mod MapAttributes view on
// demand:
//
//	diff := difficulty.NewDifficulty(hp, cs, od, ar)
//	diff.SetMods(mods)
//	diff.SetCustomSpeed(customSpeed)
//	diff.CheckModActive(difficulty.Easy)
type Difficulty struct {
	baseHP, baseCS, baseOD, baseAR float64

	Mods Modifier

	customSpeed float64
}

func NewDifficulty(hp, cs, od, ar float64) *Difficulty {
	return &Difficulty{baseHP: hp, baseCS: cs, baseOD: od, baseAR: ar, customSpeed: 1}
}

func (d *Difficulty) SetMods(mods Modifier) {
	d.Mods = mods
}

// SetCustomSpeed applies an additional clock-rate multiplier on top of
// DT/HT, for user-configurable playback speed.
func (d *Difficulty) SetCustomSpeed(speed float64) {
	if speed <= 0 {
		speed = 1
	}

	d.customSpeed = speed
}

func (d *Difficulty) CheckModActive(mask Modifier) bool {
	return d.Mods.Has(mask)
}

// ClockRate is the effective playback rate: DT/NC/HT combined with any
// custom speed override.
func (d *Difficulty) ClockRate() float64 {
	return d.Mods.Speed() * d.customSpeed
}

func (d *Difficulty) GetHP() float64 {
	return scaleCapped(d.baseHP, d.Mods.OdArHpMultiplier())
}

func (d *Difficulty) GetOD() float64 {
	return scaleCapped(d.baseOD, d.Mods.OdArHpMultiplier())
}

func (d *Difficulty) GetAR() float64 {
	return scaleCapped(d.baseAR, d.Mods.OdArHpMultiplier())
}

// GetCS applies the CS-specific HR 1.3x / EZ 0.5x scaling, which differs
// from the shared AR/OD/HP multiplier.
func (d *Difficulty) GetCS() float64 {
	cs := d.baseCS

	switch {
	case d.Mods.Has(HardRock):
		cs *= 1.3
	case d.Mods.Has(Easy):
		cs *= 0.5
	}

	return mutils.MinF64(cs, 10)
}

func scaleCapped(base, multiplier float64) float64 {
	return mutils.MinF64(base*multiplier, 10)
}

// MapAttributes is the post-mod, rate-dilated (ar, od, cs, hp, clock rate)
// bag every difficulty object builder reads from.
type MapAttributes struct {
	AR, OD, CS, HP float64
	ClockRate      float64
}

// Attributes resolves the full post-mod view, including the AR/OD
// hit-window time dilation under DT/HT.
func (d *Difficulty) Attributes() MapAttributes {
	clockRate := d.ClockRate()

	attrs := MapAttributes{
		CS:        d.GetCS(),
		HP:        d.GetHP(),
		ClockRate: clockRate,
	}

	ar := d.GetAR()
	od := d.GetOD()

	if d.Mods.ChangeSpeed() {
		arMS := PreemptMS(ar) / clockRate
		ar = MSToAR(arMS)

		odMS := DifficultyRange(od, 20, 50, 80) / clockRate
		od = (80 - odMS) / 6
	}

	attrs.AR = ar
	attrs.OD = od

	return attrs
}

// PreemptMS converts an AR value into the time (ms) before a hit object's
// start_time that it first becomes visible.
func PreemptMS(ar float64) float64 {
	if ar < 5 {
		return 1200 + 600*(5-ar)/5
	}

	return 1200 - 750*(ar-5)/5
}

// MSToAR is the inverse of PreemptMS, used to re-derive an effective AR
// after a DT/HT clock-rate change dilates the preempt time.
func MSToAR(ms float64) float64 {
	if ms > 1200 {
		return (1800 - ms) / 120
	}

	return (1950 - ms) / 150
}
