package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

const sectionLength = 750.0

// starScalingFactor converts the aggregated Movement difficulty value
// into a star rating, chosen so typical maps land in osu!catch's familiar
// 0-10 star range.
const starScalingFactor = 0.153

// Calculate runs the Movement skill over the beatmap's fruit objects and
// returns the final Attributes.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty, passedObjects int) Attributes {
	objects := b.HitObjects
	if passedObjects > 0 && passedObjects < len(objects) {
		objects = objects[:passedObjects]
	}

	attrs := d.Attributes()

	nFruits, nDroplets, nTinyDroplets, maxCombo := countJudgements(objects, b.Slider)

	base := Attributes{
		AR:            attrs.AR,
		NFruits:       nFruits,
		NDroplets:     nDroplets,
		NTinyDroplets: nTinyDroplets,
		MaxCombo:      maxCombo,
	}

	if len(objects) < 2 {
		return Attributes{AR: attrs.AR}
	}

	movement := runMovement(objects, attrs)

	if v := movement.DifficultyValue(); v > 0 {
		base.Stars = math.Sqrt(v) * starScalingFactor
	}

	return base
}

// CalculateStrains runs the identical driver loop as Calculate but returns
// the raw per-section peaks instead of collapsing them.
func CalculateStrains(b *beatmap.Beatmap, d *difficulty.Difficulty) ([]float64, float64) {
	attrs := d.Attributes()
	sectionLen := sectionLength * attrs.ClockRate

	if len(b.HitObjects) < 2 {
		return nil, sectionLen
	}

	movement := runMovement(b.HitObjects, attrs)

	return movement.strainPeaks, sectionLen
}

func runMovement(objects []beatmap.HitObject, attrs difficulty.MapAttributes) *Movement {
	halfCatcherWidth := calculateCatchWidth(attrs.CS) * 0.5

	dobjects := BuildDifficultyObjects(objects, attrs.ClockRate, halfCatcherWidth)

	movement := NewMovement(attrs.CS)

	sectionLen := sectionLength * attrs.ClockRate
	currentSectionEnd := math.Ceil(objects[0].StartTime/sectionLen) * sectionLen

	for i, obj := range dobjects {
		if i == 0 {
			// No strain has accumulated before the first movement, so
			// leading empty sections are skipped rather than recorded.
			for obj.StartTime > currentSectionEnd {
				currentSectionEnd += sectionLen
			}
		}

		for obj.StartTime > currentSectionEnd {
			movement.SaveCurrentPeak()
			movement.StartNewSectionFrom(currentSectionEnd)

			currentSectionEnd += sectionLen
		}

		movement.Process(obj)
	}

	movement.SaveCurrentPeak()

	return movement
}

// countJudgements classifies each hit object into osu!catch's judgement
// buckets: fruits (circles, slider heads and repeat/tail arrivals),
// droplets (combo-bearing slider ticks), and tiny droplets (the non-combo
// ticks that only feed accuracy). Spinners become banana showers, which
// carry neither combo nor accuracy, so they are skipped entirely.
func countJudgements(objects []beatmap.HitObject, slider beatmap.SliderState) (nFruits, nDroplets, nTinyDroplets, maxCombo int) {
	for _, o := range objects {
		switch o.Kind {
		case beatmap.Circle:
			nFruits++
			maxCombo++
		case beatmap.Slider:
			nFruits += 1 + o.Repeats
			maxCombo += 1 + o.Repeats

			if slider != nil {
				ticks := slider.CountTicks(o.StartTime, o.PixelLen, o.Repeats)

				nDroplets += ticks
				maxCombo += ticks
				nTinyDroplets += slider.CountTinyTicks(o.StartTime, o.PixelLen, o.Repeats)
			}
		}
	}

	return
}
