package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

const (
	sectionLength     = 400.0
	starScalingFactor = 0.04325
)

// Calculate drives the rhythm+colour Skill over the beatmap's hit objects
// and returns the star rating, the only attribute this mode carries.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty, passedObjects int) Attributes {
	objects := b.HitObjects
	if passedObjects > 0 && passedObjects < len(objects) {
		objects = objects[:passedObjects]
	}

	if len(objects) < 2 {
		return Attributes{}
	}

	skill := runSkill(objects, d.ClockRate())

	stars := 0.0
	if v := skill.DifficultyValue(); v > 0 {
		stars = math.Sqrt(v) * starScalingFactor
	}

	return Attributes{Stars: stars}
}

// CalculateStrains runs the identical driver loop as Calculate but returns
// the raw per-section peaks instead of collapsing them.
func CalculateStrains(b *beatmap.Beatmap, d *difficulty.Difficulty) ([]float64, float64) {
	clockRate := d.ClockRate()
	sectionLen := sectionLength * clockRate

	if len(b.HitObjects) < 2 {
		return nil, sectionLen
	}

	skill := runSkill(b.HitObjects, clockRate)

	return skill.strainPeaks, sectionLen
}

func runSkill(objects []beatmap.HitObject, clockRate float64) *Skill {
	skill := NewSkill()

	sectionLen := sectionLength * clockRate
	currentSectionEnd := math.Ceil(objects[0].StartTime/sectionLen) * sectionLen

	for i := 1; i < len(objects); i++ {
		var prevPrev *beatmap.HitObject
		if i > 1 {
			prevPrev = &objects[i-2]
		}

		obj := NewDifficultyObject(&objects[i], &objects[i-1], prevPrev, clockRate)

		if i == 1 {
			for obj.StartTime > currentSectionEnd {
				currentSectionEnd += sectionLen
			}
		}

		for obj.StartTime > currentSectionEnd {
			skill.SaveCurrentPeak()
			skill.StartNewSectionFrom(currentSectionEnd)
			currentSectionEnd += sectionLen
		}

		skill.Process(obj)
	}

	skill.SaveCurrentPeak()

	return skill
}
