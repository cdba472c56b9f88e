package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

const (
	sectionLength     = 400.0
	starScalingFactor = 0.018
	defaultColumns    = 4
)

// Calculate drives the jack/trill Skill over the beatmap's notes and
// returns the star rating, the only attribute this mode carries.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty, passedObjects int) Attributes {
	objects := b.HitObjects
	if passedObjects > 0 && passedObjects < len(objects) {
		objects = objects[:passedObjects]
	}

	if len(objects) < 2 {
		return Attributes{}
	}

	skill := runSkill(objects, b.CS, d.ClockRate())

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

	skill := runSkill(b.HitObjects, b.CS, clockRate)

	return skill.strainPeaks, sectionLen
}

func runSkill(objects []beatmap.HitObject, cs, clockRate float64) *Skill {
	columns := defaultColumns
	if c := int(math.Round(cs)); c > 0 {
		columns = c
	}

	dobjects := BuildDifficultyObjects(objects, clockRate, columns)

	skill := NewSkill()

	sectionLen := sectionLength * clockRate
	currentSectionEnd := math.Ceil(objects[0].StartTime/sectionLen) * sectionLen

	for i, obj := range dobjects {
		if i == 0 {
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
