package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

const (
	sectionLength = 400.0

	objectRadius     = 64.0
	normalizedRadius = 52.0

	difficultyMultiplier = 0.0675
)

// NewScalingFactor converts CS into the per-map distance scaling factor
// every jump/travel distance is multiplied by, so that a fixed-pixel
// distance reads as "harder" on a smaller circle size.
func NewScalingFactor(cs float64) float64 {
	radius := objectRadius * (1 - 0.7*(cs-5)/5) / 2

	factor := normalizedRadius / radius

	if radius < 30 {
		smallCircleBonus := math.Min(30-radius, 5) / 50
		factor *= 1 + smallCircleBonus
	}

	return factor
}

// effectiveOD re-derives OD from the 300 hit window after clock-rate
// dilation, so DT/HT report the OD a player actually experiences.
func effectiveOD(od, clockRate float64) float64 {
	hitWindow := math.Floor(difficulty.DifficultyRange(od, 20, 50, 80)) / clockRate

	return (80 - hitWindow) / 6
}

// Calculate computes the whole-map Stars snapshot. passedObjects
// restricts the stream to a prefix; 0 means the whole map.
func Calculate(b *beatmap.Beatmap, d *difficulty.Difficulty, tier Tier, passedObjects int) Stars {
	steps := CalculateStep(b, d, tier, passedObjects)
	if len(steps) == 0 {
		attrs := d.Attributes()

		return Stars{Attributes: Attributes{
			AR: attrs.AR,
			OD: effectiveOD(d.GetOD(), attrs.ClockRate),
		}}
	}

	return steps[len(steps)-1]
}

// CalculateStep runs the section-windowed driver loop over the beatmap's
// hit objects up to (and including) passedObjects, returning one Stars
// snapshot per difficulty object processed.
func CalculateStep(b *beatmap.Beatmap, d *difficulty.Difficulty, tier Tier, passedObjects int) []Stars {
	attrs := d.Attributes()
	od := effectiveOD(d.GetOD(), attrs.ClockRate)

	stream, maxCombo, nCircles, nSpinners := prepareStream(b, passedObjects)

	if len(stream) < 2 {
		return nil
	}

	scalingFactor := NewScalingFactor(attrs.CS)
	sectionLen := sectionLength * attrs.ClockRate

	aim := NewSkill(Aim)
	speed := NewSkill(Speed)

	results := make([]Stars, 0, len(stream)-1)

	// The first object contributes no strain; the first section boundary
	// is aligned to the section grid at or after it.
	currentSectionEnd := math.Ceil(stream[0].StartTime/sectionLen) * sectionLen

	for i := 1; i < len(stream); i++ {
		var prevPrev *beatmap.HitObject
		if i > 1 {
			prevPrev = &stream[i-2]
		}

		obj := NewDifficultyObject(&stream[i], &stream[i-1], prevPrev, attrs.ClockRate, scalingFactor, tier, b.Slider)

		if i == 1 {
			// No strain has accumulated yet, so leading empty sections
			// are skipped rather than recorded as zero peaks.
			for obj.StartTime > currentSectionEnd {
				currentSectionEnd += sectionLen
			}
		}

		for obj.StartTime > currentSectionEnd {
			aim.SaveCurrentPeak()
			aim.StartNewSectionFrom(currentSectionEnd)

			speed.SaveCurrentPeak()
			speed.StartNewSectionFrom(currentSectionEnd)

			currentSectionEnd += sectionLen
		}

		aim.Process(obj)
		speed.Process(obj)

		results = append(results, Stars{
			Aim:   starValue(aim.DifficultyValue()),
			Speed: starValue(speed.DifficultyValue()),
			Attributes: Attributes{
				AR:        attrs.AR,
				OD:        od,
				MaxCombo:  maxCombo,
				NCircles:  nCircles,
				NSpinners: nSpinners,
			},
		})
	}

	aim.SaveCurrentPeak()
	speed.SaveCurrentPeak()

	aimStars := starValue(aim.DifficultyValue())
	speedStars := starValue(speed.DifficultyValue())

	total := combineStars(aimStars, speedStars)

	for i := range results {
		results[i].Total = combineStars(results[i].Aim, results[i].Speed)
	}

	last := &results[len(results)-1]
	last.Aim = aimStars
	last.Speed = speedStars
	last.Total = total
	last.Attributes.Stars = total
	last.Attributes.AimStrain = aimStars
	last.Attributes.SpeedStrain = speedStars

	return results
}

// CalculateStrains runs the identical driver loop as CalculateStep but
// returns the raw per-section peaks (aim and speed summed element-wise)
// instead of collapsing them, suitable for plotting difficulty over time.
func CalculateStrains(b *beatmap.Beatmap, d *difficulty.Difficulty, tier Tier) ([]float64, float64) {
	attrs := d.Attributes()
	sectionLen := sectionLength * attrs.ClockRate

	stream, _, _, _ := prepareStream(b, 0)

	if len(stream) < 2 {
		return nil, sectionLen
	}

	scalingFactor := NewScalingFactor(attrs.CS)

	aim := NewSkill(Aim)
	speed := NewSkill(Speed)

	currentSectionEnd := math.Ceil(stream[0].StartTime/sectionLen) * sectionLen

	for i := 1; i < len(stream); i++ {
		var prevPrev *beatmap.HitObject
		if i > 1 {
			prevPrev = &stream[i-2]
		}

		obj := NewDifficultyObject(&stream[i], &stream[i-1], prevPrev, attrs.ClockRate, scalingFactor, tier, b.Slider)

		if i == 1 {
			for obj.StartTime > currentSectionEnd {
				currentSectionEnd += sectionLen
			}
		}

		for obj.StartTime > currentSectionEnd {
			aim.SaveCurrentPeak()
			aim.StartNewSectionFrom(currentSectionEnd)

			speed.SaveCurrentPeak()
			speed.StartNewSectionFrom(currentSectionEnd)

			currentSectionEnd += sectionLen
		}

		aim.Process(obj)
		speed.Process(obj)
	}

	aim.SaveCurrentPeak()
	speed.SaveCurrentPeak()

	peaks := make([]float64, len(aim.strainPeaks))
	for i := range peaks {
		peaks[i] = aim.strainPeaks[i] + speed.strainPeaks[i]
	}

	return peaks, sectionLen
}

// prepareStream drops Hold notes (they have no osu!standard judgement),
// counts circles/spinners, and accumulates the map's max combo, with
// sliders contributing their head plus every repeat arrival and tick.
func prepareStream(b *beatmap.Beatmap, passedObjects int) (stream []beatmap.HitObject, maxCombo, nCircles, nSpinners int) {
	objects := b.HitObjects
	if passedObjects > 0 && passedObjects < len(objects) {
		objects = objects[:passedObjects]
	}

	stream = make([]beatmap.HitObject, 0, len(objects))

	for _, h := range objects {
		switch h.Kind {
		case beatmap.Circle:
			maxCombo++
			nCircles++
		case beatmap.Slider:
			maxCombo += 1 + h.Repeats

			if b.Slider != nil {
				maxCombo += b.Slider.CountTicks(h.StartTime, h.PixelLen, h.Repeats)
			}
		case beatmap.Spinner:
			maxCombo++
			nSpinners++
		case beatmap.Hold:
			continue
		}

		stream = append(stream, h)
	}

	return stream, maxCombo, nCircles, nSpinners
}

func starValue(difficultyValue float64) float64 {
	if difficultyValue <= 0 {
		return 0
	}

	return math.Sqrt(difficultyValue) * difficultyMultiplier
}

func combineStars(aim, speed float64) float64 {
	return aim + speed + math.Abs(aim-speed)/2
}
