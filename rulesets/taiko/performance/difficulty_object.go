package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
)

const minDeltaTime = 25

func isKat(h *beatmap.HitObject) bool {
	return h.Hitsound&(2|8) != 0 // Whistle or Clap
}

// DifficultyObject is the per-hit feature record the taiko strain skill
// consumes: ColourChange flags a don/kat alternation against the previous
// hit, RhythmRatio compares this interval to the one before it (relative
// to prevPrev) — the two signals rhythm and colour difficulty are built
// from.
type DifficultyObject struct {
	StartTime    float64
	Delta        float64
	StrainTime   float64
	ColourChange bool
	RhythmRatio  float64
}

func NewDifficultyObject(curr, prev, prevPrev *beatmap.HitObject, clockRate float64) *DifficultyObject {
	delta := curr.StartTime - prev.StartTime
	strainTime := math.Max(delta, minDeltaTime) / clockRate

	d := &DifficultyObject{
		StartTime:    curr.StartTime,
		Delta:        delta,
		StrainTime:   strainTime,
		ColourChange: isKat(curr) != isKat(prev),
		RhythmRatio:  1,
	}

	if prevPrev != nil {
		prevDelta := math.Max(prev.StartTime-prevPrev.StartTime, minDeltaTime) / clockRate
		if prevDelta > 0 {
			d.RhythmRatio = strainTime / prevDelta
		}
	}

	return d
}
