package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/framework/math/vector"
)

// Tier selects how much of the map's geometry feeds DifficultyObject:
// NoSlidersNoLeniency treats sliders as plain circles, NoLeniency adds
// slider travel distance. AllIncluded is the default and currently
// computes exactly what NoLeniency computes: no stack-leniency position
// adjustment is applied at any tier.
type Tier int

const (
	NoSlidersNoLeniency Tier = iota
	NoLeniency
	AllIncluded
)

const minDeltaTime = 25

// DifficultyObject is the per-object feature record the Aim/Speed skills
// consume. One is built per (prevPrev, prev, curr) triple; the first object
// in a map never becomes a DifficultyObject since it has no predecessor to
// measure against.
type DifficultyObject struct {
	StartTime  float64
	Delta      float64
	StrainTime float64

	JumpDist   float64
	TravelDist float64
	HasAngle   bool
	Angle      float64
}

// NewDifficultyObject builds the feature record for curr given its
// predecessor prev (and, if available, prevPrev two objects back, needed
// for the angle term). scalingFactor is the per-map normalized-radius
// scale from NewScalingFactor. slider resolves slider travel distance and
// is consulted only at the NoLeniency/AllIncluded tiers.
func NewDifficultyObject(curr, prev, prevPrev *beatmap.HitObject, clockRate, scalingFactor float64, tier Tier, slider beatmap.SliderState) *DifficultyObject {
	delta := curr.StartTime - prev.StartTime
	strainTime := math.Max(delta, minDeltaTime) / clockRate

	currPos := curr.Pos
	prevEndPos := endPosition(prev)

	d := &DifficultyObject{
		StartTime:  curr.StartTime,
		Delta:      delta,
		StrainTime: strainTime,
		JumpDist:   float64(currPos.Sub(prevEndPos).Length()) * scalingFactor,
	}

	if tier != NoSlidersNoLeniency && prev.Kind == beatmap.Slider && slider != nil {
		d.TravelDist = slider.TravelDistance(prev.PixelLen, prev.Repeats) * scalingFactor
	}

	if prevPrev != nil {
		v1 := prev.Pos.Sub(prevPrev.Pos)
		v2 := currPos.Sub(prev.Pos)

		len1, len2 := v1.Length(), v2.Length()

		if len1 > 0 && len2 > 0 {
			dot := float64(v1.X)*float64(v2.X) + float64(v1.Y)*float64(v2.Y)
			cos := dot / float64(len1*len2)
			cos = math.Max(-1, math.Min(1, cos))

			d.HasAngle = true
			d.Angle = math.Acos(cos)
		}
	}

	return d
}

// endPosition returns the point the cursor leaves a hit object at.
// Spinners and circles end where they start; slider end positions would
// need full path geometry, which the SliderState oracle doesn't carry (it
// only returns tick counts and travel distance), so the slider's end is
// approximated by its head position.
func endPosition(h *beatmap.HitObject) vector.Vector2f {
	return h.Pos
}
