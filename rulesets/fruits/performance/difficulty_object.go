package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
)

const minDeltaTime = 25

// catcherBaseSpeed approximates the catcher's un-dashed max traversal
// speed in playfield pixels per ms, used to flag hyperdash edges.
const catcherBaseSpeed = 0.5

// DifficultyObject is the per-fruit feature record the Movement skill
// consumes.
type DifficultyObject struct {
	StartTime         float64
	Delta             float64
	StrainTime        float64
	ClockRate         float64
	NormalizedPos     float64
	LastNormalizedPos float64

	// Last carries the previous object's hyperdash state.
	Last struct {
		HyperDist float64
		HyperDash bool
	}
}

// BuildDifficultyObjects converts a run of fruit hit objects into the
// Movement skill's input stream, precomputing each object's hyperdash
// state by looking one object ahead (hyperdashing is a property of the
// gap to the *next* object, but the strain formula consumes it off the
// *previous* object, hence the Last indirection).
func BuildDifficultyObjects(objects []beatmap.HitObject, clockRate, halfCatcherWidth float64) []*DifficultyObject {
	if len(objects) == 0 {
		return nil
	}

	type hyper struct {
		dist float64
		dash bool
	}

	hypers := make([]hyper, len(objects))

	for i := 0; i < len(objects)-1; i++ {
		dt := math.Max(objects[i+1].StartTime-objects[i].StartTime, minDeltaTime) / clockRate
		dx := math.Abs(float64(objects[i+1].Pos.X) - float64(objects[i].Pos.X))

		reachable := catcherBaseSpeed * dt
		if dx > reachable {
			hypers[i] = hyper{dist: dx - reachable, dash: true}
		} else {
			hypers[i] = hyper{dist: dx, dash: false}
		}
	}

	result := make([]*DifficultyObject, 0, len(objects)-1)
	lastPos := float64(objects[0].Pos.X)
	scalingFactor := normalizedHitObjectRadius / halfCatcherWidth

	for i := 1; i < len(objects); i++ {
		delta := objects[i].StartTime - objects[i-1].StartTime
		strainTime := math.Max(delta, minDeltaTime) / clockRate

		d := &DifficultyObject{
			StartTime:         objects[i].StartTime,
			Delta:             delta,
			StrainTime:        strainTime,
			ClockRate:         clockRate,
			NormalizedPos:     float64(objects[i].Pos.X) * scalingFactor,
			LastNormalizedPos: lastPos * scalingFactor,
		}

		d.Last.HyperDist = hypers[i-1].dist
		d.Last.HyperDash = hypers[i-1].dash

		lastPos = float64(objects[i].Pos.X)

		result = append(result, d)
	}

	return result
}

// CalculateCatchWidth derives the catcher's plate width from CS.
func CalculateCatchWidth(cs float64) float64 {
	return calculateCatchWidth(cs)
}

func calculateCatchWidth(cs float64) float64 {
	return 2 * 64.0 * (1 - 0.7*(cs-5)/5)
}
