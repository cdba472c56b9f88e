package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/framework/math/mutils"
)

const minDeltaTime = 25

// DifficultyObject is mania's per-note feature record: each note's strain
// depends on how long it has been since the same column was last hit
// (jack difficulty), while the running strain decays with the gap to the
// previous note overall.
type DifficultyObject struct {
	StartTime float64
	Delta     float64 // time since the previous note in any column

	Column         int
	ColumnDelta    float64 // time since this column's previous note
	HasColumnDelta bool
}

// BuildDifficultyObjects tracks a per-column last-hit-time table across the
// object stream (ordered by StartTime, as the rest of the calculators
// assume) and emits one DifficultyObject per note after the first.
func BuildDifficultyObjects(objects []beatmap.HitObject, clockRate float64, columnCount int) []*DifficultyObject {
	if columnCount <= 0 {
		columnCount = 4
	}

	lastHit := make([]float64, columnCount)
	seen := make([]bool, columnCount)

	result := make([]*DifficultyObject, 0, len(objects))

	for i, o := range objects {
		column := columnFor(o, columnCount)

		d := &DifficultyObject{StartTime: o.StartTime, Column: column}

		if i > 0 {
			d.Delta = o.StartTime - objects[i-1].StartTime
		}

		if seen[column] {
			d.HasColumnDelta = true
			d.ColumnDelta = math.Max(o.StartTime-lastHit[column], minDeltaTime) / clockRate
		}

		lastHit[column] = o.StartTime
		seen[column] = true

		if i > 0 {
			result = append(result, d)
		}
	}

	return result
}

// columnFor recovers the note's column from Pos.X, which the beatmap
// layer repurposes as the column index for Mania (see beatmap.go's
// HitObject doc comment) scaled to the playfield width convention
// (column width = 512/columnCount).
func columnFor(o beatmap.HitObject, columnCount int) int {
	col := int(float64(o.Pos.X) * float64(columnCount) / 512)

	return mutils.MinI(mutils.MaxI(col, 0), columnCount-1)
}
