// Package performance implements the osu!catch difficulty and performance
// pipeline: a single Movement strain skill plus the fruit/droplet/tiny
// droplet hit-count accounting CatchPP needs to repair partial judgement
// data into a consistent accuracy.
package performance

// Attributes is osu!catch's star-rating bag.
type Attributes struct {
	Stars         float64
	AR            float64
	NFruits       int
	NDroplets     int
	NTinyDroplets int
	MaxCombo      int
}
