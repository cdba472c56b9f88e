// Package performance implements the osu!mania difficulty and performance
// pipeline. Like Taiko, Mania's star output is stars-only; unlike every
// other mode its pp formula is driven by total score rather than
// accuracy/combo.
package performance

// Attributes is osu!mania's star-rating bag.
type Attributes struct {
	Stars float64
}
