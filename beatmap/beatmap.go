// Package beatmap holds the minimal in-memory beatmap representation the
// difficulty and performance calculators operate on. Parsing an .osu/.osz
// file into this shape, and resolving a slider's path into tick positions,
// are left to external collaborators — this package only defines the
// contracts (Beatmap, HitObject, SliderState) that the rest of the module
// builds against, plus a usable default SliderState so the library works
// out of the box against a bare beatmap.
package beatmap

import "github.com/wieku/rosu-go/framework/math/vector"

// Mode identifies which ruleset a beatmap (and therefore which difficulty
// algorithm) applies to.
type Mode int

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeFruits
	ModeMania
)

// Kind tags the variant carried by a HitObject.
type Kind int

const (
	Circle Kind = iota
	Slider
	Spinner
	Hold
)

// HitObject is the immutable per-note record every mode's difficulty object
// builder consumes. Not every field is meaningful for every Kind: Slider
// carries PixelLen/Repeats, Spinner and Hold carry EndTime, and Mania maps
// Pos.X onto the column index (column width = 512/columnCount).
type HitObject struct {
	Pos       vector.Vector2f
	StartTime float64
	EndTime   float64 // meaningful for Spinner and Hold
	Kind      Kind
	PixelLen  float64 // Slider only
	Repeats   int     // Slider only
	NewCombo  bool

	// Hitsound carries the raw osu! hitsound bitmask (Normal=1, Whistle=2,
	// Finish=4, Clap=8). Taiko derives its don/kat colour from it (Whistle
	// or Clap set means kat, otherwise don) the same way the real game's
	// beatmap converter does; other modes ignore it.
	Hitsound int
}

// SliderState is the external oracle that resolves a slider's path into the
// number of combo-bearing ticks (repeat points + tick points, excluding the
// head which the Slider HitObject itself already represents) and the total
// travel distance a cursor follows along the path. A real implementation
// needs the beatmap's timing points and the slider's control points; this
// package ships DefaultSliderState, a simplified stand-in that estimates
// both from PixelLen/Repeats/BeatLength/SliderMultiplier alone.
type SliderState interface {
	// CountTicks returns the number of combo-bearing ticks contributed by
	// a slider starting at startTime with the given pixel length and
	// repeat count. The slider head and the repeat/tail arrivals are not
	// included; they are counted by the caller.
	CountTicks(startTime, pixelLen float64, repeats int) int
	// CountTinyTicks returns the number of tiny droplets emitted along
	// the slider path. Tiny droplets contribute to accuracy but never to
	// combo, so they are reported separately from CountTicks.
	CountTinyTicks(startTime, pixelLen float64, repeats int) int
	// TravelDistance returns the total path length (in playfield pixels)
	// the cursor travels across all repeats of the slider.
	TravelDistance(pixelLen float64, repeats int) float64
}

// DefaultSliderState approximates tick counts from global timing constants
// instead of walking per-timing-point slider velocity changes. It is close
// enough for star/pp work when a caller hasn't wired in a real
// timing-point-aware oracle.
type DefaultSliderState struct {
	// BeatLength is the ms duration of one beat at the slider's time.
	BeatLength float64
	// SliderMultiplier is the beatmap-wide SV (osu! "slider multiplier" in
	// the .osu [Difficulty] section), in osu!pixels per beat.
	SliderMultiplier float64
	// TickRate is the beatmap-wide slider tick rate, in ticks per beat.
	TickRate float64
}

func NewDefaultSliderState(beatLength, sliderMultiplier, tickRate float64) *DefaultSliderState {
	if beatLength <= 0 {
		beatLength = 500
	}

	if sliderMultiplier <= 0 {
		sliderMultiplier = 1.4
	}

	if tickRate <= 0 {
		tickRate = 1
	}

	return &DefaultSliderState{BeatLength: beatLength, SliderMultiplier: sliderMultiplier, TickRate: tickRate}
}

func (s *DefaultSliderState) velocity() float64 {
	return 100 * s.SliderMultiplier / s.BeatLength
}

func (s *DefaultSliderState) TravelDistance(pixelLen float64, repeats int) float64 {
	if repeats < 1 {
		repeats = 1
	}

	return pixelLen * float64(repeats)
}

func (s *DefaultSliderState) CountTicks(_ float64, pixelLen float64, repeats int) int {
	if repeats < 1 {
		repeats = 1
	}

	sliderDuration := pixelLen * float64(repeats) / s.velocity()
	ticksPerRepeat := int(sliderDuration/float64(repeats)/s.BeatLength*s.TickRate + 1e-9)

	return ticksPerRepeat * repeats
}

func (s *DefaultSliderState) CountTinyTicks(startTime, pixelLen float64, repeats int) int {
	if repeats < 1 {
		repeats = 1
	}

	// Tiny droplets fill the path at eight subdivisions per beat, minus
	// the spots already occupied by regular ticks.
	sliderDuration := pixelLen * float64(repeats) / s.velocity()
	subdivisions := int(sliderDuration / s.BeatLength * 8)

	tiny := subdivisions - s.CountTicks(startTime, pixelLen, repeats)
	if tiny < 0 {
		tiny = 0
	}

	return tiny
}

// Beatmap is the minimal map representation the star/pp calculators consume.
type Beatmap struct {
	HitObjects []HitObject

	NCircles  int
	NSliders  int
	NSpinners int
	NHolds    int // Mania only

	AR, CS, OD, HP float64
	Mode           Mode

	Slider SliderState
}
