package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

// PpResult bundles the combined pp value with the star rating used.
type PpResult struct {
	PP    float64
	Stars float64
	Mods  difficulty.Modifier

	Attributes Attributes
}

// ManiaPP is the fluent osu!mania performance-points calculator. Unlike
// every other mode it is driven by total Score rather than per-judgement
// counts.
type ManiaPP struct {
	b    *beatmap.Beatmap
	mods difficulty.Modifier

	od        float64
	nObjects  int
	score     float64
	haveScore bool

	passedObjects int
	stars         *float64
}

func NewManiaPP(b *beatmap.Beatmap) *ManiaPP {
	return &ManiaPP{b: b, od: b.OD, nObjects: len(b.HitObjects)}
}

func (p *ManiaPP) Mods(mods difficulty.Modifier) *ManiaPP {
	p.mods = mods
	return p
}

func (p *ManiaPP) Score(score float64) *ManiaPP {
	p.score, p.haveScore = score, true
	return p
}

func (p *ManiaPP) PassedObjects(n int) *ManiaPP {
	p.passedObjects = n
	return p
}

func (p *ManiaPP) Stars(stars float64) *ManiaPP {
	p.stars = &stars
	return p
}

// AttributeProvider hands back a previously computed star rating, or
// reports false when it has none for this mode.
type AttributeProvider interface {
	ManiaAttributes() (Attributes, bool)
}

func (a Attributes) ManiaAttributes() (Attributes, bool) {
	return a, true
}

// Attributes reuses a previously computed star result instead of
// recomputing it. A provider for a different mode is silently ignored.
func (p *ManiaPP) Attributes(provider AttributeProvider) *ManiaPP {
	if attrs, ok := provider.ManiaAttributes(); ok {
		stars := attrs.Stars
		p.stars = &stars
	}

	return p
}

// Calculate resolves the star rating (reusing a supplied one or computing
// it fresh) and runs the score-driven pp formula.
func (p *ManiaPP) Calculate() PpResult {
	var stars float64
	if p.stars != nil {
		stars = *p.stars
	} else {
		d := difficulty.NewDifficulty(p.b.HP, p.b.CS, p.b.OD, p.b.AR)
		d.SetMods(p.mods)

		stars = Calculate(p.b, d, p.passedObjects).Stars
	}

	ez := p.mods.Has(difficulty.Easy)
	nf := p.mods.Has(difficulty.NoFail)
	ht := p.mods.Has(difficulty.HalfTime)

	score := 1000000.0
	if p.haveScore {
		score = p.score / math.Pow(0.5, boolF(ez)+boolF(nf)+boolF(ht))
	}

	multiplier := 0.8

	if nf {
		multiplier *= 0.9
	}

	if ez {
		multiplier *= 0.5
	}

	od := 34 + 3*math.Max(math.Min(10-p.od, 10), 0)

	if ez {
		od *= 1.4
	} else if p.mods.Has(difficulty.HardRock) {
		od /= 1.4
	}

	clockRate := p.mods.Speed()
	hitWindow := math.Ceil(math.Floor(od*clockRate) / clockRate)

	strainValue := p.computeStrain(score, stars)
	accValue := p.computeAccuracyValue(score, strainValue, hitWindow)

	pp := math.Pow(math.Pow(strainValue, 1.1)+math.Pow(accValue, 1.1), 1/1.1) * multiplier

	return PpResult{PP: pp, Stars: stars, Mods: p.mods, Attributes: Attributes{Stars: stars}}
}

func (p *ManiaPP) computeStrain(score, stars float64) float64 {
	strain := math.Pow(5*math.Max(stars/0.2, 1)-4, 2.2) / 135

	strain *= 1 + 0.1*math.Min(float64(p.nObjects)/1500, 1)

	switch {
	case score <= 500000:
		strain = 0
	case score <= 600000:
		strain *= (score - 500000) / 100000 * 0.3
	case score <= 700000:
		strain *= 0.3 + (score-600000)/100000*0.25
	case score <= 800000:
		strain *= 0.55 + (score-700000)/100000*0.2
	case score <= 900000:
		strain *= 0.75 + (score-800000)/100000*0.15
	default:
		strain *= 0.9 + (score-900000)/100000*0.1
	}

	return strain
}

func (p *ManiaPP) computeAccuracyValue(score, strain, hitWindow float64) float64 {
	return math.Max(0.2-(hitWindow-34)*0.006667, 0) * strain *
		math.Pow(math.Max(score-960000, 0)/40000, 1.1)
}

func boolF(b bool) float64 {
	if b {
		return 1
	}

	return 0
}
