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

// TaikoPP is the fluent osu!taiko performance-points calculator.
type TaikoPP struct {
	b    *beatmap.Beatmap
	mods difficulty.Modifier

	od       float64
	maxCombo int
	combo    int
	acc      float64
	nMisses  int

	n300, n100         int
	haveN300, haveN100 bool

	passedObjects int
	stars         *float64
}

// NewTaikoPP seeds maxCombo from the beatmap's circle count (taiko combo
// is one per hit) and od from the beatmap's base OD, both needed by the
// accuracy-value hit-window term.
func NewTaikoPP(b *beatmap.Beatmap) *TaikoPP {
	return &TaikoPP{b: b, maxCombo: b.NCircles, od: b.OD, acc: 1}
}

func (p *TaikoPP) Mods(mods difficulty.Modifier) *TaikoPP {
	p.mods = mods
	return p
}

func (p *TaikoPP) Combo(combo int) *TaikoPP {
	p.combo = combo
	return p
}

func (p *TaikoPP) N300(n int) *TaikoPP {
	p.n300, p.haveN300 = n, true
	return p
}

func (p *TaikoPP) N100(n int) *TaikoPP {
	p.n100, p.haveN100 = n, true
	return p
}

func (p *TaikoPP) Misses(n int) *TaikoPP {
	if n > p.maxCombo {
		n = p.maxCombo
	}

	p.nMisses = n
	return p
}

func (p *TaikoPP) Accuracy(acc float64) *TaikoPP {
	p.acc = acc / 100
	p.haveN300, p.haveN100 = false, false
	return p
}

func (p *TaikoPP) PassedObjects(n int) *TaikoPP {
	p.passedObjects = n
	return p
}

// AttributeProvider hands back a previously computed star rating, or
// reports false when it has none for this mode.
type AttributeProvider interface {
	TaikoAttributes() (Attributes, bool)
}

func (a Attributes) TaikoAttributes() (Attributes, bool) {
	return a, true
}

// Attributes reuses a previously computed star result instead of
// recomputing it. A provider for a different mode is silently ignored.
func (p *TaikoPP) Attributes(provider AttributeProvider) *TaikoPP {
	if attrs, ok := provider.TaikoAttributes(); ok {
		stars := attrs.Stars
		p.stars = &stars
	}

	return p
}

// Calculate resolves the star rating (reusing a supplied one or computing
// it fresh) and runs the strain/accuracy pp combination.
func (p *TaikoPP) Calculate() PpResult {
	var stars float64
	if p.stars != nil {
		stars = *p.stars
	} else {
		d := difficulty.NewDifficulty(p.b.HP, p.b.CS, p.b.OD, p.b.AR)
		d.SetMods(p.mods)

		stars = Calculate(p.b, d, p.passedObjects).Stars
	}

	if p.haveN300 || p.haveN100 {
		total := p.maxCombo
		misses := p.nMisses

		n300 := p.n300
		if n300 > total-misses {
			n300 = total - misses
		}

		n100 := p.n100
		if n100 > total-n300-misses {
			n100 = total - n300 - misses
		}

		given := n300 + n100 + misses
		missing := total - given

		switch {
		case p.haveN300 && p.haveN100:
			n300 += missing
		case p.haveN300:
			n100 += missing
		default:
			n300 += missing
		}

		if n300+n100+misses > 0 {
			p.acc = float64(2*n300+n100) / float64(2*(n300+n100+misses))
		}
	}

	multiplier := 1.1

	if p.mods.Has(difficulty.NoFail) {
		multiplier *= 0.9
	}

	if p.mods.Has(difficulty.Hidden) {
		multiplier *= 1.1
	}

	strainValue := p.computeStrainValue(stars)
	accValue := p.computeAccuracyValue()

	pp := math.Pow(math.Pow(strainValue, 1.1)+math.Pow(accValue, 1.1), 1/1.1) * multiplier

	return PpResult{PP: pp, Stars: stars, Mods: p.mods, Attributes: Attributes{Stars: stars}}
}

func (p *TaikoPP) computeStrainValue(stars float64) float64 {
	expBase := 5*math.Max(stars/0.0075, 1) - 4
	strain := expBase * expBase / 100000

	lenBonus := 1 + 0.1*math.Min(float64(p.maxCombo)/1500, 1)
	strain *= lenBonus

	strain *= math.Pow(0.985, float64(p.nMisses))

	if p.mods.Has(difficulty.Hidden) {
		strain *= 1.025
	}

	if p.mods.Has(difficulty.Flashlight) {
		strain *= 1.05 * lenBonus
	}

	return strain * p.acc
}

func (p *TaikoPP) computeAccuracyValue() float64 {
	od := p.od

	switch {
	case p.mods.Has(difficulty.HardRock):
		od *= 1.4
	case p.mods.Has(difficulty.Easy):
		od *= 0.5
	}

	hitWindow := math.Floor(difficulty.DifficultyRange(od, 20, 35, 50)) / p.mods.Speed()

	return math.Pow(150/hitWindow, 1.1) * math.Pow(p.acc, 15) * 22 *
		math.Min(math.Pow(float64(p.maxCombo)/1500, 0.3), 1.15)
}
