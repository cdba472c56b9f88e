package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

// PpRaw is the per-skill pp breakdown, handed back alongside the combined
// total so callers can render "aim: x, speed: y, acc: z" style result
// tables.
type PpRaw struct {
	Aim   float64
	Speed float64
	Acc   float64
	Total float64
}

// PpResult bundles the combined pp value with its raw breakdown, the mods
// it was computed under, and the attributes that produced it. The
// Attributes field is itself an AttributeProvider, so it can be passed to
// a subsequent calculation on the same (map, mods).
type PpResult struct {
	PP    float64
	Stars float64
	Mods  difficulty.Modifier
	Raw   PpRaw

	Attributes Attributes
}

// OsuPP is the fluent performance-points calculator. Chained setters
// mutate and return the receiver so calls can be composed as one
// expression.
type OsuPP struct {
	b    *beatmap.Beatmap
	mods difficulty.Modifier
	tier Tier

	combo                    int
	n300, n100, n50, nMisses int

	targetAcc     float64
	haveTargetAcc bool

	passedObjects int

	attrs *Attributes
}

func NewOsuPP(b *beatmap.Beatmap) *OsuPP {
	return &OsuPP{b: b, combo: -1, n300: -1, tier: AllIncluded}
}

func (p *OsuPP) Mods(mods difficulty.Modifier) *OsuPP {
	p.mods = mods
	return p
}

// WithTier selects one of the three precision tiers for the fresh star
// calculation; it has no effect when attributes are supplied.
func (p *OsuPP) WithTier(tier Tier) *OsuPP {
	p.tier = tier
	return p
}

func (p *OsuPP) Combo(combo int) *OsuPP {
	p.combo = combo
	return p
}

func (p *OsuPP) Misses(n int) *OsuPP {
	p.nMisses = n
	return p
}

func (p *OsuPP) N300(n int) *OsuPP {
	p.n300 = n
	return p
}

func (p *OsuPP) N100(n int) *OsuPP {
	p.n100 = n
	return p
}

func (p *OsuPP) N50(n int) *OsuPP {
	p.n50 = n
	return p
}

// Accuracy sets a target accuracy percentage in [0, 100]. The individual
// judgement counts are derived from it during Calculate, holding the miss
// count fixed, so the call order relative to Misses does not matter.
func (p *OsuPP) Accuracy(acc float64) *OsuPP {
	p.targetAcc = acc
	p.haveTargetAcc = true
	return p
}

// PassedObjects limits the calculation to a prefix of the map (fail/retry
// scoring).
func (p *OsuPP) PassedObjects(n int) *OsuPP {
	p.passedObjects = n
	return p
}

// AttributeProvider hands back a previously computed Attributes bag, or
// reports false when it has none for this mode (in which case the pp
// calculator recomputes fresh stars).
type AttributeProvider interface {
	OsuAttributes() (Attributes, bool)
}

func (a Attributes) OsuAttributes() (Attributes, bool) {
	return a, true
}

// Attributes reuses a previously computed star result instead of
// recomputing it. A provider for a different mode is silently ignored.
func (p *OsuPP) Attributes(provider AttributeProvider) *OsuPP {
	if attrs, ok := provider.OsuAttributes(); ok {
		p.attrs = &attrs
	}

	return p
}

func (p *OsuPP) totalObjects() int {
	n := len(p.b.HitObjects)
	if p.passedObjects > 0 && p.passedObjects < n {
		n = p.passedObjects
	}

	return n
}

func (p *OsuPP) totalHits() int {
	return p.n300 + p.n100 + p.n50 + p.nMisses
}

func (p *OsuPP) accuracy() float64 {
	total := p.totalHits()
	if total == 0 {
		return 1
	}

	return float64(p.n300*6+p.n100*2+p.n50) / float64(total*6)
}

// applyAccuracy derives n300/n100/n50 from the target accuracy, holding
// misses fixed: everything the accuracy deficit allows becomes 100s, the
// rest 300s.
func (p *OsuPP) applyAccuracy() {
	totalObjects := p.totalObjects()
	n := totalObjects - p.nMisses

	// With n50 pinned to zero, acc = (6*n300 + 2*n100) / (6*total) solves
	// to n100 = 1.5*((total - misses) - acc*total).
	p.n50 = 0
	p.n100 = int(math.Round(1.5 * (float64(n) - p.targetAcc/100*float64(totalObjects))))

	if p.n100 > n {
		p.n100 = n
	}

	if p.n100 < 0 {
		p.n100 = 0
	}

	p.n300 = n - p.n100
}

// Calculate resolves attributes (reusing supplied ones or computing fresh
// stars), finalises the judgement counts, and runs the pp formula.
func (p *OsuPP) Calculate() PpResult {
	var attrs Attributes
	if p.attrs != nil {
		attrs = *p.attrs
	} else {
		d := difficulty.NewDifficulty(p.b.HP, p.b.CS, p.b.OD, p.b.AR)
		d.SetMods(p.mods)

		attrs = Calculate(p.b, d, p.tier, p.passedObjects).Attributes
	}

	if p.haveTargetAcc {
		p.applyAccuracy()
	} else if p.n300 < 0 {
		p.n300 = p.totalObjects() - p.n100 - p.n50 - p.nMisses
		if p.n300 < 0 {
			p.n300 = 0
		}
	}

	if p.combo < 0 {
		p.combo = attrs.MaxCombo
	}

	return p.ppv2(attrs)
}

// ppv2 implements the combined pp formula: aim/speed/acc each computed,
// length-bonused, miss-penalised and combo-scaled, then combined with a
// p=1.1 power-mean norm.
func (p *OsuPP) ppv2(attrs Attributes) PpResult {
	totalHits := p.totalHits()
	if totalHits == 0 {
		return PpResult{Stars: attrs.Stars, Mods: p.mods, Attributes: attrs}
	}

	totalHitsF := float64(totalHits)

	lengthBonus := 0.95 + 0.4*math.Min(1, totalHitsF/2000)
	if totalHits > 2000 {
		lengthBonus += math.Log10(totalHitsF/2000) * 0.5
	}

	aim := p.computeAim(attrs, lengthBonus)
	speed := p.computeSpeed(attrs, lengthBonus)
	acc := p.computeAccuracy(attrs)

	total := math.Pow(
		math.Pow(aim, 1.1)+math.Pow(speed, 1.1)+math.Pow(acc, 1.1),
		1/1.1,
	) * multiplierFor(p.mods)

	return PpResult{
		PP:    total,
		Stars: attrs.Stars,
		Mods:  p.mods,
		Raw: PpRaw{
			Aim:   aim,
			Speed: speed,
			Acc:   acc,
			Total: total,
		},
		Attributes: attrs,
	}
}

func (p *OsuPP) computeAim(attrs Attributes, lengthBonus float64) float64 {
	aim := basePPValue(attrs.AimStrain)
	aim *= lengthBonus
	aim *= math.Pow(0.97, float64(p.nMisses))

	if attrs.MaxCombo > 0 {
		aim *= math.Min(math.Pow(float64(p.combo), 0.8)/math.Pow(float64(attrs.MaxCombo), 0.8), 1)
	}

	arFactor := 0.0
	if attrs.AR > 10.33 {
		arFactor = 0.4 * (attrs.AR - 10.33)
	} else if attrs.AR < 8 {
		arFactor = 0.1 * (8 - attrs.AR)
	}

	aim *= 1 + arFactor

	if p.mods.Has(difficulty.Hidden) {
		aim *= 1 + 0.04*(12-attrs.AR)
	}

	if p.mods.Has(difficulty.Flashlight) {
		totalHits := float64(p.totalHits())

		flBonus := 1 + 0.35*math.Min(1, totalHits/200)
		if totalHits > 200 {
			flBonus += 0.3 * math.Min(1, (totalHits-200)/300)
		}

		if totalHits > 500 {
			flBonus += (totalHits - 500) / 1200
		}

		aim *= flBonus
	}

	accuracy := p.accuracy()
	aim *= 0.5 + accuracy/2
	aim *= 0.98 + math.Pow(attrs.OD, 2)/2500

	return aim
}

func (p *OsuPP) computeSpeed(attrs Attributes, lengthBonus float64) float64 {
	speed := basePPValue(attrs.SpeedStrain)
	speed *= lengthBonus
	speed *= math.Pow(0.97, float64(p.nMisses))

	if attrs.MaxCombo > 0 {
		speed *= math.Min(math.Pow(float64(p.combo), 0.8)/math.Pow(float64(attrs.MaxCombo), 0.8), 1)
	}

	if attrs.AR > 10.33 {
		speed *= 1 + 0.4*(attrs.AR-10.33)
	}

	if p.mods.Has(difficulty.Hidden) {
		speed *= 1 + 0.04*(12-attrs.AR)
	}

	accuracy := p.accuracy()
	speed *= (0.95 + math.Pow(attrs.OD, 2)/750) * math.Pow(accuracy, (14.5-math.Max(attrs.OD, 8))/2)

	if over := p.n50 - p.totalHits()/500; over > 0 {
		speed *= math.Pow(0.98, float64(over))
	}

	return speed
}

func (p *OsuPP) computeAccuracy(attrs Attributes) float64 {
	betterAccPercentage := 0.0
	totalHits := p.totalHits()

	if attrs.NCircles > 0 {
		amount300s := p.n300 - (totalHits - attrs.NCircles)

		betterAccPercentage = float64(amount300s*6+p.n100*2+p.n50) / float64(attrs.NCircles*6)
		if betterAccPercentage < 0 {
			betterAccPercentage = 0
		}
	}

	acc := math.Pow(1.52163, attrs.OD) * math.Pow(betterAccPercentage, 24) * 2.83

	acc *= math.Min(1.15, math.Pow(float64(attrs.NCircles)/1000, 0.3))

	if p.mods.Has(difficulty.Hidden) {
		acc *= 1.08
	}

	if p.mods.Has(difficulty.Flashlight) {
		acc *= 1.02
	}

	return acc
}

func basePPValue(strain float64) float64 {
	return math.Pow(5*math.Max(1, strain/0.0675)-4, 3) / 100000
}

func multiplierFor(mods difficulty.Modifier) float64 {
	multiplier := 1.12

	if mods.Has(difficulty.NoFail) {
		multiplier *= 0.90
	}

	if mods.Has(difficulty.SpunOut) {
		multiplier *= 0.95
	}

	return multiplier
}
