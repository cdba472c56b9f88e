package performance

import (
	"math"

	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
)

// PpResult bundles the combined pp value with the mods and attributes it
// was computed from.
type PpResult struct {
	PP    float64
	Stars float64
	Mods  difficulty.Modifier

	Attributes Attributes
}

// CatchPP is the fluent osu!catch performance-points calculator.
type CatchPP struct {
	b     *beatmap.Beatmap
	mods  difficulty.Modifier
	combo int

	nFruits            int
	nDroplets          int
	nTinyDroplets      int
	nTinyDropletMisses int
	nMisses            int

	haveFruits, haveDroplets, haveTinyDroplets, haveTinyDropletMisses bool

	// derived* marks counts that were produced by a previous accuracy
	// application rather than set by the caller, so a new target accuracy
	// can recompute them instead of treating them as fixed.
	derivedFruits, derivedDroplets, derivedTinyDroplets, derivedTinyDropletMisses bool

	targetAcc     float64
	haveTargetAcc bool

	passedObjects int
	attrs         *Attributes
}

func NewCatchPP(b *beatmap.Beatmap) *CatchPP {
	return &CatchPP{b: b}
}

func (p *CatchPP) Mods(mods difficulty.Modifier) *CatchPP {
	p.mods = mods
	return p
}

func (p *CatchPP) Combo(combo int) *CatchPP {
	p.combo = combo
	return p
}

func (p *CatchPP) Fruits(n int) *CatchPP {
	p.nFruits, p.haveFruits, p.derivedFruits = n, true, false
	return p
}

func (p *CatchPP) Droplets(n int) *CatchPP {
	p.nDroplets, p.haveDroplets, p.derivedDroplets = n, true, false
	return p
}

func (p *CatchPP) TinyDroplets(n int) *CatchPP {
	p.nTinyDroplets, p.haveTinyDroplets, p.derivedTinyDroplets = n, true, false
	return p
}

func (p *CatchPP) TinyDropletMisses(n int) *CatchPP {
	p.nTinyDropletMisses, p.haveTinyDropletMisses, p.derivedTinyDropletMisses = n, true, false
	return p
}

func (p *CatchPP) Misses(n int) *CatchPP {
	p.nMisses = n
	return p
}

func (p *CatchPP) PassedObjects(n int) *CatchPP {
	p.passedObjects = n
	return p
}

// AttributeProvider hands back a previously computed Attributes bag, or
// reports false when it has none for this mode.
type AttributeProvider interface {
	FruitsAttributes() (Attributes, bool)
}

func (a Attributes) FruitsAttributes() (Attributes, bool) {
	return a, true
}

// Attributes reuses a previously computed star result instead of
// recomputing it. A provider for a different mode is silently ignored.
func (p *CatchPP) Attributes(provider AttributeProvider) *CatchPP {
	if attrs, ok := provider.FruitsAttributes(); ok {
		p.attrs = &attrs
	}

	return p
}

// Accuracy sets a target accuracy percentage in [0, 100]. The individual
// judgement counts are reconstructed from it during Calculate, holding
// misses and any explicitly set counts fixed. Counts derived by an
// earlier target are discarded first, so repeated calls with different
// accuracies stay valid in any order.
func (p *CatchPP) Accuracy(acc float64) *CatchPP {
	p.targetAcc = acc
	p.haveTargetAcc = true
	return p
}

// applyAccuracy reconstructs the judgement counts from the target
// accuracy: greedy fill order fruits, then droplets, then tiny droplets.
func (p *CatchPP) applyAccuracy(attrs Attributes) {
	if p.derivedFruits {
		p.haveFruits, p.derivedFruits = false, false
	}

	if p.derivedDroplets {
		p.haveDroplets, p.derivedDroplets = false, false
	}

	if p.derivedTinyDroplets {
		p.haveTinyDroplets, p.derivedTinyDroplets = false, false
	}

	if p.derivedTinyDropletMisses {
		p.haveTinyDropletMisses, p.derivedTinyDropletMisses = false, false
	}

	nDroplets := p.nDroplets
	if !p.haveDroplets {
		nDroplets = saturatingSub(attrs.NDroplets, p.nMisses)
	}

	nFruits := p.nFruits
	if !p.haveFruits {
		nFruits = saturatingSub(saturatingSub(attrs.MaxCombo, p.nMisses), nDroplets)
	}

	maxTinyDroplets := attrs.NTinyDroplets
	acc := p.targetAcc / 100

	nTinyDroplets := p.nTinyDroplets
	if !p.haveTinyDroplets {
		nTinyDroplets = saturatingSub(
			saturatingSub(int(math.Round(acc*float64(attrs.MaxCombo+maxTinyDroplets))), nFruits),
			nDroplets,
		)
	}

	nTinyDropletMisses := saturatingSub(maxTinyDroplets, nTinyDroplets)

	if !p.haveFruits {
		p.derivedFruits = true
	}

	if !p.haveDroplets {
		p.derivedDroplets = true
	}

	if !p.haveTinyDroplets {
		p.derivedTinyDroplets = true
	}

	if !p.haveTinyDropletMisses {
		p.derivedTinyDropletMisses = true
	}

	p.nFruits, p.haveFruits = nFruits, true
	p.nDroplets, p.haveDroplets = nDroplets, true
	p.nTinyDroplets, p.haveTinyDroplets = nTinyDroplets, true
	p.nTinyDropletMisses, p.haveTinyDropletMisses = nTinyDropletMisses, true
}

// assertHitresults repairs an inconsistent or partially specified set of
// hit counts so they sum to the map's actual judgement totals. The repair
// is idempotent: counts that already balance are left untouched.
func (p *CatchPP) assertHitresults(attrs Attributes) {
	correctComboHits := p.haveFruits && p.haveDroplets && p.nFruits+p.nDroplets+p.nMisses == attrs.MaxCombo
	correctFruits := p.haveFruits && p.nFruits >= saturatingSub(attrs.NFruits, p.nMisses)
	correctDroplets := p.haveDroplets && p.nDroplets >= saturatingSub(attrs.NDroplets, p.nMisses)
	correctTinies := p.haveTinyDroplets && p.haveTinyDropletMisses && p.nTinyDroplets+p.nTinyDropletMisses == attrs.NTinyDroplets

	if correctComboHits && correctFruits && correctDroplets && correctTinies {
		return
	}

	nFruits := p.nFruits
	nDroplets := p.nDroplets
	nTinyDroplets := p.nTinyDroplets
	nTinyDropletMisses := p.nTinyDropletMisses

	missing := saturatingSub(saturatingSub(saturatingSub(attrs.MaxCombo, nFruits), nDroplets), p.nMisses)
	missingFruits := saturatingSub(missing, saturatingSub(attrs.NDroplets, nDroplets))

	nFruits += missingFruits
	nDroplets += saturatingSub(missing, missingFruits)
	nTinyDroplets += saturatingSub(saturatingSub(attrs.NTinyDroplets, nTinyDroplets), nTinyDropletMisses)

	p.nFruits, p.haveFruits = nFruits, true
	p.nDroplets, p.haveDroplets = nDroplets, true
	p.nTinyDroplets, p.haveTinyDroplets = nTinyDroplets, true
	p.nTinyDropletMisses, p.haveTinyDropletMisses = nTinyDropletMisses, true
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}

	return a - b
}

func (p *CatchPP) comboHits() int {
	return p.nFruits + p.nDroplets + p.nMisses
}

func (p *CatchPP) successfulHits() int {
	return p.nFruits + p.nDroplets + p.nTinyDroplets
}

func (p *CatchPP) totalHits() int {
	return p.successfulHits() + p.nTinyDropletMisses + p.nMisses
}

func (p *CatchPP) accuracy() float64 {
	total := p.totalHits()
	if total == 0 {
		return 1
	}

	acc := float64(p.successfulHits()) / float64(total)

	return math.Max(0, math.Min(1, acc))
}

// Calculate resolves attributes (reusing supplied ones or computing fresh
// stars), repairs the hit counts, and runs the pp formula: a single
// movement-flavoured term scaled by length, miss, combo, AR, HD, FL and
// accuracy factors.
func (p *CatchPP) Calculate() PpResult {
	var attrs Attributes
	if p.attrs != nil {
		attrs = *p.attrs
	} else {
		d := difficulty.NewDifficulty(p.b.HP, p.b.CS, p.b.OD, p.b.AR)
		d.SetMods(p.mods)

		attrs = Calculate(p.b, d, p.passedObjects)
	}

	if p.haveTargetAcc {
		p.applyAccuracy(attrs)
	}

	p.assertHitresults(attrs)

	stars := attrs.Stars

	pp := math.Pow(5*math.Max(stars/0.0049, 1)-4, 2) / 100000

	comboHits := p.comboHits()
	if comboHits == 0 {
		comboHits = attrs.MaxCombo
	}

	lenBonus := 0.95 + 0.3*math.Min(float64(comboHits)/2500, 1)
	if comboHits > 2500 {
		lenBonus += math.Log10(float64(comboHits)/2500) * 0.475
	}
	pp *= lenBonus

	pp *= math.Pow(0.97, float64(p.nMisses))

	if p.combo > 0 && attrs.MaxCombo > 0 {
		pp *= math.Min(math.Pow(float64(p.combo)/float64(attrs.MaxCombo), 0.8), 1)
	}

	ar := attrs.AR
	arFactor := 1.0
	if ar > 9 {
		arFactor += 0.1 * (ar - 9)
		if ar > 10 {
			arFactor += 0.1 * (ar - 10)
		}
	} else if ar < 8 {
		arFactor += 0.025 * (8 - ar)
	}
	pp *= arFactor

	if p.mods.Has(difficulty.Hidden) {
		if ar <= 10 {
			pp *= 1.05 + 0.075*(10-ar)
		} else {
			pp *= 1.01 + 0.04*(11-math.Min(ar, 11))
		}
	}

	if p.mods.Has(difficulty.Flashlight) {
		pp *= 1.35 * lenBonus
	}

	pp *= math.Pow(p.accuracy(), 5.5)

	if p.mods.Has(difficulty.NoFail) {
		pp *= 0.9
	}

	return PpResult{PP: pp, Stars: stars, Mods: p.mods, Attributes: attrs}
}
