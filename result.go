// Package rosu ties the four per-mode difficulty/performance packages
// together behind mode-agnostic result types: StarResult and PpResult are
// tagged unions over the four modes' attribute bags. The bundling happens
// one level above the mode packages so all four can share one result
// vocabulary without an import cycle (this package imports each mode's
// performance package; none of them import this one back).
package rosu

import (
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	fruitsperf "github.com/wieku/rosu-go/rulesets/fruits/performance"
	maniaperf "github.com/wieku/rosu-go/rulesets/mania/performance"
	osuperf "github.com/wieku/rosu-go/rulesets/osu/performance"
	taikoperf "github.com/wieku/rosu-go/rulesets/taiko/performance"
)

// Mode identifies which ruleset a StarResult/PpResult belongs to. Kept
// distinct from beatmap.Mode so this package's public API doesn't force
// callers to import beatmap just to branch on it.
type Mode int

const (
	ModeOsu Mode = iota
	ModeTaiko
	ModeFruits
	ModeMania
)

func modeFromBeatmap(m beatmap.Mode) Mode {
	switch m {
	case beatmap.ModeTaiko:
		return ModeTaiko
	case beatmap.ModeFruits:
		return ModeFruits
	case beatmap.ModeMania:
		return ModeMania
	default:
		return ModeOsu
	}
}

// StarResult is the tagged union over the four modes' attribute bags.
// Exactly one of the pointer fields matching Mode is set.
type StarResult struct {
	Mode Mode

	Osu    *osuperf.Attributes
	Taiko  *taikoperf.Attributes
	Fruits *fruitsperf.Attributes
	Mania  *maniaperf.Attributes
}

// Stars returns the star rating regardless of which mode populated this
// result, so callers that only care about the scalar don't need to
// branch on Mode themselves.
func (r StarResult) Stars() float64 {
	switch r.Mode {
	case ModeOsu:
		if r.Osu != nil {
			return r.Osu.Stars
		}
	case ModeTaiko:
		if r.Taiko != nil {
			return r.Taiko.Stars
		}
	case ModeFruits:
		if r.Fruits != nil {
			return r.Fruits.Stars
		}
	case ModeMania:
		if r.Mania != nil {
			return r.Mania.Stars
		}
	}

	return 0
}

// PpRaw is the per-skill pp breakdown, present only for the modes whose
// formula actually decomposes into named components (Standard: aim/
// speed/acc; Catch/Taiko/Mania: the combined value reported via Total
// only). Zero fields mean "not applicable to this mode".
type PpRaw struct {
	Aim   float64
	Speed float64
	Acc   float64
	Total float64
}

// PpResult is the mode-agnostic performance result: mode/mods the
// calculation ran with, the combined pp, its raw breakdown, and the
// StarResult that produced it — itself a valid attribute provider for a
// subsequent pp call on the same (map, mods).
type PpResult struct {
	Mode Mode
	Mods difficulty.Modifier
	PP   float64
	Raw  PpRaw

	Attributes StarResult
}

// Strains is the section-by-section strain trace used for plotting
// difficulty over time. For Standard it is the element-wise sum of the
// Aim and Speed peak sequences; every other mode reports its single
// skill's peaks directly.
type Strains struct {
	SectionLength float64
	Strains       []float64
}

// StarAttributeProvider is anything that can hand back a StarResult, so a
// previous star or pp calculation can be reused instead of recomputed.
// When the provider's Mode disagrees with what the caller asked for,
// Provide returns false and the pp calculator recomputes fresh attributes
// instead of silently using the wrong mode's numbers.
type StarAttributeProvider interface {
	Provide(want Mode) (StarResult, bool)
}

func (r StarResult) Provide(want Mode) (StarResult, bool) {
	if r.Mode != want {
		return StarResult{}, false
	}

	return r, true
}

func (p PpResult) Provide(want Mode) (StarResult, bool) {
	return p.Attributes.Provide(want)
}

// The four per-mode provider methods let a StarResult (and, by
// delegation, a PpResult) be passed straight to any mode's pp builder
// Attributes(...) call: the builder for the wrong mode gets a false and
// recomputes fresh stars instead.

func (r StarResult) OsuAttributes() (osuperf.Attributes, bool) {
	if r.Mode != ModeOsu || r.Osu == nil {
		return osuperf.Attributes{}, false
	}

	return *r.Osu, true
}

func (r StarResult) FruitsAttributes() (fruitsperf.Attributes, bool) {
	if r.Mode != ModeFruits || r.Fruits == nil {
		return fruitsperf.Attributes{}, false
	}

	return *r.Fruits, true
}

func (r StarResult) TaikoAttributes() (taikoperf.Attributes, bool) {
	if r.Mode != ModeTaiko || r.Taiko == nil {
		return taikoperf.Attributes{}, false
	}

	return *r.Taiko, true
}

func (r StarResult) ManiaAttributes() (maniaperf.Attributes, bool) {
	if r.Mode != ModeMania || r.Mania == nil {
		return maniaperf.Attributes{}, false
	}

	return *r.Mania, true
}

func (p PpResult) OsuAttributes() (osuperf.Attributes, bool) {
	return p.Attributes.OsuAttributes()
}

func (p PpResult) FruitsAttributes() (fruitsperf.Attributes, bool) {
	return p.Attributes.FruitsAttributes()
}

func (p PpResult) TaikoAttributes() (taikoperf.Attributes, bool) {
	return p.Attributes.TaikoAttributes()
}

func (p PpResult) ManiaAttributes() (maniaperf.Attributes, bool) {
	return p.Attributes.ManiaAttributes()
}

// FromOsu lifts an osu!standard pp result into the mode-agnostic shape.
func FromOsu(r osuperf.PpResult) PpResult {
	attrs := r.Attributes

	return PpResult{
		Mode: ModeOsu,
		Mods: r.Mods,
		PP:   r.PP,
		Raw:  PpRaw{Aim: r.Raw.Aim, Speed: r.Raw.Speed, Acc: r.Raw.Acc, Total: r.Raw.Total},

		Attributes: StarResult{Mode: ModeOsu, Osu: &attrs},
	}
}

// FromCatch lifts an osu!catch pp result into the mode-agnostic shape.
func FromCatch(r fruitsperf.PpResult) PpResult {
	attrs := r.Attributes

	return PpResult{
		Mode: ModeFruits,
		Mods: r.Mods,
		PP:   r.PP,
		Raw:  PpRaw{Total: r.PP},

		Attributes: StarResult{Mode: ModeFruits, Fruits: &attrs},
	}
}

// FromTaiko lifts an osu!taiko pp result into the mode-agnostic shape.
func FromTaiko(r taikoperf.PpResult) PpResult {
	attrs := r.Attributes

	return PpResult{
		Mode: ModeTaiko,
		Mods: r.Mods,
		PP:   r.PP,
		Raw:  PpRaw{Total: r.PP},

		Attributes: StarResult{Mode: ModeTaiko, Taiko: &attrs},
	}
}

// FromMania lifts an osu!mania pp result into the mode-agnostic shape.
func FromMania(r maniaperf.PpResult) PpResult {
	attrs := r.Attributes

	return PpResult{
		Mode: ModeMania,
		Mods: r.Mods,
		PP:   r.PP,
		Raw:  PpRaw{Total: r.PP},

		Attributes: StarResult{Mode: ModeMania, Mania: &attrs},
	}
}
