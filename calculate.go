package rosu

import (
	"github.com/wieku/rosu-go/beatmap"
	"github.com/wieku/rosu-go/beatmap/difficulty"
	fruitsperf "github.com/wieku/rosu-go/rulesets/fruits/performance"
	maniaperf "github.com/wieku/rosu-go/rulesets/mania/performance"
	osuperf "github.com/wieku/rosu-go/rulesets/osu/performance"
	taikoperf "github.com/wieku/rosu-go/rulesets/taiko/performance"
)

// Stars dispatches to the right mode's star calculator based on b.Mode,
// wrapping its Attributes bag in the mode-agnostic StarResult. This is
// the module's single entry point for "just give me the star rating".
func Stars(b *beatmap.Beatmap, d *difficulty.Difficulty, passedObjects int) StarResult {
	result := StarResult{Mode: modeFromBeatmap(b.Mode)}

	switch result.Mode {
	case ModeTaiko:
		attrs := taikoperf.Calculate(b, d, passedObjects)
		result.Taiko = &attrs
	case ModeFruits:
		attrs := fruitsperf.Calculate(b, d, passedObjects)
		result.Fruits = &attrs
	case ModeMania:
		attrs := maniaperf.Calculate(b, d, passedObjects)
		result.Mania = &attrs
	default:
		attrs := osuperf.Calculate(b, d, osuperf.AllIncluded, passedObjects)
		result.Osu = &attrs.Attributes
	}

	return result
}

// ComputeStrains returns the per-section strain trace for plotting
// difficulty over time. For Standard it is the element-wise sum of the
// Aim and Speed peak sequences; every other mode reports its single
// skill's peaks directly.
func ComputeStrains(b *beatmap.Beatmap, d *difficulty.Difficulty) Strains {
	var (
		peaks      []float64
		sectionLen float64
	)

	switch b.Mode {
	case beatmap.ModeTaiko:
		peaks, sectionLen = taikoperf.CalculateStrains(b, d)
	case beatmap.ModeFruits:
		peaks, sectionLen = fruitsperf.CalculateStrains(b, d)
	case beatmap.ModeMania:
		peaks, sectionLen = maniaperf.CalculateStrains(b, d)
	default:
		peaks, sectionLen = osuperf.CalculateStrains(b, d, osuperf.AllIncluded)
	}

	return Strains{SectionLength: sectionLen, Strains: peaks}
}

// OsuPP, CatchPP, TaikoPP and ManiaPP builders are re-exported under
// this package so a caller who only imported "rosu" (not each mode's
// performance subpackage) still has a route to a fluent calculator.
type OsuPP = osuperf.OsuPP
type CatchPP = fruitsperf.CatchPP
type TaikoPP = taikoperf.TaikoPP
type ManiaPP = maniaperf.ManiaPP

func NewOsuPP(b *beatmap.Beatmap) *OsuPP     { return osuperf.NewOsuPP(b) }
func NewCatchPP(b *beatmap.Beatmap) *CatchPP { return fruitsperf.NewCatchPP(b) }
func NewTaikoPP(b *beatmap.Beatmap) *TaikoPP { return taikoperf.NewTaikoPP(b) }
func NewManiaPP(b *beatmap.Beatmap) *ManiaPP { return maniaperf.NewManiaPP(b) }
