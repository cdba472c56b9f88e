package performance

import (
	"math"
	"sort"
)

const (
	taikoStrainDecayBase = 0.3
	taikoDecayWeight     = 0.9
	taikoSkillMultiplier = 1.0
)

// Skill is taiko's single rhythm+colour strain engine: a colour change
// (don/kat alternation) against the previous hit adds a flat bonus, and a
// rhythm change (the interval ratio departing from 1) adds a bonus scaled
// by how far the ratio sits from a clean repeat, combined exactly the way
// the shared Aim/Speed skill machinery in the Standard package aggregates
// (section peaks, sorted-descending weighted sum).
type Skill struct {
	currentStrain      float64
	currentSectionPeak float64
	strainPeaks        []float64
	prevTime           float64
}

func NewSkill() *Skill {
	return &Skill{strainPeaks: make([]float64, 0, 128)}
}

func (s *Skill) Process(h *DifficultyObject) {
	s.currentStrain *= math.Pow(taikoStrainDecayBase, h.Delta/1000)
	s.currentStrain += s.strainValueOf(h) * taikoSkillMultiplier
	s.currentSectionPeak = math.Max(s.currentStrain, s.currentSectionPeak)
	s.prevTime = h.StartTime
}

func (s *Skill) SaveCurrentPeak() {
	s.strainPeaks = append(s.strainPeaks, s.currentSectionPeak)
}

func (s *Skill) StartNewSectionFrom(sectionEnd float64) {
	s.currentSectionPeak = s.currentStrain * math.Pow(taikoStrainDecayBase, (sectionEnd-s.prevTime)/1000)
}

func (s *Skill) DifficultyValue() float64 {
	peaks := append([]float64(nil), s.strainPeaks...)
	sort.Sort(sort.Reverse(sort.Float64Slice(peaks)))

	difficulty := 0.0
	weight := 1.0

	for _, p := range peaks {
		difficulty += p * weight
		weight *= taikoDecayWeight
	}

	return difficulty
}

func (s *Skill) strainValueOf(h *DifficultyObject) float64 {
	base := 1.0 / h.StrainTime

	if h.ColourChange {
		base *= 1.075
	}

	ratioDelta := math.Abs(1 - h.RhythmRatio)
	if ratioDelta > 0.01 {
		base *= 1 + math.Min(ratioDelta, 1)*0.5
	}

	return base
}
