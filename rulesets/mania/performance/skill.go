package performance

import (
	"math"
	"sort"
)

const (
	maniaStrainDecayBase = 0.3
	maniaDecayWeight     = 0.9
)

// Skill accumulates mania's single jack/trill strain: a note arriving
// quickly after the previous note in the *same* column (a same-finger
// repeat, the hardest mania pattern) contributes more strain than a note
// whose column has been idle a while. Aggregation mirrors every other
// mode's section-peak/sorted-weighted-sum machinery.
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
	s.currentStrain *= math.Pow(maniaStrainDecayBase, h.Delta/1000)
	s.currentStrain += s.strainValueOf(h)
	s.currentSectionPeak = math.Max(s.currentStrain, s.currentSectionPeak)
	s.prevTime = h.StartTime
}

func (s *Skill) SaveCurrentPeak() {
	s.strainPeaks = append(s.strainPeaks, s.currentSectionPeak)
}

func (s *Skill) StartNewSectionFrom(sectionEnd float64) {
	s.currentSectionPeak = s.currentStrain * math.Pow(maniaStrainDecayBase, (sectionEnd-s.prevTime)/1000)
}

func (s *Skill) DifficultyValue() float64 {
	peaks := append([]float64(nil), s.strainPeaks...)
	sort.Sort(sort.Reverse(sort.Float64Slice(peaks)))

	difficulty := 0.0
	weight := 1.0

	for _, p := range peaks {
		difficulty += p * weight
		weight *= maniaDecayWeight
	}

	return difficulty
}

func (s *Skill) strainValueOf(h *DifficultyObject) float64 {
	if !h.HasColumnDelta {
		return 0
	}

	return 2 / h.ColumnDelta
}
