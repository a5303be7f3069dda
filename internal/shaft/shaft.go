package shaft

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/materials"
)

// LoadCase holds the applied loads
type LoadCase struct {
	Torque float64 // T (Nm)
	Moment float64 // M (Nm)
	Axial  float64 // F (N)
}

// Requirement holds the design targets and stiffness input
type Requirement struct {
	FactorOfSafety      float64 // desired FoS
	StressConcentration float64 // Kt, 1.0 for no concentration
	Modulus             float64 // E (Pa)
}

// Shaft is a solid circular shaft to be sized
type Shaft struct {
	Length      float64 // L (mm)
	Load        LoadCase
	Requirement Requirement
	Material    materials.Material

	// Candidate diameters scanned by Design and Sweep
	Range SearchRange
}

// NewShaft creates a shaft scanned over DefaultRange
func NewShaft(length float64, load LoadCase, req Requirement, mat materials.Material) *Shaft {
	return &Shaft{
		Length:      length,
		Load:        load,
		Requirement: req,
		Material:    mat,
		Range:       DefaultRange,
	}
}

// Validate checks that every physical input is strictly positive and that
// Kt is at least 1.0.
func (s *Shaft) Validate() error {
	positive := []struct {
		name  string
		value float64
	}{
		{"torque", s.Load.Torque},
		{"bending moment", s.Load.Moment},
		{"axial load", s.Load.Axial},
		{"shaft length", s.Length},
		{"factor of safety", s.Requirement.FactorOfSafety},
		{"Young's modulus", s.Requirement.Modulus},
		{"yield strength", s.Material.YieldStrength},
	}
	for _, p := range positive {
		if p.value <= 0 {
			return &ValidationError{msg: fmt.Sprintf("%s must be positive, got %g", p.name, p.value)}
		}
	}
	if s.Requirement.StressConcentration < MinStressConcentration {
		return &ValidationError{msg: fmt.Sprintf("stress concentration factor must be at least %.1f, got %g",
			MinStressConcentration, s.Requirement.StressConcentration)}
	}
	return s.Range.Validate()
}

// Evaluation holds the state of the shaft at one candidate diameter
type Evaluation struct {
	Diameter       float64 // mm
	VonMises       float64 // von Mises stress with Kt applied
	FactorOfSafety float64 // Sy / VonMises
	Deflection     float64 // m, only set for accepted or checked diameters
	Adequate       bool    // FactorOfSafety >= desired
}

// DesignResult holds the outcome of a diameter search
type DesignResult struct {
	Found      bool
	Evaluation *Evaluation // minimal adequate diameter when Found

	// Populated when no candidate in the range is adequate
	Recommendations []Recommendation

	Candidates int // number of diameters evaluated
}

// Design finds the minimum adequate diameter. When the range is exhausted
// the result carries the suggested design modifications instead.
func (s *Shaft) Design() (*DesignResult, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	eval, n, err := search(s.Load, s.Requirement, s.Material, s.Length, s.Range)
	if err != nil {
		return nil, err
	}

	result := &DesignResult{Candidates: n}
	if eval != nil {
		result.Found = true
		result.Evaluation = eval
		return result, nil
	}

	result.Recommendations = SuggestModifications(s.Load, s.Material.YieldStrength,
		s.Requirement.FactorOfSafety, s.Requirement.StressConcentration)
	return result, nil
}

// Check evaluates the shaft at a single diameter (mm), deflection included
func (s *Shaft) Check(diameter float64) (*Evaluation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	eval, err := evaluate(diameter, s.Load, s.Requirement, s.Material.YieldStrength)
	if err != nil {
		return nil, err
	}
	if err := eval.withDeflection(s.Length, s.Load.Moment, s.Requirement.Modulus); err != nil {
		return nil, err
	}
	return eval, nil
}

// Sweep evaluates every candidate diameter in the range, without deflection
func (s *Shaft) Sweep() ([]Evaluation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	out := make([]Evaluation, 0, s.Range.Count())
	for i := 0; i < s.Range.Count(); i++ {
		eval, err := evaluate(s.Range.Candidate(i), s.Load, s.Requirement, s.Material.YieldStrength)
		if err != nil {
			return nil, err
		}
		out = append(out, *eval)
	}
	return out, nil
}
