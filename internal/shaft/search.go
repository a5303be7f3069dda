package shaft

import (
	"fmt"
	"math"

	"github.com/alexiusacademia/goshaft/internal/materials"
)

// SearchRange is a half-open range [Min, Max) of diameters (mm) scanned
// in increments of Step.
type SearchRange struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultRange scans 10 mm to 200 mm in 0.1 mm steps (1900 candidates)
var DefaultRange = SearchRange{Min: 10, Max: 200, Step: 0.1}

// Validate rejects ranges that would produce no or non-physical candidates
func (r SearchRange) Validate() error {
	if r.Min <= 0 {
		return &ValidationError{msg: fmt.Sprintf("minimum diameter must be positive, got %g", r.Min)}
	}
	if r.Max <= r.Min {
		return &ValidationError{msg: fmt.Sprintf("maximum diameter %g must exceed minimum %g", r.Max, r.Min)}
	}
	if r.Step <= 0 {
		return &ValidationError{msg: fmt.Sprintf("diameter step must be positive, got %g", r.Step)}
	}
	return nil
}

// Count returns the number of candidates in the range
func (r SearchRange) Count() int {
	return int(math.Ceil((r.Max - r.Min) / r.Step))
}

// Candidate returns the i-th diameter. Computing Min + i·Step avoids the
// drift of repeated addition.
func (r SearchRange) Candidate(i int) float64 {
	return r.Min + float64(i)*r.Step
}

// ValidateDiameter rejects a non-positive diameter (mm) before it reaches
// the stress model
func ValidateDiameter(d float64) error {
	if d <= 0 {
		return &ValidationError{msg: fmt.Sprintf("diameter must be positive, got %g", d)}
	}
	return nil
}

// FindMinimumDiameter scans the range in increasing order and returns the
// first diameter whose factor of safety, with Kt applied, reaches the
// requirement. It returns nil without error when no candidate qualifies.
func FindMinimumDiameter(load LoadCase, req Requirement, mat materials.Material, length float64, rng SearchRange) (*Evaluation, error) {
	eval, _, err := search(load, req, mat, length, rng)
	return eval, err
}

func search(load LoadCase, req Requirement, mat materials.Material, length float64, rng SearchRange) (*Evaluation, int, error) {
	n := rng.Count()
	for i := 0; i < n; i++ {
		eval, err := evaluate(rng.Candidate(i), load, req, mat.YieldStrength)
		if err != nil {
			return nil, i + 1, err
		}
		if !eval.Adequate {
			continue
		}
		if err := eval.withDeflection(length, load.Moment, req.Modulus); err != nil {
			return nil, i + 1, err
		}
		return eval, i + 1, nil
	}
	return nil, n, nil
}

func evaluate(diameter float64, load LoadCase, req Requirement, sy float64) (*Evaluation, error) {
	sigma, err := VonMisesStress(diameter, load.Torque, load.Moment, load.Axial)
	if err != nil {
		return nil, fmt.Errorf("evaluating diameter %.2f mm: %w", diameter, err)
	}
	sigma *= req.StressConcentration

	fos := sy / sigma
	return &Evaluation{
		Diameter:       diameter,
		VonMises:       sigma,
		FactorOfSafety: fos,
		Adequate:       fos >= req.FactorOfSafety,
	}, nil
}

// withDeflection fills in the deflection; length and diameter go in as metres
func (e *Evaluation) withDeflection(length, moment, modulus float64) error {
	delta, err := Deflection(length/1000, e.Diameter/1000, moment, modulus)
	if err != nil {
		return fmt.Errorf("deflection at %.2f mm: %w", e.Diameter, err)
	}
	e.Deflection = delta
	return nil
}
