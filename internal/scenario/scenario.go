package scenario

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goshaft/internal/materials"
	"github.com/alexiusacademia/goshaft/internal/shaft"
	"gopkg.in/yaml.v3"
)

// Scenario is a shaft design problem stored as YAML
//
//	name: gearbox output shaft
//	torque: 100        # Nm
//	moment: 150        # Nm
//	axial: 500         # N
//	length: 500        # mm
//	safety_factor: 2
//	material: steel
//	modulus_gpa: 200   # optional, material's typical value if omitted
//	stress_concentration: 1.5 # optional, 1.0 if omitted
type Scenario struct {
	Name        string `yaml:"name,omitempty"`
	Description string `yaml:"description,omitempty"`

	Torque float64 `yaml:"torque"` // Nm
	Moment float64 `yaml:"moment"` // Nm
	Axial  float64 `yaml:"axial"`  // N
	Length float64 `yaml:"length"` // mm

	SafetyFactor        float64 `yaml:"safety_factor"`
	Material            string  `yaml:"material"`
	ModulusGPa          float64 `yaml:"modulus_gpa,omitempty"`
	StressConcentration float64 `yaml:"stress_concentration,omitempty"`
}

// LoadFromFile loads and builds a shaft from a YAML scenario file
func LoadFromFile(path string) (*Scenario, *shaft.Shaft, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return Parse(data)
}

// Parse decodes a YAML scenario and builds the validated shaft
func Parse(data []byte) (*Scenario, *shaft.Shaft, error) {
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, nil, fmt.Errorf("parsing scenario: %w", err)
	}

	s, err := sc.Shaft()
	if err != nil {
		return nil, nil, err
	}
	return &sc, s, nil
}

// Shaft resolves the material, applies defaults and validates the result
func (sc *Scenario) Shaft() (*shaft.Shaft, error) {
	mat, err := materials.ByName(sc.Material)
	if err != nil {
		return nil, fmt.Errorf("material %q: %w", sc.Material, err)
	}

	modulus := sc.ModulusGPa
	if modulus == 0 {
		modulus = mat.TypicalModulus
	}
	kt := sc.StressConcentration
	if kt == 0 {
		kt = shaft.MinStressConcentration
	}

	s := shaft.NewShaft(sc.Length,
		shaft.LoadCase{Torque: sc.Torque, Moment: sc.Moment, Axial: sc.Axial},
		shaft.Requirement{FactorOfSafety: sc.SafetyFactor, StressConcentration: kt, Modulus: modulus * 1e9},
		mat)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}
