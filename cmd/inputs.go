package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goshaft/internal/materials"
	"github.com/alexiusacademia/goshaft/internal/scenario"
	"github.com/alexiusacademia/goshaft/internal/shaft"
	"github.com/spf13/cobra"
)

// shaftInputs are the flags shared by design and check
type shaftInputs struct {
	// Loading
	torque float64
	moment float64
	axial  float64

	// Geometry and requirement
	length   float64
	fos      float64
	material string
	modulus  float64 // GPa, 0 for the material's typical value
	kt       float64

	// Scenario file replacing the flags above
	file string
}

func (in *shaftInputs) register(cmd *cobra.Command) {
	// Loading flags
	cmd.Flags().Float64VarP(&in.torque, "torque", "t", 0, "Applied torque T (Nm)")
	cmd.Flags().Float64VarP(&in.moment, "moment", "m", 0, "Bending moment M (Nm)")
	cmd.Flags().Float64VarP(&in.axial, "axial", "f", 0, "Axial load F (N)")

	// Geometry and requirement flags
	cmd.Flags().Float64VarP(&in.length, "length", "l", 0, "Shaft length L (mm)")
	cmd.Flags().Float64VarP(&in.fos, "fos", "s", 2.0, "Desired factor of safety")
	cmd.Flags().StringVar(&in.material, "material", "steel", "Material name (see 'goshaft materials')")
	cmd.Flags().Float64Var(&in.modulus, "modulus", 0, "Young's modulus E (GPa), defaults to the material's typical value")
	cmd.Flags().Float64Var(&in.kt, "kt", 1.0, "Stress concentration factor Kt (1.0 for no concentration)")

	cmd.Flags().StringVar(&in.file, "file", "", "Load inputs from a YAML scenario file")

	cmd.MarkFlagsOneRequired("file", "torque")
	for _, name := range []string{"torque", "moment", "axial", "length", "fos", "material", "modulus", "kt"} {
		cmd.MarkFlagsMutuallyExclusive("file", name)
	}
}

// build creates the shaft from the scenario file or the flags, scanned over
// the configured range
func (in *shaftInputs) build() (*shaft.Shaft, string, error) {
	var (
		s    *shaft.Shaft
		name string
	)

	if in.file != "" {
		sc, loaded, err := scenario.LoadFromFile(in.file)
		if err != nil {
			return nil, "", fmt.Errorf("loading scenario: %w", err)
		}
		s, name = loaded, sc.Name
	} else {
		mat, err := materials.ByName(in.material)
		if err != nil {
			return nil, "", fmt.Errorf("material %q: %w", in.material, err)
		}
		modulus := in.modulus
		if modulus == 0 {
			modulus = mat.TypicalModulus
		}
		s = shaft.NewShaft(in.length,
			shaft.LoadCase{Torque: in.torque, Moment: in.moment, Axial: in.axial},
			shaft.Requirement{FactorOfSafety: in.fos, StressConcentration: in.kt, Modulus: modulus * pascalsPerGPa},
			mat)
	}

	s.Range = searchRange
	if err := s.Validate(); err != nil {
		return nil, "", err
	}
	return s, name, nil
}
