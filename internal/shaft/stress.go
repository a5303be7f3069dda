package shaft

import "math"

// SectionProperties holds the cross-section properties of a solid circular
// shaft. All values in SI (m, m², m⁴).
type SectionProperties struct {
	Diameter float64 // d (m)
	Radius   float64 // c = d/2 (m)
	J        float64 // polar moment of inertia πd⁴/32
	I        float64 // second moment of area πd⁴/64
	Area     float64 // πd²/4
}

// Section computes the properties of a solid circular section of diameter d (m)
func Section(d float64) SectionProperties {
	d4 := math.Pow(d, 4)
	return SectionProperties{
		Diameter: d,
		Radius:   d / 2,
		J:        math.Pi * d4 / 32,
		I:        math.Pi * d4 / 64,
		Area:     math.Pi * d * d / 4,
	}
}

// VonMisesStress returns the equivalent stress of a shaft of the given
// diameter (mm) carrying torque T (Nm), bending moment M (Nm) and axial
// force F (N).
//
// The result is the raw SI formula output. It is compared directly against
// yield strengths in MPa; no Pa to MPa conversion is applied.
func VonMisesStress(diameterMM, torque, moment, axial float64) (float64, error) {
	if diameterMM <= 0 {
		return 0, &DomainError{Quantity: "diameter", Value: diameterMM}
	}

	sec := Section(diameterMM / 1000)

	tau := torque * sec.Radius / sec.J
	sigmaB := moment * sec.Radius / sec.I
	sigmaA := axial / sec.Area

	return math.Sqrt(sigmaA*sigmaA + sigmaB*sigmaB + 3*tau*tau), nil
}

// Deflection returns δ = M·L²/(8·E·I) in metres for a shaft of length L (m)
// and diameter d (m) under moment M (Nm), with modulus E (Pa).
func Deflection(lengthM, diameterM, moment, modulusPa float64) (float64, error) {
	if diameterM <= 0 {
		return 0, &DomainError{Quantity: "diameter", Value: diameterM}
	}
	if modulusPa <= 0 {
		return 0, &DomainError{Quantity: "modulus", Value: modulusPa}
	}

	inertia := Section(diameterM).I
	return moment * lengthM * lengthM / (8 * modulusPa * inertia), nil
}
