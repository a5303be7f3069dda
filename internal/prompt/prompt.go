// Package prompt implements the interactive input side of goshaft: it asks
// for values until they are valid, so the design code never sees bad input.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alexiusacademia/goshaft/internal/materials"
	"github.com/alexiusacademia/goshaft/internal/shaft"
)

// Input supplies validated values to the design flow
type Input interface {
	// RequestPositiveReal asks until a strictly positive number is entered
	RequestPositiveReal(prompt string) (float64, error)

	// SelectMaterial asks until a valid catalog entry is chosen
	SelectMaterial(list []materials.Material) (materials.Material, error)
}

// Console is an Input reading answers line by line
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewConsole creates a console prompting on out and reading from in
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

func (c *Console) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("reading %q: %w", strings.TrimSpace(prompt), io.ErrUnexpectedEOF)
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// RequestPositiveReal implements Input
func (c *Console) RequestPositiveReal(prompt string) (float64, error) {
	for {
		line, err := c.readLine(prompt)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(line, 64)
		if err == nil && value > 0 {
			return value, nil
		}
		fmt.Fprintln(c.out, "Please enter a positive value.")
	}
}

// SelectMaterial implements Input. Entries are numbered from 1.
func (c *Console) SelectMaterial(list []materials.Material) (materials.Material, error) {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Available materials:")
	for i, m := range list {
		fmt.Fprintf(c.out, "%d. %s\n", i+1, m.Name)
	}

	for {
		line, err := c.readLine("\nSelect the material by entering the number: ")
		if err != nil {
			return materials.Material{}, err
		}
		choice, err := strconv.Atoi(line)
		if err == nil && choice >= 1 && choice <= len(list) {
			return list[choice-1], nil
		}
		fmt.Fprintln(c.out, "Invalid choice. Please select a valid material.")
	}
}

// Collect asks for every design input in order and builds the shaft.
// Young's modulus is entered in GPa.
func Collect(in Input) (*shaft.Shaft, error) {
	var load shaft.LoadCase
	var req shaft.Requirement
	var length float64

	values := []struct {
		prompt string
		dst    *float64
	}{
		{"Enter the applied torque (Nm): ", &load.Torque},
		{"Enter the bending moment (Nm): ", &load.Moment},
		{"Enter the axial load (N): ", &load.Axial},
		{"Enter the shaft length (mm): ", &length},
		{"Enter the desired factor of safety: ", &req.FactorOfSafety},
	}
	for _, v := range values {
		x, err := in.RequestPositiveReal(v.prompt)
		if err != nil {
			return nil, err
		}
		*v.dst = x
	}

	mat, err := in.SelectMaterial(materials.List())
	if err != nil {
		return nil, err
	}

	eGPa, err := in.RequestPositiveReal(fmt.Sprintf("Enter the material's Young's Modulus (GPa, typically %.0f): ", mat.TypicalModulus))
	if err != nil {
		return nil, err
	}
	req.Modulus = eGPa * 1e9

	for {
		kt, err := in.RequestPositiveReal("Enter the stress concentration factor (e.g., 1.5 for keyways, 1.0 for no concentration): ")
		if err != nil {
			return nil, err
		}
		if kt >= shaft.MinStressConcentration {
			req.StressConcentration = kt
			break
		}
		if n, ok := in.(Notifier); ok {
			n.Notify("Stress concentration factor must be at least 1.0.")
		}
	}

	return shaft.NewShaft(length, load, req, mat), nil
}

// Notifier is implemented by inputs that can show a message to the user
type Notifier interface {
	Notify(msg string)
}

// Notify implements Notifier
func (c *Console) Notify(msg string) {
	fmt.Fprintln(c.out, msg)
}
