package main

import (
	"errors"
	"fmt"
)

// Config holds the command-line settings.
type Config struct {
	// FieldDegree is m in GF(2^m). The packed hex format caps it at 12.
	FieldDegree int
	// FieldModulus is the irreducible polynomial defining the field, as a bit mask.
	FieldModulus uint32
	// Capacity is the number of coefficient slots of sampled polynomials.
	Capacity int
	// Verbosity is the log level 0-5 (0=silent, 5=debug).
	Verbosity int
	// Seed keys the SHAKE-256 stream used by the sampler.
	Seed string
}

// DefaultConfig returns the NTS-KEM(12, 64) settings: GF(2^12) modulo
// x^12 + x^3 + 1 and room for a degree-2t polynomial.
func DefaultConfig() Config {
	return Config{
		FieldDegree:  12,
		FieldModulus: 0x1009,
		Capacity:     2*64 + 1,
		Verbosity:    3,
		Seed:         "goNTSKEM",
	}
}

// Validate checks the configuration before any field is built.
func (c *Config) Validate() error {
	if c.FieldDegree < 2 || c.FieldDegree > 12 {
		return fmt.Errorf("field degree %d outside [2, 12]", c.FieldDegree)
	}
	if c.FieldModulus>>uint(c.FieldDegree) != 1 {
		return fmt.Errorf("modulus %#x does not have degree %d", c.FieldModulus, c.FieldDegree)
	}
	if c.Capacity < 2 {
		return fmt.Errorf("capacity %d below 2", c.Capacity)
	}
	if c.Verbosity < 0 || c.Verbosity > 5 {
		return fmt.Errorf("verbosity %d outside [0, 5]", c.Verbosity)
	}
	if c.Seed == "" {
		return errors.New("empty seed")
	}
	return nil
}
