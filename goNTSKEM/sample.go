package gontskem

import (
	"fmt"
	"io"

	"golang.org/x/crypto/sha3"
)

// SamplePolynomial deterministically derives a polynomial of exactly the
// given degree from seed and nonce. The coefficient stream is SHAKE-256 of
// seed || nonce, read as 12-bit integers (16-bit for m > 12) and masked to m
// bits; a zero leading coefficient is rejected and redrawn.
//
// It is meant for test vectors, benchmarks and tooling, not for secrets.
func SamplePolynomial(ff *GF2m, seed []byte, nonce byte, capacity, degree int) (*Polynomial, error) {
	if degree < 0 || degree >= capacity {
		return nil, fmt.Errorf("%w: degree %d with capacity %d", ErrInvalidSampleDegree, degree, capacity)
	}
	resultPoly, err := NewPolynomial(capacity)
	if err != nil {
		return nil, err
	}

	xof := sha3.NewShake256()
	if _, err := xof.Write(seed); err != nil {
		return nil, err
	}
	if _, err := xof.Write([]byte{nonce}); err != nil {
		return nil, err
	}

	next := newCoefficientStream(xof, ff.Degree())
	mask := Element(ff.Order())
	for i := 0; i < degree; i++ {
		v, err := next()
		if err != nil {
			return nil, err
		}
		resultPoly.coeffs[i] = Element(v) & mask
	}
	for {
		v, err := next()
		if err != nil {
			return nil, err
		}
		if lead := Element(v) & mask; lead != 0 {
			resultPoly.coeffs[degree] = lead
			break
		}
	}
	resultPoly.degree = degree
	return resultPoly, nil
}

// newCoefficientStream returns a function yielding successive raw
// coefficients from r. For m <= 12 three bytes give two 12-bit values.
func newCoefficientStream(r io.Reader, m int) func() (uint16, error) {
	if m > 12 {
		buf := make([]byte, 2)
		return func() (uint16, error) {
			if _, err := io.ReadFull(r, buf); err != nil {
				return 0, err
			}
			return uint16(buf[0]) | uint16(buf[1])<<8, nil
		}
	}

	buf := make([]byte, 3)
	var pending uint16
	havePending := false
	return func() (uint16, error) {
		if havePending {
			havePending = false
			return pending, nil
		}
		if _, err := io.ReadFull(r, buf); err != nil {
			return 0, err
		}
		d0, d1 := unpack12(buf)
		pending, havePending = d1, true
		return d0, nil
	}
}
