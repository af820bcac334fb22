package gontskem

import "fmt"

// packedCoeffMask keeps the low 12 bits of a packed coefficient.
const packedCoeffMask = 0xFFF

// PackedBytes returns the encoded length of a polynomial with capacity slots.
func PackedBytes(capacity int) int {
	return 3 * ((capacity + 1) / 2)
}

// PackPolynomial serializes all Cap() coefficients of p, two 12-bit
// coefficients per three bytes. An odd capacity is padded with one zero
// coefficient. The degree is not stored; UnpackPolynomial recomputes it.
func PackPolynomial(p *Polynomial) ([]byte, error) {
	if p.Released() {
		return nil, ErrReleased
	}
	var t0, t1 uint16
	outputBytes := make([]byte, PackedBytes(p.Cap()))
	for i := 0; i < len(outputBytes)/3; i++ {
		t0 = uint16(p.Coefficient(2 * i))
		t1 = uint16(p.Coefficient(2*i + 1))
		if t0 > packedCoeffMask || t1 > packedCoeffMask {
			return nil, fmt.Errorf("%w: pair %d", ErrCoefficientOverflow, i)
		}
		outputBytes[3*i+0] = byte(t0 >> 0)
		outputBytes[3*i+1] = byte(t0>>8) | byte(t1<<4)
		outputBytes[3*i+2] = byte(t1 >> 4)
	}
	return outputBytes, nil
}

// UnpackPolynomial de-serializes bytes produced by PackPolynomial into a
// polynomial with 2*len(inputBytes)/3 slots and a normalised degree.
func UnpackPolynomial(inputBytes []byte) (*Polynomial, error) {
	if len(inputBytes) == 0 || len(inputBytes)%3 != 0 {
		return nil, fmt.Errorf("%w: length %d", ErrMalformedEncoding, len(inputBytes))
	}
	resultPoly, err := NewPolynomial(2 * len(inputBytes) / 3)
	if err != nil {
		return nil, err
	}
	for i := 0; i < len(inputBytes)/3; i++ {
		d0, d1 := unpack12(inputBytes[3*i:])
		resultPoly.coeffs[2*i] = Element(d0)
		resultPoly.coeffs[2*i+1] = Element(d1)
	}
	resultPoly.UpdateDegree()
	if resultPoly.IsZero() {
		resultPoly.degree = -1
	}
	return resultPoly, nil
}

// unpack12 splits three bytes into two 12-bit integers.
func unpack12(b []byte) (uint16, uint16) {
	d0 := (uint16(b[0]) | (uint16(b[1]) << 8)) & packedCoeffMask
	d1 := ((uint16(b[1]) >> 4) | (uint16(b[2]) << 4)) & packedCoeffMask
	return d0, d1
}
