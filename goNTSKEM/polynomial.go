package gontskem

import (
	"fmt"

	"github.com/Rohith04MVK/goNTSKEM/log"
)

// Polynomial is a polynomial over GF(2^m) with a fixed number of coefficient
// slots. Coefficient i multiplies x^i. A degree of -1 denotes the zero
// polynomial.
//
// Slots above the degree carry no meaning. The operations that maintain the
// degree keep them zero.
type Polynomial struct {
	degree int
	coeffs []Element
}

// NewPolynomial allocates a zero polynomial with capacity coefficient slots.
func NewPolynomial(capacity int) (*Polynomial, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return &Polynomial{
		degree: -1,
		coeffs: make([]Element, capacity),
	}, nil
}

// PolynomialFromCoefficients creates a polynomial of the given capacity whose
// low coefficients are coeffs, and normalises its degree. An all-zero input
// yields the zero polynomial with degree -1.
func PolynomialFromCoefficients(capacity int, coeffs ...Element) (*Polynomial, error) {
	if len(coeffs) > capacity {
		return nil, fmt.Errorf("%w: %d coefficients do not fit %d slots", ErrInsufficientCapacity, len(coeffs), capacity)
	}
	p, err := NewPolynomial(capacity)
	if err != nil {
		return nil, err
	}
	copy(p.coeffs, coeffs)
	p.UpdateDegree()
	if p.IsZero() {
		p.degree = -1
	}
	return p, nil
}

// Release drops the coefficient storage. It is safe to call on a nil or
// already released polynomial.
func (p *Polynomial) Release() {
	if p == nil {
		return
	}
	p.coeffs = nil
	p.degree = -1
}

// Released reports whether the storage has been dropped.
func (p *Polynomial) Released() bool {
	return p == nil || p.coeffs == nil
}

// Zero clears every coefficient. The degree is left untouched; call
// UpdateDegree or SetDegree(-1) afterwards if it must reflect the cleared state.
func (p *Polynomial) Zero() {
	for i := range p.coeffs {
		p.coeffs[i] = 0
	}
}

// Clone returns an independent copy with the same capacity, coefficients and degree.
func (p *Polynomial) Clone() (*Polynomial, error) {
	if p.Released() {
		return nil, ErrReleased
	}
	return p.cloneWithCapacity(len(p.coeffs))
}

// cloneWithCapacity copies p into a new polynomial of at least capacity slots.
func (p *Polynomial) cloneWithCapacity(capacity int) (*Polynomial, error) {
	if capacity < len(p.coeffs) {
		capacity = len(p.coeffs)
	}
	q, err := NewPolynomial(capacity)
	if err != nil {
		return nil, err
	}
	copy(q.coeffs, p.coeffs)
	q.degree = p.degree
	return q, nil
}

// copyFrom overwrites p with src: degree plus coefficients, clearing the
// slots of p that src does not have.
func (p *Polynomial) copyFrom(src *Polynomial) error {
	if src.degree >= len(p.coeffs) {
		return fmt.Errorf("%w: degree %d into %d slots", ErrInsufficientCapacity, src.degree, len(p.coeffs))
	}
	n := copy(p.coeffs, src.coeffs)
	for i := n; i < len(p.coeffs); i++ {
		p.coeffs[i] = 0
	}
	p.degree = src.degree
	return nil
}

// UpdateDegree sets the degree to the index of the highest non-zero
// coefficient. The scan stops at index 0, so an all-zero polynomial ends up
// with degree 0, not -1; use IsZero to test for zero.
func (p *Polynomial) UpdateDegree() {
	p.degree = len(p.coeffs) - 1
	for p.degree > 0 && p.coeffs[p.degree] == 0 {
		p.degree--
	}
}

// trimDegree lowers the degree past zero leading coefficients, down to -1.
func (p *Polynomial) trimDegree() {
	for p.degree >= 0 && p.coeffs[p.degree] == 0 {
		p.degree--
	}
}

// IsZero reports whether p is the zero polynomial: degree -1, or degree 0
// with a zero constant term.
func (p *Polynomial) IsZero() bool {
	return p.degree < 0 || (p.degree == 0 && p.coeffs[0] == 0)
}

// Cap returns the number of coefficient slots.
func (p *Polynomial) Cap() int { return len(p.coeffs) }

// Degree returns the recorded degree.
func (p *Polynomial) Degree() int { return p.degree }

// SetDegree records d as the degree without inspecting coefficients.
// d must lie in [-1, Cap()).
func (p *Polynomial) SetDegree(d int) error {
	if p.Released() {
		return ErrReleased
	}
	if d < -1 || d >= len(p.coeffs) {
		return fmt.Errorf("%w: %d with capacity %d", ErrInvalidDegree, d, len(p.coeffs))
	}
	p.degree = d
	return nil
}

// Coefficient returns the coefficient of x^i, or 0 outside [0, Cap()).
func (p *Polynomial) Coefficient(i int) Element {
	if i < 0 || i >= len(p.coeffs) {
		return 0
	}
	return p.coeffs[i]
}

// SetCoefficient writes the coefficient of x^i. The degree is not updated.
func (p *Polynomial) SetCoefficient(i int, v Element) error {
	if p.Released() {
		return ErrReleased
	}
	if i < 0 || i >= len(p.coeffs) {
		return fmt.Errorf("%w: %d with capacity %d", ErrIndexOutOfRange, i, len(p.coeffs))
	}
	p.coeffs[i] = v
	return nil
}

// Coefficients returns a copy of the coefficients up to and including the degree.
func (p *Polynomial) Coefficients() []Element {
	if p.degree < 0 {
		return []Element{}
	}
	out := make([]Element, p.degree+1)
	copy(out, p.coeffs)
	return out
}

// Leading returns the coefficient at the degree, or 0 for the zero polynomial.
func (p *Polynomial) Leading() Element {
	if p.degree < 0 {
		return 0
	}
	return p.coeffs[p.degree]
}

// Equal reports whether p and q have the same degree and the same
// coefficients up to that degree. Capacity is ignored. A nil polynomial
// equals only nil.
func (p *Polynomial) Equal(q *Polynomial) bool {
	if p == nil || q == nil {
		return p == q
	}
	if p.IsZero() || q.IsZero() {
		return p.IsZero() && q.IsZero()
	}
	if p.degree != q.degree {
		return false
	}
	for i := 0; i <= p.degree; i++ {
		if p.coeffs[i] != q.coeffs[i] {
			return false
		}
	}
	return true
}

// rejected records a refused operation at debug level.
func rejected(op string, err error) error {
	log.Default().Module("poly").Debug("operation rejected", "op", op, "err", err)
	return err
}
