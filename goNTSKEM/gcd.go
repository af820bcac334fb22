package gontskem

import "fmt"

// moduloReduce replaces a with a mod m.
//
// Each step cancels the leading term of a against the leading term of m
// scaled by lead(a)/lead(m), so the degree of a strictly decreases. Every
// coefficient of m is processed on every step, zero or not.
//
// Zero slots above the recorded degree of m are skipped, so an m whose
// coefficients were cleared without updating the degree still reports
// ErrZeroModulus.
func moduloReduce(ff Field, m, a *Polynomial) error {
	if m == a {
		return ErrAliasedOperands
	}
	md := m.degree
	for md >= 0 && m.coeffs[md] == 0 {
		md--
	}
	if md < 0 {
		return ErrZeroModulus
	}

	invLead := ff.Inv(m.coeffs[md])
	for a.degree >= md {
		scale := ff.Mul(a.coeffs[a.degree], invLead)
		shift := a.degree - md
		for i := 0; i <= md; i++ {
			a.coeffs[i+shift] = ff.Add(a.coeffs[i+shift], ff.Mul(m.coeffs[i], scale))
		}
		a.coeffs[a.degree] = 0
		a.trimDegree()
	}
	return nil
}

// GCD computes g(x) = gcd(a(x), b(x)) with the Euclidean algorithm:
//
//	(s, t) = (a, b)
//	while t != 0: (s, t) = (t, s mod t)
//	g = s
//
// The result is not made monic; its leading coefficient is whatever the
// remainder sequence produces. g must have at least max(a.Cap(), b.Cap())
// slots. g may be a or b, since both are copied before g is written.
func GCD(ff Field, a, b, g *Polynomial) error {
	if a.Released() || b.Released() || g.Released() {
		return rejected("gcd", ErrReleased)
	}
	n := a.Cap()
	if b.Cap() > n {
		n = b.Cap()
	}
	if g.Cap() < n {
		return rejected("gcd", fmt.Errorf("%w: need %d slots, have %d",
			ErrInsufficientCapacity, n, g.Cap()))
	}

	s, err := a.cloneWithCapacity(n)
	if err != nil {
		return rejected("gcd", err)
	}
	defer s.Release()
	t, err := b.cloneWithCapacity(n)
	if err != nil {
		return rejected("gcd", err)
	}
	defer t.Release()
	s.trimDegree()
	t.trimDegree()

	for !t.IsZero() {
		// g(x) = s(x) mod t(x)
		if err := g.copyFrom(s); err != nil {
			return rejected("gcd", err)
		}
		if err := moduloReduce(ff, t, g); err != nil {
			return rejected("gcd", err)
		}
		// (s, t) = (t, g)
		if err := s.copyFrom(t); err != nil {
			return rejected("gcd", err)
		}
		if err := t.copyFrom(g); err != nil {
			return rejected("gcd", err)
		}
	}
	if err := g.copyFrom(s); err != nil {
		return rejected("gcd", err)
	}
	return nil
}
