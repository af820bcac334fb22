package gontskem

import "fmt"

// FormalDerivative writes f'(x) into out.
//
// Over GF(2^m) the term i*f_i*x^(i-1) vanishes for every even i, so only the
// odd-power coefficients of f survive, shifted down by one:
//
//	d/dx (f0 + f1*x + f2*x^2 + f3*x^3 + ...) = f1 + f3*x^2 + f5*x^4 + ...
//
// out must hold at least f.Cap()-1 slots and must not be f. A constant or
// zero f yields the zero polynomial with degree -1.
func FormalDerivative(f, out *Polynomial) error {
	if f.Released() || out.Released() {
		return rejected("derivative", ErrReleased)
	}
	if f == out {
		return rejected("derivative", ErrAliasedOperands)
	}
	if out.Cap() < f.Cap()-1 {
		return rejected("derivative", fmt.Errorf("%w: need %d slots, have %d",
			ErrInsufficientCapacity, f.Cap()-1, out.Cap()))
	}

	d := f.degree
	if d <= 0 {
		out.Zero()
		out.degree = -1
		return nil
	}

	for i := 0; i < d; i++ {
		out.coeffs[i] = 0
		if i&1 == 0 {
			out.coeffs[i] = f.coeffs[i+1]
		}
	}
	for i := d; i < len(out.coeffs); i++ {
		out.coeffs[i] = 0
	}

	out.degree = d - 1
	for out.degree > 0 && out.coeffs[out.degree] == 0 {
		out.degree--
	}
	return nil
}
