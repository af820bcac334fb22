package gontskem

import (
	"errors"
	"testing"
)

// mustPoly builds a normalised polynomial or fails the test.
func mustPoly(t testing.TB, capacity int, coeffs ...Element) *Polynomial {
	t.Helper()
	p, err := PolynomialFromCoefficients(capacity, coeffs...)
	if err != nil {
		t.Fatalf("PolynomialFromCoefficients(%d, %v): %v", capacity, coeffs, err)
	}
	return p
}

// assertCoeffs checks degree and the coefficients up to the degree.
func assertCoeffs(t testing.TB, p *Polynomial, degree int, want ...Element) {
	t.Helper()
	if p.Degree() != degree {
		t.Fatalf("degree = %d, want %d", p.Degree(), degree)
	}
	got := p.Coefficients()
	if len(got) != len(want) {
		t.Fatalf("coefficients = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("coefficients = %v, want %v", got, want)
		}
	}
}

func TestNewPolynomial(t *testing.T) {
	p, err := NewPolynomial(8)
	if err != nil {
		t.Fatalf("NewPolynomial: %v", err)
	}
	if p.Cap() != 8 {
		t.Errorf("Cap() = %d, want 8", p.Cap())
	}
	if p.Degree() != -1 {
		t.Errorf("Degree() = %d, want -1", p.Degree())
	}
	for i := 0; i < p.Cap(); i++ {
		if p.Coefficient(i) != 0 {
			t.Fatalf("coefficient %d = %d, want 0", i, p.Coefficient(i))
		}
	}
	if !p.IsZero() {
		t.Error("new polynomial is not zero")
	}
}

func TestNewPolynomialInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1, -100} {
		p, err := NewPolynomial(c)
		if !errors.Is(err, ErrInvalidCapacity) {
			t.Errorf("NewPolynomial(%d) err = %v, want ErrInvalidCapacity", c, err)
		}
		if p != nil {
			t.Errorf("NewPolynomial(%d) returned non-nil polynomial", c)
		}
	}
}

func TestPolynomialFromCoefficients(t *testing.T) {
	p := mustPoly(t, 6, 1, 0, 1, 0)
	assertCoeffs(t, p, 2, 1, 0, 1)

	z := mustPoly(t, 4, 0, 0)
	if z.Degree() != -1 {
		t.Fatalf("all-zero input degree = %d, want -1", z.Degree())
	}

	if _, err := PolynomialFromCoefficients(2, 1, 2, 3); !errors.Is(err, ErrInsufficientCapacity) {
		t.Fatalf("overfull input err = %v, want ErrInsufficientCapacity", err)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	p := mustPoly(t, 4, 1, 2, 3)
	p.Release()
	if !p.Released() {
		t.Fatal("Released() = false after Release")
	}
	if p.Degree() != -1 || p.Cap() != 0 {
		t.Fatalf("released polynomial has degree %d cap %d", p.Degree(), p.Cap())
	}
	p.Release()

	var nilPoly *Polynomial
	nilPoly.Release()
	if !nilPoly.Released() {
		t.Fatal("nil polynomial reports not released")
	}
}

func TestReleasedOperationsFail(t *testing.T) {
	p := mustPoly(t, 4, 1, 2)
	p.Release()

	if _, err := p.Clone(); !errors.Is(err, ErrReleased) {
		t.Errorf("Clone err = %v, want ErrReleased", err)
	}
	if err := p.SetCoefficient(0, 1); !errors.Is(err, ErrReleased) {
		t.Errorf("SetCoefficient err = %v, want ErrReleased", err)
	}
	if err := p.SetDegree(0); !errors.Is(err, ErrReleased) {
		t.Errorf("SetDegree err = %v, want ErrReleased", err)
	}
	if _, err := PackPolynomial(p); !errors.Is(err, ErrReleased) {
		t.Errorf("PackPolynomial err = %v, want ErrReleased", err)
	}
}

func TestZeroKeepsDegree(t *testing.T) {
	p := mustPoly(t, 5, 3, 0, 7, 1)
	p.Zero()
	for i := 0; i < p.Cap(); i++ {
		if p.Coefficient(i) != 0 {
			t.Fatalf("coefficient %d = %d after Zero", i, p.Coefficient(i))
		}
	}
	if p.Degree() != 3 {
		t.Fatalf("Zero changed degree to %d, want 3", p.Degree())
	}

	p.UpdateDegree()
	if p.Degree() != 0 {
		t.Fatalf("UpdateDegree after Zero = %d, want 0", p.Degree())
	}
	if !p.IsZero() {
		t.Fatal("zeroed polynomial is not IsZero")
	}
}

func TestCloneIndependence(t *testing.T) {
	p := mustPoly(t, 6, 4, 0, 2, 5)
	q, err := p.Clone()
	if err != nil {
		t.Fatalf("Clone: %v", err)
	}
	if q.Cap() != p.Cap() {
		t.Fatalf("clone cap = %d, want %d", q.Cap(), p.Cap())
	}

	if err := p.SetCoefficient(0, 7); err != nil {
		t.Fatal(err)
	}
	if err := p.SetCoefficient(5, 1); err != nil {
		t.Fatal(err)
	}
	p.UpdateDegree()
	p.Release()

	assertCoeffs(t, q, 3, 4, 0, 2, 5)
}

func TestCloneCopiesDegreeVerbatim(t *testing.T) {
	p := mustPoly(t, 4, 1, 1)
	if err := p.SetDegree(3); err != nil {
		t.Fatal(err)
	}
	q, err := p.Clone()
	if err != nil {
		t.Fatal(err)
	}
	if q.Degree() != 3 {
		t.Fatalf("clone degree = %d, want 3", q.Degree())
	}
}

func TestUpdateDegree(t *testing.T) {
	tests := []struct {
		name   string
		coeffs []Element
		want   int
	}{
		{"full", []Element{1, 2, 3, 4}, 3},
		{"trailing zeros", []Element{1, 2, 0, 0}, 1},
		{"constant", []Element{5, 0, 0, 0}, 0},
		{"all zero stops at 0", []Element{0, 0, 0, 0}, 0},
		{"monomial", []Element{0, 0, 6, 0}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPolynomial(len(tt.coeffs))
			if err != nil {
				t.Fatal(err)
			}
			for i, c := range tt.coeffs {
				if err := p.SetCoefficient(i, c); err != nil {
					t.Fatal(err)
				}
			}
			p.UpdateDegree()
			if p.Degree() != tt.want {
				t.Fatalf("degree = %d, want %d", p.Degree(), tt.want)
			}
			p.UpdateDegree()
			if p.Degree() != tt.want {
				t.Fatalf("second UpdateDegree = %d, want %d", p.Degree(), tt.want)
			}
		})
	}
}

func TestIsZeroAmbiguity(t *testing.T) {
	p, err := NewPolynomial(3)
	if err != nil {
		t.Fatal(err)
	}
	if !p.IsZero() {
		t.Fatal("degree -1 is not zero")
	}

	p.UpdateDegree()
	if p.Degree() != 0 || !p.IsZero() {
		t.Fatalf("degree 0 with zero constant: degree %d IsZero %v", p.Degree(), p.IsZero())
	}

	if err := p.SetCoefficient(0, 1); err != nil {
		t.Fatal(err)
	}
	if p.IsZero() {
		t.Fatal("non-zero constant reported as zero")
	}
}

func TestSetCoefficientBounds(t *testing.T) {
	p := mustPoly(t, 3, 1)
	for _, i := range []int{-1, 3, 10} {
		if err := p.SetCoefficient(i, 1); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("SetCoefficient(%d) err = %v, want ErrIndexOutOfRange", i, err)
		}
	}
	if p.Coefficient(-1) != 0 || p.Coefficient(99) != 0 {
		t.Error("out-of-range Coefficient is not 0")
	}
}

func TestSetDegreeBounds(t *testing.T) {
	p := mustPoly(t, 3, 1, 1)
	for _, d := range []int{-2, 3} {
		if err := p.SetDegree(d); !errors.Is(err, ErrInvalidDegree) {
			t.Errorf("SetDegree(%d) err = %v, want ErrInvalidDegree", d, err)
		}
	}
	if err := p.SetDegree(-1); err != nil {
		t.Fatalf("SetDegree(-1): %v", err)
	}
	if !p.IsZero() {
		t.Fatal("SetDegree(-1) did not make the polynomial zero")
	}
}

func TestLeadingAndEqual(t *testing.T) {
	a := mustPoly(t, 4, 1, 2, 3)
	b := mustPoly(t, 8, 1, 2, 3)
	c := mustPoly(t, 4, 1, 2, 4)

	if a.Leading() != 3 {
		t.Errorf("Leading() = %d, want 3", a.Leading())
	}
	if !a.Equal(b) {
		t.Error("same coefficients with different capacity are not Equal")
	}
	if a.Equal(c) {
		t.Error("different coefficients reported Equal")
	}

	z1, _ := NewPolynomial(2)
	z2 := mustPoly(t, 5, 0)
	z2.UpdateDegree()
	if !z1.Equal(z2) {
		t.Error("degree -1 and degree-0 zero polynomials are not Equal")
	}
	if z1.Leading() != 0 {
		t.Error("zero polynomial has non-zero leading coefficient")
	}
}

func TestEqualNil(t *testing.T) {
	var nilPoly *Polynomial
	p := mustPoly(t, 4, 1, 2)
	z, _ := NewPolynomial(4)

	if p.Equal(nil) {
		t.Error("polynomial reported Equal to nil")
	}
	if z.Equal(nil) {
		t.Error("zero polynomial reported Equal to nil")
	}
	if nilPoly.Equal(p) {
		t.Error("nil reported Equal to a polynomial")
	}
	if !nilPoly.Equal(nil) {
		t.Error("nil is not Equal to nil")
	}
}
