package gontskem

import (
	"fmt"
	"sync"

	"github.com/Rohith04MVK/goNTSKEM/log"
)

// Element is a single value of GF(2^m), stored in the low m bits.
type Element uint16

// Field is the arithmetic the polynomial core needs from GF(2^m).
// Implementations must be pure functions of their arguments.
type Field interface {
	// Add returns a + b. In characteristic 2 this is also subtraction.
	Add(a, b Element) Element
	// Mul returns a * b.
	Mul(a, b Element) Element
	// Inv returns the multiplicative inverse of a. a must be non-zero.
	Inv(a Element) Element
}

// NTS-KEM(12, 64) field parameters.
const (
	paramsM            = 12
	paramsFieldModulus = 0x1009 // x^12 + x^3 + 1
	paramsT            = 64
	paramsMaxFieldM    = 16
)

// GF2m is a table-backed GF(2^m) built from an irreducible modulus.
// It is immutable after construction and safe for concurrent use.
type GF2m struct {
	m         int
	modulus   uint32
	order     int // 2^m - 1
	generator Element
	// expTbl is doubled so exp[log a + log b] never wraps.
	expTbl []Element
	logTbl []uint16
	invTbl []Element
}

var (
	ntskemField     *GF2m
	ntskemFieldOnce sync.Once
)

// NewNTSKEMField returns the shared GF(2^12) instance defined by
// x^12 + x^3 + 1.
func NewNTSKEMField() *GF2m {
	ntskemFieldOnce.Do(func() {
		ff, err := NewField(paramsM, paramsFieldModulus)
		if err != nil {
			panic(fmt.Sprintf("gontskem: building GF(2^%d): %v", paramsM, err))
		}
		ntskemField = ff
	})
	return ntskemField
}

// NewField builds GF(2^m) modulo the polynomial whose coefficients are the
// bits of modulus. The modulus must have degree exactly m and be irreducible.
func NewField(m int, modulus uint32) (*GF2m, error) {
	if m < 2 || m > paramsMaxFieldM {
		return nil, fmt.Errorf("%w: m=%d", ErrInvalidFieldDegree, m)
	}
	if modulus>>uint(m) != 1 {
		return nil, fmt.Errorf("%w: modulus %#x does not have degree %d", ErrInvalidFieldDegree, modulus, m)
	}
	if !isIrreducible(modulus, m) {
		return nil, fmt.Errorf("%w: %#x", ErrReducibleModulus, modulus)
	}

	size := 1 << uint(m)
	ff := &GF2m{
		m:       m,
		modulus: modulus,
		order:   size - 1,
		expTbl:  make([]Element, 2*(size-1)),
		logTbl:  make([]uint16, size),
		invTbl:  make([]Element, size),
	}
	if !ff.initTables() {
		return nil, fmt.Errorf("%w: no primitive element for %#x", ErrReducibleModulus, modulus)
	}

	log.Default().Module("field").Debug("field tables built",
		"m", m, "modulus", fmt.Sprintf("%#x", modulus), "generator", ff.generator)
	return ff, nil
}

// initTables finds the smallest primitive element and fills the exp, log
// and inverse tables from it.
func (ff *GF2m) initTables() bool {
	for g := 2; g <= ff.order; g++ {
		if !ff.fillPowers(Element(g)) {
			continue
		}
		ff.generator = Element(g)
		for i := 0; i < ff.order; i++ {
			ff.expTbl[i+ff.order] = ff.expTbl[i]
			ff.logTbl[ff.expTbl[i]] = uint16(i)
		}
		ff.invTbl[0] = 0
		for a := 1; a <= ff.order; a++ {
			ff.invTbl[a] = ff.expTbl[(ff.order-int(ff.logTbl[a]))%ff.order]
		}
		return true
	}
	return false
}

// fillPowers writes g^0 .. g^(order-1) into the low half of expTbl and
// reports whether g has multiplicative order exactly 2^m - 1.
func (ff *GF2m) fillPowers(g Element) bool {
	x := Element(1)
	for i := 0; i < ff.order; i++ {
		if i > 0 && x == 1 {
			return false
		}
		ff.expTbl[i] = x
		x = ff.mulSlow(x, g)
	}
	return x == 1
}

// mulSlow multiplies by shift-and-add with reduction; used only to build tables.
func (ff *GF2m) mulSlow(a, b Element) Element {
	var r uint32
	x := uint32(a)
	y := uint32(b)
	for y != 0 {
		if y&1 != 0 {
			r ^= x
		}
		y >>= 1
		x <<= 1
		if x>>uint(ff.m)&1 != 0 {
			x ^= ff.modulus
		}
	}
	return Element(r)
}

// isIrreducible checks that no polynomial of degree 1..m/2 divides modulus.
func isIrreducible(modulus uint32, m int) bool {
	for d := 1; d <= m/2; d++ {
		for q := uint32(1) << uint(d); q < uint32(1)<<uint(d+1); q++ {
			if gf2PolyMod(modulus, q) == 0 {
				return false
			}
		}
	}
	return true
}

// gf2PolyMod returns a mod b for polynomials over GF(2) packed in bits.
func gf2PolyMod(a, b uint32) uint32 {
	db := bitLen(b) - 1
	for {
		da := bitLen(a) - 1
		if da < db {
			return a
		}
		a ^= b << uint(da-db)
	}
}

func bitLen(x uint32) int {
	n := 0
	for x != 0 {
		x >>= 1
		n++
	}
	return n
}

// Add returns a + b in GF(2^m).
func (ff *GF2m) Add(a, b Element) Element {
	return a ^ b
}

// Mul returns a * b in GF(2^m).
func (ff *GF2m) Mul(a, b Element) Element {
	if a == 0 || b == 0 {
		return 0
	}
	return ff.expTbl[int(ff.logTbl[a])+int(ff.logTbl[b])]
}

// Inv returns the multiplicative inverse of a. Panics if a is zero.
func (ff *GF2m) Inv(a Element) Element {
	if a == 0 {
		panic("gontskem: inverse of zero")
	}
	return ff.invTbl[a]
}

// Div returns a / b. Panics if b is zero.
func (ff *GF2m) Div(a, b Element) Element {
	if b == 0 {
		panic("gontskem: division by zero")
	}
	if a == 0 {
		return 0
	}
	return ff.expTbl[int(ff.logTbl[a])+ff.order-int(ff.logTbl[b])]
}

// Exp returns generator^i.
func (ff *GF2m) Exp(i int) Element {
	idx := i % ff.order
	if idx < 0 {
		idx += ff.order
	}
	return ff.expTbl[idx]
}

// Log returns the discrete logarithm of a to the generator base. Panics if a is zero.
func (ff *GF2m) Log(a Element) int {
	if a == 0 {
		panic("gontskem: log of zero")
	}
	return int(ff.logTbl[a])
}

// Contains reports whether a is a valid element of this field.
func (ff *GF2m) Contains(a Element) bool {
	return int(a) <= ff.order
}

// Degree returns the extension degree m.
func (ff *GF2m) Degree() int { return ff.m }

// Order returns the size of the multiplicative group, 2^m - 1.
func (ff *GF2m) Order() int { return ff.order }

// Modulus returns the defining polynomial as a bit mask.
func (ff *GF2m) Modulus() uint32 { return ff.modulus }

// Generator returns the primitive element the tables are built from.
func (ff *GF2m) Generator() Element { return ff.generator }
