package bignum

// checkModulus panics if x cannot serve as a modulus: it must be non-zero and
// leave the guard word clear so that a doubled residue never wraps.
func (x *Int[A]) checkModulus() {
	if x.IsZero() {
		panic("bignum: zero modulus")
	}
	if x.n[len(x.n)-1] != 0 {
		panic("bignum: modulus wider than capacity")
	}
}

// checkReduced panics unless x < m.
func (x *Int[A]) checkReduced(m *Int[A]) {
	if x.Cmp(m) >= 0 {
		panic("bignum: operand not reduced modulo m")
	}
}

// ModAdd sets x to (x+y) mod m. Both x and y must be less than m.
func (x *Int[A]) ModAdd(y, m *Int[A]) *Int[A] {
	m.checkModulus()
	x.checkReduced(m)
	y.checkReduced(m)

	x.Add(y)
	if x.Cmp(m) >= 0 {
		x.Sub(m)
	}
	return x
}

// ModMul sets x to (x*y) mod m using shift-and-add with a reduction after
// every step, so no double-width product is ever formed. x must be less than
// m; y may be any value. The loop runs once per significant bit of y.
func (x *Int[A]) ModMul(y, m *Int[A]) *Int[A] {
	m.checkModulus()
	x.checkReduced(m)

	// y may alias x, which is shifted below.
	b := *y
	var r Int[A]

	h := b.MSB()
	for i := 0; i <= h; i++ {
		if b.Bit(i) {
			r.Add(x)
			if r.Cmp(m) >= 0 {
				r.Sub(m)
			}
		}
		x.Lsh1()
		if x.Cmp(m) >= 0 {
			x.Sub(m)
		}
	}

	x.n = r.n
	return x
}

// ModExp sets x to x**y mod m with right-to-left square-and-multiply. x must
// be less than m. A zero exponent yields 1 (0 when m is 1).
func (x *Int[A]) ModExp(y, m *Int[A]) *Int[A] {
	m.checkModulus()
	x.checkReduced(m)

	e := *y
	var r Int[A]
	r.SetUint32(1)
	if r.Cmp(m) >= 0 {
		r.Sub(m)
	}

	h := e.MSB()
	for i := 0; i <= h; i++ {
		if e.Bit(i) {
			r.ModMul(x, m)
		}
		sq := *x
		x.ModMul(&sq, m)
	}

	x.n = r.n
	return x
}
