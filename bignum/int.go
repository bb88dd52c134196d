// Package bignum implements fixed-width unsigned integers sized for RSA moduli,
// with the handful of operations needed to raise a signature to a public
// exponent: comparison, shifting, addition, subtraction, modular
// multiplication and modular exponentiation.
//
// All arithmetic is schoolbook and variable time.
package bignum

import "math/bits"

// Backing arrays for each supported width. Each carries Bits/32 words plus one
// guard word that absorbs the carry of a doubled residue during reduction.
type (
	W512  = [512/32 + 1]uint32
	W1024 = [1024/32 + 1]uint32
	W2048 = [2048/32 + 1]uint32
	W4096 = [4096/32 + 1]uint32
	W8192 = [8192/32 + 1]uint32
)

// Words is the set of backing arrays an Int can be instantiated with.
type Words interface {
	W512 | W1024 | W2048 | W4096 | W8192
}

// DefaultBits is the widest key the default engine accepts.
const DefaultBits = 4096

// Default is the engine used when no width is requested explicitly.
type Default = Int[W4096]

// Int is an unsigned magnitude stored as little-endian 32-bit words, word 0
// being the least significant. The zero value is 0.
//
// Add, Sub and Lsh1 wrap silently modulo 2^(32*len(A)), like fixed-width
// machine integers. Keeping values below a modulus is the caller's job; the
// modular operations do it for their own operands.
type Int[A Words] struct {
	n A
}

func wordIndex(i int) int { return i / 32 }

func bitOffset(i int) uint { return uint(i % 32) }

// Capacity returns the number of bytes a value of width A can hold, excluding
// the guard word.
func Capacity[A Words]() int {
	var a A
	return (len(a) - 1) * 4
}

// MaxBytes is Capacity for the receiver's width.
func (x *Int[A]) MaxBytes() int {
	return (len(x.n) - 1) * 4
}

// MaxBits is the receiver's capacity in bits.
func (x *Int[A]) MaxBits() int {
	return x.MaxBytes() * 8
}

// MSB returns the index of the most significant set bit, or -1 if x is zero.
// For non-zero x, x.Bit(x.MSB()) is always true.
func (x *Int[A]) MSB() int {
	for i := len(x.n) - 1; i >= 0; i-- {
		if x.n[i] != 0 {
			return i*32 + 31 - bits.LeadingZeros32(x.n[i])
		}
	}
	return -1
}

// Bit reports whether bit i is set, bit 0 being the least significant.
func (x *Int[A]) Bit(i int) bool {
	return x.n[wordIndex(i)]&(1<<bitOffset(i)) != 0
}

func (x *Int[A]) IsZero() bool {
	for i := 0; i < len(x.n); i++ {
		if x.n[i] != 0 {
			return false
		}
	}
	return true
}

// Clear sets x to 0.
func (x *Int[A]) Clear() *Int[A] {
	var z A
	x.n = z
	return x
}

// Set sets x to y.
func (x *Int[A]) Set(y *Int[A]) *Int[A] {
	x.n = y.n
	return x
}

// SetUint32 sets x to v, clearing every higher word.
func (x *Int[A]) SetUint32(v uint32) *Int[A] {
	x.Clear()
	x.n[0] = v
	return x
}

// Lsh1 shifts x left by one bit. The bit leaving the top word is dropped.
func (x *Int[A]) Lsh1() *Int[A] {
	var carry uint32
	for i := 0; i < len(x.n); i++ {
		w := x.n[i]
		x.n[i] = w<<1 | carry
		carry = w >> 31
	}
	return x
}

// Add sets x to x+y. A carry out of the top word is dropped.
func (x *Int[A]) Add(y *Int[A]) *Int[A] {
	var carry uint32
	for i := 0; i < len(x.n); i++ {
		x.n[i], carry = bits.Add32(x.n[i], y.n[i], carry)
	}
	return x
}

// Sub sets x to x-y. If y > x the result wraps around.
func (x *Int[A]) Sub(y *Int[A]) *Int[A] {
	var borrow uint32
	for i := 0; i < len(x.n); i++ {
		x.n[i], borrow = bits.Sub32(x.n[i], y.n[i], borrow)
	}
	return x
}

// Cmp compares x and y and returns -1, 0 or +1.
func (x *Int[A]) Cmp(y *Int[A]) int {
	for i := len(x.n) - 1; i >= 0; i-- {
		switch {
		case x.n[i] < y.n[i]:
			return -1
		case x.n[i] > y.n[i]:
			return 1
		}
	}
	return 0
}
