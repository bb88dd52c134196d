package bignum

import (
	"fmt"
	"strings"

	xerrors "golang.org/x/xerrors"
)

var (
	ErrTooLarge   = xerrors.New("input exceeds capacity")
	ErrOverflow   = xerrors.New("value does not fit output")
	ErrInvalidHex = xerrors.New("invalid hex")
)

// SetBytes interprets data as a big-endian magnitude and stores it in x.
// x is left unchanged if data is longer than the capacity.
func (x *Int[A]) SetBytes(data []byte) error {
	if len(data) > x.MaxBytes() {
		return xerrors.Errorf("%d bytes for a %d byte integer: %w", len(data), x.MaxBytes(), ErrTooLarge)
	}

	var z A
	for n, i := 0, len(data)-1; n < len(data); n, i = n+1, i-1 {
		z[i/4] |= uint32(data[n]) << ((i & 3) * 8)
	}
	x.n = z
	return nil
}

// FillBytes writes x into dst as a big-endian magnitude zero-padded to
// len(dst). dst is left unchanged if x needs more than len(dst) bytes or if
// dst is longer than the capacity.
func (x *Int[A]) FillBytes(dst []byte) error {
	if len(dst) > x.MaxBytes() {
		return xerrors.Errorf("%d byte output for a %d byte integer: %w", len(dst), x.MaxBytes(), ErrOverflow)
	}
	if msb := x.MSB(); msb >= len(dst)*8 {
		return xerrors.Errorf("%d significant bits in %d bytes: %w", msb+1, len(dst), ErrOverflow)
	}

	for n, i := 0, len(dst)-1; n < len(dst); n, i = n+1, i-1 {
		dst[n] = byte(x.n[i/4] >> ((i & 3) * 8))
	}
	return nil
}

// Bytes returns x as a size byte big-endian slice.
func (x *Int[A]) Bytes(size int) ([]byte, error) {
	if size < 0 {
		return nil, xerrors.Errorf("negative size %d: %w", size, ErrOverflow)
	}
	if size > x.MaxBytes() {
		return nil, xerrors.Errorf("%d byte output for a %d byte integer: %w", size, x.MaxBytes(), ErrOverflow)
	}
	out := make([]byte, size)
	if err := x.FillBytes(out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetHex parses s as big-endian hexadecimal digits, either case, without a
// prefix. The empty string is 0. x is left unchanged on error.
func (x *Int[A]) SetHex(s string) error {
	if len(s) > 2*x.MaxBytes() {
		return xerrors.Errorf("%d hex digits for a %d byte integer: %w", len(s), x.MaxBytes(), ErrInvalidHex)
	}

	var z A
	for n, i := 0, len(s)-1; n < len(s); n, i = n+1, i-1 {
		d, ok := unhex(s[n])
		if !ok {
			return xerrors.Errorf("character %q at offset %d: %w", s[n], n, ErrInvalidHex)
		}
		z[i/8] |= d << ((i & 7) * 4)
	}
	x.n = z
	return nil
}

func unhex(c byte) (uint32, bool) {
	switch {
	case '0' <= c && c <= '9':
		return uint32(c - '0'), true
	case 'A' <= c && c <= 'F':
		return uint32(c-'A') + 10, true
	case 'a' <= c && c <= 'f':
		return uint32(c-'a') + 10, true
	}
	return 0, false
}

// String formats x as upper case hexadecimal without leading zeros.
func (x *Int[A]) String() string {
	i := len(x.n) - 1
	for i > 0 && x.n[i] == 0 {
		i--
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%X", x.n[i])
	for i--; i >= 0; i-- {
		fmt.Fprintf(&sb, "%08X", x.n[i])
	}
	return sb.String()
}
