// Package unsign recovers the message representative from an RSA signature
// using only the public modulus. The result still carries whatever padding
// the signer applied; removing PKCS#1 padding is left to the caller.
package unsign

import (
	"github.com/filecoin-project/go-unsign/bignum"
	xerrors "golang.org/x/xerrors"
)

// PublicExponent is the fixed RSA public exponent applied by Decrypt.
const PublicExponent = 65537

// Decrypt raises the big-endian signature in blob to the public exponent
// modulo the hex encoded modulus and writes the result back into blob, keeping
// its length. Keys up to bignum.DefaultBits are supported.
//
// On error blob is not modified and the returned error is an *Error.
func Decrypt(blob []byte, modulus string) error {
	return DecryptWidth[bignum.W4096](blob, modulus)
}

// DecryptWidth is Decrypt with an engine of width A.
func DecryptWidth[A bignum.Words](blob []byte, modulus string) error {
	var sig, mod, e bignum.Int[A]

	if err := sig.SetBytes(blob); err != nil {
		return &Error{Kind: InputTooLarge, Err: xerrors.Errorf("packing signature: %w", err)}
	}
	if err := mod.SetHex(modulus); err != nil {
		return &Error{Kind: ModulusInvalid, Err: xerrors.Errorf("loading modulus: %w", err)}
	}
	if sig.Cmp(&mod) >= 0 {
		return ErrSignatureNotReduced
	}

	e.SetUint32(PublicExponent)
	sig.ModExp(&e, &mod)

	// FillBytes checks the width before writing, so blob is only touched on
	// success.
	if err := sig.FillBytes(blob); err != nil {
		return &Error{Kind: OutputOverflow, Err: xerrors.Errorf("unpacking result: %w", err)}
	}
	return nil
}
