package main

import (
	"fmt"
	"io"
	"os"

	"github.com/filecoin-project/go-unsign/bignum"
	"github.com/filecoin-project/go-unsign/unsign"
	"github.com/filecoin-project/go-unsign/util"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/exp/slices"
	xerrors "golang.org/x/xerrors"
)

var (
	supportedBits = []int{512, 1024, 2048, 4096, 8192}
	formats       = []string{"raw", "hex", "cbor"}
)

// failures maps each decryption error kind to its diagnostic and exit status.
var failures = map[unsign.Kind]struct {
	msg  string
	code int
}{
	unsign.InputTooLarge:       {"Failed to pack signature, too much input?", 2},
	unsign.ModulusInvalid:      {"Failed to load modulus, invalid or too long?", 3},
	unsign.SignatureNotReduced: {"Signature is not less than modulus", 4},
	unsign.OutputOverflow:      {"Failed to unpack decrypted signature?!?", 5},
}

type config struct {
	modulus string
	bits    int
	format  string
}

func configFromContext(cCtx *cli.Context) config {
	cfg := config{
		modulus: cCtx.String("modulus"),
		bits:    cCtx.Int("bits"),
		format:  cCtx.String("format"),
	}
	if cCtx.Args().Present() {
		cfg.modulus = cCtx.Args().First()
	}
	return cfg
}

// validate reports every configuration problem at once.
func (c config) validate() error {
	var result *multierror.Error
	if c.modulus == "" {
		result = multierror.Append(result, xerrors.Errorf("no modulus given"))
	}
	if err := validateBits(c.bits); err != nil {
		result = multierror.Append(result, err)
	}
	if !slices.Contains(formats, c.format) {
		result = multierror.Append(result, xerrors.Errorf("unknown output format %q", c.format))
	}
	return result.ErrorOrNil()
}

func validateBits(bits int) error {
	if !util.IsPow2(bits) || !slices.Contains(supportedBits, bits) {
		return xerrors.Errorf("unsupported key size %d, expected one of %v", bits, supportedBits)
	}
	return nil
}

func decryptWidth(bits int, blob []byte, modulus string) error {
	switch bits {
	case 512:
		return unsign.DecryptWidth[bignum.W512](blob, modulus)
	case 1024:
		return unsign.DecryptWidth[bignum.W1024](blob, modulus)
	case 2048:
		return unsign.DecryptWidth[bignum.W2048](blob, modulus)
	case 4096:
		return unsign.DecryptWidth[bignum.W4096](blob, modulus)
	case 8192:
		return unsign.DecryptWidth[bignum.W8192](blob, modulus)
	}
	return validateBits(bits)
}

// readSignature reads at most maxBytes+1 bytes so that oversize input is
// rejected by the decryptor instead of being truncated here.
func readSignature(r io.Reader, maxBytes int) ([]byte, error) {
	blob := make([]byte, maxBytes+1)
	n, err := io.ReadFull(r, blob)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return nil, err
	}
	if n == 0 {
		return nil, xerrors.Errorf("no input")
	}
	return blob[:n], nil
}

func runDecrypt(cCtx *cli.Context, log *logrus.Logger) error {
	cfg := configFromContext(cCtx)
	if err := cfg.validate(); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if f, ok := cCtx.App.Reader.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		log.Warn("reading signature from a terminal")
	}

	blob, err := readSignature(cCtx.App.Reader, util.Ceil(cfg.bits, 8))
	if err != nil {
		log.WithError(err).Debug("reading stdin")
		return cli.Exit("Error reading stdin", 1)
	}
	log.WithFields(logrus.Fields{
		"bytes": len(blob),
		"bits":  cfg.bits,
	}).Debugf("sig=%X", blob)
	log.WithField("digits", len(cfg.modulus)).Debugf("mod=%s (at most %d digits)", cfg.modulus, util.HexDigits(cfg.bits))

	if err := decryptWidth(cfg.bits, blob, cfg.modulus); err != nil {
		log.WithError(err).Debug("decrypt failed")
		if f, ok := failures[unsign.KindOf(err)]; ok {
			return cli.Exit(f.msg, f.code)
		}
		return cli.Exit(fmt.Sprintf("Unknown error %v", err), 1)
	}
	log.Debugf("out=%X", blob)

	return writeResult(cCtx.App.Writer, cfg, blob)
}

func writeResult(w io.Writer, cfg config, blob []byte) error {
	var err error
	switch cfg.format {
	case "hex":
		_, err = fmt.Fprintf(w, "%x\n", blob)
	case "cbor":
		res := unsign.Result{Bits: uint64(cfg.bits), Block: blob}
		err = res.MarshalCBOR(w)
	default:
		_, err = w.Write(blob)
	}
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error writing output: %v", err), 1)
	}
	return nil
}
