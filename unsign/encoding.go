package unsign

import (
	"fmt"
	"io"

	cbg "github.com/whyrusleeping/cbor-gen"
	xerrors "golang.org/x/xerrors"
)

// Result is a decrypted block together with the engine width that produced it.
// It encodes as the CBOR tuple [bits, block].
type Result struct {
	Bits  uint64
	Block []byte
}

const maxBlockLength = 8192 / 8

var _ cbg.CBORUnmarshaler = (*Result)(nil)
var _ cbg.CBORMarshaler = (*Result)(nil)

func (t *Result) MarshalCBOR(w io.Writer) error {
	if t == nil {
		_, err := w.Write(cbg.CborNull)
		return err
	}

	cw := cbg.NewCborWriter(w)

	if len(t.Block) > maxBlockLength {
		return xerrors.Errorf("block of %d bytes is longer than %d", len(t.Block), maxBlockLength)
	}

	if err := cw.WriteMajorTypeHeader(cbg.MajArray, 2); err != nil {
		return err
	}
	if err := cw.WriteMajorTypeHeader(cbg.MajUnsignedInt, t.Bits); err != nil {
		return err
	}
	if err := cbg.WriteByteArray(cw, t.Block); err != nil {
		return xerrors.Errorf("writing block: %w", err)
	}
	return nil
}

func (t *Result) UnmarshalCBOR(r io.Reader) (err error) {
	*t = Result{}

	cr := cbg.NewCborReader(r)

	maj, extra, err := cr.ReadHeader()
	if err != nil {
		return err
	}
	defer func() {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
	}()

	if maj != cbg.MajArray {
		return fmt.Errorf("cbor input should be of type array")
	}
	if extra != 2 {
		return fmt.Errorf("cbor input had wrong number of fields")
	}

	// t.Bits (uint64)
	maj, extra, err = cr.ReadHeader()
	if err != nil {
		return err
	}
	if maj != cbg.MajUnsignedInt {
		return fmt.Errorf("wrong type for uint64 field")
	}
	t.Bits = extra

	// t.Block ([]byte)
	t.Block, err = cbg.ReadByteArray(cr, maxBlockLength)
	if err != nil {
		return xerrors.Errorf("reading block: %w", err)
	}
	return nil
}
